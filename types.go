package draftpost

import (
	"fmt"
	"time"
)

// Metadata labels recognized at the start of draft lines.
const (
	LabelTitle      = "title:"
	LabelAuthor     = "author:"
	LabelTags       = "tag:"
	LabelCoverImage = "cover_image:"
	LabelContent    = "content:"
)

// DefaultLayout is the front matter layout used when none is configured.
const DefaultLayout = "post"

// dateLayout formats the front matter date and the filename prefix.
const dateLayout = "2006-01-02"

// Schema describes which optional metadata lines a draft carries.
// The zero value is the plain post layout: title, tags, body.
type Schema struct {
	Author bool // line 1 is "author:" and tags move to line 2
}

// MinLines returns the minimum number of lines a draft must have.
func (s Schema) MinLines() int {
	if s.Author {
		return 4
	}
	return 3
}

// Layout describes the expected line order, used in error messages.
func (s Schema) Layout() string {
	if s.Author {
		return "title, author, tags, and content"
	}
	return "title, tags, and content"
}

// tagsLine returns the index of the tags line.
func (s Schema) tagsLine() int {
	if s.Author {
		return 2
	}
	return 1
}

// PostMetadata holds the values parsed from the head of a draft.
// Empty Author and CoverImage mean the line was absent.
type PostMetadata struct {
	Title      string
	Author     string
	Tags       []string
	CoverImage string
}

// RenderedPost is the result of one conversion.
// It is built once by Converter.Convert and not modified afterwards.
type RenderedPost struct {
	Metadata PostMetadata
	Body     string // transformed body
	Date     time.Time
	Slug     string

	authorSlug string
	layout     string
}

// DateString returns the post date as YYYY-MM-DD.
func (p *RenderedPost) DateString() string {
	return p.Date.Format(dateLayout)
}

// Filename returns "{date}-{slug}.md", prefixed with the author slug
// when the post has an author.
func (p *RenderedPost) Filename() string {
	if p.Metadata.Author != "" {
		return fmt.Sprintf("%s-%s-%s.md", p.authorSlug, p.DateString(), p.Slug)
	}
	return fmt.Sprintf("%s-%s.md", p.DateString(), p.Slug)
}

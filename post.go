package draftpost

import (
	"strconv"
	"strings"
)

// Markdown renders the post as front matter followed by the body.
// Fields appear in a fixed order; optional ones are omitted when empty.
func (p *RenderedPost) Markdown() string {
	var b strings.Builder

	b.WriteString("---\n")
	b.WriteString("layout: " + p.Layout() + "\n")
	b.WriteString("title: " + quote(p.Metadata.Title) + "\n")
	if p.Metadata.Author != "" {
		b.WriteString("author: " + quote(p.Metadata.Author) + "\n")
	}
	b.WriteString("date: " + p.DateString() + "\n")
	if len(p.Metadata.Tags) > 0 {
		b.WriteString("tags: [" + strings.Join(p.Metadata.Tags, ", ") + "]\n")
	}
	if p.Metadata.CoverImage != "" {
		b.WriteString("cover_image: " + quote(p.Metadata.CoverImage) + "\n")
	}
	b.WriteString("---\n\n")
	b.WriteString(p.Body)
	b.WriteString("\n")

	return b.String()
}

// Layout returns the front matter layout.
func (p *RenderedPost) Layout() string {
	if p.layout == "" {
		return DefaultLayout
	}
	return p.layout
}

// quote wraps s in double quotes, escaping backslashes and quotes.
func quote(s string) string {
	if !strings.ContainsAny(s, `"\`) {
		return `"` + s + `"`
	}
	return strconv.Quote(s)
}

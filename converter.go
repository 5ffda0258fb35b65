package draftpost

import (
	"fmt"
	"time"
)

// Converter turns a draft into a RenderedPost.
// Create with NewConverter; a Converter is safe for concurrent use.
type Converter struct {
	schema      Schema
	layout      string
	slugStyle   SlugStyle
	now         func() time.Time
	date        time.Time
	transformer *Transformer
	transform   []TransformOption
}

// Option configures a Converter.
type Option func(*Converter)

// WithSchema sets which optional metadata lines drafts carry.
func WithSchema(s Schema) Option {
	return func(c *Converter) {
		c.schema = s
	}
}

// WithLayout sets the front matter layout (default "post").
func WithLayout(layout string) Option {
	return func(c *Converter) {
		c.layout = layout
	}
}

// WithSlugStyle sets how titles and authors are slugged.
func WithSlugStyle(style SlugStyle) Option {
	return func(c *Converter) {
		c.slugStyle = style
	}
}

// WithClock sets the time source used for the post date.
func WithClock(now func() time.Time) Option {
	return func(c *Converter) {
		if now != nil {
			c.now = now
		}
	}
}

// WithDate pins the post date, overriding the clock.
func WithDate(d time.Time) Option {
	return func(c *Converter) {
		c.date = d
	}
}

// WithTransformOptions passes options to the shorthand transformer.
func WithTransformOptions(opts ...TransformOption) Option {
	return func(c *Converter) {
		c.transform = append(c.transform, opts...)
	}
}

// NewConverter creates a Converter for plain posts dated with time.Now.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		layout:    DefaultLayout,
		slugStyle: SlugSimple,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.transformer = NewTransformer(c.transform...)
	return c
}

// Convert parses and transforms a draft.
// No partial post is returned on error.
func (c *Converter) Convert(draft string) (*RenderedPost, error) {
	meta, body, err := Extract(SplitLines(draft), c.schema)
	if err != nil {
		return nil, err
	}

	slugOf := slugFunc(c.slugStyle)
	slug, err := slugOf(meta.Title)
	if err != nil {
		return nil, err
	}

	var authorSlug string
	if meta.Author != "" {
		if authorSlug, err = slugOf(meta.Author); err != nil {
			return nil, fmt.Errorf("author: %w", err)
		}
	}

	date := c.date
	if date.IsZero() {
		date = c.now()
	}

	return &RenderedPost{
		Metadata:   meta,
		Body:       c.transformer.Transform(body),
		Date:       date,
		Slug:       slug,
		authorSlug: authorSlug,
		layout:     c.layout,
	}, nil
}

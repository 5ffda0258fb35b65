package draftpost

import (
	"context"
	"fmt"

	"github.com/alnah/go-draftpost/internal/assets"
	"github.com/alnah/go-draftpost/internal/pipeline"
)

// Previewer renders a RenderedPost as a standalone HTML page.
type Previewer struct {
	siteRoot string
	style    string
	loader   assets.AssetLoader
}

// PreviewOption configures a Previewer.
type PreviewOption func(*Previewer)

// WithSiteRoot resolves site paths ("/assets/a.png") under dir so the page
// can be opened from disk. Empty leaves paths as written.
func WithSiteRoot(dir string) PreviewOption {
	return func(p *Previewer) {
		p.siteRoot = dir
	}
}

// WithStyle selects an embedded preview style by name (default "default").
func WithStyle(name string) PreviewOption {
	return func(p *Previewer) {
		if name != "" {
			p.style = name
		}
	}
}

// NewPreviewer creates a Previewer using the embedded assets.
func NewPreviewer(opts ...PreviewOption) *Previewer {
	p := &Previewer{
		style:  assets.DefaultStyle,
		loader: assets.NewEmbeddedLoader(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Render converts the post body to HTML and wraps it in the preview page.
func (p *Previewer) Render(ctx context.Context, post *RenderedPost) (string, error) {
	css, err := p.loader.LoadStyle(p.style)
	if err != nil {
		return "", fmt.Errorf("loading style: %w", err)
	}
	tmplContent, err := p.loader.LoadTemplate(assets.PreviewTemplate)
	if err != nil {
		return "", fmt.Errorf("loading template: %w", err)
	}
	renderer, err := pipeline.NewPageRenderer(tmplContent)
	if err != nil {
		return "", err
	}

	preview := &pipeline.Preview{
		Converter: pipeline.NewGoldmarkConverter(),
		Renderer:  renderer,
		SiteRoot:  p.siteRoot,
		CSS:       css,
	}

	page, err := preview.Render(ctx, post.Body, pipeline.PageData{
		Title:      post.Metadata.Title,
		Author:     post.Metadata.Author,
		Date:       post.DateString(),
		Layout:     post.Layout(),
		Tags:       post.Metadata.Tags,
		CoverImage: post.Metadata.CoverImage,
	})
	if err != nil {
		return "", fmt.Errorf("rendering preview: %w", err)
	}
	return page, nil
}

// PreviewFilename returns the page filename for a post: Filename with .html.
func (p *RenderedPost) PreviewFilename() string {
	name := p.Filename()
	return name[:len(name)-len(".md")] + ".html"
}

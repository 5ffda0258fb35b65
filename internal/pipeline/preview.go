package pipeline

import (
	"context"
	"fmt"
)

// Preview chains conversion, path rewriting and page rendering.
type Preview struct {
	Converter HTMLConverter
	Renderer  *PageRenderer
	SiteRoot  string
	CSS       string
}

// Render converts the Markdown body and wraps it in the page template.
// data.Body is replaced by the converted fragment; data.CSS by p.CSS.
func (p *Preview) Render(ctx context.Context, markdown string, data PageData) (string, error) {
	fragment, err := p.Converter.ToHTML(ctx, markdown)
	if err != nil {
		return "", err
	}

	fragment, err = RewriteSitePaths(fragment, p.SiteRoot)
	if err != nil {
		return "", fmt.Errorf("rewriting paths: %w", err)
	}

	data.Body = fragment
	data.CSS = p.CSS
	data.CoverImage = ResolveSitePath(data.CoverImage, p.SiteRoot)

	return p.Renderer.Render(ctx, data)
}

package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"
)

// Sentinel errors for template rendering.
var (
	ErrTemplateParse  = errors.New("failed to parse template")
	ErrTemplateRender = errors.New("failed to render template")
)

// PageData holds everything the preview template displays.
type PageData struct {
	Title      string
	Author     string
	Date       string
	Layout     string
	Tags       []string
	CoverImage string // Already resolved; rendered as-is
	Body       string // Trusted HTML fragment
	CSS        string
}

// pageView is the template-facing form of PageData with trusted types.
type pageView struct {
	Title      string
	Author     string
	Date       string
	Layout     string
	Tags       []string
	CoverImage template.URL
	Body       template.HTML
	CSS        template.CSS
}

// PageRenderer renders PageData with an html/template.
type PageRenderer struct {
	tmpl *template.Template
}

// NewPageRenderer parses the page template content.
func NewPageRenderer(tmplContent string) (*PageRenderer, error) {
	tmpl, err := template.New("page").Parse(tmplContent)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateParse, err)
	}
	return &PageRenderer{tmpl: tmpl}, nil
}

// Render executes the template. CSS is sanitized so it cannot close the
// <style> block.
func (r *PageRenderer) Render(ctx context.Context, data PageData) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	view := pageView{
		Title:      data.Title,
		Author:     data.Author,
		Date:       data.Date,
		Layout:     data.Layout,
		Tags:       data.Tags,
		CoverImage: template.URL(data.CoverImage), // #nosec G203 -- local file:// or post URL
		Body:       template.HTML(data.Body),      // #nosec G203 -- goldmark output
		CSS:        template.CSS(sanitizeCSS(data.CSS)),
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}
	return buf.String(), nil
}

// sanitizeCSS escapes sequences that could break out of a <style> block.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}

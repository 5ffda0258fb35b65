package draftpost

import (
	"fmt"
	"regexp"
	"strings"
)

var crlfOrCR = regexp.MustCompile(`\r\n?`)

// SplitLines normalizes line endings and splits a draft into lines.
func SplitLines(draft string) []string {
	return strings.Split(crlfOrCR.ReplaceAllString(draft, "\n"), "\n")
}

// Extract separates the metadata lines of a draft from its body.
// The input slice is not modified.
//
// Layout, with schema.Author unset:
//
//	title: <text>
//	tag: <a, b, c>
//	cover_image: <path>   (optional)
//	<body...>
//
// With schema.Author set, an "author:" line sits between title and tags.
func Extract(lines []string, schema Schema) (PostMetadata, string, error) {
	if len(lines) < schema.MinLines() {
		return PostMetadata{}, "", fmt.Errorf("%w: got %d, need at least %d (%s)",
			ErrTruncatedDraft, len(lines), schema.MinLines(), schema.Layout())
	}

	var meta PostMetadata

	meta.Title = stripLabel(lines[0], LabelTitle)
	if meta.Title == "" {
		return PostMetadata{}, "", ErrMissingTitle
	}

	if schema.Author {
		meta.Author = stripLabel(lines[1], LabelAuthor)
	}

	tagsAt := schema.tagsLine()
	meta.Tags = splitTags(stripLabel(lines[tagsAt], LabelTags))

	bodyAt := tagsAt + 1
	if bodyAt < len(lines) && strings.HasPrefix(lines[bodyAt], LabelCoverImage) {
		meta.CoverImage = strings.TrimSpace(strings.TrimPrefix(lines[bodyAt], LabelCoverImage))
		bodyAt++
	}

	return meta, extractBody(lines[bodyAt:]), nil
}

// stripLabel removes the first occurrence of label and trims the result.
func stripLabel(line, label string) string {
	return strings.TrimSpace(strings.Replace(line, label, "", 1))
}

// splitTags splits a comma-separated tag list. Empty input yields nil.
func splitTags(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if tag := strings.TrimSpace(p); tag != "" {
			tags = append(tags, tag)
		}
	}
	if len(tags) == 0 {
		return nil
	}
	return tags
}

// extractBody joins the body lines and drops a leading "content:" label.
func extractBody(lines []string) string {
	body := strings.TrimSpace(strings.Join(lines, "\n"))
	body = strings.TrimPrefix(body, LabelContent)
	return strings.TrimSpace(body)
}

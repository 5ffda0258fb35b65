package draftpost

import (
	"fmt"
	"regexp"
	"strings"

	goslug "github.com/goliatone/go-slug"
)

// SlugStyle selects how titles become filename slugs.
type SlugStyle string

// Slug styles.
const (
	// SlugSimple lower-cases and hyphenates whitespace, keeping punctuation.
	SlugSimple SlugStyle = "simple"
	// SlugNormalized also strips punctuation and folds accents.
	SlugNormalized SlugStyle = "normalized"
)

var separatorRun = regexp.MustCompile(`[\s/\\]+`)

// Slugify lower-cases s and replaces each run of whitespace or path
// separators with "-".
func Slugify(s string) string {
	return separatorRun.ReplaceAllString(strings.ToLower(s), "-")
}

// validateSlug rejects slugs that would not stay a single filename segment.
func validateSlug(slug string) error {
	switch {
	case slug == "", slug == ".", slug == "..":
		return fmt.Errorf("%w: %q is not a filename", ErrInvalidSlug, slug)
	case strings.ContainsAny(slug, `/\`):
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidSlug, slug)
	}
	return nil
}

// slugFunc returns the slug function for a style.
func slugFunc(style SlugStyle) func(string) (string, error) {
	if style == SlugNormalized {
		return normalizedSlug
	}
	return func(s string) (string, error) {
		slug := Slugify(s)
		if err := validateSlug(slug); err != nil {
			return "", err
		}
		return slug, nil
	}
}

func normalizedSlug(s string) (string, error) {
	out, err := goslug.Normalize(s)
	if err != nil {
		return "", fmt.Errorf("%w from %q: %v", ErrInvalidSlug, s, err)
	}
	if out == "" {
		return "", fmt.Errorf("%w from %q: result is empty", ErrInvalidSlug, s)
	}
	if err := validateSlug(out); err != nil {
		return "", err
	}
	return out, nil
}

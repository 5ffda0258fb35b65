// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"
)

// ForDraftNotFound returns hints when the draft file is missing.
// When the default draft was used implicitly, suggests passing a path.
func ForDraftNotFound(usedDefault bool) string {
	if usedDefault {
		return format("pass the draft file as an argument: draftpost <file>")
	}
	return format("check the path; it is resolved from the current directory")
}

// ForMalformedDraft returns a hint showing the expected draft layout.
func ForMalformedDraft(author bool) string {
	if author {
		return format(`expected lines: "title: ...", "author: ...", "tag: a, b", then content`)
	}
	return format(`expected lines: "title: ...", "tag: a, b", then content`)
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-draftpost/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, "go-draftpost") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check the site root exists and is writable, or use --output")
}

// ForOutputExists returns hints when the target post already exists.
func ForOutputExists() string {
	return format("use --force to overwrite, or change the title")
}

// ForUnknownStyle lists the styles that can be passed to --style.
func ForUnknownStyle(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available styles: " + strings.Join(available, ", "))
}

// ForCleanup returns hints when the draft could not be deleted.
func ForCleanup() string {
	return formatHints([]string{"the post was written", "delete the draft manually"})
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}

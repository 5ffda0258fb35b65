package draftpost

// Notes:
// - Extract is tested through lines as SplitLines would produce them.
// - Label stripping follows "first occurrence" semantics; only the common
//   leading-label shapes are covered here.

import (
	"errors"
	"reflect"
	"testing"
)

// ---------------------------------------------------------------------------
// TestSplitLines - Line ending normalization
// ---------------------------------------------------------------------------

func TestSplitLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "LF",
			input: "a\nb\nc",
			want:  []string{"a", "b", "c"},
		},
		{
			name:  "CRLF",
			input: "a\r\nb\r\nc",
			want:  []string{"a", "b", "c"},
		},
		{
			name:  "CR",
			input: "a\rb",
			want:  []string{"a", "b"},
		},
		{
			name:  "trailing newline keeps empty last line",
			input: "a\n",
			want:  []string{"a", ""},
		},
		{
			name:  "empty",
			input: "",
			want:  []string{""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := SplitLines(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitLines(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestExtract - Metadata and body separation
// ---------------------------------------------------------------------------

func TestExtract(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		lines    []string
		schema   Schema
		wantMeta PostMetadata
		wantBody string
	}{
		{
			name:  "title tags and body",
			lines: []string{"title: Hello World", "tag: a, b", "Some text."},
			wantMeta: PostMetadata{
				Title: "Hello World",
				Tags:  []string{"a", "b"},
			},
			wantBody: "Some text.",
		},
		{
			name:  "tags are trimmed",
			lines: []string{"title: T", "tag: a, b , c", "body"},
			wantMeta: PostMetadata{
				Title: "T",
				Tags:  []string{"a", "b", "c"},
			},
			wantBody: "body",
		},
		{
			name:     "empty tag line yields no tags",
			lines:    []string{"title: T", "tag: ", "body"},
			wantMeta: PostMetadata{Title: "T"},
			wantBody: "body",
		},
		{
			name:  "empty tag entries are dropped",
			lines: []string{"title: T", "tag: a,, ,b", "body"},
			wantMeta: PostMetadata{
				Title: "T",
				Tags:  []string{"a", "b"},
			},
			wantBody: "body",
		},
		{
			name:  "cover image consumed as metadata",
			lines: []string{"title: T", "tag: x", "cover_image: assets/cover.png", "body"},
			wantMeta: PostMetadata{
				Title:      "T",
				Tags:       []string{"x"},
				CoverImage: "assets/cover.png",
			},
			wantBody: "body",
		},
		{
			name:  "cover image line later in body is left alone",
			lines: []string{"title: T", "tag: x", "body", "cover_image: nope.png"},
			wantMeta: PostMetadata{
				Title: "T",
				Tags:  []string{"x"},
			},
			wantBody: "body\ncover_image: nope.png",
		},
		{
			name:     "content label stripped",
			lines:    []string{"title: T", "tag:", "content: first line", "second line"},
			wantMeta: PostMetadata{Title: "T"},
			wantBody: "first line\nsecond line",
		},
		{
			name:     "content label on its own line",
			lines:    []string{"title: T", "tag:", "content:", "", "para"},
			wantMeta: PostMetadata{Title: "T"},
			wantBody: "para",
		},
		{
			name:     "content word inside body kept",
			lines:    []string{"title: T", "tag:", "the content: stays"},
			wantMeta: PostMetadata{Title: "T"},
			wantBody: "the content: stays",
		},
		{
			name:     "body is trimmed",
			lines:    []string{"title: T", "tag:", "", "  body  ", "", ""},
			wantMeta: PostMetadata{Title: "T"},
			wantBody: "body",
		},
		{
			name:     "empty body allowed",
			lines:    []string{"title: T", "tag: a", ""},
			wantMeta: PostMetadata{Title: "T", Tags: []string{"a"}},
			wantBody: "",
		},
		{
			name:   "author schema",
			lines:  []string{"title: T", "author: Jane Doe", "tag: a", "body"},
			schema: Schema{Author: true},
			wantMeta: PostMetadata{
				Title:  "T",
				Author: "Jane Doe",
				Tags:   []string{"a"},
			},
			wantBody: "body",
		},
		{
			name:   "author schema with cover image",
			lines:  []string{"title: T", "author: J", "tag:", "cover_image: https://x.com/c.png", "body"},
			schema: Schema{Author: true},
			wantMeta: PostMetadata{
				Title:      "T",
				Author:     "J",
				CoverImage: "https://x.com/c.png",
			},
			wantBody: "body",
		},
		{
			name:     "title without space after label",
			lines:    []string{"title:Hi", "tag:", "body"},
			wantMeta: PostMetadata{Title: "Hi"},
			wantBody: "body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			meta, body, err := Extract(tt.lines, tt.schema)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(meta, tt.wantMeta) {
				t.Errorf("metadata = %+v, want %+v", meta, tt.wantMeta)
			}
			if body != tt.wantBody {
				t.Errorf("body = %q, want %q", body, tt.wantBody)
			}
		})
	}
}

func TestExtract_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		lines   []string
		schema  Schema
		wantErr error
	}{
		{
			name:    "two lines",
			lines:   []string{"title: T", "tag: a"},
			wantErr: ErrTruncatedDraft,
		},
		{
			name:    "no lines",
			lines:   nil,
			wantErr: ErrTruncatedDraft,
		},
		{
			name:    "author schema needs four lines",
			lines:   []string{"title: T", "author: A", "tag: a"},
			schema:  Schema{Author: true},
			wantErr: ErrTruncatedDraft,
		},
		{
			name:    "empty title",
			lines:   []string{"title:   ", "tag: a", "body"},
			wantErr: ErrMissingTitle,
		},
		{
			name:    "blank first line",
			lines:   []string{"", "tag: a", "body"},
			wantErr: ErrMissingTitle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := Extract(tt.lines, tt.schema)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestExtract_DoesNotModifyInput(t *testing.T) {
	t.Parallel()

	lines := []string{"title: T", "tag: a", "cover_image: c.png", "body"}
	orig := append([]string(nil), lines...)

	if _, _, err := Extract(lines, Schema{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(lines, orig) {
		t.Errorf("input modified: %q", lines)
	}
}

func TestSchema_MinLines(t *testing.T) {
	t.Parallel()

	if got := (Schema{}).MinLines(); got != 3 {
		t.Errorf("Schema{}.MinLines() = %d, want 3", got)
	}
	if got := (Schema{Author: true}).MinLines(); got != 4 {
		t.Errorf("Schema{Author: true}.MinLines() = %d, want 4", got)
	}
}

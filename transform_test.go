package draftpost

// Notes:
// - Substitution is literal, so expected outputs are exact strings.
// - Non-idempotence is pinned on purpose: the blockquote rule converts one
//   occurrence per pass by default.

import (
	"reflect"
	"testing"
)

// ---------------------------------------------------------------------------
// TestTransformer_Transform - Rule outputs
// ---------------------------------------------------------------------------

func TestTransformer_Transform(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "described image keeps alt and rooted src",
			input: "(cute cat)![/assets/cat.png]",
			want:  `<br><img src="/assets/cat.png" alt="cute cat" /><br>`,
		},
		{
			name:  "described image normalizes asset path",
			input: "(cute cat)![assets/cat.png]",
			want:  `<br><img src="/assets/cat.png" alt="cute cat" /><br>`,
		},
		{
			name:  "plain image with asset path",
			input: "![assets/cat.png]",
			want:  `<br><img src="/assets/cat.png" /><br>`,
		},
		{
			name:  "plain image with URL",
			input: "![https://x.com/a.png]",
			want:  `<br><img src="https://x.com/a.png" /><br>`,
		},
		{
			name:  "plain image with other relative path",
			input: "![img/cat.png]",
			want:  `<br><img src="img/cat.png" /><br>`,
		},
		{
			name:  "two images on one line",
			input: "![assets/a.png] ![assets/b.png]",
			want:  `<br><img src="/assets/a.png" /><br> <br><img src="/assets/b.png" /><br>`,
		},
		{
			name:  "link",
			input: "see (Go)[https://go.dev] now",
			want:  `see <a href="https://go.dev">Go</a> now`,
		},
		{
			name:  "italic and bold",
			input: "Some //emphasis// and ##bold##.",
			want:  "Some *emphasis* and **bold**.",
		},
		{
			name:  "several italics are matched pairwise",
			input: "//a// b //c//",
			want:  "*a* b *c*",
		},
		{
			name:  "blockquote",
			input: `../Stay hungry\..`,
			want:  "> Stay hungry",
		},
		{
			name:  "image URL slashes do not become italics",
			input: "![https://x.com/a.png] then //em//",
			want:  `<br><img src="https://x.com/a.png" /><br> then *em*`,
		},
		{
			name:  "link target slashes do not become italics",
			input: "(docs)[https://go.dev/doc] and //em//",
			want:  `<a href="https://go.dev/doc">docs</a> and *em*`,
		},
		{
			name:  "link text still gets emphasis",
			input: "(//Go//)[https://go.dev]",
			want:  `<a href="https://go.dev">*Go*</a>`,
		},
		{
			name:  "quotes escaped in attributes",
			input: `(say "hi")![a.png]`,
			want:  `<br><img src="a.png" alt="say &quot;hi&quot;" /><br>`,
		},
		{
			name:  "bare URL in prose is not protected",
			input: "see http://x.com and //em//",
			want:  "see http:*x.com and *em//",
		},
		{
			name:  "multiline body",
			input: "line //one//\n\n##two##",
			want:  "line *one*\n\n**two**",
		},
		{
			name:  "no shorthand",
			input: "plain text (with parens) and [brackets]",
			want:  "plain text (with parens) and [brackets]",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
	}

	tr := NewTransformer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := tr.Transform(tt.input)
			if got != tt.want {
				t.Errorf("Transform(%q)\n got: %q\nwant: %q", tt.input, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestTransformer_Blockquote - First-match default and all mode
// ---------------------------------------------------------------------------

func TestTransformer_BlockquoteFirstOnly(t *testing.T) {
	t.Parallel()

	input := "../first\\..\n\n../second\\.."
	want := "> first\n\n../second\\.."

	got := NewTransformer().Transform(input)
	if got != want {
		t.Errorf("Transform() = %q, want %q", got, want)
	}
}

func TestTransformer_BlockquoteAll(t *testing.T) {
	t.Parallel()

	input := "../first\\..\n\n../second\\.."
	want := "> first\n\n> second"

	got := NewTransformer(WithBlockquoteMode(BlockquoteAll)).Transform(input)
	if got != want {
		t.Errorf("Transform() = %q, want %q", got, want)
	}
}

func TestTransformer_UnknownBlockquoteModeIsFirst(t *testing.T) {
	t.Parallel()

	input := "../a\\.. ../b\\.."
	want := "> a ../b\\.."

	got := NewTransformer(WithBlockquoteMode("sometimes")).Transform(input)
	if got != want {
		t.Errorf("Transform() = %q, want %q", got, want)
	}
}

func TestTransformer_NotIdempotent(t *testing.T) {
	t.Parallel()

	tr := NewTransformer()
	once := tr.Transform("../a\\.. ../b\\..")
	twice := tr.Transform(once)

	if once == twice {
		t.Fatalf("expected second pass to change output, both = %q", once)
	}
	if twice != "> a > b" {
		t.Errorf("second pass = %q, want %q", twice, "> a > b")
	}
}

func TestTransformer_CustomAssetPrefix(t *testing.T) {
	t.Parallel()

	tr := NewTransformer(WithAssetPrefix("static/"))

	got := tr.Transform("![static/a.png] ![assets/b.png]")
	want := `<br><img src="/static/a.png" /><br> <br><img src="assets/b.png" /><br>`
	if got != want {
		t.Errorf("Transform() = %q, want %q", got, want)
	}
}

func TestTransformer_Rules(t *testing.T) {
	t.Parallel()

	want := []string{
		RuleDescribedImage,
		RulePlainImage,
		RuleLink,
		RuleItalic,
		RuleBold,
		RuleBlockquote,
	}
	if got := NewTransformer().Rules(); !reflect.DeepEqual(got, want) {
		t.Errorf("Rules() = %v, want %v", got, want)
	}
}

// ---------------------------------------------------------------------------
// TestNormalizeAssetPath - src normalization
// ---------------------------------------------------------------------------

func TestNormalizeAssetPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		src    string
		prefix string
		want   string
	}{
		{name: "asset path rooted", src: "assets/cat.png", prefix: "assets/", want: "/assets/cat.png"},
		{name: "https unchanged", src: "https://x.com/a.png", prefix: "assets/", want: "https://x.com/a.png"},
		{name: "http unchanged", src: "http://x.com/a.png", prefix: "assets/", want: "http://x.com/a.png"},
		{name: "rooted unchanged", src: "/already/rooted.png", prefix: "assets/", want: "/already/rooted.png"},
		{name: "other relative unchanged", src: "img/a.png", prefix: "assets/", want: "img/a.png"},
		{name: "dot relative unchanged", src: "./assets/a.png", prefix: "assets/", want: "./assets/a.png"},
		{name: "leading space kept as written", src: " assets/a.png ", prefix: "assets/", want: " assets/a.png "},
		{name: "dot relative outside assets unchanged", src: "./img/a.png", prefix: "assets/", want: "./img/a.png"},
		{name: "empty prefix disables rewrite", src: "assets/a.png", prefix: "", want: "assets/a.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := NormalizeAssetPath(tt.src, tt.prefix); got != tt.want {
				t.Errorf("NormalizeAssetPath(%q, %q) = %q, want %q", tt.src, tt.prefix, got, tt.want)
			}
		})
	}
}

package draftpost

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/alnah/go-draftpost/internal/fileutil"
)

// DefaultAssetPrefix is the relative folder whose paths are made root-relative.
const DefaultAssetPrefix = "assets/"

// BlockquoteMode selects how many ../quote\.. sequences are converted.
type BlockquoteMode string

// Blockquote modes.
const (
	BlockquoteFirst BlockquoteMode = "first" // only the first occurrence
	BlockquoteAll   BlockquoteMode = "all"
)

// Rule names, in pipeline order.
const (
	RuleDescribedImage = "described-image"
	RulePlainImage     = "plain-image"
	RuleLink           = "link"
	RuleItalic         = "italic"
	RuleBold           = "bold"
	RuleBlockquote     = "blockquote"
)

// Attribute placeholders use Unicode Private Use Area characters.
// Values emitted into src/href/alt are parked behind them while the
// emphasis rules run, then restored.
const (
	attrStart = "\uE000"
	attrEnd   = "\uE001"
)

var (
	describedImagePattern = regexp.MustCompile(`\((.*?)\)!\[(.*?)\]`)
	plainImagePattern     = regexp.MustCompile(`!\[(.*?)\]`)
	linkPattern           = regexp.MustCompile(`\((.*?)\)\[(.*?)\]`)
	italicPattern         = regexp.MustCompile(`//(.*?)//`)
	boldPattern           = regexp.MustCompile(`##(.*?)##`)
	blockquotePattern     = regexp.MustCompile(`\.\./(.*?)\\\.\.`)

	attrPlaceholder = regexp.MustCompile(attrStart + `([0-9]+)` + attrEnd)
)

// rule is one substitution step. render receives the full match at
// groups[0] followed by the capture groups.
type rule struct {
	name      string
	pattern   *regexp.Regexp
	firstOnly bool
	render    func(groups []string, attrs *attrVault) string
}

// apply rewrites every match of the rule in s (or only the first).
func (r rule) apply(s string, attrs *attrVault) string {
	n := -1
	if r.firstOnly {
		n = 1
	}
	matches := r.pattern.FindAllStringSubmatchIndex(s, n)
	if len(matches) == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	last := 0
	for _, m := range matches {
		b.WriteString(s[last:m[0]])
		groups := make([]string, len(m)/2)
		for i := range groups {
			if m[2*i] >= 0 {
				groups[i] = s[m[2*i]:m[2*i+1]]
			}
		}
		b.WriteString(r.render(groups, attrs))
		last = m[1]
	}
	b.WriteString(s[last:])
	return b.String()
}

// attrVault holds attribute values for one Transform call.
type attrVault struct {
	values []string
}

func (v *attrVault) hold(value string) string {
	v.values = append(v.values, strings.ReplaceAll(value, `"`, "&quot;"))
	return attrStart + strconv.Itoa(len(v.values)-1) + attrEnd
}

func (v *attrVault) restore(s string) string {
	if len(v.values) == 0 {
		return s
	}
	return attrPlaceholder.ReplaceAllStringFunc(s, func(m string) string {
		i, err := strconv.Atoi(m[len(attrStart) : len(m)-len(attrEnd)])
		if err != nil || i >= len(v.values) {
			return m
		}
		return v.values[i]
	})
}

// transformConfig holds Transformer options.
type transformConfig struct {
	assetPrefix string
	blockquote  BlockquoteMode
}

// TransformOption configures a Transformer.
type TransformOption func(*transformConfig)

// WithAssetPrefix sets the relative folder prefix that gets a leading "/".
// An empty prefix disables the rewrite.
func WithAssetPrefix(prefix string) TransformOption {
	return func(c *transformConfig) {
		c.assetPrefix = prefix
	}
}

// WithBlockquoteMode sets whether one or all blockquotes are converted.
// Unknown modes fall back to BlockquoteFirst.
func WithBlockquoteMode(mode BlockquoteMode) TransformOption {
	return func(c *transformConfig) {
		c.blockquote = mode
	}
}

// Transformer rewrites shorthand into markdown and HTML fragments.
// It is safe for concurrent use; Transform keeps no state between calls.
type Transformer struct {
	rules []rule
}

// NewTransformer builds the substitution pipeline.
//
// Order matters: the described image must run before the plain image
// (its bracket part is a plain image) and both before the link rule.
func NewTransformer(opts ...TransformOption) *Transformer {
	cfg := transformConfig{
		assetPrefix: DefaultAssetPrefix,
		blockquote:  BlockquoteFirst,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	prefix := cfg.assetPrefix
	return &Transformer{rules: []rule{
		{
			name:    RuleDescribedImage,
			pattern: describedImagePattern,
			render: func(g []string, attrs *attrVault) string {
				src := NormalizeAssetPath(g[2], prefix)
				return `<br><img src="` + attrs.hold(src) + `" alt="` + attrs.hold(g[1]) + `" /><br>`
			},
		},
		{
			name:    RulePlainImage,
			pattern: plainImagePattern,
			render: func(g []string, attrs *attrVault) string {
				src := NormalizeAssetPath(g[1], prefix)
				return `<br><img src="` + attrs.hold(src) + `" /><br>`
			},
		},
		{
			name:    RuleLink,
			pattern: linkPattern,
			render: func(g []string, attrs *attrVault) string {
				return `<a href="` + attrs.hold(g[2]) + `">` + g[1] + `</a>`
			},
		},
		{
			name:    RuleItalic,
			pattern: italicPattern,
			render: func(g []string, _ *attrVault) string {
				return "*" + g[1] + "*"
			},
		},
		{
			name:    RuleBold,
			pattern: boldPattern,
			render: func(g []string, _ *attrVault) string {
				return "**" + g[1] + "**"
			},
		},
		{
			name:      RuleBlockquote,
			pattern:   blockquotePattern,
			firstOnly: cfg.blockquote != BlockquoteAll,
			render: func(g []string, _ *attrVault) string {
				return "> " + g[1]
			},
		},
	}}
}

// Rules returns the rule names in the order they are applied.
func (t *Transformer) Rules() []string {
	names := make([]string, len(t.rules))
	for i, r := range t.rules {
		names[i] = r.name
	}
	return names
}

// Transform applies every rule to body in order.
// It is not idempotent: with BlockquoteFirst a second pass converts the
// next blockquote.
func (t *Transformer) Transform(body string) string {
	attrs := &attrVault{}
	for _, r := range t.rules {
		body = r.apply(body, attrs)
	}
	return attrs.restore(body)
}

// NormalizeAssetPath makes src root-relative when it starts with prefix.
// URLs, rooted paths and any other relative form are returned unchanged.
func NormalizeAssetPath(src, prefix string) string {
	switch {
	case fileutil.IsURL(src), strings.HasPrefix(src, "/"):
		return src
	case prefix != "" && strings.HasPrefix(src, prefix):
		return "/" + src
	}
	return src
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-draftpost/internal/fileutil"
	"github.com/alnah/go-draftpost/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxPathLength   = 1024
	MaxNameLength   = 64
	MaxLayoutLength = 64
)

// Accepted values for enumerated fields.
const (
	BlockquoteFirst = "first"
	BlockquoteAll   = "all"
	SlugSimple      = "simple"
	SlugNormalized  = "normalized"
)

// Config holds the site settings for draft conversion.
type Config struct {
	DefaultDraft      string       `yaml:"defaultDraft"`      // Draft used when no argument is given
	Root              string       `yaml:"root"`              // Site root; collection dirs are joined under it
	Layout            string       `yaml:"layout"`            // Front matter layout
	AssetPrefix       string       `yaml:"assetPrefix"`       // Relative prefix made root-relative; "none" disables
	Blockquote        string       `yaml:"blockquote"`        // "first" or "all"
	Slug              string       `yaml:"slug"`              // "simple" or "normalized"
	KeepDraft         bool         `yaml:"keepDraft"`         // Keep the draft after writing
	DefaultCollection string       `yaml:"defaultCollection"` // Collection used when no prefix matches
	Collections       []Collection `yaml:"collections"`
}

// Collection is an output directory selected by the draft filename.
type Collection struct {
	Name   string `yaml:"name"`
	Prefix string `yaml:"prefix"` // Draft base name prefix, case-insensitive
	Dir    string `yaml:"dir"`    // Output directory relative to Root
	Author bool   `yaml:"author"` // Drafts carry an author line
}

// DefaultConfig returns the settings matching the classic layout:
// post*.txt drafts go to _posts, blog*.txt drafts (with author) go to _blog.
func DefaultConfig() *Config {
	return &Config{
		DefaultDraft:      "post.txt",
		Root:              ".",
		Layout:            "post",
		AssetPrefix:       "assets/",
		Blockquote:        BlockquoteFirst,
		Slug:              SlugSimple,
		DefaultCollection: "posts",
		Collections: []Collection{
			{Name: "posts", Prefix: "post", Dir: "_posts"},
			{Name: "blog", Prefix: "blog", Dir: "_blog", Author: true},
		},
	}
}

// EffectiveAssetPrefix returns the asset prefix with "none" mapped to "".
func (c *Config) EffectiveAssetPrefix() string {
	if strings.EqualFold(c.AssetPrefix, "none") {
		return ""
	}
	return c.AssetPrefix
}

// CollectionFor picks the collection for a draft path. The longest matching
// prefix wins; without a match the default collection is returned.
func (c *Config) CollectionFor(draftPath string) Collection {
	base := strings.ToLower(fileutil.BaseName(draftPath))

	best := -1
	for i, col := range c.Collections {
		if col.Prefix == "" || !strings.HasPrefix(base, strings.ToLower(col.Prefix)) {
			continue
		}
		if best == -1 || len(col.Prefix) > len(c.Collections[best].Prefix) {
			best = i
		}
	}
	if best >= 0 {
		return c.Collections[best]
	}

	for _, col := range c.Collections {
		if col.Name == c.DefaultCollection {
			return col
		}
	}
	return Collection{Name: c.DefaultCollection, Dir: "_" + c.DefaultCollection}
}

// Validate checks field values and lengths.
// Called automatically by LoadConfig.
func (c *Config) Validate() error {
	if err := validateFieldLength("defaultDraft", c.DefaultDraft, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("root", c.Root, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("layout", c.Layout, MaxLayoutLength); err != nil {
		return err
	}
	if err := validateFieldLength("assetPrefix", c.AssetPrefix, MaxPathLength); err != nil {
		return err
	}

	switch strings.ToLower(c.Blockquote) {
	case "", BlockquoteFirst, BlockquoteAll:
	default:
		return fmt.Errorf("%w: blockquote %q (must be first or all)", ErrInvalidValue, c.Blockquote)
	}

	switch strings.ToLower(c.Slug) {
	case "", SlugSimple, SlugNormalized:
	default:
		return fmt.Errorf("%w: slug %q (must be simple or normalized)", ErrInvalidValue, c.Slug)
	}

	seen := make(map[string]bool, len(c.Collections))
	for i, col := range c.Collections {
		field := fmt.Sprintf("collections[%d]", i)
		if col.Name == "" {
			return fmt.Errorf("%w: %s.name is required", ErrInvalidValue, field)
		}
		if err := validateFieldLength(field+".name", col.Name, MaxNameLength); err != nil {
			return err
		}
		if seen[col.Name] {
			return fmt.Errorf("%w: duplicate collection %q", ErrInvalidValue, col.Name)
		}
		seen[col.Name] = true
		if col.Dir == "" {
			return fmt.Errorf("%w: %s.dir is required", ErrInvalidValue, field)
		}
		if err := validateFieldLength(field+".dir", col.Dir, MaxPathLength); err != nil {
			return err
		}
	}

	if c.DefaultCollection != "" && len(c.Collections) > 0 && !seen[c.DefaultCollection] {
		return fmt.Errorf("%w: defaultCollection %q is not a defined collection", ErrInvalidValue, c.DefaultCollection)
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Fields absent from the file keep their DefaultConfig values.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.DecodeStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s\n%s", ErrConfigParse, configPath, yamlutil.FormatError(err))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths returns the locations tried for a config name, in order:
// ./NAME.yaml, ./NAME.yml, then the same under the user config directory.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, "go-draftpost", name+ext))
		}
	}

	return paths
}

// resolveConfigPath returns the first existing search path for name.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	draftpost "github.com/alnah/go-draftpost"
	"github.com/alnah/go-draftpost/internal/config"
	"github.com/alnah/go-draftpost/internal/dateutil"
	"github.com/alnah/go-draftpost/internal/fileutil"
	"github.com/alnah/go-draftpost/internal/hints"
	"github.com/alnah/go-draftpost/internal/logger"
)

// job is one draft with everything resolved from flags, env and config.
type job struct {
	draftPath   string
	usedDefault bool
	collection  config.Collection
	siteRoot    string
	schema      draftpost.Schema
	converter   *draftpost.Converter
}

// loadConfig loads the config named by the flag, then DRAFTPOST_CONFIG,
// falling back to defaults when neither is set. Env values are applied last.
func loadConfig(flagConfig string, envCfg *envConfig, log *logger.Logger) (*config.Config, error) {
	name := flagConfig
	if name == "" {
		name = envCfg.ConfigPath
	}

	cfg := config.DefaultConfig()
	if name != "" {
		loaded, err := config.LoadConfig(name)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(name) {
				return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
			}
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
		log.ConfigLoaded(name)
	}

	applyEnvConfig(envCfg, cfg)
	return cfg, nil
}

// resolveJob merges CLI flags into cfg and builds the converter.
func resolveJob(args []string, site siteFlags, draft draftFlags, cfg *config.Config, envCfg *envConfig, now time.Time) (*job, error) {
	if draft.layout != "" {
		cfg.Layout = draft.layout
	}
	if draft.slug != "" {
		cfg.Slug = draft.slug
	}
	if draft.blockquote != "" {
		cfg.Blockquote = draft.blockquote
	}
	if site.root != "" {
		cfg.Root = site.root
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	j := &job{siteRoot: cfg.Root}
	if len(args) > 0 {
		j.draftPath = args[0]
	} else {
		j.draftPath = cfg.DefaultDraft
		j.usedDefault = true
	}

	j.collection = cfg.CollectionFor(j.draftPath)
	j.schema = draftpost.Schema{Author: j.collection.Author || draft.author}

	dateValue := site.date
	if dateValue == "" {
		dateValue = envCfg.Date
	}
	date, err := dateutil.ResolveDate(dateValue, now)
	if err != nil {
		return nil, err
	}

	j.converter = draftpost.NewConverter(
		draftpost.WithSchema(j.schema),
		draftpost.WithLayout(cfg.Layout),
		draftpost.WithSlugStyle(draftpost.SlugStyle(strings.ToLower(cfg.Slug))),
		draftpost.WithDate(date),
		draftpost.WithTransformOptions(
			draftpost.WithAssetPrefix(cfg.EffectiveAssetPrefix()),
			draftpost.WithBlockquoteMode(draftpost.BlockquoteMode(strings.ToLower(cfg.Blockquote))),
		),
	)
	return j, nil
}

// load reads and converts the draft. Malformed drafts get a layout hint.
func (j *job) load(log *logger.Logger) (*draftpost.RenderedPost, error) {
	data, err := os.ReadFile(j.draftPath) // #nosec G304 -- draft path is user-provided
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s%s", ErrDraftNotFound, j.draftPath, hints.ForDraftNotFound(j.usedDefault))
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrReadDraft, j.draftPath, err)
	}

	post, err := j.converter.Convert(string(data))
	if err != nil {
		if errors.Is(err, draftpost.ErrTruncatedDraft) || errors.Is(err, draftpost.ErrMissingTitle) {
			return nil, fmt.Errorf("%s: %w%s", j.draftPath, err, hints.ForMalformedDraft(j.schema.Author))
		}
		return nil, fmt.Errorf("%s: %w", j.draftPath, err)
	}

	log.DraftParsed(j.draftPath, post.Metadata.Title, len(post.Metadata.Tags), j.collection.Name)
	return post, nil
}

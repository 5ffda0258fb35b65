package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	draftpost "github.com/alnah/go-draftpost"
	"github.com/alnah/go-draftpost/internal/assets"
	"github.com/alnah/go-draftpost/internal/fileutil"
	"github.com/alnah/go-draftpost/internal/hints"
	"github.com/alnah/go-draftpost/internal/logger"
)

// runPreviewCmd renders a draft as an HTML page without touching the draft.
func runPreviewCmd(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parsePreviewFlags(args, env.Stderr)
	if err != nil {
		return err
	}

	log := logger.ForFlags(env.Stderr, flags.common.quiet, flags.common.verbose)
	envCfg := loadEnvConfig()

	cfg, err := loadConfig(flags.common.config, envCfg, log)
	if err != nil {
		return err
	}

	j, err := resolveJob(positional, flags.site, flags.draft, cfg, envCfg, env.Now())
	if err != nil {
		return err
	}

	post, err := j.load(log)
	if err != nil {
		return err
	}

	previewer := draftpost.NewPreviewer(
		draftpost.WithSiteRoot(j.siteRoot),
		draftpost.WithStyle(flags.style),
	)
	page, err := previewer.Render(ctx, post)
	if errors.Is(err, assets.ErrStyleNotFound) {
		return fmt.Errorf("%w%s", err, hints.ForUnknownStyle(assets.NewEmbeddedLoader().Styles()))
	}
	if err != nil {
		return err
	}

	if flags.site.output == "" {
		fmt.Fprint(env.Stdout, page)
		return nil
	}

	outPath := previewPath(flags.site.output, post)
	if err := fileutil.WriteFileAtomic(outPath, page, filePermissions, dirPermissions, true); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWritePreview, outPath, err)
	}
	log.PreviewWritten(outPath)
	return nil
}

// previewPath returns output, or the post's preview filename inside it when
// output names a directory (existing, or written with a trailing separator).
func previewPath(output string, post *draftpost.RenderedPost) string {
	if strings.HasSuffix(output, "/") || strings.HasSuffix(output, string(filepath.Separator)) {
		return filepath.Join(output, post.PreviewFilename())
	}
	if info, err := os.Stat(output); err == nil && info.IsDir() {
		return filepath.Join(output, post.PreviewFilename())
	}
	return output
}

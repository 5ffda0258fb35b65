package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	draftpost "github.com/alnah/go-draftpost"
	"github.com/alnah/go-draftpost/internal/fileutil"
	"github.com/alnah/go-draftpost/internal/hints"
	"github.com/alnah/go-draftpost/internal/logger"
)

// runConvertCmd converts one draft: read, convert, write, then delete the
// draft. The draft is only deleted after the post is written.
func runConvertCmd(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseConvertFlags(args, env.Stderr)
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

	if err := ctx.Err(); err != nil {
		return err
	}

	post, err := j.load(log)
	if err != nil {
		return err
	}

	if flags.write.dryRun {
		fmt.Fprint(env.Stdout, post.Markdown())
		return nil
	}

	outputDir := resolveOutputDir(flags.site.output, envCfg.OutputDir, j)
	outPath, err := writePost(post, outputDir, flags.write.force)
	if err != nil {
		return err
	}
	log.PostWritten(outPath)

	if flags.write.keep || cfg.KeepDraft {
		log.DraftKept(j.draftPath, "keep requested")
		return nil
	}

	if err := os.Remove(j.draftPath); err != nil {
		return fmt.Errorf("%w: %s: %v%s", ErrCleanup, j.draftPath, err, hints.ForCleanup())
	}
	log.DraftDeleted(j.draftPath)

	return nil
}

// resolveOutputDir picks the post directory.
// Priority: --output > DRAFTPOST_OUTPUT_DIR > root/collection dir.
func resolveOutputDir(flagOutput, envOutput string, j *job) string {
	if flagOutput != "" {
		return flagOutput
	}
	if envOutput != "" {
		return envOutput
	}
	return filepath.Join(j.siteRoot, j.collection.Dir)
}

// writePost writes the post atomically into dir and returns its path.
func writePost(post *draftpost.RenderedPost, dir string, force bool) (string, error) {
	outPath := filepath.Join(dir, post.Filename())
	if filepath.Dir(outPath) != filepath.Clean(dir) {
		return "", fmt.Errorf("%w: %s escapes %s", draftpost.ErrInvalidSlug, post.Filename(), dir)
	}

	err := fileutil.WriteFileAtomic(outPath, post.Markdown(), filePermissions, dirPermissions, force)
	switch {
	case err == nil:
		return outPath, nil
	case errors.Is(err, fileutil.ErrFileExists):
		return "", fmt.Errorf("%w: %s%s", ErrOutputExists, outPath, hints.ForOutputExists())
	default:
		return "", fmt.Errorf("%w: %s: %v%s", ErrWritePost, outPath, err, hints.ForOutputDirectory())
	}
}

package main

import (
	"errors"
	"os"

	draftpost "github.com/alnah/go-draftpost"
	"github.com/alnah/go-draftpost/internal/assets"
	"github.com/alnah/go-draftpost/internal/config"
	"github.com/alnah/go-draftpost/internal/dateutil"
)

// Exit codes for the draftpost CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Post written (or previewed)
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or malformed draft
	ExitIO      = 3 // Draft not found, write or cleanup failure
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrDraftNotFound) ||
		errors.Is(err, ErrReadDraft) ||
		errors.Is(err, ErrWritePost) ||
		errors.Is(err, ErrWritePreview) ||
		errors.Is(err, ErrCleanup) {
		return ExitIO
	}

	// Usage/config/draft errors (exit 2)
	if errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrInvalidFlags) ||
		errors.Is(err, ErrOutputExists) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, dateutil.ErrInvalidDate) ||
		errors.Is(err, draftpost.ErrTruncatedDraft) ||
		errors.Is(err, draftpost.ErrMissingTitle) ||
		errors.Is(err, draftpost.ErrInvalidSlug) ||
		errors.Is(err, assets.ErrStyleNotFound) ||
		errors.Is(err, assets.ErrInvalidAssetName) {
		return ExitUsage
	}

	return ExitGeneral
}

package draftpost

import "errors"

// Sentinel errors for draft conversion.
var (
	ErrTruncatedDraft = errors.New("draft has too few lines")
	ErrMissingTitle   = errors.New("draft title is empty")
	ErrInvalidSlug    = errors.New("cannot derive slug")
)

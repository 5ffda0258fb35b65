package main

import "errors"

// Sentinel errors for CLI operations.
var (
	ErrDraftNotFound  = errors.New("draft not found")
	ErrReadDraft      = errors.New("failed to read draft")
	ErrWritePost      = errors.New("failed to write post")
	ErrWritePreview   = errors.New("failed to write preview")
	ErrCleanup        = errors.New("failed to delete draft")
	ErrOutputExists   = errors.New("post already exists")
	ErrUnknownCommand = errors.New("unknown command")
	ErrInvalidFlags   = errors.New("invalid arguments")
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

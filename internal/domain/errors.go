package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent error conditions in the secpad domain.
// These errors are returned by the public API and can be checked with errors.Is.
var (
	// ErrDestinationExists is returned when a rename target is already present.
	// Existing files are never overwritten.
	ErrDestinationExists = errors.New("secpad: destination already exists")

	// ErrAborted is returned when a pass stops at the first rename failure.
	ErrAborted = errors.New("secpad: pass aborted")

	// ErrPartial is returned when a pass continued past one or more failures.
	ErrPartial = errors.New("secpad: pass completed with failures")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("secpad: invalid configuration")
)

// Reason codes attached to rename failures.
const (
	ErrCodeDestinationExists = "DESTINATION_EXISTS"
	ErrCodeSourceNotFound    = "SOURCE_NOT_FOUND"
	ErrCodePermissionDenied  = "PERMISSION_DENIED"
	ErrCodeRenameFailed      = "RENAME_FAILED"
)

// RenameError reports a rename the file system refused or could not perform.
type RenameError struct {
	Old  string
	New  string
	Code string
	Err  error
}

func (e *RenameError) Error() string {
	return fmt.Sprintf("rename %s -> %s: %s: %v", e.Old, e.New, e.Code, e.Err)
}

func (e *RenameError) Unwrap() error { return e.Err }

// CodeOf returns the reason code of err, or ErrCodeRenameFailed when err
// carries no *RenameError.
func CodeOf(err error) string {
	var re *RenameError
	if errors.As(err, &re) {
		return re.Code
	}
	return ErrCodeRenameFailed
}

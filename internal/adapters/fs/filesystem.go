// Package fs implements the file system ports on top of the os package.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bft-labs/secpad/internal/domain"
)

// renameFunc is swapped in tests to simulate failures.
var renameFunc = os.Rename

// OS implements ports.FileSystem against the local file system.
type OS struct{}

// NewOS creates a new local file system adapter.
func NewOS() *OS {
	return &OS{}
}

// ListEntries returns the names of all entries in dir, sorted by name.
func (OS) ListEntries(ctx context.Context, dir string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names, nil
}

// Rename moves dir/oldName to dir/newName.
// It refuses when newName already exists. The existence check and the rename
// are not atomic; a file created in between by another process is replaced.
func (OS) Rename(ctx context.Context, dir, oldName, newName string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	src := filepath.Join(dir, oldName)
	dst := filepath.Join(dir, newName)

	if _, err := os.Lstat(dst); err == nil {
		if !sameFile(src, dst) {
			return &domain.RenameError{Old: oldName, New: newName, Code: domain.ErrCodeDestinationExists, Err: domain.ErrDestinationExists}
		}
	} else if !os.IsNotExist(err) {
		return &domain.RenameError{Old: oldName, New: newName, Code: errorToCode(err), Err: err}
	}

	if err := renameFunc(src, dst); err != nil {
		return &domain.RenameError{Old: oldName, New: newName, Code: errorToCode(err), Err: err}
	}
	return nil
}

// sameFile reports whether src and dst name the same file, which happens on
// case-insensitive file systems for names differing only in case.
func sameFile(src, dst string) bool {
	a, err := os.Lstat(src)
	if err != nil {
		return false
	}
	b, err := os.Lstat(dst)
	if err != nil {
		return false
	}
	return os.SameFile(a, b)
}

func errorToCode(err error) string {
	if os.IsNotExist(err) {
		return domain.ErrCodeSourceNotFound
	}
	if os.IsPermission(err) {
		return domain.ErrCodePermissionDenied
	}
	if strings.Contains(err.Error(), "permission denied") {
		return domain.ErrCodePermissionDenied
	}
	return domain.ErrCodeRenameFailed
}

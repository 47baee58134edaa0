package ports

import "context"

// DirectoryLister lists the entries of a directory.
type DirectoryLister interface {
	// ListEntries returns entry names (not paths) of dir.
	// The listing is read once; later changes to dir are not reflected.
	ListEntries(ctx context.Context, dir string) ([]string, error)
}

// Renamer renames entries inside a directory.
type Renamer interface {
	// Rename moves dir/oldName to dir/newName.
	// Implementations must refuse to overwrite an existing destination and
	// must not retry on failure.
	Rename(ctx context.Context, dir, oldName, newName string) error
}

// FileSystem combines the file system operations a pass needs.
type FileSystem interface {
	DirectoryLister
	Renamer
}

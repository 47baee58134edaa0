package report

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/bft-labs/secpad/internal/domain"
)

// FileStore implements ports.ReportStore using a JSON file.
// The file is output for the operator or other tools; secpad only writes it.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore writing to path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Save writes r, replacing any previous report.
func (s *FileStore) Save(ctx context.Context, r domain.Report) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

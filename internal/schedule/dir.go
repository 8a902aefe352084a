package schedule

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DirSource reads day documents from a local directory: <dir>/<day><ext>.
type DirSource struct {
	dir string
	ext string
}

// NewDirSource creates a source reading files with the extension of format.
func NewDirSource(dir string, format Format) *DirSource {
	return &DirSource{dir: dir, ext: format.Extension()}
}

// Path returns the file path for a day.
func (s *DirSource) Path(day string) string {
	return filepath.Join(s.dir, day+s.ext)
}

// Fetch reads the file for day.
func (s *DirSource) Fetch(ctx context.Context, day string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path := s.Path(day)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDayNotFound, path)
		}
		return nil, fmt.Errorf("reading schedule file: %w", err)
	}
	return data, nil
}

// Save writes a day document, creating the directory if needed.
func (s *DirSource) Save(day string, data []byte) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating schedule directory: %w", err)
	}
	if err := os.WriteFile(s.Path(day), data, 0o644); err != nil {
		return fmt.Errorf("writing schedule file: %w", err)
	}
	return nil
}

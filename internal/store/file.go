package store

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileStore keeps the document in a single JSON file. Writes go to a
// temporary file in the same directory followed by a rename, so a crash
// mid-write never corrupts the previously persisted document.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore and ensures the parent directory
// exists.
func NewFileStore(path string) (*FileStore, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", dir, err)
	}
	return &FileStore{path: path}, nil
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// Read returns the file contents, or exists=false when the file is absent.
func (s *FileStore) Read() ([]byte, bool, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read document file: %w", err)
	}
	return data, true, nil
}

// Write atomically replaces the document file.
func (s *FileStore) Write(data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace document file: %w", err)
	}
	return nil
}

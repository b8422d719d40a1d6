package slot

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// File is a slot stored in a single file. Saves write a temporary file in
// the same directory and rename it over the target.
type File struct {
	path string
}

// NewFile returns a file slot at path, creating the parent directory.
func NewFile(path string) (*File, error) {
	if path == "" {
		return nil, fmt.Errorf("file slot: path required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("creating slot directory: %w", err)
	}
	return &File{path: path}, nil
}

// Load reads the file.
func (f *File) Load(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("reading slot file: %w", err)
	}
	return data, nil
}

// Save atomically replaces the file contents.
func (f *File) Save(_ context.Context, data []byte) (retErr error) {
	tmp, err := os.CreateTemp(filepath.Dir(f.path), "."+filepath.Base(f.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer func() {
		if retErr != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("replacing slot file: %w", err)
	}
	return nil
}

func (f *File) Close() error { return nil }

package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// BlobStorage holds uploaded file bytes. The media store only ever sees
// the metadata; these implementations own the bytes.
type BlobStorage interface {
	// Save writes the file and returns its public URL.
	Save(ctx context.Context, filename string, data []byte, contentType string) (string, error)
	Remove(ctx context.Context, filename string) error
}

// LocalStorage keeps uploads on disk under a single directory, served
// statically at /uploads.
type LocalStorage struct {
	dir string
}

func NewLocalStorage(dir string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create uploads directory: %w", err)
	}
	return &LocalStorage{dir: dir}, nil
}

func (l *LocalStorage) Save(ctx context.Context, filename string, data []byte, contentType string) (string, error) {
	if err := os.WriteFile(filepath.Join(l.dir, filename), data, 0o644); err != nil {
		return "", err
	}
	return "/uploads/" + filename, nil
}

func (l *LocalStorage) Remove(ctx context.Context, filename string) error {
	return os.Remove(filepath.Join(l.dir, filename))
}

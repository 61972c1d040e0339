// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileBackend keeps each document in <dir>/<name>.json.
type FileBackend struct {
	dir string
}

// NewFileBackend creates dir if needed.
func NewFileBackend(dir string) (*FileBackend, error) {
	if dir == "" {
		return nil, errors.New("data directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileBackend{dir: dir}, nil
}

func (b *FileBackend) Dir() string {
	return b.dir
}

func (b *FileBackend) path(doc Document) string {
	return filepath.Join(b.dir, string(doc)+".json")
}

func (b *FileBackend) Load(ctx context.Context, doc Document) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(b.path(doc))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNoDocument
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", doc, err)
	}
	return data, nil
}

// Save writes to a temp file in the same directory and renames it over the
// old document, so a crash mid-write never leaves a truncated file behind.
func (b *FileBackend) Save(ctx context.Context, doc Document, payload []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(b.dir, "."+string(doc)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp for %s: %w", doc, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", doc, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync %s: %w", doc, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", doc, err)
	}
	if err := os.Rename(tmpName, b.path(doc)); err != nil {
		return fmt.Errorf("replace %s: %w", doc, err)
	}
	return nil
}

func (b *FileBackend) Close() error {
	return nil
}

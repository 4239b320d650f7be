// AngelaMos | 2026
// file.go

package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileGateway keeps the durable record in a single JSON file. Saves go
// through a temp file and rename so a crash mid-write never leaves a
// half-written record behind.
type FileGateway struct {
	path string
}

func NewFileGateway(path string) (*FileGateway, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create store directory: %w", err)
	}
	return &FileGateway{path: path}, nil
}

func (g *FileGateway) Load(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(g.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNoRecord
	}
	if err != nil {
		return nil, fmt.Errorf("read record file: %w", err)
	}
	return data, nil
}

func (g *FileGateway) Save(_ context.Context, data []byte) error {
	tmp := g.path + ".tmp"

	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write record file: %w", err)
	}

	if err := os.Rename(tmp, g.path); err != nil {
		return fmt.Errorf("replace record file: %w", err)
	}

	return nil
}

func (g *FileGateway) Ping(_ context.Context) error {
	dir := filepath.Dir(g.path)
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("stat store directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("store path %s is not a directory", dir)
	}
	return nil
}

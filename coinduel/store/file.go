package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// FileSnapshot persists a namespace as a single JSON document on disk.
// Writes go to a temp file in the same directory followed by a rename, so a
// crash mid-write never corrupts the previous document.
type FileSnapshot[V any] struct {
	path string
}

func NewFileSnapshot[V any](dir, name string) (*FileSnapshot[V], error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: create data dir %s: %v", ErrUnavailable, dir, err)
	}
	return &FileSnapshot[V]{path: filepath.Join(dir, name)}, nil
}

func (s *FileSnapshot[V]) Load(_ context.Context) (map[string]V, error) {
	start := time.Now()

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]V{}, nil
		}
		return nil, fmt.Errorf("%w: read %s: %v", ErrUnavailable, s.path, err)
	}

	data := map[string]V{}
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrUnavailable, s.path, err)
	}

	slog.Debug("Snapshot loaded",
		slog.String("type", "db"),
		slog.String("path", s.path),
		slog.Int("entries", len(data)),
		slog.Duration("took", time.Since(start)),
	)
	return data, nil
}

func (s *FileSnapshot[V]) Save(_ context.Context, data map[string]V) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", ErrUnavailable, s.path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: create temp for %s: %v", ErrUnavailable, s.path, err)
	}

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: write %s: %v", ErrUnavailable, s.path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: close %s: %v", ErrUnavailable, s.path, err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: rename %s: %v", ErrUnavailable, s.path, err)
	}
	return nil
}

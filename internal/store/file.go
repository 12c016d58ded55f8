package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileBackend is a local key-value file: one JSON object mapping keys to
// serialized text. Writes go to a temp file that is renamed into place.
type FileBackend struct {
	path string
	mu   sync.Mutex
}

// NewFileBackend returns a backend stored at path. The file is created on first Put.
func NewFileBackend(path string) (*FileBackend, error) {
	if path == "" {
		return nil, fmt.Errorf("file store path is empty")
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create store directory: %w", err)
		}
	}
	return &FileBackend{path: path}, nil
}

// Get implements Backend.
func (f *FileBackend) Get(_ context.Context, key string) ([]byte, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	entries, err := f.read()
	if err != nil {
		return nil, false, err
	}
	value, ok := entries[key]
	if !ok {
		return nil, false, nil
	}
	return []byte(value), true, nil
}

// Put implements Backend.
func (f *FileBackend) Put(_ context.Context, key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	entries, err := f.read()
	if errors.Is(err, ErrCorruptBackend) {
		entries = map[string]string{}
	} else if err != nil {
		return err
	}
	entries[key] = string(value)

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal store file: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".store-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("failed to replace store file: %w", err)
	}
	return nil
}

// Close implements Backend.
func (f *FileBackend) Close() error {
	return nil
}

// read returns the current entries. A missing file is an empty store; a file
// that does not parse returns an error wrapping ErrCorruptBackend. Put then
// starts over from an empty map.
func (f *FileBackend) read() (map[string]string, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read store file %s: %w", f.path, err)
	}
	if len(data) == 0 {
		return map[string]string{}, nil
	}

	entries := map[string]string{}
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: failed to parse store file %s: %v", ErrCorruptBackend, f.path, err)
	}
	return entries, nil
}

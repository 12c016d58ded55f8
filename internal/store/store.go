// Package store persists the résumé record as a single serialized value in a key-value backend.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jonathan/resume-editor/internal/schemas"
	"github.com/jonathan/resume-editor/internal/types"
)

// DefaultKey is the fixed key the résumé is stored under.
const DefaultKey = "resume"

// Store loads and saves the résumé record.
type Store interface {
	// Load returns the stored résumé. A missing value yields the empty résumé
	// with Found=false; a corrupt value yields the empty résumé with Corrupt set.
	// Only backend failures are returned as errors.
	Load(ctx context.Context) (LoadResult, error)
	// Save overwrites the stored value with r.
	Save(ctx context.Context, r types.Resume) error
	Close() error
}

// LoadResult is the outcome of loading persisted state.
type LoadResult struct {
	Resume  types.Resume
	Found   bool
	Corrupt error
}

// Backend is a minimal key-value store holding serialized text.
type Backend interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Put(ctx context.Context, key string, value []byte) error
	Close() error
}

// ResumeStore implements Store over a Backend.
type ResumeStore struct {
	backend Backend
	key     string
}

// New returns a Store keeping the résumé under key in backend.
func New(backend Backend, key string) *ResumeStore {
	if key == "" {
		key = DefaultKey
	}
	return &ResumeStore{backend: backend, key: key}
}

// Key returns the key the résumé is stored under.
func (s *ResumeStore) Key() string {
	return s.key
}

// Load implements Store.
func (s *ResumeStore) Load(ctx context.Context) (LoadResult, error) {
	data, found, err := s.backend.Get(ctx, s.key)
	if errors.Is(err, ErrCorruptBackend) {
		return LoadResult{Resume: types.NewResume(), Found: true, Corrupt: &DecodeError{Cause: err}}, nil
	}
	if err != nil {
		return LoadResult{}, &BackendError{Op: "get", Key: s.key, Cause: err}
	}
	if !found {
		return LoadResult{Resume: types.NewResume()}, nil
	}

	r, err := Decode(data)
	if err != nil {
		return LoadResult{Resume: types.NewResume(), Found: true, Corrupt: err}, nil
	}
	return LoadResult{Resume: r, Found: true}, nil
}

// Save implements Store.
func (s *ResumeStore) Save(ctx context.Context, r types.Resume) error {
	data, err := Encode(r)
	if err != nil {
		return err
	}
	if err := s.backend.Put(ctx, s.key, data); err != nil {
		return &BackendError{Op: "put", Key: s.key, Cause: err}
	}
	return nil
}

// Close releases the backend.
func (s *ResumeStore) Close() error {
	return s.backend.Close()
}

// Encode serializes a résumé to its stored text form.
func Encode(r types.Resume) ([]byte, error) {
	data, err := json.Marshal(r.Normalize())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal resume: %w", err)
	}
	return data, nil
}

// Decode parses stored text, checking it against the résumé schema first.
func Decode(data []byte) (types.Resume, error) {
	if err := schemas.ValidateResume(data); err != nil {
		return types.Resume{}, &DecodeError{Cause: err}
	}

	var r types.Resume
	if err := json.Unmarshal(data, &r); err != nil {
		return types.Resume{}, &DecodeError{Cause: err}
	}
	return r.Normalize(), nil
}

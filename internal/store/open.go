package store

import (
	"context"
	"fmt"
)

// Backend kinds accepted by Open.
const (
	KindFile     = "file"
	KindMemory   = "memory"
	KindRedis    = "redis"
	KindPostgres = "postgres"
)

// DefaultPath is where the file backend keeps its data when no path is configured.
const DefaultPath = ".resume-editor/store.json"

// Options selects and configures a backend.
type Options struct {
	Kind string // file, memory, redis, postgres
	Path string // file backend location
	URL  string // redis or postgres connection URL
	Key  string // key the résumé is stored under
}

// Open builds the configured Store.
func Open(ctx context.Context, opts Options) (*ResumeStore, error) {
	var (
		backend Backend
		err     error
	)

	switch opts.Kind {
	case "", KindFile:
		path := opts.Path
		if path == "" {
			path = DefaultPath
		}
		backend, err = NewFileBackend(path)
	case KindMemory:
		backend = NewMemoryBackend()
	case KindRedis:
		if opts.URL == "" {
			return nil, fmt.Errorf("redis store requires a url")
		}
		backend, err = NewRedisBackend(ctx, opts.URL)
	case KindPostgres:
		if opts.URL == "" {
			return nil, fmt.Errorf("postgres store requires a url")
		}
		backend, err = NewPostgresBackend(ctx, opts.URL)
	default:
		return nil, fmt.Errorf("unknown store backend: %s", opts.Kind)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", opts.Kind, err)
	}

	return New(backend, opts.Key), nil
}

package store

import (
	"context"

	"github.com/jonathan/resume-editor/internal/db"
)

// PostgresBackend stores values in the kv_store table.
type PostgresBackend struct {
	database *db.DB
}

// NewPostgresBackend connects to PostgreSQL and makes sure the table exists.
func NewPostgresBackend(ctx context.Context, databaseURL string) (*PostgresBackend, error) {
	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return nil, err
	}
	if err := database.EnsureSchema(ctx); err != nil {
		database.Close()
		return nil, err
	}
	return &PostgresBackend{database: database}, nil
}

// Get implements Backend.
func (b *PostgresBackend) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, found, err := b.database.GetValue(ctx, key)
	if err != nil || !found {
		return nil, found, err
	}
	return []byte(value), true, nil
}

// Put implements Backend.
func (b *PostgresBackend) Put(ctx context.Context, key string, value []byte) error {
	return b.database.PutValue(ctx, key, string(value))
}

// Close implements Backend.
func (b *PostgresBackend) Close() error {
	b.database.Close()
	return nil
}

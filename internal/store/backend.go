// Package store persists calculator history and preferences behind a small
// key/value Backend, so the same History and Preferences types work against
// plain files, SQLite, or memory.
package store

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// Backend is a string key/value store. Implementations must be safe for
// concurrent use.
type Backend interface {
	// Get returns the value stored under key and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Kind names a backend implementation.
type Kind string

const (
	KindFile   Kind = "file"
	KindSQLite Kind = "sqlite"
	KindMemory Kind = "memory"
)

// sqliteFileName is the database created inside the data directory.
const sqliteFileName = "calcterm.db"

// Open constructs the backend of the given kind rooted at dir.
func Open(kind Kind, dir string) (Backend, error) {
	switch Kind(strings.ToLower(string(kind))) {
	case KindFile, "":
		return NewFileBackend(dir)
	case KindSQLite:
		return OpenSQLite(filepath.Join(dir, sqliteFileName))
	case KindMemory:
		return NewMemoryBackend(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", kind)
	}
}

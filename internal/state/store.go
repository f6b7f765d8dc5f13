// Package state persists introspected models in SQLite so unchanged schema
// files can be skipped on the next run.
package state

import (
	"context"
	"time"

	"github.com/leapstack-labs/leapgql/pkg/core"
)

// Store persists introspection snapshots keyed by schema file path.
type Store interface {
	Open(path string) error
	Close() error
	Migrate() error

	// GetFileHashes returns the stored hashes for filePath, zero if unknown.
	GetFileHashes(ctx context.Context, filePath string) (FileHashes, error)
	// SaveFile replaces the snapshot of filePath.
	SaveFile(ctx context.Context, filePath string, hashes FileHashes, models []core.Model) error
	// LoadFile returns the models stored for filePath in document order.
	LoadFile(ctx context.Context, filePath string) ([]core.Model, error)
	DeleteFile(ctx context.Context, filePath string) error
	ListFiles(ctx context.Context) ([]FileRecord, error)

	// ListModels returns every stored model ordered by file path then position.
	ListModels(ctx context.Context) ([]core.Model, error)
	// GetModel returns the first stored model with the given name.
	GetModel(ctx context.Context, name string) (*core.Model, error)
}

// FileHashes identifies the inputs a stored snapshot was built from.
// A snapshot is reusable only while both hashes match.
type FileHashes struct {
	// Content is the hash of the raw file bytes
	Content string
	// Config fingerprints the settings the models were deserialized with
	Config string
}

// FileRecord describes a stored schema file.
type FileRecord struct {
	ID          string
	Path        string
	ContentHash string
	ConfigHash  string
	Models      int
	UpdatedAt   time.Time
}

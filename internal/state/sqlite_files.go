package state

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/leapstack-labs/leapgql/pkg/core"
)

// GetFileHashes retrieves the content and config hashes for a file path.
func (s *SQLiteStore) GetFileHashes(ctx context.Context, filePath string) (FileHashes, error) {
	if err := s.checkOpen(); err != nil {
		return FileHashes{}, err
	}

	var hashes FileHashes
	err := s.db.QueryRowContext(ctx,
		`SELECT content_hash, config_hash FROM files WHERE path = ?`, filePath,
	).Scan(&hashes.Content, &hashes.Config)
	if errors.Is(err, sql.ErrNoRows) {
		return FileHashes{}, nil
	}
	if err != nil {
		return FileHashes{}, fmt.Errorf("failed to get file hashes: %w", err)
	}

	return hashes, nil
}

// SaveFile replaces the stored snapshot of a schema file.
func (s *SQLiteStore) SaveFile(ctx context.Context, filePath string, hashes FileHashes, models []core.Model) error {
	if err := s.checkOpen(); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM files WHERE path = ?`, filePath); err != nil {
		return fmt.Errorf("failed to clear file %s: %w", filePath, err)
	}

	fileID := generateID()
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO files (id, path, content_hash, config_hash, updated_at) VALUES (?, ?, ?, ?, ?)`,
		fileID, filePath, hashes.Content, hashes.Config, time.Now().UTC(),
	); err != nil {
		return fmt.Errorf("failed to save file %s: %w", filePath, err)
	}

	for i, m := range models {
		payload, err := json.Marshal(m)
		if err != nil {
			return fmt.Errorf("failed to encode model %s: %w", m.Name, err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO models (id, file_id, position, name, source, payload) VALUES (?, ?, ?, ?, ?, ?)`,
			generateID(), fileID, i, m.Name, m.Source, string(payload),
		); err != nil {
			return fmt.Errorf("failed to save model %s: %w", m.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit file %s: %w", filePath, err)
	}
	return nil
}

// LoadFile returns the models stored for a file path in document order.
// An unknown path yields an empty slice.
func (s *SQLiteStore) LoadFile(ctx context.Context, filePath string) ([]core.Model, error) {
	if err := s.checkOpen(); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT m.payload FROM models m
		JOIN files f ON f.id = m.file_id
		WHERE f.path = ?
		ORDER BY m.position`, filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load file %s: %w", filePath, err)
	}
	defer func() { _ = rows.Close() }()

	return scanModels(rows)
}

// DeleteFile removes a file and its models.
func (s *SQLiteStore) DeleteFile(ctx context.Context, filePath string) error {
	if err := s.checkOpen(); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM files WHERE path = ?`, filePath); err != nil {
		return fmt.Errorf("failed to delete file %s: %w", filePath, err)
	}
	return nil
}

// ListFiles returns all stored files ordered by path.
func (s *SQLiteStore) ListFiles(ctx context.Context) ([]FileRecord, error) {
	if err := s.checkOpen(); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT f.id, f.path, f.content_hash, f.config_hash, f.updated_at, COUNT(m.id)
		FROM files f
		LEFT JOIN models m ON m.file_id = f.id
		GROUP BY f.id
		ORDER BY f.path`)
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}
	defer func() { _ = rows.Close() }()

	files := []FileRecord{}
	for rows.Next() {
		var f FileRecord
		if err := rows.Scan(&f.ID, &f.Path, &f.ContentHash, &f.ConfigHash, &f.UpdatedAt, &f.Models); err != nil {
			return nil, fmt.Errorf("failed to scan file: %w", err)
		}
		files = append(files, f)
	}
	return files, rows.Err()
}

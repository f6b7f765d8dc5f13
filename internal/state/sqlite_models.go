package state

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/leapstack-labs/leapgql/pkg/core"
)

// ListModels returns every stored model ordered by file path then position.
func (s *SQLiteStore) ListModels(ctx context.Context) ([]core.Model, error) {
	if err := s.checkOpen(); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT m.payload FROM models m
		JOIN files f ON f.id = m.file_id
		ORDER BY f.path, m.position`)
	if err != nil {
		return nil, fmt.Errorf("failed to list models: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return scanModels(rows)
}

// GetModel returns the first stored model named name.
func (s *SQLiteStore) GetModel(ctx context.Context, name string) (*core.Model, error) {
	if err := s.checkOpen(); err != nil {
		return nil, err
	}

	var payload string
	err := s.db.QueryRowContext(ctx, `
		SELECT m.payload FROM models m
		JOIN files f ON f.id = m.file_id
		WHERE m.name = ?
		ORDER BY f.path, m.position
		LIMIT 1`, name,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("model not found: %s", name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get model: %w", err)
	}

	var m core.Model
	if err := json.Unmarshal([]byte(payload), &m); err != nil {
		return nil, fmt.Errorf("failed to decode model %s: %w", name, err)
	}
	return &m, nil
}

func scanModels(rows *sql.Rows) ([]core.Model, error) {
	models := []core.Model{}
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("failed to scan model: %w", err)
		}
		var m core.Model
		if err := json.Unmarshal([]byte(payload), &m); err != nil {
			return nil, fmt.Errorf("failed to decode model: %w", err)
		}
		models = append(models, m)
	}
	return models, rows.Err()
}

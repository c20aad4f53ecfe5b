package server

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// SQLiteStore keeps each tournament as a JSONB document row, one per
// tournament, in the shared libSQL database.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) Load(ctx context.Context, id string) (TournamentRecord, error) {
	var data string
	err := s.db.QueryRowContext(ctx,
		`SELECT json(data) FROM tournaments WHERE id = ?`, id,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return TournamentRecord{}, ErrNotFound
	}
	if err != nil {
		return TournamentRecord{}, fmt.Errorf("loading tournament %q: %w", id, err)
	}

	var rec TournamentRecord
	if err := json.Unmarshal([]byte(data), &rec); err != nil {
		return TournamentRecord{}, fmt.Errorf("decoding tournament %q: %w", id, err)
	}
	return rec, nil
}

func (s *SQLiteStore) Save(ctx context.Context, rec TournamentRecord) error {
	stamp(&rec)
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encoding tournament %q: %w", rec.ID, err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO tournaments (id, data, created_at, updated_at)
		VALUES (?, jsonb(?), ?, ?)
		ON CONFLICT (id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at
	`, rec.ID, string(data), rec.CreatedAt, rec.UpdatedAt)
	if err != nil {
		return fmt.Errorf("saving tournament %q: %w", rec.ID, err)
	}
	return nil
}

func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM tournaments WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting tournament %q: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLiteStore) List(ctx context.Context) ([]TournamentSummary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT json(data) FROM tournaments ORDER BY updated_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing tournaments: %w", err)
	}
	defer rows.Close()

	var out []TournamentSummary
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		var rec TournamentRecord
		if err := json.Unmarshal([]byte(data), &rec); err != nil {
			return nil, fmt.Errorf("decoding tournament: %w", err)
		}
		out = append(out, rec.Summary())
	}
	return out, rows.Err()
}

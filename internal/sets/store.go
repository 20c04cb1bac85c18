package sets

import (
	"context"
	"database/sql"
	"errors"
	"strings"
)

// ErrNotFound is returned when a saved set does not exist or belongs to
// another user.
var ErrNotFound = errors.New("piece set not found")

// Record is one user-saved piece set. Pieces holds the codes joined with
// commas in the database and split back out here.
type Record struct {
	ID     string   `json:"id"`
	UserID string   `json:"userId"`
	Name   string   `json:"name"`
	Pieces []string `json:"pieces"`
}

type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

func (s *Store) Insert(ctx context.Context, r Record) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO piece_sets(id, user_id, name, pieces) VALUES(?,?,?,?)`,
		r.ID, r.UserID, r.Name, strings.Join(r.Pieces, ","),
	)
	return err
}

func (s *Store) Get(ctx context.Context, userID, id string) (Record, error) {
	var r Record
	var pieces string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, user_id, name, pieces FROM piece_sets WHERE id=? AND user_id=?`,
		id, userID,
	).Scan(&r.ID, &r.UserID, &r.Name, &pieces)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, err
	}
	r.Pieces = splitPieces(pieces)
	return r, nil
}

func (s *Store) ListByUser(ctx context.Context, userID string) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, name, pieces
		 FROM piece_sets
		 WHERE user_id=?
		 ORDER BY created_at ASC`, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Record
	for rows.Next() {
		var r Record
		var pieces string
		if err := rows.Scan(&r.ID, &r.UserID, &r.Name, &pieces); err != nil {
			return nil, err
		}
		r.Pieces = splitPieces(pieces)
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Store) Delete(ctx context.Context, userID, id string) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM piece_sets WHERE id=? AND user_id=?`, id, userID,
	)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func splitPieces(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

package sets

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
		CREATE TABLE piece_sets (
		  id TEXT PRIMARY KEY,
		  user_id TEXT NOT NULL,
		  name TEXT NOT NULL,
		  pieces TEXT NOT NULL,
		  created_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%SZ','now'))
		);`)
	require.NoError(t, err)
	return db
}

func TestStoreRoundTrip(t *testing.T) {
	s := NewStore(newTestDB(t))
	ctx := context.Background()

	rec := Record{ID: "set_1", UserID: "u1", Name: "demo", Pieces: []string{"DCCD", "HSSC"}}
	require.NoError(t, s.Insert(ctx, rec))

	got, err := s.Get(ctx, "u1", "set_1")
	require.NoError(t, err)
	assert.Equal(t, rec, got)

	list, err := s.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, rec, list[0])
}

func TestStoreScoping(t *testing.T) {
	s := NewStore(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, s.Insert(ctx, Record{ID: "set_1", UserID: "u1", Name: "demo", Pieces: []string{"DCCD"}}))

	// Another user cannot read or delete it.
	_, err := s.Get(ctx, "u2", "set_1")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, "u2", "set_1"), ErrNotFound)

	require.NoError(t, s.Delete(ctx, "u1", "set_1"))
	_, err = s.Get(ctx, "u1", "set_1")
	assert.ErrorIs(t, err, ErrNotFound)
}

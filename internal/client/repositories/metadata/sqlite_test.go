package metadata

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	// :memory: databases are per connection.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE metadata (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);`)
	require.NoError(t, err)
	return db
}

func TestSetAndGet_InsertThenGet(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "forum_users", []byte(`[]`)))

	v, err := r.Get(ctx, "forum_users")
	require.NoError(t, err)
	require.Equal(t, []byte(`[]`), v)
}

func TestGet_NotExists_ReturnsNilNil(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	v, err := r.Get(context.Background(), "current_user")
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestSet_UpsertOverwritesValue(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "forum_topics", []byte("old")))
	require.NoError(t, r.Set(ctx, "forum_topics", []byte("new")))

	v, err := r.Get(ctx, "forum_topics")
	require.NoError(t, err)
	require.Equal(t, []byte("new"), v)
}

func TestSetMany_WritesAllKeys(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.SetMany(ctx, map[string][]byte{
		"forum_users":  []byte(`[{"id":1}]`),
		"forum_topics": []byte(`[]`),
	}))

	m, err := r.List(ctx)
	require.NoError(t, err)
	assert.Len(t, m, 2)
	assert.Equal(t, []byte(`[{"id":1}]`), m["forum_users"])
}

func TestSetMany_RollsBackOnFailure(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	_, err = db.Exec(`
CREATE TABLE metadata (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL CHECK (length(value) < 10)
);`)
	require.NoError(t, err)

	r := NewSQLiteRepository(db)
	ctx := context.Background()
	require.NoError(t, r.Set(ctx, "forum_users", []byte("before")))

	// Keys are written in sorted order, so "a_first" lands before the
	// oversized value trips the CHECK constraint.
	err = r.SetMany(ctx, map[string][]byte{
		"a_first":     []byte("x"),
		"forum_users": []byte("far too long"),
	})
	require.Error(t, err)

	v, err := r.Get(ctx, "a_first")
	require.NoError(t, err)
	assert.Nil(t, v, "partial write must be rolled back")

	v, err = r.Get(ctx, "forum_users")
	require.NoError(t, err)
	assert.Equal(t, []byte("before"), v)
}

func TestList_ReturnsAllPairs(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "a", []byte{0xAA}))
	require.NoError(t, r.Set(ctx, "b", []byte{0xBB, 0xCC}))

	m, err := r.List(ctx)
	require.NoError(t, err)
	assert.Len(t, m, 2)
	assert.Equal(t, []byte{0xAA}, m["a"])
	assert.Equal(t, []byte{0xBB, 0xCC}, m["b"])
}

func TestDelete_RemovesKey_AndIsIdempotent(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "current_user", []byte(`{}`)))
	require.NoError(t, r.Delete(ctx, "current_user"))

	v, err := r.Get(ctx, "current_user")
	require.NoError(t, err)
	require.Nil(t, v)

	require.NoError(t, r.Delete(ctx, "current_user"))
}

func TestClear_RemovesAllKeys(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "a", []byte{1}))
	require.NoError(t, r.Set(ctx, "b", []byte{2}))
	require.NoError(t, r.Clear(ctx))

	m, err := r.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, m)
}

func TestErrorsAreWrapped_OnClosedDB(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()
	require.NoError(t, db.Close())

	_, err := r.Get(ctx, "k")
	require.ErrorContains(t, err, `get "k"`)

	err = r.Set(ctx, "k", []byte("v"))
	require.ErrorContains(t, err, `set "k"`)

	err = r.Delete(ctx, "k")
	require.ErrorContains(t, err, `delete "k"`)

	err = r.Clear(ctx)
	require.ErrorContains(t, err, "clear")

	_, err = r.List(ctx)
	require.ErrorContains(t, err, "list")

	require.Error(t, r.SetMany(ctx, map[string][]byte{"k": []byte("v")}))
}

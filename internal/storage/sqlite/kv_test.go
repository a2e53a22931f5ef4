package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *KVStore {
	t.Helper()
	db, err := NewDB(context.Background(), filepath.Join(t.TempDir(), "daybook.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewKVStore(db)
}

func TestKVStore_GetMissing(t *testing.T) {
	s := newTestStore(t)

	v, ok, err := s.Get(context.Background(), "nope")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestKVStore_SetGetOverwrite(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "todayQuestion", "first"))
	require.NoError(t, s.Set(ctx, "todayQuestion", "second"))

	v, ok, err := s.Get(ctx, "todayQuestion")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "second", v)
}

func TestKVStore_EmptyValueIsPresent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", ""))
	_, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestKVStore_Remove(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "memories", "[]"))
	require.NoError(t, s.Remove(ctx, "memories"))
	require.NoError(t, s.Remove(ctx, "memories"), "removing a missing key is not an error")

	_, ok, err := s.Get(ctx, "memories")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestKVStore_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "daybook.db")

	db, err := NewDB(ctx, path)
	require.NoError(t, err)
	require.NoError(t, NewKVStore(db).Set(ctx, "lastQuestionDate", "2024-06-01"))
	require.NoError(t, db.Close())

	db, err = NewDB(ctx, path)
	require.NoError(t, err)
	defer db.Close()

	v, ok, err := NewKVStore(db).Get(ctx, "lastQuestionDate")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "2024-06-01", v)
}

func TestNewDB_InMemory(t *testing.T) {
	db, err := NewDB(context.Background(), ":memory:")
	require.NoError(t, err)
	defer db.Close()

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM kv`).Scan(&n))
	assert.Zero(t, n)
}

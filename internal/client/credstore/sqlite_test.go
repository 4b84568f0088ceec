package credstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupStore(t *testing.T) *SQLiteStore {
	t.Helper()
	db, err := InitDatabase(context.Background(), "file:credstore?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewSQLiteStore(db)
}

func TestSQLiteStore_AbsentTokenMeansUnauthenticated(t *testing.T) {
	s := setupStore(t)

	token, err := s.Token(context.Background())
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestSQLiteStore_SaveAndDiscard(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "T1"))
	token, err := s.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "T1", token)

	// saving again replaces the single entry
	require.NoError(t, s.Save(ctx, "T2"))
	token, err = s.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "T2", token)

	require.NoError(t, s.Discard(ctx))
	token, err = s.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)

	// discarding an absent credential is not an error
	require.NoError(t, s.Discard(ctx))
}

func TestSQLiteStore_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "vault.db")

	db, err := InitDatabase(ctx, path)
	require.NoError(t, err)
	require.NoError(t, NewSQLiteStore(db).Save(ctx, "T"))
	require.NoError(t, db.Close())

	db, err = InitDatabase(ctx, path)
	require.NoError(t, err)
	defer db.Close()

	token, err := NewSQLiteStore(db).Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "T", token)
}

package credentials

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:credsvc?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE IF NOT EXISTS credentials (
  key   TEXT PRIMARY KEY,
  value TEXT NOT NULL
);
DELETE FROM credentials;
`)
	require.NoError(t, err)
	return db
}

func TestToken_EmptyStore(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))

	tok, err := repo.Token(context.Background())
	require.NoError(t, err)
	require.Empty(t, tok)
}

func TestSaveToken_RoundTrip(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.SaveToken(ctx, "tok-1"))
	tok, err := repo.Token(ctx)
	require.NoError(t, err)
	require.Equal(t, "tok-1", tok)

	// Overwrite wins.
	require.NoError(t, repo.SaveToken(ctx, "tok-2"))
	tok, err = repo.Token(ctx)
	require.NoError(t, err)
	require.Equal(t, "tok-2", tok)
}

func TestSaveToken_WritesTimestamp(t *testing.T) {
	db := setupDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.SaveToken(ctx, "tok"))

	var savedAt string
	require.NoError(t, db.QueryRow(`SELECT value FROM credentials WHERE key='token_saved_at'`).Scan(&savedAt))
	require.NotEmpty(t, savedAt)
}

func TestClear_Idempotent(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.SaveToken(ctx, "tok"))
	require.NoError(t, repo.Clear(ctx))

	tok, err := repo.Token(ctx)
	require.NoError(t, err)
	require.Empty(t, tok)

	require.NoError(t, repo.Clear(ctx), "clearing an empty store is a no-op")
}

package migrations

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func TestUp_SQLiteIsIdempotent(t *testing.T) {
	t.Parallel()

	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "admin.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, Up(db, DialectSQLite))
	require.NoError(t, Up(db, DialectSQLite))

	var tables int
	require.NoError(t, db.QueryRow(
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name IN ('admins', 'admin_statistics')`,
	).Scan(&tables))
	require.Equal(t, 2, tables)
}

func TestNew_RejectsUnknownDialect(t *testing.T) {
	t.Parallel()

	_, err := New(nil, "mysql")
	require.ErrorContains(t, err, "unsupported migration dialect")
}

package db_test

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tablesort/internal/db"
)

func seed(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "scores.db")
	conn, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer conn.Close()

	stmts := []string{
		`CREATE TABLE scores (name TEXT, points INTEGER, ratio REAL)`,
		`INSERT INTO scores VALUES ('carol', 7, 0.5), ('alice', 12, NULL), ('bob', NULL, 1.25)`,
		`CREATE TABLE "odd ""name""" (v TEXT)`,
		`INSERT INTO "odd ""name""" VALUES ('x')`,
	}
	for _, stmt := range stmts {
		_, err := conn.Exec(stmt)
		require.NoError(t, err, stmt)
	}

	return path
}

func TestOpenMissingFile(t *testing.T) {
	t.Parallel()

	_, err := db.Open(filepath.Join(t.TempDir(), "missing.db"))
	require.Error(t, err)
}

func TestOpenIsReadOnly(t *testing.T) {
	t.Parallel()

	conn, err := db.Open(seed(t))
	require.NoError(t, err)
	defer conn.Close()

	_, err = conn.Exec(`DELETE FROM scores`)
	require.Error(t, err)
}

func TestLoadTables(t *testing.T) {
	t.Parallel()

	conn, err := db.Open(seed(t))
	require.NoError(t, err)
	defer conn.Close()

	names, err := db.ListTables(conn)
	require.NoError(t, err)
	assert.Equal(t, []string{`odd "name"`, "scores"}, names)

	tables, err := db.LoadTables(conn)
	require.NoError(t, err)
	require.Len(t, tables, 2)

	odd := tables[0]
	assert.Equal(t, `odd "name"`, odd.ID)
	assert.Equal(t, []string{"x"}, odd.Column(0))

	scores := tables[1]
	assert.Equal(t, "scores", scores.ID)
	assert.Equal(t, []string{"name", "points", "ratio"}, scores.Header)
	assert.Equal(t, []string{"carol", "alice", "bob"}, scores.Column(0))
	assert.Equal(t, []string{"7", "12", ""}, scores.Column(1))
	assert.Equal(t, []string{"0.5", "", "1.25"}, scores.Column(2))
}

func TestLoadTableMissing(t *testing.T) {
	t.Parallel()

	conn, err := db.Open(seed(t))
	require.NoError(t, err)
	defer conn.Close()

	_, err = db.LoadTable(conn, "nope")
	require.Error(t, err)
}

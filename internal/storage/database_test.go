package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDatabase(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	db, err := NewDatabase(dbPath)
	require.NoError(t, err)
	defer db.Close()

	assert.NotNil(t, db.DB())
}

func TestNewDatabaseCreatesSchema(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	db, err := NewDatabase(dbPath)
	require.NoError(t, err)
	defer db.Close()

	var name string
	err = db.DB().QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='appointments'",
	).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "appointments", name)
}

func TestNewDatabaseReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	db, err := NewDatabase(dbPath)
	require.NoError(t, err)

	_, err = db.DB().Exec(
		"INSERT INTO appointments (id, title, date, created_at) VALUES (?, ?, ?, ?)",
		"abc", "dentist", "2026-09-01", 0,
	)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	// Reopening must not wipe existing rows.
	db, err = NewDatabase(dbPath)
	require.NoError(t, err)
	defer db.Close()

	var count int
	err = db.DB().QueryRow("SELECT COUNT(*) FROM appointments").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestBeginTx(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	db, err := NewDatabase(dbPath)
	require.NoError(t, err)
	defer db.Close()

	tx, err := db.BeginTx()
	require.NoError(t, err)

	_, err = tx.Exec(
		"INSERT INTO appointments (id, title, date, created_at) VALUES (?, ?, ?, ?)",
		"abc", "dentist", "2026-09-01", 0,
	)
	require.NoError(t, err)
	require.NoError(t, tx.Rollback())

	var count int
	err = db.DB().QueryRow("SELECT COUNT(*) FROM appointments").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 0, count, "rolled back insert should not persist")
}

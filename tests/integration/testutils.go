package integration

import (
	"os"
	"testing"

	"github.com/datebook/datebook/internal/appointment"
	"github.com/datebook/datebook/internal/config"
	"github.com/datebook/datebook/internal/storage"
)

// SetupTestEnvironment points the data dir at a temp location and returns it
func SetupTestEnvironment(t *testing.T) string {
	t.Helper()

	tempDir := t.TempDir()

	os.Setenv("DATEBOOK_DATA_DIR", tempDir)
	t.Cleanup(func() {
		os.Unsetenv("DATEBOOK_DATA_DIR")
	})

	return tempDir
}

// NewTestService builds the full storage stack inside the test environment
func NewTestService(t *testing.T) *appointment.Service {
	t.Helper()

	dbPath, err := config.DatabasePath()
	if err != nil {
		t.Fatalf("Failed to resolve database path: %v", err)
	}

	db, err := storage.NewDatabase(dbPath)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return appointment.NewService(appointment.NewRepository(db))
}

// WriteSettings saves a settings file into the test environment
func WriteSettings(t *testing.T, settings config.Settings) string {
	t.Helper()

	path, err := config.SettingsPath()
	if err != nil {
		t.Fatalf("Failed to resolve settings path: %v", err)
	}
	if err := config.SaveSettings(path, settings); err != nil {
		t.Fatalf("Failed to save settings: %v", err)
	}
	return path
}

package integration

import (
	"testing"
	"time"

	"github.com/datebook/datebook/internal/config"
	"github.com/datebook/datebook/internal/sync"
	"github.com/datebook/datebook/internal/tui/components"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// TestAppointmentLifecycle exercises the whole stack: data dir resolution,
// SQLite storage, and the service layer.
func TestAppointmentLifecycle(t *testing.T) {
	SetupTestEnvironment(t)
	service := NewTestService(t)

	a, inBounds, err := service.Create("dentist", day(2026, time.September, 14))
	if err != nil {
		t.Fatalf("Failed to create appointment: %v", err)
	}
	if !inBounds {
		t.Error("Expected in-bounds with no bounds configured")
	}

	appointments, err := service.List()
	if err != nil {
		t.Fatalf("Failed to list appointments: %v", err)
	}
	if len(appointments) != 1 || appointments[0].Title != "dentist" {
		t.Fatalf("Expected one appointment 'dentist', got %v", appointments)
	}

	removed, err := service.Remove(a.ID)
	if err != nil || !removed {
		t.Fatalf("Failed to remove appointment: removed=%v err=%v", removed, err)
	}
}

// TestSettingsDriveServiceBounds verifies the settings file feeds the
// service's advisory bounds the same way it feeds the date widget.
func TestSettingsDriveServiceBounds(t *testing.T) {
	SetupTestEnvironment(t)

	settings := config.DefaultSettings()
	settings.MinDate = "2017-01-01"
	settings.MaxDate = "2017-12-31"
	path := WriteSettings(t, settings)

	loaded, err := config.LoadSettings(path)
	if err != nil {
		t.Fatalf("Failed to load settings: %v", err)
	}

	minDate, maxDate, err := loaded.Bounds()
	if err != nil {
		t.Fatalf("Failed to parse bounds: %v", err)
	}

	service := NewTestService(t)
	service.SetBounds(minDate, maxDate)

	// Out-of-bounds creation is advisory: stored, flagged.
	a, inBounds, err := service.Create("reunion", day(2010, time.January, 1))
	if err != nil {
		t.Fatalf("Failed to create appointment: %v", err)
	}
	if inBounds {
		t.Error("Expected out-of-bounds flag for a 2010 date")
	}

	stored, err := service.Get(a.ID)
	if err != nil || stored == nil {
		t.Fatalf("Out-of-bounds appointment must still be persisted: %v", err)
	}
}

// TestSettingsWatcherFeedsWidget runs the watcher against a real settings
// file and pushes the reloaded bounds into a date input, covering the
// prop-update path end to end.
func TestSettingsWatcherFeedsWidget(t *testing.T) {
	SetupTestEnvironment(t)

	settings := config.DefaultSettings()
	path := WriteSettings(t, settings)

	watcher, err := sync.NewWatcher(path)
	if err != nil {
		t.Fatalf("Failed to create watcher: %v", err)
	}
	defer watcher.Stop()
	if err := watcher.Start(); err != nil {
		t.Fatalf("Failed to start watcher: %v", err)
	}

	dateInput := components.NewDateInput()
	dateInput.SelectDate(day(2026, time.June, 15))
	if dateInput.ErrorMessage() != "" {
		t.Fatalf("Expected valid selection, got %q", dateInput.ErrorMessage())
	}

	// Tighten min_date above the selected date on disk.
	settings.MinDate = "2026-07-01"
	WriteSettings(t, settings)

	select {
	case event := <-watcher.Changes():
		minDate, maxDate, err := event.Settings.Bounds()
		if err != nil {
			t.Fatalf("Failed to parse reloaded bounds: %v", err)
		}
		dateInput.SetBounds(minDate, maxDate)
	case <-time.After(2 * time.Second):
		t.Fatal("Timed out waiting for settings reload")
	}

	if dateInput.ErrorMessage() != settings.Messages.OutOfBounds {
		t.Errorf("Expected out-of-bounds error after reload, got %q", dateInput.ErrorMessage())
	}
}

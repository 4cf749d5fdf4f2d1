package tui

import (
	stdtime "time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/datebook/datebook/internal/appointment"
	"github.com/datebook/datebook/internal/config"
)

// Command Builders
//
// These methods create tea.Cmd functions for async operations. Model values
// a closure needs are captured before the closure is returned, so later
// state changes cannot leak into a pending command.

// Message types

type appointmentsLoadedMsg struct {
	appointments []appointment.Appointment
}

type appointmentSavedMsg struct {
	title    string
	date     string
	inBounds bool
}

type appointmentRemovedMsg struct {
	removed bool
}

type settingsChangedMsg struct {
	path     string
	settings config.Settings
}

type errMsg struct {
	err error
}

// loadAppointments reloads the full appointment list
func (m *Model) loadAppointments() tea.Cmd {
	capturedService := m.service
	return func() tea.Msg {
		appointments, err := capturedService.List()
		if err != nil {
			return errMsg{err}
		}
		return appointmentsLoadedMsg{appointments: appointments}
	}
}

// saveAppointment persists a new appointment
func (m *Model) saveAppointment(title string, date stdtime.Time) tea.Cmd {
	capturedService := m.service
	return func() tea.Msg {
		a, inBounds, err := capturedService.Create(title, date)
		if err != nil {
			return errMsg{err}
		}
		return appointmentSavedMsg{
			title:    a.Title,
			date:     a.DateString(),
			inBounds: inBounds,
		}
	}
}

// removeSelected deletes the appointment under the cursor
func (m *Model) removeSelected() tea.Cmd {
	selected := m.appointmentList.Selected()
	if selected == nil {
		return nil
	}

	capturedService := m.service
	capturedID := selected.ID
	return func() tea.Msg {
		removed, err := capturedService.Remove(capturedID)
		if err != nil {
			return errMsg{err}
		}
		return appointmentRemovedMsg{removed: removed}
	}
}

// waitForSettings blocks on the watcher channel and converts the next
// settings change into a message. Re-issued after each delivery.
func (m *Model) waitForSettings() tea.Cmd {
	capturedWatcher := m.watcher
	if capturedWatcher == nil {
		return nil
	}
	return func() tea.Msg {
		event, ok := <-capturedWatcher.Changes()
		if !ok {
			return nil
		}
		return settingsChangedMsg{path: event.Path, settings: event.Settings}
	}
}

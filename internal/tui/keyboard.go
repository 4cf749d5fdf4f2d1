package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Keyboard Handlers
//
// handleKeyPress dispatches on the current mode: form keys while the add
// form is open, list navigation otherwise.

// handleKeyPress is the main keyboard input dispatcher
func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.mode == ModeAdd {
		return m.handleFormKeys(msg)
	}
	return m.handleListKeys(msg)
}

// handleListKeys handles keys while browsing the appointment list
func (m *Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "a":
		return m, m.enterAddMode()

	case "d", "x":
		return m, m.removeSelected()

	case "r":
		return m, m.loadAppointments()
	}

	var cmd tea.Cmd
	m.appointmentList, cmd = m.appointmentList.Update(msg)
	return m, cmd
}

// handleFormKeys handles keys while the add form is open. While the calendar
// popup is visible the date input consumes everything except the keys below.
func (m *Model) handleFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit

	case tea.KeyEsc:
		// Esc closes the popup first; a second esc cancels the form.
		if m.dateInput.PopupShown() {
			var cmd tea.Cmd
			m.dateInput, cmd = m.dateInput.Update(msg)
			return m, cmd
		}
		m.leaveAddMode()
		return m, nil

	case tea.KeyTab, tea.KeyShiftTab:
		return m, m.toggleFormFocus()

	case tea.KeyEnter:
		if m.formFocus == focusTitle {
			return m, m.toggleFormFocus()
		}
		if m.dateInput.PopupShown() {
			// Enter selects in the calendar; the widget closes the popup.
			var cmd tea.Cmd
			m.dateInput, cmd = m.dateInput.Update(msg)
			return m, cmd
		}
		m.dateInput.CommitText()
		return m, m.submitForm()
	}

	if m.formFocus == focusDate {
		var cmd tea.Cmd
		m.dateInput, cmd = m.dateInput.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.titleInput, cmd = m.titleInput.Update(msg)
	return m, cmd
}

// toggleFormFocus moves focus between the title and date fields. Leaving the
// date field blurs it, which commits any typed text.
func (m *Model) toggleFormFocus() tea.Cmd {
	if m.formFocus == focusTitle {
		m.formFocus = focusDate
		m.titleInput.Blur()
		return m.dateInput.Focus()
	}

	m.formFocus = focusTitle
	m.dateInput.Blur()
	return m.titleInput.Focus()
}

// submitForm validates the form and saves the appointment. Out-of-bounds
// dates are accepted and flagged afterwards; a missing date only blocks the
// save when the field is required.
func (m *Model) submitForm() tea.Cmd {
	title := strings.TrimSpace(m.titleInput.Value())
	if title == "" {
		m.formError = "A title is required"
		return nil
	}

	date := m.dateInput.Date()
	if date == nil {
		if m.settings.Required {
			m.formError = m.settings.Messages.Required
			return nil
		}
		m.formError = "Pick a date for the appointment"
		return nil
	}

	m.formError = ""
	m.leaveAddMode()
	return m.saveAppointment(title, *date)
}

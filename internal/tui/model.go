package tui

import (
	"fmt"
	stdtime "time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/datebook/datebook/internal/appointment"
	"github.com/datebook/datebook/internal/config"
	"github.com/datebook/datebook/internal/logger"
	"github.com/datebook/datebook/internal/sync"
	"github.com/datebook/datebook/internal/tui/components"
)

// Mode represents the top-level TUI mode
type Mode int

const (
	ModeList Mode = iota // browsing the appointment list
	ModeAdd              // filling in the add form
)

// Form focus targets
const (
	focusTitle = iota
	focusDate
)

// Minimum terminal dimensions
const (
	MinTerminalWidth  = 60
	MinTerminalHeight = 16
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			Padding(0, 1)

	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	formLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	formErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Italic(true)

	statusMsgStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("40"))
)

// Model represents the main TUI state
type Model struct {
	service  *appointment.Service
	watcher  *sync.Watcher
	settings config.Settings

	mode Mode

	appointmentList *components.AppointmentList
	statusBar       *components.StatusBar

	titleInput textinput.Model
	dateInput  *components.DateInput
	formFocus  int
	formError  string

	width     int
	height    int
	statusMsg string
	err       error
}

// NewModel creates the main TUI model
func NewModel(service *appointment.Service, settings config.Settings) *Model {
	ti := textinput.New()
	ti.Placeholder = "Appointment title"
	ti.CharLimit = 120
	ti.Width = 40

	m := &Model{
		service:         service,
		settings:        settings,
		mode:            ModeList,
		appointmentList: components.NewAppointmentList(),
		statusBar:       components.NewStatusBar(),
		titleInput:      ti,
		dateInput:       components.NewDateInput(),
	}

	m.applySettings(settings)
	return m
}

// SetWatcher attaches the settings watcher whose events feed live
// configuration updates into the running TUI.
func (m *Model) SetWatcher(w *sync.Watcher) {
	m.watcher = w
}

// applySettings pushes the configuration into the widgets and the service.
// Bound changes re-validate the date input's current selection immediately.
func (m *Model) applySettings(settings config.Settings) {
	m.settings = settings

	minDate, maxDate, err := settings.Bounds()
	if err != nil {
		logger.Warn("ignoring invalid bounds in settings", "error", err)
	} else {
		m.service.SetBounds(minDate, maxDate)
		m.dateInput.SetBounds(minDate, maxDate)
	}

	m.dateInput.SetRequired(settings.Required)
	m.dateInput.SetAllowTextInput(settings.AllowTextInput)
	m.dateInput.SetWeekStart(settings.WeekStart())
	m.dateInput.SetStrings(components.DateInputStrings{
		InvalidInput: settings.Messages.InvalidInput,
		OutOfBounds:  settings.Messages.OutOfBounds,
		Required:     settings.Messages.Required,
	})
	if settings.DateFormat != "" {
		layout := settings.DateFormat
		m.dateInput.SetFormatDate(func(t stdtime.Time) string {
			return t.Format(layout)
		})
	}
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.loadAppointments()}
	if m.watcher != nil {
		cmds = append(cmds, m.waitForSettings())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		dims := CalculateLayout(msg.Width, msg.Height)
		m.appointmentList.SetSize(dims.ListWidth, dims.ListHeight)
		m.statusBar.SetWidth(msg.Width)
		m.dateInput.SetWidth(dims.FormWidth)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		if m.mode == ModeAdd {
			var cmd tea.Cmd
			m.dateInput, cmd = m.dateInput.Update(msg)
			return m, cmd
		}
		return m, nil

	case appointmentsLoadedMsg:
		m.appointmentList.SetAppointments(msg.appointments, m.service.InBounds)
		m.appointmentList.SetToday(stdtime.Now())
		return m, nil

	case appointmentSavedMsg:
		m.statusMsg = fmt.Sprintf("Added %q on %s", msg.title, msg.date)
		if !msg.inBounds {
			m.statusMsg += " (out of bounds)"
		}
		return m, m.loadAppointments()

	case appointmentRemovedMsg:
		if msg.removed {
			m.statusMsg = "Appointment removed"
		}
		return m, m.loadAppointments()

	case settingsChangedMsg:
		logger.Info("settings reloaded", "path", msg.path)
		m.applySettings(msg.settings)
		m.statusMsg = "Settings reloaded"
		// Re-list so bound markers reflect the new range, and keep waiting.
		return m, tea.Batch(m.loadAppointments(), m.waitForSettings())

	case errMsg:
		m.err = msg.err
		logger.Error("tui error", "error", msg.err)
		return m, nil
	}

	return m, nil
}

// View implements tea.Model
func (m *Model) View() string {
	if m.width < MinTerminalWidth || m.height < MinTerminalHeight {
		return fmt.Sprintf("Terminal too small (need at least %dx%d)", MinTerminalWidth, MinTerminalHeight)
	}

	dims := CalculateLayout(m.width, m.height)

	header := headerStyle.Render("datebook")

	var body string
	if m.mode == ModeAdd {
		body = m.viewForm(dims)
	} else {
		body = paneStyle.
			Width(dims.ListWidth).
			Height(dims.ListHeight).
			Render(m.appointmentList.View())
	}

	status := m.statusLine()

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		body,
		status,
		m.statusBar.View(),
	)
}

// viewForm renders the add form: title field, date field with its calendar
// popup, and any submit error.
func (m *Model) viewForm(dims Layout) string {
	var parts []string

	parts = append(parts, formLabelStyle.Render("Title"))
	parts = append(parts, m.titleInput.View())
	parts = append(parts, "")
	parts = append(parts, formLabelStyle.Render("Date"))
	parts = append(parts, m.dateInput.View())

	if m.formError != "" {
		parts = append(parts, formErrorStyle.Render("✗ "+m.formError))
	}

	return paneStyle.
		Width(dims.FormWidth).
		Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m *Model) statusLine() string {
	if m.err != nil {
		return formErrorStyle.Render("Error: " + m.err.Error())
	}
	if m.statusMsg != "" {
		return statusMsgStyle.Render(m.statusMsg)
	}
	return ""
}

// enterAddMode resets the form and focuses the title field.
func (m *Model) enterAddMode() tea.Cmd {
	m.mode = ModeAdd
	m.formFocus = focusTitle
	m.formError = ""
	m.statusMsg = ""

	m.titleInput.SetValue("")
	m.dateInput.SetValue(nil)

	m.statusBar.SetHints("tab:switch field  down:calendar  enter:next/save  esc:cancel")
	return m.titleInput.Focus()
}

// leaveAddMode returns to the list without saving.
func (m *Model) leaveAddMode() {
	m.mode = ModeList
	m.titleInput.Blur()
	m.dateInput.Blur()
	m.statusBar.SetHints("q:quit a:add d:delete j/k:nav")
}

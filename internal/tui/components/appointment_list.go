package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/datebook/datebook/internal/appointment"
)

var (
	appointmentTitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("252"))

	appointmentDateStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("244"))

	appointmentPastStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Strikethrough(true)

	appointmentWarnStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("214"))

	appointmentSelectedStyle = lipgloss.NewStyle().
					Background(lipgloss.Color("240")).
					Foreground(lipgloss.Color("15"))

	appointmentEmptyStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Italic(true)
)

// AppointmentItem wraps an appointment for the list.
// Implements list.Item interface
type AppointmentItem struct {
	appointment appointment.Appointment
	outOfBounds bool
}

// FilterValue implements list.Item interface
func (a AppointmentItem) FilterValue() string {
	return a.appointment.Title
}

// AppointmentList is a Bubble Tea component for displaying appointments
// ordered by date, with past dates struck through and out-of-bounds dates
// flagged.
type AppointmentList struct {
	list  list.Model
	today time.Time
	width int
}

// NewAppointmentList creates a new AppointmentList component
func NewAppointmentList() *AppointmentList {
	delegate := list.NewDefaultDelegate()
	l := list.New(nil, delegate, 0, 0)

	return &AppointmentList{
		list:  l,
		today: time.Now(),
	}
}

// SetAppointments replaces the displayed appointments. inBounds reports, per
// appointment, whether its date falls inside the configured bounds.
func (al *AppointmentList) SetAppointments(appointments []appointment.Appointment, inBounds func(time.Time) bool) {
	items := make([]list.Item, 0, len(appointments))
	for _, a := range appointments {
		item := AppointmentItem{appointment: a}
		if inBounds != nil {
			item.outOfBounds = !inBounds(a.Date)
		}
		items = append(items, item)
	}
	al.list.SetItems(items)

	if al.list.Index() >= len(items) && len(items) > 0 {
		al.list.Select(len(items) - 1)
	}
}

// SetToday sets the reference date used to mark past appointments.
func (al *AppointmentList) SetToday(today time.Time) {
	al.today = today
}

// SetSize sets the rendered dimensions.
func (al *AppointmentList) SetSize(width, height int) {
	al.width = width
	al.list.SetSize(width, height)
}

// Selected returns the appointment under the cursor, or nil when empty.
func (al *AppointmentList) Selected() *appointment.Appointment {
	item, ok := al.list.SelectedItem().(AppointmentItem)
	if !ok {
		return nil
	}
	a := item.appointment
	return &a
}

// Len returns the number of listed appointments.
func (al *AppointmentList) Len() int {
	return len(al.list.Items())
}

// Update handles Bubble Tea messages
func (al *AppointmentList) Update(msg tea.Msg) (*AppointmentList, tea.Cmd) {
	var cmd tea.Cmd
	al.list, cmd = al.list.Update(msg)
	return al, cmd
}

// View renders the appointment list
func (al *AppointmentList) View() string {
	items := al.list.Items()
	if len(items) == 0 {
		return appointmentEmptyStyle.Render("No appointments. Press 'a' to add one.")
	}

	var sb strings.Builder
	for i, item := range items {
		appointmentItem, ok := item.(AppointmentItem)
		if !ok {
			continue
		}

		line := al.renderItem(appointmentItem)
		if i == al.list.Index() {
			line = appointmentSelectedStyle.Render(line)
		}

		sb.WriteString(line)
		sb.WriteString("\n")
	}

	return sb.String()
}

// renderItem renders a single appointment line
func (al *AppointmentList) renderItem(item AppointmentItem) string {
	a := item.appointment

	date := appointmentDateStyle.Render(FormatNaturalDate(a.Date))
	title := appointmentTitleStyle.Render(a.Title)
	if dateKey(a.Date) < dateKey(al.today) {
		title = appointmentPastStyle.Render(a.Title)
	}

	line := fmt.Sprintf("%s  %s", date, title)
	if item.outOfBounds {
		line += "  " + appointmentWarnStyle.Render("⚠ out of bounds")
	}
	return line
}

package components

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	calendarHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("39")).
				Align(lipgloss.Center)

	calendarWeekdayStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245")).
				Width(4).
				Align(lipgloss.Center)

	calendarDayStyle = lipgloss.NewStyle().
				Width(4).
				Align(lipgloss.Center)

	calendarCursorStyle = calendarDayStyle.
				Reverse(true)

	calendarSelectedStyle = calendarDayStyle.
				Background(lipgloss.Color("39")).
				Foreground(lipgloss.Color("231"))

	calendarTodayStyle = calendarDayStyle.
				Bold(true).
				Foreground(lipgloss.Color("40"))

	calendarMutedStyle = calendarDayStyle.
				Foreground(lipgloss.Color("240"))

	calendarWeekNumStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Width(3).
				Align(lipgloss.Right)
)

// Calendar is a month-grid component. It owns none of the date input's
// state: it receives a selected date, a reference today, an anchor month and
// bounds, and reports a single selection event through its callback.
type Calendar struct {
	anchor          time.Time // first day of the displayed month
	cursor          time.Time // day the keyboard cursor is on
	selected        *time.Time
	today           time.Time
	minDate         *time.Time
	maxDate         *time.Time
	weekStart       time.Weekday
	showWeekNumbers bool
	formatHeader    func(time.Time) string
	onSelect        func(time.Time)
}

// NewCalendar creates a calendar showing the current month.
func NewCalendar() *Calendar {
	now := startOfDay(time.Now())
	return &Calendar{
		anchor:       firstOfMonth(now),
		cursor:       now,
		today:        now,
		weekStart:    time.Sunday,
		formatHeader: func(t time.Time) string { return t.Format("January 2006") },
	}
}

// SetToday sets the reference "today" used for highlighting.
func (c *Calendar) SetToday(today time.Time) {
	c.today = startOfDay(today)
}

// SetSelected sets the currently selected date, or clears it with nil.
func (c *Calendar) SetSelected(date *time.Time) {
	if date == nil {
		c.selected = nil
		return
	}
	d := startOfDay(*date)
	c.selected = &d
}

// SetAnchor moves the grid to the month containing date and places the
// cursor on it.
func (c *Calendar) SetAnchor(date time.Time) {
	d := startOfDay(date)
	c.anchor = firstOfMonth(d)
	c.cursor = c.clamp(d)
}

// SetBounds sets the inclusive selectable range. Nil means unbounded on
// that side. The cursor is clamped into the new range.
func (c *Calendar) SetBounds(minDate, maxDate *time.Time) {
	c.minDate = normalizeBound(minDate)
	c.maxDate = normalizeBound(maxDate)
	c.cursor = c.clamp(c.cursor)
}

// SetWeekStart sets the first day of the week shown in the grid.
func (c *Calendar) SetWeekStart(d time.Weekday) {
	c.weekStart = d
}

// SetShowWeekNumbers toggles the ISO week number column.
func (c *Calendar) SetShowWeekNumbers(show bool) {
	c.showWeekNumbers = show
}

// SetHeaderFormat overrides the month header formatting.
func (c *Calendar) SetHeaderFormat(format func(time.Time) string) {
	if format != nil {
		c.formatHeader = format
	}
}

// SetOnSelect registers the selection callback.
func (c *Calendar) SetOnSelect(fn func(time.Time)) {
	c.onSelect = fn
}

// Cursor returns the day the keyboard cursor is on.
func (c *Calendar) Cursor() time.Time {
	return c.cursor
}

// Anchor returns the first day of the displayed month.
func (c *Calendar) Anchor() time.Time {
	return c.anchor
}

// Update handles Bubble Tea messages.
func (c *Calendar) Update(msg tea.Msg) (*Calendar, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch keyMsg.Type {
	case tea.KeyLeft:
		c.moveCursor(-1)
	case tea.KeyRight:
		c.moveCursor(1)
	case tea.KeyUp:
		c.moveCursor(-7)
	case tea.KeyDown:
		c.moveCursor(7)
	case tea.KeyPgUp:
		c.moveMonth(-1)
	case tea.KeyPgDown:
		c.moveMonth(1)
	case tea.KeyHome:
		c.cursor = c.clamp(c.anchor)
	case tea.KeyEnd:
		c.cursor = c.clamp(c.anchor.AddDate(0, 1, -1))
	case tea.KeyEnter:
		if c.inBounds(c.cursor) && c.onSelect != nil {
			c.onSelect(c.cursor)
		}
	}

	return c, nil
}

// moveCursor moves the cursor by days, refusing to land out of bounds.
func (c *Calendar) moveCursor(days int) {
	target := c.cursor.AddDate(0, 0, days)
	if !c.inBounds(target) {
		return
	}
	c.cursor = target
	c.anchor = firstOfMonth(target)
}

// moveMonth pages the grid by whole months, keeping the day of month where
// possible and clamping into bounds.
func (c *Calendar) moveMonth(months int) {
	anchor := c.anchor.AddDate(0, months, 0)
	day := c.cursor.Day()
	last := anchor.AddDate(0, 1, -1).Day()
	if day > last {
		day = last
	}
	target := time.Date(anchor.Year(), anchor.Month(), day, 0, 0, 0, 0, anchor.Location())
	c.cursor = c.clamp(target)
	c.anchor = firstOfMonth(c.cursor)
}

func (c *Calendar) inBounds(d time.Time) bool {
	return dateInBounds(d, c.minDate, c.maxDate)
}

// clamp pulls a date back into the configured bounds.
func (c *Calendar) clamp(d time.Time) time.Time {
	if c.minDate != nil && dateKey(d) < dateKey(*c.minDate) {
		return startOfDay(*c.minDate)
	}
	if c.maxDate != nil && dateKey(d) > dateKey(*c.maxDate) {
		return startOfDay(*c.maxDate)
	}
	return startOfDay(d)
}

// View renders the month grid.
func (c *Calendar) View() string {
	var b strings.Builder

	width := 4 * 7
	if c.showWeekNumbers {
		width += 4
	}

	b.WriteString(calendarHeaderStyle.Width(width).Render(c.formatHeader(c.anchor)))
	b.WriteString("\n")

	if c.showWeekNumbers {
		b.WriteString(strings.Repeat(" ", 4))
	}
	for i := 0; i < 7; i++ {
		day := time.Weekday((int(c.weekStart) + i) % 7)
		b.WriteString(calendarWeekdayStyle.Render(day.String()[:2]))
	}
	b.WriteString("\n")

	lastDay := c.anchor.AddDate(0, 1, -1)

	// Walk back from the 1st to the start of its week.
	offset := (int(c.anchor.Weekday()) - int(c.weekStart) + 7) % 7
	start := c.anchor.AddDate(0, 0, -offset)

	for week := 0; ; week++ {
		weekStartDay := start.AddDate(0, 0, week*7)
		if weekStartDay.After(lastDay) {
			break
		}

		if c.showWeekNumbers {
			_, isoWeek := weekStartDay.ISOWeek()
			b.WriteString(calendarWeekNumStyle.Render(fmt.Sprintf("%d ", isoWeek)))
			b.WriteString(" ")
		}

		for dow := 0; dow < 7; dow++ {
			day := weekStartDay.AddDate(0, 0, dow)
			content := fmt.Sprintf("%2d", day.Day())

			var style lipgloss.Style
			switch {
			case sameDay(day, c.cursor):
				style = calendarCursorStyle
			case c.selected != nil && sameDay(day, *c.selected):
				style = calendarSelectedStyle
			case sameDay(day, c.today):
				style = calendarTodayStyle
			case day.Month() != c.anchor.Month() || !c.inBounds(day):
				style = calendarMutedStyle
			default:
				style = calendarDayStyle
			}

			b.WriteString(style.Render(content))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func normalizeBound(d *time.Time) *time.Time {
	if d == nil {
		return nil
	}
	n := startOfDay(*d)
	return &n
}

// dateKey collapses a time to a sortable calendar-day number, so day
// comparisons are immune to time-of-day and location differences.
func dateKey(t time.Time) int {
	y, m, d := t.Date()
	return y*10000 + int(m)*100 + d
}

// dateInBounds reports whether d falls inside the inclusive [minDate, maxDate]
// range, comparing at day granularity. Nil bounds are open.
func dateInBounds(d time.Time, minDate, maxDate *time.Time) bool {
	key := dateKey(d)
	if minDate != nil && key < dateKey(*minDate) {
		return false
	}
	if maxDate != nil && key > dateKey(*maxDate) {
		return false
	}
	return true
}

package components

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func keyMsg(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func TestNewCalendar(t *testing.T) {
	c := NewCalendar()

	if c.Anchor().Day() != 1 {
		t.Error("Expected anchor on the first of the month")
	}
}

func TestCalendarSetAnchor(t *testing.T) {
	c := NewCalendar()

	c.SetAnchor(testDay(2020, time.January, 15))

	if !c.Anchor().Equal(testDay(2020, time.January, 1)) {
		t.Errorf("Expected anchor Jan 1 2020, got %v", c.Anchor())
	}
	if !c.Cursor().Equal(testDay(2020, time.January, 15)) {
		t.Errorf("Expected cursor on the anchored day, got %v", c.Cursor())
	}
}

func TestCalendarCursorMovement(t *testing.T) {
	c := NewCalendar()
	c.SetAnchor(testDay(2020, time.January, 15))

	c, _ = c.Update(keyMsg(tea.KeyRight))
	if !c.Cursor().Equal(testDay(2020, time.January, 16)) {
		t.Errorf("Expected Jan 16 after right, got %v", c.Cursor())
	}

	c, _ = c.Update(keyMsg(tea.KeyDown))
	if !c.Cursor().Equal(testDay(2020, time.January, 23)) {
		t.Errorf("Expected Jan 23 after down, got %v", c.Cursor())
	}

	c, _ = c.Update(keyMsg(tea.KeyUp))
	c, _ = c.Update(keyMsg(tea.KeyLeft))
	if !c.Cursor().Equal(testDay(2020, time.January, 15)) {
		t.Errorf("Expected back at Jan 15, got %v", c.Cursor())
	}
}

func TestCalendarCursorCrossesMonth(t *testing.T) {
	c := NewCalendar()
	c.SetAnchor(testDay(2020, time.January, 31))

	c, _ = c.Update(keyMsg(tea.KeyRight))

	if !c.Cursor().Equal(testDay(2020, time.February, 1)) {
		t.Errorf("Expected Feb 1 after right from Jan 31, got %v", c.Cursor())
	}
	if !c.Anchor().Equal(testDay(2020, time.February, 1)) {
		t.Errorf("Expected grid to follow the cursor into February, got %v", c.Anchor())
	}
}

func TestCalendarMonthPaging(t *testing.T) {
	c := NewCalendar()
	c.SetAnchor(testDay(2020, time.January, 31))

	c, _ = c.Update(keyMsg(tea.KeyPgDown))

	// Feb 2020 has 29 days; the day of month is clamped to the last day.
	if !c.Cursor().Equal(testDay(2020, time.February, 29)) {
		t.Errorf("Expected Feb 29 after paging from Jan 31, got %v", c.Cursor())
	}

	c, _ = c.Update(keyMsg(tea.KeyPgUp))
	if c.Cursor().Month() != time.January {
		t.Errorf("Expected back in January, got %v", c.Cursor())
	}
}

func TestCalendarBoundsBlockCursor(t *testing.T) {
	c := NewCalendar()
	maxDate := testDay(2020, time.January, 15)
	c.SetBounds(nil, &maxDate)
	c.SetAnchor(testDay(2020, time.January, 15))

	c, _ = c.Update(keyMsg(tea.KeyRight))

	if !c.Cursor().Equal(testDay(2020, time.January, 15)) {
		t.Errorf("Expected cursor blocked at max date, got %v", c.Cursor())
	}
}

func TestCalendarBoundsClampAnchor(t *testing.T) {
	c := NewCalendar()
	minDate := testDay(2020, time.March, 10)
	c.SetBounds(&minDate, nil)

	c.SetAnchor(testDay(2020, time.January, 1))

	if !c.Cursor().Equal(testDay(2020, time.March, 10)) {
		t.Errorf("Expected cursor clamped to min date, got %v", c.Cursor())
	}
}

func TestCalendarSelection(t *testing.T) {
	c := NewCalendar()
	c.SetAnchor(testDay(2020, time.January, 15))

	var selected []time.Time
	c.SetOnSelect(func(d time.Time) { selected = append(selected, d) })

	c, _ = c.Update(keyMsg(tea.KeyEnter))

	if len(selected) != 1 || !selected[0].Equal(testDay(2020, time.January, 15)) {
		t.Errorf("Expected one selection of Jan 15, got %v", selected)
	}
}

func TestCalendarSelectionBlockedOutOfBounds(t *testing.T) {
	c := NewCalendar()
	c.SetAnchor(testDay(2020, time.January, 15))
	// Bounds set after anchoring so the cursor stays put and out of range.
	minDate := testDay(2021, time.January, 1)
	c.minDate = &minDate

	var selections int
	c.SetOnSelect(func(time.Time) { selections++ })

	c, _ = c.Update(keyMsg(tea.KeyEnter))

	if selections != 0 {
		t.Error("Out-of-bounds days must not be selectable")
	}
}

func TestCalendarViewShowsMonthHeader(t *testing.T) {
	c := NewCalendar()
	c.SetAnchor(testDay(2020, time.January, 15))

	view := c.View()

	if !strings.Contains(view, "January 2020") {
		t.Errorf("Expected month header in view:\n%s", view)
	}
}

func TestCalendarCustomHeaderFormat(t *testing.T) {
	c := NewCalendar()
	c.SetAnchor(testDay(2020, time.January, 15))
	c.SetHeaderFormat(func(t time.Time) string { return t.Format("2006-01") })

	if !strings.Contains(c.View(), "2020-01") {
		t.Error("Expected custom header format in view")
	}
}

func TestCalendarWeekStart(t *testing.T) {
	c := NewCalendar()
	c.SetWeekStart(time.Monday)
	c.SetAnchor(testDay(2020, time.January, 15))

	view := c.View()

	// With Monday first, the weekday row starts with Mo.
	lines := strings.Split(view, "\n")
	if len(lines) < 2 || !strings.Contains(lines[1], "Mo") {
		t.Errorf("Expected weekday row starting with Mo:\n%s", view)
	}
	if idx := strings.Index(lines[1], "Mo"); idx > strings.Index(lines[1], "Su") && strings.Index(lines[1], "Su") >= 0 {
		t.Errorf("Expected Monday before Sunday in weekday row: %q", lines[1])
	}
}

func TestCalendarWeekNumbers(t *testing.T) {
	c := NewCalendar()
	c.SetAnchor(testDay(2020, time.January, 15))

	plain := c.View()
	c.SetShowWeekNumbers(true)
	withNumbers := c.View()

	if len(withNumbers) <= len(plain) {
		t.Error("Expected week number column to widen the view")
	}
}

func TestDateInBounds(t *testing.T) {
	minDate := testDay(2017, time.January, 1)
	maxDate := testDay(2017, time.December, 31)

	tests := []struct {
		name     string
		date     time.Time
		min, max *time.Time
		expected bool
	}{
		{"no bounds", testDay(1999, time.June, 1), nil, nil, true},
		{"inside", testDay(2017, time.June, 15), &minDate, &maxDate, true},
		{"on min", testDay(2017, time.January, 1), &minDate, &maxDate, true},
		{"on max", testDay(2017, time.December, 31), &minDate, &maxDate, true},
		{"below", testDay(2016, time.December, 31), &minDate, &maxDate, false},
		{"above", testDay(2018, time.January, 1), &minDate, &maxDate, false},
		{"only min", testDay(2030, time.January, 1), &minDate, nil, true},
		{"only max", testDay(2030, time.January, 1), nil, &maxDate, false},
		// Day granularity: time of day on the boundary is ignored.
		{"max with time of day", time.Date(2017, time.December, 31, 23, 59, 0, 0, time.Local), &minDate, &maxDate, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := dateInBounds(tt.date, tt.min, tt.max); got != tt.expected {
				t.Errorf("dateInBounds(%v) = %v, expected %v", tt.date, got, tt.expected)
			}
		})
	}
}

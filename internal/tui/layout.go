package tui

// Layout holds calculated dimensions for the TUI panes
type Layout struct {
	ListWidth  int
	ListHeight int

	FormWidth int

	StatusHeight int // Fixed: 1 line
	HeaderHeight int // Fixed: 1 line
}

// CalculateLayout computes pane sizes based on terminal dimensions. The list
// pane takes the full width; the add form is capped so the calendar popup
// stays compact on wide terminals.
func CalculateLayout(termWidth, termHeight int) Layout {
	dims := Layout{
		StatusHeight: 1,
		HeaderHeight: 1,
	}

	// Header, status message line, status bar, pane border
	availableHeight := termHeight - dims.HeaderHeight - dims.StatusHeight - 3
	if availableHeight < 0 {
		availableHeight = 0
	}

	dims.ListWidth = termWidth - 4
	if dims.ListWidth < 0 {
		dims.ListWidth = 0
	}
	dims.ListHeight = availableHeight

	dims.FormWidth = termWidth - 4
	if dims.FormWidth > 60 {
		dims.FormWidth = 60
	}
	if dims.FormWidth < 0 {
		dims.FormWidth = 0
	}

	return dims
}

package tui

import (
	"testing"
)

func TestCalculateLayout(t *testing.T) {
	dims := CalculateLayout(100, 30)

	if dims.ListWidth != 96 {
		t.Errorf("Expected list width 96, got %d", dims.ListWidth)
	}
	if dims.ListHeight <= 0 {
		t.Error("Expected positive list height")
	}
	if dims.FormWidth != 60 {
		t.Errorf("Expected form width capped at 60, got %d", dims.FormWidth)
	}
	if dims.StatusHeight != 1 || dims.HeaderHeight != 1 {
		t.Error("Expected fixed header and status heights of 1")
	}
}

func TestCalculateLayoutNarrowTerminal(t *testing.T) {
	dims := CalculateLayout(50, 20)

	if dims.FormWidth != 46 {
		t.Errorf("Expected form width 46 on a narrow terminal, got %d", dims.FormWidth)
	}
}

func TestCalculateLayoutTinyTerminalNonNegative(t *testing.T) {
	dims := CalculateLayout(2, 3)

	if dims.ListWidth < 0 || dims.ListHeight < 0 || dims.FormWidth < 0 {
		t.Errorf("Expected non-negative dimensions, got %+v", dims)
	}
}

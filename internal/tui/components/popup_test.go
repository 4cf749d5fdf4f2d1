package components

import (
	"strings"
	"testing"
)

func TestPopupShowDismiss(t *testing.T) {
	p := NewPopup()

	if p.IsVisible() {
		t.Error("Expected popup hidden initially")
	}

	p.Show()
	if !p.IsVisible() {
		t.Error("Expected popup visible after Show")
	}

	p.Dismiss(DismissEscape)
	if p.IsVisible() {
		t.Error("Expected popup hidden after Dismiss")
	}
}

func TestPopupDismissNotifiesWithReason(t *testing.T) {
	p := NewPopup()

	var reasons []DismissReason
	p.SetOnDismiss(func(r DismissReason) { reasons = append(reasons, r) })

	p.Show()
	p.Dismiss(DismissOutsideClick)

	if len(reasons) != 1 || reasons[0] != DismissOutsideClick {
		t.Errorf("Expected one outside-click notification, got %v", reasons)
	}
}

func TestPopupDismissHiddenIsNoOp(t *testing.T) {
	p := NewPopup()

	var notifications int
	p.SetOnDismiss(func(DismissReason) { notifications++ })

	p.Dismiss(DismissBlur)
	if notifications != 0 {
		t.Error("Dismissing a hidden popup must not notify")
	}

	// A full cycle still notifies only once.
	p.Show()
	p.Dismiss(DismissBlur)
	p.Dismiss(DismissBlur)
	if notifications != 1 {
		t.Errorf("Expected exactly one notification, got %d", notifications)
	}
}

func TestPopupHideSkipsNotification(t *testing.T) {
	p := NewPopup()

	var notifications int
	p.SetOnDismiss(func(DismissReason) { notifications++ })

	p.Show()
	p.Hide()

	if p.IsVisible() {
		t.Error("Expected popup hidden after Hide")
	}
	if notifications != 0 {
		t.Error("Hide must not fire the dismiss notification")
	}
}

func TestPopupView(t *testing.T) {
	p := NewPopup()

	if p.View("content") != "" {
		t.Error("Hidden popup should render nothing")
	}

	p.Show()
	if !strings.Contains(p.View("content"), "content") {
		t.Error("Visible popup should render its content")
	}
}

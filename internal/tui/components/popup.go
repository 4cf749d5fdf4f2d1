package components

import (
	"github.com/charmbracelet/lipgloss"
)

// DismissReason identifies why a popup was closed.
type DismissReason string

const (
	DismissSelection    DismissReason = "selection"
	DismissBlur         DismissReason = "blur"
	DismissOutsideClick DismissReason = "outside-click"
	DismissEscape       DismissReason = "escape"
)

var popupBoxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("39")).
	Padding(0, 1)

// Popup is an overlay container. It exposes show/dismiss and an on-dismiss
// notification; it never touches its owner's state directly.
type Popup struct {
	visible   bool
	onDismiss func(DismissReason)
}

// NewPopup creates a hidden popup.
func NewPopup() *Popup {
	return &Popup{}
}

// SetOnDismiss registers the dismiss notification.
func (p *Popup) SetOnDismiss(fn func(DismissReason)) {
	p.onDismiss = fn
}

// Show makes the popup visible. Showing an already visible popup is a no-op.
func (p *Popup) Show() {
	p.visible = true
}

// Dismiss hides the popup and notifies the owner with the reason. Dismissing
// a hidden popup is a no-op and does not re-notify.
func (p *Popup) Dismiss(reason DismissReason) {
	if !p.visible {
		return
	}
	p.visible = false
	if p.onDismiss != nil {
		p.onDismiss(reason)
	}
}

// Hide hides the popup without notifying. Used for programmatic teardown,
// e.g. when the owning field is disabled.
func (p *Popup) Hide() {
	p.visible = false
}

// IsVisible returns whether the popup is shown.
func (p *Popup) IsVisible() bool {
	return p.visible
}

// View renders content inside the popup frame, or nothing when hidden.
func (p *Popup) View(content string) string {
	if !p.visible {
		return ""
	}
	return popupBoxStyle.Render(content)
}

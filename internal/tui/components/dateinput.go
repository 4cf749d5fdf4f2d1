package components

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	dateInputErrorStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("196")).
				Italic(true)

	dateInputHelpStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240"))
)

// RequiredSentinel marks a required field that was touched and left empty
// before a full message is shown. It is distinct from "" (validated, valid)
// and from an unvalidated field.
const RequiredSentinel = " "

// DateInputStrings holds the validation messages surfaced by the widget.
type DateInputStrings struct {
	InvalidInput string
	OutOfBounds  string
	Required     string
}

// DefaultDateInputStrings are used when the host configures nothing.
// Required is deliberately empty so the space sentinel path applies.
var DefaultDateInputStrings = DateInputStrings{
	InvalidInput: "Invalid date format",
	OutOfBounds:  "Date is out of bounds",
}

// DateInput reconciles three sources of truth for "the current date":
// free-form typed text, a selection made in the calendar popup, and
// externally supplied values and bounds. It owns the popup open/closed
// state, the displayed text, the error message and the selected date; the
// Calendar and Popup collaborators only emit events back into it.
type DateInput struct {
	textInput textinput.Model
	calendar  *Calendar
	popup     *Popup

	selected *time.Time
	// errMsg is four-valued: nil = never validated, " " = required but
	// empty sentinel, "" = validated and valid, anything else = message.
	errMsg *string
	anchor time.Time

	today             *time.Time
	minDate           *time.Time
	maxDate           *time.Time
	initialPickerDate *time.Time
	required          bool
	disabled          bool
	allowTextInput    bool
	formatDate        func(time.Time) string
	parseDate         func(string) (time.Time, error)
	strings           DateInputStrings
	onSelect          func(*time.Time)

	width int
}

// NewDateInput creates a date input with the default natural-language
// parse/format pair and text entry enabled.
func NewDateInput() *DateInput {
	ti := textinput.New()
	ti.Placeholder = "Wed Jan 15 2020, today, +3d"
	ti.CharLimit = 60
	ti.Width = 30

	d := &DateInput{
		textInput:      ti,
		calendar:       NewCalendar(),
		popup:          NewPopup(),
		allowTextInput: true,
		formatDate:     FormatNaturalDate,
		parseDate:      ParseNaturalDate,
		strings:        DefaultDateInputStrings,
		width:          40,
	}

	d.calendar.SetOnSelect(d.SelectDate)
	d.popup.SetOnDismiss(d.handleDismiss)
	return d
}

// OpenPopup shows the calendar popup anchored on the selected date, the
// configured initial picker date, or today. Opening while disabled or
// already open is a no-op.
func (d *DateInput) OpenPopup() {
	if d.disabled || d.popup.IsVisible() {
		return
	}

	d.anchor = d.pickerAnchor()
	d.calendar.SetToday(d.todayOrNow())
	d.calendar.SetSelected(d.selected)
	d.calendar.SetBounds(d.minDate, d.maxDate)
	d.calendar.SetAnchor(d.anchor)
	d.popup.Show()
}

// DismissPopup closes the popup. Closing for any reason other than an
// actual selection, on a required field with no date, marks the field with
// the required sentinel.
func (d *DateInput) DismissPopup(reason DismissReason) {
	d.popup.Dismiss(reason)
}

// handleDismiss reacts to the popup's on-dismiss notification. The
// selection path skips the sentinel branch since a date was chosen, and no
// selection callback fires on a pure dismiss.
func (d *DateInput) handleDismiss(reason DismissReason) {
	if reason == DismissSelection {
		return
	}
	if d.required && d.selected == nil {
		d.setError(RequiredSentinel)
	}
}

// SelectDate applies a date chosen in the calendar: it becomes the selected
// date, the display text is reformatted, bounds are re-validated, the popup
// closes and the host is notified exactly once.
func (d *DateInput) SelectDate(date time.Time) {
	day := startOfDay(date)
	d.selected = &day
	d.textInput.SetValue(d.formatDate(day))
	d.validateSelected()
	d.popup.Dismiss(DismissSelection)
	d.notify(d.selected)
}

// SetText replaces the displayed text without validating it; validation is
// deferred to CommitText so errors are not flagged mid-keystroke. Ignored
// when text entry is disabled.
func (d *DateInput) SetText(raw string) {
	if d.disabled || !d.allowTextInput {
		return
	}
	d.textInput.SetValue(raw)
}

// CommitText finalizes the typed text, normally on focus loss.
//
// Empty text clears the date (flagging required fields); unparseable text
// keeps the previous date and shows the invalid-input message without
// notifying; parsed text always becomes the selected date, even out of
// bounds - validation is advisory, the widget never silently discards what
// the user entered.
func (d *DateInput) CommitText() {
	if d.disabled {
		return
	}

	raw := strings.TrimSpace(d.textInput.Value())

	if raw == "" {
		d.selected = nil
		switch {
		case d.required && d.strings.Required != "":
			d.setError(d.strings.Required)
		case d.required:
			d.setError(RequiredSentinel)
		default:
			d.setError("")
		}
		d.notify(nil)
		return
	}

	parsed, err := d.parseDate(raw)
	if err != nil {
		d.setError(d.strings.InvalidInput)
		return
	}

	day := startOfDay(parsed)
	d.selected = &day
	d.validateSelected()
	d.notify(d.selected)
}

// SetValue applies an authoritative value from the host, resetting the
// state bundle together: text is reformatted and any in-flight validation
// state is replaced. No selection callback fires; the host already knows.
func (d *DateInput) SetValue(date *time.Time) {
	if date == nil {
		d.selected = nil
		d.textInput.SetValue("")
		d.errMsg = nil
		return
	}

	day := startOfDay(*date)
	d.selected = &day
	d.textInput.SetValue(d.formatDate(day))
	if dateInBounds(day, d.minDate, d.maxDate) {
		d.errMsg = nil
	} else {
		d.setError(d.strings.OutOfBounds)
	}
}

// SetBounds replaces the inclusive min/max bounds and immediately
// re-validates the current selection, with no new user input required.
func (d *DateInput) SetBounds(minDate, maxDate *time.Time) {
	d.minDate = normalizeBound(minDate)
	d.maxDate = normalizeBound(maxDate)
	d.calendar.SetBounds(d.minDate, d.maxDate)
	if d.selected != nil {
		d.validateSelected()
	}
}

// SetToday overrides the reference "today" used for the picker anchor and
// calendar highlighting.
func (d *DateInput) SetToday(today time.Time) {
	t := startOfDay(today)
	d.today = &t
}

// SetInitialPickerDate sets the month the popup opens to when nothing is
// selected yet.
func (d *DateInput) SetInitialPickerDate(date *time.Time) {
	d.initialPickerDate = normalizeBound(date)
}

// SetRequired toggles required-field validation.
func (d *DateInput) SetRequired(required bool) {
	d.required = required
}

// SetDisabled toggles the field. Disabling closes the popup; it never stays
// open on a disabled field.
func (d *DateInput) SetDisabled(disabled bool) {
	d.disabled = disabled
	if disabled {
		d.popup.Hide()
		d.textInput.Blur()
	}
}

// SetAllowTextInput toggles free-form typing. When false the widget is
// calendar-only and typed input is ignored.
func (d *DateInput) SetAllowTextInput(allow bool) {
	d.allowTextInput = allow
}

// SetFormatDate overrides the date-to-string callback.
func (d *DateInput) SetFormatDate(format func(time.Time) string) {
	if format != nil {
		d.formatDate = format
	}
}

// SetParseDate overrides the string-to-date callback.
func (d *DateInput) SetParseDate(parse func(string) (time.Time, error)) {
	if parse != nil {
		d.parseDate = parse
	}
}

// SetStrings replaces the validation messages.
func (d *DateInput) SetStrings(s DateInputStrings) {
	d.strings = s
}

// SetOnSelect registers the host notification. It receives the best-known
// date - possibly nil or out of bounds - exactly once per selection, commit
// or clear.
func (d *DateInput) SetOnSelect(fn func(*time.Time)) {
	d.onSelect = fn
}

// SetWeekStart sets the calendar's first day of week.
func (d *DateInput) SetWeekStart(day time.Weekday) {
	d.calendar.SetWeekStart(day)
}

// SetShowWeekNumbers toggles the calendar's week number column.
func (d *DateInput) SetShowWeekNumbers(show bool) {
	d.calendar.SetShowWeekNumbers(show)
}

// SetWidth sets the rendered width of the widget.
func (d *DateInput) SetWidth(width int) {
	d.width = width
	inputWidth := width - 10
	if inputWidth < 20 {
		inputWidth = 20
	}
	d.textInput.Width = inputWidth
}

// Date returns the selected date, or nil when none is chosen.
func (d *DateInput) Date() *time.Time {
	if d.selected == nil {
		return nil
	}
	day := *d.selected
	return &day
}

// Text returns the current display text.
func (d *DateInput) Text() string {
	return d.textInput.Value()
}

// PopupShown returns whether the calendar popup is visible.
func (d *DateInput) PopupShown() bool {
	return d.popup.IsVisible()
}

// AnchorDate returns the month the popup opened (or would open) showing.
func (d *DateInput) AnchorDate() time.Time {
	return d.pickerAnchor()
}

// Validated reports whether any validation has occurred; false means the
// field is pristine and ErrorMessage carries no meaning yet.
func (d *DateInput) Validated() bool {
	return d.errMsg != nil
}

// ErrorMessage returns the current validation message: "" when pristine or
// valid, the one-space sentinel for a touched-but-empty required field, or
// a full message.
func (d *DateInput) ErrorMessage() string {
	if d.errMsg == nil {
		return ""
	}
	return *d.errMsg
}

// HasError reports whether a validation problem is currently flagged.
func (d *DateInput) HasError() bool {
	return d.errMsg != nil && *d.errMsg != ""
}

// Disabled returns whether the field is disabled.
func (d *DateInput) Disabled() bool {
	return d.disabled
}

// Calendar exposes the embedded grid, mainly for host configuration.
func (d *DateInput) Calendar() *Calendar {
	return d.calendar
}

// Focus gives keyboard focus to the text field.
func (d *DateInput) Focus() tea.Cmd {
	if d.disabled {
		return nil
	}
	return d.textInput.Focus()
}

// Blur removes focus, committing any typed text first so a selection made
// by typing is not lost, then dismissing the popup.
func (d *DateInput) Blur() {
	d.textInput.Blur()
	if d.allowTextInput {
		d.CommitText()
	}
	d.DismissPopup(DismissBlur)
}

// Focused returns whether the text field has focus.
func (d *DateInput) Focused() bool {
	return d.textInput.Focused()
}

// Update handles Bubble Tea messages. While the popup is open, keys go to
// the calendar; otherwise they edit the text field. Down opens the popup,
// Enter commits typed text, Esc closes the popup.
func (d *DateInput) Update(msg tea.Msg) (*DateInput, tea.Cmd) {
	if d.disabled {
		return d, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if d.popup.IsVisible() {
			if msg.Type == tea.KeyEsc {
				d.DismissPopup(DismissEscape)
				return d, nil
			}
			d.calendar, _ = d.calendar.Update(msg)
			return d, nil
		}

		switch msg.Type {
		case tea.KeyDown:
			d.OpenPopup()
			return d, nil
		case tea.KeyEnter:
			d.CommitText()
			return d, nil
		}

		if !d.allowTextInput {
			// Calendar-only field: typing opens the picker instead.
			if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
				d.OpenPopup()
			}
			return d, nil
		}

		var cmd tea.Cmd
		d.textInput, cmd = d.textInput.Update(msg)
		return d, cmd

	case tea.MouseMsg:
		// The widget has no screen geometry; any press while the popup is
		// open counts as clicking outside it.
		if d.popup.IsVisible() && msg.Action == tea.MouseActionPress {
			d.DismissPopup(DismissOutsideClick)
		}
		return d, nil
	}

	return d, nil
}

// View renders the text field, the error line and, when open, the calendar
// popup beneath it.
func (d *DateInput) View() string {
	var b strings.Builder

	b.WriteString(d.textInput.View())
	b.WriteString("\n")

	if d.HasError() {
		if msg := strings.TrimSpace(d.ErrorMessage()); msg != "" {
			b.WriteString(dateInputErrorStyle.Render("✗ " + msg))
		} else {
			// Sentinel: flag the field without message text.
			b.WriteString(dateInputErrorStyle.Render("✗"))
		}
		b.WriteString("\n")
	}

	if d.popup.IsVisible() {
		content := d.calendar.View() + "\n" +
			dateInputHelpStyle.Render("arrows: move  pgup/pgdn: month  enter: select  esc: close")
		b.WriteString(d.popup.View(content))
		b.WriteString("\n")
	}

	return b.String()
}

// pickerAnchor derives the month the popup opens showing: the selected
// date, then the configured initial picker date, then today.
func (d *DateInput) pickerAnchor() time.Time {
	if d.selected != nil {
		return *d.selected
	}
	if d.initialPickerDate != nil {
		return *d.initialPickerDate
	}
	return d.todayOrNow()
}

func (d *DateInput) todayOrNow() time.Time {
	if d.today != nil {
		return *d.today
	}
	return startOfDay(time.Now())
}

// validateSelected runs bound validation on the current selection. The
// selection is kept either way; an out-of-bounds date stays visible for
// correction.
func (d *DateInput) validateSelected() {
	if d.selected == nil {
		return
	}
	if dateInBounds(*d.selected, d.minDate, d.maxDate) {
		d.setError("")
	} else {
		d.setError(d.strings.OutOfBounds)
	}
}

func (d *DateInput) setError(msg string) {
	d.errMsg = &msg
}

func (d *DateInput) notify(date *time.Time) {
	if d.onSelect == nil {
		return
	}
	if date == nil {
		d.onSelect(nil)
		return
	}
	day := *date
	d.onSelect(&day)
}

package components_test

import (
	"fmt"
	"time"

	"github.com/datebook/datebook/internal/tui/components"
)

// ExampleDateInput demonstrates selecting a date through the calendar popup
func ExampleDateInput() {
	d := components.NewDateInput()

	d.OpenPopup()
	fmt.Println("Popup shown:", d.PopupShown())

	d.SelectDate(time.Date(2020, time.January, 15, 0, 0, 0, 0, time.Local))
	fmt.Println("Popup shown:", d.PopupShown())
	fmt.Println("Display text:", d.Text())

	// Output:
	// Popup shown: true
	// Popup shown: false
	// Display text: Wed Jan 15 2020
}

// ExampleDateInput_typing demonstrates free-form text entry with validation
// deferred to the commit
func ExampleDateInput_typing() {
	d := components.NewDateInput()

	minDate := time.Date(2017, time.January, 1, 0, 0, 0, 0, time.Local)
	maxDate := time.Date(2017, time.December, 31, 0, 0, 0, 0, time.Local)
	d.SetBounds(&minDate, &maxDate)

	// Typing alone never flags errors.
	d.SetText("Jan 1 2010")
	fmt.Println("Error while typing:", d.HasError())

	// Committing validates; the out-of-bounds date is kept for correction.
	d.CommitText()
	fmt.Println("Error after commit:", d.ErrorMessage())
	fmt.Println("Date kept:", d.Date().Format("2006-01-02"))

	d.SetText("Dec 16 2017")
	d.CommitText()
	fmt.Println("Error after fix:", d.ErrorMessage() == "")

	// Output:
	// Error while typing: false
	// Error after commit: Date is out of bounds
	// Date kept: 2010-01-01
	// Error after fix: true
}

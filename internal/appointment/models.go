package appointment

import (
	"time"

	"github.com/rs/xid"
)

// DateLayout is the canonical storage format for appointment dates.
// Appointments have day granularity; no time-of-day is kept.
const DateLayout = "2006-01-02"

// Appointment is a single dated entry in the book.
type Appointment struct {
	ID        string
	Title     string
	Date      time.Time // midnight, local
	Notes     string
	CreatedAt time.Time
}

// NewAppointment creates an appointment for the given day with a fresh ID.
func NewAppointment(title string, date time.Time) *Appointment {
	return &Appointment{
		ID:        xid.New().String(),
		Title:     title,
		Date:      startOfDay(date),
		CreatedAt: time.Now(),
	}
}

// DateString returns the appointment date in storage form (YYYY-MM-DD).
func (a *Appointment) DateString() string {
	return a.Date.Format(DateLayout)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

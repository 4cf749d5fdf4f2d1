package appointment

import (
	"fmt"
	"strings"
	"time"

	"github.com/datebook/datebook/internal/logger"
)

// Service provides appointment operations on top of the repository. Bounds
// checking here mirrors the date widget's policy: out-of-bounds dates are
// reported, never blocked, so nothing the user entered is silently discarded.
type Service struct {
	repo    *Repository
	minDate *time.Time
	maxDate *time.Time
}

// NewService creates a new appointment service
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// SetBounds replaces the advisory date bounds.
func (s *Service) SetBounds(minDate, maxDate *time.Time) {
	s.minDate = copyDay(minDate)
	s.maxDate = copyDay(maxDate)
}

// InBounds reports whether a date falls inside the configured inclusive
// bounds, at day granularity. Unconfigured bounds are open.
func (s *Service) InBounds(date time.Time) bool {
	key := dayKey(date)
	if s.minDate != nil && key < dayKey(*s.minDate) {
		return false
	}
	if s.maxDate != nil && key > dayKey(*s.maxDate) {
		return false
	}
	return true
}

// Create saves a new appointment. The returned inBounds flag is advisory:
// the appointment is persisted either way.
func (s *Service) Create(title string, date time.Time) (*Appointment, bool, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, false, fmt.Errorf("appointment title is required")
	}

	a := NewAppointment(title, date)
	if err := s.repo.Save(a); err != nil {
		return nil, false, err
	}

	inBounds := s.InBounds(a.Date)
	if !inBounds {
		logger.Warn("Create", "appointment_id", a.ID, "date", a.DateString(), "reason", "out_of_bounds")
	}

	logger.Info("Create", "appointment_id", a.ID, "title", a.Title, "date", a.DateString())
	return a, inBounds, nil
}

// List returns all appointments ordered by date.
func (s *Service) List() ([]Appointment, error) {
	return s.repo.List()
}

// ListRange returns appointments between from and to inclusive.
func (s *Service) ListRange(from, to *time.Time) ([]Appointment, error) {
	return s.repo.ListRange(from, to)
}

// Get loads one appointment; nil when the ID is unknown.
func (s *Service) Get(id string) (*Appointment, error) {
	return s.repo.Get(id)
}

// Remove deletes an appointment by ID, reporting whether it existed.
func (s *Service) Remove(id string) (bool, error) {
	removed, err := s.repo.Delete(id)
	if err != nil {
		return false, err
	}
	if removed {
		logger.Info("Remove", "appointment_id", id)
	}
	return removed, nil
}

func copyDay(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := startOfDay(*t)
	return &d
}

func dayKey(t time.Time) int {
	y, m, d := t.Date()
	return y*10000 + int(m)*100 + d
}

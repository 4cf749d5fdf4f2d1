package appointment

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/datebook/datebook/internal/logger"
	"github.com/datebook/datebook/internal/perf"
	"github.com/datebook/datebook/internal/storage"
)

// slowQueryMs is the threshold above which a query is logged as slow.
const slowQueryMs = 50

// Repository handles database operations for appointments
type Repository struct {
	db      *storage.Database
	queries *perf.OpCounter
}

// NewRepository creates a new appointment repository
func NewRepository(db *storage.Database) *Repository {
	return &Repository{
		db:      db,
		queries: perf.NewOpCounter("appointment_queries"),
	}
}

// QueryCount returns the number of queries this repository has run.
func (r *Repository) QueryCount() int64 {
	return r.queries.Value()
}

// Save inserts or replaces an appointment
func (r *Repository) Save(a *Appointment) error {
	logger.Debug("Save", "appointment_id", a.ID, "date", a.DateString())
	timer := perf.NewTimer("appointment_save", logger.GetLogger(), slowQueryMs)
	defer timer.Stop()
	r.queries.Inc()

	_, err := r.db.DB().Exec(`
		INSERT OR REPLACE INTO appointments (id, title, date, notes, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, a.ID, a.Title, a.DateString(), a.Notes, a.CreatedAt.Unix())
	if err != nil {
		logger.Error("Save", "error", err, "appointment_id", a.ID)
		return fmt.Errorf("failed to save appointment: %w", err)
	}

	return nil
}

// Get loads a single appointment by ID. Returns nil when not found.
func (r *Repository) Get(id string) (*Appointment, error) {
	r.queries.Inc()
	row := r.db.DB().QueryRow(`
		SELECT id, title, date, notes, created_at
		FROM appointments WHERE id = ?
	`, id)

	a, err := scanAppointment(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		logger.Error("Get", "error", err, "appointment_id", id)
		return nil, fmt.Errorf("failed to load appointment: %w", err)
	}
	return a, nil
}

// List returns all appointments ordered by date, then creation time.
func (r *Repository) List() ([]Appointment, error) {
	timer := perf.NewTimer("appointment_list", logger.GetLogger(), slowQueryMs)
	defer timer.Stop()
	r.queries.Inc()

	rows, err := r.db.DB().Query(`
		SELECT id, title, date, notes, created_at
		FROM appointments
		ORDER BY date, created_at
	`)
	if err != nil {
		logger.Error("List", "error", err)
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	defer rows.Close()

	return collectAppointments(rows)
}

// ListRange returns appointments with from <= date <= to, ordered by date.
// Nil bounds are open on that side.
func (r *Repository) ListRange(from, to *time.Time) ([]Appointment, error) {
	timer := perf.NewTimer("appointment_list_range", logger.GetLogger(), slowQueryMs)
	defer timer.Stop()
	r.queries.Inc()

	query := `
		SELECT id, title, date, notes, created_at
		FROM appointments WHERE 1=1
	`
	args := []any{}
	if from != nil {
		query += " AND date >= ?"
		args = append(args, from.Format(DateLayout))
	}
	if to != nil {
		query += " AND date <= ?"
		args = append(args, to.Format(DateLayout))
	}
	query += " ORDER BY date, created_at"

	rows, err := r.db.DB().Query(query, args...)
	if err != nil {
		logger.Error("ListRange", "error", err)
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	defer rows.Close()

	return collectAppointments(rows)
}

// Delete removes an appointment by ID. Deleting a missing ID is not an error;
// it reports false.
func (r *Repository) Delete(id string) (bool, error) {
	r.queries.Inc()
	res, err := r.db.DB().Exec("DELETE FROM appointments WHERE id = ?", id)
	if err != nil {
		logger.Error("Delete", "error", err, "appointment_id", id)
		return false, fmt.Errorf("failed to delete appointment: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAppointment(row rowScanner) (*Appointment, error) {
	var a Appointment
	var dateStr string
	var createdAt int64

	if err := row.Scan(&a.ID, &a.Title, &dateStr, &a.Notes, &createdAt); err != nil {
		return nil, err
	}

	date, err := time.ParseInLocation(DateLayout, dateStr, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid stored date %q: %w", dateStr, err)
	}

	a.Date = date
	a.CreatedAt = time.Unix(createdAt, 0)
	return &a, nil
}

func collectAppointments(rows *sql.Rows) ([]Appointment, error) {
	var appointments []Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan appointment: %w", err)
		}
		appointments = append(appointments, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return appointments, nil
}

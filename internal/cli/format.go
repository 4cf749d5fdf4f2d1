package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/datebook/datebook/internal/appointment"
)

type OutputFormat string

const (
	FormatJSON OutputFormat = "json"
	FormatTSV  OutputFormat = "tsv"
	FormatCSV  OutputFormat = "csv"
)

func parseFormat(s string) (OutputFormat, error) {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON, nil
	case "tsv":
		return FormatTSV, nil
	case "csv":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("unsupported format: %s (supported: json, tsv, csv)", s)
	}
}

// appointmentRecord is the serialized shape used for JSON output.
type appointmentRecord struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Date      string `json:"date"`
	Notes     string `json:"notes,omitempty"`
	InBounds  bool   `json:"in_bounds"`
	CreatedAt string `json:"created_at"`
}

func toRecords(appointments []appointment.Appointment, inBounds func(appointment.Appointment) bool) []appointmentRecord {
	records := make([]appointmentRecord, 0, len(appointments))
	for _, a := range appointments {
		records = append(records, appointmentRecord{
			ID:        a.ID,
			Title:     a.Title,
			Date:      a.DateString(),
			Notes:     a.Notes,
			InBounds:  inBounds(a),
			CreatedAt: a.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return records
}

func formatAppointmentsJSON(w io.Writer, appointments []appointment.Appointment, inBounds func(appointment.Appointment) bool) error {
	return json.NewEncoder(w).Encode(toRecords(appointments, inBounds))
}

func formatAppointmentsTSV(w io.Writer, appointments []appointment.Appointment, inBounds func(appointment.Appointment) bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', tabwriter.TabIndent)
	fmt.Fprintln(tw, "ID\tDATE\tBOUNDS\tTITLE")
	for _, r := range toRecords(appointments, inBounds) {
		bounds := "ok"
		if !r.InBounds {
			bounds = "out"
		}
		fmt.Fprintf(tw, "%.8s\t%s\t%s\t%s\n", r.ID, r.Date, bounds, r.Title)
	}
	return tw.Flush()
}

func formatAppointmentsCSV(w io.Writer, appointments []appointment.Appointment, inBounds func(appointment.Appointment) bool) error {
	cw := csv.NewWriter(w)
	cw.Write([]string{"ID", "DATE", "BOUNDS", "TITLE"})
	for _, r := range toRecords(appointments, inBounds) {
		bounds := "ok"
		if !r.InBounds {
			bounds = "out"
		}
		cw.Write([]string{r.ID, r.Date, bounds, r.Title})
	}
	cw.Flush()
	return cw.Error()
}

package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/datebook/datebook/internal/appointment"
	"github.com/datebook/datebook/internal/tui/components"
)

var (
	listFormatFlag string
	listFromFlag   string
	listToFlag     string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List appointments",
	Long: `Lists appointments ordered by date. --from/--to accept the same
natural-language date expressions as the date field and restrict the range
inclusively.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if service == nil {
			return fmt.Errorf("appointment service not initialized")
		}

		from, err := parseDateFlag(listFromFlag)
		if err != nil {
			return err
		}
		to, err := parseDateFlag(listToFlag)
		if err != nil {
			return err
		}

		var appointments []appointment.Appointment
		if from != nil || to != nil {
			appointments, err = service.ListRange(from, to)
		} else {
			appointments, err = service.List()
		}
		if err != nil {
			return fmt.Errorf("failed to list appointments: %w", err)
		}

		inBounds := func(a appointment.Appointment) bool {
			return service.InBounds(a.Date)
		}

		if listFormatFlag != "" {
			format, err := parseFormat(listFormatFlag)
			if err != nil {
				return err
			}
			switch format {
			case FormatJSON:
				return formatAppointmentsJSON(os.Stdout, appointments, inBounds)
			case FormatTSV:
				return formatAppointmentsTSV(os.Stdout, appointments, inBounds)
			case FormatCSV:
				return formatAppointmentsCSV(os.Stdout, appointments, inBounds)
			}
			return nil
		}

		if len(appointments) == 0 {
			fmt.Println("No appointments.")
			return nil
		}

		for _, a := range appointments {
			marker := " "
			if !inBounds(a) {
				marker = "!"
			}
			fmt.Printf("%s %.8s  %s  %s\n", marker, a.ID, components.FormatNaturalDate(a.Date), a.Title)
		}
		return nil
	},
}

func parseDateFlag(expr string) (*time.Time, error) {
	if expr == "" {
		return nil, nil
	}
	date, err := components.ParseNaturalDate(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", expr, err)
	}
	return &date, nil
}

func init() {
	listCmd.Flags().StringVar(&listFormatFlag, "format", "", "Output format (json, tsv, csv)")
	listCmd.Flags().StringVar(&listFromFlag, "from", "", "Only appointments on or after this date")
	listCmd.Flags().StringVar(&listToFlag, "to", "", "Only appointments on or before this date")
}

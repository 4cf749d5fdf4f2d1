package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/datebook/datebook/internal/tui/components"
)

var addDateFlag string

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add an appointment",
	Long: `Adds an appointment. The --date flag accepts the same natural-language
expressions as the TUI date field: "2026-09-14", "Mon Sep 14 2026", "today",
"tomorrow", "fri", "+3d", "+2w".`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if service == nil {
			return fmt.Errorf("appointment service not initialized")
		}

		title := strings.Join(args, " ")

		dateExpr := addDateFlag
		if dateExpr == "" {
			dateExpr = "today"
		}

		date, err := components.ParseNaturalDate(dateExpr)
		if err != nil {
			return fmt.Errorf("invalid date %q: %w", dateExpr, err)
		}

		a, inBounds, err := service.Create(title, date)
		if err != nil {
			return fmt.Errorf("failed to add appointment: %w", err)
		}

		fmt.Printf("Added %s: %q on %s\n", a.ID[:8], a.Title, components.FormatNaturalDate(a.Date))
		if !inBounds {
			fmt.Printf("Warning: %s is outside the configured bounds\n", a.DateString())
		}
		return nil
	},
}

func init() {
	addCmd.Flags().StringVarP(&addDateFlag, "date", "d", "", "Appointment date (natural-language expression, default today)")
}

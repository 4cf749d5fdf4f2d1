package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/datebook/datebook/internal/appointment"
	"github.com/datebook/datebook/internal/tui/components"
)

var removeYesFlag bool

var removeCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove an appointment",
	Long:  `Removes an appointment by ID. A unique ID prefix is enough. Asks for confirmation unless --yes is given.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if service == nil {
			return fmt.Errorf("appointment service not initialized")
		}

		target, err := resolveByPrefix(args[0])
		if err != nil {
			return err
		}

		if !removeYesFlag {
			var confirmed bool
			form := huh.NewForm(
				huh.NewGroup(
					huh.NewConfirm().
						Title(fmt.Sprintf("Remove %q on %s?", target.Title, components.FormatNaturalDate(target.Date))).
						Value(&confirmed),
				),
			)
			if err := form.Run(); err != nil {
				return err
			}
			if !confirmed {
				fmt.Println("Cancelled.")
				return nil
			}
		}

		removed, err := service.Remove(target.ID)
		if err != nil {
			return fmt.Errorf("failed to remove appointment: %w", err)
		}
		if !removed {
			return fmt.Errorf("appointment %s not found", target.ID)
		}

		fmt.Printf("Removed %.8s: %q\n", target.ID, target.Title)
		return nil
	},
}

// resolveByPrefix finds the single appointment whose ID starts with prefix.
func resolveByPrefix(prefix string) (*appointment.Appointment, error) {
	appointments, err := service.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}

	var matches []appointment.Appointment
	for _, a := range appointments {
		if strings.HasPrefix(a.ID, prefix) {
			matches = append(matches, a)
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("no appointment matches %q", prefix)
	case 1:
		return &matches[0], nil
	default:
		return nil, fmt.Errorf("%q matches %d appointments, use a longer prefix", prefix, len(matches))
	}
}

func init() {
	removeCmd.Flags().BoolVarP(&removeYesFlag, "yes", "y", false, "Skip the confirmation prompt")
}

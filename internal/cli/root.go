package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/datebook/datebook/internal/appointment"
	"github.com/datebook/datebook/internal/config"
	"github.com/datebook/datebook/internal/logger"
	"github.com/datebook/datebook/internal/storage"
	"github.com/datebook/datebook/internal/sync"
	"github.com/datebook/datebook/internal/tui"
)

var (
	service  *appointment.Service
	settings config.Settings
)

// RootCmd is the root command for the CLI
var RootCmd = &cobra.Command{
	Use:   "datebook",
	Short: "Datebook - terminal appointment book",
	Long:  `A terminal appointment book with a calendar date picker, free-form date entry, and configurable date bounds.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: launch TUI
		logger.InitializeWithConfig(logger.Config{Level: "INFO", TUIMode: true})

		model := tui.NewModel(service, settings)

		settingsPath, err := config.SettingsPath()
		if err == nil {
			if watcher, werr := sync.NewWatcher(settingsPath); werr == nil {
				if serr := watcher.Start(); serr == nil {
					model.SetWatcher(watcher)
					defer watcher.Stop()
				}
			}
		}

		p := tea.NewProgram(model, tea.WithAltScreen())
		_, err = p.Run()
		return err
	},
}

func init() {
	cobra.OnInitialize(initService)

	RootCmd.AddCommand(addCmd)
	RootCmd.AddCommand(listCmd)
	RootCmd.AddCommand(removeCmd)
}

// initService wires the database, repository and service used by every
// command.
func initService() {
	dbPath, err := config.DatabasePath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting database path: %v\n", err)
		os.Exit(1)
	}

	db, err := storage.NewDatabase(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}

	settingsPath, err := config.SettingsPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting settings path: %v\n", err)
		os.Exit(1)
	}

	settings, err = config.LoadSettings(settingsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
	}

	service = appointment.NewService(appointment.NewRepository(db))

	minDate, maxDate, err := settings.Bounds()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (bounds ignored)\n", err)
	} else {
		service.SetBounds(minDate, maxDate)
	}
}

// Execute runs the root command
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Messages holds the user-facing validation strings shown by the date input.
type Messages struct {
	InvalidInput string `yaml:"invalid_input"`
	OutOfBounds  string `yaml:"out_of_bounds"`
	Required     string `yaml:"required"`
}

// Settings is the YAML-backed configuration for datebook.
// MinDate/MaxDate bound which appointment dates are considered in range;
// both are inclusive and compared at day granularity.
type Settings struct {
	MinDate        string   `yaml:"min_date,omitempty"` // YYYY-MM-DD
	MaxDate        string   `yaml:"max_date,omitempty"` // YYYY-MM-DD
	FirstDayOfWeek string   `yaml:"first_day_of_week,omitempty"`
	Required       bool     `yaml:"required"`
	AllowTextInput bool     `yaml:"allow_text_input"`
	DateFormat     string   `yaml:"date_format,omitempty"`
	Messages       Messages `yaml:"messages"`
}

// DefaultSettings returns the settings used when no config file exists.
func DefaultSettings() Settings {
	return Settings{
		FirstDayOfWeek: "sunday",
		Required:       false,
		AllowTextInput: true,
		DateFormat:     "Mon Jan 2 2006",
		Messages: Messages{
			InvalidInput: "Invalid date format",
			OutOfBounds:  "Date is out of bounds",
			Required:     "A date is required",
		},
	}
}

// LoadSettings reads the settings file at path. A missing file yields the
// defaults rather than an error.
func LoadSettings(path string) (Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return settings, nil
	}
	if err != nil {
		return settings, fmt.Errorf("failed to read settings: %w", err)
	}

	if err := yaml.Unmarshal(data, &settings); err != nil {
		return DefaultSettings(), fmt.Errorf("failed to parse settings: %w", err)
	}

	return settings, nil
}

// SaveSettings writes the settings file at path.
func SaveSettings(path string, settings Settings) error {
	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}

	return nil
}

// Bounds returns the configured min/max dates. A nil pointer means the bound
// is not configured. Malformed values are reported, not silently dropped.
func (s Settings) Bounds() (minDate, maxDate *time.Time, err error) {
	if s.MinDate != "" {
		t, perr := time.Parse("2006-01-02", s.MinDate)
		if perr != nil {
			return nil, nil, fmt.Errorf("invalid min_date %q: %w", s.MinDate, perr)
		}
		minDate = &t
	}

	if s.MaxDate != "" {
		t, perr := time.Parse("2006-01-02", s.MaxDate)
		if perr != nil {
			return nil, nil, fmt.Errorf("invalid max_date %q: %w", s.MaxDate, perr)
		}
		maxDate = &t
	}

	if minDate != nil && maxDate != nil && maxDate.Before(*minDate) {
		return nil, nil, fmt.Errorf("max_date %s is before min_date %s", s.MaxDate, s.MinDate)
	}

	return minDate, maxDate, nil
}

// WeekStart maps the configured first day of week to a time.Weekday.
// Unrecognized values fall back to Sunday.
func (s Settings) WeekStart() time.Weekday {
	switch strings.ToLower(s.FirstDayOfWeek) {
	case "monday", "mon":
		return time.Monday
	case "tuesday", "tue":
		return time.Tuesday
	case "wednesday", "wed":
		return time.Wednesday
	case "thursday", "thu":
		return time.Thursday
	case "friday", "fri":
		return time.Friday
	case "saturday", "sat":
		return time.Saturday
	default:
		return time.Sunday
	}
}

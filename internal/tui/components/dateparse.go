package components

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// absoluteLayouts are the layouts tried, in order, for absolute date input.
// The first one is also the default display format, so formatting a date and
// parsing it back always round-trips.
var absoluteLayouts = []string{
	"Mon Jan 2 2006",
	"Jan 2 2006",
	"Jan 2, 2006",
	"January 2 2006",
	"January 2, 2006",
	"2006-01-02",
	"1/2/2006",
	"2 Jan 2006",
}

// FormatNaturalDate formats a date as a short day/date string, e.g.
// "Wed Jan 15 2020".
func FormatNaturalDate(t time.Time) string {
	return t.Format("Mon Jan 2 2006")
}

// ParseNaturalDate parses common natural-language date strings and returns
// the date at midnight in local time.
// Supports:
// - absolute dates: "Wed Jan 15 2020", "Jan 15 2020", "January 15, 2020",
//   "2020-01-15", "1/15/2020"
// - "t" or "today", "tm" or "tomorrow"
// - "mon".."sun" and full weekday names - next occurrence of that weekday
// - "+3d" - 3 days from now, "+2w" - 2 weeks from now
func ParseNaturalDate(input string) (time.Time, error) {
	return parseNaturalDateWithNow(input, time.Now())
}

// parseNaturalDateWithNow is an internal function that accepts a "now" parameter for testing
func parseNaturalDateWithNow(input string, now time.Time) (time.Time, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return time.Time{}, fmt.Errorf("empty input")
	}

	for _, layout := range absoluteLayouts {
		parsed, err := time.Parse(layout, trimmed)
		if err != nil {
			continue
		}
		result := time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, now.Location())

		// Catch invalid dates that normalize (e.g. Feb 30 becoming Mar 2).
		if result.Year() != parsed.Year() || result.Month() != parsed.Month() || result.Day() != parsed.Day() {
			return time.Time{}, fmt.Errorf("invalid date: %s", trimmed)
		}
		return result, nil
	}

	lower := strings.ToLower(trimmed)

	// Handle "today" or "t"
	if lower == "t" || lower == "today" {
		return startOfDay(now), nil
	}

	// Handle "tomorrow" or "tm"
	if lower == "tm" || lower == "tomorrow" {
		return startOfDay(now.AddDate(0, 0, 1)), nil
	}

	// Handle "+Nd" (N days from now)
	if strings.HasPrefix(lower, "+") && strings.HasSuffix(lower, "d") {
		daysStr := strings.TrimPrefix(strings.TrimSuffix(lower, "d"), "+")
		days, err := strconv.Atoi(daysStr)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid days format: %w", err)
		}
		if days <= 0 {
			return time.Time{}, fmt.Errorf("days must be positive")
		}
		return startOfDay(now.AddDate(0, 0, days)), nil
	}

	// Handle "+Nw" (N weeks from now)
	if strings.HasPrefix(lower, "+") && strings.HasSuffix(lower, "w") {
		weeksStr := strings.TrimPrefix(strings.TrimSuffix(lower, "w"), "+")
		weeks, err := strconv.Atoi(weeksStr)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid weeks format: %w", err)
		}
		if weeks <= 0 {
			return time.Time{}, fmt.Errorf("weeks must be positive")
		}
		return startOfDay(now.AddDate(0, 0, weeks*7)), nil
	}

	// Handle weekday shortcuts and full names
	if target, ok := weekdayNames[lower]; ok {
		return nextWeekdayWithNow(target, now), nil
	}

	return time.Time{}, fmt.Errorf("unrecognized date: %s", trimmed)
}

var weekdayNames = map[string]time.Weekday{
	"mon": time.Monday, "monday": time.Monday,
	"tue": time.Tuesday, "tuesday": time.Tuesday,
	"wed": time.Wednesday, "wednesday": time.Wednesday,
	"thu": time.Thursday, "thursday": time.Thursday,
	"fri": time.Friday, "friday": time.Friday,
	"sat": time.Saturday, "saturday": time.Saturday,
	"sun": time.Sunday, "sunday": time.Sunday,
}

// nextWeekdayWithNow returns the next occurrence of the target weekday,
// always at least one day ahead.
func nextWeekdayWithNow(target time.Weekday, now time.Time) time.Time {
	daysUntil := int(target - now.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return startOfDay(now.AddDate(0, 0, daysUntil))
}

// startOfDay truncates a time to midnight in its own location.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// sameDay reports whether two times fall on the same calendar day.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DescribeDate returns a human-readable description of the date relative to
// today (e.g. "today", "tomorrow", "Monday", "in 2 weeks").
func DescribeDate(date time.Time) string {
	return describeDateWithNow(date, time.Now())
}

// describeDateWithNow is an internal function that accepts a "now" parameter for testing
func describeDateWithNow(date time.Time, now time.Time) string {
	daysDiff := int(startOfDay(date).Sub(startOfDay(now)).Hours() / 24)

	switch {
	case daysDiff < 0:
		return date.Format("Jan 2, 2006")
	case daysDiff == 0:
		return "today"
	case daysDiff == 1:
		return "tomorrow"
	case daysDiff < 7:
		return date.Weekday().String()
	case daysDiff < 28:
		weeks := daysDiff / 7
		if weeks == 1 {
			return "in 1 week"
		}
		return fmt.Sprintf("in %d weeks", weeks)
	default:
		return date.Format("Jan 2, 2006")
	}
}

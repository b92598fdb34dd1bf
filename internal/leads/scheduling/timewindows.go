package scheduling

import (
	"slices"
	"time"
)

var timeWindows = []string{
	"9:00 AM - 11:00 AM",
	"11:00 AM - 1:00 PM",
	"1:00 PM - 3:00 PM",
	"3:00 PM - 5:00 PM",
}

// TimeWindows returns the tour time windows offered on every business day.
func TimeWindows() []string {
	return slices.Clone(timeWindows)
}

// IsTimeWindow reports whether label is one of TimeWindows.
func IsTimeWindow(label string) bool {
	return slices.Contains(timeWindows, label)
}

// FormatSlotDate renders the short date shown on slot buttons, e.g. "Mon, Jan 5".
func FormatSlotDate(t time.Time) string {
	return t.Format("Mon, Jan 2")
}

// FormatLongDate renders the date used in emails, e.g. "Monday, January 5, 2026".
func FormatLongDate(t time.Time) string {
	return t.Format("Monday, January 2, 2006")
}

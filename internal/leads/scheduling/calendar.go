// Package scheduling offers tour dates to qualified prospects.
// Dates are offered, never reserved: two prospects can pick the same slot.
package scheduling

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"plaza_storefront_backend/internal/leads/scoring"
	"plaza_storefront_backend/platform/apperr"

	"gopkg.in/yaml.v3"
)

const (
	dateLayout = "2006-01-02"

	// maxLookahead bounds the scan when holidays or custom calendars leave
	// too few business days after the window start.
	maxLookahead = 60
)

//go:embed data/holidays.yaml
var defaultHolidaysYAML []byte

type windowParams struct {
	offset int
	limit  int
}

var windows = map[scoring.AvailabilityWindow]windowParams{
	scoring.WindowThisWeek: {offset: 1, limit: 5},
	scoring.WindowNextWeek: {offset: 5, limit: 8},
	scoring.WindowTwoWeeks: {offset: 14, limit: 10},
}

type holidayFile struct {
	Holidays []string `yaml:"holidays"`
}

// Calendar knows which days the leasing office gives tours.
type Calendar struct {
	holidays map[string]struct{}
}

// NewCalendar builds a calendar from YYYY-MM-DD holiday dates.
func NewCalendar(holidays []string) (*Calendar, error) {
	set := make(map[string]struct{}, len(holidays))
	for _, raw := range holidays {
		day := strings.TrimSpace(raw)
		if _, err := time.Parse(dateLayout, day); err != nil {
			return nil, fmt.Errorf("invalid holiday %q: %w", raw, err)
		}
		set[day] = struct{}{}
	}
	return &Calendar{holidays: set}, nil
}

// DefaultCalendar returns the embedded 2025-2026 holiday calendar.
func DefaultCalendar() (*Calendar, error) {
	return parseCalendar(defaultHolidaysYAML)
}

// LoadCalendar reads a holiday file. An empty path yields the default calendar.
func LoadCalendar(path string) (*Calendar, error) {
	if strings.TrimSpace(path) == "" {
		return DefaultCalendar()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read holidays file: %w", err)
	}
	cal, err := parseCalendar(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cal, nil
}

func parseCalendar(data []byte) (*Calendar, error) {
	var file holidayFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse holidays: %w", err)
	}
	return NewCalendar(file.Holidays)
}

// Holidays returns the configured holiday dates in ascending order.
func (c *Calendar) Holidays() []string {
	out := make([]string, 0, len(c.holidays))
	for day := range c.holidays {
		out = append(out, day)
	}
	sort.Strings(out)
	return out
}

// IsHoliday reports whether t's calendar date is a configured holiday.
// The date is read in t's own location.
func (c *Calendar) IsHoliday(t time.Time) bool {
	_, ok := c.holidays[t.Format(dateLayout)]
	return ok
}

// IsBusinessDay reports whether tours run on t: Monday to Friday, not a holiday.
func (c *Calendar) IsBusinessDay(t time.Time) bool {
	switch t.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}
	return !c.IsHoliday(t)
}

// AvailableDates lists the tour dates offered for a window, counted from today.
// Returned dates are midnight in today's location and strictly increasing.
// The list may be shorter than the window's limit when the lookahead runs out.
func (c *Calendar) AvailableDates(window scoring.AvailabilityWindow, today time.Time) ([]time.Time, error) {
	if today.IsZero() {
		return nil, apperr.Validation("today is required")
	}
	params, ok := windows[window]
	if !ok {
		return nil, apperr.Validation(fmt.Sprintf("unknown availability window %q", window))
	}

	start := midnight(today)
	dates := make([]time.Time, 0, params.limit)
	for i := 0; i < maxLookahead && len(dates) < params.limit; i++ {
		day := start.AddDate(0, 0, params.offset+i)
		if c.IsBusinessDay(day) {
			dates = append(dates, day)
		}
	}
	return dates, nil
}

// ParseDate parses a YYYY-MM-DD date as midnight in loc.
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(dateLayout, strings.TrimSpace(value), loc)
	if err != nil {
		return time.Time{}, apperr.Validation(fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", value))
	}
	return t, nil
}

// FormatISODate renders t as YYYY-MM-DD.
func FormatISODate(t time.Time) string {
	return t.Format(dateLayout)
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

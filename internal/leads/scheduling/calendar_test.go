package scheduling

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"plaza_storefront_backend/internal/leads/scoring"
	"plaza_storefront_backend/platform/apperr"
)

var eastern = time.FixedZone("EST", -5*60*60)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, eastern)
}

func mustDefaultCalendar(t *testing.T) *Calendar {
	t.Helper()
	cal, err := DefaultCalendar()
	if err != nil {
		t.Fatalf("default calendar: %v", err)
	}
	return cal
}

func isoDates(dates []time.Time) []string {
	out := make([]string, len(dates))
	for i, d := range dates {
		out[i] = FormatISODate(d)
	}
	return out
}

func assertDates(t *testing.T, got []time.Time, want ...string) {
	t.Helper()
	gotISO := isoDates(got)
	if len(gotISO) != len(want) {
		t.Fatalf("expected %v, got %v", want, gotISO)
	}
	for i := range want {
		if gotISO[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, gotISO)
		}
	}
}

func TestAvailableDatesFromFriday(t *testing.T) {
	cal := mustDefaultCalendar(t)
	friday := time.Date(2026, time.January, 2, 23, 30, 0, 0, eastern)

	thisWeek, err := cal.AvailableDates(scoring.WindowThisWeek, friday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertDates(t, thisWeek, "2026-01-05", "2026-01-06", "2026-01-07", "2026-01-08", "2026-01-09")

	nextWeek, err := cal.AvailableDates(scoring.WindowNextWeek, friday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertDates(t, nextWeek,
		"2026-01-07", "2026-01-08", "2026-01-09", "2026-01-12",
		"2026-01-13", "2026-01-14", "2026-01-15", "2026-01-16")

	twoWeeks, err := cal.AvailableDates(scoring.WindowTwoWeeks, friday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertDates(t, twoWeeks,
		"2026-01-16", "2026-01-20", "2026-01-21", "2026-01-22", "2026-01-23",
		"2026-01-26", "2026-01-27", "2026-01-28", "2026-01-29", "2026-01-30")
}

func TestAvailableDatesSkipsHolidayMonday(t *testing.T) {
	cal := mustDefaultCalendar(t)

	got, err := cal.AvailableDates(scoring.WindowThisWeek, day(2026, time.January, 16))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertDates(t, got, "2026-01-20", "2026-01-21", "2026-01-22", "2026-01-23", "2026-01-26")
}

func TestAvailableDatesUsesLocalCalendarDate(t *testing.T) {
	cal, err := NewCalendar([]string{"2026-01-19"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sydney := time.FixedZone("AEDT", 11*60*60)
	sunday := time.Date(2026, time.January, 18, 8, 0, 0, 0, sydney)

	got, err := cal.AvailableDates(scoring.WindowThisWeek, sunday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if FormatISODate(got[0]) != "2026-01-20" {
		t.Fatalf("expected holiday Monday to be skipped, got %v", isoDates(got))
	}
	if got[0].Location() != sydney || got[0].Hour() != 0 {
		t.Fatalf("expected midnight in caller location, got %s", got[0])
	}
}

func TestAvailableDatesInvariantsAcrossTwoYears(t *testing.T) {
	cal := mustDefaultCalendar(t)
	limits := map[scoring.AvailabilityWindow]int{
		scoring.WindowThisWeek: 5,
		scoring.WindowNextWeek: 8,
		scoring.WindowTwoWeeks: 10,
	}
	offsets := map[scoring.AvailabilityWindow]int{
		scoring.WindowThisWeek: 1,
		scoring.WindowNextWeek: 5,
		scoring.WindowTwoWeeks: 14,
	}

	for today := day(2025, time.January, 1); today.Year() < 2027; today = today.AddDate(0, 0, 1) {
		for window, limit := range limits {
			got, err := cal.AvailableDates(window, today)
			if err != nil {
				t.Fatalf("%s %s: %v", FormatISODate(today), window, err)
			}
			if len(got) != limit {
				t.Fatalf("%s %s: expected %d dates, got %d", FormatISODate(today), window, limit, len(got))
			}

			earliest := today.AddDate(0, 0, offsets[window])
			horizon := today.AddDate(0, 0, offsets[window]+maxLookahead)
			for i, d := range got {
				if !cal.IsBusinessDay(d) {
					t.Fatalf("%s %s: %s is not a business day", FormatISODate(today), window, FormatISODate(d))
				}
				if d.Before(earliest) || !d.Before(horizon) {
					t.Fatalf("%s %s: %s outside scan range", FormatISODate(today), window, FormatISODate(d))
				}
				if i > 0 && !d.After(got[i-1]) {
					t.Fatalf("%s %s: dates not strictly increasing: %v", FormatISODate(today), window, isoDates(got))
				}
			}
		}
	}
}

func TestAvailableDatesStopsAtLookahead(t *testing.T) {
	var holidays []string
	start := day(2026, time.March, 2)
	for i := 0; i < 90; i++ {
		holidays = append(holidays, FormatISODate(start.AddDate(0, 0, i)))
	}
	cal, err := NewCalendar(holidays)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := cal.AvailableDates(scoring.WindowThisWeek, day(2026, time.March, 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no dates, got %v", isoDates(got))
	}
}

func TestAvailableDatesRejectsBadInput(t *testing.T) {
	cal := mustDefaultCalendar(t)

	if _, err := cal.AvailableDates(scoring.WindowThisWeek, time.Time{}); !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("expected validation error for zero today, got %v", err)
	}
	if _, err := cal.AvailableDates("someday", day(2026, time.January, 2)); !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("expected validation error for unknown window, got %v", err)
	}
}

func TestIsBusinessDay(t *testing.T) {
	cal := mustDefaultCalendar(t)
	cases := []struct {
		date time.Time
		want bool
	}{
		{day(2026, time.January, 5), true},
		{day(2026, time.January, 3), false},
		{day(2026, time.January, 4), false},
		{day(2026, time.January, 19), false},
		{day(2026, time.July, 3), false},
		{day(2025, time.November, 28), false},
		{day(2027, time.January, 1), true},
	}
	for _, tc := range cases {
		if got := cal.IsBusinessDay(tc.date); got != tc.want {
			t.Fatalf("%s: expected %v, got %v", FormatISODate(tc.date), tc.want, got)
		}
	}
}

func TestLoadCalendar(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "holidays.yaml")
	content := "holidays:\n  - \"2027-01-01\"\n  - \"2027-01-18\"\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	cal, err := LoadCalendar(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := cal.Holidays()
	if len(got) != 2 || got[0] != "2027-01-01" || got[1] != "2027-01-18" {
		t.Fatalf("unexpected holidays %v", got)
	}
	if cal.IsBusinessDay(day(2027, time.January, 18)) {
		t.Fatal("expected loaded holiday to be closed")
	}

	def, err := LoadCalendar("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(def.Holidays()) != 22 {
		t.Fatalf("expected 22 default holidays, got %d", len(def.Holidays()))
	}
}

func TestNewCalendarRejectsMalformedDates(t *testing.T) {
	if _, err := NewCalendar([]string{"2026-13-01"}); err == nil {
		t.Fatal("expected error for invalid month")
	}
	if _, err := NewCalendar([]string{"Jan 1"}); err == nil {
		t.Fatal("expected error for wrong layout")
	}
}

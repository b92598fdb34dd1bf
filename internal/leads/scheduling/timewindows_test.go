package scheduling

import (
	"testing"
	"time"
)

func TestTimeWindows(t *testing.T) {
	got := TimeWindows()
	want := []string{"9:00 AM - 11:00 AM", "11:00 AM - 1:00 PM", "1:00 PM - 3:00 PM", "3:00 PM - 5:00 PM"}
	if len(got) != len(want) {
		t.Fatalf("expected %d windows, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("window %d: expected %q, got %q", i, want[i], got[i])
		}
		if !IsTimeWindow(want[i]) {
			t.Fatalf("expected %q to be a time window", want[i])
		}
	}

	got[0] = "midnight"
	if TimeWindows()[0] != want[0] {
		t.Fatal("callers must not be able to modify the window list")
	}
	if IsTimeWindow("5:00 PM - 7:00 PM") {
		t.Fatal("unexpected time window accepted")
	}
}

func TestFormatDates(t *testing.T) {
	d := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)
	if got := FormatSlotDate(d); got != "Mon, Jan 5" {
		t.Fatalf("unexpected slot date %q", got)
	}
	if got := FormatLongDate(d); got != "Monday, January 5, 2026" {
		t.Fatalf("unexpected long date %q", got)
	}
}

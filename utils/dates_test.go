package utils

import (
	"testing"
	"time"
)

func TestParseDateRoundTrip(t *testing.T) {
	d, err := ParseDate("2026-08-12")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if got := FormatDate(d); got != "2026-08-12" {
		t.Errorf("round trip = %s", got)
	}
	if d.Hour() != 0 || d.Location() != time.UTC {
		t.Errorf("not midnight UTC: %v", d)
	}

	if _, err := ParseDate("12/08/2026"); err == nil {
		t.Error("ParseDate accepted a non-ISO date")
	}
}

func TestWeekBounds(t *testing.T) {
	// 2026-08-12 is a Wednesday.
	wed := time.Date(2026, time.August, 12, 15, 30, 0, 0, time.UTC)
	if got := FormatDate(StartOfWeek(wed)); got != "2026-08-09" {
		t.Errorf("StartOfWeek = %s, want 2026-08-09", got)
	}
	if got := FormatDate(EndOfWeek(wed)); got != "2026-08-15" {
		t.Errorf("EndOfWeek = %s, want 2026-08-15", got)
	}

	// A Sunday is its own week start.
	sun := time.Date(2026, time.August, 9, 0, 0, 0, 0, time.UTC)
	if !SameDay(StartOfWeek(sun), sun) {
		t.Errorf("StartOfWeek(Sunday) = %v", StartOfWeek(sun))
	}
}

func TestMonthBounds(t *testing.T) {
	d := time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC)
	if got := FormatDate(StartOfMonth(d)); got != "2026-02-01" {
		t.Errorf("StartOfMonth = %s", got)
	}
	if got := FormatDate(EndOfMonth(d)); got != "2026-02-28" {
		t.Errorf("EndOfMonth = %s", got)
	}

	leap := time.Date(2028, time.February, 1, 0, 0, 0, 0, time.UTC)
	if got := FormatDate(EndOfMonth(leap)); got != "2028-02-29" {
		t.Errorf("EndOfMonth leap = %s", got)
	}
}

func TestDaysBetween(t *testing.T) {
	start := time.Date(2026, time.August, 30, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.September, 2, 0, 0, 0, 0, time.UTC)

	days := DaysBetween(start, end)
	if len(days) != 4 {
		t.Fatalf("got %d days, want 4", len(days))
	}
	if !SameDay(days[0], start) || !SameDay(days[3], end) {
		t.Errorf("bounds wrong: %v .. %v", days[0], days[3])
	}

	if got := DaysBetween(end, start); got != nil {
		t.Errorf("reversed range = %v, want nil", got)
	}
}

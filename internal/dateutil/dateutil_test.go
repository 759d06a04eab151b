package dateutil

import "testing"

func TestFormatDate(t *testing.T) {
	if got := FormatDate("2025-06-05"); got != "Jun 5, 2025" {
		t.Errorf("expected \"Jun 5, 2025\", got %q", got)
	}
	if got := FormatDate(""); got != "" {
		t.Errorf("expected empty string for empty input, got %q", got)
	}
	if got := FormatDate("not-a-date"); got != "" {
		t.Errorf("expected empty string for invalid input, got %q", got)
	}
}

func TestFormatShortDate(t *testing.T) {
	if got := FormatShortDate("2025-06-05"); got != "Jun 5" {
		t.Errorf("expected \"Jun 5\", got %q", got)
	}
	if got := FormatShortDate(""); got != "" {
		t.Errorf("expected empty string for empty input, got %q", got)
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		start, end string
		want       int
	}{
		{"2025-06-01", "2025-06-03", 3},
		{"2025-06-01", "2025-06-01", 1}, // same-day trip is a 1-day trip
		{"2025-06-01", "2025-06-07", 7},
		{"2025-12-29", "2026-01-02", 5}, // across year boundary
		{"", "2025-06-03", 0},
		{"2025-06-01", "", 0},
	}

	for _, tt := range tests {
		if got := DaysBetween(tt.start, tt.end); got != tt.want {
			t.Errorf("DaysBetween(%q, %q) = %d, want %d", tt.start, tt.end, got, tt.want)
		}
	}
}

func TestDayList(t *testing.T) {
	days := DayList("2025-06-01", "2025-06-03")
	if len(days) != 3 {
		t.Fatalf("expected 3 days, got %d", len(days))
	}

	expected := []Day{
		{Date: "2025-06-01", Number: 1},
		{Date: "2025-06-02", Number: 2},
		{Date: "2025-06-03", Number: 3},
	}
	for i, want := range expected {
		if days[i] != want {
			t.Errorf("day %d: got %+v, want %+v", i, days[i], want)
		}
	}

	if got := DayList("", "2025-06-03"); got != nil {
		t.Errorf("expected nil for missing start, got %v", got)
	}
}

func TestDayListLengthMatchesDaysBetween(t *testing.T) {
	ranges := [][2]string{
		{"2025-06-01", "2025-06-01"},
		{"2025-06-01", "2025-06-14"},
		{"2025-02-27", "2025-03-02"},
	}

	for _, r := range ranges {
		if got, want := len(DayList(r[0], r[1])), DaysBetween(r[0], r[1]); got != want {
			t.Errorf("range %v: len(DayList) = %d, DaysBetween = %d", r, got, want)
		}
	}
}

func TestDurationText(t *testing.T) {
	tests := []struct {
		start, end string
		want       string
	}{
		{"2025-06-01", "2025-06-01", "1 day"},
		{"2025-06-01", "2025-06-03", "3 days"},
		{"2025-06-01", "2025-06-07", "1 week"},
		{"2025-06-01", "2025-06-14", "2 weeks"},
		{"2025-06-01", "2025-06-08", "1 week, 1 day"},
		{"2025-06-01", "2025-06-10", "1 week, 3 days"},
		{"2025-06-01", "2025-06-17", "2 weeks, 3 days"},
		{"", "2025-06-03", ""},
	}

	for _, tt := range tests {
		if got := DurationText(tt.start, tt.end); got != tt.want {
			t.Errorf("DurationText(%q, %q) = %q, want %q", tt.start, tt.end, got, tt.want)
		}
	}
}

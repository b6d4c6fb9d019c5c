package nutrition

import (
	"encoding/json"
	"testing"
	"time"
)

func TestShiftDate_CrossesBoundaries(t *testing.T) {
	cases := []struct {
		name   string
		from   DateOnly
		offset int
		want   string
	}{
		{"next year", NewDate(2024, time.December, 31), 1, "2025-01-01"},
		{"previous year", NewDate(2025, time.January, 1), -1, "2024-12-31"},
		{"leap day", NewDate(2024, time.March, 1), -1, "2024-02-29"},
		{"non-leap february", NewDate(2023, time.March, 1), -1, "2023-02-28"},
		{"month end", NewDate(2026, time.April, 30), 1, "2026-05-01"},
		{"zero offset", NewDate(2026, time.October, 18), 0, "2026-10-18"},
		{"multi-week", NewDate(2026, time.October, 18), 30, "2026-11-17"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ShiftDate(tc.from, tc.offset).String(); got != tc.want {
				t.Errorf("ShiftDate(%s, %d) = %s, want %s", tc.from, tc.offset, got, tc.want)
			}
		})
	}
}

// TestShiftDate_RoundTrip walks two years of days and checks that stepping
// forward then back lands on the same day.
func TestShiftDate_RoundTrip(t *testing.T) {
	d := NewDate(2023, time.January, 1)
	for i := 0; i < 2*366; i++ {
		if back := ShiftDate(ShiftDate(d, 1), -1); !back.SameDay(d) {
			t.Fatalf("round trip from %s landed on %s", d, back)
		}
		d = ShiftDate(d, 1)
	}
}

// TestFormatDateLabel uses 2026-10-18 (a Sunday) as the current day.
func TestFormatDateLabel(t *testing.T) {
	now := time.Date(2026, time.October, 18, 15, 30, 0, 0, time.Local)
	cases := []struct {
		date DateOnly
		want string
	}{
		{NewDate(2026, time.October, 18), "Today"},
		{NewDate(2026, time.October, 17), "Yesterday"},
		{NewDate(2026, time.October, 16), "Fri, Oct 16"},
		{NewDate(2026, time.October, 19), "Mon, Oct 19"},
		{NewDate(2025, time.October, 18), "Sat, Oct 18"},
	}
	for _, tc := range cases {
		if got := FormatDateLabel(tc.date, now); got != tc.want {
			t.Errorf("FormatDateLabel(%s) = %q, want %q", tc.date, got, tc.want)
		}
	}
}

// TestFormatDateLabel_YesterdayAcrossYear checks "Yesterday" on January 1st.
func TestFormatDateLabel_YesterdayAcrossYear(t *testing.T) {
	now := time.Date(2027, time.January, 1, 0, 5, 0, 0, time.Local)
	if got := FormatDateLabel(NewDate(2026, time.December, 31), now); got != "Yesterday" {
		t.Errorf("label = %q, want Yesterday", got)
	}
}

func TestToday_UsesLocalCalendarDay(t *testing.T) {
	now := time.Date(2026, time.October, 18, 23, 59, 0, 0, time.Local)
	if got := Today(now).String(); got != "2026-10-18" {
		t.Errorf("Today = %s, want 2026-10-18", got)
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-02-28")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if !d.SameDay(NewDate(2026, time.February, 28)) {
		t.Errorf("parsed %s, want 2026-02-28", d)
	}

	for _, bad := range []string{"", "2026-2-28", "28/02/2026", "2026-02-30", "2026-02-28T10:00:00Z"} {
		if _, err := ParseDate(bad); err == nil {
			t.Errorf("ParseDate(%q) succeeded, want error", bad)
		}
	}
}

func TestDateOnly_JSON(t *testing.T) {
	b, err := json.Marshal(FoodEntry{ID: "x", Name: "Apple", Calories: 95, Date: NewDate(2026, time.October, 18)})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatalf("unmarshal map: %v", err)
	}
	if decoded["date"] != "2026-10-18" {
		t.Errorf("date encoded as %v, want 2026-10-18", decoded["date"])
	}

	var d DateOnly
	if err := json.Unmarshal([]byte(`"2026-13-01"`), &d); err == nil {
		t.Error("expected error for month 13")
	}
}

package nutrition

import "time"

const dateLayout = "2006-01-02"

// DateOnly is a calendar day. It wraps time.Time at midnight UTC so calendar
// arithmetic never crosses a DST transition, and serializes as "YYYY-MM-DD".
type DateOnly struct{ time.Time }

// NewDate returns the calendar day y-m-d. Out-of-range values normalize the way time.Date does.
func NewDate(year int, month time.Month, day int) DateOnly {
	return DateOnly{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a "YYYY-MM-DD" string.
func ParseDate(s string) (DateOnly, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return DateOnly{}, err
	}
	return DateOnly{t}, nil
}

// Today returns the local calendar day of now.
func Today(now time.Time) DateOnly {
	y, m, d := now.Date()
	return NewDate(y, m, d)
}

func (d DateOnly) String() string {
	return d.Time.Format(dateLayout)
}

// SameDay reports whether d and o are the same calendar day.
func (d DateOnly) SameDay(o DateOnly) bool {
	y1, m1, d1 := d.Date()
	y2, m2, d2 := o.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

func (d DateOnly) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *DateOnly) UnmarshalJSON(b []byte) error {
	t, err := time.Parse(`"`+dateLayout+`"`, string(b))
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// ShiftDate moves d by offsetDays calendar days; time.Date normalizes the day
// across month and year boundaries.
func ShiftDate(d DateOnly, offsetDays int) DateOnly {
	y, m, day := d.Date()
	return NewDate(y, m, day+offsetDays)
}

// FormatDateLabel returns "Today", "Yesterday", or a short label like "Mon, Jan 2"
// relative to the local calendar day of now.
func FormatDateLabel(d DateOnly, now time.Time) string {
	today := Today(now)
	switch {
	case d.SameDay(today):
		return "Today"
	case d.SameDay(ShiftDate(today, -1)):
		return "Yesterday"
	default:
		return d.Format("Mon, Jan 2")
	}
}

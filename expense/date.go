package expense

import (
	"fmt"
	"time"
)

// =============================================================================
// DATE - Calendar-day abstraction
// =============================================================================

// Date is a calendar day with no time component. All date arithmetic in the
// engine goes through this type so that range containment, week and month
// boundaries are computed one way everywhere.
//
// Dates are normalized to midnight UTC internally; two records created at
// different times of day on the same calendar day compare equal.
type Date struct {
	t time.Time
}

// DateLayout is the wire format for dates.
const DateLayout = "2006-01-02"

// NewDate builds a Date from calendar components.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates a timestamp to its calendar day.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// ParseDate parses a "YYYY-MM-DD" string. Anything else fails with ErrBadDate.
func ParseDate(s string) (Date, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q is not YYYY-MM-DD", ErrBadDate, s)
	}
	return Date{t: t}, nil
}

// Comparison
func (d Date) Before(other Date) bool        { return d.t.Before(other.t) }
func (d Date) After(other Date) bool         { return d.t.After(other.t) }
func (d Date) Equal(other Date) bool         { return d.t.Equal(other.t) }
func (d Date) BeforeOrEqual(other Date) bool { return !d.After(other) }
func (d Date) AfterOrEqual(other Date) bool  { return !d.Before(other) }

// Arithmetic
func (d Date) AddDays(n int) Date { return Date{t: d.t.AddDate(0, 0, n)} }

// Properties
func (d Date) Year() int         { return d.t.Year() }
func (d Date) Month() time.Month { return d.t.Month() }
func (d Date) Day() int          { return d.t.Day() }
func (d Date) IsZero() bool      { return d.t.IsZero() }

func (d Date) String() string { return d.t.Format(DateLayout) }

// MarshalJSON encodes the date as a "YYYY-MM-DD" string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON decodes a "YYYY-MM-DD" string.
func (d *Date) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("%w: %s", ErrBadDate, data)
	}
	parsed, err := ParseDate(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// DaysBetween returns the number of calendar days from `from` to `to`.
// Negative when `to` is earlier.
func DaysBetween(from, to Date) int {
	return int(to.t.Sub(from.t).Hours() / 24)
}

// =============================================================================
// PERIOD - Named inclusive calendar interval
// =============================================================================

// Period is the time boundary for a summary. Both bounds are inclusive.
type Period struct {
	Label string
	Start Date
	End   Date
}

// Contains returns true if the date is within [Start, End].
func (p Period) Contains(d Date) bool {
	return d.AfterOrEqual(p.Start) && d.BeforeOrEqual(p.End)
}

// Days returns the inclusive length of the period in days.
func (p Period) Days() int {
	return DaysBetween(p.Start, p.End) + 1
}

func (p Period) String() string {
	return p.Label + " [" + p.Start.String() + ", " + p.End.String() + "]"
}

// WeekOf returns the Monday-through-Sunday week containing d.
func WeekOf(d Date) Period {
	// time.Weekday counts from Sunday; shift so Monday is day zero.
	offset := (int(d.t.Weekday()) + 6) % 7
	start := d.AddDays(-offset)
	return Period{Label: "Weekly", Start: start, End: start.AddDays(6)}
}

// MonthOf returns the calendar month containing d. The last day is derived
// by stepping to the first of the next month and backing up one day, which
// handles the December rollover.
func MonthOf(d Date) Period {
	start := NewDate(d.Year(), d.Month(), 1)
	end := NewDate(d.Year(), d.Month()+1, 1).AddDays(-1)
	return Period{Label: "Monthly", Start: start, End: end}
}

// RangeOf builds a custom period from parsed bounds.
func RangeOf(label string, start, end Date) Period {
	return Period{Label: label, Start: start, End: end}
}

// ParseRange builds a custom period from "YYYY-MM-DD" bounds.
func ParseRange(label, start, end string) (Period, error) {
	s, err := ParseDate(start)
	if err != nil {
		return Period{}, err
	}
	e, err := ParseDate(end)
	if err != nil {
		return Period{}, err
	}
	return Period{Label: label, Start: s, End: e}, nil
}

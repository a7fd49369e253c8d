package carteira

import (
	"encoding/json"
	"fmt"
	"time"
)

const readDateFormat = "2006-1-2" // Permissive read date format (allows single-digit month/day).

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02"

// Date represents a calendar day. Contributions have no time-of-day semantics,
// so the day is the finest granularity the whole system ever needs.
type Date struct {
	y int
	m time.Month
	d int
}

// NewDate returns a normalized Date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// ParseDate parses a date in ISO-8601 format ("2024-01-15", single digits allowed).
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(readDateFormat, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return NewDate(t.Date()), nil
}

// Today returns the current date.
func Today() Date { return NewDate(time.Now().Date()) }

// Year returns the year of the date.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool { return d.y == 0 && d.m == 0 && d.d == 0 }

// String formats the date in ISO-8601.
func (d Date) String() string { return d.time().Format(DateFormat) }

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Compare returns -1, 0 or 1 depending on whether d is before, on, or after x.
func (d Date) Compare(x Date) int { return d.time().Compare(x.time()) }

// Key returns the month this date belongs to.
func (d Date) Key() MonthKey { return MonthKey{Year: d.y, Month: d.m} }

// MarshalJSON implements the json.Marshaler interface.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MonthKey identifies a calendar month. It is the canonical sort and identity
// key for monthly snapshots; display labels are derived from it.
type MonthKey struct {
	Year  int
	Month time.Month
}

// monthAbbr holds the three-letter Portuguese month abbreviations used in labels.
var monthAbbr = [12]string{"Jan", "Fev", "Mar", "Abr", "Mai", "Jun", "Jul", "Ago", "Set", "Out", "Nov", "Dez"}

// Label formats the month in the "Jan/24" display style.
func (k MonthKey) Label() string {
	return fmt.Sprintf("%s/%02d", monthAbbr[k.Month-1], k.Year%100)
}

// Before reports whether k is chronologically before x.
func (k MonthKey) Before(x MonthKey) bool {
	if k.Year != x.Year {
		return k.Year < x.Year
	}
	return k.Month < x.Month
}

// Compare returns -1, 0 or 1 depending on whether k is before, equal to, or after x.
// Months are compared by year then month number, never by string representation.
func (k MonthKey) Compare(x MonthKey) int {
	if k.Year != x.Year {
		if k.Year < x.Year {
			return -1
		}
		return 1
	}
	if k.Month != x.Month {
		if k.Month < x.Month {
			return -1
		}
		return 1
	}
	return 0
}

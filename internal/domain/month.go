package domain

import (
	"fmt"
	"time"
)

// monthKeyLayout is the canonical YYYY-MM format. Lexicographic order of keys
// in this format equals chronological order, which every running-total
// computation in the ledger engine depends on.
const monthKeyLayout = "2006-01"

// MonthKey identifies a calendar month as a YYYY-MM string.
type MonthKey string

// MonthKeyOf returns the MonthKey for the month containing t.
func MonthKeyOf(t time.Time) MonthKey {
	return MonthKey(t.Format(monthKeyLayout))
}

// Validate checks that the key is a well-formed YYYY-MM month. A key that does
// not parse cannot be trusted to sort chronologically and is rejected with
// ErrNonChronologicalMonth.
func (m MonthKey) Validate() error {
	if _, err := time.Parse(monthKeyLayout, string(m)); err != nil {
		return fmt.Errorf("%w: %q", ErrNonChronologicalMonth, string(m))
	}
	return nil
}

// Time returns the first instant of the month in UTC. The key must be valid.
func (m MonthKey) Time() time.Time {
	t, _ := time.Parse(monthKeyLayout, string(m))
	return t
}

func (m MonthKey) String() string {
	return string(m)
}

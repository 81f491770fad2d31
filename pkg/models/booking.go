package models

import (
	"fmt"
	"time"
)

// Booking represents a single reservation attached to one calendar day
type Booking struct {
	ID         string // Unique identifier (UUID)
	PersonName string // Who the slot is booked for
	Color      string // Hex color, used for the day highlight and list text
	StartTime  string // Time-of-day string, e.g. "09:00"
	EndTime    string // Time-of-day string, e.g. "10:00"
}

// DayKey identifies one calendar cell across all years.
// Month is zero-indexed (0 = January), matching the renderer's month addressing.
type DayKey struct {
	Year  int
	Month int
	Day   int
}

// Date returns the midnight local time for this key.
// Out-of-range fields roll over via time.Date overflow arithmetic.
func (k DayKey) Date() time.Time {
	return time.Date(k.Year, time.Month(k.Month+1), k.Day, 0, 0, 0, 0, time.Local)
}

// DayKeyFromDate builds the key for the day containing t.
func DayKeyFromDate(t time.Time) DayKey {
	return DayKey{Year: t.Year(), Month: int(t.Month()) - 1, Day: t.Day()}
}

func (k DayKey) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", k.Year, k.Month+1, k.Day)
}

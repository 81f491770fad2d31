package calendar

import (
	"strings"
	"time"

	"github.com/borgmon/slotcal/pkg/models"
)

var monthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// MonthName returns the English name for a zero-indexed month.
// Out-of-range values are normalized first, so MonthName(12) is "January".
func MonthName(month int) string {
	_, m := Normalize(0, month)
	return monthNames[m]
}

// Normalize resolves an out-of-range zero-indexed month into a canonical
// (year, month) pair via date overflow arithmetic: month 12 rolls to January
// of year+1, month -1 to December of year-1.
func Normalize(year, month int) (int, int) {
	t := time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.Local)
	return t.Year(), int(t.Month()) - 1
}

// FirstWeekday returns the weekday index (0=Sunday..6=Saturday) of day 1 of
// the given month.
func FirstWeekday(year, month int) int {
	return int(time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.Local).Weekday())
}

// DaysInMonth returns the number of days in the given zero-indexed month,
// leap years included. Day 0 of the next month is the last day of this one.
func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month+2), 0, 0, 0, 0, 0, time.Local).Day()
}

// MonthGrid lays out one month as a flat sequence of cells: firstWeekday
// leading filler cells, one cell per day, then trailing filler cells up to the
// next full week boundary. The total cell count is always a multiple of 7.
// byDay supplies the bookings that drive each day cell's highlight and
// tooltip; it may be nil.
func MonthGrid(year, month int, byDay map[models.DayKey][]models.Booking) []models.CellViewModel {
	year, month = Normalize(year, month)

	firstWeekday := FirstWeekday(year, month)
	totalDays := DaysInMonth(year, month)

	weeks := (firstWeekday + totalDays + 6) / 7
	cells := make([]models.CellViewModel, 0, weeks*7)

	for i := 0; i < firstWeekday; i++ {
		cells = append(cells, models.CellViewModel{Disabled: true})
	}

	for day := 1; day <= totalDays; day++ {
		cell := models.CellViewModel{Day: day}
		if bookings := byDay[models.DayKey{Year: year, Month: month, Day: day}]; len(bookings) > 0 {
			cell.Highlight = bookings[0].Color
			cell.Tooltip = TooltipText(bookings)
		}
		cells = append(cells, cell)
	}

	for len(cells) < weeks*7 {
		cells = append(cells, models.CellViewModel{Disabled: true})
	}

	return cells
}

// TooltipText summarizes a day's bookings as "{name}: {start} - {end}"
// entries joined by ", ", in insertion order.
func TooltipText(bookings []models.Booking) string {
	parts := make([]string, 0, len(bookings))
	for _, b := range bookings {
		parts = append(parts, b.PersonName+": "+b.StartTime+" - "+b.EndTime)
	}
	return strings.Join(parts, ", ")
}

package calendar

import (
	"testing"

	"github.com/borgmon/slotcal/pkg/models"
)

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month int
		want  int
	}{
		{name: "February leap year", year: 2024, month: 1, want: 29},
		{name: "February non-leap year", year: 2023, month: 1, want: 28},
		{name: "February century non-leap", year: 1900, month: 1, want: 28},
		{name: "February 400-year leap", year: 2000, month: 1, want: 29},
		{name: "January", year: 2024, month: 0, want: 31},
		{name: "April", year: 2024, month: 3, want: 30},
		{name: "December", year: 2024, month: 11, want: 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysInMonth(tt.year, tt.month); got != tt.want {
				t.Errorf("DaysInMonth(%d, %d) = %d, want %d", tt.year, tt.month, got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name      string
		year      int
		month     int
		wantYear  int
		wantMonth int
	}{
		{name: "in range", year: 2024, month: 5, wantYear: 2024, wantMonth: 5},
		{name: "month 12 rolls to next January", year: 2024, month: 12, wantYear: 2025, wantMonth: 0},
		{name: "month -1 rolls to previous December", year: 2024, month: -1, wantYear: 2023, wantMonth: 11},
		{name: "large overflow", year: 2024, month: 25, wantYear: 2026, wantMonth: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotYear, gotMonth := Normalize(tt.year, tt.month)
			if gotYear != tt.wantYear || gotMonth != tt.wantMonth {
				t.Errorf("Normalize(%d, %d) = (%d, %d), want (%d, %d)",
					tt.year, tt.month, gotYear, gotMonth, tt.wantYear, tt.wantMonth)
			}
		})
	}
}

func TestMonthGridShape(t *testing.T) {
	// Every month of several years: cell count is a multiple of 7 and large
	// enough to hold the leading blanks plus all days
	for _, year := range []int{1999, 2023, 2024, 2025, 2100} {
		for month := 0; month < 12; month++ {
			cells := MonthGrid(year, month, nil)

			if len(cells)%7 != 0 {
				t.Errorf("MonthGrid(%d, %d): %d cells, not a multiple of 7", year, month, len(cells))
			}

			minimum := FirstWeekday(year, month) + DaysInMonth(year, month)
			if len(cells) < minimum {
				t.Errorf("MonthGrid(%d, %d): %d cells, need at least %d", year, month, len(cells), minimum)
			}

			days := 0
			for _, cell := range cells {
				if !cell.Disabled {
					days++
				}
			}
			if days != DaysInMonth(year, month) {
				t.Errorf("MonthGrid(%d, %d): %d day cells, want %d", year, month, days, DaysInMonth(year, month))
			}
		}
	}
}

func TestMonthGridLeadingBlanks(t *testing.T) {
	// June 2024 starts on a Saturday
	cells := MonthGrid(2024, 5, nil)

	for i := 0; i < 6; i++ {
		if !cells[i].Disabled {
			t.Errorf("cell %d should be a leading blank", i)
		}
	}
	if cells[6].Disabled || cells[6].Day != 1 {
		t.Errorf("cell 6 = %+v, want day 1", cells[6])
	}
}

func TestMonthGridBookedDay(t *testing.T) {
	key := models.DayKey{Year: 2024, Month: 5, Day: 10}
	byDay := map[models.DayKey][]models.Booking{
		key: {
			{PersonName: "Alice", Color: "#ff0000", StartTime: "09:00", EndTime: "10:00"},
			{PersonName: "Bob", Color: "#00ff00", StartTime: "11:00", EndTime: "12:00"},
		},
	}

	cells := MonthGrid(2024, 5, byDay)

	var cell models.CellViewModel
	found := false
	for _, c := range cells {
		if c.Day == 10 {
			cell = c
			found = true
			break
		}
	}
	if !found {
		t.Fatal("day 10 not found in grid")
	}

	if cell.Highlight != "#ff0000" {
		t.Errorf("highlight = %q, want first booking's color #ff0000", cell.Highlight)
	}

	wantTooltip := "Alice: 09:00 - 10:00, Bob: 11:00 - 12:00"
	if cell.Tooltip != wantTooltip {
		t.Errorf("tooltip = %q, want %q", cell.Tooltip, wantTooltip)
	}
}

func TestMonthName(t *testing.T) {
	tests := []struct {
		month int
		want  string
	}{
		{month: 0, want: "January"},
		{month: 11, want: "December"},
		{month: 12, want: "January"},
		{month: -1, want: "December"},
	}

	for _, tt := range tests {
		if got := MonthName(tt.month); got != tt.want {
			t.Errorf("MonthName(%d) = %q, want %q", tt.month, got, tt.want)
		}
	}
}

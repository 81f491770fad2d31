package main

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/borgmon/slotcal/pkg/models"
	"github.com/borgmon/slotcal/pkg/session"
	"github.com/borgmon/slotcal/pkg/store"
)

func newTestSlotCal() *SlotCal {
	sc := &SlotCal{
		app:          test.NewApp(),
		bookingStore: store.NewBookingStore(),
	}
	sc.config = loadConfig(sc.app)
	sc.session = session.New(sc.bookingStore, 2024, 5, sc.config.DefaultColor)
	sc.calendarWindow = NewCalendarWindow(sc, sc.config, sc.session, sc.bookingStore)
	return sc
}

func TestShowCalendarWindowRecreatesAfterClose(t *testing.T) {
	sc := newTestSlotCal()

	first := sc.calendarWindow
	first.window.Close()

	if sc.calendarWindow != nil {
		t.Fatal("closing the calendar window should clear the app's reference")
	}

	sc.showCalendarWindow()

	if sc.calendarWindow == nil {
		t.Fatal("showCalendarWindow did not recreate the window")
	}
	if sc.calendarWindow == first {
		t.Fatal("showCalendarWindow reused the closed window")
	}
}

func TestBookingsListEmptyUntilDaySelected(t *testing.T) {
	sc := newTestSlotCal()
	cw := sc.calendarWindow

	if got := cw.bookingsList.Length(); got != 0 {
		t.Errorf("list length with no selection = %d, want 0", got)
	}

	cw.onDayTapped(10)

	if got := cw.bookingsList.Length(); got != 1 {
		t.Errorf("list length for a day without bookings = %d, want 1 empty-state row", got)
	}

	key := models.DayKey{Year: 2024, Month: 5, Day: 10}
	sc.bookingStore.Append(key, models.Booking{ID: "1", PersonName: "Alice", StartTime: "09:00", EndTime: "10:00"})
	sc.bookingStore.Append(key, models.Booking{ID: "2", PersonName: "Bob", StartTime: "11:00", EndTime: "12:00"})
	cw.refreshBookingsPanel()

	if got := cw.bookingsList.Length(); got != 2 {
		t.Errorf("list length with two bookings = %d, want 2", got)
	}
}

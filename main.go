package main

import (
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/borgmon/slotcal/pkg/session"
	"github.com/borgmon/slotcal/pkg/store"
)

type SlotCal struct {
	app            fyne.App
	config         *Config
	bookingStore   *store.BookingStore
	session        *session.Session
	calendarWindow *CalendarWindow
}

func main() {
	sc := &SlotCal{
		app:          app.New(),
		bookingStore: store.NewBookingStore(),
	}

	if err := sc.initialize(); err != nil {
		log.Fatal(err)
	}

	sc.run()
}

func (sc *SlotCal) initialize() error {
	sc.config = loadConfig(sc.app)

	// Sync autostart state with config on startup
	if err := setupAutostart(sc.config.AutoStart); err != nil {
		log.Printf("Warning: failed to setup autostart: %v", err)
	}

	saveConfig(sc.app, sc.config)

	now := time.Now()
	sc.session = session.New(sc.bookingStore, now.Year(), int(now.Month())-1, sc.config.DefaultColor)

	sc.calendarWindow = NewCalendarWindow(sc, sc.config, sc.session, sc.bookingStore)
	sc.setupSystemTray()

	return nil
}

func (sc *SlotCal) run() {
	sc.calendarWindow.Show()
	sc.app.Run()
}

func (sc *SlotCal) showCalendarWindow() {
	if sc.calendarWindow == nil {
		sc.calendarWindow = NewCalendarWindow(sc, sc.config, sc.session, sc.bookingStore)
	}
	sc.calendarWindow.Show()
}

func (sc *SlotCal) quit() {
	sc.app.Quit()
}

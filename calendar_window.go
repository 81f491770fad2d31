package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/borgmon/slotcal/pkg/calendar"
	"github.com/borgmon/slotcal/pkg/models"
	"github.com/borgmon/slotcal/pkg/session"
	"github.com/borgmon/slotcal/pkg/store"
)

var weekdayHeaders = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

type CalendarWindow struct {
	window  fyne.Window
	sc      *SlotCal
	config  *Config
	session *session.Session
	store   *store.BookingStore

	monthLabel    *widget.Label
	gridContainer *fyne.Container
	dayCells      []*DayCell

	panelTitle       *widget.Label
	bookingsList     *widget.List
	bookingsData     []models.Booking
	newBookingButton *widget.Button
	statusLabel      *widget.Label
}

func NewCalendarWindow(sc *SlotCal, config *Config, sess *session.Session, bookingStore *store.BookingStore) *CalendarWindow {
	cw := &CalendarWindow{
		sc:      sc,
		config:  config,
		session: sess,
		store:   bookingStore,
	}

	cw.window = sc.app.NewWindow("SlotCal")
	cw.buildUI()
	cw.refreshCalendar()
	cw.refreshBookingsPanel()

	// Clear the app's reference so tray actions recreate the window instead
	// of showing a destroyed one
	cw.window.SetOnClosed(func() {
		sc.calendarWindow = nil
	})

	return cw
}

func (cw *CalendarWindow) buildUI() {
	cw.monthLabel = widget.NewLabel("")
	cw.monthLabel.Alignment = fyne.TextAlignCenter
	cw.monthLabel.TextStyle = fyne.TextStyle{Bold: true}

	prevButton := widget.NewButtonWithIcon("", theme.NavigateBackIcon(), func() {
		cw.session.PrevMonth()
		cw.refreshCalendar()
		cw.refreshBookingsPanel()
	})
	nextButton := widget.NewButtonWithIcon("", theme.NavigateNextIcon(), func() {
		cw.session.NextMonth()
		cw.refreshCalendar()
		cw.refreshBookingsPanel()
	})

	settingsButton := widget.NewButtonWithIcon("", theme.SettingsIcon(), func() {
		cw.showSettingsDialog()
	})
	exportButton := widget.NewButton("Export", func() {
		cw.exportBookings()
	})
	importButton := widget.NewButton("Import", func() {
		cw.importBookings()
	})

	header := container.NewBorder(
		nil, nil,
		prevButton,
		container.NewHBox(nextButton, widget.NewSeparator(), importButton, exportButton, settingsButton),
		cw.monthLabel,
	)

	weekdayRow := container.NewGridWithColumns(7)
	for _, name := range weekdayHeaders {
		label := widget.NewLabel(name)
		label.Alignment = fyne.TextAlignCenter
		weekdayRow.Add(label)
	}

	cw.gridContainer = container.NewGridWithColumns(7)

	cw.statusLabel = widget.NewLabel("")
	cw.statusLabel.Importance = widget.MediumImportance

	cw.panelTitle = widget.NewLabel("Click a day to see its bookings")

	cw.bookingsList = widget.NewList(
		func() int {
			if _, selected := cw.session.SelectedDay(); !selected {
				return 0
			}
			if len(cw.bookingsData) == 0 {
				return 1 // empty-state row
			}
			return len(cw.bookingsData)
		},
		func() fyne.CanvasObject {
			text := canvas.NewText("template", theme.ForegroundColor())
			return container.NewPadded(text)
		},
		func(i widget.ListItemID, o fyne.CanvasObject) {
			text := o.(*fyne.Container).Objects[0].(*canvas.Text)

			day, _ := cw.session.SelectedDay()
			if len(cw.bookingsData) == 0 {
				text.Color = theme.ForegroundColor()
				text.Text = fmt.Sprintf("No bookings for day %d", day.Day)
				text.Refresh()
				return
			}

			if i >= len(cw.bookingsData) {
				return
			}
			booking := cw.bookingsData[i]
			text.Text = fmt.Sprintf("Day %d: %s - %s to %s",
				day.Day, booking.PersonName, booking.StartTime, booking.EndTime)
			text.Color = parseHexColor(booking.Color, theme.ForegroundColor())
			text.Refresh()
		})

	cw.newBookingButton = widget.NewButtonWithIcon("New Booking", theme.ContentAddIcon(), func() {
		if cw.session.OpenComposer() {
			cw.showBookingForm()
		}
	})
	cw.newBookingButton.Importance = widget.HighImportance
	cw.newBookingButton.Disable() // Enabled once a day is selected

	panel := container.NewBorder(
		cw.panelTitle,
		cw.newBookingButton,
		nil,
		nil,
		cw.bookingsList,
	)

	left := container.NewBorder(
		container.NewVBox(header, weekdayRow),
		cw.statusLabel,
		nil,
		nil,
		cw.gridContainer,
	)

	split := container.NewHSplit(left, panel)
	split.SetOffset(0.7)

	cw.window.SetContent(split)
	cw.window.Resize(fyne.NewSize(900, 600))
	cw.window.CenterOnScreen()
}

// refreshCalendar recomputes the month grid and rebuilds the day cells.
func (cw *CalendarWindow) refreshCalendar() {
	year, month := cw.session.Displayed()
	cw.monthLabel.SetText(fmt.Sprintf("%s %d", calendar.MonthName(month), year))

	selected, hasSelected := cw.session.SelectedDay()

	cw.gridContainer.Objects = nil
	cw.dayCells = cw.dayCells[:0]
	for _, cell := range cw.session.Grid() {
		dayCell := NewDayCell(cell, cw.onDayTapped, cw.onDayHover)
		if hasSelected && !cell.Disabled && cell.Day == selected.Day {
			dayCell.SetSelected(true)
		}
		cw.dayCells = append(cw.dayCells, dayCell)
		cw.gridContainer.Add(dayCell)
	}
	cw.gridContainer.Refresh()
}

// refreshBookingsPanel reloads the side panel from the current selection.
func (cw *CalendarWindow) refreshBookingsPanel() {
	day, selected := cw.session.SelectedDay()
	if !selected {
		cw.panelTitle.SetText("Click a day to see its bookings")
		cw.bookingsData = nil
		cw.bookingsList.Refresh()
		cw.newBookingButton.Disable()
		return
	}

	year, month := cw.session.Displayed()
	cw.panelTitle.SetText(fmt.Sprintf("Bookings for %s %d, %d", calendar.MonthName(month), day.Day, year))

	bookings, ok := cw.session.SelectedBookings()
	if !ok {
		bookings = nil
	}
	cw.bookingsData = bookings
	cw.bookingsList.Refresh()
	cw.newBookingButton.Enable()
}

func (cw *CalendarWindow) onDayTapped(day int) {
	cw.session.SelectDay(day)

	for _, cell := range cw.dayCells {
		cell.SetSelected(!cell.Cell.Disabled && cell.Cell.Day == day)
	}

	cw.refreshBookingsPanel()
}

func (cw *CalendarWindow) onDayHover(tooltip string) {
	cw.statusLabel.SetText(tooltip)
}

func (cw *CalendarWindow) Show() {
	cw.window.Show()
}

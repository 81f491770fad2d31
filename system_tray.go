package main

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"github.com/borgmon/slotcal/pkg/models"
)

func (sc *SlotCal) setupSystemTray() {
	sc.updateSystemTrayMenu()
}

func (sc *SlotCal) updateSystemTrayMenu() {
	if desk, ok := sc.app.(desktop.App); ok {
		menuItems := []*fyne.MenuItem{}

		// Today's bookings at the top
		today := models.DayKeyFromDate(time.Now())
		if bookings, ok := sc.bookingStore.Lookup(today); ok {
			headerItem := fyne.NewMenuItem("Today:", nil)
			headerItem.Disabled = true
			menuItems = append(menuItems, headerItem)

			for _, booking := range bookings {
				itemText := fmt.Sprintf("  %s - %s  %s",
					booking.StartTime, booking.EndTime,
					truncateString(booking.PersonName, 35))

				bookingItem := fyne.NewMenuItem(itemText, nil)
				bookingItem.Disabled = true
				menuItems = append(menuItems, bookingItem)
			}

			menuItems = append(menuItems, fyne.NewMenuItemSeparator())
		}

		menuItems = append(menuItems,
			fyne.NewMenuItem("Show Calendar", func() {
				sc.showCalendarWindow()
			}),
			fyne.NewMenuItem("Export iCal...", func() {
				sc.showCalendarWindow()
				sc.calendarWindow.exportBookings()
			}),
		)

		menuItems = append(menuItems, fyne.NewMenuItemSeparator())
		menuItems = append(menuItems, fyne.NewMenuItem("Quit", func() {
			sc.quit()
		}))

		menu := fyne.NewMenu("SlotCal", menuItems...)
		desk.SetSystemTrayMenu(menu)
	}
}

// truncateString truncates a string to maxLen characters, adding "..." if needed
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

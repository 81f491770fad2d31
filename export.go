package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"

	"github.com/borgmon/slotcal/pkg/calendar"
)

// exportBookings writes the whole store to an iCalendar file chosen by the
// user.
func (cw *CalendarWindow) exportBookings() {
	if cw.store.Count() == 0 {
		dialog.ShowInformation("Nothing to Export", "There are no bookings yet.", cw.window)
		return
	}

	saveDialog := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, cw.window)
			return
		}
		if writer == nil {
			return // cancelled
		}
		defer writer.Close()

		if err := calendar.WriteICS(writer, cw.store.All()); err != nil {
			log.Printf("Error exporting bookings: %v", err)
			dialog.ShowError(err, cw.window)
			return
		}

		log.Printf("Exported %d bookings to %s", cw.store.Count(), writer.URI())
	}, cw.window)

	saveDialog.SetFileName("bookings.ics")
	saveDialog.SetFilter(storage.NewExtensionFileFilter([]string{".ics"}))
	saveDialog.Show()
}

// importBookings loads bookings from an iCalendar file, replacing the current
// session's store after the user confirms.
func (cw *CalendarWindow) importBookings() {
	openDialog := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, cw.window)
			return
		}
		if reader == nil {
			return // cancelled
		}
		defer reader.Close()

		byDay, err := calendar.ParseICS(reader)
		if err != nil {
			log.Printf("Error importing bookings: %v", err)
			dialog.ShowError(err, cw.window)
			return
		}

		total := 0
		for _, list := range byDay {
			total += len(list)
		}
		if total == 0 {
			dialog.ShowInformation("Nothing to Import", "The file contains no events.", cw.window)
			return
		}

		message := fmt.Sprintf("Replace the current bookings with %d imported ones?", total)
		dialog.ShowConfirm("Import Bookings", message, func(confirmed bool) {
			if !confirmed {
				return
			}

			cw.store.ReplaceAll(byDay)
			cw.refreshCalendar()
			cw.refreshBookingsPanel()
			cw.sc.updateSystemTrayMenu()
			log.Printf("Imported %d bookings from %s", total, reader.URI())
		}, cw.window)
	}, cw.window)

	openDialog.SetFilter(storage.NewExtensionFileFilter([]string{".ics"}))
	openDialog.Show()
}

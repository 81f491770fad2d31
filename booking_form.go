package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// colorPalette maps the color names offered in the composer to hex values.
var colorPalette = []struct {
	Name string
	Hex  string
}{
	{"Blue", "#3366ff"},
	{"Red", "#ff0000"},
	{"Green", "#00cc66"},
	{"Orange", "#ff9900"},
	{"Purple", "#9933cc"},
	{"Teal", "#00cccc"},
}

func colorNameForHex(hex string) string {
	for _, c := range colorPalette {
		if c.Hex == hex {
			return c.Name
		}
	}
	return colorPalette[0].Name
}

func colorHexForName(name string) string {
	for _, c := range colorPalette {
		if c.Name == name {
			return c.Hex
		}
	}
	return ""
}

// showBookingForm opens the booking composer for the currently selected day.
// A rejected submit keeps the composer open; cancel discards the input.
func (cw *CalendarWindow) showBookingForm() {
	nameEntry := widget.NewEntry()
	nameEntry.SetPlaceHolder("Person name")

	startEntry := widget.NewEntry()
	startEntry.SetPlaceHolder("09:00")
	endEntry := widget.NewEntry()
	endEntry.SetPlaceHolder("10:00")

	colorNames := make([]string, 0, len(colorPalette))
	for _, c := range colorPalette {
		colorNames = append(colorNames, c.Name)
	}
	colorSelect := widget.NewSelect(colorNames, nil)
	colorSelect.SetSelected(colorNameForHex(cw.config.DefaultColor))

	form := container.New(layout.NewFormLayout(),
		widget.NewLabel("Name"), nameEntry,
		widget.NewLabel("Color"), colorSelect,
		widget.NewLabel("Start time"), startEntry,
		widget.NewLabel("End time"), endEntry,
	)

	var d dialog.Dialog

	submitButton := widget.NewButton("Book Slot", func() {
		_, err := cw.session.Submit(
			nameEntry.Text,
			colorHexForName(colorSelect.Selected),
			startEntry.Text,
			endEntry.Text,
		)
		if err != nil {
			// Blocking notification; the composer stays open
			dialog.ShowError(err, cw.window)
			return
		}

		if cw.config.ChimeEnabled {
			playChime()
		}

		cw.refreshCalendar()
		cw.refreshBookingsPanel()
		cw.sc.updateSystemTrayMenu()
		d.Hide()
	})
	submitButton.Importance = widget.HighImportance

	cancelButton := widget.NewButton("Cancel", func() {
		d.Hide()
	})

	buttons := container.NewHBox(layout.NewSpacer(), cancelButton, submitButton)
	content := container.NewVBox(form, buttons)

	d = dialog.NewCustomWithoutButtons("New Booking", content, cw.window)
	d.SetOnClosed(func() {
		// No-op after a successful submit; otherwise discard the form input
		cw.session.CancelComposer()
	})
	d.Resize(fyne.NewSize(420, 0))
	d.Show()
}

package main

import (
	"log"
	"os/exec"
	"runtime"

	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

func (cw *CalendarWindow) showSettingsDialog() {
	autoStartCheck := widget.NewCheck("Launch SlotCal on system boot", nil)
	autoStartCheck.SetChecked(cw.config.AutoStart)

	chimeCheck := widget.NewCheck("Play a chime when a booking is created", nil)
	chimeCheck.SetChecked(cw.config.ChimeEnabled)

	colorNames := make([]string, 0, len(colorPalette))
	for _, c := range colorPalette {
		colorNames = append(colorNames, c.Name)
	}
	defaultColorSelect := widget.NewSelect(colorNames, nil)
	defaultColorSelect.SetSelected(colorNameForHex(cw.config.DefaultColor))

	// Storage root URI display (read-only)
	storageURIEntry := widget.NewEntry()
	storageURIEntry.SetText(cw.sc.app.Storage().RootURI().String())
	storageURIEntry.Disable()

	openStorageButton := widget.NewButton("Open in File Manager", func() {
		path := cw.sc.app.Storage().RootURI().Path()
		var cmd *exec.Cmd

		switch runtime.GOOS {
		case "darwin":
			cmd = exec.Command("open", path)
		case "windows":
			cmd = exec.Command("explorer", path)
		case "linux":
			cmd = exec.Command("xdg-open", path)
		default:
			log.Printf("Unsupported OS: %s", runtime.GOOS)
			return
		}

		if err := cmd.Start(); err != nil {
			log.Printf("Error opening file manager: %v", err)
		}
	})

	form := container.New(layout.NewFormLayout(),
		widget.NewLabel("Auto Start:"), autoStartCheck,
		widget.NewLabel("Chime:"), chimeCheck,
		widget.NewLabel("Default Color:"), defaultColorSelect,
		widget.NewLabel("Storage:"), container.NewVBox(storageURIEntry, openStorageButton),
	)

	dialog.ShowCustomConfirm("Settings", "Save", "Cancel", form, func(confirmed bool) {
		if !confirmed {
			return
		}

		cw.config.AutoStart = autoStartCheck.Checked
		cw.config.ChimeEnabled = chimeCheck.Checked
		cw.config.DefaultColor = colorHexForName(defaultColorSelect.Selected)
		cw.session.SetDefaultColor(cw.config.DefaultColor)

		if err := setupAutostart(cw.config.AutoStart); err != nil {
			log.Printf("Error setting autostart: %v", err)
			dialog.ShowError(err, cw.window)
		}

		saveConfig(cw.sc.app, cw.config)
	}, cw.window)
}

package main

import (
	"fyne.io/fyne/v2"
)

const defaultBookingColor = "#3366ff"

type Config struct {
	AutoStart    bool   `json:"auto_start"`
	ChimeEnabled bool   `json:"chime_enabled"`
	DefaultColor string `json:"default_color"`
}

func loadConfig(app fyne.App) *Config {
	prefs := app.Preferences()

	return &Config{
		AutoStart:    prefs.BoolWithFallback("auto_start", false),
		ChimeEnabled: prefs.BoolWithFallback("chime_enabled", true),
		DefaultColor: prefs.StringWithFallback("default_color", defaultBookingColor),
	}
}

func saveConfig(app fyne.App, config *Config) {
	prefs := app.Preferences()

	prefs.SetBool("auto_start", config.AutoStart)
	prefs.SetBool("chime_enabled", config.ChimeEnabled)
	prefs.SetString("default_color", config.DefaultColor)
}

package models

// CellViewModel is the renderer's per-cell output consumed by the grid view.
// Blank filler cells have Day == 0 and Disabled == true.
type CellViewModel struct {
	Day       int    // Day of month (1-based), 0 for filler cells
	Disabled  bool   // True for the leading/trailing filler cells
	Highlight string // First booking's color for the day, "" when unbooked
	Tooltip   string // "{name}: {start} - {end}" per booking, joined by ", "
}

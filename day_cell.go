package main

import (
	"image/color"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/borgmon/slotcal/pkg/models"
)

// DayCell is one clickable cell of the month grid. Filler cells are disabled
// and ignore input; booked cells are tinted with the first booking's color.
type DayCell struct {
	widget.BaseWidget
	Cell     models.CellViewModel
	OnTapped func(day int)
	OnHover  func(tooltip string)

	selected bool
	hovered  bool
}

func NewDayCell(cell models.CellViewModel, onTapped func(day int), onHover func(tooltip string)) *DayCell {
	c := &DayCell{
		Cell:     cell,
		OnTapped: onTapped,
		OnHover:  onHover,
	}
	c.ExtendBaseWidget(c)
	return c
}

func (c *DayCell) CreateRenderer() fyne.WidgetRenderer {
	label := ""
	if !c.Cell.Disabled {
		label = strconv.Itoa(c.Cell.Day)
	}

	text := canvas.NewText(label, theme.ForegroundColor())
	text.Alignment = fyne.TextAlignCenter

	bg := canvas.NewRectangle(color.Transparent)

	return &dayCellRenderer{
		cell: c,
		text: text,
		bg:   bg,
	}
}

// SetSelected toggles the selection border around the cell.
func (c *DayCell) SetSelected(selected bool) {
	c.selected = selected
	c.Refresh()
}

func (c *DayCell) Tapped(*fyne.PointEvent) {
	if c.Cell.Disabled {
		return
	}
	if c.OnTapped != nil {
		c.OnTapped(c.Cell.Day)
	}
}

func (c *DayCell) TappedSecondary(*fyne.PointEvent) {
}

func (c *DayCell) MouseIn(*desktop.MouseEvent) {
	if c.Cell.Disabled {
		return
	}
	c.hovered = true
	if c.OnHover != nil {
		c.OnHover(c.Cell.Tooltip)
	}
	c.Refresh()
}

func (c *DayCell) MouseMoved(*desktop.MouseEvent) {
}

func (c *DayCell) MouseOut() {
	c.hovered = false
	if c.OnHover != nil {
		c.OnHover("")
	}
	c.Refresh()
}

type dayCellRenderer struct {
	cell *DayCell
	text *canvas.Text
	bg   *canvas.Rectangle
}

func (r *dayCellRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)
	r.text.Resize(size)
	r.text.Move(fyne.NewPos(0, (size.Height-r.text.MinSize().Height)/2))
}

func (r *dayCellRenderer) MinSize() fyne.Size {
	textSize := r.text.MinSize()
	minWidth := textSize.Width + theme.Padding()*4
	minHeight := textSize.Height + theme.Padding()*2

	if minWidth < 56 {
		minWidth = 56
	}
	if minHeight < 48 {
		minHeight = 48
	}

	return fyne.NewSize(minWidth, minHeight)
}

func (r *dayCellRenderer) Refresh() {
	r.text.Color = theme.ForegroundColor()

	switch {
	case r.cell.Cell.Disabled:
		r.bg.FillColor = color.Transparent
	case r.cell.hovered:
		r.bg.FillColor = theme.HoverColor()
	case r.cell.Cell.Highlight != "":
		r.bg.FillColor = parseHexColor(r.cell.Cell.Highlight, theme.PrimaryColor())
	default:
		r.bg.FillColor = theme.ButtonColor()
	}

	if r.cell.selected {
		r.bg.StrokeColor = theme.PrimaryColor()
		r.bg.StrokeWidth = 2
	} else {
		r.bg.StrokeWidth = 0
	}

	r.bg.Refresh()
	r.text.Refresh()
}

func (r *dayCellRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.bg, r.text}
}

func (r *dayCellRenderer) Destroy() {
}

// parseHexColor parses "#rgb" and "#rrggbb" values, returning fallback for
// anything else.
func parseHexColor(s string, fallback color.Color) color.Color {
	if len(s) == 0 || s[0] != '#' {
		return fallback
	}

	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return fallback
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return fallback
	}

	return color.NRGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}
}

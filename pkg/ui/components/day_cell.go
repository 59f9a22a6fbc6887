package components

import (
	"image/color"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/borgmon/day-reserve/pkg/models"
)

const maxLabelLen = 14

// DayCell is one square of the month grid
type DayCell struct {
	widget.BaseWidget
	Day      models.CalendarDay
	OnTapped func(key string)

	hovered bool
}

// NewDayCell creates a cell for day. onTapped receives the day's key.
func NewDayCell(day models.CalendarDay, onTapped func(key string)) *DayCell {
	c := &DayCell{
		Day:      day,
		OnTapped: onTapped,
	}
	c.ExtendBaseWidget(c)
	return c
}

// SetDay replaces the displayed day
func (c *DayCell) SetDay(day models.CalendarDay) {
	c.Day = day
	c.Refresh()
}

// Clickable reports whether taps reach OnTapped
func (c *DayCell) Clickable() bool {
	return !c.Day.Blank && c.Day.Availability != models.Disabled
}

// CreateRenderer implements fyne.Widget
func (c *DayCell) CreateRenderer() fyne.WidgetRenderer {
	number := canvas.NewText("", theme.ForegroundColor())
	number.TextStyle = fyne.TextStyle{Bold: true}

	label := canvas.NewText("", theme.ForegroundColor())
	label.Alignment = fyne.TextAlignCenter
	label.TextSize = theme.CaptionTextSize()

	outline := canvas.NewRectangle(color.Transparent)
	outline.StrokeWidth = 2

	r := &dayCellRenderer{
		cell:    c,
		bg:      canvas.NewRectangle(theme.ButtonColor()),
		outline: outline,
		number:  number,
		label:   label,
	}
	r.Refresh()
	return r
}

// Tapped implements fyne.Tappable
func (c *DayCell) Tapped(*fyne.PointEvent) {
	if !c.Clickable() || c.OnTapped == nil {
		return
	}
	c.OnTapped(c.Day.Key)
}

// MouseIn implements desktop.Hoverable
func (c *DayCell) MouseIn(*desktop.MouseEvent) {
	c.hovered = true
	c.Refresh()
}

// MouseMoved implements desktop.Hoverable
func (c *DayCell) MouseMoved(*desktop.MouseEvent) {}

// MouseOut implements desktop.Hoverable
func (c *DayCell) MouseOut() {
	c.hovered = false
	c.Refresh()
}

// Cursor implements desktop.Cursorable
func (c *DayCell) Cursor() desktop.Cursor {
	if c.Clickable() {
		return desktop.PointerCursor
	}
	return desktop.DefaultCursor
}

type dayCellRenderer struct {
	cell    *DayCell
	bg      *canvas.Rectangle
	outline *canvas.Rectangle
	number  *canvas.Text
	label   *canvas.Text
}

func (r *dayCellRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)
	r.outline.Resize(size)

	pad := theme.Padding()
	r.number.Move(fyne.NewPos(pad, pad))
	r.number.Resize(r.number.MinSize())

	labelHeight := r.label.MinSize().Height
	r.label.Move(fyne.NewPos(0, size.Height-labelHeight-pad))
	r.label.Resize(fyne.NewSize(size.Width, labelHeight))
}

func (r *dayCellRenderer) MinSize() fyne.Size {
	return fyne.NewSize(96, 64)
}

func (r *dayCellRenderer) Refresh() {
	day := r.cell.Day

	if day.Blank {
		r.number.Text = ""
		r.label.Text = ""
		r.bg.FillColor = color.Transparent
		r.outline.StrokeColor = color.Transparent
		r.refreshObjects()
		return
	}

	r.number.Text = strconv.Itoa(day.Day)
	r.label.Text = truncate(day.Label(), maxLabelLen)
	r.number.Color = theme.ForegroundColor()
	r.label.Color = theme.ForegroundColor()

	switch day.Availability {
	case models.Disabled:
		r.bg.FillColor = theme.DisabledButtonColor()
		r.number.Color = theme.DisabledColor()
	case models.Reserved:
		r.bg.FillColor = theme.Color(theme.ColorNameSelection)
		if day.Reservation.IsOff() {
			r.label.Color = theme.PlaceHolderColor()
		}
	default:
		r.bg.FillColor = theme.ButtonColor()
	}

	if r.cell.hovered && r.cell.Clickable() {
		r.bg.FillColor = theme.HoverColor()
	}

	r.outline.StrokeColor = color.Transparent
	if day.IsToday {
		r.outline.StrokeColor = theme.PrimaryColor()
	}

	r.refreshObjects()
}

func (r *dayCellRenderer) refreshObjects() {
	r.bg.Refresh()
	r.outline.Refresh()
	r.number.Refresh()
	r.label.Refresh()
}

func (r *dayCellRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.bg, r.outline, r.number, r.label}
}

func (r *dayCellRenderer) Destroy() {}

// truncate shortens s to maxLen runes, adding "..." if needed
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-3]) + "..."
}

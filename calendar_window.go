package main

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/borgmon/day-reserve/pkg/calendar"
	"github.com/borgmon/day-reserve/pkg/controller"
	"github.com/borgmon/day-reserve/pkg/models"
	"github.com/borgmon/day-reserve/pkg/ui/components"
)

// CalendarWindow shows one month and forwards clicks to the controller
type CalendarWindow struct {
	window     fyne.Window
	controller *controller.Controller
	prompter   *formPrompter
	entry      *entryModal

	title       *widget.Label
	legend      *widget.Label
	prevButton  *widget.Button
	nextButton  *widget.Button
	todayButton *widget.Button
	days        *fyne.Container
	headers     []fyne.CanvasObject
	cells       []*components.DayCell

	// OnRender runs after every render
	OnRender func(grid models.Grid)
}

func NewCalendarWindow(app fyne.App) *CalendarWindow {
	cw := &CalendarWindow{
		window: app.NewWindow("Day Reserve"),
	}
	cw.prompter = newFormPrompter(cw.window)
	cw.buildUI()

	// Keep running in the tray when the window is closed
	if _, ok := app.(desktop.App); ok {
		cw.window.SetCloseIntercept(func() {
			cw.window.Hide()
		})
	}

	return cw
}

func (cw *CalendarWindow) buildUI() {
	cw.title = widget.NewLabel("")
	cw.title.TextStyle = fyne.TextStyle{Bold: true}
	cw.title.Alignment = fyne.TextAlignCenter

	cw.prevButton = widget.NewButtonWithIcon("", theme.NavigateBackIcon(), func() {
		cw.navigate(-1)
	})
	cw.nextButton = widget.NewButtonWithIcon("", theme.NavigateNextIcon(), func() {
		cw.navigate(1)
	})
	cw.todayButton = widget.NewButton("Today", func() {
		if cw.controller == nil {
			return
		}
		if err := cw.controller.GoToToday(); err != nil {
			log.Printf("[CALENDAR] Today ignored: %v", err)
		}
	})

	header := container.NewBorder(
		nil,
		nil,
		cw.prevButton,
		container.NewHBox(cw.todayButton, cw.nextButton),
		cw.title,
	)

	for _, name := range calendar.WeekdayHeaders {
		label := widget.NewLabel(name)
		label.Alignment = fyne.TextAlignCenter
		label.TextStyle = fyne.TextStyle{Bold: true}
		cw.headers = append(cw.headers, label)
	}
	cw.days = container.NewGridWithColumns(len(calendar.WeekdayHeaders), cw.headers...)

	cw.legend = widget.NewLabel("")
	cw.legend.Importance = widget.LowImportance
	cw.legend.Alignment = fyne.TextAlignCenter

	content := container.NewBorder(
		container.NewPadded(header),
		cw.legend,
		nil,
		nil,
		container.NewPadded(cw.days),
	)

	cw.entry = newEntryModal(cw.window.Canvas(),
		func() { cw.controller.HandleModalEdit() },
		func() { cw.controller.HandleModalRemove() },
		func() { cw.controller.HandleModalCancel() },
	)

	cw.window.SetContent(content)
	cw.window.Resize(fyne.NewSize(760, 560))
	cw.window.CenterOnScreen()

	cw.setupKeyboardShortcuts()
}

// Bind connects the window to c and draws the current month
func (cw *CalendarWindow) Bind(c *controller.Controller) {
	cw.controller = c
	cw.legend.SetText("Reservable days: " + c.Schedule().Describe())
	c.Reload()
}

func (cw *CalendarWindow) Show() {
	cw.window.Show()
	cw.window.RequestFocus()
}

func (cw *CalendarWindow) navigate(delta int) {
	if cw.controller == nil {
		return
	}
	if err := cw.controller.HandleNavigate(delta); err != nil {
		log.Printf("[CALENDAR] Navigation ignored: %v", err)
	}
}

func (cw *CalendarWindow) handleDayTapped(key string) {
	cw.controller.HandleDayClick(key)
}

// Render implements controller.View
func (cw *CalendarWindow) Render(grid models.Grid) {
	cw.title.SetText(grid.Title)

	for len(cw.cells) < len(grid.Cells) {
		cw.cells = append(cw.cells, components.NewDayCell(models.CalendarDay{Blank: true}, cw.handleDayTapped))
	}

	objects := make([]fyne.CanvasObject, 0, len(cw.headers)+len(grid.Cells))
	objects = append(objects, cw.headers...)
	for i, day := range grid.Cells {
		cw.cells[i].SetDay(day)
		objects = append(objects, cw.cells[i])
	}
	cw.days.Objects = objects
	cw.days.Refresh()

	if cw.OnRender != nil {
		cw.OnRender(grid)
	}
}

// ShowEntry implements controller.View
func (cw *CalendarWindow) ShowEntry(label string) {
	cw.setNavigationEnabled(false)
	cw.entry.Show(label)
}

// HideEntry implements controller.View
func (cw *CalendarWindow) HideEntry() {
	cw.entry.Hide()
	cw.setNavigationEnabled(true)
}

func (cw *CalendarWindow) setNavigationEnabled(enabled bool) {
	for _, b := range []*widget.Button{cw.prevButton, cw.nextButton, cw.todayButton} {
		if enabled {
			b.Enable()
		} else {
			b.Disable()
		}
	}
}

// setupKeyboardShortcuts maps arrow keys to month navigation and Escape to cancel
func (cw *CalendarWindow) setupKeyboardShortcuts() {
	cw.window.Canvas().SetOnTypedKey(func(key *fyne.KeyEvent) {
		if cw.controller == nil {
			return
		}

		switch key.Name {
		case fyne.KeyLeft, fyne.KeyPageUp:
			cw.navigate(-1)
		case fyne.KeyRight, fyne.KeyPageDown:
			cw.navigate(1)
		case fyne.KeyEscape:
			cw.controller.HandleModalCancel()
		}
	})
}

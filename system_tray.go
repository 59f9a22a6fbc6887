package main

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"github.com/borgmon/day-reserve/pkg/calendar"
)

// lookAheadDays bounds the search for the next open day
const lookAheadDays = 62

func (dr *DayReserve) setupSystemTray() {
	dr.updateSystemTrayMenu()
}

func (dr *DayReserve) updateSystemTrayMenu() {
	desk, ok := dr.app.(desktop.App)
	if !ok {
		return
	}

	now := time.Now()
	menuItems := []*fyne.MenuItem{}

	todayItem := fyne.NewMenuItem(dr.todaySummary(now), nil)
	todayItem.Disabled = true
	menuItems = append(menuItems, todayItem)

	if next, found := dr.nextOpenDay(now); found {
		nextItem := fyne.NewMenuItem("Next open day: "+next.Format("Mon, Jan 2"), nil)
		nextItem.Disabled = true
		menuItems = append(menuItems, nextItem)
	}

	menuItems = append(menuItems,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Open Calendar", func() {
			dr.showCalendarWindow()
		}),
		fyne.NewMenuItem("Export...", func() {
			dr.showCalendarWindow()
			dr.showExportDialog()
		}),
		fyne.NewMenuItem("Import...", func() {
			dr.showCalendarWindow()
			dr.showImportDialog()
		}),
		fyne.NewMenuItem("Settings", func() {
			dr.showSettingsWindow()
		}),
	)

	menuItems = append(menuItems, fyne.NewMenuItemSeparator())
	menuItems = append(menuItems, fyne.NewMenuItem("Quit", func() {
		dr.quit()
	}))

	menu := fyne.NewMenu("Day Reserve", menuItems...)
	desk.SetSystemTrayMenu(menu)
	desk.SetSystemTrayIcon(theme.HistoryIcon())
}

// todaySummary describes today's reservation for the tray header
func (dr *DayReserve) todaySummary(now time.Time) string {
	if !dr.controller.Schedule().IsEventDay(now) {
		return "Today: no sign-up"
	}

	key := calendar.DateKey(now.Year(), now.Month(), now.Day())
	value, ok := dr.reservations.Get(key)
	if !ok {
		return "Today: open"
	}
	return fmt.Sprintf("Today: %s", truncateString(value.Label(), 35))
}

// nextOpenDay finds the first unreserved event day after today
func (dr *DayReserve) nextOpenDay(now time.Time) (time.Time, bool) {
	schedule := dr.controller.Schedule()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	for i := 1; i <= lookAheadDays; i++ {
		candidate := day.AddDate(0, 0, i)
		if !schedule.IsEventDay(candidate) {
			continue
		}
		key := calendar.DateKey(candidate.Year(), candidate.Month(), candidate.Day())
		if _, reserved := dr.reservations.Get(key); !reserved {
			return candidate, true
		}
	}
	return time.Time{}, false
}

// truncateString truncates a string to maxLen characters, adding "..." if needed
func truncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-3]) + "..."
}

package calendar

import (
	"fmt"
	"time"

	"github.com/borgmon/day-reserve/pkg/models"
)

// DateKeyLayout is the layout of reservation keys
const DateKeyLayout = "2006-01-02"

// WeekdayHeaders are the grid column titles, Sunday first
var WeekdayHeaders = []string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// Lookup finds the reservation stored for a date key
type Lookup func(key string) (models.ReservationValue, bool)

// DaysIn returns the number of days in month, leap years included
func DaysIn(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DateKey formats a date as YYYY-MM-DD
func DateKey(year int, month time.Month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
}

// ParseDateKey parses a YYYY-MM-DD key into midnight UTC
func ParseDateKey(key string) (time.Time, error) {
	t, err := time.Parse(DateKeyLayout, key)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date key %q: %w", key, err)
	}
	return t, nil
}

// FormatDayLabel returns "March 5, 2024 — Alice" style text
func FormatDayLabel(date time.Time, value models.ReservationValue) string {
	return fmt.Sprintf("%s %d, %d — %s", date.Month(), date.Day(), date.Year(), value.Label())
}

// BuildGrid computes the cells of a month. The first cells are blanks so the
// day 1 cell lands in its weekday column.
func BuildGrid(year int, month time.Month, today time.Time, schedule *Schedule, lookup Lookup) models.Grid {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	startingWeekday := int(first.Weekday())
	daysInMonth := DaysIn(year, month)
	eventDays := schedule.DaysIn(year, month)

	grid := models.Grid{
		Year:  year,
		Month: month,
		Title: fmt.Sprintf("%s %d", month, year),
		Cells: make([]models.CalendarDay, 0, startingWeekday+daysInMonth),
	}

	for i := 0; i < startingWeekday; i++ {
		grid.Cells = append(grid.Cells, models.CalendarDay{Blank: true})
	}

	todayYear, todayMonth, todayDay := today.Date()

	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		cell := models.CalendarDay{
			Date:         date,
			Key:          DateKey(year, month, day),
			Day:          day,
			Weekday:      date.Weekday(),
			IsToday:      year == todayYear && month == todayMonth && day == todayDay,
			Availability: models.Available,
		}

		// Disabled days never show a reservation, even a stored one
		if !eventDays[day] {
			cell.Availability = models.Disabled
			grid.Cells = append(grid.Cells, cell)
			continue
		}

		if value, ok := lookup(cell.Key); ok {
			cell.Availability = models.Reserved
			cell.Reservation = value
		}

		grid.Cells = append(grid.Cells, cell)
	}

	return grid
}

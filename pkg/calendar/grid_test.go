package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/borgmon/day-reserve/pkg/models"
)

func lookupFrom(entries map[string]models.ReservationValue) Lookup {
	return func(key string) (models.ReservationValue, bool) {
		value, ok := entries[key]
		return value, ok
	}
}

func TestDaysIn(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.January, 31},
		{2024, time.February, 29},
		{2023, time.February, 28},
		{1900, time.February, 28},
		{2000, time.February, 29},
		{2024, time.April, 30},
		{2024, time.December, 31},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DaysIn(tt.year, tt.month), "%s %d", tt.month, tt.year)
	}
}

func TestDateKey(t *testing.T) {
	assert.Equal(t, "2024-03-05", DateKey(2024, time.March, 5))
	assert.Equal(t, "0999-12-31", DateKey(999, time.December, 31))

	date, err := ParseDateKey("2024-03-05")
	require.NoError(t, err)
	assert.Equal(t, time.Tuesday, date.Weekday())

	_, err = ParseDateKey("2024-3-5")
	assert.Error(t, err)
}

func TestBuildGridShape(t *testing.T) {
	schedule := DefaultSchedule()
	empty := lookupFrom(nil)
	today := time.Date(2030, time.January, 1, 9, 0, 0, 0, time.Local)

	for year := 2023; year <= 2025; year++ {
		for month := time.January; month <= time.December; month++ {
			grid := BuildGrid(year, month, today, schedule, empty)

			starting := int(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday())
			days := DaysIn(year, month)

			require.Len(t, grid.Cells, starting+days, "%s %d", month, year)
			assert.Equal(t, starting, grid.LeadingBlanks())

			for i, cell := range grid.Cells[starting:] {
				assert.Equal(t, i+1, cell.Day)
				assert.Equal(t, DateKey(year, month, i+1), cell.Key)
			}
		}
	}
}

func TestBuildGridApril2024(t *testing.T) {
	grid := BuildGrid(2024, time.April, time.Now(), DefaultSchedule(), lookupFrom(nil))

	assert.Equal(t, "April 2024", grid.Title)
	assert.Equal(t, 1, grid.LeadingBlanks(), "April 2024 starts on a Monday")
	assert.Len(t, grid.Cells, 31)

	first, ok := grid.Day("2024-04-01")
	require.True(t, ok)
	assert.Equal(t, time.Monday, first.Weekday)
	assert.Equal(t, models.Available, first.Availability)
}

func TestBuildGridAvailability(t *testing.T) {
	entries := map[string]models.ReservationValue{
		"2024-03-05": models.Named("Alice"), // Tuesday
		"2024-03-06": models.Off(),          // Wednesday
		"2024-03-07": models.Named("Stale"), // Thursday
		"2024-03-10": models.Named("Stale"), // Sunday
	}
	grid := BuildGrid(2024, time.March, time.Now(), DefaultSchedule(), lookupFrom(entries))

	tests := []struct {
		key   string
		want  models.Availability
		label string
	}{
		{key: "2024-03-04", want: models.Available},
		{key: "2024-03-05", want: models.Reserved, label: "Alice"},
		{key: "2024-03-06", want: models.Reserved, label: models.OffLabel},
		{key: "2024-03-07", want: models.Disabled},
		{key: "2024-03-08", want: models.Disabled},
		{key: "2024-03-09", want: models.Disabled},
		{key: "2024-03-10", want: models.Disabled},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			cell, ok := grid.Day(tt.key)
			require.True(t, ok)
			assert.Equal(t, tt.want, cell.Availability)
			assert.Equal(t, tt.label, cell.Label())
		})
	}
}

func TestBuildGridDisabledTakesPrecedence(t *testing.T) {
	// Reserve every day of the year; only Monday to Wednesday may show it
	entries := map[string]models.ReservationValue{}
	for day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC); day.Year() == 2024; day = day.AddDate(0, 0, 1) {
		entries[day.Format(DateKeyLayout)] = models.Named("Someone")
	}

	for month := time.January; month <= time.December; month++ {
		grid := BuildGrid(2024, month, time.Now(), DefaultSchedule(), lookupFrom(entries))
		for _, cell := range grid.Cells {
			if cell.Blank {
				continue
			}
			switch cell.Weekday {
			case time.Sunday, time.Thursday, time.Friday, time.Saturday:
				assert.Equal(t, models.Disabled, cell.Availability, cell.Key)
			default:
				assert.Equal(t, models.Reserved, cell.Availability, cell.Key)
			}
		}
	}
}

func TestBuildGridToday(t *testing.T) {
	today := time.Date(2024, time.March, 12, 18, 30, 0, 0, time.Local)

	grid := BuildGrid(2024, time.March, today, DefaultSchedule(), lookupFrom(nil))
	for _, cell := range grid.Cells {
		assert.Equal(t, cell.Key == "2024-03-12", cell.IsToday, cell.Key)
	}

	other := BuildGrid(2023, time.March, today, DefaultSchedule(), lookupFrom(nil))
	for _, cell := range other.Cells {
		assert.False(t, cell.IsToday)
	}
}

func TestFormatDayLabel(t *testing.T) {
	date := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "March 5, 2024 — Alice", FormatDayLabel(date, models.Named("Alice")))
	assert.Equal(t, "March 5, 2024 — No devotional today", FormatDayLabel(date, models.Off()))
}

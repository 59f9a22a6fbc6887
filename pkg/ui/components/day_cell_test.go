package components

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/borgmon/day-reserve/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(availability models.Availability) models.CalendarDay {
	return models.CalendarDay{
		Date:         time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC),
		Key:          "2024-03-04",
		Day:          4,
		Weekday:      time.Monday,
		Availability: availability,
	}
}

func TestDayCellTap(t *testing.T) {
	test.NewTempApp(t)

	tests := []struct {
		name string
		day  models.CalendarDay
		want []string
	}{
		{"available", day(models.Available), []string{"2024-03-04"}},
		{"reserved", func() models.CalendarDay {
			d := day(models.Reserved)
			d.Reservation = models.Named("Alice")
			return d
		}(), []string{"2024-03-04"}},
		{"disabled", day(models.Disabled), nil},
		{"blank", models.CalendarDay{Blank: true}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			cell := NewDayCell(tt.day, func(key string) {
				got = append(got, key)
			})

			test.Tap(cell)

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDayCellRendersLabel(t *testing.T) {
	test.NewTempApp(t)

	d := day(models.Reserved)
	d.Reservation = models.Named("Alice")
	cell := NewDayCell(d, nil)

	r, ok := test.WidgetRenderer(cell).(*dayCellRenderer)
	require.True(t, ok)
	assert.Equal(t, "4", r.number.Text)
	assert.Equal(t, "Alice", r.label.Text)

	off := day(models.Reserved)
	off.Reservation = models.Off()
	cell.SetDay(off)
	assert.Equal(t, "No devotion...", r.label.Text)

	cell.SetDay(models.CalendarDay{Blank: true})
	assert.Empty(t, r.number.Text)
	assert.Empty(t, r.label.Text)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "ÅÅÅÅÅ...", truncate("ÅÅÅÅÅÅÅÅÅÅÅ", 8))
}

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseInput(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   ReservationValue
		wantOK bool
	}{
		{name: "Empty", input: "", wantOK: false},
		{name: "Whitespace only", input: "   \t", wantOK: false},
		{name: "Name is trimmed", input: "  Alice ", want: Named("Alice"), wantOK: true},
		{name: "Lowercase off", input: "off", want: Off(), wantOK: true},
		{name: "Uppercase OFF", input: "OFF", want: Off(), wantOK: true},
		{name: "Mixed case Off", input: "Off", want: Off(), wantOK: true},
		{name: "Off with padding", input: " oFf ", want: Off(), wantOK: true},
		{name: "Name containing off", input: "Offenbach", want: Named("Offenbach"), wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseInput(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestReservationValueLabel(t *testing.T) {
	assert.Equal(t, "Alice", Named("Alice").Label())
	assert.Equal(t, OffLabel, Off().Label())
}

func TestReservationValueIsValid(t *testing.T) {
	assert.True(t, Named("Bob").IsValid())
	assert.True(t, Off().IsValid())
	assert.False(t, Named("").IsValid())
	assert.False(t, ReservationValue{}.IsValid())
}

func TestGridHelpers(t *testing.T) {
	grid := Grid{Cells: []CalendarDay{
		{Blank: true},
		{Blank: true},
		{Key: "2024-01-01", Day: 1},
		{Key: "2024-01-02", Day: 2, Availability: Reserved, Reservation: Named("Ann")},
	}}

	assert.Equal(t, 2, grid.LeadingBlanks())

	day, ok := grid.Day("2024-01-02")
	assert.True(t, ok)
	assert.Equal(t, "Ann", day.Label())

	_, ok = grid.Day("2024-01-03")
	assert.False(t, ok)
}

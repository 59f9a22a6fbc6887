package models

import "time"

// Availability is the computed state of a day cell
type Availability int

const (
	Available Availability = iota // Open for sign-up
	Disabled                      // Not an event day
	Reserved                      // Has a reservation
)

func (a Availability) String() string {
	switch a {
	case Available:
		return "Available"
	case Disabled:
		return "Disabled"
	case Reserved:
		return "Reserved"
	}
	return "Unknown"
}

// CalendarDay is one cell of the month grid. Blank cells pad the first week.
type CalendarDay struct {
	Blank        bool
	Date         time.Time // midnight UTC
	Key          string    // YYYY-MM-DD
	Day          int
	Weekday      time.Weekday
	IsToday      bool
	Availability Availability
	Reservation  ReservationValue // only set when Availability == Reserved
}

// Label returns the text shown under the day number
func (d CalendarDay) Label() string {
	if d.Availability != Reserved {
		return ""
	}
	return d.Reservation.Label()
}

// Grid is a rendered month
type Grid struct {
	Year  int
	Month time.Month
	Title string // e.g. "March 2024"
	Cells []CalendarDay
}

// Day returns the cell for the given key
func (g Grid) Day(key string) (CalendarDay, bool) {
	for _, cell := range g.Cells {
		if !cell.Blank && cell.Key == key {
			return cell, true
		}
	}
	return CalendarDay{}, false
}

// LeadingBlanks returns the number of blank cells before day 1
func (g Grid) LeadingBlanks() int {
	n := 0
	for _, cell := range g.Cells {
		if !cell.Blank {
			break
		}
		n++
	}
	return n
}

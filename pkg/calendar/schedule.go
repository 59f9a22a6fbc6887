package calendar

import (
	"log"
	"strings"
	"time"

	"github.com/teambition/rrule-go"
)

var rruleWeekdays = map[time.Weekday]rrule.Weekday{
	time.Monday:    rrule.MO,
	time.Tuesday:   rrule.TU,
	time.Wednesday: rrule.WE,
	time.Thursday:  rrule.TH,
	time.Friday:    rrule.FR,
	time.Saturday:  rrule.SA,
	time.Sunday:    rrule.SU,
}

// Schedule is the weekly recurrence of days that can be reserved
type Schedule struct {
	weekdays map[time.Weekday]bool
	byday    []rrule.Weekday
}

// NewWeeklySchedule creates a schedule recurring on the given weekdays
func NewWeeklySchedule(days ...time.Weekday) *Schedule {
	s := &Schedule{weekdays: make(map[time.Weekday]bool)}
	for _, day := range days {
		if s.weekdays[day] {
			continue
		}
		s.weekdays[day] = true
		s.byday = append(s.byday, rruleWeekdays[day])
	}
	return s
}

// DefaultSchedule is the fixed Monday to Wednesday policy.
// Sunday, Thursday, Friday and Saturday are never reservable.
func DefaultSchedule() *Schedule {
	return NewWeeklySchedule(time.Monday, time.Tuesday, time.Wednesday)
}

// IsEventDay returns true if t falls on a scheduled weekday
func (s *Schedule) IsEventDay(t time.Time) bool {
	return s.weekdays[t.Weekday()]
}

// DaysIn returns the set of scheduled days of month
func (s *Schedule) DaysIn(year int, month time.Month) map[int]bool {
	days := make(map[int]bool)
	if len(s.byday) == 0 {
		return days
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(year, month, DaysIn(year, month), 0, 0, 0, 0, time.UTC)

	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:      rrule.WEEKLY,
		Byweekday: s.byday,
		Dtstart:   first,
		Until:     last,
	})
	if err != nil {
		log.Printf("[CALENDAR] Warning: invalid schedule rule, falling back to weekday check: %v", err)
		for day := 1; day <= last.Day(); day++ {
			if s.IsEventDay(time.Date(year, month, day, 0, 0, 0, 0, time.UTC)) {
				days[day] = true
			}
		}
		return days
	}

	for _, occurrence := range rule.All() {
		days[occurrence.Day()] = true
	}
	return days
}

// Weekdays returns the scheduled weekdays, Sunday first
func (s *Schedule) Weekdays() []time.Weekday {
	days := []time.Weekday{}
	for day := time.Sunday; day <= time.Saturday; day++ {
		if s.weekdays[day] {
			days = append(days, day)
		}
	}
	return days
}

// Describe returns a human readable list such as "Monday, Tuesday, Wednesday"
func (s *Schedule) Describe() string {
	names := []string{}
	for _, day := range s.Weekdays() {
		names = append(names, day.String())
	}
	return strings.Join(names, ", ")
}

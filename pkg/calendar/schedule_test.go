package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultScheduleWeekdays(t *testing.T) {
	schedule := DefaultSchedule()

	assert.Equal(t, []time.Weekday{time.Monday, time.Tuesday, time.Wednesday}, schedule.Weekdays())
	assert.Equal(t, "Monday, Tuesday, Wednesday", schedule.Describe())
}

func TestScheduleDaysInAgreesWithIsEventDay(t *testing.T) {
	schedules := map[string]*Schedule{
		"default":  DefaultSchedule(),
		"weekends": NewWeeklySchedule(time.Saturday, time.Sunday),
		"all":      NewWeeklySchedule(time.Sunday, time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday),
	}

	for name, schedule := range schedules {
		t.Run(name, func(t *testing.T) {
			for _, year := range []int{2023, 2024} {
				for month := time.January; month <= time.December; month++ {
					days := schedule.DaysIn(year, month)
					for day := 1; day <= DaysIn(year, month); day++ {
						date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
						assert.Equal(t, schedule.IsEventDay(date), days[day], date.Format(DateKeyLayout))
					}
				}
			}
		})
	}
}

func TestScheduleDaysInMarch2024(t *testing.T) {
	days := DefaultSchedule().DaysIn(2024, time.March)

	// Mondays 4, 11, 18, 25; Tuesdays 5, 12, 19, 26; Wednesdays 6, 13, 20, 27
	assert.Len(t, days, 12)
	for _, day := range []int{4, 5, 6, 11, 12, 13, 18, 19, 20, 25, 26, 27} {
		assert.True(t, days[day], "day %d", day)
	}
}

func TestEmptySchedule(t *testing.T) {
	schedule := NewWeeklySchedule()

	assert.Empty(t, schedule.DaysIn(2024, time.March))
	assert.False(t, schedule.IsEventDay(time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)))
}

func TestNewWeeklyScheduleDeduplicates(t *testing.T) {
	schedule := NewWeeklySchedule(time.Monday, time.Monday)

	assert.Equal(t, []time.Weekday{time.Monday}, schedule.Weekdays())
	assert.Len(t, schedule.DaysIn(2024, time.April), 5)
}

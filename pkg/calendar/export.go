package calendar

import (
	"errors"
	"fmt"
	"io"
	"log"
	"sort"
	"time"

	"github.com/borgmon/day-reserve/pkg/models"
	"github.com/emersion/go-ical"
	"github.com/google/uuid"
)

const (
	// ICSProductID identifies exported calendars
	ICSProductID = "-//borgmon//Day Reserve//EN"

	// PropReservationKind marks whether a VEVENT is a named reservation or an off day
	PropReservationKind = "X-RESERVATION-KIND"

	kindNamed = "NAMED"
	kindOff   = "OFF"
)

// ErrNothingToExport is returned when there is no reservation to write
var ErrNothingToExport = errors.New("no reservations to export")

// reservationNamespace scopes the name-based UIDs of exported events
var reservationNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/borgmon/day-reserve"))

// EventUID returns the stable UID of the event exported for a date key
func EventUID(key string) string {
	return uuid.NewSHA1(reservationNamespace, []byte(key)).String()
}

// Export writes every reservation as an all-day VEVENT
func Export(w io.Writer, entries map[string]models.ReservationValue) error {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, ICSProductID)
	cal.Props.SetText(ical.PropCalendarScale, "GREGORIAN")

	keys := make([]string, 0, len(entries))
	for key := range entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	stamp := time.Now().UTC()
	skipped := 0

	for _, key := range keys {
		date, err := ParseDateKey(key)
		if err != nil {
			skipped++
			log.Printf("  [EXPORT] Skipping %v", err)
			continue
		}
		value := entries[key]

		event := ical.NewEvent()
		event.Props.SetText(ical.PropUID, EventUID(key))
		event.Props.SetDateTime(ical.PropDateTimeStamp, stamp)
		event.Props.SetDate(ical.PropDateTimeStart, date)
		event.Props.SetDate(ical.PropDateTimeEnd, date.AddDate(0, 0, 1))
		event.Props.SetText(ical.PropSummary, value.Label())

		kind := kindNamed
		if value.IsOff() {
			kind = kindOff
		}
		// SetText would add VALUE=TEXT, which X- properties do not need
		event.Props.Set(&ical.Prop{Name: PropReservationKind, Params: ical.Params{}, Value: kind})

		cal.Children = append(cal.Children, event.Component)
	}

	if len(cal.Children) == 0 {
		return ErrNothingToExport
	}

	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("failed to encode calendar: %w", err)
	}

	log.Printf("[EXPORT] Wrote %d reservations (%d skipped)", len(keys)-skipped, skipped)
	return nil
}

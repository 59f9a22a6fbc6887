package calendar

import (
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/borgmon/day-reserve/pkg/models"
	"github.com/emersion/go-ical"
)

// ImportResult holds the reservations read from an iCalendar file
type ImportResult struct {
	Entries map[string]models.ReservationValue
	Events  int // VEVENTs seen
	Skipped int // VEVENTs without a usable date or summary
}

// Import reads reservations from iCalendar data. Later events win when two
// share a date. Events on days outside schedule are skipped.
func Import(r io.Reader, schedule *Schedule) (*ImportResult, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read calendar: %w", err)
	}

	bodyStr := string(body)
	if err := validateICalFormat(bodyStr); err != nil {
		return nil, err
	}

	result := &ImportResult{Entries: make(map[string]models.ReservationValue)}
	decoder := ical.NewDecoder(strings.NewReader(bodyStr))

	for {
		cal, err := decoder.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to decode calendar: %w", err)
		}

		for _, event := range cal.Events() {
			result.Events++

			key, value, ok := parseReservation(event)
			if !ok {
				result.Skipped++
				continue
			}

			date, err := ParseDateKey(key)
			if err != nil || !schedule.IsEventDay(date) {
				log.Printf("  [IMPORT] Skipping %s: not a reservable day", key)
				result.Skipped++
				continue
			}
			result.Entries[key] = value
		}
	}

	log.Printf("[IMPORT] Events: %d, Imported: %d, Skipped: %d",
		result.Events, len(result.Entries), result.Skipped)
	return result, nil
}

func validateICalFormat(bodyStr string) error {
	upperBody := strings.ToUpper(strings.TrimSpace(bodyStr))
	if strings.HasPrefix(upperBody, "<!DOCTYPE") || strings.HasPrefix(upperBody, "<HTML") {
		return fmt.Errorf("received HTML instead of iCalendar data")
	}

	if !strings.HasPrefix(upperBody, "BEGIN:VCALENDAR") {
		previewLen := 100
		if len(bodyStr) < previewLen {
			previewLen = len(bodyStr)
		}
		return fmt.Errorf("invalid iCalendar format - expected BEGIN:VCALENDAR, got: %s",
			strings.TrimSpace(bodyStr[:previewLen]))
	}

	return nil
}

func parseReservation(event ical.Event) (string, models.ReservationValue, bool) {
	startProp := event.Props.Get(ical.PropDateTimeStart)
	if startProp == nil {
		log.Printf("  [IMPORT] Skipping event without DTSTART")
		return "", models.ReservationValue{}, false
	}

	start, err := parseDateProperty(startProp)
	if err != nil {
		log.Printf("  [IMPORT] Skipping event: %v", err)
		return "", models.ReservationValue{}, false
	}
	key := DateKey(start.Year(), start.Month(), start.Day())

	kind, _ := event.Props.Text(PropReservationKind)
	if strings.EqualFold(kind, kindOff) {
		return key, models.Off(), true
	}

	summary, _ := event.Props.Text(ical.PropSummary)
	value, ok := models.ParseInput(summary)
	if !ok {
		log.Printf("  [IMPORT] Skipping event on %s without summary", key)
		return "", models.ReservationValue{}, false
	}
	return key, value, true
}

// parseDateProperty reads a DATE or DATE-TIME value, keeping the calendar date
// as written
func parseDateProperty(prop *ical.Prop) (time.Time, error) {
	if t, err := prop.DateTime(time.Local); err == nil {
		return t, nil
	}

	value := prop.Value
	if len(value) >= 8 {
		if t, err := time.ParseInLocation("20060102", value[:8], time.Local); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse date value: %s", value)
}

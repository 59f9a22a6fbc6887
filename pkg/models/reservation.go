package models

import (
	"strings"
)

// ReservationKind distinguishes the two reservation variants
type ReservationKind int

const (
	KindNamed ReservationKind = iota + 1 // Someone signed up for the day
	KindOff                              // No devotional that day
)

// OffLabel is the text shown for days marked off
const OffLabel = "No devotional today"

// ReservationValue is either Named(name) or Off. The zero value is invalid.
type ReservationValue struct {
	Kind ReservationKind
	Name string // only set for KindNamed
}

// Named creates a reservation held by name
func Named(name string) ReservationValue {
	return ReservationValue{Kind: KindNamed, Name: name}
}

// Off creates a reservation marking the day as off
func Off() ReservationValue {
	return ReservationValue{Kind: KindOff}
}

// IsOff returns true for the Off variant
func (v ReservationValue) IsOff() bool {
	return v.Kind == KindOff
}

// IsValid reports whether v is one of the two variants
func (v ReservationValue) IsValid() bool {
	switch v.Kind {
	case KindOff:
		return true
	case KindNamed:
		return v.Name != ""
	}
	return false
}

// Label returns the display text of the reservation
func (v ReservationValue) Label() string {
	if v.IsOff() {
		return OffLabel
	}
	return v.Name
}

// ParseInput turns free-text user input into a reservation.
// Blank input yields ok=false; "off" in any case yields Off.
func ParseInput(input string) (value ReservationValue, ok bool) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return ReservationValue{}, false
	}
	if strings.EqualFold(trimmed, "off") {
		return Off(), true
	}
	return Named(trimmed), true
}

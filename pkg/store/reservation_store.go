package store

import (
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"sync"

	"github.com/borgmon/day-reserve/pkg/models"
)

const (
	// ReservationsKey is the preferences key holding the serialized reservations
	ReservationsKey = "openCalendarReservations"

	// offSentinel encodes the Off variant on disk. A name spelled exactly like
	// this is read back as Off.
	offSentinel = "__OFF__"
)

// KeyValue is the persistent string store reservations live in.
// fyne.Preferences satisfies it.
type KeyValue interface {
	String(key string) string
	SetString(key string, value string)
}

// ReservationStore maps date keys (YYYY-MM-DD) to reservations
type ReservationStore struct {
	mu sync.RWMutex
	kv KeyValue

	// Only reserved days have an entry
	entries map[string]models.ReservationValue
}

// NewReservationStore creates an empty store backed by kv. Call Load to read
// what was persisted.
func NewReservationStore(kv KeyValue) *ReservationStore {
	return &ReservationStore{
		kv:      kv,
		entries: make(map[string]models.ReservationValue),
	}
}

// Load replaces the in-memory entries with the persisted ones.
// Absent or malformed data leaves the store empty.
func (rs *ReservationStore) Load() {
	entries, err := decodeEntries(rs.kv.String(ReservationsKey))
	if err != nil {
		log.Printf("[STORE] Warning: ignoring malformed reservations: %v", err)
		entries = make(map[string]models.ReservationValue)
	}

	rs.mu.Lock()
	rs.entries = entries
	rs.mu.Unlock()

	log.Printf("[STORE] Loaded %d reservations", len(entries))
}

// Save writes the whole mapping back under ReservationsKey
func (rs *ReservationStore) Save() error {
	rs.mu.RLock()
	payload, err := encodeEntries(rs.entries)
	rs.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("failed to encode reservations: %w", err)
	}

	rs.kv.SetString(ReservationsKey, payload)
	return nil
}

// Get returns the reservation for key
func (rs *ReservationStore) Get(key string) (models.ReservationValue, bool) {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	value, ok := rs.entries[key]
	return value, ok
}

// Set stores value at key. Invalid values are ignored.
func (rs *ReservationStore) Set(key string, value models.ReservationValue) {
	if !value.IsValid() {
		log.Printf("[STORE] Warning: refusing invalid reservation for %s", key)
		return
	}

	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.entries[key] = value
}

// Unset removes the reservation at key
func (rs *ReservationStore) Unset(key string) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	delete(rs.entries, key)
}

// Merge sets every valid entry and returns how many were applied
func (rs *ReservationStore) Merge(entries map[string]models.ReservationValue) int {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	applied := 0
	for key, value := range entries {
		if !value.IsValid() {
			continue
		}
		rs.entries[key] = value
		applied++
	}
	return applied
}

// All returns a copy of every reservation
func (rs *ReservationStore) All() map[string]models.ReservationValue {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	result := make(map[string]models.ReservationValue, len(rs.entries))
	for key, value := range rs.entries {
		result[key] = value
	}
	return result
}

// Keys returns the reserved date keys in ascending order
func (rs *ReservationStore) Keys() []string {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	keys := make([]string, 0, len(rs.entries))
	for key := range rs.entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of reservations
func (rs *ReservationStore) Len() int {
	rs.mu.RLock()
	defer rs.mu.RUnlock()
	return len(rs.entries)
}

func encodeEntries(entries map[string]models.ReservationValue) (string, error) {
	raw := make(map[string]string, len(entries))
	for key, value := range entries {
		if value.IsOff() {
			raw[key] = offSentinel
		} else {
			raw[key] = value.Name
		}
	}

	// encoding/json sorts map keys, so equal mappings encode identically
	data, err := json.Marshal(raw)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func decodeEntries(payload string) (map[string]models.ReservationValue, error) {
	entries := make(map[string]models.ReservationValue)
	if payload == "" {
		return entries, nil
	}

	var raw map[string]string
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		return nil, err
	}

	for key, value := range raw {
		switch value {
		case "":
			// An empty name never counted as a reservation
			continue
		case offSentinel:
			entries[key] = models.Off()
		default:
			entries[key] = models.Named(value)
		}
	}
	return entries, nil
}

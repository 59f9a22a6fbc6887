package store

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/borgmon/day-reserve/pkg/models"
)

func newTestStore(t *testing.T, payload string) (*ReservationStore, KeyValue) {
	t.Helper()

	prefs := test.NewApp().Preferences()
	if payload != "" {
		prefs.SetString(ReservationsKey, payload)
	}

	rs := NewReservationStore(prefs)
	rs.Load()
	return rs, prefs
}

func TestLoadMissingOrMalformed(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{name: "Absent", payload: ""},
		{name: "Not JSON", payload: "{{nope"},
		{name: "Wrong shape", payload: `["2024-03-05"]`},
		{name: "Non-string value", payload: `{"2024-03-05": 42}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rs, _ := newTestStore(t, tt.payload)
			assert.Equal(t, 0, rs.Len())
		})
	}
}

func TestLoadDecodesVariants(t *testing.T) {
	rs, _ := newTestStore(t, `{"2024-03-05":"Alice","2024-03-06":"__OFF__","2024-03-11":""}`)

	value, ok := rs.Get("2024-03-05")
	require.True(t, ok)
	assert.Equal(t, models.Named("Alice"), value)

	value, ok = rs.Get("2024-03-06")
	require.True(t, ok)
	assert.True(t, value.IsOff())

	_, ok = rs.Get("2024-03-11")
	assert.False(t, ok, "empty names are not reservations")
}

func TestSaveAfterLoadIsIdentical(t *testing.T) {
	payload := `{"2024-03-04":"__OFF__","2024-03-05":"Alice","2024-03-12":"Bob"}`
	rs, kv := newTestStore(t, payload)

	require.NoError(t, rs.Save())
	assert.Equal(t, payload, kv.String(ReservationsKey))
}

func TestSaveRoundTrip(t *testing.T) {
	rs, kv := newTestStore(t, "")
	rs.Set("2024-03-05", models.Named("Alice"))
	rs.Set("2024-03-06", models.Off())
	require.NoError(t, rs.Save())

	reloaded := NewReservationStore(kv)
	reloaded.Load()
	assert.Equal(t, rs.All(), reloaded.All())
}

func TestSetThenUnsetLeavesNoEntry(t *testing.T) {
	rs, kv := newTestStore(t, `{"2024-03-04":"Carol"}`)
	before := rs.All()

	rs.Set("2024-03-05", models.Named("Alice"))
	rs.Unset("2024-03-05")
	require.NoError(t, rs.Save())

	_, ok := rs.Get("2024-03-05")
	assert.False(t, ok)
	assert.Equal(t, before, rs.All())
	assert.Equal(t, `{"2024-03-04":"Carol"}`, kv.String(ReservationsKey))
}

func TestSetIgnoresInvalidValues(t *testing.T) {
	rs, _ := newTestStore(t, "")
	rs.Set("2024-03-05", models.ReservationValue{})
	rs.Set("2024-03-06", models.Named(""))
	assert.Equal(t, 0, rs.Len())
}

func TestMergeAndKeys(t *testing.T) {
	rs, _ := newTestStore(t, `{"2024-03-05":"Alice"}`)

	applied := rs.Merge(map[string]models.ReservationValue{
		"2024-03-05": models.Named("Dana"),
		"2024-03-04": models.Off(),
		"2024-03-06": {},
	})

	assert.Equal(t, 2, applied)
	assert.Equal(t, []string{"2024-03-04", "2024-03-05"}, rs.Keys())

	value, _ := rs.Get("2024-03-05")
	assert.Equal(t, "Dana", value.Name)
}

func TestAllReturnsCopy(t *testing.T) {
	rs, _ := newTestStore(t, `{"2024-03-05":"Alice"}`)

	all := rs.All()
	delete(all, "2024-03-05")

	assert.Equal(t, 1, rs.Len())
}

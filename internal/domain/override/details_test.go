package override

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetailsEncodeDecodeRoundTrip(t *testing.T) {
	treatment := TreatmentHalfDay
	entry := "09:00"

	cases := []struct {
		name    string
		details Details
	}{
		{"status_override", Details{StatusOverride: &StatusOverrideDetails{
			PendingTreatment: &treatment,
			Reason:           "forgot badge",
			Cleared:          []ClearMarker{ClearLate},
		}}},
		{"day_edit", Details{DayEdit: &DayEditDetails{
			EntryTime:     &entry,
			Justification: "manager correction",
		}}},
		{"punch_add", Details{PunchAdd: &PunchAddDetails{
			PunchType: "exit",
			Time:      time.Date(0, 1, 1, 17, 30, 0, 0, time.UTC),
		}}},
		{"leave", Details{Leave: &LeaveDetails{LeaveType: "annual"}}},
		{"holiday", Details{Holiday: &HolidayDetails{HolidayName: "New Year"}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			kind := tc.details.Kind()
			assert.Equal(t, Kind(tc.name), kind)

			raw, err := tc.details.Encode()
			require.NoError(t, err)

			decoded, err := DecodeDetails(kind, raw)
			require.NoError(t, err)
			assert.Equal(t, tc.details, decoded)
		})
	}
}

func TestDetailsEncodeEmptyFails(t *testing.T) {
	_, err := Details{}.Encode()
	assert.Error(t, err)
}

func TestDecodeDetailsUnknownKind(t *testing.T) {
	_, err := DecodeDetails("vacation", []byte("{}"))
	assert.Error(t, err)
}

func TestDecodeDetailsEmptyPayload(t *testing.T) {
	d, err := DecodeDetails(KindStatusOverride, nil)
	require.NoError(t, err)
	require.NotNil(t, d.StatusOverride)
	assert.Nil(t, d.StatusOverride.PendingTreatment)
}

func TestHasCleared(t *testing.T) {
	d := StatusOverrideDetails{Cleared: []ClearMarker{ClearLate, ClearMissing}}

	assert.True(t, d.HasCleared(ClearLate))
	assert.True(t, d.HasCleared(ClearMissing))
	assert.False(t, d.HasCleared(ClearEarly))
	assert.False(t, StatusOverrideDetails{}.HasCleared(ClearLate))
}

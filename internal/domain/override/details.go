package override

import (
	"encoding/json"
	"fmt"
	"time"
)

// PendingTreatment enum for status overrides
type PendingTreatment string

const (
	TreatmentFullDay PendingTreatment = "full_day"
	TreatmentHalfDay PendingTreatment = "half_day"
	TreatmentRefuse  PendingTreatment = "refuse"
)

// ClearMarker records which bulk clearing operation produced an override,
// making a repeated run of the same operation a no-op.
type ClearMarker string

const (
	ClearLate    ClearMarker = "late"
	ClearEarly   ClearMarker = "early"
	ClearMissing ClearMarker = "missing"
)

type StatusOverrideDetails struct {
	PendingTreatment *PendingTreatment `json:"pending_treatment,omitempty"`
	Reason           string            `json:"reason,omitempty"`
	Cleared          []ClearMarker     `json:"cleared,omitempty"`
}

// HasCleared reports whether the marker for a clearing operation is present.
func (d StatusOverrideDetails) HasCleared(marker ClearMarker) bool {
	for _, m := range d.Cleared {
		if m == marker {
			return true
		}
	}
	return false
}

// DayEditDetails carries corrected times in "15:04" form, interpreted on
// the override's date.
type DayEditDetails struct {
	EntryTime     *string `json:"entry_time,omitempty"`
	ExitTime      *string `json:"exit_time,omitempty"`
	Justification string  `json:"justification,omitempty"`
}

type PunchAddDetails struct {
	PunchType string    `json:"punch_type"` // "entry" or "exit"
	Time      time.Time `json:"time"`
}

type LeaveDetails struct {
	LeaveType string `json:"leave_type"`
}

type HolidayDetails struct {
	HolidayName string `json:"holiday_name"`
}

// Details is a tagged union over the override kinds; exactly one variant is
// set, matching the Kind on the row.
type Details struct {
	StatusOverride *StatusOverrideDetails
	DayEdit        *DayEditDetails
	PunchAdd       *PunchAddDetails
	Leave          *LeaveDetails
	Holiday        *HolidayDetails
}

// Kind returns the kind of the populated variant, or "" when none is set.
func (d Details) Kind() Kind {
	switch {
	case d.StatusOverride != nil:
		return KindStatusOverride
	case d.DayEdit != nil:
		return KindDayEdit
	case d.PunchAdd != nil:
		return KindPunchAdd
	case d.Leave != nil:
		return KindLeave
	case d.Holiday != nil:
		return KindHoliday
	}
	return ""
}

// Encode serializes the populated variant for storage. The kind is stored
// in its own column, so only the payload is encoded here.
func (d Details) Encode() ([]byte, error) {
	switch k := d.Kind(); k {
	case KindStatusOverride:
		return json.Marshal(d.StatusOverride)
	case KindDayEdit:
		return json.Marshal(d.DayEdit)
	case KindPunchAdd:
		return json.Marshal(d.PunchAdd)
	case KindLeave:
		return json.Marshal(d.Leave)
	case KindHoliday:
		return json.Marshal(d.Holiday)
	default:
		return nil, fmt.Errorf("override details have no variant set")
	}
}

// DecodeDetails parses a stored payload into the variant selected by kind.
func DecodeDetails(kind Kind, raw []byte) (Details, error) {
	if len(raw) == 0 {
		raw = []byte("{}")
	}

	var d Details
	var err error
	switch kind {
	case KindStatusOverride:
		d.StatusOverride = &StatusOverrideDetails{}
		err = json.Unmarshal(raw, d.StatusOverride)
	case KindDayEdit:
		d.DayEdit = &DayEditDetails{}
		err = json.Unmarshal(raw, d.DayEdit)
	case KindPunchAdd:
		d.PunchAdd = &PunchAddDetails{}
		err = json.Unmarshal(raw, d.PunchAdd)
	case KindLeave:
		d.Leave = &LeaveDetails{}
		err = json.Unmarshal(raw, d.Leave)
	case KindHoliday:
		d.Holiday = &HolidayDetails{}
		err = json.Unmarshal(raw, d.Holiday)
	default:
		return Details{}, fmt.Errorf("unknown override kind %q", kind)
	}

	if err != nil {
		return Details{}, fmt.Errorf("failed to decode %s details: %w", kind, err)
	}
	return d, nil
}

package correction

import (
	"github.com/clockwork-hr/attendance-backend-go/internal/domain/override"
	"github.com/clockwork-hr/attendance-backend-go/internal/pkg/validator"
)

// ClearKind selects which bulk correction runs.
type ClearKind string

const (
	ClearLate    ClearKind = "clear_late"
	ClearEarly   ClearKind = "clear_early"
	ClearMissing ClearKind = "clear_missing"
)

var ClearKindValues = []string{
	string(ClearLate),
	string(ClearEarly),
	string(ClearMissing),
}

// Marker returns the cleared marker the operation stamps on the overrides
// it writes.
func (k ClearKind) Marker() override.ClearMarker {
	switch k {
	case ClearLate:
		return override.ClearLate
	case ClearEarly:
		return override.ClearEarly
	case ClearMissing:
		return override.ClearMissing
	}
	return ""
}

type BulkClearRequest struct {
	Kind         ClearKind `json:"kind"`
	Year         int       `json:"year"`
	Month        int       `json:"month"`
	EmployeeIDs  []string  `json:"employee_ids,omitempty"`
	DepartmentID *string   `json:"department_id,omitempty"`
}

func (r *BulkClearRequest) Validate() error {
	var errs validator.ValidationErrors

	valid := false
	for _, v := range ClearKindValues {
		if string(r.Kind) == v {
			valid = true
			break
		}
	}
	if !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "kind",
			Message: "kind must be one of clear_late, clear_early, clear_missing",
		})
	}

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}
	if r.Year < 2000 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be 2000 or later",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// BulkClearItem reports one employee's outcome inside a bulk clear. A
// failed item never aborts the rest of the batch; each employee commits
// independently.
type BulkClearItem struct {
	EmployeeID   string `json:"employee_id"`
	AffectedDays int    `json:"affected_days"`
	Error        string `json:"error,omitempty"`
}

// BulkClearResult reports how many employee-days actually changed across the
// batch. Zero affected days means no override or summary write happened at
// all.
type BulkClearResult struct {
	AffectedDays int             `json:"affected_days"`
	Items        []BulkClearItem `json:"items"`
}

package response

import (
	"errors"
	"net/http"

	"github.com/clockwork-hr/attendance-backend-go/internal/domain/employee"
	"github.com/clockwork-hr/attendance-backend-go/internal/domain/exception"
	"github.com/clockwork-hr/attendance-backend-go/internal/domain/override"
	"github.com/clockwork-hr/attendance-backend-go/internal/domain/punch"
	"github.com/clockwork-hr/attendance-backend-go/internal/domain/schedule"
	"github.com/clockwork-hr/attendance-backend-go/internal/domain/summary"
	"github.com/clockwork-hr/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Schedule domain errors
	case errors.Is(err, schedule.ErrTimetableNotFound):
		NotFound(w, "Timetable not found")
	case errors.Is(err, schedule.ErrAssignmentNotFound):
		NotFound(w, "Timetable assignment not found")

	// Punch domain errors
	case errors.Is(err, punch.ErrPunchNotFound):
		NotFound(w, "Punch not found")
	case errors.Is(err, punch.ErrDeleteNotPermitted):
		Conflict(w, "Synthetic punch cannot be deleted directly")

	// Override domain errors
	case errors.Is(err, override.ErrOverrideNotFound):
		NotFound(w, "Override not found")
	case errors.Is(err, override.ErrConflictingOverride):
		Conflict(w, "Day already carries an incompatible override")

	// Exception domain errors
	case errors.Is(err, exception.ErrExceptionNotFound):
		NotFound(w, "Exception not found")
	case errors.Is(err, exception.ErrExceptionAlreadyProcessed):
		Conflict(w, "Exception already processed")
	case errors.Is(err, exception.ErrInvalidPayload):
		BadRequest(w, "Exception payload is incomplete for its type", nil)

	// Summary domain errors
	case errors.Is(err, summary.ErrValidationBlocked):
		Conflict(w, "Month has unresolved pending days")
	case errors.Is(err, summary.ErrSummaryNotFound):
		NotFound(w, "Monthly summary not found")
	case errors.Is(err, summary.ErrMonthNotValidated):
		Conflict(w, "Month is not validated")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}

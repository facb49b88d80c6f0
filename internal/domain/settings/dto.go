package settings

import "github.com/clockwork-hr/attendance-backend-go/internal/pkg/validator"

type SettingsResponse struct {
	LatenessGraceMinutes  int     `json:"lateness_grace_minutes"`
	EarlyGraceMinutes     int     `json:"early_grace_minutes"`
	DefaultScheduledHours float64 `json:"default_scheduled_hours"`
}

type UpdateSettingsRequest struct {
	LatenessGraceMinutes  int     `json:"lateness_grace_minutes"`
	EarlyGraceMinutes     int     `json:"early_grace_minutes"`
	DefaultScheduledHours float64 `json:"default_scheduled_hours"`
}

func (r *UpdateSettingsRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.LatenessGraceMinutes < 0 {
		errs = append(errs, validator.ValidationError{Field: "lateness_grace_minutes", Message: "lateness_grace_minutes must not be negative"})
	}
	if r.EarlyGraceMinutes < 0 {
		errs = append(errs, validator.ValidationError{Field: "early_grace_minutes", Message: "early_grace_minutes must not be negative"})
	}
	if r.DefaultScheduledHours <= 0 || r.DefaultScheduledHours > 24 {
		errs = append(errs, validator.ValidationError{Field: "default_scheduled_hours", Message: "default_scheduled_hours must be between 0 and 24"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

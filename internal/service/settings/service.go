package settings

import (
	"context"

	"github.com/clockwork-hr/attendance-backend-go/internal/domain/settings"
)

type SettingsServiceImpl struct {
	settings.SettingsRepository
}

// Get implements settings.SettingsService.
func (s *SettingsServiceImpl) Get(ctx context.Context) (settings.SettingsResponse, error) {
	current, err := s.SettingsRepository.Get(ctx)
	if err != nil {
		return settings.SettingsResponse{}, err
	}
	return mapSettingsToResponse(current), nil
}

// Update implements settings.SettingsService. Updated grace values apply to
// the next classification; already-validated months keep their snapshots.
func (s *SettingsServiceImpl) Update(ctx context.Context, req settings.UpdateSettingsRequest) (settings.SettingsResponse, error) {
	if err := req.Validate(); err != nil {
		return settings.SettingsResponse{}, err
	}

	updated := settings.Settings{
		LatenessGraceMinutes:  req.LatenessGraceMinutes,
		EarlyGraceMinutes:     req.EarlyGraceMinutes,
		DefaultScheduledHours: req.DefaultScheduledHours,
	}
	if err := s.SettingsRepository.Update(ctx, updated); err != nil {
		return settings.SettingsResponse{}, err
	}

	return mapSettingsToResponse(updated), nil
}

func mapSettingsToResponse(s settings.Settings) settings.SettingsResponse {
	return settings.SettingsResponse{
		LatenessGraceMinutes:  s.LatenessGraceMinutes,
		EarlyGraceMinutes:     s.EarlyGraceMinutes,
		DefaultScheduledHours: s.DefaultScheduledHours,
	}
}

func NewSettingsService(settingsRepo settings.SettingsRepository) settings.SettingsService {
	return &SettingsServiceImpl{SettingsRepository: settingsRepo}
}

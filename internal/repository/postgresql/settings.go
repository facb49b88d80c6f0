package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/clockwork-hr/attendance-backend-go/internal/domain/settings"
	"github.com/clockwork-hr/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type settingsRepository struct {
	db *database.DB
}

// Get implements settings.SettingsRepository.
func (r *settingsRepository) Get(ctx context.Context) (settings.Settings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT lateness_grace_minutes, early_grace_minutes, default_scheduled_hours
		FROM settings
		LIMIT 1
	`

	var s settings.Settings
	err := q.QueryRow(ctx, query).Scan(
		&s.LatenessGraceMinutes, &s.EarlyGraceMinutes, &s.DefaultScheduledHours,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return settings.Defaults(), nil
		}
		return settings.Settings{}, fmt.Errorf("failed to get settings: %w", err)
	}

	return s, nil
}

// Update implements settings.SettingsRepository.
func (r *settingsRepository) Update(ctx context.Context, s settings.Settings) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO settings (id, lateness_grace_minutes, early_grace_minutes, default_scheduled_hours, updated_at)
		VALUES (1, $1, $2, $3, NOW())
		ON CONFLICT (id) DO UPDATE SET
			lateness_grace_minutes = EXCLUDED.lateness_grace_minutes,
			early_grace_minutes = EXCLUDED.early_grace_minutes,
			default_scheduled_hours = EXCLUDED.default_scheduled_hours,
			updated_at = NOW()
	`

	if _, err := q.Exec(ctx, query, s.LatenessGraceMinutes, s.EarlyGraceMinutes, s.DefaultScheduledHours); err != nil {
		return fmt.Errorf("failed to update settings: %w", err)
	}

	return nil
}

func NewSettingsRepository(db *database.DB) settings.SettingsRepository {
	return &settingsRepository{db: db}
}

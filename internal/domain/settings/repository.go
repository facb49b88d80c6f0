package settings

import "context"

type SettingsRepository interface {
	// Get returns the current settings row, or Defaults() when none exists.
	Get(ctx context.Context) (Settings, error)

	// Update replaces the settings row.
	Update(ctx context.Context, s Settings) error
}

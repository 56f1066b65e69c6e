package repository

import (
	"context"

	"github.com/bnema/synapse/internal/domain/entity"
)

// BindingRepository persists the binding and action tables.
type BindingRepository interface {
	// Load returns both tables. Missing or unreadable documents yield empty tables.
	Load(ctx context.Context) (entity.Bindings, entity.Actions, error)

	// Save writes both tables together.
	Save(ctx context.Context, bindings entity.Bindings, actions entity.Actions) error
}

// SettingsRepository persists the device settings document.
type SettingsRepository interface {
	// Load returns the stored settings with defaults applied.
	Load(ctx context.Context) (entity.Settings, error)

	// Save overwrites the stored settings.
	Save(ctx context.Context, settings entity.Settings) error
}

// ActivityRepository stores the activity log.
type ActivityRepository interface {
	// Record appends an entry and sets its ID.
	Record(ctx context.Context, activity *entity.Activity) error

	// Recent returns up to limit entries, newest first.
	Recent(ctx context.Context, limit int) ([]*entity.Activity, error)

	// Clear removes every entry.
	Clear(ctx context.Context) error
}

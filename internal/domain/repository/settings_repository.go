package repository

import (
	"context"

	"github.com/Prathamesh404NotFound/Billing-System/internal/domain/entity"
)

// SettingsRepository defines the interface for the single shop-settings
// record. Get returns nil when no record has been saved yet.
type SettingsRepository interface {
	Get(ctx context.Context) (*entity.ShopSettings, error)
	// Save replaces the settings record wholesale.
	Save(ctx context.Context, settings *entity.ShopSettings) error
}

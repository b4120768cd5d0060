package service

import (
	"context"
	"time"

	"github.com/Prathamesh404NotFound/Billing-System/internal/domain/entity"
	"github.com/Prathamesh404NotFound/Billing-System/internal/domain/repository"
	"github.com/Prathamesh404NotFound/Billing-System/internal/events"
	"github.com/Prathamesh404NotFound/Billing-System/pkg/apperror"
	"github.com/Prathamesh404NotFound/Billing-System/pkg/sanitize"
)

// SettingsService manages the single shop-settings record
type SettingsService struct {
	settingsRepo repository.SettingsRepository
	bus          *events.Bus
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository, bus *events.Bus) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo, bus: bus}
}

// GetSettings returns the saved settings, or the defaults when the shop has
// never saved any.
func (s *SettingsService) GetSettings(ctx context.Context) (*entity.ShopSettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return entity.DefaultShopSettings(), nil
	}
	return settings, nil
}

// SettingsInput describes a settings save payload
type SettingsInput struct {
	Name            string
	Address         string
	ContactNumber   string
	WhatsappNumber  string
	DefaultDiscount float64
	Theme           string
	AccentColor     string
}

// SaveSettings replaces the settings record wholesale
func (s *SettingsService) SaveSettings(ctx context.Context, input *SettingsInput) (*entity.ShopSettings, error) {
	name := sanitize.String(input.Name)
	if name == "" {
		return nil, apperror.NewBadRequestError("Shop name is required")
	}
	if input.DefaultDiscount < 0 {
		return nil, apperror.NewBadRequestError("Default discount cannot be negative")
	}
	theme := input.Theme
	if theme != "dark" {
		theme = "light"
	}

	settings := &entity.ShopSettings{
		Name:            name,
		Address:         sanitize.String(input.Address),
		ContactNumber:   sanitize.PhoneNumber(input.ContactNumber),
		WhatsappNumber:  sanitize.PhoneNumber(input.WhatsappNumber),
		DefaultDiscount: input.DefaultDiscount,
		Theme:           theme,
		AccentColor:     sanitize.String(input.AccentColor),
	}

	if err := s.settingsRepo.Save(ctx, settings); err != nil {
		return nil, err
	}
	s.bus.Publish(events.Event{Topic: events.TopicSettings, Action: "updated", EntityID: "settings", At: time.Now()})
	return settings, nil
}

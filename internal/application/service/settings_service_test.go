package service

import (
	"context"
	"testing"

	"github.com/Prathamesh404NotFound/Billing-System/internal/events"
	"github.com/Prathamesh404NotFound/Billing-System/internal/infrastructure/repository/memory"
)

func TestGetSettingsFallsBackToDefaults(t *testing.T) {
	svc := NewSettingsService(memory.NewSettingsStore(), events.NewBus())
	ctx := context.Background()

	settings, err := svc.GetSettings(ctx)
	if err != nil {
		t.Fatalf("GetSettings: %v", err)
	}
	if settings.Name != "Fashion Hub Clothing" {
		t.Fatalf("expected default shop name, got %q", settings.Name)
	}
	if settings.Theme != "light" {
		t.Fatalf("expected default theme light, got %q", settings.Theme)
	}
}

func TestSaveSettingsReplacesWholesale(t *testing.T) {
	svc := NewSettingsService(memory.NewSettingsStore(), events.NewBus())
	ctx := context.Background()

	if _, err := svc.SaveSettings(ctx, &SettingsInput{
		Name:            "City Styles",
		Address:         "45 Bazaar Road",
		ContactNumber:   "+91 91234 56789",
		DefaultDiscount: 5,
		Theme:           "dark",
		AccentColor:     "#0ea5e9",
	}); err != nil {
		t.Fatalf("SaveSettings: %v", err)
	}

	// A second save with empty optional fields clears them.
	saved, err := svc.SaveSettings(ctx, &SettingsInput{Name: "City Styles"})
	if err != nil {
		t.Fatalf("second SaveSettings: %v", err)
	}
	if saved.Address != "" || saved.DefaultDiscount != 0 {
		t.Fatal("save should replace the record wholesale, not merge")
	}

	got, err := svc.GetSettings(ctx)
	if err != nil {
		t.Fatalf("GetSettings: %v", err)
	}
	if got.Name != "City Styles" || got.Theme != "light" {
		t.Fatalf("unexpected settings after save: %+v", got)
	}

	if _, err := svc.SaveSettings(ctx, &SettingsInput{}); err == nil {
		t.Fatal("blank shop name must be rejected")
	}
	if _, err := svc.SaveSettings(ctx, &SettingsInput{Name: "X", DefaultDiscount: -1}); err == nil {
		t.Fatal("negative default discount must be rejected")
	}
}

package service

import (
	"context"
	"testing"

	"github.com/Prathamesh404NotFound/Billing-System/internal/domain/entity"
	"github.com/Prathamesh404NotFound/Billing-System/internal/events"
	"github.com/Prathamesh404NotFound/Billing-System/internal/infrastructure/repository/memory"
)

func newCatalogFixture(t *testing.T) (*CatalogService, *memory.ItemStore, *memory.CategoryStore, *events.Bus) {
	t.Helper()
	items := memory.NewItemStore()
	categories := memory.NewCategoryStore()
	bus := events.NewBus()
	svc := NewCatalogService(items, categories, bus)

	if err := categories.Create(context.Background(), &entity.Category{ID: "shirts", Name: "Shirts", Icon: "👔"}); err != nil {
		t.Fatalf("seed category: %v", err)
	}
	return svc, items, categories, bus
}

func TestCreateCategorySlugsID(t *testing.T) {
	svc, _, _, _ := newCatalogFixture(t)
	ctx := context.Background()

	category, err := svc.CreateCategory(ctx, "Kids Wear (Boys)", "👦")
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}
	if category.ID != "kids-wear-boys" {
		t.Fatalf("expected slug ID kids-wear-boys, got %q", category.ID)
	}

	if _, err := svc.CreateCategory(ctx, "Kids Wear (Boys)", "👦"); err == nil {
		t.Fatal("duplicate slug must be rejected")
	}
	if _, err := svc.CreateCategory(ctx, "   ", ""); err == nil {
		t.Fatal("blank name must be rejected")
	}
}

func TestCreateItemDerivesVariantIDs(t *testing.T) {
	svc, _, _, _ := newCatalogFixture(t)
	ctx := context.Background()

	item, err := svc.CreateItem(ctx, "s1", &ItemInput{
		CategoryID: "shirts",
		Name:       "Formal White Shirt",
		Variants: []VariantInput{
			{Size: "M", Price: 1299, Stock: 15},
			{Size: "L", Price: 1399, Stock: 8},
		},
	})
	if err != nil {
		t.Fatalf("CreateItem: %v", err)
	}

	if item.Variants[0].ID != "s1-M-1299" || item.Variants[1].ID != "s1-L-1399" {
		t.Fatalf("variant IDs should derive from item/size/price, got %q and %q",
			item.Variants[0].ID, item.Variants[1].ID)
	}
}

func TestCreateItemValidation(t *testing.T) {
	svc, _, _, _ := newCatalogFixture(t)
	ctx := context.Background()

	if _, err := svc.CreateItem(ctx, "x1", &ItemInput{
		CategoryID: "nope", Name: "Thing",
		Variants: []VariantInput{{Size: "M", Price: 10}},
	}); err == nil {
		t.Fatal("unknown category must be rejected")
	}

	if _, err := svc.CreateItem(ctx, "x1", &ItemInput{
		CategoryID: "shirts", Name: "Thing",
	}); err == nil {
		t.Fatal("item without variants must be rejected")
	}

	if _, err := svc.CreateItem(ctx, "x1", &ItemInput{
		CategoryID: "shirts", Name: "Thing",
		Variants:   []VariantInput{{Size: "M", Price: 0}},
	}); err == nil {
		t.Fatal("zero-price variant must be rejected")
	}

	if _, err := svc.CreateItem(ctx, "x1", &ItemInput{
		CategoryID: "shirts", Name: "Thing",
		Variants: []VariantInput{
			{Size: "M", Price: 10},
			{Size: "M", Price: 10},
		},
	}); err == nil {
		t.Fatal("duplicate variants must be rejected")
	}
}

func TestDeleteCategoryOrphansItems(t *testing.T) {
	svc, items, _, _ := newCatalogFixture(t)
	ctx := context.Background()

	if _, err := svc.CreateItem(ctx, "s1", &ItemInput{
		CategoryID: "shirts", Name: "Formal White Shirt",
		Variants:   []VariantInput{{Size: "M", Price: 1299}},
	}); err != nil {
		t.Fatalf("CreateItem: %v", err)
	}

	if err := svc.DeleteCategory(ctx, "shirts"); err != nil {
		t.Fatalf("DeleteCategory: %v", err)
	}

	// The item survives with its stale category reference.
	item, _ := items.GetByID(ctx, "s1")
	if item == nil {
		t.Fatal("item should survive category deletion")
	}
	if item.CategoryID != "shirts" {
		t.Fatalf("item keeps the stale category ID, got %q", item.CategoryID)
	}
}

func TestCatalogWritesPublishEvents(t *testing.T) {
	svc, _, _, bus := newCatalogFixture(t)
	ctx := context.Background()

	ch, cancel := bus.Subscribe(events.TopicItems)
	defer cancel()

	if _, err := svc.CreateItem(ctx, "s1", &ItemInput{
		CategoryID: "shirts", Name: "Formal White Shirt",
		Variants:   []VariantInput{{Size: "M", Price: 1299}},
	}); err != nil {
		t.Fatalf("CreateItem: %v", err)
	}

	select {
	case evt := <-ch:
		if evt.Topic != events.TopicItems || evt.Action != "created" || evt.EntityID != "s1" {
			t.Fatalf("unexpected event %+v", evt)
		}
	default:
		t.Fatal("expected a change event after creating an item")
	}
}

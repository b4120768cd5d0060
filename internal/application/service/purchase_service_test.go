package service

import (
	"context"
	"strings"
	"testing"

	"github.com/Prathamesh404NotFound/Billing-System/internal/domain/entity"
	"github.com/Prathamesh404NotFound/Billing-System/internal/domain/repository"
	"github.com/Prathamesh404NotFound/Billing-System/internal/events"
	"github.com/Prathamesh404NotFound/Billing-System/internal/infrastructure/repository/memory"
	"github.com/Prathamesh404NotFound/Billing-System/pkg/pagination"
	"github.com/sirupsen/logrus"
)

func newPurchaseFixture(t *testing.T) (*PurchaseService, *memory.ItemStore, *memory.DealerStore) {
	t.Helper()
	items := memory.NewItemStore()
	dealers := memory.NewDealerStore()
	purchases := memory.NewPurchaseStore()
	logger := logrus.New()
	inventory := NewInventoryService(items, logger)
	svc := NewPurchaseService(purchases, dealers, items, inventory, events.NewBus(), logger)

	ctx := context.Background()
	item := &entity.Item{
		ID: "s1", CategoryID: "shirts", Name: "Formal White Shirt",
		Variants: []entity.ItemVariant{
			{ID: "v1", ItemID: "s1", Size: "M", Price: 1299, Stock: 5},
		},
	}
	if err := items.Create(ctx, item); err != nil {
		t.Fatalf("seed item: %v", err)
	}
	dealer := &entity.Dealer{ID: "d1", DealerName: "Kumar Textiles", ShopName: "Kumar & Sons", MobileNumber: "9876543210"}
	if err := dealers.Create(ctx, dealer); err != nil {
		t.Fatalf("seed dealer: %v", err)
	}
	return svc, items, dealers
}

func TestCreatePurchaseIncrementsStock(t *testing.T) {
	svc, items, _ := newPurchaseFixture(t)
	ctx := context.Background()

	purchase, err := svc.CreatePurchase(ctx, &CreatePurchaseInput{
		DealerID: "d1",
		Items: []PurchaseLineInput{
			{ItemID: "s1", VariantID: "v1", Quantity: 10, CostPrice: 800},
		},
	})
	if err != nil {
		t.Fatalf("CreatePurchase: %v", err)
	}

	if !strings.HasPrefix(purchase.ID, "PURCHASE-") {
		t.Fatalf("purchase ID should carry the PURCHASE- prefix, got %q", purchase.ID)
	}
	if purchase.DealerName != "Kumar Textiles" {
		t.Fatalf("dealer name snapshot missing, got %q", purchase.DealerName)
	}
	if purchase.TotalQuantity != 10 || purchase.TotalValue != 8000 {
		t.Fatalf("expected quantity 10 value 8000, got %d / %v", purchase.TotalQuantity, purchase.TotalValue)
	}

	item, _ := items.GetByID(ctx, "s1")
	if v := item.Variant("v1"); v.Stock != 15 {
		t.Fatalf("stock should rise 5 -> 15, got %d", v.Stock)
	}
}

func TestCreatePurchaseValidation(t *testing.T) {
	svc, _, _ := newPurchaseFixture(t)
	ctx := context.Background()

	if _, err := svc.CreatePurchase(ctx, &CreatePurchaseInput{DealerID: "d1"}); err == nil {
		t.Fatal("empty purchase must be rejected")
	}
	if _, err := svc.CreatePurchase(ctx, &CreatePurchaseInput{
		DealerID: "missing",
		Items:    []PurchaseLineInput{{ItemID: "s1", VariantID: "v1", Quantity: 1, CostPrice: 10}},
	}); err == nil {
		t.Fatal("unknown dealer must be rejected")
	}
	if _, err := svc.CreatePurchase(ctx, &CreatePurchaseInput{
		DealerID: "d1",
		Items:    []PurchaseLineInput{{ItemID: "s1", VariantID: "v1", Quantity: 0, CostPrice: 10}},
	}); err == nil {
		t.Fatal("zero quantity must be rejected")
	}
	if _, err := svc.CreatePurchase(ctx, &CreatePurchaseInput{
		DealerID: "d1",
		Items:    []PurchaseLineInput{{ItemID: "s1", VariantID: "bad", Quantity: 1, CostPrice: 10}},
	}); err == nil {
		t.Fatal("foreign variant must be rejected")
	}
}

func TestListPurchasesByDealer(t *testing.T) {
	svc, _, dealers := newPurchaseFixture(t)
	ctx := context.Background()

	other := &entity.Dealer{ID: "d2", DealerName: "Mehta Fabrics", MobileNumber: "9123456780"}
	if err := dealers.Create(ctx, other); err != nil {
		t.Fatalf("seed dealer: %v", err)
	}

	for _, dealerID := range []string{"d1", "d2", "d1"} {
		if _, err := svc.CreatePurchase(ctx, &CreatePurchaseInput{
			DealerID: dealerID,
			Items:    []PurchaseLineInput{{ItemID: "s1", VariantID: "v1", Quantity: 1, CostPrice: 10}},
		}); err != nil {
			t.Fatalf("CreatePurchase for %s: %v", dealerID, err)
		}
	}

	result, err := svc.ListPurchases(ctx, &repository.PurchaseFilterParams{
		Pagination: pagination.DefaultPagination(),
		DealerID:   "d1",
	})
	if err != nil {
		t.Fatalf("ListPurchases: %v", err)
	}
	if len(result.Items) != 2 {
		t.Fatalf("expected 2 purchases for d1, got %d", len(result.Items))
	}
	for _, p := range result.Items {
		if p.DealerID != "d1" {
			t.Fatalf("filter leaked purchase for %s", p.DealerID)
		}
	}
}

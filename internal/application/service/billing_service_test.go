package service

import (
	"context"
	"testing"

	"github.com/Prathamesh404NotFound/Billing-System/internal/domain/entity"
	"github.com/Prathamesh404NotFound/Billing-System/internal/domain/enum"
	"github.com/Prathamesh404NotFound/Billing-System/internal/events"
	"github.com/Prathamesh404NotFound/Billing-System/internal/infrastructure/repository/memory"
	"github.com/sirupsen/logrus"
)

const testRegister = "register-1"

func newBillingFixture(t *testing.T) (*BillingService, *memory.ItemStore, *memory.BillStore, *memory.SettingsStore) {
	t.Helper()
	items := memory.NewItemStore()
	bills := memory.NewBillStore()
	settings := memory.NewSettingsStore()
	logger := logrus.New()
	inventory := NewInventoryService(items, logger)
	svc := NewBillingService(bills, items, settings, inventory, events.NewBus(), logger)

	seed := []entity.Item{
		{
			ID: "s1", CategoryID: "shirts", Name: "Formal White Shirt",
			Variants: []entity.ItemVariant{
				{ID: "v1", ItemID: "s1", Size: "M", Price: 500, Stock: 10},
				{ID: "v2", ItemID: "s1", Size: "L", Price: 300, Stock: 10},
			},
		},
	}
	for i := range seed {
		if err := items.Create(context.Background(), &seed[i]); err != nil {
			t.Fatalf("seed item: %v", err)
		}
	}
	return svc, items, bills, settings
}

func TestSubtotalTracksLines(t *testing.T) {
	svc, _, _, _ := newBillingFixture(t)
	ctx := context.Background()
	svc.CreateNewBill(ctx, testRegister)

	bill, err := svc.AddItemToBill(ctx, testRegister, "s1", "v1", 2, 500)
	if err != nil {
		t.Fatalf("AddItemToBill: %v", err)
	}
	if bill.Subtotal != 1000 || bill.Total != 1000 {
		t.Fatalf("expected subtotal=total=1000, got subtotal=%v total=%v", bill.Subtotal, bill.Total)
	}

	bill, err = svc.AddItemToBill(ctx, testRegister, "s1", "v2", 1, 300)
	if err != nil {
		t.Fatalf("AddItemToBill: %v", err)
	}
	if bill.Subtotal != 1300 {
		t.Fatalf("expected subtotal 1300, got %v", bill.Subtotal)
	}

	bill, err = svc.UpdateBillItem(testRegister, "v1", 3)
	if err != nil {
		t.Fatalf("UpdateBillItem: %v", err)
	}
	if bill.Subtotal != 1800 {
		t.Fatalf("expected subtotal 1800 after quantity update, got %v", bill.Subtotal)
	}

	bill, err = svc.RemoveItemFromBill(testRegister, "v2")
	if err != nil {
		t.Fatalf("RemoveItemFromBill: %v", err)
	}
	if bill.Subtotal != 1500 || bill.Total != 1500 {
		t.Fatalf("expected subtotal=total=1500 after removal, got subtotal=%v total=%v", bill.Subtotal, bill.Total)
	}

	var sum float64
	for _, line := range bill.Items {
		sum += line.Subtotal
	}
	if sum != bill.Subtotal {
		t.Fatalf("subtotal drifted from line sum: %v vs %v", bill.Subtotal, sum)
	}
}

func TestSameVariantSamePriceMerges(t *testing.T) {
	svc, _, _, _ := newBillingFixture(t)
	ctx := context.Background()
	svc.CreateNewBill(ctx, testRegister)

	if _, err := svc.AddItemToBill(ctx, testRegister, "s1", "v1", 2, 500); err != nil {
		t.Fatalf("first add: %v", err)
	}
	bill, err := svc.AddItemToBill(ctx, testRegister, "s1", "v1", 3, 500)
	if err != nil {
		t.Fatalf("second add: %v", err)
	}

	if len(bill.Items) != 1 {
		t.Fatalf("expected one merged line, got %d", len(bill.Items))
	}
	if bill.Items[0].Quantity != 5 || bill.Items[0].Subtotal != 2500 {
		t.Fatalf("expected qty 5 subtotal 2500, got qty %d subtotal %v", bill.Items[0].Quantity, bill.Items[0].Subtotal)
	}

	// Same variant at a manually entered different price is a separate line.
	bill, err = svc.AddItemToBill(ctx, testRegister, "s1", "v1", 1, 450)
	if err != nil {
		t.Fatalf("different-price add: %v", err)
	}
	if len(bill.Items) != 2 {
		t.Fatalf("expected two lines for two prices, got %d", len(bill.Items))
	}
}

func TestDiscountTypes(t *testing.T) {
	svc, _, _, _ := newBillingFixture(t)
	ctx := context.Background()
	svc.CreateNewBill(ctx, testRegister)

	if _, err := svc.AddItemToBill(ctx, testRegister, "s1", "v1", 2, 500); err != nil {
		t.Fatalf("add: %v", err)
	}

	bill, err := svc.SetDiscount(testRegister, 50, enum.DiscountTypePercentage)
	if err != nil {
		t.Fatalf("SetDiscount percentage: %v", err)
	}
	if bill.Total != 500 {
		t.Fatalf("50%% of 1000 should leave total 500, got %v", bill.Total)
	}

	bill, err = svc.SetDiscount(testRegister, 50, enum.DiscountTypeFixed)
	if err != nil {
		t.Fatalf("SetDiscount fixed: %v", err)
	}
	if bill.Total != 950 {
		t.Fatalf("fixed 50 off 1000 should leave total 950, got %v", bill.Total)
	}
	if bill.Discount != 50 {
		t.Fatalf("stored discount should stay raw (50), got %v", bill.Discount)
	}
}

func TestSaveEmptyBillIsNoOp(t *testing.T) {
	svc, _, bills, _ := newBillingFixture(t)
	ctx := context.Background()
	draft := svc.CreateNewBill(ctx, testRegister)

	if _, err := svc.SaveBill(ctx, testRegister, enum.PaymentModeCash, ""); err == nil {
		t.Fatal("expected error saving empty bill")
	}
	if got := len(bills.All()); got != 0 {
		t.Fatalf("no bill should be persisted, found %d", got)
	}
	after := svc.GetDraft(testRegister)
	if after == nil || after.ID != draft.ID {
		t.Fatal("draft should be unchanged after rejected save")
	}
}

func TestRapidSavesMintDistinctBillIDs(t *testing.T) {
	svc, _, bills, _ := newBillingFixture(t)
	ctx := context.Background()
	svc.CreateNewBill(ctx, testRegister)

	// Back-to-back saves land in the same millisecond; each must still
	// persist under its own ID.
	seen := make(map[string]bool)
	for i := 0; i < 3; i++ {
		if _, err := svc.AddItemToBill(ctx, testRegister, "s1", "v1", 1, 500); err != nil {
			t.Fatalf("AddItemToBill: %v", err)
		}
		bill, err := svc.SaveBill(ctx, testRegister, enum.PaymentModeCash, "")
		if err != nil {
			t.Fatalf("SaveBill: %v", err)
		}
		if seen[bill.ID] {
			t.Fatalf("bill ID %q repeated across saves", bill.ID)
		}
		seen[bill.ID] = true

		if draft := svc.GetDraft(testRegister); draft.ID == bill.ID {
			t.Fatalf("replacement draft reuses the saved bill's ID %q", bill.ID)
		}
	}

	if got := len(bills.All()); got != 3 {
		t.Fatalf("expected 3 saved bills, got %d", got)
	}
}

func TestSaveBillAdjustsStock(t *testing.T) {
	svc, items, _, _ := newBillingFixture(t)
	ctx := context.Background()

	svc.CreateNewBill(ctx, testRegister)
	if _, err := svc.AddItemToBill(ctx, testRegister, "s1", "v1", 3, 500); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.SaveBill(ctx, testRegister, enum.PaymentModeCash, ""); err != nil {
		t.Fatalf("SaveBill: %v", err)
	}

	item, _ := items.GetByID(ctx, "s1")
	if v := item.Variant("v1"); v.Stock != 7 {
		t.Fatalf("stock should drop 10 -> 7, got %d", v.Stock)
	}

	// Overselling drives stock negative and is not blocked.
	svc.CreateNewBill(ctx, testRegister)
	if _, err := svc.AddItemToBill(ctx, testRegister, "s1", "v1", 15, 500); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.SaveBill(ctx, testRegister, enum.PaymentModeUPI, ""); err != nil {
		t.Fatalf("oversell SaveBill: %v", err)
	}
	item, _ = items.GetByID(ctx, "s1")
	if v := item.Variant("v1"); v.Stock != -8 {
		t.Fatalf("stock should go negative (7-15=-8), got %d", v.Stock)
	}
}

func TestEndToEndBillScenario(t *testing.T) {
	svc, _, bills, settings := newBillingFixture(t)
	ctx := context.Background()

	if err := settings.Save(ctx, &entity.ShopSettings{ID: 1, Name: "Fashion Hub Clothing", DefaultDiscount: 5}); err != nil {
		t.Fatalf("seed settings: %v", err)
	}

	svc.CreateNewBill(ctx, testRegister)
	if _, err := svc.AddItemToBill(ctx, testRegister, "s1", "v1", 2, 500); err != nil {
		t.Fatalf("add v1: %v", err)
	}
	if _, err := svc.AddItemToBill(ctx, testRegister, "s1", "v2", 1, 300); err != nil {
		t.Fatalf("add v2: %v", err)
	}

	bill, err := svc.SetDiscount(testRegister, 10, enum.DiscountTypePercentage)
	if err != nil {
		t.Fatalf("SetDiscount: %v", err)
	}
	if bill.Subtotal != 1300 || bill.Discount != 10 || bill.Total != 1170 {
		t.Fatalf("expected subtotal 1300, discount 10, total 1170; got %v / %v / %v",
			bill.Subtotal, bill.Discount, bill.Total)
	}

	saved, err := svc.SaveBill(ctx, testRegister, enum.PaymentModeCash, "")
	if err != nil {
		t.Fatalf("SaveBill: %v", err)
	}
	if saved.CustomerName != "Walk-in Customer" {
		t.Fatalf("expected walk-in default, got %q", saved.CustomerName)
	}
	if got := len(bills.All()); got != 1 {
		t.Fatalf("expected one persisted bill, got %d", got)
	}

	fresh := svc.GetDraft(testRegister)
	if fresh == nil || len(fresh.Items) != 0 {
		t.Fatal("draft should reset to an empty bill after save")
	}
	if fresh.ID == saved.ID {
		t.Fatal("new draft should have a new ID")
	}
	if fresh.Discount != 5 || fresh.DiscountType != enum.DiscountTypeFixed {
		t.Fatalf("new draft should carry the settings default discount, got %v/%s", fresh.Discount, fresh.DiscountType)
	}
}

func TestDraftsAreRegisterScoped(t *testing.T) {
	svc, _, _, _ := newBillingFixture(t)
	ctx := context.Background()

	svc.CreateNewBill(ctx, "register-a")
	svc.CreateNewBill(ctx, "register-b")

	if _, err := svc.AddItemToBill(ctx, "register-a", "s1", "v1", 1, 500); err != nil {
		t.Fatalf("add on register-a: %v", err)
	}

	other := svc.GetDraft("register-b")
	if len(other.Items) != 0 {
		t.Fatal("register-b draft must not see register-a lines")
	}
}

func TestAddItemValidation(t *testing.T) {
	svc, _, _, _ := newBillingFixture(t)
	ctx := context.Background()
	svc.CreateNewBill(ctx, testRegister)

	if _, err := svc.AddItemToBill(ctx, testRegister, "s1", "v1", 0, 500); err == nil {
		t.Fatal("quantity 0 must be rejected")
	}
	if _, err := svc.AddItemToBill(ctx, testRegister, "s1", "nope", 1, 500); err == nil {
		t.Fatal("unknown variant must be rejected")
	}
	if _, err := svc.AddItemToBill(ctx, testRegister, "s1", "v1", 1, -5); err == nil {
		t.Fatal("negative price must be rejected")
	}

	// Price 0 falls back to the variant's catalog price.
	bill, err := svc.AddItemToBill(ctx, testRegister, "s1", "v1", 1, 0)
	if err != nil {
		t.Fatalf("catalog-price add: %v", err)
	}
	if bill.Items[0].Price != 500 {
		t.Fatalf("expected catalog price 500, got %v", bill.Items[0].Price)
	}

	// Quantity <= 0 on update is silently ignored.
	bill, err = svc.UpdateBillItem(testRegister, "v1", 0)
	if err != nil {
		t.Fatalf("UpdateBillItem: %v", err)
	}
	if bill.Items[0].Quantity != 1 {
		t.Fatalf("update with qty 0 should be a no-op, got qty %d", bill.Items[0].Quantity)
	}
}

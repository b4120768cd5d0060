package service

import (
	"context"
	"testing"

	"github.com/Prathamesh404NotFound/Billing-System/internal/events"
	"github.com/Prathamesh404NotFound/Billing-System/internal/infrastructure/repository/memory"
	"github.com/Prathamesh404NotFound/Billing-System/pkg/pagination"
)

func TestCreateDealerEnforcesUniqueMobile(t *testing.T) {
	svc := NewDealerService(memory.NewDealerStore(), events.NewBus())
	ctx := context.Background()

	dealer, err := svc.CreateDealer(ctx, &DealerInput{
		DealerName:   "Kumar Textiles",
		ShopName:     "Kumar & Sons",
		MobileNumber: "+91 98765-43210",
	})
	if err != nil {
		t.Fatalf("CreateDealer: %v", err)
	}
	if dealer.ID == "" {
		t.Fatal("dealer should get a generated ID")
	}

	if _, err := svc.CreateDealer(ctx, &DealerInput{
		DealerName:   "Someone Else",
		MobileNumber: "+91 98765-43210",
	}); err == nil {
		t.Fatal("duplicate mobile number must be rejected")
	}

	if _, err := svc.CreateDealer(ctx, &DealerInput{DealerName: "No Phone"}); err == nil {
		t.Fatal("missing mobile number must be rejected")
	}
}

func TestDealerFieldsAreSanitized(t *testing.T) {
	svc := NewDealerService(memory.NewDealerStore(), events.NewBus())
	ctx := context.Background()

	dealer, err := svc.CreateDealer(ctx, &DealerInput{
		DealerName:   "  Kumar <b>Textiles</b> ",
		MobileNumber: "call 98765x43210",
		Notes:        "prefers <i>cash</i>",
	})
	if err != nil {
		t.Fatalf("CreateDealer: %v", err)
	}
	if dealer.DealerName != "Kumar Textiles" {
		t.Fatalf("name should be sanitized, got %q", dealer.DealerName)
	}
	if dealer.MobileNumber != " 9876543210" {
		t.Fatalf("mobile should keep digits and separators only, got %q", dealer.MobileNumber)
	}
	if dealer.Notes != "prefers cash" {
		t.Fatalf("notes should be sanitized, got %q", dealer.Notes)
	}
}

func TestListDealersSearchesAcrossFields(t *testing.T) {
	svc := NewDealerService(memory.NewDealerStore(), events.NewBus())
	ctx := context.Background()

	seeds := []DealerInput{
		{DealerName: "Kumar Textiles", ShopName: "Kumar & Sons", MobileNumber: "9876543210", Address: "Surat"},
		{DealerName: "Mehta Fabrics", ShopName: "Mehta Mills", MobileNumber: "9123456780", Address: "Mumbai"},
	}
	for i := range seeds {
		if _, err := svc.CreateDealer(ctx, &seeds[i]); err != nil {
			t.Fatalf("seed dealer: %v", err)
		}
	}

	result, err := svc.ListDealers(ctx, pagination.DefaultPagination(), "surat")
	if err != nil {
		t.Fatalf("ListDealers: %v", err)
	}
	if len(result.Items) != 1 || result.Items[0].DealerName != "Kumar Textiles" {
		t.Fatalf("address search should find Kumar Textiles, got %+v", result.Items)
	}

	result, err = svc.ListDealers(ctx, pagination.DefaultPagination(), "")
	if err != nil {
		t.Fatalf("ListDealers: %v", err)
	}
	if result.Pagination.Total != 2 {
		t.Fatalf("expected 2 dealers total, got %d", result.Pagination.Total)
	}
}

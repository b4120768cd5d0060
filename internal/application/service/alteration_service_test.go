package service

import (
	"context"
	"testing"

	"github.com/Prathamesh404NotFound/Billing-System/internal/domain/repository"
	"github.com/Prathamesh404NotFound/Billing-System/internal/events"
	"github.com/Prathamesh404NotFound/Billing-System/internal/infrastructure/repository/memory"
	"github.com/Prathamesh404NotFound/Billing-System/pkg/pagination"
)

func TestAlterationLifecycle(t *testing.T) {
	svc := NewAlterationService(memory.NewAlterationStore(), events.NewBus())
	ctx := context.Background()

	if _, err := svc.CreateAlteration(ctx, &AlterationInput{CustomerName: "Ravi"}); err == nil {
		t.Fatal("missing garment/measurements must be rejected")
	}

	created, err := svc.CreateAlteration(ctx, &AlterationInput{
		CustomerName:       "Ravi",
		ContactNumber:      "9876543210",
		GarmentDescription: "Blue blazer",
		Measurements:       "Sleeve -2cm",
	})
	if err != nil {
		t.Fatalf("CreateAlteration: %v", err)
	}
	if created.ID == "" || created.IsCompleted {
		t.Fatalf("new alteration should have an ID and be pending, got %+v", created)
	}

	toggled, err := svc.ToggleComplete(ctx, created.ID)
	if err != nil {
		t.Fatalf("ToggleComplete: %v", err)
	}
	if !toggled.IsCompleted {
		t.Fatal("toggle should mark the job complete")
	}

	completed := true
	result, err := svc.ListAlterations(ctx, &repository.AlterationFilterParams{
		Pagination: pagination.DefaultPagination(),
		Completed:  &completed,
	})
	if err != nil {
		t.Fatalf("ListAlterations: %v", err)
	}
	if len(result.Items) != 1 {
		t.Fatalf("expected the completed job in the filtered list, got %d", len(result.Items))
	}

	if err := svc.DeleteAlteration(ctx, created.ID); err != nil {
		t.Fatalf("DeleteAlteration: %v", err)
	}
	if _, err := svc.GetAlteration(ctx, created.ID); err == nil {
		t.Fatal("deleted alteration should not be found")
	}
}

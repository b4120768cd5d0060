package service

import (
	"context"
	"testing"
	"time"

	"github.com/Prathamesh404NotFound/Billing-System/internal/cache"
	"github.com/Prathamesh404NotFound/Billing-System/internal/domain/entity"
	"github.com/Prathamesh404NotFound/Billing-System/internal/infrastructure/repository/memory"
	"github.com/sirupsen/logrus"
)

func TestDashboardStats(t *testing.T) {
	ctx := context.Background()
	items := memory.NewItemStore()
	bills := memory.NewBillStore()
	analytics := memory.NewAnalyticsStore(bills)
	svc := NewDashboardService(analytics, items, cache.Noop{}, time.Minute, logrus.New())

	if err := items.Create(ctx, &entity.Item{ID: "s1", Name: "Formal White Shirt"}); err != nil {
		t.Fatalf("seed item: %v", err)
	}

	now := time.Now()
	yesterday := now.AddDate(0, 0, -1)
	for i, bill := range []entity.Bill{
		{ID: "BILL-1", Date: yesterday, Total: 1000},
		{ID: "BILL-2", Date: now, Total: 500},
		{ID: "BILL-3", Date: now, Total: 250},
	} {
		if err := bills.Create(ctx, &bill); err != nil {
			t.Fatalf("seed bill %d: %v", i, err)
		}
	}

	stats, err := svc.GetStats(ctx)
	if err != nil {
		t.Fatalf("GetStats: %v", err)
	}

	if stats.TotalBills != 3 {
		t.Fatalf("expected 3 bills, got %d", stats.TotalBills)
	}
	if stats.TotalItems != 1 {
		t.Fatalf("expected 1 item, got %d", stats.TotalItems)
	}
	if stats.TotalRevenue != 1750 {
		t.Fatalf("expected revenue 1750, got %v", stats.TotalRevenue)
	}
	if stats.TodaySales != 750 {
		t.Fatalf("expected today's sales 750, got %v", stats.TodaySales)
	}
	if len(stats.DailySales) != 2 {
		t.Fatalf("expected 2 daily points, got %d", len(stats.DailySales))
	}
	if stats.DailySales[0].Date >= stats.DailySales[1].Date {
		t.Fatal("daily points should be ordered oldest first")
	}
}

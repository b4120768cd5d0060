package repository

import (
	"context"
	"time"
)

// DailySalesPoint is one day of aggregated bill totals.
type DailySalesPoint struct {
	Date  string  `json:"date"`
	Sales float64 `json:"sales"`
}

// AnalyticsRepository aggregates saved bills and catalog counts for the
// dashboard.
type AnalyticsRepository interface {
	CountBills(ctx context.Context) (int64, error)
	SumRevenue(ctx context.Context) (float64, error)
	// SumRevenueSince sums bill totals for bills dated at or after the given
	// instant.
	SumRevenueSince(ctx context.Context, since time.Time) (float64, error)
	// DailySales returns one point per day for the last n days, oldest first.
	// Days with no bills are omitted.
	DailySales(ctx context.Context, days int) ([]DailySalesPoint, error)
}

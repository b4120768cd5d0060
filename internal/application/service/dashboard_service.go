package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Prathamesh404NotFound/Billing-System/internal/cache"
	"github.com/Prathamesh404NotFound/Billing-System/internal/domain/repository"
	"github.com/sirupsen/logrus"
)

const dashboardCacheKey = "dashboard:stats"

// DashboardService aggregates shop-wide stats for the dashboard view.
// Results are cached briefly; the cache is best-effort and failures fall
// through to the database.
type DashboardService struct {
	analyticsRepo repository.AnalyticsRepository
	itemRepo      repository.ItemRepository
	cache         cache.Cache
	cacheTTL      time.Duration
	logger        *logrus.Logger
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	analyticsRepo repository.AnalyticsRepository,
	itemRepo repository.ItemRepository,
	c cache.Cache,
	cacheTTL time.Duration,
	logger *logrus.Logger,
) *DashboardService {
	if cacheTTL <= 0 {
		cacheTTL = time.Minute
	}
	return &DashboardService{
		analyticsRepo: analyticsRepo,
		itemRepo:      itemRepo,
		cache:         c,
		cacheTTL:      cacheTTL,
		logger:        logger,
	}
}

// DashboardStats is the aggregate snapshot shown on the dashboard.
type DashboardStats struct {
	TotalBills   int64                        `json:"total_bills"`
	TotalItems   int64                        `json:"total_items"`
	TotalRevenue float64                      `json:"total_revenue"`
	TodaySales   float64                      `json:"today_sales"`
	DailySales   []repository.DailySalesPoint `json:"daily_sales"`
}

// GetStats returns dashboard aggregates, from cache when fresh.
func (s *DashboardService) GetStats(ctx context.Context) (*DashboardStats, error) {
	if raw, ok, err := s.cache.Get(ctx, dashboardCacheKey); err == nil && ok {
		var stats DashboardStats
		if err := json.Unmarshal(raw, &stats); err == nil {
			return &stats, nil
		}
	} else if err != nil {
		s.logger.WithError(err).Warn("dashboard cache read failed")
	}

	stats := &DashboardStats{}

	var err error
	if stats.TotalBills, err = s.analyticsRepo.CountBills(ctx); err != nil {
		return nil, err
	}
	if stats.TotalItems, err = s.itemRepo.CountItems(ctx); err != nil {
		return nil, err
	}
	if stats.TotalRevenue, err = s.analyticsRepo.SumRevenue(ctx); err != nil {
		return nil, err
	}

	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if stats.TodaySales, err = s.analyticsRepo.SumRevenueSince(ctx, startOfDay); err != nil {
		return nil, err
	}
	if stats.DailySales, err = s.analyticsRepo.DailySales(ctx, 7); err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(stats); err == nil {
		if err := s.cache.Set(ctx, dashboardCacheKey, raw, s.cacheTTL); err != nil {
			s.logger.WithError(err).Warn("dashboard cache write failed")
		}
	}

	return stats, nil
}

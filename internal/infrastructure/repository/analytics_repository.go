package repository

import (
	"context"
	"time"

	"github.com/Prathamesh404NotFound/Billing-System/internal/domain/entity"
	domainRepo "github.com/Prathamesh404NotFound/Billing-System/internal/domain/repository"
	"gorm.io/gorm"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) domainRepo.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) CountBills(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&entity.Bill{}).Count(&total).Error
	return total, err
}

func (r *analyticsRepository) SumRevenue(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&entity.Bill{}).
		Select("COALESCE(SUM(total), 0)").
		Scan(&total).Error
	return total, err
}

func (r *analyticsRepository) SumRevenueSince(ctx context.Context, since time.Time) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&entity.Bill{}).
		Select("COALESCE(SUM(total), 0)").
		Where("date >= ?", since).
		Scan(&total).Error
	return total, err
}

// DailySales aggregates bill totals per calendar day for the trailing window,
// oldest first. Days with no bills produce no row.
func (r *analyticsRepository) DailySales(ctx context.Context, days int) ([]domainRepo.DailySalesPoint, error) {
	if days <= 0 {
		days = 7
	}
	since := time.Now().AddDate(0, 0, -days+1).Truncate(24 * time.Hour)

	var points []domainRepo.DailySalesPoint
	err := r.db.WithContext(ctx).Model(&entity.Bill{}).
		Select("TO_CHAR(date::date, 'YYYY-MM-DD') AS date, SUM(total) AS sales").
		Where("date >= ?", since).
		Group("date::date").
		Order("date::date ASC").
		Scan(&points).Error
	return points, err
}

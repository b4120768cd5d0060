package repository

import (
	"context"
	"errors"

	"github.com/Prathamesh404NotFound/Billing-System/internal/domain/entity"
	domainRepo "github.com/Prathamesh404NotFound/Billing-System/internal/domain/repository"
	"github.com/Prathamesh404NotFound/Billing-System/pkg/pagination"
	"gorm.io/gorm"
)

type dealerRepository struct {
	db *gorm.DB
}

// NewDealerRepository creates a new dealer repository
func NewDealerRepository(db *gorm.DB) domainRepo.DealerRepository {
	return &dealerRepository{db: db}
}

func (r *dealerRepository) Create(ctx context.Context, dealer *entity.Dealer) error {
	return r.db.WithContext(ctx).Create(dealer).Error
}

func (r *dealerRepository) GetByID(ctx context.Context, id string) (*entity.Dealer, error) {
	var dealer entity.Dealer
	err := r.db.WithContext(ctx).First(&dealer, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &dealer, err
}

func (r *dealerRepository) GetByMobile(ctx context.Context, mobileNumber string) (*entity.Dealer, error) {
	var dealer entity.Dealer
	err := r.db.WithContext(ctx).First(&dealer, "mobile_number = ?", mobileNumber).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &dealer, err
}

func (r *dealerRepository) GetByName(ctx context.Context, dealerName string) (*entity.Dealer, error) {
	var dealer entity.Dealer
	err := r.db.WithContext(ctx).First(&dealer, "dealer_name ILIKE ?", dealerName).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &dealer, err
}

func (r *dealerRepository) Update(ctx context.Context, dealer *entity.Dealer) error {
	return r.db.WithContext(ctx).Save(dealer).Error
}

func (r *dealerRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&entity.Dealer{}, "id = ?", id).Error
}

func (r *dealerRepository) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Dealer, int64, error) {
	var dealers []entity.Dealer
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Dealer{})

	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where(
			"dealer_name ILIKE ? OR shop_name ILIKE ? OR mobile_number ILIKE ? OR address ILIKE ? OR notes ILIKE ?",
			pattern, pattern, pattern, pattern, pattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("dealer_name ASC").
		Find(&dealers).Error

	return dealers, total, err
}

type purchaseRepository struct {
	db *gorm.DB
}

// NewPurchaseRepository creates a new dealer-purchase repository
func NewPurchaseRepository(db *gorm.DB) domainRepo.PurchaseRepository {
	return &purchaseRepository{db: db}
}

func (r *purchaseRepository) Create(ctx context.Context, purchase *entity.DealerPurchase) error {
	return r.db.WithContext(ctx).Create(purchase).Error
}

func (r *purchaseRepository) GetByID(ctx context.Context, id string) (*entity.DealerPurchase, error) {
	var purchase entity.DealerPurchase
	err := r.db.WithContext(ctx).
		Preload("Items").
		First(&purchase, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &purchase, err
}

func (r *purchaseRepository) List(ctx context.Context, params *domainRepo.PurchaseFilterParams) ([]entity.DealerPurchase, int64, error) {
	var purchases []entity.DealerPurchase
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.DealerPurchase{})

	if params.DealerID != "" {
		query = query.Where("dealer_id = ?", params.DealerID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Items").
		Order("purchase_date DESC, created_at DESC").
		Find(&purchases).Error

	return purchases, total, err
}

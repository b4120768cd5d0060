package repository

import (
	"context"
	"errors"

	"github.com/Prathamesh404NotFound/Billing-System/internal/domain/entity"
	domainRepo "github.com/Prathamesh404NotFound/Billing-System/internal/domain/repository"
	"gorm.io/gorm"
)

type alterationRepository struct {
	db *gorm.DB
}

// NewAlterationRepository creates a new alteration repository
func NewAlterationRepository(db *gorm.DB) domainRepo.AlterationRepository {
	return &alterationRepository{db: db}
}

func (r *alterationRepository) Create(ctx context.Context, alteration *entity.Alteration) error {
	return r.db.WithContext(ctx).Create(alteration).Error
}

func (r *alterationRepository) GetByID(ctx context.Context, id string) (*entity.Alteration, error) {
	var alteration entity.Alteration
	err := r.db.WithContext(ctx).First(&alteration, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &alteration, err
}

func (r *alterationRepository) Update(ctx context.Context, alteration *entity.Alteration) error {
	return r.db.WithContext(ctx).Save(alteration).Error
}

func (r *alterationRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&entity.Alteration{}, "id = ?", id).Error
}

func (r *alterationRepository) List(ctx context.Context, params *domainRepo.AlterationFilterParams) ([]entity.Alteration, int64, error) {
	var alterations []entity.Alteration
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Alteration{})

	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		query = query.Where("customer_name ILIKE ? OR garment_description ILIKE ?", pattern, pattern)
	}

	if params.Completed != nil {
		query = query.Where("is_completed = ?", *params.Completed)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("due_date ASC NULLS LAST, created_at DESC").
		Find(&alterations).Error

	return alterations, total, err
}

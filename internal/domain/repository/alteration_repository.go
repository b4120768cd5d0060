package repository

import (
	"context"

	"github.com/Prathamesh404NotFound/Billing-System/internal/domain/entity"
	"github.com/Prathamesh404NotFound/Billing-System/pkg/pagination"
)

// AlterationRepository defines the interface for alteration data operations
type AlterationRepository interface {
	Create(ctx context.Context, alteration *entity.Alteration) error
	GetByID(ctx context.Context, id string) (*entity.Alteration, error)
	Update(ctx context.Context, alteration *entity.Alteration) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, params *AlterationFilterParams) ([]entity.Alteration, int64, error)
}

// AlterationFilterParams contains filtering parameters for alteration queries
type AlterationFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	// Completed filters by completion state when set.
	Completed *bool
}

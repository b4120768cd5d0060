package repository

import (
	"context"
	"errors"

	"github.com/Prathamesh404NotFound/Billing-System/internal/domain/entity"
	"github.com/Prathamesh404NotFound/Billing-System/pkg/pagination"
)

// ErrVariantNotFound is returned by AdjustVariantStock when the variant does
// not exist.
var ErrVariantNotFound = errors.New("item variant not found")

// ItemRepository defines the interface for catalog item data operations
type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	GetByID(ctx context.Context, id string) (*entity.Item, error)
	// GetByIDs retrieves multiple items with their variants in a single query
	GetByIDs(ctx context.Context, ids []string) ([]entity.Item, error)
	// GetAll retrieves the whole catalog with variants. The catalog of a
	// single shop is small; the fuzzy matcher scans it linearly.
	GetAll(ctx context.Context) ([]entity.Item, error)
	Update(ctx context.Context, item *entity.Item) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, params *ItemFilterParams) ([]entity.Item, int64, error)
	// AdjustVariantStock atomically applies delta to a variant's stock and
	// returns the resulting count. The new stock may be negative; callers
	// decide whether that warrants a warning.
	AdjustVariantStock(ctx context.Context, variantID string, delta int) (int, error)
	CountItems(ctx context.Context) (int64, error)
}

// ItemFilterParams contains filtering parameters for item queries
type ItemFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	CategoryID string
}

// CategoryRepository defines the interface for category data operations
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	// Delete removes the category only. Items referencing it keep their stale
	// category ID; orphaning is tolerated.
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]entity.Category, error)
}

package repository

import (
	"context"

	"github.com/Prathamesh404NotFound/Billing-System/internal/domain/entity"
	"github.com/Prathamesh404NotFound/Billing-System/pkg/pagination"
)

// DealerRepository defines the interface for dealer data operations
type DealerRepository interface {
	Create(ctx context.Context, dealer *entity.Dealer) error
	GetByID(ctx context.Context, id string) (*entity.Dealer, error)
	GetByMobile(ctx context.Context, mobileNumber string) (*entity.Dealer, error)
	GetByName(ctx context.Context, dealerName string) (*entity.Dealer, error)
	Update(ctx context.Context, dealer *entity.Dealer) error
	Delete(ctx context.Context, id string) error
	// List searches across dealer name, shop name, mobile number, address and
	// notes when search is non-empty.
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Dealer, int64, error)
}

// PurchaseRepository defines the interface for dealer-purchase data
// operations. Purchases are append-only records.
type PurchaseRepository interface {
	Create(ctx context.Context, purchase *entity.DealerPurchase) error
	GetByID(ctx context.Context, id string) (*entity.DealerPurchase, error)
	List(ctx context.Context, params *PurchaseFilterParams) ([]entity.DealerPurchase, int64, error)
}

// PurchaseFilterParams contains filtering parameters for purchase queries
type PurchaseFilterParams struct {
	Pagination *pagination.PaginationParams
	DealerID   string
}

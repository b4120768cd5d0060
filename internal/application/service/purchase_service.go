package service

import (
	"context"
	"time"

	"github.com/Prathamesh404NotFound/Billing-System/internal/domain/entity"
	"github.com/Prathamesh404NotFound/Billing-System/internal/domain/repository"
	"github.com/Prathamesh404NotFound/Billing-System/internal/events"
	"github.com/Prathamesh404NotFound/Billing-System/pkg/apperror"
	"github.com/Prathamesh404NotFound/Billing-System/pkg/pagination"
	"github.com/Prathamesh404NotFound/Billing-System/pkg/sanitize"
	"github.com/sirupsen/logrus"
)

// PurchaseService records dealer purchases and drives the matching stock
// increments. Purchase records are append-only.
type PurchaseService struct {
	purchaseRepo repository.PurchaseRepository
	dealerRepo   repository.DealerRepository
	itemRepo     repository.ItemRepository
	inventory    *InventoryService
	bus          *events.Bus
	logger       *logrus.Logger
}

// NewPurchaseService creates a new purchase service
func NewPurchaseService(
	purchaseRepo repository.PurchaseRepository,
	dealerRepo repository.DealerRepository,
	itemRepo repository.ItemRepository,
	inventory *InventoryService,
	bus *events.Bus,
	logger *logrus.Logger,
) *PurchaseService {
	return &PurchaseService{
		purchaseRepo: purchaseRepo,
		dealerRepo:   dealerRepo,
		itemRepo:     itemRepo,
		inventory:    inventory,
		bus:          bus,
		logger:       logger,
	}
}

// PurchaseLineInput is one line of a purchase entry
type PurchaseLineInput struct {
	ItemID    string
	VariantID string
	Size      string
	Quantity  int
	CostPrice float64
}

// CreatePurchaseInput is a complete purchase entry
type CreatePurchaseInput struct {
	DealerID     string
	PurchaseDate time.Time
	Notes        string
	Items        []PurchaseLineInput
}

// CreatePurchase validates lines against the catalog, persists the purchase,
// then increments stock per line. Like bill saves, the record is durable
// before any stock moves, and stock failures after that are tolerated.
func (s *PurchaseService) CreatePurchase(ctx context.Context, input *CreatePurchaseInput) (*entity.DealerPurchase, error) {
	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("Purchase needs at least one line")
	}

	dealer, err := s.dealerRepo.GetByID(ctx, input.DealerID)
	if err != nil {
		return nil, err
	}
	if dealer == nil {
		return nil, apperror.NewNotFoundError("Dealer")
	}

	itemIDs := make([]string, 0, len(input.Items))
	for _, line := range input.Items {
		itemIDs = append(itemIDs, line.ItemID)
	}
	items, err := s.itemRepo.GetByIDs(ctx, itemIDs)
	if err != nil {
		return nil, err
	}
	itemMap := make(map[string]*entity.Item, len(items))
	for i := range items {
		itemMap[items[i].ID] = &items[i]
	}

	now := time.Now()
	purchaseDate := input.PurchaseDate
	if purchaseDate.IsZero() {
		purchaseDate = now
	}

	purchase := &entity.DealerPurchase{
		ID:           entity.NewPurchaseID(now),
		DealerID:     dealer.ID,
		DealerName:   dealer.DealerName,
		PurchaseDate: purchaseDate,
		Notes:        sanitize.String(input.Notes),
	}

	for _, line := range input.Items {
		if line.Quantity < 1 || line.CostPrice <= 0 {
			return nil, apperror.NewBadRequestError("Each line needs a positive quantity and cost price")
		}
		item, exists := itemMap[line.ItemID]
		if !exists {
			return nil, apperror.NewNotFoundError("Item " + line.ItemID)
		}
		variant := item.Variant(line.VariantID)
		if variant == nil {
			return nil, apperror.NewBadRequestError("Variant does not belong to item " + line.ItemID)
		}

		size := line.Size
		if size == "" {
			size = variant.Size
		}
		purchase.Items = append(purchase.Items, entity.PurchaseItem{
			ItemID:    item.ID,
			ItemName:  item.Name,
			VariantID: variant.ID,
			Size:      size,
			Quantity:  line.Quantity,
			CostPrice: line.CostPrice,
			Subtotal:  float64(line.Quantity) * line.CostPrice,
		})
		purchase.TotalQuantity += line.Quantity
		purchase.TotalValue += float64(line.Quantity) * line.CostPrice
	}

	if err := s.purchaseRepo.Create(ctx, purchase); err != nil {
		return nil, err
	}

	s.inventory.ApplyPurchase(ctx, purchase)

	s.bus.Publish(events.Event{Topic: events.TopicPurchases, Action: "created", EntityID: purchase.ID, At: time.Now()})
	s.logger.WithFields(logrus.Fields{
		"purchase_id": purchase.ID,
		"dealer_id":   purchase.DealerID,
		"lines":       len(purchase.Items),
		"quantity":    purchase.TotalQuantity,
	}).Info("dealer purchase recorded")

	return purchase, nil
}

// GetPurchase retrieves a purchase by ID
func (s *PurchaseService) GetPurchase(ctx context.Context, id string) (*entity.DealerPurchase, error) {
	purchase, err := s.purchaseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, apperror.NewNotFoundError("Purchase")
	}
	return purchase, nil
}

// ListPurchases lists purchases, optionally filtered by dealer
func (s *PurchaseService) ListPurchases(ctx context.Context, params *repository.PurchaseFilterParams) (*pagination.PaginatedResult[entity.DealerPurchase], error) {
	purchases, total, err := s.purchaseRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(purchases, pag), nil
}

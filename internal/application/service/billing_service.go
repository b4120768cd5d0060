package service

import (
	"context"
	"sync"
	"time"

	"github.com/Prathamesh404NotFound/Billing-System/internal/domain/entity"
	"github.com/Prathamesh404NotFound/Billing-System/internal/domain/enum"
	"github.com/Prathamesh404NotFound/Billing-System/internal/domain/repository"
	"github.com/Prathamesh404NotFound/Billing-System/internal/events"
	"github.com/Prathamesh404NotFound/Billing-System/pkg/apperror"
	"github.com/Prathamesh404NotFound/Billing-System/pkg/pagination"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// BillingService maintains one draft bill per register and turns finished
// drafts into immutable bill records. Drafts live only in memory; a draft is
// never persisted until SaveBill.
type BillingService struct {
	billRepo     repository.BillRepository
	itemRepo     repository.ItemRepository
	settingsRepo repository.SettingsRepository
	inventory    *InventoryService
	bus          *events.Bus
	logger       *logrus.Logger

	mu     sync.Mutex
	drafts map[string]*entity.Bill
}

// NewBillingService creates a new billing service
func NewBillingService(
	billRepo repository.BillRepository,
	itemRepo repository.ItemRepository,
	settingsRepo repository.SettingsRepository,
	inventory *InventoryService,
	bus *events.Bus,
	logger *logrus.Logger,
) *BillingService {
	return &BillingService{
		billRepo:     billRepo,
		itemRepo:     itemRepo,
		settingsRepo: settingsRepo,
		inventory:    inventory,
		bus:          bus,
		logger:       logger,
		drafts:       make(map[string]*entity.Bill),
	}
}

// CreateNewBill replaces the register's draft with a fresh one carrying the
// shop's default discount. Never fails.
func (s *BillingService) CreateNewBill(ctx context.Context, registerID string) *entity.Bill {
	defaultDiscount := 0.0
	if settings, err := s.settingsRepo.Get(ctx); err == nil && settings != nil {
		defaultDiscount = settings.DefaultDiscount
	}

	now := time.Now()
	draft := &entity.Bill{
		ID:           entity.NewBillID(now),
		Date:         now,
		Items:        []entity.BillItem{},
		Subtotal:     0,
		Discount:     defaultDiscount,
		DiscountType: enum.DiscountTypeFixed,
		Total:        0,
		PaymentMode:  enum.PaymentModeCash,
	}
	recomputeTotals(draft)

	s.mu.Lock()
	s.drafts[registerID] = draft
	s.mu.Unlock()

	snapshot := *draft
	return &snapshot
}

// GetDraft returns the register's current draft, or nil.
func (s *BillingService) GetDraft(registerID string) *entity.Bill {
	s.mu.Lock()
	defer s.mu.Unlock()
	draft, ok := s.drafts[registerID]
	if !ok {
		return nil
	}
	snapshot := *draft
	return &snapshot
}

// AddItemToBill appends a line to the draft, merging with an existing line
// when variant and price both match. Price 0 means "use the variant's catalog
// price".
func (s *BillingService) AddItemToBill(ctx context.Context, registerID, itemID, variantID string, quantity int, price float64) (*entity.Bill, error) {
	if quantity < 1 {
		return nil, apperror.NewBadRequestError("Quantity must be at least 1")
	}

	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Item")
	}
	variant := item.Variant(variantID)
	if variant == nil {
		return nil, apperror.NewBadRequestError("Variant does not belong to this item")
	}

	if price == 0 {
		price = variant.Price
	}
	if price <= 0 {
		return nil, apperror.NewBadRequestError("Price must be greater than zero")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	draft, ok := s.drafts[registerID]
	if !ok {
		return nil, apperror.NewBadRequestError("No draft bill; create one first")
	}

	merged := false
	for i := range draft.Items {
		if draft.Items[i].VariantID == variantID && draft.Items[i].Price == price {
			draft.Items[i].Quantity += quantity
			draft.Items[i].Subtotal = float64(draft.Items[i].Quantity) * price
			merged = true
			break
		}
	}
	if !merged {
		draft.Items = append(draft.Items, entity.BillItem{
			ItemID:    item.ID,
			ItemName:  item.Name,
			Price:     price,
			Quantity:  quantity,
			Subtotal:  float64(quantity) * price,
			VariantID: variantID,
			Size:      variant.Size,
		})
	}

	recomputeTotals(draft)
	snapshot := *draft
	return &snapshot, nil
}

// RemoveItemFromBill deletes every line matching the variant. Removing an
// absent variant is a no-op.
func (s *BillingService) RemoveItemFromBill(registerID, variantID string) (*entity.Bill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft, ok := s.drafts[registerID]
	if !ok {
		return nil, apperror.NewBadRequestError("No draft bill; create one first")
	}

	kept := draft.Items[:0]
	for _, line := range draft.Items {
		if line.VariantID != variantID {
			kept = append(kept, line)
		}
	}
	draft.Items = kept

	recomputeTotals(draft)
	snapshot := *draft
	return &snapshot, nil
}

// UpdateBillItem sets a line's quantity. Quantity <= 0 and missing lines are
// silently ignored: the draft is returned unchanged.
func (s *BillingService) UpdateBillItem(registerID, variantID string, quantity int) (*entity.Bill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft, ok := s.drafts[registerID]
	if !ok {
		return nil, apperror.NewBadRequestError("No draft bill; create one first")
	}

	if quantity > 0 {
		for i := range draft.Items {
			if draft.Items[i].VariantID == variantID {
				draft.Items[i].Quantity = quantity
				draft.Items[i].Subtotal = float64(quantity) * draft.Items[i].Price
				break
			}
		}
		recomputeTotals(draft)
	}

	snapshot := *draft
	return &snapshot, nil
}

// SetDiscount replaces the draft's discount value and type atomically. The
// raw value is stored; only the derived total changes with the type.
func (s *BillingService) SetDiscount(registerID string, value float64, discountType enum.DiscountType) (*entity.Bill, error) {
	if value < 0 {
		return nil, apperror.NewBadRequestError("Discount cannot be negative")
	}
	if !discountType.IsValid() {
		return nil, apperror.NewBadRequestError("Unknown discount type")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	draft, ok := s.drafts[registerID]
	if !ok {
		return nil, apperror.NewBadRequestError("No draft bill; create one first")
	}

	draft.Discount = value
	draft.DiscountType = discountType
	recomputeTotals(draft)

	snapshot := *draft
	return &snapshot, nil
}

// SaveBill persists the draft as an immutable record, applies stock
// decrements for each line, and replaces the draft with a fresh one. The bill
// write must succeed before any stock is touched; stock failures after that
// point are tolerated. Saving an empty or absent draft changes nothing.
func (s *BillingService) SaveBill(ctx context.Context, registerID string, paymentMode enum.PaymentMode, customerName string) (*entity.Bill, error) {
	if !paymentMode.IsValid() {
		return nil, apperror.NewBadRequestError("Unknown payment mode")
	}

	s.mu.Lock()
	draft, ok := s.drafts[registerID]
	if !ok || len(draft.Items) == 0 {
		s.mu.Unlock()
		return nil, apperror.NewBadRequestError("Draft bill is empty")
	}

	if customerName == "" {
		customerName = "Walk-in Customer"
	}
	draft.PaymentMode = paymentMode
	draft.CustomerName = customerName
	bill := *draft
	s.mu.Unlock()

	// Abort before any stock mutation if the bill itself cannot be saved.
	// The draft stays intact so the cashier can retry.
	if err := s.billRepo.Create(ctx, &bill); err != nil {
		return nil, err
	}

	s.inventory.ApplySale(ctx, &bill)

	s.bus.Publish(events.Event{
		Topic:    events.TopicBills,
		Action:   "created",
		EntityID: bill.ID,
		At:       time.Now(),
	})

	s.logger.WithFields(logrus.Fields{
		"bill_id":  bill.ID,
		"register": registerID,
		"total":    bill.Total,
		"lines":    len(bill.Items),
	}).Info("bill saved")

	s.CreateNewBill(ctx, registerID)
	return &bill, nil
}

// GetBill returns a saved bill by its ID
func (s *BillingService) GetBill(ctx context.Context, id string) (*entity.Bill, error) {
	bill, err := s.billRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, apperror.NewNotFoundError("Bill not found")
	}
	return bill, nil
}

// ListBills returns saved bills, newest first, optionally bounded by date
func (s *BillingService) ListBills(ctx context.Context, params *repository.BillFilterParams) (*pagination.PaginatedResult[entity.Bill], error) {
	bills, total, err := s.billRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(bills, pag), nil
}

// recomputeTotals rederives subtotal and total from the current lines and
// discount. The discount value itself is stored raw, so recomputation is
// idempotent. Round-half-up lands on the final total only; the effective
// discount is used unrounded.
func recomputeTotals(bill *entity.Bill) {
	subtotal := decimal.Zero
	for _, line := range bill.Items {
		subtotal = subtotal.Add(decimal.NewFromFloat(line.Subtotal))
	}

	discount := decimal.NewFromFloat(bill.Discount)
	var effective decimal.Decimal
	if bill.DiscountType == enum.DiscountTypePercentage {
		effective = subtotal.Mul(discount).Div(decimal.NewFromInt(100))
	} else {
		effective = discount
	}

	bill.Subtotal, _ = subtotal.Float64()
	bill.Total, _ = subtotal.Sub(effective).Round(0).Float64()
}

package service

import (
	"context"

	"github.com/Prathamesh404NotFound/Billing-System/internal/domain/entity"
	"github.com/Prathamesh404NotFound/Billing-System/internal/domain/repository"
	"github.com/sirupsen/logrus"
)

// InventoryService keeps per-variant stock consistent with sale and purchase
// events. Stock is advisory: a sale is never blocked by a stale count.
type InventoryService struct {
	itemRepo repository.ItemRepository
	logger   *logrus.Logger
}

// NewInventoryService creates a new inventory service
func NewInventoryService(itemRepo repository.ItemRepository, logger *logrus.Logger) *InventoryService {
	return &InventoryService{itemRepo: itemRepo, logger: logger}
}

// ApplySale decrements stock for every line of a saved bill, one variant at a
// time. The bill is already durable when this runs, so per-line failures are
// logged and tolerated rather than rolled back. Negative resulting stock is
// allowed with a warning.
func (s *InventoryService) ApplySale(ctx context.Context, bill *entity.Bill) {
	for _, line := range bill.Items {
		newStock, err := s.itemRepo.AdjustVariantStock(ctx, line.VariantID, -line.Quantity)
		if err != nil {
			s.logger.WithFields(logrus.Fields{
				"bill_id":    bill.ID,
				"variant_id": line.VariantID,
				"quantity":   line.Quantity,
			}).WithError(err).Error("stock decrement failed; bill is saved but this variant is unadjusted")
			continue
		}
		if newStock < 0 {
			s.logger.WithFields(logrus.Fields{
				"bill_id":    bill.ID,
				"variant_id": line.VariantID,
				"stock":      newStock,
			}).Warn("variant stock went negative after sale")
		}
	}
}

// ApplyPurchase increments stock for every line of a saved dealer purchase.
// Same tolerance rules as ApplySale: the purchase record is already durable.
func (s *InventoryService) ApplyPurchase(ctx context.Context, purchase *entity.DealerPurchase) {
	for _, line := range purchase.Items {
		if _, err := s.itemRepo.AdjustVariantStock(ctx, line.VariantID, line.Quantity); err != nil {
			s.logger.WithFields(logrus.Fields{
				"purchase_id": purchase.ID,
				"variant_id":  line.VariantID,
				"quantity":    line.Quantity,
			}).WithError(err).Error("stock increment failed; purchase is saved but this variant is unadjusted")
		}
	}
}

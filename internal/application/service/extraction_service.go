package service

import (
	"context"

	"github.com/Prathamesh404NotFound/Billing-System/internal/domain/entity"
	"github.com/Prathamesh404NotFound/Billing-System/internal/domain/repository"
	"github.com/Prathamesh404NotFound/Billing-System/pkg/apperror"
	"github.com/Prathamesh404NotFound/Billing-System/pkg/fuzzy"
	"github.com/Prathamesh404NotFound/Billing-System/pkg/gemini"
	"github.com/Prathamesh404NotFound/Billing-System/pkg/sanitize"
	"github.com/sirupsen/logrus"
)

// BillReader extracts structured purchase data from a bill image. Satisfied
// by the gemini client; tests substitute their own.
type BillReader interface {
	ExtractBill(ctx context.Context, image []byte, mimeType string) (*gemini.ExtractedBill, error)
}

// ExtractionService turns a photographed dealer bill into purchase lines
// resolved against the catalog. Extractor output is untrusted: every field is
// sanitized and item names are fuzzy-matched rather than taken at face value.
type ExtractionService struct {
	reader     BillReader
	itemRepo   repository.ItemRepository
	dealerRepo repository.DealerRepository
	logger     *logrus.Logger
}

// NewExtractionService creates a new extraction service
func NewExtractionService(reader BillReader, itemRepo repository.ItemRepository, dealerRepo repository.DealerRepository, logger *logrus.Logger) *ExtractionService {
	return &ExtractionService{reader: reader, itemRepo: itemRepo, dealerRepo: dealerRepo, logger: logger}
}

// MatchedLine is an extracted line resolved to a catalog variant.
type MatchedLine struct {
	ItemID     string  `json:"item_id"`
	ItemName   string  `json:"item_name"`
	VariantID  string  `json:"variant_id"`
	Size       string  `json:"size"`
	Quantity   int     `json:"quantity"`
	CostPrice  float64 `json:"cost_price"`
	MatchScore float64 `json:"match_score"`
}

// UnmatchedLine is an extracted line no catalog item qualified for. The
// caller decides whether to create a new item or pick one manually.
type UnmatchedLine struct {
	ItemName  string  `json:"item_name"`
	Size      string  `json:"size,omitempty"`
	Quantity  int     `json:"quantity"`
	CostPrice float64 `json:"cost_price"`
}

// ExtractionResult is the outcome of reading one bill image.
type ExtractionResult struct {
	DealerID    string          `json:"dealer_id,omitempty"`
	DealerName  string          `json:"dealer_name,omitempty"`
	TotalAmount float64         `json:"total_amount,omitempty"`
	Matched     []MatchedLine   `json:"matched"`
	Unmatched   []UnmatchedLine `json:"unmatched"`
}

// ExtractPurchaseBill runs the extractor on the image and resolves each line
// against the catalog. Variant resolution prefers the extracted size and
// falls back to the item's first variant. Below-threshold matches are not
// errors; they land in the unmatched queue.
func (s *ExtractionService) ExtractPurchaseBill(ctx context.Context, image []byte, mimeType string) (*ExtractionResult, error) {
	if len(image) == 0 {
		return nil, apperror.NewBadRequestError("Bill image is required")
	}

	extracted, err := s.reader.ExtractBill(ctx, image, mimeType)
	if err != nil {
		return nil, err
	}

	items, err := s.itemRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	candidates := make([]fuzzy.Candidate, len(items))
	itemMap := make(map[string]*entity.Item, len(items))
	for i := range items {
		candidates[i] = fuzzy.Candidate{ID: items[i].ID, Name: items[i].Name}
		itemMap[items[i].ID] = &items[i]
	}

	result := &ExtractionResult{
		DealerName:  sanitize.String(extracted.DealerName),
		TotalAmount: sanitize.Amount(extracted.TotalAmount),
		Matched:     []MatchedLine{},
		Unmatched:   []UnmatchedLine{},
	}

	if result.DealerName != "" {
		dealer, err := s.dealerRepo.GetByName(ctx, result.DealerName)
		if err != nil {
			return nil, err
		}
		if dealer != nil {
			result.DealerID = dealer.ID
		}
	}

	for _, line := range extracted.Items {
		name := sanitize.String(line.ItemName)
		quantity := line.Quantity
		costPrice := sanitize.Amount(line.CostPrice)
		size := sanitize.String(line.Size)

		if name == "" {
			continue
		}

		// A line without a readable quantity is not a sale the operator
		// can book; queue it for manual review rather than guess one.
		if quantity < 1 {
			result.Unmatched = append(result.Unmatched, UnmatchedLine{
				ItemName:  name,
				Size:      size,
				Quantity:  0,
				CostPrice: costPrice,
			})
			continue
		}

		match := fuzzy.MatchItem(name, candidates)
		if match == nil {
			result.Unmatched = append(result.Unmatched, UnmatchedLine{
				ItemName:  name,
				Size:      size,
				Quantity:  quantity,
				CostPrice: costPrice,
			})
			continue
		}

		item := itemMap[match.ID]
		variant := item.VariantBySize(size)
		if variant == nil && len(item.Variants) > 0 {
			variant = &item.Variants[0]
		}
		if variant == nil {
			result.Unmatched = append(result.Unmatched, UnmatchedLine{
				ItemName:  name,
				Size:      size,
				Quantity:  quantity,
				CostPrice: costPrice,
			})
			continue
		}

		result.Matched = append(result.Matched, MatchedLine{
			ItemID:     item.ID,
			ItemName:   item.Name,
			VariantID:  variant.ID,
			Size:       variant.Size,
			Quantity:   quantity,
			CostPrice:  costPrice,
			MatchScore: match.Score,
		})
	}

	s.logger.WithFields(logrus.Fields{
		"matched":   len(result.Matched),
		"unmatched": len(result.Unmatched),
		"dealer":    result.DealerName,
	}).Info("purchase bill extracted")

	return result, nil
}

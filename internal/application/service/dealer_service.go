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
	"github.com/google/uuid"
)

// DealerService handles dealer management
type DealerService struct {
	dealerRepo repository.DealerRepository
	bus        *events.Bus
}

// NewDealerService creates a new dealer service
func NewDealerService(dealerRepo repository.DealerRepository, bus *events.Bus) *DealerService {
	return &DealerService{dealerRepo: dealerRepo, bus: bus}
}

// DealerInput describes a dealer create/update payload
type DealerInput struct {
	DealerName     string
	ShopName       string
	MobileNumber   string
	WhatsappNumber string
	Address        string
	Notes          string
}

// CreateDealer creates a dealer after sanitizing every free-text field.
// Mobile numbers are unique across dealers.
func (s *DealerService) CreateDealer(ctx context.Context, input *DealerInput) (*entity.Dealer, error) {
	clean := sanitize.Dealer(sanitize.DealerInput{
		DealerName:     input.DealerName,
		ShopName:       input.ShopName,
		MobileNumber:   input.MobileNumber,
		WhatsappNumber: input.WhatsappNumber,
		Address:        input.Address,
		Notes:          input.Notes,
	})

	if clean.DealerName == "" || clean.MobileNumber == "" {
		return nil, apperror.NewBadRequestError("Dealer name and mobile number are required")
	}

	existing, err := s.dealerRepo.GetByMobile(ctx, clean.MobileNumber)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("A dealer with this mobile number already exists")
	}

	dealer := &entity.Dealer{
		ID:             uuid.New().String(),
		DealerName:     clean.DealerName,
		ShopName:       clean.ShopName,
		MobileNumber:   clean.MobileNumber,
		WhatsappNumber: clean.WhatsappNumber,
		Address:        clean.Address,
		Notes:          clean.Notes,
	}

	if err := s.dealerRepo.Create(ctx, dealer); err != nil {
		return nil, err
	}
	s.bus.Publish(events.Event{Topic: events.TopicDealers, Action: "created", EntityID: dealer.ID, At: time.Now()})
	return dealer, nil
}

// GetDealer retrieves a dealer by ID
func (s *DealerService) GetDealer(ctx context.Context, id string) (*entity.Dealer, error) {
	dealer, err := s.dealerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if dealer == nil {
		return nil, apperror.NewNotFoundError("Dealer")
	}
	return dealer, nil
}

// UpdateDealer replaces a dealer's details
func (s *DealerService) UpdateDealer(ctx context.Context, id string, input *DealerInput) (*entity.Dealer, error) {
	dealer, err := s.dealerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if dealer == nil {
		return nil, apperror.NewNotFoundError("Dealer")
	}

	clean := sanitize.Dealer(sanitize.DealerInput{
		DealerName:     input.DealerName,
		ShopName:       input.ShopName,
		MobileNumber:   input.MobileNumber,
		WhatsappNumber: input.WhatsappNumber,
		Address:        input.Address,
		Notes:          input.Notes,
	})
	if clean.DealerName == "" || clean.MobileNumber == "" {
		return nil, apperror.NewBadRequestError("Dealer name and mobile number are required")
	}

	if clean.MobileNumber != dealer.MobileNumber {
		existing, err := s.dealerRepo.GetByMobile(ctx, clean.MobileNumber)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, apperror.NewConflictError("A dealer with this mobile number already exists")
		}
	}

	dealer.DealerName = clean.DealerName
	dealer.ShopName = clean.ShopName
	dealer.MobileNumber = clean.MobileNumber
	dealer.WhatsappNumber = clean.WhatsappNumber
	dealer.Address = clean.Address
	dealer.Notes = clean.Notes

	if err := s.dealerRepo.Update(ctx, dealer); err != nil {
		return nil, err
	}
	s.bus.Publish(events.Event{Topic: events.TopicDealers, Action: "updated", EntityID: dealer.ID, At: time.Now()})
	return dealer, nil
}

// DeleteDealer removes a dealer. Past purchases keep their dealer-name
// snapshot.
func (s *DealerService) DeleteDealer(ctx context.Context, id string) error {
	dealer, err := s.dealerRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if dealer == nil {
		return apperror.NewNotFoundError("Dealer")
	}

	if err := s.dealerRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.bus.Publish(events.Event{Topic: events.TopicDealers, Action: "deleted", EntityID: id, At: time.Now()})
	return nil
}

// ListDealers lists dealers with search across name, shop, mobile, address
// and notes
func (s *DealerService) ListDealers(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Dealer], error) {
	dealers, total, err := s.dealerRepo.List(ctx, params, sanitize.String(search))
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(dealers, pag), nil
}

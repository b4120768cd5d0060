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
)

// AlterationService tracks garment alteration jobs
type AlterationService struct {
	alterationRepo repository.AlterationRepository
	bus            *events.Bus
}

// NewAlterationService creates a new alteration service
func NewAlterationService(alterationRepo repository.AlterationRepository, bus *events.Bus) *AlterationService {
	return &AlterationService{alterationRepo: alterationRepo, bus: bus}
}

// AlterationInput describes an alteration create/update payload
type AlterationInput struct {
	CustomerName       string
	ContactNumber      string
	GarmentDescription string
	Measurements       string
	DueDate            *time.Time
	Notes              string
}

// CreateAlteration records a new alteration job
func (s *AlterationService) CreateAlteration(ctx context.Context, input *AlterationInput) (*entity.Alteration, error) {
	customerName := sanitize.String(input.CustomerName)
	garment := sanitize.String(input.GarmentDescription)
	measurements := sanitize.String(input.Measurements)
	if customerName == "" || garment == "" || measurements == "" {
		return nil, apperror.NewBadRequestError("Customer name, garment description and measurements are required")
	}

	alteration := &entity.Alteration{
		CustomerName:       customerName,
		ContactNumber:      sanitize.PhoneNumber(input.ContactNumber),
		GarmentDescription: garment,
		Measurements:       measurements,
		DueDate:            input.DueDate,
		Notes:              sanitize.String(input.Notes),
	}

	if err := s.alterationRepo.Create(ctx, alteration); err != nil {
		return nil, err
	}
	s.bus.Publish(events.Event{Topic: events.TopicAlterations, Action: "created", EntityID: alteration.ID, At: time.Now()})
	return alteration, nil
}

// GetAlteration retrieves an alteration by ID
func (s *AlterationService) GetAlteration(ctx context.Context, id string) (*entity.Alteration, error) {
	alteration, err := s.alterationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if alteration == nil {
		return nil, apperror.NewNotFoundError("Alteration")
	}
	return alteration, nil
}

// UpdateAlteration replaces an alteration's details
func (s *AlterationService) UpdateAlteration(ctx context.Context, id string, input *AlterationInput) (*entity.Alteration, error) {
	alteration, err := s.alterationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if alteration == nil {
		return nil, apperror.NewNotFoundError("Alteration")
	}

	if v := sanitize.String(input.CustomerName); v != "" {
		alteration.CustomerName = v
	}
	if v := sanitize.String(input.GarmentDescription); v != "" {
		alteration.GarmentDescription = v
	}
	if v := sanitize.String(input.Measurements); v != "" {
		alteration.Measurements = v
	}
	alteration.ContactNumber = sanitize.PhoneNumber(input.ContactNumber)
	alteration.Notes = sanitize.String(input.Notes)
	alteration.DueDate = input.DueDate

	if err := s.alterationRepo.Update(ctx, alteration); err != nil {
		return nil, err
	}
	s.bus.Publish(events.Event{Topic: events.TopicAlterations, Action: "updated", EntityID: alteration.ID, At: time.Now()})
	return alteration, nil
}

// ToggleComplete flips an alteration's completion state
func (s *AlterationService) ToggleComplete(ctx context.Context, id string) (*entity.Alteration, error) {
	alteration, err := s.alterationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if alteration == nil {
		return nil, apperror.NewNotFoundError("Alteration")
	}

	alteration.IsCompleted = !alteration.IsCompleted
	if err := s.alterationRepo.Update(ctx, alteration); err != nil {
		return nil, err
	}
	s.bus.Publish(events.Event{Topic: events.TopicAlterations, Action: "updated", EntityID: alteration.ID, At: time.Now()})
	return alteration, nil
}

// DeleteAlteration removes an alteration
func (s *AlterationService) DeleteAlteration(ctx context.Context, id string) error {
	alteration, err := s.alterationRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if alteration == nil {
		return apperror.NewNotFoundError("Alteration")
	}

	if err := s.alterationRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.bus.Publish(events.Event{Topic: events.TopicAlterations, Action: "deleted", EntityID: id, At: time.Now()})
	return nil
}

// ListAlterations lists alterations with search and completion filtering
func (s *AlterationService) ListAlterations(ctx context.Context, params *repository.AlterationFilterParams) (*pagination.PaginatedResult[entity.Alteration], error) {
	alterations, total, err := s.alterationRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(alterations, pag), nil
}

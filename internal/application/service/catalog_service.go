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

// CatalogService handles category and item management
type CatalogService struct {
	itemRepo     repository.ItemRepository
	categoryRepo repository.CategoryRepository
	bus          *events.Bus
}

// NewCatalogService creates a new catalog service
func NewCatalogService(itemRepo repository.ItemRepository, categoryRepo repository.CategoryRepository, bus *events.Bus) *CatalogService {
	return &CatalogService{itemRepo: itemRepo, categoryRepo: categoryRepo, bus: bus}
}

// VariantInput describes one size/price option of an item
type VariantInput struct {
	Size  string
	Price float64
	Stock int
}

// ItemInput describes an item create/update payload
type ItemInput struct {
	CategoryID  string
	Subcategory string
	Name        string
	Description string
	Variants    []VariantInput
}

// CreateCategory creates a category whose ID is a slug of its name
func (s *CatalogService) CreateCategory(ctx context.Context, name, icon string) (*entity.Category, error) {
	name = sanitize.String(name)
	if name == "" {
		return nil, apperror.NewBadRequestError("Category name is required")
	}

	category := &entity.Category{
		ID:   entity.Slugify(name),
		Name: name,
		Icon: icon,
	}

	existing, err := s.categoryRepo.GetByID(ctx, category.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Category already exists")
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	s.publish(events.TopicCategories, "created", category.ID)
	return category, nil
}

// UpdateCategory renames a category or changes its icon. The slug ID is
// stable: renaming does not re-derive it, so item references stay valid.
func (s *CatalogService) UpdateCategory(ctx context.Context, id, name, icon string) (*entity.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperror.NewNotFoundError("Category")
	}

	if name = sanitize.String(name); name != "" {
		category.Name = name
	}
	if icon != "" {
		category.Icon = icon
	}

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}
	s.publish(events.TopicCategories, "updated", category.ID)
	return category, nil
}

// DeleteCategory removes the category. Items referencing it are left alone
// with their now-stale category ID.
func (s *CatalogService) DeleteCategory(ctx context.Context, id string) error {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return apperror.NewNotFoundError("Category")
	}

	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(events.TopicCategories, "deleted", id)
	return nil
}

// ListCategories returns all categories ordered by name
func (s *CatalogService) ListCategories(ctx context.Context) ([]entity.Category, error) {
	return s.categoryRepo.List(ctx)
}

// CreateItem creates an item with its variants. Variant IDs are derived from
// item, size and price so re-submitting the same variant is idempotent.
func (s *CatalogService) CreateItem(ctx context.Context, id string, input *ItemInput) (*entity.Item, error) {
	item, err := s.buildItem(ctx, id, input)
	if err != nil {
		return nil, err
	}

	existing, err := s.itemRepo.GetByID(ctx, item.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Item already exists")
	}

	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	s.publish(events.TopicItems, "created", item.ID)
	return item, nil
}

// UpdateItem replaces an item's descriptive fields and variant set wholesale
func (s *CatalogService) UpdateItem(ctx context.Context, id string, input *ItemInput) (*entity.Item, error) {
	existing, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperror.NewNotFoundError("Item")
	}

	item, err := s.buildItem(ctx, id, input)
	if err != nil {
		return nil, err
	}
	item.CreatedAt = existing.CreatedAt

	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	s.publish(events.TopicItems, "updated", item.ID)
	return item, nil
}

// DeleteItem removes an item and its variants
func (s *CatalogService) DeleteItem(ctx context.Context, id string) error {
	existing, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperror.NewNotFoundError("Item")
	}

	if err := s.itemRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(events.TopicItems, "deleted", id)
	return nil
}

// GetItem retrieves an item with its variants
func (s *CatalogService) GetItem(ctx context.Context, id string) (*entity.Item, error) {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Item")
	}
	return item, nil
}

// ListItems lists items with filtering and pagination
func (s *CatalogService) ListItems(ctx context.Context, params *repository.ItemFilterParams) (*pagination.PaginatedResult[entity.Item], error) {
	items, total, err := s.itemRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(items, pag), nil
}

func (s *CatalogService) buildItem(ctx context.Context, id string, input *ItemInput) (*entity.Item, error) {
	name := sanitize.String(input.Name)
	if name == "" {
		return nil, apperror.NewBadRequestError("Item name is required")
	}
	if len(input.Variants) == 0 {
		return nil, apperror.NewBadRequestError("Item needs at least one variant")
	}

	category, err := s.categoryRepo.GetByID(ctx, input.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperror.NewNotFoundError("Category")
	}

	if id == "" {
		id = entity.Slugify(name)
	}

	item := &entity.Item{
		ID:          id,
		CategoryID:  input.CategoryID,
		Subcategory: sanitize.String(input.Subcategory),
		Name:        name,
		Description: sanitize.String(input.Description),
	}

	seen := make(map[string]bool)
	for _, v := range input.Variants {
		size := sanitize.String(v.Size)
		if size == "" || v.Price <= 0 {
			return nil, apperror.NewBadRequestError("Each variant needs a size and a positive price")
		}
		variantID := entity.VariantID(id, size, v.Price)
		if seen[variantID] {
			return nil, apperror.NewConflictError("Duplicate variant: " + variantID)
		}
		seen[variantID] = true
		item.Variants = append(item.Variants, entity.ItemVariant{
			ID:     variantID,
			ItemID: id,
			Size:   size,
			Price:  v.Price,
			Stock:  v.Stock,
		})
	}

	return item, nil
}

func (s *CatalogService) publish(topic, action, entityID string) {
	s.bus.Publish(events.Event{
		Topic:    topic,
		Action:   action,
		EntityID: entityID,
		At:       time.Now(),
	})
}

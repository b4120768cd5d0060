// Package memory provides map-backed repository implementations. They back
// the service tests and are handy for running the API without a database.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Prathamesh404NotFound/Billing-System/internal/domain/entity"
	domainRepo "github.com/Prathamesh404NotFound/Billing-System/internal/domain/repository"
	"github.com/Prathamesh404NotFound/Billing-System/pkg/pagination"
	"github.com/google/uuid"
)

// ItemStore is an in-memory ItemRepository.
type ItemStore struct {
	mu    sync.RWMutex
	items map[string]*entity.Item
}

func NewItemStore() *ItemStore {
	return &ItemStore{items: make(map[string]*entity.Item)}
}

func (s *ItemStore) Create(_ context.Context, item *entity.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *item
	s.items[item.ID] = &cp
	return nil
}

func (s *ItemStore) GetByID(_ context.Context, id string) (*entity.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.items[id]
	if !ok {
		return nil, nil
	}
	cp := *item
	return &cp, nil
}

func (s *ItemStore) GetByIDs(_ context.Context, ids []string) ([]entity.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Item, 0, len(ids))
	for _, id := range ids {
		if item, ok := s.items[id]; ok {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (s *ItemStore) GetAll(_ context.Context) ([]entity.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Item, 0, len(s.items))
	for _, item := range s.items {
		out = append(out, *item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *ItemStore) Update(_ context.Context, item *entity.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *item
	s.items[item.ID] = &cp
	return nil
}

func (s *ItemStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, id)
	return nil
}

func (s *ItemStore) List(ctx context.Context, params *domainRepo.ItemFilterParams) ([]entity.Item, int64, error) {
	all, _ := s.GetAll(ctx)
	filtered := all[:0]
	for _, item := range all {
		if params.CategoryID != "" && item.CategoryID != params.CategoryID {
			continue
		}
		if params.Search != "" {
			q := strings.ToLower(params.Search)
			if !strings.Contains(strings.ToLower(item.Name), q) &&
				!strings.Contains(strings.ToLower(item.Subcategory), q) {
				continue
			}
		}
		filtered = append(filtered, item)
	}
	total := int64(len(filtered))
	params.Pagination.Validate()
	return page(filtered, params.Pagination.Offset(), params.Pagination.PerPage), total, nil
}

func (s *ItemStore) AdjustVariantStock(_ context.Context, variantID string, delta int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.items {
		for idx := range item.Variants {
			if item.Variants[idx].ID == variantID {
				item.Variants[idx].Stock += delta
				return item.Variants[idx].Stock, nil
			}
		}
	}
	return 0, domainRepo.ErrVariantNotFound
}

func (s *ItemStore) CountItems(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.items)), nil
}

// CategoryStore is an in-memory CategoryRepository.
type CategoryStore struct {
	mu         sync.RWMutex
	categories map[string]*entity.Category
}

func NewCategoryStore() *CategoryStore {
	return &CategoryStore{categories: make(map[string]*entity.Category)}
}

func (s *CategoryStore) Create(_ context.Context, category *entity.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *category
	s.categories[category.ID] = &cp
	return nil
}

func (s *CategoryStore) GetByID(_ context.Context, id string) (*entity.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	category, ok := s.categories[id]
	if !ok {
		return nil, nil
	}
	cp := *category
	return &cp, nil
}

func (s *CategoryStore) Update(_ context.Context, category *entity.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *category
	s.categories[category.ID] = &cp
	return nil
}

func (s *CategoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.categories, id)
	return nil
}

func (s *CategoryStore) List(_ context.Context) ([]entity.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Category, 0, len(s.categories))
	for _, category := range s.categories {
		out = append(out, *category)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// BillStore is an in-memory BillRepository.
type BillStore struct {
	mu    sync.RWMutex
	bills map[string]*entity.Bill
}

func NewBillStore() *BillStore {
	return &BillStore{bills: make(map[string]*entity.Bill)}
}

func (s *BillStore) Create(_ context.Context, bill *entity.Bill) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *bill
	s.bills[bill.ID] = &cp
	return nil
}

func (s *BillStore) GetByID(_ context.Context, id string) (*entity.Bill, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	bill, ok := s.bills[id]
	if !ok {
		return nil, nil
	}
	cp := *bill
	return &cp, nil
}

func (s *BillStore) List(_ context.Context, params *domainRepo.BillFilterParams) ([]entity.Bill, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var filtered []entity.Bill
	for _, bill := range s.bills {
		if !params.From.IsZero() && bill.Date.Before(params.From) {
			continue
		}
		if !params.To.IsZero() && bill.Date.After(params.To) {
			continue
		}
		filtered = append(filtered, *bill)
	}
	sort.Slice(filtered, func(i, j int) bool { return filtered[i].Date.After(filtered[j].Date) })
	total := int64(len(filtered))
	params.Pagination.Validate()
	return page(filtered, params.Pagination.Offset(), params.Pagination.PerPage), total, nil
}

// All returns every saved bill, for test assertions.
func (s *BillStore) All() []entity.Bill {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Bill, 0, len(s.bills))
	for _, bill := range s.bills {
		out = append(out, *bill)
	}
	return out
}

// DealerStore is an in-memory DealerRepository.
type DealerStore struct {
	mu      sync.RWMutex
	dealers map[string]*entity.Dealer
}

func NewDealerStore() *DealerStore {
	return &DealerStore{dealers: make(map[string]*entity.Dealer)}
}

func (s *DealerStore) Create(_ context.Context, dealer *entity.Dealer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *dealer
	s.dealers[dealer.ID] = &cp
	return nil
}

func (s *DealerStore) GetByID(_ context.Context, id string) (*entity.Dealer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	dealer, ok := s.dealers[id]
	if !ok {
		return nil, nil
	}
	cp := *dealer
	return &cp, nil
}

func (s *DealerStore) GetByMobile(_ context.Context, mobileNumber string) (*entity.Dealer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, dealer := range s.dealers {
		if dealer.MobileNumber == mobileNumber {
			cp := *dealer
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *DealerStore) GetByName(_ context.Context, dealerName string) (*entity.Dealer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, dealer := range s.dealers {
		if strings.EqualFold(dealer.DealerName, dealerName) {
			cp := *dealer
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *DealerStore) Update(_ context.Context, dealer *entity.Dealer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *dealer
	s.dealers[dealer.ID] = &cp
	return nil
}

func (s *DealerStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.dealers, id)
	return nil
}

func (s *DealerStore) List(_ context.Context, params *pagination.PaginationParams, search string) ([]entity.Dealer, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var filtered []entity.Dealer
	for _, dealer := range s.dealers {
		if search != "" {
			q := strings.ToLower(search)
			haystack := strings.ToLower(strings.Join([]string{
				dealer.DealerName, dealer.ShopName, dealer.MobileNumber, dealer.Address, dealer.Notes,
			}, " "))
			if !strings.Contains(haystack, q) {
				continue
			}
		}
		filtered = append(filtered, *dealer)
	}
	sort.Slice(filtered, func(i, j int) bool { return filtered[i].DealerName < filtered[j].DealerName })
	total := int64(len(filtered))
	params.Validate()
	return page(filtered, params.Offset(), params.PerPage), total, nil
}

// PurchaseStore is an in-memory PurchaseRepository.
type PurchaseStore struct {
	mu        sync.RWMutex
	purchases map[string]*entity.DealerPurchase
}

func NewPurchaseStore() *PurchaseStore {
	return &PurchaseStore{purchases: make(map[string]*entity.DealerPurchase)}
}

func (s *PurchaseStore) Create(_ context.Context, purchase *entity.DealerPurchase) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *purchase
	s.purchases[purchase.ID] = &cp
	return nil
}

func (s *PurchaseStore) GetByID(_ context.Context, id string) (*entity.DealerPurchase, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	purchase, ok := s.purchases[id]
	if !ok {
		return nil, nil
	}
	cp := *purchase
	return &cp, nil
}

func (s *PurchaseStore) List(_ context.Context, params *domainRepo.PurchaseFilterParams) ([]entity.DealerPurchase, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var filtered []entity.DealerPurchase
	for _, purchase := range s.purchases {
		if params.DealerID != "" && purchase.DealerID != params.DealerID {
			continue
		}
		filtered = append(filtered, *purchase)
	}
	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].PurchaseDate.After(filtered[j].PurchaseDate)
	})
	total := int64(len(filtered))
	params.Pagination.Validate()
	return page(filtered, params.Pagination.Offset(), params.Pagination.PerPage), total, nil
}

// SettingsStore is an in-memory SettingsRepository.
type SettingsStore struct {
	mu       sync.RWMutex
	settings *entity.ShopSettings
}

func NewSettingsStore() *SettingsStore {
	return &SettingsStore{}
}

func (s *SettingsStore) Get(_ context.Context) (*entity.ShopSettings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.settings == nil {
		return nil, nil
	}
	cp := *s.settings
	return &cp, nil
}

func (s *SettingsStore) Save(_ context.Context, settings *entity.ShopSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *settings
	s.settings = &cp
	return nil
}

// AlterationStore is an in-memory AlterationRepository.
type AlterationStore struct {
	mu          sync.RWMutex
	alterations map[string]*entity.Alteration
}

func NewAlterationStore() *AlterationStore {
	return &AlterationStore{alterations: make(map[string]*entity.Alteration)}
}

func (s *AlterationStore) Create(_ context.Context, alteration *entity.Alteration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if alteration.ID == "" {
		alteration.ID = uuid.New().String()
	}
	cp := *alteration
	s.alterations[alteration.ID] = &cp
	return nil
}

func (s *AlterationStore) GetByID(_ context.Context, id string) (*entity.Alteration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	alteration, ok := s.alterations[id]
	if !ok {
		return nil, nil
	}
	cp := *alteration
	return &cp, nil
}

func (s *AlterationStore) Update(_ context.Context, alteration *entity.Alteration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *alteration
	s.alterations[alteration.ID] = &cp
	return nil
}

func (s *AlterationStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.alterations, id)
	return nil
}

func (s *AlterationStore) List(_ context.Context, params *domainRepo.AlterationFilterParams) ([]entity.Alteration, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var filtered []entity.Alteration
	for _, alteration := range s.alterations {
		if params.Completed != nil && alteration.IsCompleted != *params.Completed {
			continue
		}
		if params.Search != "" {
			q := strings.ToLower(params.Search)
			if !strings.Contains(strings.ToLower(alteration.CustomerName), q) &&
				!strings.Contains(strings.ToLower(alteration.GarmentDescription), q) {
				continue
			}
		}
		filtered = append(filtered, *alteration)
	}
	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})
	total := int64(len(filtered))
	params.Pagination.Validate()
	return page(filtered, params.Pagination.Offset(), params.Pagination.PerPage), total, nil
}

// UserStore is an in-memory UserRepository.
type UserStore struct {
	mu    sync.RWMutex
	users map[uuid.UUID]*entity.User
}

func NewUserStore() *UserStore {
	return &UserStore{users: make(map[uuid.UUID]*entity.User)}
}

func (s *UserStore) Create(_ context.Context, user *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	cp := *user
	s.users[user.ID] = &cp
	return nil
}

func (s *UserStore) GetByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	cp := *user
	return &cp, nil
}

func (s *UserStore) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.users {
		if user.Username == username {
			cp := *user
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *UserStore) Update(_ context.Context, user *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *user
	s.users[user.ID] = &cp
	return nil
}

func (s *UserStore) List(_ context.Context) ([]entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.User, 0, len(s.users))
	for _, user := range s.users {
		out = append(out, *user)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// AnalyticsStore aggregates over a BillStore and ItemStore the way the SQL
// analytics repository aggregates over tables.
type AnalyticsStore struct {
	Bills *BillStore
}

func NewAnalyticsStore(bills *BillStore) *AnalyticsStore {
	return &AnalyticsStore{Bills: bills}
}

func (s *AnalyticsStore) CountBills(_ context.Context) (int64, error) {
	return int64(len(s.Bills.All())), nil
}

func (s *AnalyticsStore) SumRevenue(_ context.Context) (float64, error) {
	var total float64
	for _, bill := range s.Bills.All() {
		total += bill.Total
	}
	return total, nil
}

func (s *AnalyticsStore) SumRevenueSince(_ context.Context, since time.Time) (float64, error) {
	var total float64
	for _, bill := range s.Bills.All() {
		if !bill.Date.Before(since) {
			total += bill.Total
		}
	}
	return total, nil
}

func (s *AnalyticsStore) DailySales(_ context.Context, days int) ([]domainRepo.DailySalesPoint, error) {
	if days <= 0 {
		days = 7
	}
	since := time.Now().AddDate(0, 0, -days+1).Truncate(24 * time.Hour)
	byDay := make(map[string]float64)
	for _, bill := range s.Bills.All() {
		if bill.Date.Before(since) {
			continue
		}
		byDay[bill.Date.Format("2006-01-02")] += bill.Total
	}
	dates := make([]string, 0, len(byDay))
	for d := range byDay {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	points := make([]domainRepo.DailySalesPoint, 0, len(dates))
	for _, d := range dates {
		points = append(points, domainRepo.DailySalesPoint{Date: d, Sales: byDay[d]})
	}
	return points, nil
}

func page[T any](items []T, offset, limit int) []T {
	if offset >= len(items) {
		return []T{}
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

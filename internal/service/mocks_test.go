package service

import (
	"context"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/abdo0vuln/e-commerce/internal/cache"
	"github.com/abdo0vuln/e-commerce/internal/domain"
	"github.com/abdo0vuln/e-commerce/internal/events"
	"github.com/abdo0vuln/e-commerce/internal/repository"
)

type mockProductRepo struct {
	m        sync.RWMutex
	products []domain.Product
	err      error
}

func (m *mockProductRepo) Create(_ context.Context, product *domain.Product) (string, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return "", m.err
	}
	product.ID = primitive.NewObjectID()
	m.products = append(m.products, *product)
	return product.ID.Hex(), nil
}

func (m *mockProductRepo) FindByID(_ context.Context, id string) (*domain.Product, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	for i := range m.products {
		if m.products[i].ID.Hex() == id {
			p := m.products[i]
			return &p, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *mockProductRepo) FindByIDs(_ context.Context, ids []string) ([]domain.Product, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	found := []domain.Product{}
	for _, id := range ids {
		for i := range m.products {
			if m.products[i].ID.Hex() == id {
				found = append(found, m.products[i])
			}
		}
	}
	return found, nil
}

func (m *mockProductRepo) matches(p *domain.Product, filter repository.ProductFilter) bool {
	if filter.Category != "" && p.Category != filter.Category {
		return false
	}
	if filter.Featured && !p.IsFeatured {
		return false
	}
	if filter.Search != "" {
		s := strings.ToLower(filter.Search)
		if !strings.Contains(strings.ToLower(p.Name), s) &&
			!strings.Contains(strings.ToLower(p.Description), s) {
			return false
		}
	}
	return true
}

func (m *mockProductRepo) List(_ context.Context, filter repository.ProductFilter) ([]domain.Product, int64, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	if m.err != nil {
		return nil, 0, m.err
	}

	matched := []domain.Product{}
	for i := range m.products {
		if m.matches(&m.products[i], filter) {
			matched = append(matched, m.products[i])
		}
	}

	total := int64(len(matched))
	start := (filter.Page - 1) * filter.Limit
	if start > len(matched) {
		start = len(matched)
	}
	end := start + filter.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (m *mockProductRepo) Update(_ context.Context, id string, product *domain.Product) error {
	m.m.Lock()
	defer m.m.Unlock()
	for i := range m.products {
		if m.products[i].ID.Hex() == id {
			oid := m.products[i].ID
			m.products[i] = *product
			m.products[i].ID = oid
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *mockProductRepo) Delete(_ context.Context, id string) error {
	m.m.Lock()
	defer m.m.Unlock()
	for i := range m.products {
		if m.products[i].ID.Hex() == id {
			m.products = append(m.products[:i], m.products[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *mockProductRepo) DecrementStock(_ context.Context, id string, quantity int) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return m.err
	}
	for i := range m.products {
		if m.products[i].ID.Hex() == id {
			m.products[i].Stock -= quantity
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *mockProductRepo) CountByCategory(_ context.Context, categoryName string) (int64, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	var count int64
	for i := range m.products {
		if m.products[i].Category == categoryName {
			count++
		}
	}
	return count, nil
}

func (m *mockProductRepo) stockOf(id string) int {
	m.m.RLock()
	defer m.m.RUnlock()
	for i := range m.products {
		if m.products[i].ID.Hex() == id {
			return m.products[i].Stock
		}
	}
	return 0
}

type mockCategoryRepo struct {
	m          sync.RWMutex
	categories []domain.Category
	deleted    []string
}

func (m *mockCategoryRepo) Create(_ context.Context, category *domain.Category) (string, error) {
	m.m.Lock()
	defer m.m.Unlock()
	category.ID = primitive.NewObjectID()
	m.categories = append(m.categories, *category)
	return category.ID.Hex(), nil
}

func (m *mockCategoryRepo) FindByID(_ context.Context, id string) (*domain.Category, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	for i := range m.categories {
		if m.categories[i].ID.Hex() == id {
			c := m.categories[i]
			return &c, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *mockCategoryRepo) FindAll(context.Context) ([]domain.Category, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	return append([]domain.Category{}, m.categories...), nil
}

func (m *mockCategoryRepo) Update(_ context.Context, id string, category *domain.Category) error {
	m.m.Lock()
	defer m.m.Unlock()
	for i := range m.categories {
		if m.categories[i].ID.Hex() == id {
			oid := m.categories[i].ID
			m.categories[i] = *category
			m.categories[i].ID = oid
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *mockCategoryRepo) Delete(_ context.Context, id string) error {
	m.m.Lock()
	defer m.m.Unlock()
	for i := range m.categories {
		if m.categories[i].ID.Hex() == id {
			m.categories = append(m.categories[:i], m.categories[i+1:]...)
			m.deleted = append(m.deleted, id)
			return nil
		}
	}
	return repository.ErrNotFound
}

type mockOrderRepo struct {
	m      sync.RWMutex
	orders []domain.Order
	err    error
}

func (m *mockOrderRepo) Count(context.Context) (int64, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	if m.err != nil {
		return 0, m.err
	}
	return int64(len(m.orders)), nil
}

func (m *mockOrderRepo) Create(_ context.Context, order *domain.Order) (string, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return "", m.err
	}
	order.ID = primitive.NewObjectID()
	m.orders = append(m.orders, *order)
	return order.ID.Hex(), nil
}

func (m *mockOrderRepo) FindByID(_ context.Context, id string) (*domain.Order, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	for i := range m.orders {
		if m.orders[i].ID.Hex() == id {
			o := m.orders[i]
			return &o, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *mockOrderRepo) List(_ context.Context, filter repository.OrderFilter) ([]domain.Order, int64, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	matched := []domain.Order{}
	for i := range m.orders {
		if filter.UserID != "" && m.orders[i].UserID != filter.UserID {
			continue
		}
		if filter.Status != "" && m.orders[i].Status != filter.Status {
			continue
		}
		matched = append(matched, m.orders[i])
	}
	return matched, int64(len(matched)), nil
}

func (m *mockOrderRepo) UpdateStatus(_ context.Context, id, status, paymentStatus string) error {
	m.m.Lock()
	defer m.m.Unlock()
	for i := range m.orders {
		if m.orders[i].ID.Hex() == id {
			if status != "" {
				m.orders[i].Status = status
			}
			if paymentStatus != "" {
				m.orders[i].PaymentStatus = paymentStatus
			}
			return nil
		}
	}
	return repository.ErrNotFound
}

type mockCatalogCache struct {
	m           sync.RWMutex
	listings    map[string]*domain.ProductPage
	invalidated int
}

func newMockCatalogCache() *mockCatalogCache {
	return &mockCatalogCache{listings: make(map[string]*domain.ProductPage)}
}

func (m *mockCatalogCache) GetListing(_ context.Context, key string) (*domain.ProductPage, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	page, ok := m.listings[key]
	if !ok {
		return nil, cache.ErrCacheMiss
	}
	return page, nil
}

func (m *mockCatalogCache) SetListing(_ context.Context, key string, page *domain.ProductPage) error {
	m.m.Lock()
	defer m.m.Unlock()
	m.listings[key] = page
	return nil
}

func (m *mockCatalogCache) InvalidateListings(context.Context) error {
	m.m.Lock()
	defer m.m.Unlock()
	m.listings = make(map[string]*domain.ProductPage)
	m.invalidated++
	return nil
}

type mockPublisher struct {
	m      sync.Mutex
	events []string
}

func (m *mockPublisher) Publish(_ context.Context, eventType string, _ *domain.Order) error {
	m.m.Lock()
	defer m.m.Unlock()
	m.events = append(m.events, eventType)
	return nil
}

var _ events.Publisher = (*mockPublisher)(nil)

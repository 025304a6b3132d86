package httpapi

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/abdo0vuln/e-commerce/internal/cache"
	"github.com/abdo0vuln/e-commerce/internal/domain"
	"github.com/abdo0vuln/e-commerce/internal/repository"
)

type memUserRepo struct {
	m     sync.RWMutex
	users []*domain.User
}

func (r *memUserRepo) Create(_ context.Context, user *domain.User) (string, error) {
	r.m.Lock()
	defer r.m.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return "", repository.ErrDuplicateEmail
		}
	}
	user.ID = primitive.NewObjectID()
	r.users = append(r.users, user)
	return user.ID.Hex(), nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.m.RLock()
	defer r.m.RUnlock()
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.m.RLock()
	defer r.m.RUnlock()
	for _, u := range r.users {
		if u.ID.Hex() == id {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memUserRepo) List(context.Context, repository.UserFilter) ([]domain.User, int64, error) {
	r.m.RLock()
	defer r.m.RUnlock()
	users := []domain.User{}
	for _, u := range r.users {
		if u.Role == domain.RoleCustomer {
			users = append(users, *u)
		}
	}
	return users, int64(len(users)), nil
}

func (r *memUserRepo) AddToWishlist(_ context.Context, userID, productID string) error {
	r.m.Lock()
	defer r.m.Unlock()
	for _, u := range r.users {
		if u.ID.Hex() != userID {
			continue
		}
		for _, existing := range u.Wishlist {
			if existing == productID {
				return nil
			}
		}
		u.Wishlist = append(u.Wishlist, productID)
		return nil
	}
	return repository.ErrNotFound
}

func (r *memUserRepo) RemoveFromWishlist(_ context.Context, userID, productID string) error {
	r.m.Lock()
	defer r.m.Unlock()
	for _, u := range r.users {
		if u.ID.Hex() != userID {
			continue
		}
		for i, existing := range u.Wishlist {
			if existing == productID {
				u.Wishlist = append(u.Wishlist[:i], u.Wishlist[i+1:]...)
				return nil
			}
		}
		return nil
	}
	return repository.ErrNotFound
}

type memProductRepo struct {
	m        sync.RWMutex
	products []domain.Product
}

func (r *memProductRepo) Create(_ context.Context, product *domain.Product) (string, error) {
	r.m.Lock()
	defer r.m.Unlock()
	product.ID = primitive.NewObjectID()
	r.products = append(r.products, *product)
	return product.ID.Hex(), nil
}

func (r *memProductRepo) FindByID(_ context.Context, id string) (*domain.Product, error) {
	r.m.RLock()
	defer r.m.RUnlock()
	for i := range r.products {
		if r.products[i].ID.Hex() == id {
			p := r.products[i]
			return &p, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memProductRepo) FindByIDs(_ context.Context, ids []string) ([]domain.Product, error) {
	r.m.RLock()
	defer r.m.RUnlock()
	found := []domain.Product{}
	for _, id := range ids {
		for i := range r.products {
			if r.products[i].ID.Hex() == id {
				found = append(found, r.products[i])
			}
		}
	}
	return found, nil
}

func (r *memProductRepo) List(_ context.Context, filter repository.ProductFilter) ([]domain.Product, int64, error) {
	r.m.RLock()
	defer r.m.RUnlock()
	matched := []domain.Product{}
	for i := range r.products {
		p := r.products[i]
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if filter.Featured && !p.IsFeatured {
			continue
		}
		matched = append(matched, p)
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

func (r *memProductRepo) Update(_ context.Context, id string, product *domain.Product) error {
	r.m.Lock()
	defer r.m.Unlock()
	for i := range r.products {
		if r.products[i].ID.Hex() == id {
			oid := r.products[i].ID
			r.products[i] = *product
			r.products[i].ID = oid
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *memProductRepo) Delete(_ context.Context, id string) error {
	r.m.Lock()
	defer r.m.Unlock()
	for i := range r.products {
		if r.products[i].ID.Hex() == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *memProductRepo) DecrementStock(_ context.Context, id string, quantity int) error {
	r.m.Lock()
	defer r.m.Unlock()
	for i := range r.products {
		if r.products[i].ID.Hex() == id {
			r.products[i].Stock -= quantity
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *memProductRepo) CountByCategory(_ context.Context, categoryName string) (int64, error) {
	r.m.RLock()
	defer r.m.RUnlock()
	var count int64
	for i := range r.products {
		if r.products[i].Category == categoryName {
			count++
		}
	}
	return count, nil
}

func (r *memProductRepo) stockOf(id string) int {
	r.m.RLock()
	defer r.m.RUnlock()
	for i := range r.products {
		if r.products[i].ID.Hex() == id {
			return r.products[i].Stock
		}
	}
	return 0
}

type memCategoryRepo struct {
	m          sync.RWMutex
	categories []domain.Category
}

func (r *memCategoryRepo) Create(_ context.Context, category *domain.Category) (string, error) {
	r.m.Lock()
	defer r.m.Unlock()
	category.ID = primitive.NewObjectID()
	r.categories = append(r.categories, *category)
	return category.ID.Hex(), nil
}

func (r *memCategoryRepo) FindByID(_ context.Context, id string) (*domain.Category, error) {
	r.m.RLock()
	defer r.m.RUnlock()
	for i := range r.categories {
		if r.categories[i].ID.Hex() == id {
			c := r.categories[i]
			return &c, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memCategoryRepo) FindAll(context.Context) ([]domain.Category, error) {
	r.m.RLock()
	defer r.m.RUnlock()
	return append([]domain.Category{}, r.categories...), nil
}

func (r *memCategoryRepo) Update(_ context.Context, id string, category *domain.Category) error {
	r.m.Lock()
	defer r.m.Unlock()
	for i := range r.categories {
		if r.categories[i].ID.Hex() == id {
			oid := r.categories[i].ID
			r.categories[i] = *category
			r.categories[i].ID = oid
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *memCategoryRepo) Delete(_ context.Context, id string) error {
	r.m.Lock()
	defer r.m.Unlock()
	for i := range r.categories {
		if r.categories[i].ID.Hex() == id {
			r.categories = append(r.categories[:i], r.categories[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type memOrderRepo struct {
	m      sync.RWMutex
	orders []domain.Order
}

func (r *memOrderRepo) Count(context.Context) (int64, error) {
	r.m.RLock()
	defer r.m.RUnlock()
	return int64(len(r.orders)), nil
}

func (r *memOrderRepo) Create(_ context.Context, order *domain.Order) (string, error) {
	r.m.Lock()
	defer r.m.Unlock()
	order.ID = primitive.NewObjectID()
	r.orders = append(r.orders, *order)
	return order.ID.Hex(), nil
}

func (r *memOrderRepo) FindByID(_ context.Context, id string) (*domain.Order, error) {
	r.m.RLock()
	defer r.m.RUnlock()
	for i := range r.orders {
		if r.orders[i].ID.Hex() == id {
			o := r.orders[i]
			return &o, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memOrderRepo) List(_ context.Context, filter repository.OrderFilter) ([]domain.Order, int64, error) {
	r.m.RLock()
	defer r.m.RUnlock()
	matched := []domain.Order{}
	for i := range r.orders {
		if filter.UserID != "" && r.orders[i].UserID != filter.UserID {
			continue
		}
		if filter.Status != "" && r.orders[i].Status != filter.Status {
			continue
		}
		matched = append(matched, r.orders[i])
	}
	return matched, int64(len(matched)), nil
}

func (r *memOrderRepo) UpdateStatus(_ context.Context, id, status, paymentStatus string) error {
	r.m.Lock()
	defer r.m.Unlock()
	for i := range r.orders {
		if r.orders[i].ID.Hex() == id {
			if status != "" {
				r.orders[i].Status = status
			}
			if paymentStatus != "" {
				r.orders[i].PaymentStatus = paymentStatus
			}
			return nil
		}
	}
	return repository.ErrNotFound
}

type nopCache struct{}

func (nopCache) GetListing(context.Context, string) (*domain.ProductPage, error) {
	return nil, cache.ErrCacheMiss
}
func (nopCache) SetListing(context.Context, string, *domain.ProductPage) error { return nil }
func (nopCache) InvalidateListings(context.Context) error                      { return nil }

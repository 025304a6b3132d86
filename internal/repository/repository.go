package repository

import (
	"context"
	"errors"

	"github.com/abdo0vuln/e-commerce/internal/domain"
)

const (
	usersCollection      = "users"
	productsCollection   = "products"
	categoriesCollection = "categories"
	ordersCollection     = "orders"
)

var (
	ErrNotFound       = errors.New("document not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

type UserFilter struct {
	Search string
	Page   int
	Limit  int
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (string, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context, filter UserFilter) ([]domain.User, int64, error)
	AddToWishlist(ctx context.Context, userID, productID string) error
	RemoveFromWishlist(ctx context.Context, userID, productID string) error
}

type ProductFilter struct {
	Category string
	Featured bool
	Search   string
	Page     int
	Limit    int
}

type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) (string, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	FindByIDs(ctx context.Context, ids []string) ([]domain.Product, error)
	List(ctx context.Context, filter ProductFilter) ([]domain.Product, int64, error)
	Update(ctx context.Context, id string, product *domain.Product) error
	Delete(ctx context.Context, id string) error
	// DecrementStock subtracts quantity unconditionally; stock may go
	// negative when concurrent orders race past the remaining count.
	DecrementStock(ctx context.Context, id string, quantity int) error
	CountByCategory(ctx context.Context, categoryName string) (int64, error)
}

type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) (string, error)
	FindByID(ctx context.Context, id string) (*domain.Category, error)
	FindAll(ctx context.Context) ([]domain.Category, error)
	Update(ctx context.Context, id string, category *domain.Category) error
	Delete(ctx context.Context, id string) error
}

type OrderFilter struct {
	UserID string
	Status string
	Page   int
	Limit  int
}

type OrderRepository interface {
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, order *domain.Order) (string, error)
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context, filter OrderFilter) ([]domain.Order, int64, error)
	UpdateStatus(ctx context.Context, id, status, paymentStatus string) error
}

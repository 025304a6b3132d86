package service

import (
	"context"

	"github.com/abdo0vuln/e-commerce/internal/domain"
	"github.com/abdo0vuln/e-commerce/internal/repository"
)

type UserService struct {
	users    repository.UserRepository
	products repository.ProductRepository
}

func NewUserService(users repository.UserRepository, products repository.ProductRepository) *UserService {
	return &UserService{users: users, products: products}
}

func (s *UserService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *UserService) ListCustomers(ctx context.Context, filter repository.UserFilter) ([]domain.User, domain.Pagination, error) {
	users, total, err := s.users.List(ctx, filter)
	if err != nil {
		return nil, domain.Pagination{}, err
	}
	return users, domain.NewPagination(filter.Page, filter.Limit, total), nil
}

// GetWishlist resolves the user's wishlist ids to product documents.
// Ids that no longer resolve are silently dropped.
func (s *UserService) GetWishlist(ctx context.Context, userID string) ([]domain.Product, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(user.Wishlist) == 0 {
		return []domain.Product{}, nil
	}
	return s.products.FindByIDs(ctx, user.Wishlist)
}

// AddToWishlist is idempotent: adding a product already present is a no-op.
func (s *UserService) AddToWishlist(ctx context.Context, userID, productID string) error {
	return s.users.AddToWishlist(ctx, userID, productID)
}

// RemoveFromWishlist is idempotent: removing an absent product is a no-op.
func (s *UserService) RemoveFromWishlist(ctx context.Context, userID, productID string) error {
	return s.users.RemoveFromWishlist(ctx, userID, productID)
}

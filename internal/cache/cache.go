package cache

import (
	"context"
	"errors"

	"github.com/abdo0vuln/e-commerce/internal/domain"
)

// CatalogCache holds rendered product listing pages keyed by their
// filter tuple. Any product write invalidates every listing.
type CatalogCache interface {
	GetListing(ctx context.Context, key string) (*domain.ProductPage, error)
	SetListing(ctx context.Context, key string, page *domain.ProductPage) error
	InvalidateListings(ctx context.Context) error
}

var ErrCacheMiss = errors.New("cache miss")

package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/abdo0vuln/e-commerce/internal/cache"
	"github.com/abdo0vuln/e-commerce/internal/domain"
	"github.com/abdo0vuln/e-commerce/internal/repository"
)

var ErrCategoryInUse = errors.New("cannot delete category with products")

type CatalogService struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	cache      cache.CatalogCache
	sfg        singleflight.Group // Prevents cache stampede
}

func NewCatalogService(products repository.ProductRepository, categories repository.CategoryRepository, c cache.CatalogCache) *CatalogService {
	return &CatalogService{
		products:   products,
		categories: categories,
		cache:      c,
	}
}

func listingKey(f repository.ProductFilter) string {
	return fmt.Sprintf("%s|%t|%s|%d|%d", f.Category, f.Featured, f.Search, f.Page, f.Limit)
}

// ListProducts serves listing pages through the cache; concurrent
// misses for the same filter tuple collapse into one database query.
func (s *CatalogService) ListProducts(ctx context.Context, filter repository.ProductFilter) (*domain.ProductPage, error) {
	key := listingKey(filter)
	v, err, _ := s.sfg.Do(key, func() (interface{}, error) {
		page, err := s.cache.GetListing(ctx, key)
		if err == nil {
			return page, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			log.Printf("cache get error: %v", err) // log cache error but continue
		}

		products, total, err := s.products.List(ctx, filter)
		if err != nil {
			return nil, err
		}

		page = &domain.ProductPage{
			Products:   products,
			Pagination: domain.NewPagination(filter.Page, filter.Limit, total),
		}

		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			if err := s.cache.SetListing(ctx, key, page); err != nil {
				log.Printf("cache set error: %v", err)
			}
		}()

		return page, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.ProductPage), nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return s.products.FindByID(ctx, id)
}

func (s *CatalogService) CreateProduct(ctx context.Context, product *domain.Product) (string, error) {
	id, err := s.products.Create(ctx, product)
	if err != nil {
		log.Printf("repo create product error: %v", err)
		return "", err
	}
	s.invalidateListings()
	return id, nil
}

func (s *CatalogService) UpdateProduct(ctx context.Context, id string, product *domain.Product) error {
	if err := s.products.Update(ctx, id, product); err != nil {
		return err
	}
	s.invalidateListings()
	return nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.products.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateListings()
	return nil
}

// Slugify derives the URL-safe identifier from a category name:
// lower-cased, runs of whitespace collapsed to a single hyphen.
func Slugify(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categories.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range categories {
		count, err := s.products.CountByCategory(ctx, categories[i].Name)
		if err != nil {
			return nil, err
		}
		categories[i].ProductCount = count
	}
	return categories, nil
}

func (s *CatalogService) GetCategory(ctx context.Context, id string) (*domain.Category, error) {
	return s.categories.FindByID(ctx, id)
}

func (s *CatalogService) CreateCategory(ctx context.Context, category *domain.Category) (string, error) {
	category.Slug = Slugify(category.Name)
	id, err := s.categories.Create(ctx, category)
	if err != nil {
		log.Printf("repo create category error: %v", err)
		return "", err
	}
	return id, nil
}

func (s *CatalogService) UpdateCategory(ctx context.Context, id string, category *domain.Category) error {
	category.Slug = Slugify(category.Name)
	return s.categories.Update(ctx, id, category)
}

// DeleteCategory refuses to delete while any product still references
// the category, so deletion can never orphan a product.
func (s *CatalogService) DeleteCategory(ctx context.Context, id string) error {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return err
	}

	count, err := s.products.CountByCategory(ctx, category.Name)
	if err != nil {
		return fmt.Errorf("failed to count category products: %w", err)
	}
	if count > 0 {
		return ErrCategoryInUse
	}

	return s.categories.Delete(ctx, id)
}

func (s *CatalogService) invalidateListings() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.cache.InvalidateListings(ctx); err != nil {
		log.Printf("cache invalidate error: %v", err)
	}
}

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/abdo0vuln/e-commerce/internal/domain"
)

const listingPrefix = "products:"

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{
		client:  client,
		baseTTL: 15 * time.Minute,
	}
}

type RedisCache struct {
	client  *redis.Client
	baseTTL time.Duration
}

func (r *RedisCache) GetListing(ctx context.Context, key string) (*domain.ProductPage, error) {
	data, err := r.client.Get(ctx, listingPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var page domain.ProductPage
	if err := json.Unmarshal(data, &page); err != nil {
		return nil, fmt.Errorf("unmarshal listing failed: %w", err)
	}
	return &page, nil
}

func (r *RedisCache) SetListing(ctx context.Context, key string, page *domain.ProductPage) error {
	data, err := json.Marshal(page)
	if err != nil {
		return fmt.Errorf("marshal listing failed: %w", err)
	}

	jitter := time.Duration(rand.Intn(5)) * time.Minute
	ttl := r.baseTTL + jitter
	if err := r.client.Set(ctx, listingPrefix+key, data, ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

// InvalidateListings drops every cached listing page. Product writes
// are rare relative to reads, so a prefix scan is good enough.
func (r *RedisCache) InvalidateListings(ctx context.Context) error {
	iter := r.client.Scan(ctx, 0, listingPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := r.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("redis delete failed: %w", err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("redis scan failed: %w", err)
	}
	return nil
}

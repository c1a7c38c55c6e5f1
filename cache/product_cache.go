package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"bakery-service/models"
)

const (
	productListPrefix = "bakery:products:v:"
	versionKey        = "bakery:products:version"

	DefaultTTL = 5 * time.Minute
)

// ProductCache caches the product listing in Redis. Invalidation bumps a
// version counter so stale lists are never read again and simply expire.
type ProductCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewProductCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *ProductCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &ProductCache{client: client, ttl: ttl, logger: logger}
}

// Connect parses a redis:// URL and pings the server.
func Connect(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// GetProducts returns the cached listing and whether it was a hit.
func (c *ProductCache) GetProducts(ctx context.Context) ([]models.Product, bool) {
	version, err := c.version(ctx)
	if err != nil {
		c.logger.Warn("Product cache version unavailable", zap.Error(err))
		return nil, false
	}

	data, err := c.client.Get(ctx, listKey(version)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("Product cache read failed", zap.Error(err))
		}
		return nil, false
	}

	var products []models.Product
	if err := json.Unmarshal(data, &products); err != nil {
		c.logger.Warn("Failed to unmarshal cached products", zap.Error(err))
		return nil, false
	}
	return products, true
}

// SetProducts stores the listing under the current version.
func (c *ProductCache) SetProducts(ctx context.Context, products []models.Product) {
	version, err := c.version(ctx)
	if err != nil {
		return
	}

	data, err := json.Marshal(products)
	if err != nil {
		c.logger.Warn("Failed to marshal products for cache", zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, listKey(version), data, c.ttl).Err(); err != nil {
		c.logger.Warn("Failed to cache products", zap.Error(err))
	}
}

// Invalidate makes every previously cached listing unreachable.
func (c *ProductCache) Invalidate(ctx context.Context) error {
	v, err := c.client.Incr(ctx, versionKey).Result()
	if err != nil {
		return fmt.Errorf("failed to invalidate product cache: %w", err)
	}
	c.logger.Debug("Product cache invalidated", zap.Int64("version", v))
	return nil
}

func (c *ProductCache) version(ctx context.Context) (int64, error) {
	v, err := c.client.Get(ctx, versionKey).Int64()
	if err == nil {
		return v, nil
	}
	if !errors.Is(err, redis.Nil) {
		return 0, err
	}
	// SetNX so a concurrent Invalidate is not overwritten.
	if err := c.client.SetNX(ctx, versionKey, 1, 0).Err(); err != nil {
		return 0, err
	}
	return c.client.Get(ctx, versionKey).Int64()
}

func listKey(version int64) string {
	return fmt.Sprintf("%s%d", productListPrefix, version)
}

package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"kubera-backend/internal/database/models"
	"kubera-backend/internal/logger"

	"github.com/redis/go-redis/v9"
)

const tenantKeyPrefix = "kubera:tenant:"

// TenantCache holds shared-schema tenant rows keyed by subdomain. A miss or a
// cache failure always falls through to the database.
type TenantCache interface {
	Get(ctx context.Context, subdomain string) (*models.Tenant, bool)
	Set(ctx context.Context, tenant *models.Tenant)
	Invalidate(ctx context.Context, subdomain string)
}

// RedisTenantCache stores tenants as JSON in Redis.
type RedisTenantCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// Connect creates a Redis client from a URL and verifies connectivity.
func Connect(url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}

	rdb := redis.NewClient(opts)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return rdb, nil
}

// NewRedisTenantCache creates a tenant cache over rdb.
func NewRedisTenantCache(rdb *redis.Client, ttl time.Duration) *RedisTenantCache {
	return &RedisTenantCache{rdb: rdb, ttl: ttl}
}

func tenantKey(subdomain string) string {
	return tenantKeyPrefix + subdomain
}

// Get returns the cached tenant for subdomain.
func (c *RedisTenantCache) Get(ctx context.Context, subdomain string) (*models.Tenant, bool) {
	raw, err := c.rdb.Get(ctx, tenantKey(subdomain)).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.WithContext(ctx).WithError(err).Warn("Tenant cache read failed")
		}
		return nil, false
	}

	var tenant models.Tenant
	if err := json.Unmarshal(raw, &tenant); err != nil {
		logger.WithContext(ctx).WithError(err).Warn("Dropping undecodable tenant cache entry")
		c.Invalidate(ctx, subdomain)
		return nil, false
	}
	return &tenant, true
}

// Set caches tenant under its subdomain.
func (c *RedisTenantCache) Set(ctx context.Context, tenant *models.Tenant) {
	if tenant == nil {
		return
	}
	raw, err := json.Marshal(tenant)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, tenantKey(tenant.Subdomain), raw, c.ttl).Err(); err != nil {
		logger.WithContext(ctx).WithError(err).Warn("Tenant cache write failed")
	}
}

// Invalidate drops the cached entry for subdomain.
func (c *RedisTenantCache) Invalidate(ctx context.Context, subdomain string) {
	if err := c.rdb.Del(ctx, tenantKey(subdomain)).Err(); err != nil {
		logger.WithContext(ctx).WithError(err).Warn("Tenant cache invalidation failed")
	}
}

// NoopTenantCache never stores anything. Used when REDIS_URL is unset.
type NoopTenantCache struct{}

func (NoopTenantCache) Get(context.Context, string) (*models.Tenant, bool) { return nil, false }
func (NoopTenantCache) Set(context.Context, *models.Tenant)                {}
func (NoopTenantCache) Invalidate(context.Context, string)                 {}

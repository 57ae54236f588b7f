//go:build integration
// +build integration

package cache

import (
	"context"
	"fmt"
	"testing"
	"time"

	"kubera-backend/internal/database/models"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisTenantCacheTestSuite struct {
	suite.Suite
	pool     *dockertest.Pool
	resource *dockertest.Resource
	rdb      *redis.Client
	cache    *RedisTenantCache
}

func (suite *RedisTenantCacheTestSuite) SetupSuite() {
	pool, err := dockertest.NewPool("")
	suite.Require().NoError(err)
	suite.pool = pool

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Tag:        "7-alpine",
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	suite.Require().NoError(err)
	suite.resource = resource

	url := fmt.Sprintf("redis://127.0.0.1:%s/0", resource.GetPort("6379/tcp"))
	pool.MaxWait = time.Minute
	suite.Require().NoError(pool.Retry(func() error {
		rdb, err := Connect(url)
		if err != nil {
			return err
		}
		suite.rdb = rdb
		return nil
	}))

	suite.cache = NewRedisTenantCache(suite.rdb, time.Minute)
}

func (suite *RedisTenantCacheTestSuite) TearDownSuite() {
	if suite.rdb != nil {
		_ = suite.rdb.Close()
	}
	if suite.pool != nil && suite.resource != nil {
		_ = suite.pool.Purge(suite.resource)
	}
}

func (suite *RedisTenantCacheTestSuite) TestSetGetInvalidate() {
	ctx := context.Background()
	tenant := &models.Tenant{
		ID:         3,
		Name:       "Acme",
		Subdomain:  "acme",
		SchemaName: "tenant_acme",
		Status:     models.TenantStatusActive,
	}

	_, ok := suite.cache.Get(ctx, "acme")
	suite.False(ok)

	suite.cache.Set(ctx, tenant)
	cached, ok := suite.cache.Get(ctx, "acme")
	suite.Require().True(ok)
	suite.Equal(tenant.ID, cached.ID)
	suite.Equal(tenant.SchemaName, cached.SchemaName)
	suite.Equal(models.TenantStatusActive, cached.Status)

	suite.cache.Invalidate(ctx, "acme")
	_, ok = suite.cache.Get(ctx, "acme")
	suite.False(ok)
}

func (suite *RedisTenantCacheTestSuite) TestCorruptEntryIsDropped() {
	ctx := context.Background()
	suite.Require().NoError(suite.rdb.Set(ctx, tenantKey("broken"), "{not json", time.Minute).Err())

	_, ok := suite.cache.Get(ctx, "broken")
	suite.False(ok)

	exists, err := suite.rdb.Exists(ctx, tenantKey("broken")).Result()
	suite.NoError(err)
	suite.Zero(exists)
}

func TestRedisTenantCacheTestSuite(t *testing.T) {
	suite.Run(t, new(RedisTenantCacheTestSuite))
}

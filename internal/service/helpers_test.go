package service_test

import (
	"context"
	"time"

	"kubera-backend/internal/database/models"
	apperrors "kubera-backend/internal/errors"
	"kubera-backend/internal/tenant"

	"gorm.io/gorm"
)

var fixedNow = time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

// fakeRunner stands in for the tenant gate: it enforces the same tenant
// context rules, records the bound schemas and hands fn a nil transaction.
type fakeRunner struct {
	schemas []string
}

func (r *fakeRunner) Run(ctx context.Context, info *tenant.Info, fn func(tx *gorm.DB) error) error {
	if info == nil {
		return apperrors.ErrNoTenantContext
	}
	return r.RunForSchema(ctx, info.SchemaName, fn)
}

func (r *fakeRunner) RunForSchema(_ context.Context, schema string, fn func(tx *gorm.DB) error) error {
	if schema == "" || schema == tenant.PublicSchema {
		return apperrors.ErrNoTenantContext
	}
	if err := tenant.ValidateSchemaName(schema); err != nil {
		return err
	}
	r.schemas = append(r.schemas, schema)
	return fn(nil)
}

// fakeHasher prefixes passwords instead of hashing them.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (fakeHasher) Verify(password, hash string) bool { return hash == "hashed:"+password }

func acmeInfo() *tenant.Info {
	return &tenant.Info{
		ID:         1,
		Name:       "Acme",
		Subdomain:  "acme",
		SchemaName: "tenant_acme",
		Status:     models.TenantStatusActive,
	}
}

func callerContext(userID int64, role string, isOwner bool) *tenant.BaseContext {
	return &tenant.BaseContext{
		User: tenant.RequestUser{
			UserID:  userID,
			Email:   "caller@acme.test",
			Role:    role,
			IsOwner: isOwner,
			Tenant:  *acmeInfo(),
		},
		Authorization: tenant.NewAuthorization(role, isOwner),
		IPAddress:     "10.0.0.1",
		UserAgent:     "test-agent",
		TokenJTI:      "current-jti",
	}
}

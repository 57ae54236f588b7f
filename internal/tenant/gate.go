package tenant

import (
	"context"

	apperrors "kubera-backend/internal/errors"
	"kubera-backend/internal/logger"

	"gorm.io/gorm"
)

// bindSchemaSQL scopes the search path to the current transaction only, so a
// pooled connection never leaks one tenant's schema into the next checkout.
const bindSchemaSQL = "SELECT set_config('search_path', quote_ident(?), true)"

// Runner scopes callbacks to exactly one tenant schema. Implemented by Gate.
type Runner interface {
	Run(ctx context.Context, info *Info, fn func(tx *gorm.DB) error) error
	RunForSchema(ctx context.Context, schema string, fn func(tx *gorm.DB) error) error
}

var _ Runner = (*Gate)(nil)

// Gate is the only way to reach tenant-scoped tables. Every call opens a
// transaction bound to exactly one tenant schema; there is no fallback to
// the shared schema.
type Gate struct {
	db *gorm.DB
}

// NewGate creates a gate over the given connection pool.
func NewGate(db *gorm.DB) *Gate {
	return &Gate{db: db}
}

// Run executes fn in a transaction bound to info's schema.
func (g *Gate) Run(ctx context.Context, info *Info, fn func(tx *gorm.DB) error) error {
	if info == nil {
		return apperrors.ErrNoTenantContext
	}
	return g.RunForSchema(ctx, info.SchemaName, fn)
}

// RunForSchema executes fn against a schema by name. Admin tooling and the
// session reaper use it; request handlers go through Run.
func (g *Gate) RunForSchema(ctx context.Context, schema string, fn func(tx *gorm.DB) error) error {
	if schema == "" || schema == PublicSchema {
		return apperrors.ErrNoTenantContext
	}
	if err := ValidateSchemaName(schema); err != nil {
		return err
	}

	logger.WithContext(ctx).WithField("schema", schema).Debug("Binding tenant schema")

	var fnErr error
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(bindSchemaSQL, schema).Error; err != nil {
			return apperrors.NewStorageError("bind tenant schema", err)
		}
		fnErr = fn(tx)
		return fnErr
	})
	if err != nil && fnErr == nil && !apperrors.IsStorage(err) {
		return apperrors.NewStorageError("tenant transaction", err)
	}
	return err
}

package database

import (
	"context"
	"fmt"

	"kubera-backend/internal/database/models"
	"kubera-backend/internal/logger"
	"kubera-backend/internal/tenant"

	"github.com/jackc/pgx/v5"
	"gorm.io/gorm"
)

// Migrator owns the schema lifecycle: the shared schema and one schema per tenant.
type Migrator struct {
	db *gorm.DB
}

// NewMigrator creates a migrator over db.
func NewMigrator(db *gorm.DB) *Migrator {
	return &Migrator{db: db}
}

func quoteIdent(name string) string {
	return pgx.Identifier{name}.Sanitize()
}

// CreateSharedSchema drops and recreates the shared schema. Destroys every
// shared row; tenant schemas are left untouched.
func (m *Migrator) CreateSharedSchema(ctx context.Context) error {
	log := logger.WithContext(ctx)
	log.Warn("Recreating shared schema")

	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		schema := quoteIdent(tenant.PublicSchema)
		if err := tx.Exec("DROP SCHEMA IF EXISTS " + schema + " CASCADE").Error; err != nil {
			return fmt.Errorf("drop shared schema: %w", err)
		}
		if err := tx.Exec("CREATE SCHEMA " + schema).Error; err != nil {
			return fmt.Errorf("create shared schema: %w", err)
		}
		if err := tx.AutoMigrate(models.SharedModels()...); err != nil {
			return fmt.Errorf("migrate shared schema: %w", err)
		}
		return nil
	})
}

// InitSharedSchema creates missing shared tables without dropping anything.
func (m *Migrator) InitSharedSchema(ctx context.Context) error {
	if err := m.db.WithContext(ctx).AutoMigrate(models.SharedModels()...); err != nil {
		return fmt.Errorf("migrate shared schema: %w", err)
	}
	return nil
}

// CreateTenantSchema (re)creates a tenant schema from the tenant table
// template. Any existing schema of that name is dropped first.
func (m *Migrator) CreateTenantSchema(ctx context.Context, schemaName string) error {
	if err := tenant.ValidateSchemaName(schemaName); err != nil {
		return err
	}

	log := logger.WithContext(ctx).WithField("schema", schemaName)
	schema := quoteIdent(schemaName)

	err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DROP SCHEMA IF EXISTS " + schema + " CASCADE").Error; err != nil {
			return fmt.Errorf("drop tenant schema: %w", err)
		}
		if err := tx.Exec("CREATE SCHEMA " + schema).Error; err != nil {
			return fmt.Errorf("create tenant schema: %w", err)
		}
		if err := tx.Exec("SELECT set_config('search_path', quote_ident(?), true)", schemaName).Error; err != nil {
			return fmt.Errorf("bind tenant schema: %w", err)
		}
		if err := tx.AutoMigrate(models.TenantModels()...); err != nil {
			return fmt.Errorf("migrate tenant schema: %w", err)
		}
		return nil
	})
	if err != nil {
		log.WithError(err).Error("Failed to create tenant schema")
		return err
	}

	log.Info("Tenant schema created")
	return nil
}

// DropTenantSchema removes a tenant schema and everything in it.
func (m *Migrator) DropTenantSchema(ctx context.Context, schemaName string) error {
	if err := tenant.ValidateSchemaName(schemaName); err != nil {
		return err
	}
	if err := m.db.WithContext(ctx).Exec("DROP SCHEMA IF EXISTS " + quoteIdent(schemaName) + " CASCADE").Error; err != nil {
		return fmt.Errorf("drop tenant schema: %w", err)
	}
	logger.WithContext(ctx).WithField("schema", schemaName).Warn("Tenant schema dropped")
	return nil
}

// SchemaExists reports whether a schema with the given name exists.
func (m *Migrator) SchemaExists(ctx context.Context, schemaName string) (bool, error) {
	var count int64
	err := m.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM information_schema.schemata WHERE schema_name = ?", schemaName).
		Scan(&count).Error
	if err != nil {
		return false, fmt.Errorf("check schema: %w", err)
	}
	return count > 0, nil
}

// ListTenantSchemas returns all schemas carrying the tenant prefix.
func (m *Migrator) ListTenantSchemas(ctx context.Context) ([]string, error) {
	var names []string
	err := m.db.WithContext(ctx).
		Raw("SELECT schema_name FROM information_schema.schemata WHERE starts_with(schema_name, ?) ORDER BY schema_name", tenant.SchemaPrefix).
		Scan(&names).Error
	if err != nil {
		return nil, fmt.Errorf("list tenant schemas: %w", err)
	}
	return names, nil
}

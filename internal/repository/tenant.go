package repository

import (
	"context"
	"time"

	"kubera-backend/internal/database/models"

	"gorm.io/gorm"
)

// TenantRepository handles the shared tenants table
type TenantRepository struct {
	db *gorm.DB
}

// NewTenantRepository creates a new tenant repository
func NewTenantRepository(db *gorm.DB) *TenantRepository {
	return &TenantRepository{db: db}
}

// Create creates a new tenant row
func (r *TenantRepository) Create(ctx context.Context, tenant *models.Tenant) error {
	return r.db.WithContext(ctx).Create(tenant).Error
}

// GetByID retrieves a tenant by ID
func (r *TenantRepository) GetByID(ctx context.Context, id int64) (*models.Tenant, error) {
	var tenant models.Tenant
	err := r.db.WithContext(ctx).First(&tenant, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &tenant, nil
}

// GetBySubdomain retrieves a tenant by subdomain
func (r *TenantRepository) GetBySubdomain(ctx context.Context, subdomain string) (*models.Tenant, error) {
	var tenant models.Tenant
	err := r.db.WithContext(ctx).First(&tenant, "subdomain = ?", subdomain).Error
	if err != nil {
		return nil, err
	}
	return &tenant, nil
}

// List retrieves tenants, optionally filtered by status
func (r *TenantRepository) List(ctx context.Context, status *models.TenantStatus) ([]models.Tenant, error) {
	var tenants []models.Tenant
	query := r.db.WithContext(ctx).Model(&models.Tenant{})
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	if err := query.Order("id ASC").Find(&tenants).Error; err != nil {
		return nil, err
	}
	return tenants, nil
}

// ListSoftDeleted retrieves tenants awaiting hard deletion, optionally only
// those soft-deleted before the given instant
func (r *TenantRepository) ListSoftDeleted(ctx context.Context, deletedBefore *time.Time) ([]models.Tenant, error) {
	var tenants []models.Tenant
	query := r.db.WithContext(ctx).Model(&models.Tenant{}).
		Where("status = ?", models.TenantStatusPendingDeletion)
	if deletedBefore != nil {
		query = query.Where("deleted_at < ?", *deletedBefore)
	}
	if err := query.Order("deleted_at ASC").Find(&tenants).Error; err != nil {
		return nil, err
	}
	return tenants, nil
}

// Update saves every column of the tenant
func (r *TenantRepository) Update(ctx context.Context, tenant *models.Tenant) error {
	return r.db.WithContext(ctx).Save(tenant).Error
}

// Delete permanently removes a tenant row
func (r *TenantRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&models.Tenant{}, "id = ?", id).Error
}

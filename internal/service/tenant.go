package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"kubera-backend/internal/cache"
	"kubera-backend/internal/database/models"
	apperrors "kubera-backend/internal/errors"
	"kubera-backend/internal/logger"
	"kubera-backend/internal/repository"
	"kubera-backend/internal/tenant"

	"github.com/go-playground/validator/v10"
)

// SchemaManager creates and drops tenant schemas. Implemented by database.Migrator.
type SchemaManager interface {
	CreateTenantSchema(ctx context.Context, schemaName string) error
	DropTenantSchema(ctx context.Context, schemaName string) error
	SchemaExists(ctx context.Context, schemaName string) (bool, error)
}

// TenantService manages the shared tenant registry and each tenant's schema lifecycle
type TenantService struct {
	repo      repository.TenantRepositoryInterface
	schemas   SchemaManager
	cache     cache.TenantCache
	validator *validator.Validate
	now       Clock
}

// NewTenantService creates a new tenant service. A nil cache disables caching.
func NewTenantService(repo repository.TenantRepositoryInterface, schemas SchemaManager, tenantCache cache.TenantCache, validator *validator.Validate) *TenantService {
	if tenantCache == nil {
		tenantCache = cache.NoopTenantCache{}
	}
	return &TenantService{
		repo:      repo,
		schemas:   schemas,
		cache:     tenantCache,
		validator: validator,
		now:       systemClock,
	}
}

// WithClock replaces the service clock.
func (s *TenantService) WithClock(now Clock) *TenantService {
	s.now = now
	return s
}

// CreateTenantRequest represents the data needed to create a tenant
type CreateTenantRequest struct {
	Name      string                 `json:"name" validate:"required,max=255"`
	Subdomain string                 `json:"subdomain" validate:"required,max=56"`
	Status    models.TenantStatus    `json:"status"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

// Create registers a tenant and builds its schema. The row is removed again
// when schema creation fails.
func (s *TenantService) Create(ctx context.Context, req *CreateTenantRequest) (*models.Tenant, error) {
	req.Subdomain = strings.ToLower(strings.TrimSpace(req.Subdomain))
	req.Name = strings.TrimSpace(req.Name)
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	if err := tenant.ValidateSubdomain(req.Subdomain); err != nil {
		return nil, err
	}
	if req.Status == "" {
		req.Status = models.TenantStatusActive
	}
	if !req.Status.IsValid() || req.Status == models.TenantStatusDeleted || req.Status == models.TenantStatusPendingDeletion {
		return nil, apperrors.ErrInvalidStatus
	}

	if existing, err := s.repo.GetBySubdomain(ctx, req.Subdomain); err == nil && existing != nil {
		return nil, apperrors.ErrTenantExists
	} else if err != nil && !repository.IsNotFound(err) {
		return nil, apperrors.NewStorageError("lookup tenant", err)
	}

	t := &models.Tenant{
		Name:       req.Name,
		Subdomain:  req.Subdomain,
		SchemaName: tenant.SchemaNameFor(req.Subdomain),
		Status:     req.Status,
		Metadata:   mustJSON(req.Metadata),
	}
	if err := s.repo.Create(ctx, t); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrTenantExists
		}
		return nil, apperrors.NewStorageError("create tenant", err)
	}

	if err := s.schemas.CreateTenantSchema(ctx, t.SchemaName); err != nil {
		if delErr := s.repo.Delete(ctx, t.ID); delErr != nil {
			logger.WithContext(ctx).WithError(delErr).WithField("tenant_id", t.ID).Error("Failed to roll back tenant row")
		}
		return nil, apperrors.NewStorageError("create tenant schema", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"tenant_id": t.ID,
		"subdomain": t.Subdomain,
		"schema":    t.SchemaName,
	}).Info("Tenant created")
	return t, nil
}

// GetByID retrieves a tenant by ID
func (s *TenantService) GetByID(ctx context.Context, id int64) (*models.Tenant, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperrors.ErrTenantNotFound
		}
		return nil, apperrors.NewStorageError("lookup tenant", err)
	}
	return t, nil
}

// GetBySubdomain retrieves a tenant by subdomain, consulting the cache first.
// The shared sentinel never names a tenant.
func (s *TenantService) GetBySubdomain(ctx context.Context, subdomain string) (*models.Tenant, error) {
	if subdomain == "" || subdomain == tenant.Public {
		return nil, apperrors.ErrTenantSubdomainRequired
	}
	if t, ok := s.cache.Get(ctx, subdomain); ok {
		return t, nil
	}

	t, err := s.repo.GetBySubdomain(ctx, subdomain)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperrors.ErrTenantNotFound
		}
		return nil, apperrors.NewStorageError("lookup tenant", err)
	}
	s.cache.Set(ctx, t)
	return t, nil
}

// List retrieves tenants, optionally filtered by status
func (s *TenantService) List(ctx context.Context, status *models.TenantStatus) ([]models.Tenant, error) {
	if status != nil && !status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}
	tenants, err := s.repo.List(ctx, status)
	if err != nil {
		return nil, apperrors.NewStorageError("list tenants", err)
	}
	return tenants, nil
}

// UpdateStatus moves a tenant along the status state machine. Setting the
// current status again is a no-op.
func (s *TenantService) UpdateStatus(ctx context.Context, id int64, status models.TenantStatus) (*models.Tenant, error) {
	if !status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}
	t, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t.Status == status {
		return t, nil
	}
	if err := s.transition(t, status); err != nil {
		return nil, err
	}
	if status == models.TenantStatusDeleted && t.DeletedAt == nil {
		now := s.now()
		t.DeletedAt = &now
	}
	if err := s.save(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// SoftDelete marks a tenant for deletion. Its users can no longer sign in.
func (s *TenantService) SoftDelete(ctx context.Context, id int64, reason, deletedBy string) (*models.Tenant, error) {
	t, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.transition(t, models.TenantStatusPendingDeletion); err != nil {
		return nil, err
	}
	now := s.now()
	t.DeletedAt = &now
	t.DeletionReason = strPtr(reason)
	t.DeletedBy = strPtr(deletedBy)
	if err := s.save(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Restore brings a soft-deleted tenant back to active.
func (s *TenantService) Restore(ctx context.Context, id int64) (*models.Tenant, error) {
	t, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t.Status != models.TenantStatusPendingDeletion {
		return nil, apperrors.ErrTenantNotPendingDeletion
	}
	if err := s.transition(t, models.TenantStatusActive); err != nil {
		return nil, err
	}
	t.DeletedAt = nil
	t.DeletionReason = nil
	t.DeletedBy = nil
	if err := s.save(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// HardDelete drops the tenant schema and removes the row. Irreversible.
// Without force the tenant must have been soft-deleted first.
func (s *TenantService) HardDelete(ctx context.Context, id int64, force bool) error {
	t, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !force && t.Status != models.TenantStatusPendingDeletion && t.Status != models.TenantStatusDeleted {
		return apperrors.ErrTenantNotPendingDeletion
	}

	if err := s.schemas.DropTenantSchema(ctx, t.SchemaName); err != nil {
		return apperrors.NewStorageError("drop tenant schema", err)
	}
	if err := s.repo.Delete(ctx, t.ID); err != nil {
		return apperrors.NewStorageError("delete tenant", err)
	}
	s.cache.Invalidate(ctx, t.Subdomain)

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"tenant_id": t.ID,
		"subdomain": t.Subdomain,
		"forced":    force,
	}).Warn("Tenant permanently deleted")
	return nil
}

// ListSoftDeleted lists tenants awaiting hard deletion. With olderThanDays > 0
// only tenants soft-deleted at least that many days ago are returned.
func (s *TenantService) ListSoftDeleted(ctx context.Context, olderThanDays int) ([]models.Tenant, error) {
	var before *time.Time
	if olderThanDays > 0 {
		cutoff := s.now().AddDate(0, 0, -olderThanDays)
		before = &cutoff
	}
	tenants, err := s.repo.ListSoftDeleted(ctx, before)
	if err != nil {
		return nil, apperrors.NewStorageError("list deleted tenants", err)
	}
	return tenants, nil
}

// SchemaExists reports whether the tenant's schema is present.
func (s *TenantService) SchemaExists(ctx context.Context, t *models.Tenant) (bool, error) {
	ok, err := s.schemas.SchemaExists(ctx, t.SchemaName)
	if err != nil {
		return false, apperrors.NewStorageError("check tenant schema", err)
	}
	return ok, nil
}

// Metadata decodes the tenant's metadata map.
func (s *TenantService) Metadata(t *models.Tenant) (map[string]interface{}, error) {
	meta := map[string]interface{}{}
	if len(t.Metadata) == 0 {
		return meta, nil
	}
	if err := json.Unmarshal(t.Metadata, &meta); err != nil {
		return nil, fmt.Errorf("decode tenant metadata: %w", err)
	}
	return meta, nil
}

func (s *TenantService) transition(t *models.Tenant, next models.TenantStatus) error {
	if !t.Status.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", apperrors.ErrInvalidStatusTransition, t.Status, next)
	}
	t.Status = next
	return nil
}

func (s *TenantService) save(ctx context.Context, t *models.Tenant) error {
	if err := s.repo.Update(ctx, t); err != nil {
		return apperrors.NewStorageError("update tenant", err)
	}
	s.cache.Invalidate(ctx, t.Subdomain)
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"tenant_id": t.ID,
		"status":    t.Status,
	}).Info("Tenant updated")
	return nil
}

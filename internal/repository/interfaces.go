package repository

import (
	"context"
	"time"

	"kubera-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// Repositories over tenant-schema tables take the transaction handed out by
// tenant.Gate as their first argument and never open connections themselves.

// TenantRepositoryInterface defines the interface for the shared tenant registry
type TenantRepositoryInterface interface {
	Create(ctx context.Context, tenant *models.Tenant) error
	GetByID(ctx context.Context, id int64) (*models.Tenant, error)
	GetBySubdomain(ctx context.Context, subdomain string) (*models.Tenant, error)
	List(ctx context.Context, status *models.TenantStatus) ([]models.Tenant, error)
	ListSoftDeleted(ctx context.Context, deletedBefore *time.Time) ([]models.Tenant, error)
	Update(ctx context.Context, tenant *models.Tenant) error
	Delete(ctx context.Context, id int64) error
}

// TenantUserRepositoryInterface defines the interface for tenant user operations
type TenantUserRepositoryInterface interface {
	Create(tx *gorm.DB, user *models.TenantUser) error
	GetByID(tx *gorm.DB, id int64) (*models.TenantUser, error)
	GetByEmail(tx *gorm.DB, email string) (*models.TenantUser, error)
	List(tx *gorm.DB, limit, offset int) ([]models.TenantUser, int64, error)
	Update(tx *gorm.DB, user *models.TenantUser) error
	UpdateLastLogin(tx *gorm.DB, id int64, at time.Time) error
	UpdatePassword(tx *gorm.DB, id int64, passwordHash string) error
	Delete(tx *gorm.DB, id int64) error
}

// SessionRepositoryInterface defines the interface for session store operations
type SessionRepositoryInterface interface {
	Create(tx *gorm.DB, session *models.UserSession) error
	GetByID(tx *gorm.DB, id uuid.UUID) (*models.UserSession, error)
	GetByJTI(tx *gorm.DB, jti string) (*models.UserSession, error)
	Touch(tx *gorm.DB, id uuid.UUID, at time.Time) error
	Revoke(tx *gorm.DB, jti string, reason models.RevocationReason, revokedBy string, at time.Time) (bool, error)
	RevokeAllForUser(tx *gorm.DB, userID int64, exceptJTI string, reason models.RevocationReason, revokedBy string, at time.Time) (int64, error)
	ListForUser(tx *gorm.DB, userID int64, activeOnly bool, now time.Time) ([]models.UserSession, error)
	CountActive(tx *gorm.DB, userID int64, now time.Time) (int64, error)
	DeleteExpiredBefore(tx *gorm.DB, cutoff time.Time) (int64, error)
}

// InvitationRepositoryInterface defines the interface for invitation operations
type InvitationRepositoryInterface interface {
	Create(tx *gorm.DB, invitation *models.TenantInvitation) error
	GetByID(tx *gorm.DB, id int64) (*models.TenantInvitation, error)
	GetByToken(tx *gorm.DB, token string) (*models.TenantInvitation, error)
	List(tx *gorm.DB, status *models.InvitationStatus) ([]models.TenantInvitation, error)
	Update(tx *gorm.DB, invitation *models.TenantInvitation) error
}

// AuditLogRepositoryInterface defines the interface for audit log operations
type AuditLogRepositoryInterface interface {
	Create(tx *gorm.DB, entry *models.AuditLog) error
	List(tx *gorm.DB, filter AuditLogFilter, limit, offset int) ([]models.AuditLog, int64, error)
}

// TagRepositoryInterface defines the interface for tag operations
type TagRepositoryInterface interface {
	Create(tx *gorm.DB, tag *models.Tag) error
	GetByID(tx *gorm.DB, id int64) (*models.Tag, error)
	GetByName(tx *gorm.DB, name string) (*models.Tag, error)
	GetByIDs(tx *gorm.DB, ids []int64) ([]models.Tag, error)
	List(tx *gorm.DB, limit, offset int) ([]models.Tag, int64, error)
	Update(tx *gorm.DB, tag *models.Tag) error
	Delete(tx *gorm.DB, id int64) error
}

// ContractRepositoryInterface defines the interface for contract operations
type ContractRepositoryInterface interface {
	Create(tx *gorm.DB, contract *models.Contract) error
	GetByID(tx *gorm.DB, id int64) (*models.Contract, error)
	List(tx *gorm.DB, limit, offset int) ([]models.Contract, int64, error)
	Update(tx *gorm.DB, contract *models.Contract) error
	Delete(tx *gorm.DB, id int64) error
}

// TagContractRepositoryInterface defines the interface for the tag/contract join table
type TagContractRepositoryInterface interface {
	Create(tx *gorm.DB, link *models.TagContract) error
	Exists(tx *gorm.DB, tagID, contractID int64) (bool, error)
	Delete(tx *gorm.DB, tagID, contractID int64) (bool, error)
	DeleteByTag(tx *gorm.DB, tagID int64) (int64, error)
	DeleteByContract(tx *gorm.DB, contractID int64) (int64, error)
	TagIDsByContract(tx *gorm.DB, contractIDs []int64) (map[int64][]int64, error)
}

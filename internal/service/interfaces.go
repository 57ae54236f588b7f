package service

import (
	"context"

	"kubera-backend/internal/database/models"
	"kubera-backend/internal/tenant"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// TenantServiceInterface defines the tenant registry operations used by request handling
type TenantServiceInterface interface {
	GetBySubdomain(ctx context.Context, subdomain string) (*models.Tenant, error)
	GetByID(ctx context.Context, id int64) (*models.Tenant, error)
}

// SessionServiceInterface defines the interface for the caller-facing session API
type SessionServiceInterface interface {
	ListSessions(ctx context.Context, bc *tenant.BaseContext, activeOnly bool) (*SessionListResponse, error)
	GetSession(ctx context.Context, bc *tenant.BaseContext, id uuid.UUID) (*SessionResponse, error)
	RevokeSession(ctx context.Context, bc *tenant.BaseContext, id uuid.UUID) error
	RevokeAllSessions(ctx context.Context, bc *tenant.BaseContext, exceptCurrent bool) (int64, error)
}

// TenantUserServiceInterface defines the interface for tenant user administration
type TenantUserServiceInterface interface {
	List(ctx context.Context, bc *tenant.BaseContext, limit, offset int) (*UsersListResponse, error)
	Get(ctx context.Context, bc *tenant.BaseContext, id int64) (*UserResponse, error)
	Create(ctx context.Context, bc *tenant.BaseContext, req *CreateUserRequest) (*UserResponse, error)
	Update(ctx context.Context, bc *tenant.BaseContext, id int64, req *UpdateUserRequest) (*UserResponse, error)
	Delete(ctx context.Context, bc *tenant.BaseContext, id int64) error
}

// InvitationServiceInterface defines the interface for invitation service
type InvitationServiceInterface interface {
	Create(ctx context.Context, info *tenant.Info, bc *tenant.BaseContext, req *CreateInvitationRequest, createdBy string) (*InvitationResponse, error)
	GetByToken(ctx context.Context, info *tenant.Info, token string) (*InvitationResponse, error)
	Accept(ctx context.Context, info *tenant.Info, req *AcceptInvitationRequest) (*models.TenantUser, error)
	Revoke(ctx context.Context, bc *tenant.BaseContext, id int64) error
	List(ctx context.Context, bc *tenant.BaseContext, status *models.InvitationStatus) ([]InvitationResponse, error)
}

// AuditServiceInterface defines the interface for reading the audit trail
type AuditServiceInterface interface {
	List(ctx context.Context, bc *tenant.BaseContext, query AuditLogQuery) (*AuditLogListResponse, error)
}

// TagServiceInterface defines the interface for tag service
type TagServiceInterface interface {
	Create(ctx context.Context, bc *tenant.BaseContext, req *CreateTagRequest) (*models.Tag, error)
	Get(ctx context.Context, bc *tenant.BaseContext, id int64) (*models.Tag, error)
	List(ctx context.Context, bc *tenant.BaseContext, limit, offset int) (*TagListResponse, error)
	Update(ctx context.Context, bc *tenant.BaseContext, id int64, req *UpdateTagRequest) (*models.Tag, error)
	Delete(ctx context.Context, bc *tenant.BaseContext, id int64) error
}

// ContractServiceInterface defines the interface for contract service
type ContractServiceInterface interface {
	Create(ctx context.Context, bc *tenant.BaseContext, req *CreateContractRequest) (*ContractWithTags, error)
	Get(ctx context.Context, bc *tenant.BaseContext, id int64) (*ContractWithTags, error)
	List(ctx context.Context, bc *tenant.BaseContext, limit, offset int) (*ContractListResponse, error)
	Update(ctx context.Context, bc *tenant.BaseContext, id int64, req *UpdateContractRequest) (*ContractWithTags, error)
	Delete(ctx context.Context, bc *tenant.BaseContext, id int64) error
	LinkTag(ctx context.Context, bc *tenant.BaseContext, contractID, tagID int64) error
	UnlinkTag(ctx context.Context, bc *tenant.BaseContext, contractID, tagID int64) error
}

var (
	_ TenantServiceInterface     = (*TenantService)(nil)
	_ SessionServiceInterface    = (*SessionService)(nil)
	_ TenantUserServiceInterface = (*TenantUserService)(nil)
	_ InvitationServiceInterface = (*InvitationService)(nil)
	_ AuditServiceInterface      = (*AuditService)(nil)
	_ TagServiceInterface        = (*TagService)(nil)
	_ ContractServiceInterface   = (*ContractService)(nil)
)

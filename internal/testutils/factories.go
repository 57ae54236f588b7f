package testutils

import (
	"fmt"
	"time"

	"kubera-backend/internal/database/models"
	"kubera-backend/internal/tenant"

	"github.com/google/uuid"
)

// TenantFactory provides methods to create test Tenant data
type TenantFactory struct{}

// NewTenantFactory creates a new TenantFactory
func NewTenantFactory() *TenantFactory {
	return &TenantFactory{}
}

// Create creates an active test Tenant with default values
func (f *TenantFactory) Create() *models.Tenant {
	return f.WithSubdomain("acme")
}

// WithSubdomain creates an active tenant whose schema name follows the subdomain
func (f *TenantFactory) WithSubdomain(subdomain string) *models.Tenant {
	now := time.Now()
	return &models.Tenant{
		Name:       "Tenant " + subdomain,
		Subdomain:  subdomain,
		SchemaName: tenant.SchemaNameFor(subdomain),
		Status:     models.TenantStatusActive,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// WithStatus creates a tenant in the given lifecycle state
func (f *TenantFactory) WithStatus(subdomain string, status models.TenantStatus) *models.Tenant {
	t := f.WithSubdomain(subdomain)
	t.Status = status
	if status == models.TenantStatusPendingDeletion || status == models.TenantStatusDeleted {
		deletedAt := time.Now()
		t.DeletedAt = &deletedAt
	}
	return t
}

// TenantUserFactory provides methods to create test TenantUser data
type TenantUserFactory struct{}

// NewTenantUserFactory creates a new TenantUserFactory
func NewTenantUserFactory() *TenantUserFactory {
	return &TenantUserFactory{}
}

// Create creates an active member with default values
func (f *TenantUserFactory) Create() *models.TenantUser {
	return f.WithEmail(fmt.Sprintf("user-%s@acme.test", uuid.NewString()[:8]))
}

// WithEmail creates an active member with a custom email
func (f *TenantUserFactory) WithEmail(email string) *models.TenantUser {
	first, last := "Test", "User"
	now := time.Now()
	return &models.TenantUser{
		Email:     email,
		FirstName: &first,
		LastName:  &last,
		Role:      models.RoleMember,
		IsActive:  true,
		TimestampedModel: models.TimestampedModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

// WithRole creates an active user with the given role and password hash
func (f *TenantUserFactory) WithRole(email, role, passwordHash string) *models.TenantUser {
	u := f.WithEmail(email)
	u.Role = role
	if passwordHash != "" {
		u.PasswordHash = &passwordHash
	}
	return u
}

// SessionFactory provides methods to create test UserSession data
type SessionFactory struct{}

// NewSessionFactory creates a new SessionFactory
func NewSessionFactory() *SessionFactory {
	return &SessionFactory{}
}

// Create creates a session for userID that expires in an hour
func (f *SessionFactory) Create(userID int64) *models.UserSession {
	return f.WithExpiry(userID, time.Now().Add(time.Hour))
}

// WithExpiry creates a session for userID with a custom expiry
func (f *SessionFactory) WithExpiry(userID int64, expiresAt time.Time) *models.UserSession {
	now := time.Now()
	return &models.UserSession{
		ID:         uuid.New(),
		UserID:     userID,
		TokenJTI:   "jti-" + uuid.NewString(),
		CreatedAt:  now,
		LastUsedAt: now,
		ExpiresAt:  expiresAt,
	}
}

// TagFactory provides methods to create test Tag data
type TagFactory struct{}

// NewTagFactory creates a new TagFactory
func NewTagFactory() *TagFactory {
	return &TagFactory{}
}

// WithName creates a tag with the given name
func (f *TagFactory) WithName(name string) *models.Tag {
	return &models.Tag{
		Name:         name,
		AuditedModel: models.AuditedModel{CreatedAt: time.Now()},
	}
}

// ContractFactory provides methods to create test Contract data
type ContractFactory struct{}

// NewContractFactory creates a new ContractFactory
func NewContractFactory() *ContractFactory {
	return &ContractFactory{}
}

// WithTitle creates a contract starting today for a fixed service provider
func (f *ContractFactory) WithTitle(title string) *models.Contract {
	now := time.Now().UTC()
	return &models.Contract{
		Title:             title,
		ServiceProviderID: 1,
		StartDate:         time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
		AuditedModel:      models.AuditedModel{CreatedAt: now},
	}
}

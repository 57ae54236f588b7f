package tenant

import (
	"context"

	"kubera-backend/internal/database/models"
)

// Permission names granted by NewAuthorization.
const (
	PermissionAdmin = "admin"
	PermissionWrite = "write"
	PermissionRead  = "read"
)

// Info is the tenant a request is bound to.
type Info struct {
	ID         int64               `json:"id"`
	Name       string              `json:"name"`
	Subdomain  string              `json:"subdomain"`
	SchemaName string              `json:"schema_name"`
	Status     models.TenantStatus `json:"status"`
}

// InfoFromModel projects a tenant row into request-scoped Info.
func InfoFromModel(t *models.Tenant) *Info {
	if t == nil {
		return nil
	}
	return &Info{
		ID:         t.ID,
		Name:       t.Name,
		Subdomain:  t.Subdomain,
		SchemaName: t.SchemaName,
		Status:     t.Status,
	}
}

// RequestUser is the authenticated user together with the tenant it belongs to.
type RequestUser struct {
	UserID    int64  `json:"user_id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Role      string `json:"role"`
	IsOwner   bool   `json:"is_owner"`
	Tenant    Info   `json:"tenant"`
}

// Authorization holds flags derived from the user's role.
type Authorization struct {
	Permissions []string `json:"permissions"`
	CanAdmin    bool     `json:"can_admin"`
	CanWrite    bool     `json:"can_write"`
}

// NewAuthorization derives authorization flags. Owners and admins administer;
// managers and editors write; everyone reads.
func NewAuthorization(role string, isOwner bool) Authorization {
	canAdmin := isOwner || role == models.RoleAdmin
	canWrite := canAdmin || role == models.RoleManager || role == models.RoleEditor

	switch {
	case canAdmin:
		return Authorization{
			Permissions: []string{PermissionAdmin, PermissionWrite, PermissionRead},
			CanAdmin:    true,
			CanWrite:    true,
		}
	case canWrite:
		return Authorization{
			Permissions: []string{PermissionWrite, PermissionRead},
			CanWrite:    true,
		}
	default:
		return Authorization{Permissions: []string{PermissionRead}}
	}
}

// Has reports whether the permission was granted.
func (a Authorization) Has(permission string) bool {
	for _, p := range a.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}

// BaseContext is assembled once per authenticated request and handed to
// every operation that needs to know who is calling.
type BaseContext struct {
	User          RequestUser   `json:"user"`
	Authorization Authorization `json:"authorization"`
	IPAddress     string        `json:"ip_address,omitempty"`
	UserAgent     string        `json:"user_agent,omitempty"`
	TokenJTI      string        `json:"-"`
}

// Tenant returns the tenant the request is bound to.
func (b *BaseContext) Tenant() *Info {
	return &b.User.Tenant
}

type ctxKey struct{ name string }

var (
	baseContextKey = ctxKey{"base_context"}
	tenantKey      = ctxKey{"tenant"}
)

// WithBaseContext stores bc in ctx and binds its tenant.
func WithBaseContext(ctx context.Context, bc *BaseContext) context.Context {
	ctx = context.WithValue(ctx, baseContextKey, bc)
	return WithTenant(ctx, bc.Tenant())
}

// FromContext returns the BaseContext stored by WithBaseContext.
func FromContext(ctx context.Context) (*BaseContext, bool) {
	bc, ok := ctx.Value(baseContextKey).(*BaseContext)
	return bc, ok && bc != nil
}

// WithTenant binds a tenant to ctx. Used directly by pre-authentication flows
// such as login, which know the tenant but not the user yet.
func WithTenant(ctx context.Context, info *Info) context.Context {
	return context.WithValue(ctx, tenantKey, info)
}

// TenantFromContext returns the tenant bound to ctx.
func TenantFromContext(ctx context.Context) (*Info, bool) {
	info, ok := ctx.Value(tenantKey).(*Info)
	return info, ok && info != nil
}

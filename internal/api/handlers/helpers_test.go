package handlers_test

import (
	"kubera-backend/internal/database/models"
	"kubera-backend/internal/tenant"
)

func acmeInfo() tenant.Info {
	return tenant.Info{
		ID:         1,
		Name:       "Acme",
		Subdomain:  "acme",
		SchemaName: "tenant_acme",
		Status:     models.TenantStatusActive,
	}
}

func acmeAdmin() *tenant.BaseContext {
	return &tenant.BaseContext{
		User: tenant.RequestUser{
			UserID: 3,
			Email:  "nia@acme.test",
			Role:   models.RoleAdmin,
			Tenant: acmeInfo(),
		},
		Authorization: tenant.NewAuthorization(models.RoleAdmin, false),
		TokenJTI:      "jti-current",
	}
}

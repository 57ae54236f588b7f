package main

import (
	"context"
	"time"

	"kubera-backend/internal/database/models"
	"kubera-backend/internal/repository"
	"kubera-backend/internal/tenant"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

const exportPageSize = 500

type tenantExport struct {
	ID           int64                  `yaml:"id"`
	Name         string                 `yaml:"name"`
	Subdomain    string                 `yaml:"subdomain"`
	Status       string                 `yaml:"status"`
	Schema       string                 `yaml:"schema"`
	SchemaExists bool                   `yaml:"schema_exists"`
	CreatedAt    time.Time              `yaml:"created_at"`
	DeletedAt    *time.Time             `yaml:"deleted_at,omitempty"`
	Metadata     map[string]interface{} `yaml:"metadata,omitempty"`
	Users        []userExport           `yaml:"users,omitempty"`
}

type userExport struct {
	ID        int64      `yaml:"id"`
	Email     string     `yaml:"email"`
	Role      string     `yaml:"role"`
	Owner     bool       `yaml:"owner"`
	Active    bool       `yaml:"active"`
	LastLogin *time.Time `yaml:"last_login,omitempty"`
}

func newTenantExportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export SUBDOMAIN",
		Short: "Print a tenant and its users as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
			t, err := lookup(ctx, a, args[0])
			if err != nil {
				return err
			}
			doc, err := buildExport(ctx, a, t)
			if err != nil {
				return err
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(doc); err != nil {
				return err
			}
			return enc.Close()
		}),
	}
}

func buildExport(ctx context.Context, a *app, t *models.Tenant) (*tenantExport, error) {
	meta, err := a.services.Tenants.Metadata(t)
	if err != nil {
		return nil, err
	}
	exists, err := a.services.Tenants.SchemaExists(ctx, t)
	if err != nil {
		return nil, err
	}

	doc := &tenantExport{
		ID:           t.ID,
		Name:         t.Name,
		Subdomain:    t.Subdomain,
		Status:       string(t.Status),
		Schema:       t.SchemaName,
		SchemaExists: exists,
		CreatedAt:    t.CreatedAt,
		DeletedAt:    t.DeletedAt,
		Metadata:     meta,
	}
	if !exists {
		return doc, nil
	}

	users := repository.NewTenantUserRepository()
	err = a.services.Gate.Run(ctx, tenant.InfoFromModel(t), func(tx *gorm.DB) error {
		for offset := 0; ; offset += exportPageSize {
			page, total, err := users.List(tx, exportPageSize, offset)
			if err != nil {
				return err
			}
			for _, u := range page {
				doc.Users = append(doc.Users, userExport{
					ID:        u.ID,
					Email:     u.Email,
					Role:      u.Role,
					Owner:     u.IsOwner,
					Active:    u.IsActive,
					LastLogin: u.LastLogin,
				})
			}
			if len(page) == 0 || int64(offset+len(page)) >= total {
				return nil
			}
		}
	})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

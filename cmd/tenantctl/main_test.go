package main

import (
	"bytes"
	"testing"
	"time"

	"kubera-backend/internal/config"
	"kubera-backend/internal/database/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandTree(t *testing.T) {
	root := newRootCommand()

	for _, path := range [][]string{
		{"schema", "init-shared"},
		{"tenant", "create"},
		{"tenant", "list"},
		{"tenant", "status"},
		{"tenant", "delete"},
		{"tenant", "restore"},
		{"tenant", "purge"},
		{"tenant", "deleted"},
		{"tenant", "export"},
		{"sessions", "cleanup"},
	} {
		cmd, rest, err := root.Find(path)
		require.NoError(t, err, path)
		assert.Empty(t, rest)
		assert.Equal(t, path[len(path)-1], cmd.Name())
	}
}

// Argument validation runs before RunE, so none of these reach the database.
func TestArgumentValidation(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"create needs subdomain", []string{"tenant", "create", "Acme"}},
		{"status needs target", []string{"tenant", "status", "acme"}},
		{"purge takes one tenant", []string{"tenant", "purge", "acme", "globex"}},
		{"list takes no args", []string{"tenant", "list", "extra"}},
		{"cleanup takes no args", []string{"sessions", "cleanup", "now"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := newRootCommand()
			root.SetArgs(tt.args)
			root.SetOut(&bytes.Buffer{})
			root.SetErr(&bytes.Buffer{})

			assert.Error(t, root.Execute())
		})
	}
}

func TestPrintTenants(t *testing.T) {
	deletedAt := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	var out bytes.Buffer

	err := printTenants(&out, []models.Tenant{
		{ID: 1, Name: "Acme", Subdomain: "acme", SchemaName: "tenant_acme", Status: models.TenantStatusActive},
		{ID: 2, Name: "Globex", Subdomain: "globex", SchemaName: "tenant_globex", Status: models.TenantStatusPendingDeletion, DeletedAt: &deletedAt},
	})

	require.NoError(t, err)
	lines := bytes.Split(bytes.TrimSpace(out.Bytes()), []byte("\n"))
	require.Len(t, lines, 3)
	assert.Contains(t, string(lines[0]), "SUBDOMAIN")
	assert.Contains(t, string(lines[1]), "tenant_acme")
	assert.Contains(t, string(lines[1]), "-")
	assert.Contains(t, string(lines[2]), "2025-03-14T12:00:00Z")
}

func TestOpenTenantCache(t *testing.T) {
	t.Run("disabled without redis url", func(t *testing.T) {
		tenantCache, rdb, err := openTenantCache(&config.Config{})
		require.NoError(t, err)
		assert.Nil(t, tenantCache)
		assert.Nil(t, rdb)
	})

	t.Run("bad url fails instead of skipping invalidation", func(t *testing.T) {
		_, _, err := openTenantCache(&config.Config{RedisURL: "not-a-redis-url"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "tenant cache")
	})
}

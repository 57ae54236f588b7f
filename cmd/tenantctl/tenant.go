package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"kubera-backend/internal/database/models"
	"kubera-backend/internal/service"
	"kubera-backend/internal/tenant"

	"github.com/spf13/cobra"
)

const cliActor = "tenantctl"

func newTenantCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tenant",
		Short: "Provision tenants and manage their lifecycle",
	}
	cmd.AddCommand(
		newTenantCreateCommand(),
		newTenantListCommand(),
		newTenantStatusCommand(),
		newTenantDeleteCommand(),
		newTenantRestoreCommand(),
		newTenantPurgeCommand(),
		newTenantDeletedCommand(),
		newTenantExportCommand(),
	)
	return cmd
}

// lookup resolves a subdomain argument, including soft-deleted tenants.
func lookup(ctx context.Context, a *app, subdomain string) (*models.Tenant, error) {
	return a.services.Tenants.GetBySubdomain(ctx, strings.ToLower(strings.TrimSpace(subdomain)))
}

func newTenantCreateCommand() *cobra.Command {
	var ownerEmail, status string

	cmd := &cobra.Command{
		Use:   "create NAME SUBDOMAIN",
		Short: "Create a tenant and its schema",
		Long: `Create a tenant row and provision its schema.

With --owner-email an owner invitation is issued and its token printed; the
owner completes sign-up by accepting it on the tenant subdomain.`,
		Args: cobra.ExactArgs(2),
		RunE: withApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
			t, err := a.services.Tenants.Create(ctx, &service.CreateTenantRequest{
				Name:      args[0],
				Subdomain: args[1],
				Status:    models.TenantStatus(status),
			})
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Created tenant %d %q (schema %s)\n", t.ID, t.Subdomain, t.SchemaName)

			if ownerEmail == "" {
				return nil
			}
			inv, err := a.services.Invitations.Create(ctx, tenant.InfoFromModel(t), nil,
				&service.CreateInvitationRequest{Email: ownerEmail, Role: models.RoleOwner}, cliActor)
			if err != nil {
				return fmt.Errorf("tenant created but owner invitation failed: %w", err)
			}
			fmt.Fprintf(out, "Owner invitation for %s expires %s\n", inv.Email, inv.ExpiresAt.Format(time.RFC3339))
			fmt.Fprintf(out, "Token: %s\n", inv.Token)
			return nil
		}),
	}
	cmd.Flags().StringVar(&ownerEmail, "owner-email", "", "invite this address as the tenant owner")
	cmd.Flags().StringVar(&status, "status", string(models.TenantStatusActive), "initial status (active or trial)")
	return cmd
}

func newTenantListCommand() *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tenants",
		Args:  cobra.NoArgs,
		RunE: withApp(func(ctx context.Context, a *app, cmd *cobra.Command, _ []string) error {
			var filter *models.TenantStatus
			if status != "" {
				s := models.TenantStatus(status)
				filter = &s
			}
			tenants, err := a.services.Tenants.List(ctx, filter)
			if err != nil {
				return err
			}
			return printTenants(cmd.OutOrStdout(), tenants)
		}),
	}
	cmd.Flags().StringVar(&status, "status", "", "only list tenants in this status")
	return cmd
}

func newTenantStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status SUBDOMAIN STATUS",
		Short: "Move a tenant to another status",
		Args:  cobra.ExactArgs(2),
		RunE: withApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
			t, err := lookup(ctx, a, args[0])
			if err != nil {
				return err
			}
			t, err = a.services.Tenants.UpdateStatus(ctx, t.ID, models.TenantStatus(args[1]))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Tenant %q is now %s\n", t.Subdomain, t.Status)
			return nil
		}),
	}
}

func newTenantDeleteCommand() *cobra.Command {
	var reason string

	cmd := &cobra.Command{
		Use:   "delete SUBDOMAIN",
		Short: "Soft-delete a tenant",
		Long: `Mark a tenant as pending deletion. Its users can no longer sign in, and
its data stays in place until the tenant is purged.`,
		Args: cobra.ExactArgs(1),
		RunE: withApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
			t, err := lookup(ctx, a, args[0])
			if err != nil {
				return err
			}
			t, err = a.services.Tenants.SoftDelete(ctx, t.ID, reason, cliActor)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Tenant %q marked for deletion at %s\n", t.Subdomain, t.DeletedAt.Format(time.RFC3339))
			return nil
		}),
	}
	cmd.Flags().StringVar(&reason, "reason", "", "recorded with the deletion")
	return cmd
}

func newTenantRestoreCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "restore SUBDOMAIN",
		Short: "Restore a soft-deleted tenant",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
			t, err := lookup(ctx, a, args[0])
			if err != nil {
				return err
			}
			if _, err := a.services.Tenants.Restore(ctx, t.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Tenant %q restored\n", t.Subdomain)
			return nil
		}),
	}
}

func newTenantPurgeCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "purge SUBDOMAIN",
		Short: "Permanently delete a tenant and its schema",
		Long: `Drop the tenant schema and remove the tenant row. This cannot be undone.

The tenant must have been soft-deleted first unless --force is given.`,
		Args: cobra.ExactArgs(1),
		RunE: withApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
			t, err := lookup(ctx, a, args[0])
			if err != nil {
				return err
			}
			if err := a.services.Tenants.HardDelete(ctx, t.ID, force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Tenant %q purged\n", t.Subdomain)
			return nil
		}),
	}
	cmd.Flags().BoolVar(&force, "force", false, "purge even if the tenant was not soft-deleted")
	return cmd
}

func newTenantDeletedCommand() *cobra.Command {
	var olderThan int

	cmd := &cobra.Command{
		Use:   "deleted",
		Short: "List tenants pending deletion",
		Args:  cobra.NoArgs,
		RunE: withApp(func(ctx context.Context, a *app, cmd *cobra.Command, _ []string) error {
			tenants, err := a.services.Tenants.ListSoftDeleted(ctx, olderThan)
			if err != nil {
				return err
			}
			return printTenants(cmd.OutOrStdout(), tenants)
		}),
	}
	cmd.Flags().IntVar(&olderThan, "older-than", 0, "only tenants deleted at least this many days ago")
	return cmd
}

func printTenants(out io.Writer, tenants []models.Tenant) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSUBDOMAIN\tNAME\tSTATUS\tSCHEMA\tDELETED")
	for _, t := range tenants {
		deleted := "-"
		if t.DeletedAt != nil {
			deleted = t.DeletedAt.Format(time.RFC3339)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n", t.ID, t.Subdomain, t.Name, t.Status, t.SchemaName, deleted)
	}
	return w.Flush()
}

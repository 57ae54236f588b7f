package main

import (
	"context"
	"fmt"

	"kubera-backend/internal/service"

	"github.com/spf13/cobra"
)

func newSessionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "Maintain user sessions across tenants",
	}

	var olderThan int
	cleanup := &cobra.Command{
		Use:   "cleanup",
		Short: "Delete long-expired sessions in every tenant",
		Args:  cobra.NoArgs,
		RunE: withApp(func(ctx context.Context, a *app, cmd *cobra.Command, _ []string) error {
			reaper := a.services.Reaper
			if cmd.Flags().Changed("older-than") {
				reaper = service.NewSessionReaper(a.services.Tenants, a.services.Sessions, 0, olderThan)
			}
			result, err := reaper.RunOnce(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d sessions across %d tenants (%d failed)\n",
				result.Deleted, result.Tenants, result.Failed)
			return nil
		}),
	}
	cleanup.Flags().IntVar(&olderThan, "older-than", 30, "only delete sessions expired more than this many days ago")

	cmd.AddCommand(cleanup)
	return cmd
}

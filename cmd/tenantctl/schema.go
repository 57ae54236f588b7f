package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newSchemaCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Manage the shared schema",
	}

	var reset bool
	initShared := &cobra.Command{
		Use:   "init-shared",
		Short: "Create the shared tenant table",
		Long: `Create the shared tables if they are missing.

With --reset the shared schema is dropped and rebuilt, destroying every tenant
row. Tenant schemas are left in place and must be removed separately.`,
		Args: cobra.NoArgs,
		RunE: withApp(func(ctx context.Context, a *app, cmd *cobra.Command, _ []string) error {
			if reset {
				if err := a.services.Migrator.CreateSharedSchema(ctx); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Shared schema recreated")
				return nil
			}
			if err := a.services.Migrator.InitSharedSchema(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Shared schema ready")
			return nil
		}),
	}
	initShared.Flags().BoolVar(&reset, "reset", false, "drop and recreate the shared schema")

	cmd.AddCommand(initShared)
	return cmd
}

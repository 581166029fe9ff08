package main

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/vantage-crm/vantage/pkg/composables"
	"github.com/vantage-crm/vantage/pkg/configuration"
)

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "crm-data",
		Short:         "Bulk import and export of CRM records over CSV",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	cmd.AddCommand(importCmd(), exportCmd())
	return cmd
}

// withPool opens a database pool from the environment configuration and
// places it on the context the way the HTTP middleware does, so repositories
// work unchanged.
func withPool(ctx context.Context, fn func(context.Context) error) error {
	conf := configuration.Use()
	defer conf.Unload()

	pool, err := pgxpool.New(ctx, conf.Database.Opts)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		return err
	}
	return fn(composables.WithPool(ctx, pool))
}

package main

import (
	"fmt"
	"log/slog"

	"festa/internal/config"
	"festa/internal/infra/db"

	"github.com/spf13/cobra"
)

type migrateOptions struct {
	Reset bool
}

// migrate [--reset]
func newRootCommand() *cobra.Command {
	opts := &migrateOptions{}

	cmd := &cobra.Command{
		Use:          "migrate",
		Short:        "Create the festa database schema",
		Long:         "Creates users, sessions, festas and cart_items. With --reset all tables are dropped first.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadDatabase()
			if err != nil {
				return err
			}
			return runMigrate(cmd, cfg, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Reset, "reset", false, "drop all tables before creating the schema")
	return cmd
}

func runMigrate(cmd *cobra.Command, cfg config.Config, opts *migrateOptions) error {
	gdb, err := db.Connect(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close(gdb) }()

	if opts.Reset {
		if err := db.Reset(gdb); err != nil {
			return fmt.Errorf("reset: %w", err)
		}
		slog.Info("tables dropped")
	}
	if err := db.Migrate(gdb); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "database schema created")
	return nil
}

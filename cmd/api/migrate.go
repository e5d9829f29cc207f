package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/comitanigiacomo/kanso-insights/internal/adapters/repository"
	"github.com/comitanigiacomo/kanso-insights/internal/config"
	"github.com/comitanigiacomo/kanso-insights/internal/logger"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the database schema",
	Long:  `Apply the embedded SQL migrations to the configured PostgreSQL database.`,
	RunE:  runMigrate,
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if cfg.Storage.Backend != config.BackendPostgres {
		return fmt.Errorf("migrate needs the postgres backend, got %q", cfg.Storage.Backend)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Format)

	db, err := openDB(cmd.Context(), cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	applied, err := repository.Migrate(cmd.Context(), db)
	if err != nil {
		return err
	}

	for _, name := range applied {
		log.Info("migration applied", "file", name)
	}
	return nil
}

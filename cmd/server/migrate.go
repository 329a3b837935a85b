package main

import (
	"fmt"

	"pokemon-teams-backend/internal/config"
	"pokemon-teams-backend/internal/database"
	apperrors "pokemon-teams-backend/internal/errors"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the SQL schema migrations to Postgres",
	RunE:  runMigrate,
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.StoreDriver != config.StoreDriverPostgres {
		return apperrors.NewConfigurationError(fmt.Sprintf("migrate requires STORE_DRIVER=%s", config.StoreDriverPostgres))
	}

	version, err := database.Migrate(cmd.Context(), cfg.DatabaseURL)
	if err != nil {
		return err
	}
	logrus.WithField("version", version).Info("Database schema is up to date")

	return nil
}

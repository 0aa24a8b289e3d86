package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/AntonStoeckl/teamquest/teamquest/shared/shell/config"
)

func init() {
	rootCmd.AddCommand(migrateCmd)
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the events table and its indexes",
	Long: `Create the events table and its indexes if they do not exist yet.
Running it repeatedly is safe.`,
	Args: cobra.NoArgs,
	RunE: runMigrate,
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger, err := config.NewZapLogger(cfg.Observability, nil)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	eventStore, closeDB, err := config.OpenEventStore(cmd.Context(), cfg.Database)
	if err != nil {
		return err
	}
	defer closeDB()

	if err = eventStore.CreateSchema(cmd.Context()); err != nil {
		return err
	}

	logger.Info("schema is up to date", zap.String("table", eventStore.TableName()))

	return nil
}

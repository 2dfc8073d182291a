package cmd

import (
	"fmt"

	"Reelist/database"
	"Reelist/logger"

	"github.com/spf13/cobra"
)

var skipSeed bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the database schema and seed the bootstrap user",
	RunE:  runMigrate,
}

func init() {
	migrateCmd.Flags().BoolVar(&skipSeed, "skip-seed", false, "do not create the SEED_USERNAME account")
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := logger.Init(cfg.Environment, cfg.Debug, cfg.LogFile)

	ctx := cmd.Context()
	db, err := database.Connect(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := database.RunMigrations(ctx, db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	log.Info("Migrations applied")

	if skipSeed {
		return nil
	}

	seeded, err := database.SeedUser(ctx, db, cfg)
	if err != nil {
		return err
	}
	if seeded {
		log.Info("Seeded user", "username", cfg.SeedUsername)
	}
	return nil
}

package cmd

import (
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"Reelist/config"
	"Reelist/database"
	"Reelist/handlers"
	"Reelist/httpclient"
	"Reelist/logger"
	"Reelist/server"
	"Reelist/services"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger.Init(cfg.Environment, cfg.Debug, cfg.LogFile)
	log := logger.With("component", "serve")

	if err := checkProviderKeys(cfg); err != nil {
		if cfg.IsProduction() {
			return err
		}
		log.Warn("Search will fail upstream", "error", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.Connect(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := database.RunMigrations(ctx, db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	if seeded, err := database.SeedUser(ctx, db, cfg); err != nil {
		return err
	} else if seeded {
		log.Info("Seeded user", "username", cfg.SeedUsername)
	}

	log.Info("Reelist is starting",
		"port", cfg.ServerPort,
		"environment", cfg.Environment,
		"debug", cfg.Debug,
		"version", Version)

	return server.Run(ctx, server.DefaultConfig(":"+cfg.ServerPort), newRouter(cfg, db, httpclient.DefaultClient))
}

// checkProviderKeys reports a missing OMDb or YouTube key. Production refuses
// to start without them; other environments only warn.
func checkProviderKeys(cfg *config.Config) error {
	switch {
	case cfg.OMDBAPIKey == "":
		return errors.New("OMDB_API_KEY is not set")
	case cfg.YouTubeAPIKey == "":
		return errors.New("YOUTUBE_API_KEY is not set")
	}
	return nil
}

// newRouter wires stores and services onto the HTTP routes.
func newRouter(cfg *config.Config, db *sqlx.DB, client *http.Client) http.Handler {
	tokens := services.NewTokenService(cfg.JWTSecret, cfg.JWTTTL)
	auth := services.NewAuthService(services.NewUserStore(db), tokens)
	tasks := services.NewWatchlistStore(db)

	h := server.Handlers{
		Auth:   handlers.NewAuthHandler(auth),
		Search: handlers.NewSearchHandler(services.NewMetadataClient(cfg, client)),
		Tasks:  handlers.NewTaskHandler(tasks, services.NewStatsAggregator(db)),
	}
	return server.NewRouter(h, auth)
}


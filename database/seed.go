package database

import (
	"context"
	"fmt"

	"Reelist/config"
	"Reelist/models"

	"github.com/jmoiron/sqlx"
)

// SeedUser creates the bootstrap account from SEED_USERNAME/SEED_PASSWORD.
// It returns false when seeding was skipped.
func SeedUser(ctx context.Context, db *sqlx.DB, cfg *config.Config) (bool, error) {
	if cfg.SeedUsername == "" || cfg.SeedPassword == "" {
		return false, nil
	}

	var exists bool
	err := db.GetContext(ctx, &exists, "SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)", cfg.SeedUsername)
	if err != nil {
		return false, fmt.Errorf("failed to check for existing seed user: %w", err)
	}
	if exists {
		return false, nil
	}

	user := models.User{Username: cfg.SeedUsername}
	if err := user.SetPassword(cfg.SeedPassword); err != nil {
		return false, fmt.Errorf("failed to hash password: %w", err)
	}

	_, err = db.ExecContext(ctx,
		"INSERT INTO users (username, password_hash) VALUES ($1, $2)",
		user.Username,
		user.PasswordHash,
	)
	if err != nil {
		return false, fmt.Errorf("failed to seed user: %w", err)
	}

	return true, nil
}

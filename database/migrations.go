package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

var migrations = []struct {
	name string
	sql  string
}{
	{
		name: "users",
		sql: `
	CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		username VARCHAR(80) UNIQUE NOT NULL,
		password_hash VARCHAR(255) NOT NULL
	);
	`,
	},
	{
		name: "movie_tasks",
		sql: `
	CREATE TABLE IF NOT EXISTS movie_tasks (
		id SERIAL PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		year VARCHAR(10),
		plot TEXT,
		category VARCHAR(255) DEFAULT 'General',
		status VARCHAR(20) DEFAULT 'pending',
		imdb_rating VARCHAR(20),
		poster_url TEXT,
		user_id INTEGER NOT NULL REFERENCES users(id),
		deleted_at TIMESTAMP NULL,
		trailer_link TEXT
	);

	-- Older databases were created before trailer links were stored
	DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM information_schema.columns WHERE table_name='movie_tasks' AND column_name='trailer_link') THEN
			ALTER TABLE movie_tasks ADD COLUMN trailer_link TEXT;
		END IF;
	END $$;

	CREATE INDEX IF NOT EXISTS idx_movie_tasks_owner ON movie_tasks (user_id, deleted_at);
	`,
	},
}

// RunMigrations creates the schema. Every statement is idempotent so it is
// safe to run on each start.
func RunMigrations(ctx context.Context, db *sqlx.DB) error {
	for _, m := range migrations {
		if _, err := db.ExecContext(ctx, m.sql); err != nil {
			return fmt.Errorf("failed to run %s migration: %w", m.name, err)
		}
	}
	return nil
}

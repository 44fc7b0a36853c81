package database

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Schema for the catalog. Identifiers are auto-incrementing; books
// reference authors and deletes are restricted while references exist.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS authors (
		id         BIGSERIAL PRIMARY KEY,
		name       TEXT NOT NULL,
		gender     TEXT NOT NULL,
		age        INTEGER NOT NULL,
		country    TEXT NOT NULL,
		genre      TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS books (
		id         BIGSERIAL PRIMARY KEY,
		name       TEXT NOT NULL,
		isbn       TEXT NOT NULL,
		author_id  BIGINT NOT NULL REFERENCES authors(id) ON DELETE RESTRICT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_books_author_id ON books(author_id)`,
	`CREATE INDEX IF NOT EXISTS idx_authors_created_at ON authors(created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_books_created_at ON books(created_at DESC)`,
}

// Migrate applies the schema statements in order. Statements are
// idempotent, so running at every startup is safe.
func (db *PostgresDB) Migrate(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	for i, stmt := range migrations {
		if _, err := db.Pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	log.Info().Int("statements", len(migrations)).Msg("schema migrations applied")
	return nil
}

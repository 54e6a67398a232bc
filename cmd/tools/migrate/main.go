// Command migrate creates the role_kits and job_targets tables.
//
// Usage:
//
//	go run cmd/tools/migrate/main.go
//
// Requires DATABASE_URL environment variable to be set. Statements are
// idempotent; rerunning against an existing database is safe.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
)

var statements = []string{
	`CREATE EXTENSION IF NOT EXISTS "pgcrypto"`,

	`CREATE TABLE IF NOT EXISTS role_kits (
		id              UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name            TEXT NOT NULL UNIQUE,
		seniority       TEXT NOT NULL DEFAULT 'mid',
		domain          TEXT NOT NULL DEFAULT 'general',
		category        TEXT,
		description     TEXT,
		focus_skills    JSONB,
		interview_types JSONB,
		tags            JSONB,
		is_active       BOOLEAN NOT NULL DEFAULT TRUE,
		created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS job_targets (
		id           UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		role_title   TEXT NOT NULL,
		company_name TEXT,
		jd_text      TEXT,
		parsed_jd    JSONB,
		role_kit_id  UUID REFERENCES role_kits(id),
		created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE INDEX IF NOT EXISTS idx_role_kits_domain ON role_kits(domain)`,
	`CREATE INDEX IF NOT EXISTS idx_job_targets_role_kit_id ON job_targets(role_kit_id)`,
}

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		fmt.Fprintln(os.Stderr, "ERROR: DATABASE_URL environment variable not set")
		os.Exit(1)
	}

	ctx := context.Background()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: Migration statement failed: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Println("Migration complete: role_kits and job_targets are ready.")
}

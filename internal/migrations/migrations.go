// Package migrations holds the Postgres schema. Files are applied in name
// order and recorded in schema_migrations, so Apply can run on every deploy.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"io/fs"
	"strings"

	"go.uber.org/zap"
)

//go:embed *.sql
var files embed.FS

const createVersionTable = `
CREATE TABLE IF NOT EXISTS schema_migrations (
	version    VARCHAR(255) PRIMARY KEY,
	applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// Apply runs pending migrations and returns how many were applied.
func Apply(ctx context.Context, db *sql.DB, logger ...*zap.Logger) (int, error) {
	log := zap.L().Named("migrations")
	if len(logger) > 0 && logger[0] != nil {
		log = logger[0].Named("migrations")
	}

	if _, err := db.ExecContext(ctx, createVersionTable); err != nil {
		return 0, err
	}

	entries, err := fs.ReadDir(files, ".")
	if err != nil {
		return 0, err
	}

	applied := 0
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".sql") {
			continue
		}
		version := strings.TrimSuffix(e.Name(), ".sql")

		var done bool
		if err := db.QueryRowContext(ctx,
			`SELECT EXISTS (SELECT 1 FROM schema_migrations WHERE version = $1)`, version,
		).Scan(&done); err != nil {
			return applied, err
		}
		if done {
			continue
		}

		body, err := files.ReadFile(e.Name())
		if err != nil {
			return applied, err
		}
		if err := applyOne(ctx, db, version, string(body)); err != nil {
			log.Error("migration failed", zap.String("version", version), zap.Error(err))
			return applied, err
		}
		log.Info("migration applied", zap.String("version", version))
		applied++
	}
	return applied, nil
}

func applyOne(ctx context.Context, db *sql.DB, version, body string) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, body); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO schema_migrations (version) VALUES ($1)`, version,
	); err != nil {
		return err
	}
	return tx.Commit()
}

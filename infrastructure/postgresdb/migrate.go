package postgresdb

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jrazmi/taskboard/schema"
)

// migrationLockID is the pg_advisory_lock key held while migrating so that
// concurrently starting processes apply each file exactly once.
const migrationLockID int64 = 0x7461736b626f6172

// Migrate runs all pending migrations from schema/pgmigrations/*.sql files.
// Migrations are applied in alphabetical order (001_xxx.sql, 002_xxx.sql).
// Applied files are tracked with a checksum in schema_migrations; editing an
// applied file is an error. Forward only.
func Migrate(ctx context.Context, pool *pgxpool.Pool, log *slog.Logger) error {
	if err := StatusCheck(ctx, pool); err != nil {
		return fmt.Errorf("status check database: %w", err)
	}

	return RunMigrations(ctx, pool, log, schema.MigrationsFS, schema.MigrationsDir)
}

// MigrationFiles lists the embedded migration versions in apply order.
func MigrationFiles() ([]string, error) {
	return getMigrationFiles(schema.MigrationsFS, schema.MigrationsDir)
}

// RunMigrations applies the .sql files found in dir of fsys.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool, log *slog.Logger, fsys fs.FS, dir string) error {
	conn, err := pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, "SELECT pg_advisory_lock($1)", migrationLockID); err != nil {
		return fmt.Errorf("acquire migration lock: %w", err)
	}
	defer func() {
		if _, err := conn.Exec(context.WithoutCancel(ctx), "SELECT pg_advisory_unlock($1)", migrationLockID); err != nil {
			log.ErrorContext(ctx, "release migration lock", "error", err)
		}
	}()

	if err := createMigrationsTable(ctx, conn.Conn()); err != nil {
		return fmt.Errorf("create migrations table: %w", err)
	}

	files, err := getMigrationFiles(fsys, dir)
	if err != nil {
		return fmt.Errorf("get migration files: %w", err)
	}

	log.InfoContext(ctx, "migrate", "status", "running migrations", "files", len(files))

	for _, file := range files {
		applied, err := applyMigration(ctx, conn.Conn(), fsys, path.Join(dir, file))
		if err != nil {
			return fmt.Errorf("apply migration %s: %w", file, err)
		}
		if applied {
			log.InfoContext(ctx, "migrate", "status", "applied", "version", file)
		} else {
			log.DebugContext(ctx, "migrate", "status", "already applied", "version", file)
		}
	}

	log.InfoContext(ctx, "migrate", "status", "migrations complete")
	return nil
}

// createMigrationsTable creates the tracking table if it doesn't exist
func createMigrationsTable(ctx context.Context, conn *pgx.Conn) error {
	query := `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version VARCHAR(255) PRIMARY KEY,
			checksum VARCHAR(64) NOT NULL,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`
	_, err := conn.Exec(ctx, query)
	return err
}

// getMigrationFiles returns sorted list of .sql files from the migrations directory
func getMigrationFiles(fsys fs.FS, dir string) ([]string, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".sql") {
			files = append(files, e.Name())
		}
	}

	sort.Strings(files)
	return files, nil
}

// applyMigration applies a single migration if it hasn't been applied yet.
// It reports whether the file was applied by this call.
func applyMigration(ctx context.Context, conn *pgx.Conn, fsys fs.FS, filePath string) (bool, error) {
	version := path.Base(filePath)

	content, err := fs.ReadFile(fsys, filePath)
	if err != nil {
		return false, fmt.Errorf("read migration file: %w", err)
	}

	checksum := fmt.Sprintf("%x", sha256.Sum256(content))

	var existingChecksum string
	err = conn.QueryRow(ctx, "SELECT checksum FROM schema_migrations WHERE version = $1", version).Scan(&existingChecksum)
	switch {
	case err == nil:
		if existingChecksum != checksum {
			return false, fmt.Errorf("checksum mismatch: migration %s was modified after being applied (expected: %s, got: %s)",
				version, existingChecksum, checksum)
		}
		return false, nil
	case !errors.Is(err, pgx.ErrNoRows):
		return false, fmt.Errorf("lookup migration: %w", err)
	}

	tx, err := conn.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, string(content)); err != nil {
		return false, fmt.Errorf("execute migration: %w", err)
	}

	if _, err := tx.Exec(ctx, "INSERT INTO schema_migrations (version, checksum) VALUES ($1, $2)", version, checksum); err != nil {
		return false, fmt.Errorf("record migration: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("commit transaction: %w", err)
	}

	return true, nil
}

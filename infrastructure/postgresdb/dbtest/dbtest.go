// Package dbtest provides a migrated PostgreSQL pool for integration tests.
// Tests are skipped unless TASKBOARD_TEST_DATABASE_URL is set.
package dbtest

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jrazmi/taskboard/infrastructure/postgresdb"
	"github.com/jrazmi/taskboard/sdk/logger"
)

// EnvDatabaseURL names the variable holding the test database URL.
const EnvDatabaseURL = "TASKBOARD_TEST_DATABASE_URL"

// testLockID serializes integration tests from different packages, which
// `go test ./...` runs as parallel processes against the same database.
const testLockID int64 = 0x7461736b74657374

// Database is a migrated, emptied database reserved for one test.
type Database struct {
	Pool *pgxpool.Pool
	Log  *logger.Logger
}

// New connects, migrates, takes the shared test lock and truncates every
// table. Everything is released in t.Cleanup.
func New(t *testing.T) *Database {
	t.Helper()

	url := os.Getenv(EnvDatabaseURL)
	if url == "" {
		t.Skipf("%s not set, skipping database test", EnvDatabaseURL)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))

	pool, err := postgresdb.NewTestDB(url, postgresdb.WithLogger(quiet))
	if err != nil {
		t.Fatalf("connecting to test database: %v", err)
	}
	t.Cleanup(pool.Close)

	if err := postgresdb.Migrate(ctx, pool, quiet); err != nil {
		t.Fatalf("migrating test database: %v", err)
	}

	lock, err := pool.Acquire(ctx)
	if err != nil {
		t.Fatalf("acquire lock connection: %v", err)
	}
	if _, err := lock.Exec(ctx, "SELECT pg_advisory_lock($1)", testLockID); err != nil {
		lock.Release()
		t.Fatalf("acquire test lock: %v", err)
	}
	t.Cleanup(func() {
		lock.Exec(context.Background(), "SELECT pg_advisory_unlock($1)", testLockID)
		lock.Release()
	})

	const truncate = `TRUNCATE attachments, comments, tasks, projects RESTART IDENTITY CASCADE`
	if _, err := pool.Exec(ctx, truncate); err != nil {
		t.Fatalf("truncating tables: %v", err)
	}

	return &Database{
		Pool: pool,
		Log:  logger.NewDiscard(),
	}
}

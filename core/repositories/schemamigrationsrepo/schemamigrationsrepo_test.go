package schemamigrationsrepo_test

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/jrazmi/taskboard/core/repositories/schemamigrationsrepo"
	"github.com/jrazmi/taskboard/sdk/logger"
)

type stubStore struct {
	migrations []schemamigrationsrepo.SchemaMigration
	err        error
}

func (s stubStore) List(context.Context) ([]schemamigrationsrepo.SchemaMigration, error) {
	return s.migrations, s.err
}

func TestStatus(t *testing.T) {
	store := stubStore{migrations: []schemamigrationsrepo.SchemaMigration{
		{Version: "001_projects.sql"},
		{Version: "002_tasks.sql"},
	}}
	repo := schemamigrationsrepo.NewRepository(logger.NewDiscard(), store)

	status, err := repo.Status(context.Background(), []string{"001_projects.sql", "002_tasks.sql", "003_comments.sql"})
	if err != nil {
		t.Fatal(err)
	}
	if len(status.Applied) != 2 {
		t.Errorf("applied = %d", len(status.Applied))
	}
	if want := []string{"003_comments.sql"}; !slices.Equal(status.Pending, want) {
		t.Errorf("pending = %v, want %v", status.Pending, want)
	}
}

func TestStatusStoreError(t *testing.T) {
	boom := errors.New("boom")
	repo := schemamigrationsrepo.NewRepository(logger.NewDiscard(), stubStore{err: boom})

	if _, err := repo.Status(context.Background(), nil); !errors.Is(err, boom) {
		t.Fatalf("err = %v", err)
	}
}

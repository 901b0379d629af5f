package commands

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/jrazmi/taskboard/core/repositories/schemamigrationsrepo"
	"github.com/jrazmi/taskboard/infrastructure/postgresdb"
)

// Status prints applied and pending migrations to w.
func Status(ctx context.Context, w io.Writer, repo *schemamigrationsrepo.Repository) error {
	files, err := postgresdb.MigrationFiles()
	if err != nil {
		return fmt.Errorf("read migration files: %w", err)
	}

	status, err := repo.Status(ctx, files)
	if err != nil {
		return err
	}

	return writeStatus(w, status)
}

func writeStatus(w io.Writer, status schemamigrationsrepo.Status) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "VERSION\tSTATE\tAPPLIED AT")
	for _, m := range status.Applied {
		fmt.Fprintf(tw, "%s\tapplied\t%s\n", m.Version, m.AppliedAt.UTC().Format(time.RFC3339))
	}
	for _, v := range status.Pending {
		fmt.Fprintf(tw, "%s\tpending\t-\n", v)
	}
	return tw.Flush()
}

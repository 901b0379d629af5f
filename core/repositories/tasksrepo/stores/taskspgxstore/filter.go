package taskspgxstore

import (
	"bytes"

	"github.com/jackc/pgx/v5"
	"github.com/jrazmi/taskboard/core/repositories/tasksrepo"
	"github.com/jrazmi/taskboard/core/scaffolding/fop"
	"github.com/jrazmi/taskboard/infrastructure/postgresdb"
)

func applyFilter(filter tasksrepo.QueryFilter, data pgx.NamedArgs, buf *bytes.Buffer) {
	var wc []string

	if filter.ProjectID != nil {
		data["project_id"] = *filter.ProjectID
		wc = append(wc, "project_id = @project_id")
	}

	if filter.Status != nil {
		data["status"] = *filter.Status
		wc = append(wc, "status = @status")
	}

	if filter.Priority != nil {
		data["priority"] = *filter.Priority
		wc = append(wc, "priority = @priority")
	}

	postgresdb.AddWhereClause(buf, wc)
}

func buildListQuery(filter tasksrepo.QueryFilter, orderBy fop.By, page fop.Page) (string, pgx.NamedArgs, error) {
	data := pgx.NamedArgs{}
	buf := bytes.NewBufferString(`SELECT ` + columns + ` FROM tasks`)

	applyFilter(filter, data, buf)

	if !orderBy.IsZero() {
		if err := postgresdb.AddOrderByClause(buf, orderBy.Field, orderBy.Direction); err != nil {
			return "", nil, err
		}
	}

	postgresdb.AddLimitClause(page.Limit, data, buf)
	postgresdb.AddOffsetClause(page.Offset, data, buf)

	return buf.String(), data, nil
}

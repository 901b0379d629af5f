package commentspgxstore

import (
	"bytes"

	"github.com/jackc/pgx/v5"
	"github.com/jrazmi/taskboard/core/repositories/commentsrepo"
	"github.com/jrazmi/taskboard/core/scaffolding/fop"
	"github.com/jrazmi/taskboard/infrastructure/postgresdb"
)

func applyFilter(filter commentsrepo.QueryFilter, data pgx.NamedArgs, buf *bytes.Buffer) {
	var wc []string

	if filter.TaskID != nil {
		data["task_id"] = *filter.TaskID
		wc = append(wc, "task_id = @task_id")
	}

	postgresdb.AddWhereClause(buf, wc)
}

func buildListQuery(filter commentsrepo.QueryFilter, orderBy fop.By, page fop.Page) (string, pgx.NamedArgs, error) {
	data := pgx.NamedArgs{}
	buf := bytes.NewBufferString(`SELECT ` + columns + ` FROM comments`)

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

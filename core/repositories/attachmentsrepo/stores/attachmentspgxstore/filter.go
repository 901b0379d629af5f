package attachmentspgxstore

import (
	"bytes"

	"github.com/jackc/pgx/v5"
	"github.com/jrazmi/taskboard/core/repositories/attachmentsrepo"
	"github.com/jrazmi/taskboard/core/scaffolding/fop"
	"github.com/jrazmi/taskboard/infrastructure/postgresdb"
)

func applyFilter(filter attachmentsrepo.QueryFilter, data pgx.NamedArgs, buf *bytes.Buffer) {
	var wc []string

	if filter.CommentID != nil {
		data["comment_id"] = *filter.CommentID
		wc = append(wc, "comment_id = @comment_id")
	}

	postgresdb.AddWhereClause(buf, wc)
}

func buildListQuery(filter attachmentsrepo.QueryFilter, orderBy fop.By, page fop.Page) (string, pgx.NamedArgs, error) {
	data := pgx.NamedArgs{}
	buf := bytes.NewBufferString(`SELECT ` + columns + ` FROM attachments`)

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

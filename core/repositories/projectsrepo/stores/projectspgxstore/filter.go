package projectspgxstore

import (
	"bytes"

	"github.com/jackc/pgx/v5"
	"github.com/jrazmi/taskboard/core/repositories/projectsrepo"
	"github.com/jrazmi/taskboard/core/scaffolding/fop"
	"github.com/jrazmi/taskboard/infrastructure/postgresdb"
)

func applyFilter(filter projectsrepo.QueryFilter, data pgx.NamedArgs, buf *bytes.Buffer) {
	var wc []string

	// The substring is matched as given; % and _ keep their LIKE meaning.
	if filter.Name != nil {
		data["name"] = *filter.Name
		wc = append(wc, "name ILIKE '%' || @name || '%'")
	}

	if filter.MinBudget != nil {
		data["min_budget"] = *filter.MinBudget
		wc = append(wc, "budget >= @min_budget")
	}

	if filter.MaxBudget != nil {
		data["max_budget"] = *filter.MaxBudget
		wc = append(wc, "budget <= @max_budget")
	}

	if filter.IsActive != nil {
		data["is_active"] = *filter.IsActive
		wc = append(wc, "is_active = @is_active")
	}

	postgresdb.AddWhereClause(buf, wc)
}

// buildListQuery assembles filter, then order, then offset/limit.
func buildListQuery(filter projectsrepo.QueryFilter, orderBy fop.By, page fop.Page) (string, pgx.NamedArgs, error) {
	data := pgx.NamedArgs{}
	buf := bytes.NewBufferString(`SELECT ` + columns + ` FROM projects`)

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

package postgresdb

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jrazmi/taskboard/core/scaffolding/fop"
)

// AddWhereClause appends the conditions joined by AND. Nothing is written
// when conditions is empty.
func AddWhereClause(buf *bytes.Buffer, conditions []string) {
	if len(conditions) == 0 {
		return
	}
	buf.WriteString(" WHERE ")
	buf.WriteString(strings.Join(conditions, " AND "))
}

// AddOrderByClause appends ORDER BY for a single column. No tie breaker is
// added: rows that share the sort key come back in storage order.
func AddOrderByClause(buf *bytes.Buffer, orderField, direction string) error {
	quoted, err := QuoteIdentifier(orderField)
	if err != nil {
		return fmt.Errorf("invalid order field name: %w", err)
	}

	switch direction {
	case fop.ASC, fop.DESC:
	default:
		return fmt.Errorf("invalid order direction: %q", direction)
	}

	fmt.Fprintf(buf, " ORDER BY %s %s", quoted, direction)
	return nil
}

// AddLimitClause adds LIMIT clause to the query buffer
func AddLimitClause(limit int, data pgx.NamedArgs, buf *bytes.Buffer) {
	buf.WriteString(" LIMIT @limit")
	data["limit"] = limit
}

// AddOffsetClause adds OFFSET clause to the query buffer
func AddOffsetClause(offset int, data pgx.NamedArgs, buf *bytes.Buffer) {
	buf.WriteString(" OFFSET @offset")
	data["offset"] = offset
}

// Package fop provides filter, order and page parsing shared by the
// repositories and their HTTP bridges.
package fop

// Set of directions for data ordering.
const (
	ASC  = "ASC"
	DESC = "DESC"
)

// By represents a field used to order by and its direction. The zero value
// means no ordering was requested.
type By struct {
	Field     string
	Direction string
}

// NewBy constructs a new By value with no checks.
func NewBy(field string, direction string) By {
	return By{
		Field:     field,
		Direction: direction,
	}
}

// IsZero reports whether no ordering was requested.
func (b By) IsZero() bool {
	return b.Field == ""
}

// ParseSort maps a sort_by/sort_dir pair onto a column from fieldMappings.
// sortBy must match a key exactly; surrounding whitespace makes it unknown.
// An unknown or empty sortBy yields the zero By and is not an error, so
// callers silently skip ordering. Only the exact value "desc" selects
// descending order; anything else is ascending.
func ParseSort(fieldMappings map[string]string, sortBy string, sortDir string) By {
	column, ok := fieldMappings[sortBy]
	if !ok {
		return By{}
	}

	direction := ASC
	if sortDir == "desc" {
		direction = DESC
	}

	return NewBy(column, direction)
}

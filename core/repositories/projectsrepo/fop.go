package projectsrepo

// QueryFilter holds the available fields a query can be filtered on.
// Nil fields are not applied.
type QueryFilter struct {
	Name      *string // case-insensitive substring
	MinBudget *float64
	MaxBudget *float64
	IsActive  *bool
}

// Set of columns a project list can be ordered by.
const (
	OrderByPK          = "id"
	OrderByName        = "name"
	OrderByDescription = "description"
	OrderByStartDate   = "start_date"
	OrderByEndDate     = "end_date"
	OrderByBudget      = "budget"
	OrderByIsActive    = "is_active"
)

// OrderByFields maps sort_by values onto columns.
var OrderByFields = map[string]string{
	"id":          OrderByPK,
	"name":        OrderByName,
	"description": OrderByDescription,
	"start_date":  OrderByStartDate,
	"end_date":    OrderByEndDate,
	"budget":      OrderByBudget,
	"is_active":   OrderByIsActive,
}

package tasksrepo

// QueryFilter holds the available fields a query can be filtered on.
// All matches are exact.
type QueryFilter struct {
	ProjectID *int64
	Status    *string
	Priority  *string
}

// Set of columns a task list can be ordered by.
const (
	OrderByPK                = "id"
	OrderByProjectID         = "project_id"
	OrderByName              = "name"
	OrderByPriority          = "priority"
	OrderByStatus            = "status"
	OrderByPeriodOfExecution = "period_of_execution"
	OrderByTimeEstimation    = "time_estimation"
)

// OrderByFields maps sort_by values onto columns.
var OrderByFields = map[string]string{
	"id":                  OrderByPK,
	"project_id":          OrderByProjectID,
	"name":                OrderByName,
	"priority":            OrderByPriority,
	"status":              OrderByStatus,
	"period_of_execution": OrderByPeriodOfExecution,
	"time_estimation":     OrderByTimeEstimation,
}

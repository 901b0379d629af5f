package tasksrepo

import (
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jrazmi/taskboard/sdk/validation"
)

// Task belongs to exactly one project.
type Task struct {
	ID                int64       `db:"id" json:"id"`
	ProjectID         int64       `db:"project_id" json:"project_id"`
	Name              string      `db:"name" json:"name"`
	Priority          *string     `db:"priority" json:"priority"`
	Status            *string     `db:"status" json:"status"`
	PeriodOfExecution pgtype.Date `db:"period_of_execution" json:"period_of_execution"`
	TimeEstimation    *int32      `db:"time_estimation" json:"time_estimation"`
}

// CreateTask contains fields for creating a new task.
type CreateTask struct {
	ProjectID         int64
	Name              string
	Priority          *string
	Status            *string
	PeriodOfExecution pgtype.Date
	TimeEstimation    *int32
}

// UpdateTask contains fields for updating an existing task. A task cannot
// be moved to another project.
type UpdateTask struct {
	Name              *string
	Priority          *string
	Status            *string
	PeriodOfExecution *pgtype.Date
	TimeEstimation    *int32
}

// Apply merges the supplied fields onto t.
func (u UpdateTask) Apply(t Task) Task {
	t.Name = validation.Coalesce(t.Name, u.Name)
	t.Priority = validation.CoalescePtr(t.Priority, u.Priority)
	t.Status = validation.CoalescePtr(t.Status, u.Status)
	t.PeriodOfExecution = validation.Coalesce(t.PeriodOfExecution, u.PeriodOfExecution)
	t.TimeEstimation = validation.CoalescePtr(t.TimeEstimation, u.TimeEstimation)
	return t
}

package tasksrepobridge

import (
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jrazmi/taskboard/sdk/validation"
)

// CreateTaskInput is the body of POST /tasks.
type CreateTaskInput struct {
	ProjectID         *int64       `json:"project_id" validate:"required"`
	Name              *string      `json:"name" validate:"required,max=255"`
	Priority          *string      `json:"priority" validate:"omitnil,max=50"`
	Status            *string      `json:"status" validate:"omitnil,max=50"`
	PeriodOfExecution *pgtype.Date `json:"period_of_execution"`
	TimeEstimation    *int32       `json:"time_estimation"`
}

func (c CreateTaskInput) Validate() error {
	return validation.Check(c)
}

// UpdateTaskInput is the body of PUT /tasks/{task_id}. The owning project
// cannot be changed.
type UpdateTaskInput struct {
	Name              *string      `json:"name" validate:"omitnil,max=255"`
	Priority          *string      `json:"priority" validate:"omitnil,max=50"`
	Status            *string      `json:"status" validate:"omitnil,max=50"`
	PeriodOfExecution *pgtype.Date `json:"period_of_execution"`
	TimeEstimation    *int32       `json:"time_estimation"`
}

func (u UpdateTaskInput) Validate() error {
	return validation.Check(u)
}

package tasksrepobridge

import (
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jrazmi/taskboard/core/repositories/tasksrepo"
)

// MarshalCreateToRepository converts bridge create input to repository input
func MarshalCreateToRepository(input CreateTaskInput) tasksrepo.CreateTask {
	var period pgtype.Date
	if input.PeriodOfExecution != nil {
		period = *input.PeriodOfExecution
	}

	return tasksrepo.CreateTask{
		ProjectID:         *input.ProjectID,
		Name:              *input.Name,
		Priority:          input.Priority,
		Status:            input.Status,
		PeriodOfExecution: period,
		TimeEstimation:    input.TimeEstimation,
	}
}

// MarshalUpdateToRepository converts bridge update input to repository input
func MarshalUpdateToRepository(input UpdateTaskInput) tasksrepo.UpdateTask {
	return tasksrepo.UpdateTask{
		Name:              input.Name,
		Priority:          input.Priority,
		Status:            input.Status,
		PeriodOfExecution: input.PeriodOfExecution,
		TimeEstimation:    input.TimeEstimation,
	}
}

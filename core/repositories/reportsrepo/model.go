package reportsrepo

// ProjectAggregate summarizes every project. Null budgets add nothing to
// SumBudget.
type ProjectAggregate struct {
	Count     int64   `db:"count" json:"count"`
	SumBudget float64 `db:"sum_budget" json:"sum_budget"`
}

// TaskAggregate summarizes every task. AvgTime averages only tasks that
// carry an estimation and is 0 when none do.
type TaskAggregate struct {
	Count   int64   `db:"count" json:"count"`
	AvgTime float64 `db:"avg_time" json:"avg_time"`
}

// TaskWithProject pairs a task with its project. The project fields are nil
// when the task's project cannot be resolved.
type TaskWithProject struct {
	TaskID      int64   `db:"task_id" json:"task_id"`
	TaskName    string  `db:"task_name" json:"task_name"`
	ProjectID   *int64  `db:"project_id" json:"project_id"`
	ProjectName *string `db:"project_name" json:"project_name"`
}

// ProjectTaskCount is the number of tasks owned by one project.
type ProjectTaskCount struct {
	ProjectID   int64  `db:"project_id" json:"project_id"`
	ProjectName string `db:"project_name" json:"project_name"`
	TaskCount   int64  `db:"task_count" json:"task_count"`
}

// NameStats is a project name run through UPPER and LENGTH.
type NameStats struct {
	ID        int64  `db:"id" json:"id"`
	NameUpper string `db:"name_upper" json:"name_upper"`
	NameLen   int32  `db:"name_len" json:"name_len"`
}

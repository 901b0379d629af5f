package projectsrepo

import (
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jrazmi/taskboard/sdk/validation"
)

// Project is the top level record. Deleting a project removes its tasks.
type Project struct {
	ID          int64       `db:"id" json:"id"`
	Name        string      `db:"name" json:"name"`
	Description *string     `db:"description" json:"description"`
	StartDate   pgtype.Date `db:"start_date" json:"start_date"`
	EndDate     pgtype.Date `db:"end_date" json:"end_date"`
	Budget      *float64    `db:"budget" json:"budget"`
	IsActive    bool        `db:"is_active" json:"is_active"`
}

// CreateProject contains fields for creating a new project. A nil IsActive
// defaults to true.
type CreateProject struct {
	Name        string
	Description *string
	StartDate   pgtype.Date
	EndDate     pgtype.Date
	Budget      *float64
	IsActive    *bool
}

// UpdateProject contains fields for updating an existing project.
// Nil fields are left unchanged.
type UpdateProject struct {
	Name        *string
	Description *string
	StartDate   *pgtype.Date
	EndDate     *pgtype.Date
	Budget      *float64
	IsActive    *bool
}

// Apply merges the supplied fields onto p.
func (u UpdateProject) Apply(p Project) Project {
	p.Name = validation.Coalesce(p.Name, u.Name)
	p.Description = validation.CoalescePtr(p.Description, u.Description)
	p.StartDate = validation.Coalesce(p.StartDate, u.StartDate)
	p.EndDate = validation.Coalesce(p.EndDate, u.EndDate)
	p.Budget = validation.CoalescePtr(p.Budget, u.Budget)
	p.IsActive = validation.Coalesce(p.IsActive, u.IsActive)
	return p
}

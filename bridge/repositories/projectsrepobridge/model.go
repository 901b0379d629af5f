package projectsrepobridge

import (
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jrazmi/taskboard/sdk/validation"
)

// CreateProjectInput is the body of POST /projects. Dates are YYYY-MM-DD.
type CreateProjectInput struct {
	Name        *string      `json:"name" validate:"required,max=255"`
	Description *string      `json:"description"`
	StartDate   *pgtype.Date `json:"start_date"`
	EndDate     *pgtype.Date `json:"end_date"`
	Budget      *float64     `json:"budget"`
	IsActive    *bool        `json:"is_active"`
}

func (c CreateProjectInput) Validate() error {
	return validation.Check(c)
}

// UpdateProjectInput is the body of PUT /projects/{project_id}. Absent and
// null fields are left unchanged.
type UpdateProjectInput struct {
	Name        *string      `json:"name" validate:"omitnil,max=255"`
	Description *string      `json:"description"`
	StartDate   *pgtype.Date `json:"start_date"`
	EndDate     *pgtype.Date `json:"end_date"`
	Budget      *float64     `json:"budget"`
	IsActive    *bool        `json:"is_active"`
}

func (u UpdateProjectInput) Validate() error {
	return validation.Check(u)
}

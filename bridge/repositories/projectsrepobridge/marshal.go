package projectsrepobridge

import (
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jrazmi/taskboard/core/repositories/projectsrepo"
)

// MarshalCreateToRepository converts bridge create input to repository input
func MarshalCreateToRepository(input CreateProjectInput) projectsrepo.CreateProject {
	return projectsrepo.CreateProject{
		Name:        *input.Name,
		Description: input.Description,
		StartDate:   dateOrNull(input.StartDate),
		EndDate:     dateOrNull(input.EndDate),
		Budget:      input.Budget,
		IsActive:    input.IsActive,
	}
}

// MarshalUpdateToRepository converts bridge update input to repository input
func MarshalUpdateToRepository(input UpdateProjectInput) projectsrepo.UpdateProject {
	return projectsrepo.UpdateProject{
		Name:        input.Name,
		Description: input.Description,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Budget:      input.Budget,
		IsActive:    input.IsActive,
	}
}

func dateOrNull(d *pgtype.Date) pgtype.Date {
	if d == nil {
		return pgtype.Date{}
	}
	return *d
}

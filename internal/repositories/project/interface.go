package project

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/clockin/internal/repositories/project Repository

import (
	"context"

	"github.com/KirkDiggler/clockin/internal/models"
)

// Repository defines the interface for project data persistence
type Repository interface {
	// CreateProject creates a new project with a generated UUID
	CreateProject(ctx context.Context, input *CreateProjectInput) (*models.Project, error)

	// SaveProject persists a project
	SaveProject(ctx context.Context, input *SaveProjectInput) error

	// GetProject retrieves a project by ID
	GetProject(ctx context.Context, input *GetProjectInput) (*models.Project, error)

	// ListProjects retrieves all projects in a guild
	ListProjects(ctx context.Context, input *ListProjectsInput) ([]*models.Project, error)
}

package project

import (
	"time"

	"github.com/KirkDiggler/clockin/internal/models"
)

// CreateProjectInput contains parameters for creating a project
type CreateProjectInput struct {
	GuildID     string
	Name        string
	Description string
	CreatedBy   string
	CreatedAt   time.Time

	// CheckInterval and ResponseTimeout override the guild defaults when
	// non-zero
	CheckInterval   time.Duration
	ResponseTimeout time.Duration

	RequireConfirmation bool
}

// SaveProjectInput contains parameters for saving a project
type SaveProjectInput struct {
	Project *models.Project
}

// GetProjectInput contains parameters for retrieving a project
type GetProjectInput struct {
	ProjectID string
}

// ListProjectsInput contains parameters for listing projects in a guild
type ListProjectsInput struct {
	GuildID string

	// IncludeArchived returns archived projects as well when true
	IncludeArchived bool
}

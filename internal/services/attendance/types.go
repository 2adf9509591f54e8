package attendance

import (
	"time"

	"github.com/KirkDiggler/clockin/internal/common/clock"
	"github.com/KirkDiggler/clockin/internal/common/uuid"
	"github.com/KirkDiggler/clockin/internal/models"
	guildRepo "github.com/KirkDiggler/clockin/internal/repositories/guild"
	memberRepo "github.com/KirkDiggler/clockin/internal/repositories/member"
	projectRepo "github.com/KirkDiggler/clockin/internal/repositories/project"
	sessionRepo "github.com/KirkDiggler/clockin/internal/repositories/session"
)

// Config contains configuration for the attendance service
type Config struct {
	// SessionRepo stores work sessions
	SessionRepo sessionRepo.Repository

	// MemberRepo stores guild members
	MemberRepo memberRepo.Repository

	// ProjectRepo stores guild projects
	ProjectRepo projectRepo.Repository

	// GuildRepo stores per-guild settings
	GuildRepo guildRepo.Repository

	// Clock provides the current time
	Clock clock.Clock

	// UUIDGenerator generates session IDs
	UUIDGenerator uuid.UUID

	// DefaultCheckInterval is used at setup when the guild does not
	// specify one; defaults to 30 minutes
	DefaultCheckInterval time.Duration

	// DefaultResponseTimeout is used at setup when the guild does not
	// specify one; defaults to 1 hour
	DefaultResponseTimeout time.Duration
}

// SetupGuildInput contains parameters for setting up a guild
type SetupGuildInput struct {
	GuildID    string
	CategoryID string
	Locale     string

	// CheckInterval and ResponseTimeout override the service defaults
	// when non-zero
	CheckInterval   time.Duration
	ResponseTimeout time.Duration
}

// SetupGuildOutput contains the result of setting up a guild
type SetupGuildOutput struct {
	Config *models.GuildConfig
}

// DeprovisionGuildInput contains parameters for deprovisioning a guild
type DeprovisionGuildInput struct {
	GuildID string
}

// DeprovisionGuildOutput contains the result of deprovisioning a guild
type DeprovisionGuildOutput struct {
	// ClosedSessions is how many open sessions were auto-closed
	ClosedSessions int
}

// AddMemberInput contains parameters for registering a member
type AddMemberInput struct {
	GuildID  string
	UserID   string
	UserName string
}

// AddMemberOutput contains the result of registering a member
type AddMemberOutput struct {
	Member *models.Member

	// Reactivated indicates the member existed and was inactive
	Reactivated bool
}

// RemoveMemberInput contains parameters for removing a member
type RemoveMemberInput struct {
	GuildID string
	UserID  string
}

// RemoveMemberOutput contains the result of removing a member
type RemoveMemberOutput struct {
	Member *models.Member

	// ClosedSession is the open session that was closed by the removal,
	// nil if the member was not clocked in
	ClosedSession *models.Session
}

// ListMembersInput contains parameters for listing members
type ListMembersInput struct {
	GuildID    string
	ActiveOnly bool
}

// ListMembersOutput contains the result of listing members
type ListMembersOutput struct {
	Members []*models.Member
}

// CreateProjectInput contains parameters for creating a project
type CreateProjectInput struct {
	GuildID     string
	Name        string
	Description string
	CreatedBy   string

	// CheckInterval and ResponseTimeout override the guild defaults for
	// sessions on this project when non-zero
	CheckInterval   time.Duration
	ResponseTimeout time.Duration

	RequireConfirmation bool
}

// CreateProjectOutput contains the result of creating a project
type CreateProjectOutput struct {
	Project *models.Project
}

// ArchiveProjectInput contains parameters for archiving a project
type ArchiveProjectInput struct {
	GuildID   string
	ProjectID string
}

// ArchiveProjectOutput contains the result of archiving a project
type ArchiveProjectOutput struct {
	Project *models.Project
}

// SetProjectMembersInput contains parameters for restricting a project
type SetProjectMembersInput struct {
	GuildID   string
	ProjectID string

	// MemberIDs is the new allow list; empty opens the project to all
	// active members
	MemberIDs []string
}

// SetProjectMembersOutput contains the result of restricting a project
type SetProjectMembersOutput struct {
	Project *models.Project
}

// ListProjectsInput contains parameters for listing projects
type ListProjectsInput struct {
	GuildID         string
	IncludeArchived bool
}

// ListProjectsOutput contains the result of listing projects
type ListProjectsOutput struct {
	Projects []*models.Project
}

// ClockInInput contains parameters for opening a session
type ClockInInput struct {
	GuildID string
	UserID  string

	// ProjectID tags the session with a project; empty for unassigned
	ProjectID string
}

// ClockInOutput contains the result of opening a session
type ClockInOutput struct {
	Session *models.Session
}

// ClockOutInput contains parameters for closing a session
type ClockOutInput struct {
	GuildID string
	UserID  string

	// Summary is an optional note recorded with the close
	Summary string
}

// ClockOutOutput contains the result of closing a session
type ClockOutOutput struct {
	Session *models.Session

	// Duration is the total session length
	Duration time.Duration
}

// ConfirmInput contains parameters for recording a confirmation
type ConfirmInput struct {
	SessionID string
}

// ConfirmOutput contains the result of recording a confirmation
type ConfirmOutput struct {
	Session *models.Session
}

// RequestConfirmationInput contains parameters for issuing a prompt
type RequestConfirmationInput struct {
	SessionID string
}

// RequestConfirmationOutput contains the result of issuing a prompt
type RequestConfirmationOutput struct {
	Session *models.Session

	// Deadline is when the prompt expires
	Deadline time.Time
}

// TimeoutInput contains parameters for auto-closing a session
type TimeoutInput struct {
	SessionID string
}

// TimeoutOutput contains the result of auto-closing a session
type TimeoutOutput struct {
	Session *models.Session
}

// GetSessionInput contains parameters for retrieving a session by ID
type GetSessionInput struct {
	SessionID string
}

// GetSessionOutput contains the result of retrieving a session
type GetSessionOutput struct {
	Session *models.Session
}

// GetOpenSessionInput contains parameters for retrieving an open session
type GetOpenSessionInput struct {
	GuildID string
	UserID  string
}

// GetOpenSessionOutput contains the result of retrieving an open session
type GetOpenSessionOutput struct {
	Session *models.Session

	// Elapsed is how long the session has been running
	Elapsed time.Duration
}

// ListDueSessionsInput contains parameters for a liveness sweep read
type ListDueSessionsInput struct {
	GuildID string
}

// ListDueSessionsOutput contains the sessions a liveness sweep acts on
type ListDueSessionsOutput struct {
	// NeedingPrompt are open sessions due for a confirmation prompt
	NeedingPrompt []*models.Session

	// Expired are awaiting sessions whose deadline has passed
	Expired []*models.Session
}

// ListGuildsOutput contains the IDs of all configured guilds
type ListGuildsOutput struct {
	GuildIDs []string
}

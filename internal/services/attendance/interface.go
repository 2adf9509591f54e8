package attendance

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/clockin/internal/services/attendance Service

// Service defines the interface for attendance operations
type Service interface {
	// SetupGuild registers a guild and its default liveness settings
	SetupGuild(ctx context.Context, input *SetupGuildInput) (*SetupGuildOutput, error)

	// DeprovisionGuild closes all open sessions in a guild and removes
	// its configuration; closed sessions are kept as history
	DeprovisionGuild(ctx context.Context, input *DeprovisionGuildInput) (*DeprovisionGuildOutput, error)

	// AddMember registers a user for tracking, reactivating them if they
	// were previously removed
	AddMember(ctx context.Context, input *AddMemberInput) (*AddMemberOutput, error)

	// RemoveMember deactivates a member and closes their open session
	RemoveMember(ctx context.Context, input *RemoveMemberInput) (*RemoveMemberOutput, error)

	// ListMembers returns the members registered in a guild
	ListMembers(ctx context.Context, input *ListMembersInput) (*ListMembersOutput, error)

	// CreateProject creates a project sessions can be tagged with
	CreateProject(ctx context.Context, input *CreateProjectInput) (*CreateProjectOutput, error)

	// ArchiveProject marks a project as no longer accepting sessions
	ArchiveProject(ctx context.Context, input *ArchiveProjectInput) (*ArchiveProjectOutput, error)

	// SetProjectMembers restricts a project to a set of members
	SetProjectMembers(ctx context.Context, input *SetProjectMembersInput) (*SetProjectMembersOutput, error)

	// ListProjects returns the projects in a guild
	ListProjects(ctx context.Context, input *ListProjectsInput) (*ListProjectsOutput, error)

	// ClockIn opens a new work session for a member
	ClockIn(ctx context.Context, input *ClockInInput) (*ClockInOutput, error)

	// ClockOut closes the member's open session
	ClockOut(ctx context.Context, input *ClockOutInput) (*ClockOutOutput, error)

	// Confirm records a liveness confirmation for a session
	Confirm(ctx context.Context, input *ConfirmInput) (*ConfirmOutput, error)

	// RequestConfirmation moves an open session into the awaiting state
	// with a response deadline
	RequestConfirmation(ctx context.Context, input *RequestConfirmationInput) (*RequestConfirmationOutput, error)

	// Timeout auto-closes a session whose confirmation deadline passed
	Timeout(ctx context.Context, input *TimeoutInput) (*TimeoutOutput, error)

	// GetSession returns a session by ID without changing it
	GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error)

	// GetOpenSession returns the member's current open session
	GetOpenSession(ctx context.Context, input *GetOpenSessionInput) (*GetOpenSessionOutput, error)

	// ListDueSessions returns the sessions a liveness sweep should act on
	ListDueSessions(ctx context.Context, input *ListDueSessionsInput) (*ListDueSessionsOutput, error)

	// ListGuilds returns the IDs of all configured guilds
	ListGuilds(ctx context.Context) (*ListGuildsOutput, error)
}

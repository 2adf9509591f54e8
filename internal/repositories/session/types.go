package session

import (
	"time"

	"github.com/KirkDiggler/clockin/internal/models"
)

// CreateSessionInput contains parameters for creating a session
type CreateSessionInput struct {
	Session *models.Session
}

// GetSessionInput contains parameters for retrieving a session by ID
type GetSessionInput struct {
	SessionID string
}

// GetOpenSessionInput contains parameters for retrieving a user's open session
type GetOpenSessionInput struct {
	GuildID string
	UserID  string
}

// CloseSessionInput contains parameters for closing a session
type CloseSessionInput struct {
	SessionID string

	// EndTime is the moment the session ends; must not precede the start
	EndTime time.Time

	// Status is the terminal status, closed_manual or closed_auto
	Status models.SessionStatus

	// EndSummary is an optional note recorded with the close
	EndSummary string
}

// MarkAwaitingConfirmationInput contains parameters for issuing a prompt
type MarkAwaitingConfirmationInput struct {
	SessionID  string
	PromptedAt time.Time
	Deadline   time.Time
}

// UpdateConfirmationInput contains parameters for recording a confirmation
type UpdateConfirmationInput struct {
	SessionID   string
	ConfirmedAt time.Time
}

// ListSessionsNeedingPingInput contains parameters for the ping-due read
type ListSessionsNeedingPingInput struct {
	GuildID string

	// AsOf is the scheduler's notion of now; sessions whose next prompt
	// is due at or before this time are returned
	AsOf time.Time
}

// ListExpiredConfirmationsInput contains parameters for the timeout read
type ListExpiredConfirmationsInput struct {
	GuildID string
	AsOf    time.Time
}

// ListOpenSessionsInput contains parameters for listing open sessions
type ListOpenSessionsInput struct {
	GuildID string
}

// QueryHistoryInput contains parameters for the reporting read path
type QueryHistoryInput struct {
	GuildID string

	// UserID narrows the query to one user when set
	UserID string

	// ProjectID narrows the query to one project when set
	ProjectID string

	// From and To bound the session start time; a zero To means unbounded
	From time.Time
	To   time.Time
}

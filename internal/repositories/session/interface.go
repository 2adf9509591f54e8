package session

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/clockin/internal/repositories/session Repository

import (
	"context"

	"github.com/KirkDiggler/clockin/internal/models"
)

// Repository defines the interface for session data persistence
type Repository interface {
	// CreateSession persists a new open session, enforcing at most one
	// open session per (guild, user) atomically
	CreateSession(ctx context.Context, input *CreateSessionInput) error

	// GetSession retrieves a session by ID
	GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error)

	// GetOpenSession retrieves the open or awaiting session for a user
	GetOpenSession(ctx context.Context, input *GetOpenSessionInput) (*models.Session, error)

	// CloseSession sets the end timestamp and final status; a session
	// that already has an end timestamp is never overwritten
	CloseSession(ctx context.Context, input *CloseSessionInput) (*models.Session, error)

	// MarkAwaitingConfirmation moves an open session into the awaiting
	// state with a prompt deadline; only one prompt may be outstanding
	MarkAwaitingConfirmation(ctx context.Context, input *MarkAwaitingConfirmationInput) (*models.Session, error)

	// UpdateConfirmation records a liveness confirmation and returns the
	// session to the open state
	UpdateConfirmation(ctx context.Context, input *UpdateConfirmationInput) (*models.Session, error)

	// ListSessionsNeedingPing returns open sessions whose next liveness
	// prompt is due as of the given time
	ListSessionsNeedingPing(ctx context.Context, input *ListSessionsNeedingPingInput) ([]*models.Session, error)

	// ListExpiredConfirmations returns awaiting sessions whose prompt
	// deadline has passed as of the given time
	ListExpiredConfirmations(ctx context.Context, input *ListExpiredConfirmationsInput) ([]*models.Session, error)

	// ListOpenSessions returns every open or awaiting session in a guild
	ListOpenSessions(ctx context.Context, input *ListOpenSessionsInput) ([]*models.Session, error)

	// QueryHistory returns sessions in a time range, ordered by start
	// time ascending; both open and closed sessions are included
	QueryHistory(ctx context.Context, input *QueryHistoryInput) ([]*models.Session, error)
}

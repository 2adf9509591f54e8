package member

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/clockin/internal/repositories/member Repository

import (
	"context"

	"github.com/KirkDiggler/clockin/internal/models"
)

// Repository defines the interface for member data persistence
type Repository interface {
	// SaveMember persists a member
	SaveMember(ctx context.Context, input *SaveMemberInput) error

	// GetMember retrieves a member by guild and user ID
	GetMember(ctx context.Context, input *GetMemberInput) (*models.Member, error)

	// ListMembers retrieves all members in a guild
	ListMembers(ctx context.Context, input *ListMembersInput) ([]*models.Member, error)

	// DeactivateMember soft-deletes a member; historical sessions survive
	DeactivateMember(ctx context.Context, input *DeactivateMemberInput) (*models.Member, error)
}

package member

import (
	"time"

	"github.com/KirkDiggler/clockin/internal/models"
)

// SaveMemberInput contains parameters for saving a member
type SaveMemberInput struct {
	Member *models.Member
}

// GetMemberInput contains parameters for retrieving a member
type GetMemberInput struct {
	GuildID string
	UserID  string
}

// ListMembersInput contains parameters for listing members in a guild
type ListMembersInput struct {
	GuildID string

	// ActiveOnly excludes deactivated members when true
	ActiveOnly bool
}

// DeactivateMemberInput contains parameters for deactivating a member
type DeactivateMemberInput struct {
	GuildID       string
	UserID        string
	DeactivatedAt time.Time
}

package guild

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/clockin/internal/repositories/guild Repository

import (
	"context"

	"github.com/KirkDiggler/clockin/internal/models"
)

// Repository defines the interface for guild settings persistence
type Repository interface {
	// SaveGuildConfig persists a guild's settings
	SaveGuildConfig(ctx context.Context, input *SaveGuildConfigInput) error

	// GetGuildConfig retrieves a guild's settings
	GetGuildConfig(ctx context.Context, input *GetGuildConfigInput) (*models.GuildConfig, error)

	// ListGuildIDs retrieves the IDs of all configured guilds
	ListGuildIDs(ctx context.Context) ([]string, error)

	// DeleteGuildConfig removes a guild's settings; used on deprovision
	DeleteGuildConfig(ctx context.Context, input *DeleteGuildConfigInput) error
}

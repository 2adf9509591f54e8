package guild

import (
	"github.com/KirkDiggler/clockin/internal/models"
)

// SaveGuildConfigInput contains parameters for saving guild settings
type SaveGuildConfigInput struct {
	Config *models.GuildConfig
}

// GetGuildConfigInput contains parameters for retrieving guild settings
type GetGuildConfigInput struct {
	GuildID string
}

// DeleteGuildConfigInput contains parameters for deleting guild settings
type DeleteGuildConfigInput struct {
	GuildID string
}

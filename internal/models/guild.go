package models

import (
	"time"
)

// GuildConfig holds the per-guild settings created by setup. The guild is
// the tenant boundary: every member, project and session is scoped to one.
type GuildConfig struct {
	// GuildID is the Discord server/guild identifier
	GuildID string

	// CategoryID is the Discord category provisioned for attendance channels
	CategoryID string

	// Locale is the guild's display language
	Locale string

	// CheckInterval is the default time between liveness prompts for
	// sessions whose project does not override it
	CheckInterval time.Duration

	// ResponseTimeout is the default time a user has to answer a prompt
	ResponseTimeout time.Duration

	// CreatedAt is when the guild was set up
	CreatedAt time.Time
}

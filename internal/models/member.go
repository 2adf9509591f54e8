package models

import (
	"time"
)

// Member represents a user registered for attendance tracking in a guild.
// Removal is a soft deactivation so historical sessions stay intact.
type Member struct {
	// GuildID is the Discord server/guild the member belongs to
	GuildID string

	// UserID is the Discord user identifier
	UserID string

	// UserName is the display name recorded when the member was added
	UserName string

	// Active indicates the member may clock in; false once removed
	Active bool

	// JoinedAt is when the member was added
	JoinedAt time.Time

	// DeactivatedAt is when the member was removed; zero while active
	DeactivatedAt time.Time
}

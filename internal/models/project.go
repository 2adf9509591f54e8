package models

import (
	"time"
)

// Project represents a guild-owned project sessions can be tagged with.
// Projects are archived rather than deleted; sessions snapshot the project
// label at clock-in so archived projects never invalidate history.
type Project struct {
	// ID is the unique identifier for the project
	ID string

	// GuildID is the Discord server/guild that owns the project
	GuildID string

	// Name is the display label
	Name string

	// Description is an optional free-form note
	Description string

	// CheckInterval overrides the guild default time between liveness
	// prompts; zero means use the guild default
	CheckInterval time.Duration

	// ResponseTimeout overrides the guild default prompt timeout; zero
	// means use the guild default
	ResponseTimeout time.Duration

	// RequireConfirmation is whether sessions on this project are subject
	// to liveness checks
	RequireConfirmation bool

	// Archived indicates the project no longer accepts new sessions
	Archived bool

	// MemberIDs restricts who may clock in on this project; empty means
	// any active member
	MemberIDs []string

	// CreatedBy is the user ID who created the project
	CreatedBy string

	// CreatedAt is when the project was created
	CreatedAt time.Time
}

// AllowsMember reports whether the given user may clock in on this project.
func (p *Project) AllowsMember(userID string) bool {
	if len(p.MemberIDs) == 0 {
		return true
	}
	for _, id := range p.MemberIDs {
		if id == userID {
			return true
		}
	}
	return false
}

package models

import (
	"time"
)

// SessionStatus represents the lifecycle state of a work session
type SessionStatus string

const (
	// SessionStatusOpen indicates the user is clocked in and confirmed recently
	SessionStatusOpen SessionStatus = "open"

	// SessionStatusAwaitingConfirmation indicates a liveness prompt is outstanding
	SessionStatusAwaitingConfirmation SessionStatus = "awaiting_confirmation"

	// SessionStatusClosedManual indicates the user clocked out explicitly
	SessionStatusClosedManual SessionStatus = "closed_manual"

	// SessionStatusClosedAuto indicates the session was ended by the system
	// after a confirmation prompt went unanswered
	SessionStatusClosedAuto SessionStatus = "closed_auto"
)

// Session represents one clock-in-to-clock-out interval for a user.
// Closed sessions are permanent audit records and are never deleted.
type Session struct {
	// ID is the unique identifier for this session
	ID string

	// GuildID is the Discord server/guild this session belongs to
	GuildID string

	// UserID is the Discord user who is clocked in
	UserID string

	// ProjectID is the project this session is tagged with, empty for unassigned
	ProjectID string

	// ProjectName is the project label snapshotted at clock-in, so the
	// session stays readable after the project is archived
	ProjectName string

	// Status is the current lifecycle state
	Status SessionStatus

	// StartTime is when the user clocked in
	StartTime time.Time

	// EndTime is when the session ended; zero while the session is open
	EndTime time.Time

	// LastConfirmedAt is the last time the user was known to be active.
	// Set to StartTime at clock-in, advanced on every confirmation.
	LastConfirmedAt time.Time

	// PromptedAt is when the outstanding confirmation prompt was issued;
	// zero unless Status is awaiting_confirmation
	PromptedAt time.Time

	// ConfirmDeadline is when the outstanding prompt expires; zero unless
	// Status is awaiting_confirmation
	ConfirmDeadline time.Time

	// CheckInterval is how long after LastConfirmedAt the next liveness
	// prompt is due, snapshotted from project/guild settings at clock-in
	CheckInterval time.Duration

	// ResponseTimeout is how long the user has to answer a prompt,
	// snapshotted at clock-in
	ResponseTimeout time.Duration

	// RequireConfirmation is whether this session participates in liveness
	// checks at all, snapshotted at clock-in
	RequireConfirmation bool

	// EndSummary is an optional note recorded when the session ends
	EndSummary string
}

// IsOpen reports whether the session still counts toward the one-active-
// session-per-user invariant.
func (s *Session) IsOpen() bool {
	return s.Status == SessionStatusOpen || s.Status == SessionStatusAwaitingConfirmation
}

// Duration returns the session length. Open sessions are measured up to now.
func (s *Session) Duration(now time.Time) time.Duration {
	if s.EndTime.IsZero() {
		return now.Sub(s.StartTime)
	}
	return s.EndTime.Sub(s.StartTime)
}

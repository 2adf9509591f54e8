package liveness

import (
	"time"

	"github.com/KirkDiggler/clockin/internal/models"
	"github.com/KirkDiggler/clockin/internal/services/attendance"
)

// Config contains configuration for the liveness sweeper
type Config struct {
	// Attendance drives the session state transitions
	Attendance attendance.Service

	// Notifier delivers prompts and auto-close notices
	Notifier Notifier

	// SweepInterval is how often the sweep runs; defaults to 1 minute
	SweepInterval time.Duration
}

// PromptInput contains parameters for a confirmation prompt
type PromptInput struct {
	Session *models.Session

	// Deadline is when the prompt expires
	Deadline time.Time
}

// PromptOutput contains the result of delivering a prompt
type PromptOutput struct {
	// Delivered indicates the prompt reached the user. The deadline
	// stands either way; delivery failures never keep a session open
	// forever.
	Delivered bool
}

// NotifyAutoCloseInput contains parameters for an auto-close notice
type NotifyAutoCloseInput struct {
	Session *models.Session
}

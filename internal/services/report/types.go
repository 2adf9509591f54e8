package report

import (
	"time"

	"github.com/KirkDiggler/clockin/internal/common/clock"
	"github.com/KirkDiggler/clockin/internal/models"
	sessionRepo "github.com/KirkDiggler/clockin/internal/repositories/session"
)

// Config contains configuration for the report service
type Config struct {
	// SessionRepo provides the session history
	SessionRepo sessionRepo.Repository

	// Clock provides the current time for measuring open sessions
	Clock clock.Clock
}

// Entry is one session in a report
type Entry struct {
	Session *models.Session

	// Duration is the session length; open sessions are measured up to
	// the report's generation time
	Duration time.Duration

	// Provisional indicates the session is still open and its duration
	// will keep growing
	Provisional bool
}

// ProjectTotal aggregates time spent on one project
type ProjectTotal struct {
	ProjectID   string
	ProjectName string
	Sessions    int
	Total       time.Duration
}

// UserTotal aggregates time spent by one user
type UserTotal struct {
	UserID   string
	Sessions int
	Total    time.Duration
}

// DayTotal aggregates time worked on one UTC calendar day. Sessions are
// attributed to the day they started on.
type DayTotal struct {
	// Day is midnight UTC of the calendar day
	Day      time.Time
	Sessions int
	Total    time.Duration
}

// Report is an aggregated view over a guild's session history
type Report struct {
	GuildID     string
	From        time.Time
	To          time.Time
	GeneratedAt time.Time

	// Entries are ordered by session start time ascending
	Entries []*Entry

	Total         time.Duration
	ProjectTotals []*ProjectTotal
	UserTotals    []*UserTotal

	// DayTotals are ordered by day ascending
	DayTotals []*DayTotal
}

// BuildReportInput contains parameters for building a report
type BuildReportInput struct {
	GuildID string

	// UserID narrows the report to one user when set
	UserID string

	// ProjectID narrows the report to one project when set
	ProjectID string

	// From and To bound the session start time; a zero To means up to now
	From time.Time
	To   time.Time
}

// BuildReportOutput contains the result of building a report
type BuildReportOutput struct {
	Report *Report
}

// TodayInput contains parameters for a today report
type TodayInput struct {
	GuildID string

	// UserID narrows the report to one user when set
	UserID string
}

// TodayOutput contains the result of a today report
type TodayOutput struct {
	Report *Report
}

package report

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/KirkDiggler/clockin/internal/models"
	sessionRepo "github.com/KirkDiggler/clockin/internal/repositories/session"
)

// unassignedProject labels sessions that were not tagged with a project
const unassignedProject = "(no project)"

// Define errors
var (
	ErrNilConfig      = errors.New("config cannot be nil")
	ErrNilSessionRepo = errors.New("session repository cannot be nil")
	ErrNilClock       = errors.New("clock cannot be nil")
	ErrNilReport      = errors.New("report cannot be nil")
)

// service implements the Service interface
type service struct {
	config      *Config
	sessionRepo sessionRepo.Repository
}

// NewService creates a new report service
func NewService(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	return &service{
		config:      cfg,
		sessionRepo: cfg.SessionRepo,
	}, nil
}

// BuildReport aggregates session history into a report
func (s *service) BuildReport(ctx context.Context, input *BuildReportInput) (*BuildReportOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	sessions, err := s.sessionRepo.QueryHistory(ctx, &sessionRepo.QueryHistoryInput{
		GuildID:   input.GuildID,
		UserID:    input.UserID,
		ProjectID: input.ProjectID,
		From:      input.From,
		To:        input.To,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query session history: %w", err)
	}

	now := s.config.Clock.Now()

	report := &Report{
		GuildID:     input.GuildID,
		From:        input.From,
		To:          input.To,
		GeneratedAt: now,
		Entries:     make([]*Entry, 0, len(sessions)),
	}

	projectTotals := make(map[string]*ProjectTotal)
	userTotals := make(map[string]*UserTotal)
	dayTotals := make(map[time.Time]*DayTotal)

	for _, sess := range sessions {
		entry := &Entry{
			Session:     sess,
			Duration:    sess.Duration(now),
			Provisional: sess.IsOpen(),
		}
		report.Entries = append(report.Entries, entry)
		report.Total += entry.Duration

		pt, ok := projectTotals[sess.ProjectID]
		if !ok {
			name := sess.ProjectName
			if name == "" {
				name = unassignedProject
			}
			pt = &ProjectTotal{
				ProjectID:   sess.ProjectID,
				ProjectName: name,
			}
			projectTotals[sess.ProjectID] = pt
		}
		pt.Sessions++
		pt.Total += entry.Duration

		ut, ok := userTotals[sess.UserID]
		if !ok {
			ut = &UserTotal{UserID: sess.UserID}
			userTotals[sess.UserID] = ut
		}
		ut.Sessions++
		ut.Total += entry.Duration

		day := dayOf(sess.StartTime)
		dt, ok := dayTotals[day]
		if !ok {
			dt = &DayTotal{Day: day}
			dayTotals[day] = dt
		}
		dt.Sessions++
		dt.Total += entry.Duration
	}

	for _, pt := range projectTotals {
		report.ProjectTotals = append(report.ProjectTotals, pt)
	}
	sort.Slice(report.ProjectTotals, func(i, j int) bool {
		return report.ProjectTotals[i].Total > report.ProjectTotals[j].Total
	})

	for _, ut := range userTotals {
		report.UserTotals = append(report.UserTotals, ut)
	}
	sort.Slice(report.UserTotals, func(i, j int) bool {
		return report.UserTotals[i].Total > report.UserTotals[j].Total
	})

	for _, dt := range dayTotals {
		report.DayTotals = append(report.DayTotals, dt)
	}
	sort.Slice(report.DayTotals, func(i, j int) bool {
		return report.DayTotals[i].Day.Before(report.DayTotals[j].Day)
	})

	return &BuildReportOutput{
		Report: report,
	}, nil
}

// Today builds a report for the current UTC day
func (s *service) Today(ctx context.Context, input *TodayInput) (*TodayOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	now := s.config.Clock.Now().UTC()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	output, err := s.BuildReport(ctx, &BuildReportInput{
		GuildID: input.GuildID,
		UserID:  input.UserID,
		From:    dayStart,
		To:      now,
	})
	if err != nil {
		return nil, err
	}

	return &TodayOutput{
		Report: output.Report,
	}, nil
}

// WriteCSV renders a report as CSV
func (s *service) WriteCSV(w io.Writer, report *Report) error {
	if report == nil {
		return ErrNilReport
	}

	writer := csv.NewWriter(w)

	header := []string{"user_id", "project", "start", "end", "duration", "status", "summary"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, entry := range report.Entries {
		sess := entry.Session

		project := sess.ProjectName
		if project == "" {
			project = unassignedProject
		}

		end := ""
		if !sess.EndTime.IsZero() {
			end = sess.EndTime.UTC().Format(time.RFC3339)
		}

		record := []string{
			sess.UserID,
			project,
			sess.StartTime.UTC().Format(time.RFC3339),
			end,
			FormatDuration(entry.Duration),
			string(csvStatus(sess.Status)),
			sess.EndSummary,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// dayOf truncates a timestamp to midnight UTC of its calendar day
func dayOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// csvStatus collapses the two live states into one export label
func csvStatus(status models.SessionStatus) models.SessionStatus {
	if status == models.SessionStatusAwaitingConfirmation {
		return models.SessionStatusOpen
	}
	return status
}

// FormatDuration renders a duration as hours, minutes and seconds
func FormatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	return fmt.Sprintf("%dh %02dm %02ds", h, m, d/time.Second)
}

package liveness

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/KirkDiggler/clockin/internal/services/attendance"
)

const defaultSweepInterval = time.Minute

// Define errors
var (
	ErrNilConfig     = errors.New("config cannot be nil")
	ErrNilAttendance = errors.New("attendance service cannot be nil")
	ErrNilNotifier   = errors.New("notifier cannot be nil")
)

// Service periodically sweeps every guild for sessions that need a
// confirmation prompt or have let one expire.
type Service struct {
	config     *Config
	attendance attendance.Service
	notifier   Notifier
	cron       *cron.Cron
}

// New creates a new liveness sweeper
func New(cfg *Config) (*Service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Attendance == nil {
		return nil, ErrNilAttendance
	}

	if cfg.Notifier == nil {
		return nil, ErrNilNotifier
	}

	if cfg.SweepInterval == 0 {
		cfg.SweepInterval = defaultSweepInterval
	}

	return &Service{
		config:     cfg,
		attendance: cfg.Attendance,
		notifier:   cfg.Notifier,
		cron:       cron.New(),
	}, nil
}

// Start schedules the recurring sweep
func (s *Service) Start() error {
	_, err := s.cron.AddFunc(fmt.Sprintf("@every %s", s.config.SweepInterval), func() {
		if err := s.Tick(context.Background()); err != nil {
			log.Printf("Liveness sweep failed: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule liveness sweep: %w", err)
	}

	s.cron.Start()
	log.Printf("Liveness sweeper started (every %s)", s.config.SweepInterval)
	return nil
}

// Stop halts the sweep and waits for a running one to finish
func (s *Service) Stop() {
	<-s.cron.Stop().Done()
}

// Tick runs one sweep over every configured guild. A failing guild is
// logged and skipped so one tenant cannot stall the others.
func (s *Service) Tick(ctx context.Context) error {
	guilds, err := s.attendance.ListGuilds(ctx)
	if err != nil {
		return fmt.Errorf("failed to list guilds: %w", err)
	}

	var firstErr error
	for _, guildID := range guilds.GuildIDs {
		if err := s.sweepGuild(ctx, guildID); err != nil {
			log.Printf("Liveness sweep failed for guild %s: %v", guildID, err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	return firstErr
}

// sweepGuild times out expired sessions first, then issues new prompts.
// Expirations go first so a session cannot be prompted again in the
// same sweep that should have closed it.
func (s *Service) sweepGuild(ctx context.Context, guildID string) error {
	due, err := s.attendance.ListDueSessions(ctx, &attendance.ListDueSessionsInput{
		GuildID: guildID,
	})
	if err != nil {
		return err
	}

	for _, sess := range due.Expired {
		output, err := s.attendance.Timeout(ctx, &attendance.TimeoutInput{
			SessionID: sess.ID,
		})
		if err != nil {
			// The user confirmed or clocked out between the read and
			// the timeout; nothing to do
			if errors.Is(err, attendance.ErrInvalidSessionState) ||
				errors.Is(err, attendance.ErrSessionNotFound) {
				continue
			}
			return err
		}

		if err := s.notifier.NotifyAutoClose(ctx, &NotifyAutoCloseInput{
			Session: output.Session,
		}); err != nil {
			log.Printf("Failed to notify auto-close for session %s: %v", sess.ID, err)
		}
	}

	for _, sess := range due.NeedingPrompt {
		output, err := s.attendance.RequestConfirmation(ctx, &attendance.RequestConfirmationInput{
			SessionID: sess.ID,
		})
		if err != nil {
			if errors.Is(err, attendance.ErrInvalidSessionState) ||
				errors.Is(err, attendance.ErrSessionNotFound) {
				continue
			}
			return err
		}

		promptOutput, err := s.notifier.Prompt(ctx, &PromptInput{
			Session:  output.Session,
			Deadline: output.Deadline,
		})
		if err != nil {
			log.Printf("Failed to deliver prompt for session %s: %v", sess.ID, err)
			continue
		}
		if !promptOutput.Delivered {
			log.Printf("Prompt for session %s not delivered; deadline %s stands",
				sess.ID, output.Deadline.Format(time.RFC3339))
		}
	}

	return nil
}

package attendance

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/KirkDiggler/clockin/internal/models"
	guildRepo "github.com/KirkDiggler/clockin/internal/repositories/guild"
	memberRepo "github.com/KirkDiggler/clockin/internal/repositories/member"
	projectRepo "github.com/KirkDiggler/clockin/internal/repositories/project"
	sessionRepo "github.com/KirkDiggler/clockin/internal/repositories/session"
)

const (
	defaultCheckInterval   = 30 * time.Minute
	defaultResponseTimeout = time.Hour

	// autoCloseSummary is recorded on sessions ended by an unanswered prompt
	autoCloseSummary = "auto-closed: no response"
)

// service implements the Service interface
type service struct {
	config      *Config
	sessionRepo sessionRepo.Repository
	memberRepo  memberRepo.Repository
	projectRepo projectRepo.Repository
	guildRepo   guildRepo.Repository

	// locks serializes session transitions per (guild, user) so a clock-in
	// and an auto-close can never interleave for the same user
	locks sync.Map
}

// NewService creates a new attendance service
func NewService(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}

	if cfg.MemberRepo == nil {
		return nil, ErrNilMemberRepo
	}

	if cfg.ProjectRepo == nil {
		return nil, ErrNilProjectRepo
	}

	if cfg.GuildRepo == nil {
		return nil, ErrNilGuildRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	if cfg.DefaultCheckInterval == 0 {
		cfg.DefaultCheckInterval = defaultCheckInterval
	}

	if cfg.DefaultResponseTimeout == 0 {
		cfg.DefaultResponseTimeout = defaultResponseTimeout
	}

	return &service{
		config:      cfg,
		sessionRepo: cfg.SessionRepo,
		memberRepo:  cfg.MemberRepo,
		projectRepo: cfg.ProjectRepo,
		guildRepo:   cfg.GuildRepo,
	}, nil
}

// userLock returns the mutex guarding session transitions for a user
func (s *service) userLock(guildID, userID string) *sync.Mutex {
	v, _ := s.locks.LoadOrStore(guildID+":"+userID, &sync.Mutex{})
	return v.(*sync.Mutex)
}

// SetupGuild registers a guild and its default liveness settings
func (s *service) SetupGuild(ctx context.Context, input *SetupGuildInput) (*SetupGuildOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	checkInterval := input.CheckInterval
	if checkInterval == 0 {
		checkInterval = s.config.DefaultCheckInterval
	}

	responseTimeout := input.ResponseTimeout
	if responseTimeout == 0 {
		responseTimeout = s.config.DefaultResponseTimeout
	}

	createdAt := s.config.Clock.Now()

	// Re-running setup updates the settings but keeps the original
	// creation time
	existing, err := s.guildRepo.GetGuildConfig(ctx, &guildRepo.GetGuildConfigInput{
		GuildID: input.GuildID,
	})
	if err == nil {
		createdAt = existing.CreatedAt
	} else if !errors.Is(err, guildRepo.ErrGuildNotFound) {
		return nil, err
	}

	cfg := &models.GuildConfig{
		GuildID:         input.GuildID,
		CategoryID:      input.CategoryID,
		Locale:          input.Locale,
		CheckInterval:   checkInterval,
		ResponseTimeout: responseTimeout,
		CreatedAt:       createdAt,
	}

	err = s.guildRepo.SaveGuildConfig(ctx, &guildRepo.SaveGuildConfigInput{
		Config: cfg,
	})
	if err != nil {
		return nil, err
	}

	return &SetupGuildOutput{
		Config: cfg,
	}, nil
}

// DeprovisionGuild closes all open sessions in a guild and removes its
// configuration
func (s *service) DeprovisionGuild(ctx context.Context, input *DeprovisionGuildInput) (*DeprovisionGuildOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	openSessions, err := s.sessionRepo.ListOpenSessions(ctx, &sessionRepo.ListOpenSessionsInput{
		GuildID: input.GuildID,
	})
	if err != nil {
		return nil, err
	}

	now := s.config.Clock.Now()
	closed := 0

	for _, sess := range openSessions {
		lock := s.userLock(sess.GuildID, sess.UserID)
		lock.Lock()

		_, err := s.sessionRepo.CloseSession(ctx, &sessionRepo.CloseSessionInput{
			SessionID:  sess.ID,
			EndTime:    now,
			Status:     models.SessionStatusClosedAuto,
			EndSummary: "guild deprovisioned",
		})
		lock.Unlock()

		if err != nil {
			// A concurrent clock-out is fine, anything else is not
			if errors.Is(err, sessionRepo.ErrSessionAlreadyClosed) {
				continue
			}
			return nil, err
		}
		closed++
	}

	err = s.guildRepo.DeleteGuildConfig(ctx, &guildRepo.DeleteGuildConfigInput{
		GuildID: input.GuildID,
	})
	if err != nil {
		return nil, err
	}

	return &DeprovisionGuildOutput{
		ClosedSessions: closed,
	}, nil
}

// AddMember registers a user for tracking, reactivating them if needed
func (s *service) AddMember(ctx context.Context, input *AddMemberInput) (*AddMemberOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	_, err := s.guildRepo.GetGuildConfig(ctx, &guildRepo.GetGuildConfigInput{
		GuildID: input.GuildID,
	})
	if err != nil {
		if errors.Is(err, guildRepo.ErrGuildNotFound) {
			return nil, ErrGuildNotSetUp
		}
		return nil, err
	}

	reactivated := false
	now := s.config.Clock.Now()

	mbr, err := s.memberRepo.GetMember(ctx, &memberRepo.GetMemberInput{
		GuildID: input.GuildID,
		UserID:  input.UserID,
	})
	switch {
	case err == nil:
		reactivated = !mbr.Active
		mbr.Active = true
		mbr.DeactivatedAt = time.Time{}
		if input.UserName != "" {
			mbr.UserName = input.UserName
		}
	case errors.Is(err, memberRepo.ErrMemberNotFound):
		mbr = &models.Member{
			GuildID:  input.GuildID,
			UserID:   input.UserID,
			UserName: input.UserName,
			Active:   true,
			JoinedAt: now,
		}
	default:
		return nil, err
	}

	err = s.memberRepo.SaveMember(ctx, &memberRepo.SaveMemberInput{
		Member: mbr,
	})
	if err != nil {
		return nil, err
	}

	return &AddMemberOutput{
		Member:      mbr,
		Reactivated: reactivated,
	}, nil
}

// RemoveMember deactivates a member and closes their open session
func (s *service) RemoveMember(ctx context.Context, input *RemoveMemberInput) (*RemoveMemberOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	lock := s.userLock(input.GuildID, input.UserID)
	lock.Lock()
	defer lock.Unlock()

	now := s.config.Clock.Now()

	mbr, err := s.memberRepo.DeactivateMember(ctx, &memberRepo.DeactivateMemberInput{
		GuildID:       input.GuildID,
		UserID:        input.UserID,
		DeactivatedAt: now,
	})
	if err != nil {
		if errors.Is(err, memberRepo.ErrMemberNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}

	output := &RemoveMemberOutput{
		Member: mbr,
	}

	sess, err := s.sessionRepo.GetOpenSession(ctx, &sessionRepo.GetOpenSessionInput{
		GuildID: input.GuildID,
		UserID:  input.UserID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return output, nil
		}
		return nil, err
	}

	closed, err := s.sessionRepo.CloseSession(ctx, &sessionRepo.CloseSessionInput{
		SessionID:  sess.ID,
		EndTime:    now,
		Status:     models.SessionStatusClosedManual,
		EndSummary: "member removed",
	})
	if err != nil {
		return nil, err
	}

	output.ClosedSession = closed
	return output, nil
}

// ListMembers returns the members registered in a guild
func (s *service) ListMembers(ctx context.Context, input *ListMembersInput) (*ListMembersOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	members, err := s.memberRepo.ListMembers(ctx, &memberRepo.ListMembersInput{
		GuildID:    input.GuildID,
		ActiveOnly: input.ActiveOnly,
	})
	if err != nil {
		return nil, err
	}

	return &ListMembersOutput{
		Members: members,
	}, nil
}

// CreateProject creates a project sessions can be tagged with
func (s *service) CreateProject(ctx context.Context, input *CreateProjectInput) (*CreateProjectOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	_, err := s.guildRepo.GetGuildConfig(ctx, &guildRepo.GetGuildConfigInput{
		GuildID: input.GuildID,
	})
	if err != nil {
		if errors.Is(err, guildRepo.ErrGuildNotFound) {
			return nil, ErrGuildNotSetUp
		}
		return nil, err
	}

	proj, err := s.projectRepo.CreateProject(ctx, &projectRepo.CreateProjectInput{
		GuildID:             input.GuildID,
		Name:                input.Name,
		Description:         input.Description,
		CreatedBy:           input.CreatedBy,
		CreatedAt:           s.config.Clock.Now(),
		CheckInterval:       input.CheckInterval,
		ResponseTimeout:     input.ResponseTimeout,
		RequireConfirmation: input.RequireConfirmation,
	})
	if err != nil {
		return nil, err
	}

	return &CreateProjectOutput{
		Project: proj,
	}, nil
}

// ArchiveProject marks a project as no longer accepting sessions
func (s *service) ArchiveProject(ctx context.Context, input *ArchiveProjectInput) (*ArchiveProjectOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	proj, err := s.getGuildProject(ctx, input.GuildID, input.ProjectID)
	if err != nil {
		return nil, err
	}

	if !proj.Archived {
		proj.Archived = true
		err = s.projectRepo.SaveProject(ctx, &projectRepo.SaveProjectInput{
			Project: proj,
		})
		if err != nil {
			return nil, err
		}
	}

	return &ArchiveProjectOutput{
		Project: proj,
	}, nil
}

// SetProjectMembers restricts a project to a set of members
func (s *service) SetProjectMembers(ctx context.Context, input *SetProjectMembersInput) (*SetProjectMembersOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	proj, err := s.getGuildProject(ctx, input.GuildID, input.ProjectID)
	if err != nil {
		return nil, err
	}

	proj.MemberIDs = input.MemberIDs
	if proj.MemberIDs == nil {
		proj.MemberIDs = []string{}
	}

	err = s.projectRepo.SaveProject(ctx, &projectRepo.SaveProjectInput{
		Project: proj,
	})
	if err != nil {
		return nil, err
	}

	return &SetProjectMembersOutput{
		Project: proj,
	}, nil
}

// ListProjects returns the projects in a guild
func (s *service) ListProjects(ctx context.Context, input *ListProjectsInput) (*ListProjectsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	projects, err := s.projectRepo.ListProjects(ctx, &projectRepo.ListProjectsInput{
		GuildID:         input.GuildID,
		IncludeArchived: input.IncludeArchived,
	})
	if err != nil {
		return nil, err
	}

	return &ListProjectsOutput{
		Projects: projects,
	}, nil
}

// ClockIn opens a new work session for a member
func (s *service) ClockIn(ctx context.Context, input *ClockInInput) (*ClockInOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	lock := s.userLock(input.GuildID, input.UserID)
	lock.Lock()
	defer lock.Unlock()

	cfg, err := s.guildRepo.GetGuildConfig(ctx, &guildRepo.GetGuildConfigInput{
		GuildID: input.GuildID,
	})
	if err != nil {
		if errors.Is(err, guildRepo.ErrGuildNotFound) {
			return nil, ErrGuildNotSetUp
		}
		return nil, err
	}

	mbr, err := s.memberRepo.GetMember(ctx, &memberRepo.GetMemberInput{
		GuildID: input.GuildID,
		UserID:  input.UserID,
	})
	if err != nil {
		if errors.Is(err, memberRepo.ErrMemberNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	if !mbr.Active {
		return nil, ErrMemberInactive
	}

	// Liveness settings come from the guild, overridden per project.
	// They are snapshotted onto the session so later settings changes
	// never affect running sessions.
	checkInterval := cfg.CheckInterval
	responseTimeout := cfg.ResponseTimeout
	requireConfirmation := true
	projectName := ""

	if input.ProjectID != "" {
		proj, err := s.getGuildProject(ctx, input.GuildID, input.ProjectID)
		if err != nil {
			return nil, err
		}
		if proj.Archived {
			return nil, ErrProjectArchived
		}
		if !proj.AllowsMember(input.UserID) {
			return nil, ErrNotProjectMember
		}

		projectName = proj.Name
		requireConfirmation = proj.RequireConfirmation
		if proj.CheckInterval > 0 {
			checkInterval = proj.CheckInterval
		}
		if proj.ResponseTimeout > 0 {
			responseTimeout = proj.ResponseTimeout
		}
	}

	now := s.config.Clock.Now()

	sess := &models.Session{
		ID:                  s.config.UUIDGenerator.NewUUID(),
		GuildID:             input.GuildID,
		UserID:              input.UserID,
		ProjectID:           input.ProjectID,
		ProjectName:         projectName,
		Status:              models.SessionStatusOpen,
		StartTime:           now,
		LastConfirmedAt:     now,
		CheckInterval:       checkInterval,
		ResponseTimeout:     responseTimeout,
		RequireConfirmation: requireConfirmation,
	}

	err = s.sessionRepo.CreateSession(ctx, &sessionRepo.CreateSessionInput{
		Session: sess,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrActiveSessionExists) {
			return nil, ErrAlreadyClockedIn
		}
		return nil, err
	}

	return &ClockInOutput{
		Session: sess,
	}, nil
}

// ClockOut closes the member's open session
func (s *service) ClockOut(ctx context.Context, input *ClockOutInput) (*ClockOutOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	lock := s.userLock(input.GuildID, input.UserID)
	lock.Lock()
	defer lock.Unlock()

	sess, err := s.sessionRepo.GetOpenSession(ctx, &sessionRepo.GetOpenSessionInput{
		GuildID: input.GuildID,
		UserID:  input.UserID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrNotClockedIn
		}
		return nil, err
	}

	now := s.config.Clock.Now()

	closed, err := s.sessionRepo.CloseSession(ctx, &sessionRepo.CloseSessionInput{
		SessionID:  sess.ID,
		EndTime:    now,
		Status:     models.SessionStatusClosedManual,
		EndSummary: input.Summary,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionAlreadyClosed) {
			return nil, ErrNotClockedIn
		}
		return nil, err
	}

	return &ClockOutOutput{
		Session:  closed,
		Duration: closed.Duration(now),
	}, nil
}

// Confirm records a liveness confirmation for a session
func (s *service) Confirm(ctx context.Context, input *ConfirmInput) (*ConfirmOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	sess, err := s.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	lock := s.userLock(sess.GuildID, sess.UserID)
	lock.Lock()
	defer lock.Unlock()

	// Re-read under the lock; the session may have transitioned
	sess, err = s.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	now := s.config.Clock.Now()

	switch sess.Status {
	case models.SessionStatusAwaitingConfirmation:
		if now.After(sess.ConfirmDeadline) {
			return nil, ErrConfirmationExpired
		}
	case models.SessionStatusOpen:
		// An unprompted confirmation still counts as activity and
		// pushes the next prompt out
	default:
		return nil, ErrInvalidSessionState
	}

	updated, err := s.sessionRepo.UpdateConfirmation(ctx, &sessionRepo.UpdateConfirmationInput{
		SessionID:   sess.ID,
		ConfirmedAt: now,
	})
	if err != nil {
		return nil, err
	}

	return &ConfirmOutput{
		Session: updated,
	}, nil
}

// RequestConfirmation moves an open session into the awaiting state
func (s *service) RequestConfirmation(ctx context.Context, input *RequestConfirmationInput) (*RequestConfirmationOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	sess, err := s.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	lock := s.userLock(sess.GuildID, sess.UserID)
	lock.Lock()
	defer lock.Unlock()

	sess, err = s.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	if sess.Status != models.SessionStatusOpen || !sess.RequireConfirmation {
		return nil, ErrInvalidSessionState
	}

	now := s.config.Clock.Now()
	deadline := now.Add(sess.ResponseTimeout)

	updated, err := s.sessionRepo.MarkAwaitingConfirmation(ctx, &sessionRepo.MarkAwaitingConfirmationInput{
		SessionID:  sess.ID,
		PromptedAt: now,
		Deadline:   deadline,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrInvalidSessionState) {
			return nil, ErrInvalidSessionState
		}
		return nil, err
	}

	return &RequestConfirmationOutput{
		Session:  updated,
		Deadline: deadline,
	}, nil
}

// Timeout auto-closes a session whose confirmation deadline passed. The
// end time is the deadline itself, not when the sweep noticed it, so a
// slow sweep never inflates the recorded hours.
func (s *service) Timeout(ctx context.Context, input *TimeoutInput) (*TimeoutOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	sess, err := s.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	lock := s.userLock(sess.GuildID, sess.UserID)
	lock.Lock()
	defer lock.Unlock()

	sess, err = s.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	if sess.Status != models.SessionStatusAwaitingConfirmation {
		return nil, ErrInvalidSessionState
	}

	if s.config.Clock.Now().Before(sess.ConfirmDeadline) {
		return nil, ErrInvalidSessionState
	}

	closed, err := s.sessionRepo.CloseSession(ctx, &sessionRepo.CloseSessionInput{
		SessionID:  sess.ID,
		EndTime:    sess.ConfirmDeadline,
		Status:     models.SessionStatusClosedAuto,
		EndSummary: autoCloseSummary,
	})
	if err != nil {
		return nil, err
	}

	return &TimeoutOutput{
		Session: closed,
	}, nil
}

// GetSession returns a session by ID without changing it
func (s *service) GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	sess, err := s.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	return &GetSessionOutput{
		Session: sess,
	}, nil
}

// GetOpenSession returns the member's current open session
func (s *service) GetOpenSession(ctx context.Context, input *GetOpenSessionInput) (*GetOpenSessionOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	sess, err := s.sessionRepo.GetOpenSession(ctx, &sessionRepo.GetOpenSessionInput{
		GuildID: input.GuildID,
		UserID:  input.UserID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrNotClockedIn
		}
		return nil, err
	}

	return &GetOpenSessionOutput{
		Session: sess,
		Elapsed: sess.Duration(s.config.Clock.Now()),
	}, nil
}

// ListDueSessions returns the sessions a liveness sweep should act on
func (s *service) ListDueSessions(ctx context.Context, input *ListDueSessionsInput) (*ListDueSessionsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	now := s.config.Clock.Now()

	needingPrompt, err := s.sessionRepo.ListSessionsNeedingPing(ctx, &sessionRepo.ListSessionsNeedingPingInput{
		GuildID: input.GuildID,
		AsOf:    now,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions needing ping: %w", err)
	}

	expired, err := s.sessionRepo.ListExpiredConfirmations(ctx, &sessionRepo.ListExpiredConfirmationsInput{
		GuildID: input.GuildID,
		AsOf:    now,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list expired confirmations: %w", err)
	}

	return &ListDueSessionsOutput{
		NeedingPrompt: needingPrompt,
		Expired:       expired,
	}, nil
}

// ListGuilds returns the IDs of all configured guilds
func (s *service) ListGuilds(ctx context.Context) (*ListGuildsOutput, error) {
	guildIDs, err := s.guildRepo.ListGuildIDs(ctx)
	if err != nil {
		return nil, err
	}

	return &ListGuildsOutput{
		GuildIDs: guildIDs,
	}, nil
}

// getSession loads a session, mapping the repo's not-found error
func (s *service) getSession(ctx context.Context, sessionID string) (*models.Session, error) {
	sess, err := s.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{
		SessionID: sessionID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return sess, nil
}

// getGuildProject loads a project and verifies it belongs to the guild
func (s *service) getGuildProject(ctx context.Context, guildID, projectID string) (*models.Project, error) {
	proj, err := s.projectRepo.GetProject(ctx, &projectRepo.GetProjectInput{
		ProjectID: projectID,
	})
	if err != nil {
		if errors.Is(err, projectRepo.ErrProjectNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}

	// Projects from another guild are invisible, not forbidden
	if proj.GuildID != guildID {
		return nil, ErrProjectNotFound
	}

	return proj, nil
}

package attendance

import (
	"context"
	"testing"
	"time"

	clockMocks "github.com/KirkDiggler/clockin/internal/common/clock/mocks"
	uuidMocks "github.com/KirkDiggler/clockin/internal/common/uuid/mocks"
	"github.com/KirkDiggler/clockin/internal/models"
	guildRepo "github.com/KirkDiggler/clockin/internal/repositories/guild"
	guildMocks "github.com/KirkDiggler/clockin/internal/repositories/guild/mocks"
	memberRepo "github.com/KirkDiggler/clockin/internal/repositories/member"
	memberMocks "github.com/KirkDiggler/clockin/internal/repositories/member/mocks"
	projectRepo "github.com/KirkDiggler/clockin/internal/repositories/project"
	projectMocks "github.com/KirkDiggler/clockin/internal/repositories/project/mocks"
	sessionRepo "github.com/KirkDiggler/clockin/internal/repositories/session"
	sessionMocks "github.com/KirkDiggler/clockin/internal/repositories/session/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AttendanceServiceTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockSessionRepo *sessionMocks.MockRepository
	mockMemberRepo  *memberMocks.MockRepository
	mockProjectRepo *projectMocks.MockRepository
	mockGuildRepo   *guildMocks.MockRepository
	mockClock       *clockMocks.MockClock
	mockUUID        *uuidMocks.MockUUID
	service         Service
	ctx             context.Context

	// now is what the mocked clock returns; tests advance it to move
	// through a session's lifecycle
	now time.Time

	// Test data
	testGuildID   string
	testUserID    string
	testSessionID string
	testProjectID string

	// Reusable test fixtures
	testGuildConfig *models.GuildConfig
	testMember      *models.Member
	testProject     *models.Project
	openSession     *models.Session
}

func (s *AttendanceServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockSessionRepo = sessionMocks.NewMockRepository(s.mockCtrl)
	s.mockMemberRepo = memberMocks.NewMockRepository(s.mockCtrl)
	s.mockProjectRepo = projectMocks.NewMockRepository(s.mockCtrl)
	s.mockGuildRepo = guildMocks.NewMockRepository(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)

	s.ctx = context.Background()

	s.now = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.mockClock.EXPECT().Now().DoAndReturn(func() time.Time {
		return s.now
	}).AnyTimes()

	s.testGuildID = "test-guild-id"
	s.testUserID = "test-user-id"
	s.testSessionID = "test-session-id"
	s.testProjectID = "test-project-id"

	s.testGuildConfig = &models.GuildConfig{
		GuildID:         s.testGuildID,
		CategoryID:      "test-category-id",
		CheckInterval:   30 * time.Minute,
		ResponseTimeout: time.Hour,
		CreatedAt:       s.now.Add(-24 * time.Hour),
	}

	s.testMember = &models.Member{
		GuildID:  s.testGuildID,
		UserID:   s.testUserID,
		UserName: "Test User",
		Active:   true,
		JoinedAt: s.now.Add(-24 * time.Hour),
	}

	s.testProject = &models.Project{
		ID:                  s.testProjectID,
		GuildID:             s.testGuildID,
		Name:                "Website Redesign",
		CheckInterval:       15 * time.Minute,
		ResponseTimeout:     20 * time.Minute,
		RequireConfirmation: true,
		MemberIDs:           []string{},
		CreatedAt:           s.now.Add(-12 * time.Hour),
	}

	s.openSession = &models.Session{
		ID:                  s.testSessionID,
		GuildID:             s.testGuildID,
		UserID:              s.testUserID,
		Status:              models.SessionStatusOpen,
		StartTime:           s.now.Add(-time.Hour),
		LastConfirmedAt:     s.now.Add(-time.Hour),
		CheckInterval:       30 * time.Minute,
		ResponseTimeout:     time.Hour,
		RequireConfirmation: true,
	}

	svc, err := NewService(&Config{
		SessionRepo:   s.mockSessionRepo,
		MemberRepo:    s.mockMemberRepo,
		ProjectRepo:   s.mockProjectRepo,
		GuildRepo:     s.mockGuildRepo,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *AttendanceServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAttendanceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AttendanceServiceTestSuite))
}

func (s *AttendanceServiceTestSuite) expectGuildConfig() {
	s.mockGuildRepo.EXPECT().GetGuildConfig(s.ctx, &guildRepo.GetGuildConfigInput{
		GuildID: s.testGuildID,
	}).Return(s.testGuildConfig, nil)
}

func (s *AttendanceServiceTestSuite) expectMember() {
	s.mockMemberRepo.EXPECT().GetMember(s.ctx, &memberRepo.GetMemberInput{
		GuildID: s.testGuildID,
		UserID:  s.testUserID,
	}).Return(s.testMember, nil)
}

func (s *AttendanceServiceTestSuite) TestNewServiceValidatesConfig() {
	_, err := NewService(nil)
	s.Equal(ErrNilConfig, err)

	_, err = NewService(&Config{})
	s.Equal(ErrNilSessionRepo, err)

	_, err = NewService(&Config{
		SessionRepo: s.mockSessionRepo,
		MemberRepo:  s.mockMemberRepo,
		ProjectRepo: s.mockProjectRepo,
		GuildRepo:   s.mockGuildRepo,
		Clock:       s.mockClock,
	})
	s.Equal(ErrNilUUIDGenerator, err)
}

func (s *AttendanceServiceTestSuite) TestClockIn() {
	s.expectGuildConfig()
	s.expectMember()
	s.mockUUID.EXPECT().NewUUID().Return(s.testSessionID)

	var created *models.Session
	s.mockSessionRepo.EXPECT().CreateSession(s.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, input *sessionRepo.CreateSessionInput) error {
			created = input.Session
			return nil
		})

	output, err := s.service.ClockIn(s.ctx, &ClockInInput{
		GuildID: s.testGuildID,
		UserID:  s.testUserID,
	})
	s.Require().NoError(err)

	s.Equal(s.testSessionID, output.Session.ID)
	s.Equal(models.SessionStatusOpen, created.Status)
	s.Equal(s.now, created.StartTime)
	s.Equal(s.now, created.LastConfirmedAt)
	s.Equal(30*time.Minute, created.CheckInterval)
	s.Equal(time.Hour, created.ResponseTimeout)
	s.True(created.RequireConfirmation)
	s.Empty(created.ProjectID)
}

func (s *AttendanceServiceTestSuite) TestClockInWithProjectOverrides() {
	s.expectGuildConfig()
	s.expectMember()
	s.mockProjectRepo.EXPECT().GetProject(s.ctx, &projectRepo.GetProjectInput{
		ProjectID: s.testProjectID,
	}).Return(s.testProject, nil)
	s.mockUUID.EXPECT().NewUUID().Return(s.testSessionID)

	var created *models.Session
	s.mockSessionRepo.EXPECT().CreateSession(s.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, input *sessionRepo.CreateSessionInput) error {
			created = input.Session
			return nil
		})

	_, err := s.service.ClockIn(s.ctx, &ClockInInput{
		GuildID:   s.testGuildID,
		UserID:    s.testUserID,
		ProjectID: s.testProjectID,
	})
	s.Require().NoError(err)

	s.Equal(s.testProjectID, created.ProjectID)
	s.Equal("Website Redesign", created.ProjectName)
	s.Equal(15*time.Minute, created.CheckInterval)
	s.Equal(20*time.Minute, created.ResponseTimeout)
}

func (s *AttendanceServiceTestSuite) TestClockInGuildNotSetUp() {
	s.mockGuildRepo.EXPECT().GetGuildConfig(s.ctx, gomock.Any()).
		Return(nil, guildRepo.ErrGuildNotFound)

	_, err := s.service.ClockIn(s.ctx, &ClockInInput{
		GuildID: s.testGuildID,
		UserID:  s.testUserID,
	})
	s.Equal(ErrGuildNotSetUp, err)
}

func (s *AttendanceServiceTestSuite) TestClockInMemberNotFound() {
	s.expectGuildConfig()
	s.mockMemberRepo.EXPECT().GetMember(s.ctx, gomock.Any()).
		Return(nil, memberRepo.ErrMemberNotFound)

	_, err := s.service.ClockIn(s.ctx, &ClockInInput{
		GuildID: s.testGuildID,
		UserID:  s.testUserID,
	})
	s.Equal(ErrMemberNotFound, err)
}

func (s *AttendanceServiceTestSuite) TestClockInMemberInactive() {
	s.testMember.Active = false
	s.expectGuildConfig()
	s.expectMember()

	_, err := s.service.ClockIn(s.ctx, &ClockInInput{
		GuildID: s.testGuildID,
		UserID:  s.testUserID,
	})
	s.Equal(ErrMemberInactive, err)
}

func (s *AttendanceServiceTestSuite) TestClockInProjectArchived() {
	s.testProject.Archived = true
	s.expectGuildConfig()
	s.expectMember()
	s.mockProjectRepo.EXPECT().GetProject(s.ctx, gomock.Any()).Return(s.testProject, nil)

	_, err := s.service.ClockIn(s.ctx, &ClockInInput{
		GuildID:   s.testGuildID,
		UserID:    s.testUserID,
		ProjectID: s.testProjectID,
	})
	s.Equal(ErrProjectArchived, err)
}

func (s *AttendanceServiceTestSuite) TestClockInNotProjectMember() {
	s.testProject.MemberIDs = []string{"someone-else"}
	s.expectGuildConfig()
	s.expectMember()
	s.mockProjectRepo.EXPECT().GetProject(s.ctx, gomock.Any()).Return(s.testProject, nil)

	_, err := s.service.ClockIn(s.ctx, &ClockInInput{
		GuildID:   s.testGuildID,
		UserID:    s.testUserID,
		ProjectID: s.testProjectID,
	})
	s.Equal(ErrNotProjectMember, err)
}

func (s *AttendanceServiceTestSuite) TestClockInProjectFromOtherGuild() {
	s.testProject.GuildID = "other-guild-id"
	s.expectGuildConfig()
	s.expectMember()
	s.mockProjectRepo.EXPECT().GetProject(s.ctx, gomock.Any()).Return(s.testProject, nil)

	_, err := s.service.ClockIn(s.ctx, &ClockInInput{
		GuildID:   s.testGuildID,
		UserID:    s.testUserID,
		ProjectID: s.testProjectID,
	})
	s.Equal(ErrProjectNotFound, err)
}

func (s *AttendanceServiceTestSuite) TestClockInAlreadyClockedIn() {
	s.expectGuildConfig()
	s.expectMember()
	s.mockUUID.EXPECT().NewUUID().Return(s.testSessionID)
	s.mockSessionRepo.EXPECT().CreateSession(s.ctx, gomock.Any()).
		Return(sessionRepo.ErrActiveSessionExists)

	_, err := s.service.ClockIn(s.ctx, &ClockInInput{
		GuildID: s.testGuildID,
		UserID:  s.testUserID,
	})
	s.Equal(ErrAlreadyClockedIn, err)
}

func (s *AttendanceServiceTestSuite) TestClockOut() {
	s.mockSessionRepo.EXPECT().GetOpenSession(s.ctx, &sessionRepo.GetOpenSessionInput{
		GuildID: s.testGuildID,
		UserID:  s.testUserID,
	}).Return(s.openSession, nil)

	closedSession := *s.openSession
	closedSession.Status = models.SessionStatusClosedManual
	closedSession.EndTime = s.now
	closedSession.EndSummary = "wrapped up the docs"

	s.mockSessionRepo.EXPECT().CloseSession(s.ctx, &sessionRepo.CloseSessionInput{
		SessionID:  s.testSessionID,
		EndTime:    s.now,
		Status:     models.SessionStatusClosedManual,
		EndSummary: "wrapped up the docs",
	}).Return(&closedSession, nil)

	output, err := s.service.ClockOut(s.ctx, &ClockOutInput{
		GuildID: s.testGuildID,
		UserID:  s.testUserID,
		Summary: "wrapped up the docs",
	})
	s.Require().NoError(err)
	s.Equal(models.SessionStatusClosedManual, output.Session.Status)
	s.Equal(time.Hour, output.Duration)
}

func (s *AttendanceServiceTestSuite) TestClockOutNotClockedIn() {
	s.mockSessionRepo.EXPECT().GetOpenSession(s.ctx, gomock.Any()).
		Return(nil, sessionRepo.ErrSessionNotFound)

	_, err := s.service.ClockOut(s.ctx, &ClockOutInput{
		GuildID: s.testGuildID,
		UserID:  s.testUserID,
	})
	s.Equal(ErrNotClockedIn, err)
}

func (s *AttendanceServiceTestSuite) TestConfirmWhileAwaiting() {
	awaiting := *s.openSession
	awaiting.Status = models.SessionStatusAwaitingConfirmation
	awaiting.PromptedAt = s.now.Add(-5 * time.Minute)
	awaiting.ConfirmDeadline = s.now.Add(55 * time.Minute)

	s.mockSessionRepo.EXPECT().GetSession(s.ctx, &sessionRepo.GetSessionInput{
		SessionID: s.testSessionID,
	}).Return(&awaiting, nil).Times(2)

	confirmed := *s.openSession
	confirmed.LastConfirmedAt = s.now
	s.mockSessionRepo.EXPECT().UpdateConfirmation(s.ctx, &sessionRepo.UpdateConfirmationInput{
		SessionID:   s.testSessionID,
		ConfirmedAt: s.now,
	}).Return(&confirmed, nil)

	output, err := s.service.Confirm(s.ctx, &ConfirmInput{SessionID: s.testSessionID})
	s.Require().NoError(err)
	s.Equal(models.SessionStatusOpen, output.Session.Status)
	s.Equal(s.now, output.Session.LastConfirmedAt)
}

func (s *AttendanceServiceTestSuite) TestConfirmAfterDeadline() {
	awaiting := *s.openSession
	awaiting.Status = models.SessionStatusAwaitingConfirmation
	awaiting.ConfirmDeadline = s.now.Add(-time.Minute)

	s.mockSessionRepo.EXPECT().GetSession(s.ctx, gomock.Any()).
		Return(&awaiting, nil).Times(2)

	_, err := s.service.Confirm(s.ctx, &ConfirmInput{SessionID: s.testSessionID})
	s.Equal(ErrConfirmationExpired, err)
}

func (s *AttendanceServiceTestSuite) TestConfirmClosedSession() {
	closed := *s.openSession
	closed.Status = models.SessionStatusClosedManual
	closed.EndTime = s.now.Add(-time.Minute)

	s.mockSessionRepo.EXPECT().GetSession(s.ctx, gomock.Any()).
		Return(&closed, nil).Times(2)

	_, err := s.service.Confirm(s.ctx, &ConfirmInput{SessionID: s.testSessionID})
	s.Equal(ErrInvalidSessionState, err)
}

func (s *AttendanceServiceTestSuite) TestConfirmUnprompted() {
	// Confirming without an outstanding prompt still counts as activity
	s.mockSessionRepo.EXPECT().GetSession(s.ctx, gomock.Any()).
		Return(s.openSession, nil).Times(2)

	confirmed := *s.openSession
	confirmed.LastConfirmedAt = s.now
	s.mockSessionRepo.EXPECT().UpdateConfirmation(s.ctx, gomock.Any()).
		Return(&confirmed, nil)

	output, err := s.service.Confirm(s.ctx, &ConfirmInput{SessionID: s.testSessionID})
	s.Require().NoError(err)
	s.Equal(s.now, output.Session.LastConfirmedAt)
}

func (s *AttendanceServiceTestSuite) TestGetSession() {
	// A read-only lookup never touches the confirmation state, even for
	// an awaiting session whose deadline has passed
	awaiting := *s.openSession
	awaiting.Status = models.SessionStatusAwaitingConfirmation
	awaiting.ConfirmDeadline = s.now.Add(-time.Minute)

	s.mockSessionRepo.EXPECT().GetSession(s.ctx, &sessionRepo.GetSessionInput{
		SessionID: s.testSessionID,
	}).Return(&awaiting, nil)

	output, err := s.service.GetSession(s.ctx, &GetSessionInput{SessionID: s.testSessionID})
	s.Require().NoError(err)
	s.Equal(&awaiting, output.Session)
	s.Equal(s.now.Add(-time.Hour), output.Session.LastConfirmedAt)
}

func (s *AttendanceServiceTestSuite) TestGetSessionNotFound() {
	s.mockSessionRepo.EXPECT().GetSession(s.ctx, gomock.Any()).
		Return(nil, sessionRepo.ErrSessionNotFound)

	_, err := s.service.GetSession(s.ctx, &GetSessionInput{SessionID: s.testSessionID})
	s.Equal(ErrSessionNotFound, err)
}

func (s *AttendanceServiceTestSuite) TestRequestConfirmation() {
	s.mockSessionRepo.EXPECT().GetSession(s.ctx, gomock.Any()).
		Return(s.openSession, nil).Times(2)

	awaiting := *s.openSession
	awaiting.Status = models.SessionStatusAwaitingConfirmation
	awaiting.PromptedAt = s.now
	awaiting.ConfirmDeadline = s.now.Add(time.Hour)

	s.mockSessionRepo.EXPECT().MarkAwaitingConfirmation(s.ctx, &sessionRepo.MarkAwaitingConfirmationInput{
		SessionID:  s.testSessionID,
		PromptedAt: s.now,
		Deadline:   s.now.Add(time.Hour),
	}).Return(&awaiting, nil)

	output, err := s.service.RequestConfirmation(s.ctx, &RequestConfirmationInput{
		SessionID: s.testSessionID,
	})
	s.Require().NoError(err)
	s.Equal(s.now.Add(time.Hour), output.Deadline)
	s.Equal(models.SessionStatusAwaitingConfirmation, output.Session.Status)
}

func (s *AttendanceServiceTestSuite) TestRequestConfirmationAlreadyAwaiting() {
	awaiting := *s.openSession
	awaiting.Status = models.SessionStatusAwaitingConfirmation

	s.mockSessionRepo.EXPECT().GetSession(s.ctx, gomock.Any()).
		Return(&awaiting, nil).Times(2)

	_, err := s.service.RequestConfirmation(s.ctx, &RequestConfirmationInput{
		SessionID: s.testSessionID,
	})
	s.Equal(ErrInvalidSessionState, err)
}

func (s *AttendanceServiceTestSuite) TestRequestConfirmationNotRequired() {
	noConfirm := *s.openSession
	noConfirm.RequireConfirmation = false

	s.mockSessionRepo.EXPECT().GetSession(s.ctx, gomock.Any()).
		Return(&noConfirm, nil).Times(2)

	_, err := s.service.RequestConfirmation(s.ctx, &RequestConfirmationInput{
		SessionID: s.testSessionID,
	})
	s.Equal(ErrInvalidSessionState, err)
}

func (s *AttendanceServiceTestSuite) TestTimeout() {
	deadline := s.now.Add(-10 * time.Minute)
	awaiting := *s.openSession
	awaiting.Status = models.SessionStatusAwaitingConfirmation
	awaiting.PromptedAt = deadline.Add(-time.Hour)
	awaiting.ConfirmDeadline = deadline

	s.mockSessionRepo.EXPECT().GetSession(s.ctx, gomock.Any()).
		Return(&awaiting, nil).Times(2)

	closed := awaiting
	closed.Status = models.SessionStatusClosedAuto
	closed.EndTime = deadline

	// End time is the deadline, not when the sweep ran
	s.mockSessionRepo.EXPECT().CloseSession(s.ctx, &sessionRepo.CloseSessionInput{
		SessionID:  s.testSessionID,
		EndTime:    deadline,
		Status:     models.SessionStatusClosedAuto,
		EndSummary: "auto-closed: no response",
	}).Return(&closed, nil)

	output, err := s.service.Timeout(s.ctx, &TimeoutInput{SessionID: s.testSessionID})
	s.Require().NoError(err)
	s.Equal(models.SessionStatusClosedAuto, output.Session.Status)
	s.Equal(deadline, output.Session.EndTime)
}

func (s *AttendanceServiceTestSuite) TestTimeoutBeforeDeadline() {
	awaiting := *s.openSession
	awaiting.Status = models.SessionStatusAwaitingConfirmation
	awaiting.ConfirmDeadline = s.now.Add(10 * time.Minute)

	s.mockSessionRepo.EXPECT().GetSession(s.ctx, gomock.Any()).
		Return(&awaiting, nil).Times(2)

	_, err := s.service.Timeout(s.ctx, &TimeoutInput{SessionID: s.testSessionID})
	s.Equal(ErrInvalidSessionState, err)
}

func (s *AttendanceServiceTestSuite) TestTimeoutOpenSession() {
	s.mockSessionRepo.EXPECT().GetSession(s.ctx, gomock.Any()).
		Return(s.openSession, nil).Times(2)

	_, err := s.service.Timeout(s.ctx, &TimeoutInput{SessionID: s.testSessionID})
	s.Equal(ErrInvalidSessionState, err)
}

func (s *AttendanceServiceTestSuite) TestSetupGuildDefaults() {
	s.mockGuildRepo.EXPECT().GetGuildConfig(s.ctx, gomock.Any()).
		Return(nil, guildRepo.ErrGuildNotFound)

	var saved *models.GuildConfig
	s.mockGuildRepo.EXPECT().SaveGuildConfig(s.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, input *guildRepo.SaveGuildConfigInput) error {
			saved = input.Config
			return nil
		})

	output, err := s.service.SetupGuild(s.ctx, &SetupGuildInput{
		GuildID:    s.testGuildID,
		CategoryID: "test-category-id",
	})
	s.Require().NoError(err)
	s.Equal(30*time.Minute, saved.CheckInterval)
	s.Equal(time.Hour, saved.ResponseTimeout)
	s.Equal(s.now, output.Config.CreatedAt)
}

func (s *AttendanceServiceTestSuite) TestSetupGuildKeepsCreatedAt() {
	s.expectGuildConfig()
	s.mockGuildRepo.EXPECT().SaveGuildConfig(s.ctx, gomock.Any()).Return(nil)

	output, err := s.service.SetupGuild(s.ctx, &SetupGuildInput{
		GuildID:       s.testGuildID,
		CheckInterval: 10 * time.Minute,
	})
	s.Require().NoError(err)
	s.Equal(s.testGuildConfig.CreatedAt, output.Config.CreatedAt)
	s.Equal(10*time.Minute, output.Config.CheckInterval)
}

func (s *AttendanceServiceTestSuite) TestAddMemberReactivates() {
	s.expectGuildConfig()

	inactive := *s.testMember
	inactive.Active = false
	inactive.DeactivatedAt = s.now.Add(-time.Hour)
	s.mockMemberRepo.EXPECT().GetMember(s.ctx, gomock.Any()).Return(&inactive, nil)

	var saved *models.Member
	s.mockMemberRepo.EXPECT().SaveMember(s.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, input *memberRepo.SaveMemberInput) error {
			saved = input.Member
			return nil
		})

	output, err := s.service.AddMember(s.ctx, &AddMemberInput{
		GuildID:  s.testGuildID,
		UserID:   s.testUserID,
		UserName: "Test User",
	})
	s.Require().NoError(err)
	s.True(output.Reactivated)
	s.True(saved.Active)
	s.True(saved.DeactivatedAt.IsZero())
	s.Equal(s.testMember.JoinedAt, saved.JoinedAt)
}

func (s *AttendanceServiceTestSuite) TestRemoveMemberClosesSession() {
	deactivated := *s.testMember
	deactivated.Active = false
	deactivated.DeactivatedAt = s.now
	s.mockMemberRepo.EXPECT().DeactivateMember(s.ctx, &memberRepo.DeactivateMemberInput{
		GuildID:       s.testGuildID,
		UserID:        s.testUserID,
		DeactivatedAt: s.now,
	}).Return(&deactivated, nil)

	s.mockSessionRepo.EXPECT().GetOpenSession(s.ctx, gomock.Any()).
		Return(s.openSession, nil)

	closed := *s.openSession
	closed.Status = models.SessionStatusClosedManual
	closed.EndTime = s.now
	s.mockSessionRepo.EXPECT().CloseSession(s.ctx, &sessionRepo.CloseSessionInput{
		SessionID:  s.testSessionID,
		EndTime:    s.now,
		Status:     models.SessionStatusClosedManual,
		EndSummary: "member removed",
	}).Return(&closed, nil)

	output, err := s.service.RemoveMember(s.ctx, &RemoveMemberInput{
		GuildID: s.testGuildID,
		UserID:  s.testUserID,
	})
	s.Require().NoError(err)
	s.False(output.Member.Active)
	s.NotNil(output.ClosedSession)
}

func (s *AttendanceServiceTestSuite) TestRemoveMemberNotClockedIn() {
	deactivated := *s.testMember
	deactivated.Active = false
	s.mockMemberRepo.EXPECT().DeactivateMember(s.ctx, gomock.Any()).
		Return(&deactivated, nil)
	s.mockSessionRepo.EXPECT().GetOpenSession(s.ctx, gomock.Any()).
		Return(nil, sessionRepo.ErrSessionNotFound)

	output, err := s.service.RemoveMember(s.ctx, &RemoveMemberInput{
		GuildID: s.testGuildID,
		UserID:  s.testUserID,
	})
	s.Require().NoError(err)
	s.Nil(output.ClosedSession)
}

func (s *AttendanceServiceTestSuite) TestDeprovisionGuild() {
	other := *s.openSession
	other.ID = "other-session-id"
	other.UserID = "other-user-id"

	s.mockSessionRepo.EXPECT().ListOpenSessions(s.ctx, &sessionRepo.ListOpenSessionsInput{
		GuildID: s.testGuildID,
	}).Return([]*models.Session{s.openSession, &other}, nil)

	s.mockSessionRepo.EXPECT().CloseSession(s.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, input *sessionRepo.CloseSessionInput) (*models.Session, error) {
			s.Equal(models.SessionStatusClosedAuto, input.Status)
			s.Equal(s.now, input.EndTime)
			return s.openSession, nil
		}).Times(2)

	s.mockGuildRepo.EXPECT().DeleteGuildConfig(s.ctx, &guildRepo.DeleteGuildConfigInput{
		GuildID: s.testGuildID,
	}).Return(nil)

	output, err := s.service.DeprovisionGuild(s.ctx, &DeprovisionGuildInput{
		GuildID: s.testGuildID,
	})
	s.Require().NoError(err)
	s.Equal(2, output.ClosedSessions)
}

func (s *AttendanceServiceTestSuite) TestListDueSessions() {
	due := *s.openSession
	expired := *s.openSession
	expired.ID = "expired-session-id"
	expired.Status = models.SessionStatusAwaitingConfirmation

	s.mockSessionRepo.EXPECT().ListSessionsNeedingPing(s.ctx, &sessionRepo.ListSessionsNeedingPingInput{
		GuildID: s.testGuildID,
		AsOf:    s.now,
	}).Return([]*models.Session{&due}, nil)

	s.mockSessionRepo.EXPECT().ListExpiredConfirmations(s.ctx, &sessionRepo.ListExpiredConfirmationsInput{
		GuildID: s.testGuildID,
		AsOf:    s.now,
	}).Return([]*models.Session{&expired}, nil)

	output, err := s.service.ListDueSessions(s.ctx, &ListDueSessionsInput{
		GuildID: s.testGuildID,
	})
	s.Require().NoError(err)
	s.Len(output.NeedingPrompt, 1)
	s.Len(output.Expired, 1)
}

// TestSessionLifecycle walks one session through clock-in, a liveness
// prompt, a confirmation and a manual clock-out, advancing the mocked
// clock between steps.
func (s *AttendanceServiceTestSuite) TestSessionLifecycle() {
	start := s.now

	// Clock in at t=0
	s.expectGuildConfig()
	s.expectMember()
	s.mockUUID.EXPECT().NewUUID().Return(s.testSessionID)

	var stored *models.Session
	s.mockSessionRepo.EXPECT().CreateSession(s.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, input *sessionRepo.CreateSessionInput) error {
			stored = input.Session
			return nil
		})

	_, err := s.service.ClockIn(s.ctx, &ClockInInput{
		GuildID: s.testGuildID,
		UserID:  s.testUserID,
	})
	s.Require().NoError(err)

	// Prompt at t=10m, deadline t=1h10m
	s.now = start.Add(10 * time.Minute)
	s.mockSessionRepo.EXPECT().GetSession(s.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ *sessionRepo.GetSessionInput) (*models.Session, error) {
			copied := *stored
			return &copied, nil
		}).AnyTimes()
	s.mockSessionRepo.EXPECT().MarkAwaitingConfirmation(s.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, input *sessionRepo.MarkAwaitingConfirmationInput) (*models.Session, error) {
			stored.Status = models.SessionStatusAwaitingConfirmation
			stored.PromptedAt = input.PromptedAt
			stored.ConfirmDeadline = input.Deadline
			copied := *stored
			return &copied, nil
		})

	promptOutput, err := s.service.RequestConfirmation(s.ctx, &RequestConfirmationInput{
		SessionID: s.testSessionID,
	})
	s.Require().NoError(err)
	s.Equal(start.Add(70*time.Minute), promptOutput.Deadline)

	// Confirm at t=12m, back to open
	s.now = start.Add(12 * time.Minute)
	s.mockSessionRepo.EXPECT().UpdateConfirmation(s.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, input *sessionRepo.UpdateConfirmationInput) (*models.Session, error) {
			stored.Status = models.SessionStatusOpen
			stored.LastConfirmedAt = input.ConfirmedAt
			stored.PromptedAt = time.Time{}
			stored.ConfirmDeadline = time.Time{}
			copied := *stored
			return &copied, nil
		})

	confirmOutput, err := s.service.Confirm(s.ctx, &ConfirmInput{SessionID: s.testSessionID})
	s.Require().NoError(err)
	s.Equal(models.SessionStatusOpen, confirmOutput.Session.Status)
	s.Equal(start.Add(12*time.Minute), confirmOutput.Session.LastConfirmedAt)

	// Clock out at t=30m
	s.now = start.Add(30 * time.Minute)
	s.mockSessionRepo.EXPECT().GetOpenSession(s.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ *sessionRepo.GetOpenSessionInput) (*models.Session, error) {
			copied := *stored
			return &copied, nil
		})
	s.mockSessionRepo.EXPECT().CloseSession(s.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, input *sessionRepo.CloseSessionInput) (*models.Session, error) {
			stored.Status = input.Status
			stored.EndTime = input.EndTime
			stored.EndSummary = input.EndSummary
			copied := *stored
			return &copied, nil
		})

	outOutput, err := s.service.ClockOut(s.ctx, &ClockOutInput{
		GuildID: s.testGuildID,
		UserID:  s.testUserID,
	})
	s.Require().NoError(err)
	s.Equal(models.SessionStatusClosedManual, outOutput.Session.Status)
	s.Equal(30*time.Minute, outOutput.Duration)
}

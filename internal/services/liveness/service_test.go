package liveness_test

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/clockin/internal/models"
	"github.com/KirkDiggler/clockin/internal/services/attendance"
	attendanceMocks "github.com/KirkDiggler/clockin/internal/services/attendance/mocks"
	. "github.com/KirkDiggler/clockin/internal/services/liveness"
	notifierMocks "github.com/KirkDiggler/clockin/internal/services/liveness/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type LivenessServiceTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockAttendance *attendanceMocks.MockService
	mockNotifier   *notifierMocks.MockNotifier
	service        *Service
	ctx            context.Context

	testNow     time.Time
	testGuildID string
	openSession *models.Session
	awaiting    *models.Session
}

func (s *LivenessServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockAttendance = attendanceMocks.NewMockService(s.mockCtrl)
	s.mockNotifier = notifierMocks.NewMockNotifier(s.mockCtrl)
	s.ctx = context.Background()

	s.testNow = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.testGuildID = "test-guild-id"

	s.openSession = &models.Session{
		ID:                  "due-session-id",
		GuildID:             s.testGuildID,
		UserID:              "due-user-id",
		Status:              models.SessionStatusOpen,
		StartTime:           s.testNow.Add(-time.Hour),
		LastConfirmedAt:     s.testNow.Add(-time.Hour),
		CheckInterval:       30 * time.Minute,
		ResponseTimeout:     time.Hour,
		RequireConfirmation: true,
	}

	s.awaiting = &models.Session{
		ID:                  "expired-session-id",
		GuildID:             s.testGuildID,
		UserID:              "expired-user-id",
		Status:              models.SessionStatusAwaitingConfirmation,
		StartTime:           s.testNow.Add(-3 * time.Hour),
		PromptedAt:          s.testNow.Add(-90 * time.Minute),
		ConfirmDeadline:     s.testNow.Add(-30 * time.Minute),
		CheckInterval:       30 * time.Minute,
		ResponseTimeout:     time.Hour,
		RequireConfirmation: true,
	}

	svc, err := New(&Config{
		Attendance: s.mockAttendance,
		Notifier:   s.mockNotifier,
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *LivenessServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestLivenessServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LivenessServiceTestSuite))
}

func (s *LivenessServiceTestSuite) expectGuilds(guildIDs ...string) {
	s.mockAttendance.EXPECT().ListGuilds(s.ctx).Return(&attendance.ListGuildsOutput{
		GuildIDs: guildIDs,
	}, nil)
}

func (s *LivenessServiceTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.Equal(ErrNilConfig, err)

	_, err = New(&Config{Notifier: s.mockNotifier})
	s.Equal(ErrNilAttendance, err)

	_, err = New(&Config{Attendance: s.mockAttendance})
	s.Equal(ErrNilNotifier, err)
}

func (s *LivenessServiceTestSuite) TestTickPromptsDueSessions() {
	s.expectGuilds(s.testGuildID)
	s.mockAttendance.EXPECT().ListDueSessions(s.ctx, &attendance.ListDueSessionsInput{
		GuildID: s.testGuildID,
	}).Return(&attendance.ListDueSessionsOutput{
		NeedingPrompt: []*models.Session{s.openSession},
	}, nil)

	deadline := s.testNow.Add(time.Hour)
	prompted := *s.openSession
	prompted.Status = models.SessionStatusAwaitingConfirmation
	prompted.ConfirmDeadline = deadline

	s.mockAttendance.EXPECT().RequestConfirmation(s.ctx, &attendance.RequestConfirmationInput{
		SessionID: s.openSession.ID,
	}).Return(&attendance.RequestConfirmationOutput{
		Session:  &prompted,
		Deadline: deadline,
	}, nil)

	s.mockNotifier.EXPECT().Prompt(s.ctx, &PromptInput{
		Session:  &prompted,
		Deadline: deadline,
	}).Return(&PromptOutput{Delivered: true}, nil)

	s.Require().NoError(s.service.Tick(s.ctx))
}

func (s *LivenessServiceTestSuite) TestTickTimesOutExpiredSessions() {
	s.expectGuilds(s.testGuildID)
	s.mockAttendance.EXPECT().ListDueSessions(s.ctx, gomock.Any()).Return(&attendance.ListDueSessionsOutput{
		Expired: []*models.Session{s.awaiting},
	}, nil)

	closed := *s.awaiting
	closed.Status = models.SessionStatusClosedAuto
	closed.EndTime = s.awaiting.ConfirmDeadline
	closed.EndSummary = "auto-closed: no response"

	s.mockAttendance.EXPECT().Timeout(s.ctx, &attendance.TimeoutInput{
		SessionID: s.awaiting.ID,
	}).Return(&attendance.TimeoutOutput{Session: &closed}, nil)

	s.mockNotifier.EXPECT().NotifyAutoClose(s.ctx, &NotifyAutoCloseInput{
		Session: &closed,
	}).Return(nil)

	s.Require().NoError(s.service.Tick(s.ctx))
}

func (s *LivenessServiceTestSuite) TestTickSkipsConfirmedRaces() {
	// The user confirmed between the due-list read and the timeout
	s.expectGuilds(s.testGuildID)
	s.mockAttendance.EXPECT().ListDueSessions(s.ctx, gomock.Any()).Return(&attendance.ListDueSessionsOutput{
		Expired: []*models.Session{s.awaiting},
	}, nil)
	s.mockAttendance.EXPECT().Timeout(s.ctx, gomock.Any()).
		Return(nil, attendance.ErrInvalidSessionState)

	s.Require().NoError(s.service.Tick(s.ctx))
}

func (s *LivenessServiceTestSuite) TestTickUndeliveredPromptKeepsDeadline() {
	// Delivery failure is logged and the deadline stands; the sweep
	// does not roll the session back to open
	s.expectGuilds(s.testGuildID)
	s.mockAttendance.EXPECT().ListDueSessions(s.ctx, gomock.Any()).Return(&attendance.ListDueSessionsOutput{
		NeedingPrompt: []*models.Session{s.openSession},
	}, nil)

	deadline := s.testNow.Add(time.Hour)
	prompted := *s.openSession
	prompted.Status = models.SessionStatusAwaitingConfirmation
	s.mockAttendance.EXPECT().RequestConfirmation(s.ctx, gomock.Any()).
		Return(&attendance.RequestConfirmationOutput{Session: &prompted, Deadline: deadline}, nil)
	s.mockNotifier.EXPECT().Prompt(s.ctx, gomock.Any()).
		Return(&PromptOutput{Delivered: false}, nil)

	s.Require().NoError(s.service.Tick(s.ctx))
}

func (s *LivenessServiceTestSuite) TestTickIsolatesGuildFailures() {
	s.expectGuilds("broken-guild-id", s.testGuildID)

	s.mockAttendance.EXPECT().ListDueSessions(s.ctx, &attendance.ListDueSessionsInput{
		GuildID: "broken-guild-id",
	}).Return(nil, attendance.AttendanceError("redis unavailable"))

	// The healthy guild is still swept
	s.mockAttendance.EXPECT().ListDueSessions(s.ctx, &attendance.ListDueSessionsInput{
		GuildID: s.testGuildID,
	}).Return(&attendance.ListDueSessionsOutput{}, nil)

	err := s.service.Tick(s.ctx)
	s.Error(err)
}

func (s *LivenessServiceTestSuite) TestTickExpiredBeforePrompts() {
	// A guild with both lists handles expirations before new prompts
	s.expectGuilds(s.testGuildID)
	s.mockAttendance.EXPECT().ListDueSessions(s.ctx, gomock.Any()).Return(&attendance.ListDueSessionsOutput{
		NeedingPrompt: []*models.Session{s.openSession},
		Expired:       []*models.Session{s.awaiting},
	}, nil)

	closed := *s.awaiting
	closed.Status = models.SessionStatusClosedAuto

	timeoutCall := s.mockAttendance.EXPECT().Timeout(s.ctx, gomock.Any()).
		Return(&attendance.TimeoutOutput{Session: &closed}, nil)
	s.mockNotifier.EXPECT().NotifyAutoClose(s.ctx, gomock.Any()).Return(nil)

	deadline := s.testNow.Add(time.Hour)
	prompted := *s.openSession
	s.mockAttendance.EXPECT().RequestConfirmation(s.ctx, gomock.Any()).
		Return(&attendance.RequestConfirmationOutput{Session: &prompted, Deadline: deadline}, nil).
		After(timeoutCall)
	s.mockNotifier.EXPECT().Prompt(s.ctx, gomock.Any()).
		Return(&PromptOutput{Delivered: true}, nil)

	s.Require().NoError(s.service.Tick(s.ctx))
}

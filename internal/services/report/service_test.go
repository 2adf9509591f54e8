package report

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	clockMocks "github.com/KirkDiggler/clockin/internal/common/clock/mocks"
	"github.com/KirkDiggler/clockin/internal/models"
	sessionRepo "github.com/KirkDiggler/clockin/internal/repositories/session"
	sessionMocks "github.com/KirkDiggler/clockin/internal/repositories/session/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReportServiceTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockSessionRepo *sessionMocks.MockRepository
	mockClock       *clockMocks.MockClock
	service         Service
	ctx             context.Context

	testNow     time.Time
	testGuildID string
}

func (s *ReportServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockSessionRepo = sessionMocks.NewMockRepository(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.ctx = context.Background()

	s.testNow = time.Date(2025, 4, 19, 14, 0, 0, 0, time.UTC)
	s.mockClock.EXPECT().Now().Return(s.testNow).AnyTimes()

	s.testGuildID = "test-guild-id"

	svc, err := NewService(&Config{
		SessionRepo: s.mockSessionRepo,
		Clock:       s.mockClock,
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *ReportServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportServiceTestSuite))
}

// closedSession builds a closed session of the given length
func (s *ReportServiceTestSuite) closedSession(id, userID, projectID, projectName string, start time.Time, length time.Duration) *models.Session {
	return &models.Session{
		ID:          id,
		GuildID:     s.testGuildID,
		UserID:      userID,
		ProjectID:   projectID,
		ProjectName: projectName,
		Status:      models.SessionStatusClosedManual,
		StartTime:   start,
		EndTime:     start.Add(length),
	}
}

func (s *ReportServiceTestSuite) TestBuildReport() {
	dayStart := time.Date(2025, 4, 19, 0, 0, 0, 0, time.UTC)

	sessions := []*models.Session{
		s.closedSession("s1", "alice", "p1", "Website", dayStart.Add(8*time.Hour), 2*time.Hour),
		s.closedSession("s2", "bob", "p1", "Website", dayStart.Add(9*time.Hour), time.Hour),
		s.closedSession("s3", "alice", "", "", dayStart.Add(11*time.Hour), 30*time.Minute),
	}

	s.mockSessionRepo.EXPECT().QueryHistory(s.ctx, &sessionRepo.QueryHistoryInput{
		GuildID: s.testGuildID,
		From:    dayStart,
		To:      s.testNow,
	}).Return(sessions, nil)

	output, err := s.service.BuildReport(s.ctx, &BuildReportInput{
		GuildID: s.testGuildID,
		From:    dayStart,
		To:      s.testNow,
	})
	s.Require().NoError(err)

	report := output.Report
	s.Len(report.Entries, 3)
	s.Equal(3*time.Hour+30*time.Minute, report.Total)

	s.Require().Len(report.ProjectTotals, 2)
	s.Equal("Website", report.ProjectTotals[0].ProjectName)
	s.Equal(3*time.Hour, report.ProjectTotals[0].Total)
	s.Equal(2, report.ProjectTotals[0].Sessions)
	s.Equal("(no project)", report.ProjectTotals[1].ProjectName)

	s.Require().Len(report.UserTotals, 2)
	s.Equal("alice", report.UserTotals[0].UserID)
	s.Equal(2*time.Hour+30*time.Minute, report.UserTotals[0].Total)
}

func (s *ReportServiceTestSuite) TestBuildReportDayTotals() {
	day1 := time.Date(2025, 4, 18, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 4, 19, 0, 0, 0, 0, time.UTC)

	sessions := []*models.Session{
		s.closedSession("s1", "alice", "p1", "Website", day1.Add(9*time.Hour), 2*time.Hour),
		s.closedSession("s2", "bob", "p1", "Website", day1.Add(14*time.Hour), time.Hour),
		// Starts late on day 1 in UTC-5; attributed to day 2 by UTC date
		s.closedSession("s3", "alice", "", "",
			time.Date(2025, 4, 18, 20, 30, 0, 0, time.FixedZone("EST", -5*3600)), 30*time.Minute),
	}

	s.mockSessionRepo.EXPECT().QueryHistory(s.ctx, gomock.Any()).Return(sessions, nil)

	output, err := s.service.BuildReport(s.ctx, &BuildReportInput{
		GuildID: s.testGuildID,
		From:    day1,
		To:      s.testNow,
	})
	s.Require().NoError(err)

	report := output.Report
	s.Require().Len(report.DayTotals, 2)

	s.Equal(day1, report.DayTotals[0].Day)
	s.Equal(2, report.DayTotals[0].Sessions)
	s.Equal(3*time.Hour, report.DayTotals[0].Total)

	s.Equal(day2, report.DayTotals[1].Day)
	s.Equal(1, report.DayTotals[1].Sessions)
	s.Equal(30*time.Minute, report.DayTotals[1].Total)
}

func (s *ReportServiceTestSuite) TestBuildReportOpenSessionIsProvisional() {
	open := &models.Session{
		ID:        "s1",
		GuildID:   s.testGuildID,
		UserID:    "alice",
		Status:    models.SessionStatusOpen,
		StartTime: s.testNow.Add(-45 * time.Minute),
	}

	s.mockSessionRepo.EXPECT().QueryHistory(s.ctx, gomock.Any()).
		Return([]*models.Session{open}, nil)

	output, err := s.service.BuildReport(s.ctx, &BuildReportInput{
		GuildID: s.testGuildID,
	})
	s.Require().NoError(err)

	entry := output.Report.Entries[0]
	s.True(entry.Provisional)
	s.Equal(45*time.Minute, entry.Duration)
}

func (s *ReportServiceTestSuite) TestToday() {
	dayStart := time.Date(2025, 4, 19, 0, 0, 0, 0, time.UTC)

	s.mockSessionRepo.EXPECT().QueryHistory(s.ctx, &sessionRepo.QueryHistoryInput{
		GuildID: s.testGuildID,
		UserID:  "alice",
		From:    dayStart,
		To:      s.testNow,
	}).Return([]*models.Session{}, nil)

	output, err := s.service.Today(s.ctx, &TodayInput{
		GuildID: s.testGuildID,
		UserID:  "alice",
	})
	s.Require().NoError(err)
	s.Equal(dayStart, output.Report.From)
}

func (s *ReportServiceTestSuite) TestWriteCSV() {
	start := time.Date(2025, 4, 19, 9, 0, 0, 0, time.UTC)

	auto := s.closedSession("s2", "bob", "", "", start.Add(3*time.Hour), 90*time.Minute)
	auto.Status = models.SessionStatusClosedAuto
	auto.EndSummary = "auto-closed: no response"

	sessions := []*models.Session{
		s.closedSession("s1", "alice", "p1", "Website", start, 2*time.Hour),
		auto,
	}

	s.mockSessionRepo.EXPECT().QueryHistory(s.ctx, gomock.Any()).Return(sessions, nil)

	output, err := s.service.BuildReport(s.ctx, &BuildReportInput{GuildID: s.testGuildID})
	s.Require().NoError(err)

	var buf bytes.Buffer
	s.Require().NoError(s.service.WriteCSV(&buf, output.Report))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	s.Require().Len(lines, 3)
	s.Equal("user_id,project,start,end,duration,status,summary", lines[0])
	s.Equal("alice,Website,2025-04-19T09:00:00Z,2025-04-19T11:00:00Z,2h 00m 00s,closed_manual,", lines[1])
	s.Equal("bob,(no project),2025-04-19T12:00:00Z,2025-04-19T13:30:00Z,1h 30m 00s,closed_auto,auto-closed: no response", lines[2])
}

func (s *ReportServiceTestSuite) TestFormatDuration() {
	s.Equal("0h 00m 00s", FormatDuration(0))
	s.Equal("0h 05m 09s", FormatDuration(5*time.Minute+9*time.Second))
	s.Equal("26h 00m 30s", FormatDuration(26*time.Hour+30*time.Second))
}

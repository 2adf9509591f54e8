package project

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestCreateAndGetProject() {
	created, err := s.repo.CreateProject(context.Background(), &CreateProjectInput{
		GuildID:             "test-guild-id",
		Name:                "Test Project",
		Description:         "a project for testing",
		CreatedBy:           "test-user-id",
		CreatedAt:           s.testNow,
		CheckInterval:       30 * time.Minute,
		ResponseTimeout:     time.Hour,
		RequireConfirmation: true,
	})
	s.Require().NoError(err)
	s.Require().NotEmpty(created.ID)

	retrieved, err := s.repo.GetProject(context.Background(), &GetProjectInput{
		ProjectID: created.ID,
	})
	s.Require().NoError(err)
	s.Equal("Test Project", retrieved.Name)
	s.Equal("test-guild-id", retrieved.GuildID)
	s.Equal(30*time.Minute, retrieved.CheckInterval)
	s.Equal(time.Hour, retrieved.ResponseTimeout)
	s.True(retrieved.RequireConfirmation)
	s.False(retrieved.Archived)
	s.Empty(retrieved.MemberIDs)
}

func (s *RedisRepositoryTestSuite) TestGetProjectNotFound() {
	_, err := s.repo.GetProject(context.Background(), &GetProjectInput{
		ProjectID: "missing-project-id",
	})
	s.True(errors.Is(err, ErrProjectNotFound))
}

func (s *RedisRepositoryTestSuite) TestListProjects() {
	first, err := s.repo.CreateProject(context.Background(), &CreateProjectInput{
		GuildID:   "test-guild-id",
		Name:      "First Project",
		CreatedAt: s.testNow,
	})
	s.Require().NoError(err)

	second, err := s.repo.CreateProject(context.Background(), &CreateProjectInput{
		GuildID:   "test-guild-id",
		Name:      "Second Project",
		CreatedAt: s.testNow.Add(time.Hour),
	})
	s.Require().NoError(err)

	_, err = s.repo.CreateProject(context.Background(), &CreateProjectInput{
		GuildID:   "other-guild-id",
		Name:      "Other Guild Project",
		CreatedAt: s.testNow,
	})
	s.Require().NoError(err)

	projects, err := s.repo.ListProjects(context.Background(), &ListProjectsInput{
		GuildID: "test-guild-id",
	})
	s.Require().NoError(err)
	s.Require().Len(projects, 2)
	s.Equal(first.ID, projects[0].ID)
	s.Equal(second.ID, projects[1].ID)
}

func (s *RedisRepositoryTestSuite) TestListProjectsExcludesArchived() {
	p, err := s.repo.CreateProject(context.Background(), &CreateProjectInput{
		GuildID:   "test-guild-id",
		Name:      "Archived Project",
		CreatedAt: s.testNow,
	})
	s.Require().NoError(err)

	p.Archived = true
	s.Require().NoError(s.repo.SaveProject(context.Background(), &SaveProjectInput{Project: p}))

	visible, err := s.repo.ListProjects(context.Background(), &ListProjectsInput{
		GuildID: "test-guild-id",
	})
	s.Require().NoError(err)
	s.Len(visible, 0)

	all, err := s.repo.ListProjects(context.Background(), &ListProjectsInput{
		GuildID:         "test-guild-id",
		IncludeArchived: true,
	})
	s.Require().NoError(err)
	s.Len(all, 1)
}

func (s *RedisRepositoryTestSuite) TestSaveProjectMembers() {
	p, err := s.repo.CreateProject(context.Background(), &CreateProjectInput{
		GuildID:   "test-guild-id",
		Name:      "Restricted Project",
		CreatedAt: s.testNow,
	})
	s.Require().NoError(err)

	p.MemberIDs = append(p.MemberIDs, "member-user-id")
	s.Require().NoError(s.repo.SaveProject(context.Background(), &SaveProjectInput{Project: p}))

	retrieved, err := s.repo.GetProject(context.Background(), &GetProjectInput{ProjectID: p.ID})
	s.Require().NoError(err)
	s.Equal([]string{"member-user-id"}, retrieved.MemberIDs)
	s.True(retrieved.AllowsMember("member-user-id"))
	s.False(retrieved.AllowsMember("stranger-user-id"))
}

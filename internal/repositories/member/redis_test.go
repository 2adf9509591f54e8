package member

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KirkDiggler/clockin/internal/models"
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

func (s *RedisRepositoryTestSuite) TestSaveAndGetMember() {
	m := &models.Member{
		GuildID:  "test-guild-id",
		UserID:   "test-user-id",
		UserName: "Test User",
		Active:   true,
		JoinedAt: s.testNow,
	}

	err := s.repo.SaveMember(context.Background(), &SaveMemberInput{Member: m})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetMember(context.Background(), &GetMemberInput{
		GuildID: "test-guild-id",
		UserID:  "test-user-id",
	})
	s.Require().NoError(err)
	s.Equal("test-user-id", retrieved.UserID)
	s.Equal("Test User", retrieved.UserName)
	s.True(retrieved.Active)
	s.Equal(s.testNow.Unix(), retrieved.JoinedAt.Unix())
}

func (s *RedisRepositoryTestSuite) TestGetMemberNotFound() {
	_, err := s.repo.GetMember(context.Background(), &GetMemberInput{
		GuildID: "test-guild-id",
		UserID:  "missing-user-id",
	})
	s.True(errors.Is(err, ErrMemberNotFound))
}

func (s *RedisRepositoryTestSuite) TestListMembers() {
	active := &models.Member{
		GuildID:  "test-guild-id",
		UserID:   "active-user-id",
		UserName: "Active User",
		Active:   true,
		JoinedAt: s.testNow,
	}
	inactive := &models.Member{
		GuildID:       "test-guild-id",
		UserID:        "inactive-user-id",
		UserName:      "Inactive User",
		Active:        false,
		JoinedAt:      s.testNow,
		DeactivatedAt: s.testNow.Add(time.Hour),
	}
	otherGuild := &models.Member{
		GuildID:  "other-guild-id",
		UserID:   "other-user-id",
		UserName: "Other User",
		Active:   true,
		JoinedAt: s.testNow,
	}

	s.Require().NoError(s.repo.SaveMember(context.Background(), &SaveMemberInput{Member: active}))
	s.Require().NoError(s.repo.SaveMember(context.Background(), &SaveMemberInput{Member: inactive}))
	s.Require().NoError(s.repo.SaveMember(context.Background(), &SaveMemberInput{Member: otherGuild}))

	all, err := s.repo.ListMembers(context.Background(), &ListMembersInput{
		GuildID: "test-guild-id",
	})
	s.Require().NoError(err)
	s.Len(all, 2)

	activeOnly, err := s.repo.ListMembers(context.Background(), &ListMembersInput{
		GuildID:    "test-guild-id",
		ActiveOnly: true,
	})
	s.Require().NoError(err)
	s.Require().Len(activeOnly, 1)
	s.Equal("active-user-id", activeOnly[0].UserID)
}

func (s *RedisRepositoryTestSuite) TestDeactivateMember() {
	m := &models.Member{
		GuildID:  "test-guild-id",
		UserID:   "test-user-id",
		UserName: "Test User",
		Active:   true,
		JoinedAt: s.testNow,
	}
	s.Require().NoError(s.repo.SaveMember(context.Background(), &SaveMemberInput{Member: m}))

	deactivatedAt := s.testNow.Add(time.Hour)
	deactivated, err := s.repo.DeactivateMember(context.Background(), &DeactivateMemberInput{
		GuildID:       "test-guild-id",
		UserID:        "test-user-id",
		DeactivatedAt: deactivatedAt,
	})
	s.Require().NoError(err)
	s.False(deactivated.Active)
	s.Equal(deactivatedAt.Unix(), deactivated.DeactivatedAt.Unix())

	// Deactivating again is a no-op and keeps the original timestamp
	again, err := s.repo.DeactivateMember(context.Background(), &DeactivateMemberInput{
		GuildID:       "test-guild-id",
		UserID:        "test-user-id",
		DeactivatedAt: deactivatedAt.Add(time.Hour),
	})
	s.Require().NoError(err)
	s.False(again.Active)
	s.Equal(deactivatedAt.Unix(), again.DeactivatedAt.Unix())
}

package guild

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

func (s *RedisRepositoryTestSuite) TestSaveAndGetGuildConfig() {
	cfg := &models.GuildConfig{
		GuildID:         "test-guild-id",
		CategoryID:      "test-category-id",
		Locale:          "en",
		CheckInterval:   30 * time.Minute,
		ResponseTimeout: time.Hour,
		CreatedAt:       s.testNow,
	}

	err := s.repo.SaveGuildConfig(context.Background(), &SaveGuildConfigInput{Config: cfg})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetGuildConfig(context.Background(), &GetGuildConfigInput{
		GuildID: "test-guild-id",
	})
	s.Require().NoError(err)
	s.Equal("test-category-id", retrieved.CategoryID)
	s.Equal("en", retrieved.Locale)
	s.Equal(30*time.Minute, retrieved.CheckInterval)
	s.Equal(time.Hour, retrieved.ResponseTimeout)
}

func (s *RedisRepositoryTestSuite) TestGetGuildConfigNotFound() {
	_, err := s.repo.GetGuildConfig(context.Background(), &GetGuildConfigInput{
		GuildID: "missing-guild-id",
	})
	s.True(errors.Is(err, ErrGuildNotFound))
}

func (s *RedisRepositoryTestSuite) TestListGuildIDs() {
	for _, guildID := range []string{"guild-a", "guild-b"} {
		err := s.repo.SaveGuildConfig(context.Background(), &SaveGuildConfigInput{
			Config: &models.GuildConfig{
				GuildID:   guildID,
				CreatedAt: s.testNow,
			},
		})
		s.Require().NoError(err)
	}

	guildIDs, err := s.repo.ListGuildIDs(context.Background())
	s.Require().NoError(err)
	s.ElementsMatch([]string{"guild-a", "guild-b"}, guildIDs)
}

func (s *RedisRepositoryTestSuite) TestDeleteGuildConfig() {
	err := s.repo.SaveGuildConfig(context.Background(), &SaveGuildConfigInput{
		Config: &models.GuildConfig{
			GuildID:   "test-guild-id",
			CreatedAt: s.testNow,
		},
	})
	s.Require().NoError(err)

	err = s.repo.DeleteGuildConfig(context.Background(), &DeleteGuildConfigInput{
		GuildID: "test-guild-id",
	})
	s.Require().NoError(err)

	_, err = s.repo.GetGuildConfig(context.Background(), &GetGuildConfigInput{
		GuildID: "test-guild-id",
	})
	s.True(errors.Is(err, ErrGuildNotFound))

	guildIDs, err := s.repo.ListGuildIDs(context.Background())
	s.Require().NoError(err)
	s.Len(guildIDs, 0)
}

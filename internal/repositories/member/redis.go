package member

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/clockin/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	memberKeyFormat  = "guild:%s:member:%s"
	membersKeyFormat = "guild:%s:members"
)

// ErrMemberNotFound is returned when a member is not found
var ErrMemberNotFound = errors.New("member not found")

// Config holds configuration for the Redis member repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed member repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveMember persists a member to Redis
func (r *redisRepository) SaveMember(ctx context.Context, input *SaveMemberInput) error {
	if input == nil || input.Member == nil {
		return errors.New("input and member cannot be nil")
	}

	m := input.Member
	if m.GuildID == "" || m.UserID == "" {
		return errors.New("guild ID and user ID cannot be empty")
	}

	memberJSON, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal member: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, fmt.Sprintf(memberKeyFormat, m.GuildID, m.UserID), memberJSON, 0)
	pipe.SAdd(ctx, fmt.Sprintf(membersKeyFormat, m.GuildID), m.UserID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save member: %w", err)
	}

	return nil
}

// GetMember retrieves a member by guild and user ID from Redis
func (r *redisRepository) GetMember(ctx context.Context, input *GetMemberInput) (*models.Member, error) {
	if input == nil || input.GuildID == "" || input.UserID == "" {
		return nil, errors.New("input, guild ID and user ID cannot be empty")
	}

	memberJSON, err := r.client.Get(ctx, fmt.Sprintf(memberKeyFormat, input.GuildID, input.UserID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	var m models.Member
	if err := json.Unmarshal([]byte(memberJSON), &m); err != nil {
		return nil, fmt.Errorf("failed to unmarshal member: %w", err)
	}

	return &m, nil
}

// ListMembers retrieves all members in a guild from Redis
func (r *redisRepository) ListMembers(ctx context.Context, input *ListMembersInput) ([]*models.Member, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}

	userIDs, err := r.client.SMembers(ctx, fmt.Sprintf(membersKeyFormat, input.GuildID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get member IDs: %w", err)
	}

	if len(userIDs) == 0 {
		return []*models.Member{}, nil
	}

	pipe := r.client.Pipeline()
	cmds := make([]*redis.StringCmd, 0, len(userIDs))
	for _, userID := range userIDs {
		cmds = append(cmds, pipe.Get(ctx, fmt.Sprintf(memberKeyFormat, input.GuildID, userID)))
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get members: %w", err)
	}

	members := make([]*models.Member, 0, len(userIDs))
	for i, cmd := range cmds {
		memberJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to get member %s: %w", userIDs[i], err)
		}

		var m models.Member
		if err := json.Unmarshal([]byte(memberJSON), &m); err != nil {
			return nil, fmt.Errorf("failed to unmarshal member %s: %w", userIDs[i], err)
		}

		if input.ActiveOnly && !m.Active {
			continue
		}

		members = append(members, &m)
	}

	return members, nil
}

// DeactivateMember soft-deletes a member. Deactivating an already-inactive
// member is a no-op so retries are safe.
func (r *redisRepository) DeactivateMember(ctx context.Context, input *DeactivateMemberInput) (*models.Member, error) {
	if input == nil || input.GuildID == "" || input.UserID == "" {
		return nil, errors.New("input, guild ID and user ID cannot be empty")
	}

	m, err := r.GetMember(ctx, &GetMemberInput{
		GuildID: input.GuildID,
		UserID:  input.UserID,
	})
	if err != nil {
		return nil, err
	}

	if !m.Active {
		return m, nil
	}

	m.Active = false
	m.DeactivatedAt = input.DeactivatedAt

	if err := r.SaveMember(ctx, &SaveMemberInput{Member: m}); err != nil {
		return nil, err
	}

	return m, nil
}

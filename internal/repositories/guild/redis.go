package guild

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
	guildConfigKeyPrefix = "guildconfig:"
	guildsKey            = "guilds"
)

// ErrGuildNotFound is returned when a guild has no configuration
var ErrGuildNotFound = errors.New("guild not found")

// Config holds configuration for the Redis guild repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed guild repository
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

// SaveGuildConfig persists a guild's settings to Redis
func (r *redisRepository) SaveGuildConfig(ctx context.Context, input *SaveGuildConfigInput) error {
	if input == nil || input.Config == nil {
		return errors.New("input and config cannot be nil")
	}

	if input.Config.GuildID == "" {
		return errors.New("guild ID cannot be empty")
	}

	configJSON, err := json.Marshal(input.Config)
	if err != nil {
		return fmt.Errorf("failed to marshal guild config: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, guildConfigKeyPrefix+input.Config.GuildID, configJSON, 0)
	pipe.SAdd(ctx, guildsKey, input.Config.GuildID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save guild config: %w", err)
	}

	return nil
}

// GetGuildConfig retrieves a guild's settings from Redis
func (r *redisRepository) GetGuildConfig(ctx context.Context, input *GetGuildConfigInput) (*models.GuildConfig, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}

	configJSON, err := r.client.Get(ctx, guildConfigKeyPrefix+input.GuildID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrGuildNotFound
		}
		return nil, fmt.Errorf("failed to get guild config: %w", err)
	}

	var cfg models.GuildConfig
	if err := json.Unmarshal([]byte(configJSON), &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal guild config: %w", err)
	}

	return &cfg, nil
}

// ListGuildIDs retrieves the IDs of all configured guilds from Redis
func (r *redisRepository) ListGuildIDs(ctx context.Context) ([]string, error) {
	guildIDs, err := r.client.SMembers(ctx, guildsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get guild IDs: %w", err)
	}

	return guildIDs, nil
}

// DeleteGuildConfig removes a guild's settings from Redis
func (r *redisRepository) DeleteGuildConfig(ctx context.Context, input *DeleteGuildConfigInput) error {
	if input == nil || input.GuildID == "" {
		return errors.New("input and guild ID cannot be empty")
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, guildConfigKeyPrefix+input.GuildID)
	pipe.SRem(ctx, guildsKey, input.GuildID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete guild config: %w", err)
	}

	return nil
}

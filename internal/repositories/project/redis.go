package project

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/clockin/internal/models"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	projectKeyPrefix  = "project:"
	projectsKeyFormat = "guild:%s:projects"
)

// ErrProjectNotFound is returned when a project is not found
var ErrProjectNotFound = errors.New("project not found")

// Config holds configuration for the Redis project repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed project repository
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

// CreateProject creates a new project with a generated UUID
func (r *redisRepository) CreateProject(ctx context.Context, input *CreateProjectInput) (*models.Project, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.GuildID == "" {
		return nil, errors.New("guild ID cannot be empty")
	}

	if input.Name == "" {
		return nil, errors.New("project name cannot be empty")
	}

	p := &models.Project{
		ID:                  uuid.New().String(),
		GuildID:             input.GuildID,
		Name:                input.Name,
		Description:         input.Description,
		CheckInterval:       input.CheckInterval,
		ResponseTimeout:     input.ResponseTimeout,
		RequireConfirmation: input.RequireConfirmation,
		MemberIDs:           []string{},
		CreatedBy:           input.CreatedBy,
		CreatedAt:           input.CreatedAt,
	}

	if err := r.SaveProject(ctx, &SaveProjectInput{Project: p}); err != nil {
		return nil, fmt.Errorf("failed to save project: %w", err)
	}

	return p, nil
}

// SaveProject persists a project to Redis
func (r *redisRepository) SaveProject(ctx context.Context, input *SaveProjectInput) error {
	if input == nil || input.Project == nil {
		return errors.New("input and project cannot be nil")
	}

	p := input.Project
	if p.ID == "" || p.GuildID == "" {
		return errors.New("project ID and guild ID cannot be empty")
	}

	projectJSON, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal project: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, projectKeyPrefix+p.ID, projectJSON, 0)
	pipe.ZAdd(ctx, fmt.Sprintf(projectsKeyFormat, p.GuildID), redis.Z{
		Score:  float64(p.CreatedAt.Unix()),
		Member: p.ID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save project: %w", err)
	}

	return nil
}

// GetProject retrieves a project by ID from Redis
func (r *redisRepository) GetProject(ctx context.Context, input *GetProjectInput) (*models.Project, error) {
	if input == nil || input.ProjectID == "" {
		return nil, errors.New("input and project ID cannot be empty")
	}

	projectJSON, err := r.client.Get(ctx, projectKeyPrefix+input.ProjectID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	var p models.Project
	if err := json.Unmarshal([]byte(projectJSON), &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal project: %w", err)
	}

	return &p, nil
}

// ListProjects retrieves all projects in a guild from Redis
func (r *redisRepository) ListProjects(ctx context.Context, input *ListProjectsInput) ([]*models.Project, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}

	projectIDs, err := r.client.ZRange(ctx, fmt.Sprintf(projectsKeyFormat, input.GuildID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get project IDs: %w", err)
	}

	if len(projectIDs) == 0 {
		return []*models.Project{}, nil
	}

	pipe := r.client.Pipeline()
	cmds := make([]*redis.StringCmd, 0, len(projectIDs))
	for _, id := range projectIDs {
		cmds = append(cmds, pipe.Get(ctx, projectKeyPrefix+id))
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get projects: %w", err)
	}

	projects := make([]*models.Project, 0, len(projectIDs))
	for i, cmd := range cmds {
		projectJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to get project %s: %w", projectIDs[i], err)
		}

		var p models.Project
		if err := json.Unmarshal([]byte(projectJSON), &p); err != nil {
			return nil, fmt.Errorf("failed to unmarshal project %s: %w", projectIDs[i], err)
		}

		if !input.IncludeArchived && p.Archived {
			continue
		}

		projects = append(projects, &p)
	}

	return projects, nil
}

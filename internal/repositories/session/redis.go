package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/KirkDiggler/clockin/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis; every index is partitioned by guild so one
	// tenant's load never touches another tenant's keys
	sessionKeyPrefix     = "session:"
	activeKeyFormat      = "guild:%s:active:%s"        // open session guard per user
	openKeyFormat        = "guild:%s:open"             // zset of open sessions by start time
	pingDueKeyFormat     = "guild:%s:ping_due"         // zset of open sessions by next prompt due
	awaitingKeyFormat    = "guild:%s:awaiting"         // zset of awaiting sessions by deadline
	historyKeyFormat     = "guild:%s:history"          // zset of all sessions by start time
	userHistoryKeyFormat = "guild:%s:user:%s:history"  // per-user zset by start time
)

// Errors returned by the repository
var (
	// ErrSessionNotFound is returned when a session is not found
	ErrSessionNotFound = errors.New("session not found")

	// ErrActiveSessionExists is returned when a user already has an open session
	ErrActiveSessionExists = errors.New("an open session already exists for this user")

	// ErrSessionAlreadyClosed is returned when closing a session whose end is set
	ErrSessionAlreadyClosed = errors.New("session is already closed")

	// ErrInvalidSessionState is returned when a transition is attempted from
	// a state that does not allow it
	ErrInvalidSessionState = errors.New("session is not in a valid state for this transition")
)

// Config holds configuration for the Redis session repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed session repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

func sessionKey(sessionID string) string {
	return sessionKeyPrefix + sessionID
}

func activeKey(guildID, userID string) string {
	return fmt.Sprintf(activeKeyFormat, guildID, userID)
}

// CreateSession persists a new open session. The per-user active key is the
// single atomic guard: SetNX either claims the slot or fails, so two
// concurrent clock-ins can never both succeed.
func (r *redisRepository) CreateSession(ctx context.Context, input *CreateSessionInput) error {
	if input == nil || input.Session == nil {
		return errors.New("input and session cannot be nil")
	}

	s := input.Session
	if s.ID == "" || s.GuildID == "" || s.UserID == "" {
		return errors.New("session ID, guild ID and user ID cannot be empty")
	}

	if s.Status != models.SessionStatusOpen {
		return ErrInvalidSessionState
	}

	// Claim the active-session slot for this user
	ok, err := r.client.SetNX(ctx, activeKey(s.GuildID, s.UserID), s.ID, 0).Result()
	if err != nil {
		return fmt.Errorf("failed to claim active session slot: %w", err)
	}
	if !ok {
		return ErrActiveSessionExists
	}

	sessionJSON, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, sessionKey(s.ID), sessionJSON, 0)
	pipe.ZAdd(ctx, fmt.Sprintf(openKeyFormat, s.GuildID), redis.Z{
		Score:  float64(s.StartTime.Unix()),
		Member: s.ID,
	})
	pipe.ZAdd(ctx, fmt.Sprintf(historyKeyFormat, s.GuildID), redis.Z{
		Score:  float64(s.StartTime.Unix()),
		Member: s.ID,
	})
	pipe.ZAdd(ctx, fmt.Sprintf(userHistoryKeyFormat, s.GuildID, s.UserID), redis.Z{
		Score:  float64(s.StartTime.Unix()),
		Member: s.ID,
	})
	if s.RequireConfirmation {
		pipe.ZAdd(ctx, fmt.Sprintf(pingDueKeyFormat, s.GuildID), redis.Z{
			Score:  float64(s.LastConfirmedAt.Add(s.CheckInterval).Unix()),
			Member: s.ID,
		})
	}

	if _, err := pipe.Exec(ctx); err != nil {
		// Release the guard so the user is not stuck with a phantom session
		r.client.Del(ctx, activeKey(s.GuildID, s.UserID))
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

// GetSession retrieves a session by ID from Redis
func (r *redisRepository) GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	sessionJSON, err := r.client.Get(ctx, sessionKey(input.SessionID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var s models.Session
	if err := json.Unmarshal([]byte(sessionJSON), &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &s, nil
}

// GetOpenSession retrieves the open or awaiting session for a user
func (r *redisRepository) GetOpenSession(ctx context.Context, input *GetOpenSessionInput) (*models.Session, error) {
	if input == nil || input.GuildID == "" || input.UserID == "" {
		return nil, errors.New("input, guild ID and user ID cannot be empty")
	}

	sessionID, err := r.client.Get(ctx, activeKey(input.GuildID, input.UserID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get active session ID: %w", err)
	}

	s, err := r.GetSession(ctx, &GetSessionInput{SessionID: sessionID})
	if err != nil {
		return nil, err
	}

	if !s.IsOpen() {
		// Stale guard left behind by a partial failure; clean it up
		r.client.Del(ctx, activeKey(input.GuildID, input.UserID))
		return nil, ErrSessionNotFound
	}

	return s, nil
}

// CloseSession sets the end timestamp and final status. An already-closed
// session is reported as such and never overwritten, so scheduler retries
// cannot corrupt history.
//
// The transition methods below are get-then-set: the bot runs as a single
// process and the attendance service serializes writers per (guild, user),
// so only the clock-in guard needs a Redis-side SetNX. Running multiple
// bot instances against one Redis would need a WATCH or Lua check-and-set
// here first.
func (r *redisRepository) CloseSession(ctx context.Context, input *CloseSessionInput) (*models.Session, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	if input.Status != models.SessionStatusClosedManual && input.Status != models.SessionStatusClosedAuto {
		return nil, ErrInvalidSessionState
	}

	s, err := r.GetSession(ctx, &GetSessionInput{SessionID: input.SessionID})
	if err != nil {
		return nil, err
	}

	if !s.EndTime.IsZero() {
		return nil, ErrSessionAlreadyClosed
	}

	if input.EndTime.Before(s.StartTime) {
		return nil, ErrInvalidSessionState
	}

	s.EndTime = input.EndTime
	s.Status = input.Status
	if input.EndSummary != "" {
		s.EndSummary = input.EndSummary
	}

	sessionJSON, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal session: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, sessionKey(s.ID), sessionJSON, 0)
	pipe.Del(ctx, activeKey(s.GuildID, s.UserID))
	pipe.ZRem(ctx, fmt.Sprintf(openKeyFormat, s.GuildID), s.ID)
	pipe.ZRem(ctx, fmt.Sprintf(pingDueKeyFormat, s.GuildID), s.ID)
	pipe.ZRem(ctx, fmt.Sprintf(awaitingKeyFormat, s.GuildID), s.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to close session: %w", err)
	}

	return s, nil
}

// MarkAwaitingConfirmation moves an open session into the awaiting state.
// A session that already has an outstanding prompt is rejected, so a tick
// replayed against the same state cannot double-prompt.
func (r *redisRepository) MarkAwaitingConfirmation(ctx context.Context, input *MarkAwaitingConfirmationInput) (*models.Session, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	s, err := r.GetSession(ctx, &GetSessionInput{SessionID: input.SessionID})
	if err != nil {
		return nil, err
	}

	if !s.EndTime.IsZero() {
		return nil, ErrSessionAlreadyClosed
	}

	if s.Status != models.SessionStatusOpen {
		return nil, ErrInvalidSessionState
	}

	s.Status = models.SessionStatusAwaitingConfirmation
	s.PromptedAt = input.PromptedAt
	s.ConfirmDeadline = input.Deadline

	sessionJSON, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal session: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, sessionKey(s.ID), sessionJSON, 0)
	pipe.ZRem(ctx, fmt.Sprintf(pingDueKeyFormat, s.GuildID), s.ID)
	pipe.ZAdd(ctx, fmt.Sprintf(awaitingKeyFormat, s.GuildID), redis.Z{
		Score:  float64(input.Deadline.Unix()),
		Member: s.ID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to mark session awaiting confirmation: %w", err)
	}

	return s, nil
}

// UpdateConfirmation records a liveness confirmation and returns the session
// to the open state. The last-confirmed timestamp only ever moves forward.
func (r *redisRepository) UpdateConfirmation(ctx context.Context, input *UpdateConfirmationInput) (*models.Session, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	s, err := r.GetSession(ctx, &GetSessionInput{SessionID: input.SessionID})
	if err != nil {
		return nil, err
	}

	if !s.EndTime.IsZero() {
		return nil, ErrSessionAlreadyClosed
	}

	if !s.IsOpen() {
		return nil, ErrInvalidSessionState
	}

	if input.ConfirmedAt.After(s.LastConfirmedAt) {
		s.LastConfirmedAt = input.ConfirmedAt
	}
	s.Status = models.SessionStatusOpen
	s.PromptedAt = time.Time{}
	s.ConfirmDeadline = time.Time{}

	sessionJSON, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal session: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, sessionKey(s.ID), sessionJSON, 0)
	pipe.ZRem(ctx, fmt.Sprintf(awaitingKeyFormat, s.GuildID), s.ID)
	if s.RequireConfirmation {
		pipe.ZAdd(ctx, fmt.Sprintf(pingDueKeyFormat, s.GuildID), redis.Z{
			Score:  float64(s.LastConfirmedAt.Add(s.CheckInterval).Unix()),
			Member: s.ID,
		})
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to update confirmation: %w", err)
	}

	return s, nil
}

// ListSessionsNeedingPing returns open sessions whose next prompt is due
func (r *redisRepository) ListSessionsNeedingPing(ctx context.Context, input *ListSessionsNeedingPingInput) ([]*models.Session, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}

	sessionIDs, err := r.client.ZRangeByScore(ctx, fmt.Sprintf(pingDueKeyFormat, input.GuildID), &redis.ZRangeBy{
		Min: "-inf",
		Max: strconv.FormatInt(input.AsOf.Unix(), 10),
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get ping-due session IDs: %w", err)
	}

	sessions, err := r.getSessions(ctx, sessionIDs)
	if err != nil {
		return nil, err
	}

	// The index is cleaned up on every transition, but filter anyway so a
	// torn write can never surface a non-open session to the scheduler
	result := make([]*models.Session, 0, len(sessions))
	for _, s := range sessions {
		if s.Status == models.SessionStatusOpen {
			result = append(result, s)
		}
	}

	return result, nil
}

// ListExpiredConfirmations returns awaiting sessions past their deadline
func (r *redisRepository) ListExpiredConfirmations(ctx context.Context, input *ListExpiredConfirmationsInput) ([]*models.Session, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}

	sessionIDs, err := r.client.ZRangeByScore(ctx, fmt.Sprintf(awaitingKeyFormat, input.GuildID), &redis.ZRangeBy{
		Min: "-inf",
		Max: strconv.FormatInt(input.AsOf.Unix(), 10),
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get expired confirmation IDs: %w", err)
	}

	sessions, err := r.getSessions(ctx, sessionIDs)
	if err != nil {
		return nil, err
	}

	result := make([]*models.Session, 0, len(sessions))
	for _, s := range sessions {
		if s.Status == models.SessionStatusAwaitingConfirmation {
			result = append(result, s)
		}
	}

	return result, nil
}

// ListOpenSessions returns every open or awaiting session in a guild
func (r *redisRepository) ListOpenSessions(ctx context.Context, input *ListOpenSessionsInput) ([]*models.Session, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}

	sessionIDs, err := r.client.ZRange(ctx, fmt.Sprintf(openKeyFormat, input.GuildID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get open session IDs: %w", err)
	}

	sessions, err := r.getSessions(ctx, sessionIDs)
	if err != nil {
		return nil, err
	}

	result := make([]*models.Session, 0, len(sessions))
	for _, s := range sessions {
		if s.IsOpen() {
			result = append(result, s)
		}
	}

	return result, nil
}

// QueryHistory returns sessions in a time range ordered by start ascending
func (r *redisRepository) QueryHistory(ctx context.Context, input *QueryHistoryInput) ([]*models.Session, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}

	key := fmt.Sprintf(historyKeyFormat, input.GuildID)
	if input.UserID != "" {
		key = fmt.Sprintf(userHistoryKeyFormat, input.GuildID, input.UserID)
	}

	max := "+inf"
	if !input.To.IsZero() {
		max = strconv.FormatInt(input.To.Unix(), 10)
	}
	min := "-inf"
	if !input.From.IsZero() {
		min = strconv.FormatInt(input.From.Unix(), 10)
	}

	sessionIDs, err := r.client.ZRangeByScore(ctx, key, &redis.ZRangeBy{
		Min: min,
		Max: max,
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get history session IDs: %w", err)
	}

	sessions, err := r.getSessions(ctx, sessionIDs)
	if err != nil {
		return nil, err
	}

	if input.ProjectID == "" {
		return sessions, nil
	}

	result := make([]*models.Session, 0, len(sessions))
	for _, s := range sessions {
		if s.ProjectID == input.ProjectID {
			result = append(result, s)
		}
	}

	return result, nil
}

// getSessions fetches multiple sessions with a pipeline, preserving the
// order of the given IDs and skipping any deleted in between.
func (r *redisRepository) getSessions(ctx context.Context, sessionIDs []string) ([]*models.Session, error) {
	if len(sessionIDs) == 0 {
		return []*models.Session{}, nil
	}

	pipe := r.client.Pipeline()
	cmds := make([]*redis.StringCmd, 0, len(sessionIDs))
	for _, id := range sessionIDs {
		cmds = append(cmds, pipe.Get(ctx, sessionKey(id)))
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get sessions: %w", err)
	}

	sessions := make([]*models.Session, 0, len(sessionIDs))
	for i, cmd := range cmds {
		sessionJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to get session %s: %w", sessionIDs[i], err)
		}

		var s models.Session
		if err := json.Unmarshal([]byte(sessionJSON), &s); err != nil {
			return nil, fmt.Errorf("failed to unmarshal session %s: %w", sessionIDs[i], err)
		}

		sessions = append(sessions, &s)
	}

	return sessions, nil
}

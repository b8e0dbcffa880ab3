package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/matchday/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	sessionSeqKey        = "session:seq"
	sessionKeyPrefix     = "session:"
	openSessionKeyFmt    = "chat:%d:open_session"
	sessionByDateKeyFmt  = "chat:%d:date:%s"
	responsesKeyFmt      = "session:%d:responses"
	responseOrderKeyFmt  = "session:%d:responses:order"
	guestSeqKeyFmt       = "session:%d:guest_seq"
)

// ErrSessionNotFound is returned when a session is not found
var ErrSessionNotFound = errors.New("session not found")

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
	// Validate config
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

// CreateSession creates a new open session with a store-assigned numeric ID
func (r *redisRepository) CreateSession(ctx context.Context, input *CreateSessionInput) (*models.Session, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.ChatID == 0 {
		return nil, errors.New("chat ID cannot be zero")
	}

	if input.TargetDate == "" {
		return nil, errors.New("target date cannot be empty")
	}

	// Assign the next session ID
	sessionID, err := r.client.Incr(ctx, sessionSeqKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to allocate session ID: %w", err)
	}

	session := &models.Session{
		ID:         sessionID,
		ChatID:     input.ChatID,
		TargetDate: input.TargetDate,
		IsClosed:   false,
	}

	sessionJSON, err := json.Marshal(session)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal session: %w", err)
	}

	// Save the session and index it as the chat's open session and as the
	// latest session for its target date
	pipe := r.client.Pipeline()
	pipe.Set(ctx, fmt.Sprintf("%s%d", sessionKeyPrefix, sessionID), sessionJSON, 0)
	pipe.Set(ctx, fmt.Sprintf(openSessionKeyFmt, input.ChatID), sessionID, 0)
	pipe.Set(ctx, fmt.Sprintf(sessionByDateKeyFmt, input.ChatID, input.TargetDate), sessionID, 0)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	return session, nil
}

// GetSession retrieves a session by ID from Redis
func (r *redisRepository) GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error) {
	if input == nil || input.SessionID == 0 {
		return nil, errors.New("input and session ID cannot be empty")
	}

	return r.getSessionByID(ctx, input.SessionID)
}

// GetOpenSession retrieves the chat's current open session
func (r *redisRepository) GetOpenSession(ctx context.Context, input *GetOpenSessionInput) (*models.Session, error) {
	if input == nil || input.ChatID == 0 {
		return nil, errors.New("input and chat ID cannot be empty")
	}

	sessionID, err := r.client.Get(ctx, fmt.Sprintf(openSessionKeyFmt, input.ChatID)).Int64()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get open session ID: %w", err)
	}

	session, err := r.getSessionByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	// The open index is cleared on close; a closed session behind it means
	// a partial write happened, treat it as absent
	if session.IsClosed {
		return nil, ErrSessionNotFound
	}

	return session, nil
}

// GetSessionByDate retrieves the latest session for a chat and target date
func (r *redisRepository) GetSessionByDate(ctx context.Context, input *GetSessionByDateInput) (*models.Session, error) {
	if input == nil || input.ChatID == 0 || input.TargetDate == "" {
		return nil, errors.New("input, chat ID and target date cannot be empty")
	}

	sessionID, err := r.client.Get(ctx, fmt.Sprintf(sessionByDateKeyFmt, input.ChatID, input.TargetDate)).Int64()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session ID for date: %w", err)
	}

	return r.getSessionByID(ctx, sessionID)
}

// CloseSession marks a session closed and drops it from the open index
func (r *redisRepository) CloseSession(ctx context.Context, input *CloseSessionInput) error {
	if input == nil || input.SessionID == 0 {
		return errors.New("input and session ID cannot be empty")
	}

	session, err := r.getSessionByID(ctx, input.SessionID)
	if err != nil {
		return err
	}

	if session.IsClosed {
		return nil
	}

	session.IsClosed = true

	sessionJSON, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	// Only clear the open index if it still points at this session, so
	// closing a superseded session cannot orphan its successor
	openKey := fmt.Sprintf(openSessionKeyFmt, session.ChatID)
	openID, err := r.client.Get(ctx, openKey).Int64()
	if err != nil && err != redis.Nil {
		return fmt.Errorf("failed to get open session ID: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, fmt.Sprintf("%s%d", sessionKeyPrefix, session.ID), sessionJSON, 0)
	if err == nil && openID == session.ID {
		pipe.Del(ctx, openKey)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to close session: %w", err)
	}

	return nil
}

// SetListMessageID records the summary message identity on a session
func (r *redisRepository) SetListMessageID(ctx context.Context, input *SetListMessageIDInput) error {
	if input == nil || input.SessionID == 0 {
		return errors.New("input and session ID cannot be empty")
	}

	return r.updateSession(ctx, input.SessionID, func(session *models.Session) {
		session.ListMessageID = input.MessageID
	})
}

// SetPinnedMessageID records the pinned prompt message identity on a session
func (r *redisRepository) SetPinnedMessageID(ctx context.Context, input *SetPinnedMessageIDInput) error {
	if input == nil || input.SessionID == 0 {
		return errors.New("input and session ID cannot be empty")
	}

	return r.updateSession(ctx, input.SessionID, func(session *models.Session) {
		session.PinnedMessageID = input.MessageID
	})
}

// UpsertResponse creates or overwrites the response for (session, user).
// Last write wins on every field; the order index is rescored so a re-vote
// moves the player to the end of its status group.
func (r *redisRepository) UpsertResponse(ctx context.Context, input *UpsertResponseInput) error {
	if input == nil || input.Response == nil {
		return errors.New("input and response cannot be nil")
	}

	resp := input.Response
	if resp.SessionID == 0 || resp.UserID == 0 {
		return errors.New("session ID and user ID cannot be zero")
	}

	responseJSON, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}

	member := strconv.FormatInt(resp.UserID, 10)

	pipe := r.client.Pipeline()
	pipe.HSet(ctx, fmt.Sprintf(responsesKeyFmt, resp.SessionID), member, responseJSON)
	pipe.ZAdd(ctx, fmt.Sprintf(responseOrderKeyFmt, resp.SessionID), redis.Z{
		Score:  float64(resp.UpdatedAt.UnixNano()),
		Member: member,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to upsert response: %w", err)
	}

	return nil
}

// ListResponses returns a session's responses ordered by UpdatedAt ascending
func (r *redisRepository) ListResponses(ctx context.Context, input *ListResponsesInput) ([]*models.Response, error) {
	if input == nil || input.SessionID == 0 {
		return nil, errors.New("input and session ID cannot be empty")
	}

	members, err := r.client.ZRange(ctx, fmt.Sprintf(responseOrderKeyFmt, input.SessionID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get response order: %w", err)
	}

	if len(members) == 0 {
		return []*models.Response{}, nil
	}

	values, err := r.client.HMGet(ctx, fmt.Sprintf(responsesKeyFmt, input.SessionID), members...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get responses: %w", err)
	}

	responses := make([]*models.Response, 0, len(members))
	for i, value := range values {
		raw, ok := value.(string)
		if !ok {
			// Order entry without a hash row, removed concurrently
			continue
		}

		var resp models.Response
		if err := json.Unmarshal([]byte(raw), &resp); err != nil {
			return nil, fmt.Errorf("failed to unmarshal response %s: %w", members[i], err)
		}

		responses = append(responses, &resp)
	}

	return responses, nil
}

// DeleteResponseByName removes the first response whose last name matches
// case-insensitively. With duplicate names in one session the earliest
// responder is the one removed.
func (r *redisRepository) DeleteResponseByName(ctx context.Context, input *DeleteResponseByNameInput) (bool, error) {
	if input == nil || input.SessionID == 0 || input.LastName == "" {
		return false, errors.New("input, session ID and last name cannot be empty")
	}

	match, err := r.findResponseByName(ctx, input.SessionID, input.LastName)
	if err != nil || match == nil {
		return false, err
	}

	member := strconv.FormatInt(match.UserID, 10)

	pipe := r.client.Pipeline()
	pipe.HDel(ctx, fmt.Sprintf(responsesKeyFmt, input.SessionID), member)
	pipe.ZRem(ctx, fmt.Sprintf(responseOrderKeyFmt, input.SessionID), member)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("failed to delete response: %w", err)
	}

	return true, nil
}

// UpdateResponseTeamByName rewrites the team of the first response whose
// last name matches case-insensitively. The order index is left untouched
// so the player keeps their position in the list.
func (r *redisRepository) UpdateResponseTeamByName(ctx context.Context, input *UpdateResponseTeamByNameInput) (bool, error) {
	if input == nil || input.SessionID == 0 || input.LastName == "" {
		return false, errors.New("input, session ID and last name cannot be empty")
	}

	match, err := r.findResponseByName(ctx, input.SessionID, input.LastName)
	if err != nil || match == nil {
		return false, err
	}

	match.Team = input.Team

	responseJSON, err := json.Marshal(match)
	if err != nil {
		return false, fmt.Errorf("failed to marshal response: %w", err)
	}

	member := strconv.FormatInt(match.UserID, 10)
	if err := r.client.HSet(ctx, fmt.Sprintf(responsesKeyFmt, input.SessionID), member, responseJSON).Err(); err != nil {
		return false, fmt.Errorf("failed to update response: %w", err)
	}

	return true, nil
}

// AllocateGuestID returns the next synthetic negative user ID for a session.
// IDs count down from -1 and are scoped to the session, so guests can never
// collide with each other or with real Telegram user IDs.
func (r *redisRepository) AllocateGuestID(ctx context.Context, input *AllocateGuestIDInput) (int64, error) {
	if input == nil || input.SessionID == 0 {
		return 0, errors.New("input and session ID cannot be empty")
	}

	id, err := r.client.Decr(ctx, fmt.Sprintf(guestSeqKeyFmt, input.SessionID)).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to allocate guest ID: %w", err)
	}

	return id, nil
}

func (r *redisRepository) getSessionByID(ctx context.Context, sessionID int64) (*models.Session, error) {
	sessionJSON, err := r.client.Get(ctx, fmt.Sprintf("%s%d", sessionKeyPrefix, sessionID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var session models.Session
	if err := json.Unmarshal([]byte(sessionJSON), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &session, nil
}

func (r *redisRepository) updateSession(ctx context.Context, sessionID int64, mutate func(*models.Session)) error {
	session, err := r.getSessionByID(ctx, sessionID)
	if err != nil {
		return err
	}

	mutate(session)

	sessionJSON, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := r.client.Set(ctx, fmt.Sprintf("%s%d", sessionKeyPrefix, sessionID), sessionJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

func (r *redisRepository) findResponseByName(ctx context.Context, sessionID int64, lastName string) (*models.Response, error) {
	responses, err := r.ListResponses(ctx, &ListResponsesInput{SessionID: sessionID})
	if err != nil {
		return nil, err
	}

	for _, resp := range responses {
		if strings.EqualFold(resp.LastName, lastName) {
			return resp, nil
		}
	}

	return nil, nil
}

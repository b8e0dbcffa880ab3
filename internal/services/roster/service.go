package roster

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/KirkDiggler/matchday/internal/common/clock"
	"github.com/KirkDiggler/matchday/internal/models"
	sessionRepo "github.com/KirkDiggler/matchday/internal/repositories/session"
	"github.com/KirkDiggler/matchday/internal/schedule"
)

// cacheEntry is a session snapshot with its insertion time
type cacheEntry struct {
	session  *models.Session
	storedAt time.Time
}

// service implements the Service interface
type service struct {
	sessionRepo sessionRepo.Repository
	resolver    *schedule.Resolver
	clock       clock.Clock
	cacheTTL    time.Duration

	// Per-chat session snapshot cache. Entries are invalidated, not just
	// expired, on any write that changes is_closed or a message identity,
	// so the publisher never sees a stale message ID through this path.
	mu    sync.Mutex
	cache map[int64]cacheEntry
}

// NewService creates a new roster service
func NewService(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}

	if cfg.Resolver == nil {
		return nil, ErrNilResolver
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	cacheTTL := cfg.CacheTTL
	if cacheTTL <= 0 {
		cacheTTL = DefaultCacheTTL
	}

	return &service{
		sessionRepo: cfg.SessionRepo,
		resolver:    cfg.Resolver,
		clock:       cfg.Clock,
		cacheTTL:    cacheTTL,
		cache:       make(map[int64]cacheEntry),
	}, nil
}

// GetOrCreateSession resolves the chat's session for the current occurrence.
// Invariant: at most one open session per chat. An open session for a past
// occurrence is closed here before a new one is created, never silently
// reused.
func (s *service) GetOrCreateSession(ctx context.Context, input *GetOrCreateSessionInput) (*GetOrCreateSessionOutput, error) {
	if input == nil || input.ChatID == 0 {
		return nil, errors.New("input and chat ID cannot be empty")
	}

	now := s.clock.Now()
	targetDate := s.resolver.TargetDate(now)

	if !input.ForceRefresh {
		if session := s.cacheGet(input.ChatID, now, targetDate); session != nil {
			return &GetOrCreateSessionOutput{Session: session}, nil
		}
	}

	open, err := s.sessionRepo.GetOpenSession(ctx, &sessionRepo.GetOpenSessionInput{
		ChatID: input.ChatID,
	})
	if err == nil {
		if open.TargetDate == targetDate {
			s.cachePut(input.ChatID, open, now)
			return &GetOrCreateSessionOutput{Session: open}, nil
		}

		// The open session belongs to a past occurrence: close it and
		// fall through to create the current one
		if err := s.sessionRepo.CloseSession(ctx, &sessionRepo.CloseSessionInput{
			SessionID: open.ID,
		}); err != nil {
			return nil, err
		}
		s.InvalidateCache(input.ChatID)
	} else if !errors.Is(err, sessionRepo.ErrSessionNotFound) {
		return nil, err
	}

	// A session for the resolved date may already exist even though the
	// open index missed it (crash recovery, duplicate scheduler ticks)
	existing, err := s.sessionRepo.GetSessionByDate(ctx, &sessionRepo.GetSessionByDateInput{
		ChatID:     input.ChatID,
		TargetDate: targetDate,
	})
	if err == nil && !existing.IsClosed {
		s.cachePut(input.ChatID, existing, now)
		return &GetOrCreateSessionOutput{Session: existing}, nil
	}
	if err != nil && !errors.Is(err, sessionRepo.ErrSessionNotFound) {
		return nil, err
	}

	created, err := s.sessionRepo.CreateSession(ctx, &sessionRepo.CreateSessionInput{
		ChatID:     input.ChatID,
		TargetDate: targetDate,
	})
	if err != nil {
		return nil, err
	}

	s.cachePut(input.ChatID, created, now)
	return &GetOrCreateSessionOutput{Session: created}, nil
}

// GetOpenSession reads the chat's open session from the store, skipping the cache
func (s *service) GetOpenSession(ctx context.Context, input *GetOpenSessionInput) (*models.Session, error) {
	if input == nil || input.ChatID == 0 {
		return nil, errors.New("input and chat ID cannot be empty")
	}

	session, err := s.sessionRepo.GetOpenSession(ctx, &sessionRepo.GetOpenSessionInput{
		ChatID: input.ChatID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	return session, nil
}

// GetSessionByDate reads a session by chat and date from the store, skipping the cache
func (s *service) GetSessionByDate(ctx context.Context, input *GetSessionByDateInput) (*models.Session, error) {
	if input == nil || input.ChatID == 0 || input.TargetDate == "" {
		return nil, errors.New("input, chat ID and target date cannot be empty")
	}

	session, err := s.sessionRepo.GetSessionByDate(ctx, &sessionRepo.GetSessionByDateInput{
		ChatID:     input.ChatID,
		TargetDate: input.TargetDate,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	return session, nil
}

// CloseSession closes the session and invalidates the chat's cache entry
func (s *service) CloseSession(ctx context.Context, input *CloseSessionInput) error {
	if input == nil || input.SessionID == 0 {
		return errors.New("input and session ID cannot be empty")
	}

	if err := s.sessionRepo.CloseSession(ctx, &sessionRepo.CloseSessionInput{
		SessionID: input.SessionID,
	}); err != nil {
		return err
	}

	s.InvalidateCache(input.ChatID)
	return nil
}

// SetListMessage records the summary message identity and invalidates the cache
func (s *service) SetListMessage(ctx context.Context, input *SetListMessageInput) error {
	if input == nil || input.SessionID == 0 {
		return errors.New("input and session ID cannot be empty")
	}

	if err := s.sessionRepo.SetListMessageID(ctx, &sessionRepo.SetListMessageIDInput{
		SessionID: input.SessionID,
		MessageID: input.MessageID,
	}); err != nil {
		return err
	}

	s.InvalidateCache(input.ChatID)
	return nil
}

// SetPinnedMessage records the pinned prompt identity and invalidates the cache
func (s *service) SetPinnedMessage(ctx context.Context, input *SetPinnedMessageInput) error {
	if input == nil || input.SessionID == 0 {
		return errors.New("input and session ID cannot be empty")
	}

	if err := s.sessionRepo.SetPinnedMessageID(ctx, &sessionRepo.SetPinnedMessageIDInput{
		SessionID: input.SessionID,
		MessageID: input.MessageID,
	}); err != nil {
		return err
	}

	s.InvalidateCache(input.ChatID)
	return nil
}

// AddResponse records or overwrites a player's vote. Last write wins on all
// fields, including the name and team snapshots.
func (s *service) AddResponse(ctx context.Context, input *AddResponseInput) error {
	if input == nil || input.SessionID == 0 || input.UserID == 0 {
		return errors.New("input, session ID and user ID cannot be empty")
	}

	if !input.Status.IsValid() {
		return ErrInvalidStatus
	}

	lastName := strings.TrimSpace(input.LastName)
	if lastName == "" {
		return ErrEmptyLastName
	}

	return s.sessionRepo.UpsertResponse(ctx, &sessionRepo.UpsertResponseInput{
		Response: &models.Response{
			SessionID: input.SessionID,
			ChatID:    input.ChatID,
			UserID:    input.UserID,
			LastName:  lastName,
			Status:    input.Status,
			Team:      input.Team,
			IsGoalie:  input.IsGoalie,
			UpdatedAt: s.clock.Now(),
		},
	})
}

// AddGuest records an attending guest under a freshly allocated negative ID
func (s *service) AddGuest(ctx context.Context, input *AddGuestInput) (*AddGuestOutput, error) {
	if input == nil || input.SessionID == 0 {
		return nil, errors.New("input and session ID cannot be empty")
	}

	lastName := strings.TrimSpace(input.LastName)
	if lastName == "" {
		return nil, ErrEmptyLastName
	}

	guestID, err := s.sessionRepo.AllocateGuestID(ctx, &sessionRepo.AllocateGuestIDInput{
		SessionID: input.SessionID,
	})
	if err != nil {
		return nil, err
	}

	err = s.sessionRepo.UpsertResponse(ctx, &sessionRepo.UpsertResponseInput{
		Response: &models.Response{
			SessionID: input.SessionID,
			ChatID:    input.ChatID,
			UserID:    guestID,
			LastName:  lastName,
			Status:    models.StatusYes,
			Team:      input.Team,
			UpdatedAt: s.clock.Now(),
		},
	})
	if err != nil {
		return nil, err
	}

	log.Printf("guest %q (id %d) added to session %d by user %d",
		lastName, guestID, input.SessionID, input.AddedByUserID)

	return &AddGuestOutput{GuestID: guestID}, nil
}

// DeleteResponseByName removes a response by case-insensitive last name
func (s *service) DeleteResponseByName(ctx context.Context, input *DeleteResponseByNameInput) (bool, error) {
	if input == nil || input.SessionID == 0 {
		return false, errors.New("input and session ID cannot be empty")
	}

	lastName := strings.TrimSpace(input.LastName)
	if lastName == "" {
		return false, ErrEmptyLastName
	}

	return s.sessionRepo.DeleteResponseByName(ctx, &sessionRepo.DeleteResponseByNameInput{
		SessionID: input.SessionID,
		LastName:  lastName,
	})
}

// UpdateResponseTeam rewrites a response's team by case-insensitive last name
func (s *service) UpdateResponseTeam(ctx context.Context, input *UpdateResponseTeamInput) (bool, error) {
	if input == nil || input.SessionID == 0 {
		return false, errors.New("input and session ID cannot be empty")
	}

	if !input.Team.IsValid() {
		return false, ErrInvalidTeam
	}

	lastName := strings.TrimSpace(input.LastName)
	if lastName == "" {
		return false, ErrEmptyLastName
	}

	return s.sessionRepo.UpdateResponseTeamByName(ctx, &sessionRepo.UpdateResponseTeamByNameInput{
		SessionID: input.SessionID,
		LastName:  lastName,
		Team:      input.Team,
	})
}

// ListResponses returns a session's responses, first-to-respond first
func (s *service) ListResponses(ctx context.Context, input *ListResponsesInput) ([]*models.Response, error) {
	if input == nil || input.SessionID == 0 {
		return nil, errors.New("input and session ID cannot be empty")
	}

	return s.sessionRepo.ListResponses(ctx, &sessionRepo.ListResponsesInput{
		SessionID: input.SessionID,
	})
}

// GetPlayerCounts tallies responses per canonical status. Anything outside
// the three canonical statuses is excluded.
func (s *service) GetPlayerCounts(ctx context.Context, input *GetPlayerCountsInput) (*models.PlayerCounts, error) {
	if input == nil || input.SessionID == 0 {
		return nil, errors.New("input and session ID cannot be empty")
	}

	responses, err := s.sessionRepo.ListResponses(ctx, &sessionRepo.ListResponsesInput{
		SessionID: input.SessionID,
	})
	if err != nil {
		return nil, err
	}

	counts := &models.PlayerCounts{}
	for _, resp := range responses {
		switch resp.Status {
		case models.StatusYes:
			counts.Yes++
		case models.StatusMaybe:
			counts.Maybe++
		case models.StatusNo:
			counts.No++
		}
	}

	return counts, nil
}

// InvalidateCache drops the chat's cached session snapshot
func (s *service) InvalidateCache(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.cache, chatID)
}

func (s *service) cacheGet(chatID int64, now time.Time, targetDate string) *models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.cache[chatID]
	if !ok {
		return nil
	}

	// A cached snapshot is only valid while young, still matching the
	// resolver's current answer, and not closed
	if now.Sub(entry.storedAt) >= s.cacheTTL ||
		entry.session.TargetDate != targetDate ||
		entry.session.IsClosed {
		return nil
	}

	return entry.session
}

func (s *service) cachePut(chatID int64, session *models.Session, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache[chatID] = cacheEntry{
		session:  session,
		storedAt: now,
	}
}

package publisher

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/KirkDiggler/matchday/internal/render"
	"github.com/KirkDiggler/matchday/internal/services/roster"
)

type service struct {
	roster    roster.Service
	transport Transport

	// Per-chat serialization of publishes. Two voters in the same window
	// would otherwise race the edit-or-create decision and leave a
	// duplicate summary behind.
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

// NewService creates a new publisher service with the provided configuration
func NewService(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Roster == nil {
		return nil, ErrNilRoster
	}

	if cfg.Transport == nil {
		return nil, ErrNilTransport
	}

	return &service{
		roster:    cfg.Roster,
		transport: cfg.Transport,
		locks:     make(map[int64]*sync.Mutex),
	}, nil
}

// EnsureSummary renders the session's summary and edits the recorded message
// in place. An unchanged-content edit counts as success; any other edit
// failure falls through to posting a fresh message and recording its identity.
func (s *service) EnsureSummary(ctx context.Context, input *EnsureSummaryInput) error {
	if input == nil || input.Session == nil {
		return errors.New("input and session cannot be empty")
	}

	session := input.Session

	responses, err := s.roster.ListResponses(ctx, &roster.ListResponsesInput{
		SessionID: session.ID,
	})
	if err != nil {
		return err
	}

	text := render.Summary(session.TargetDate, responses)

	if session.ListMessageID != 0 {
		err = s.transport.EditMessageText(ctx, session.ChatID, session.ListMessageID, text)
		if err == nil || errors.Is(err, ErrNotModified) {
			return nil
		}
		log.Printf("failed to edit summary message %d in chat %d: %v", session.ListMessageID, session.ChatID, err)
	}

	messageID, err := s.transport.SendMessage(ctx, session.ChatID, text)
	if err != nil {
		return err
	}

	if err := s.roster.SetListMessage(ctx, &roster.SetListMessageInput{
		SessionID: session.ID,
		ChatID:    session.ChatID,
		MessageID: messageID,
	}); err != nil {
		return err
	}

	session.ListMessageID = messageID
	return nil
}

// UpdateSummary reloads the session by chat and date before publishing so the
// edit targets the freshest recorded message identity, then runs EnsureSummary
// under the chat's publish lock.
func (s *service) UpdateSummary(ctx context.Context, input *UpdateSummaryInput) error {
	if input == nil || input.Session == nil {
		return errors.New("input and session cannot be empty")
	}

	lock := s.chatLock(input.Session.ChatID)
	lock.Lock()
	defer lock.Unlock()

	session := input.Session

	fresh, err := s.roster.GetSessionByDate(ctx, &roster.GetSessionByDateInput{
		ChatID:     session.ChatID,
		TargetDate: session.TargetDate,
	})
	if err == nil && !fresh.IsClosed {
		session = fresh
	} else if err != nil && !errors.Is(err, roster.ErrSessionNotFound) {
		return err
	}

	return s.EnsureSummary(ctx, &EnsureSummaryInput{Session: session})
}

func (s *service) chatLock(chatID int64) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[chatID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[chatID] = lock
	}
	return lock
}

// Package scheduler runs the recurring jobs: the game-day prompt and the
// cutoff-time session close.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/KirkDiggler/matchday/internal/metrics"
	"github.com/KirkDiggler/matchday/internal/services/publisher"
	"github.com/KirkDiggler/matchday/internal/services/roster"
)

// SchedulerError is a custom error type for scheduler-related errors
type SchedulerError string

// Error implements the error interface
func (e SchedulerError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig    SchedulerError = "config cannot be nil"
	ErrNilRoster    SchedulerError = "roster service cannot be nil"
	ErrNilPublisher SchedulerError = "publisher service cannot be nil"
	ErrNilTransport SchedulerError = "transport cannot be nil"
	ErrNilPrompter  SchedulerError = "prompter cannot be nil"
	ErrNilLocation  SchedulerError = "location cannot be nil"
)

// Prompter posts the status-button prompt to a chat
type Prompter interface {
	SendPrompt(ctx context.Context, chatID int64) (int, error)
}

// Config contains the dependencies for creating a new scheduler
type Config struct {
	Roster    roster.Service
	Publisher publisher.Service
	Transport publisher.Transport
	Prompter  Prompter

	ChatID   int64
	Location *time.Location

	// NotifyHour and NotifyMinute set the local time of the prompt job
	NotifyHour   int
	NotifyMinute int
}

// Scheduler owns the cron runner and its jobs
type Scheduler struct {
	roster    roster.Service
	publisher publisher.Service
	transport publisher.Transport
	prompter  Prompter

	chatID int64
	cron   *cron.Cron

	// confirmTTL is how long the close confirmation stays in the chat;
	// zero disables the cleanup
	confirmTTL time.Duration
}

// New creates a scheduler with the prompt job on Wednesdays and Saturdays at
// the configured time and the close job at the Wednesday cutoff
func New(cfg *Config) (*Scheduler, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Roster == nil {
		return nil, ErrNilRoster
	}

	if cfg.Publisher == nil {
		return nil, ErrNilPublisher
	}

	if cfg.Transport == nil {
		return nil, ErrNilTransport
	}

	if cfg.Prompter == nil {
		return nil, ErrNilPrompter
	}

	if cfg.Location == nil {
		return nil, ErrNilLocation
	}

	s := &Scheduler{
		roster:     cfg.Roster,
		publisher:  cfg.Publisher,
		transport:  cfg.Transport,
		prompter:   cfg.Prompter,
		chatID:     cfg.ChatID,
		cron:       cron.New(cron.WithLocation(cfg.Location)),
		confirmTTL: 3 * time.Second,
	}

	promptSpec := fmt.Sprintf("%d %d * * 3,6", cfg.NotifyMinute, cfg.NotifyHour)
	if _, err := s.cron.AddFunc(promptSpec, s.runPromptJob); err != nil {
		return nil, fmt.Errorf("failed to schedule prompt job: %w", err)
	}

	// Session closes at the 23:30 Wednesday cutoff
	if _, err := s.cron.AddFunc("30 23 * * 3", s.runCloseJob); err != nil {
		return nil, fmt.Errorf("failed to schedule close job: %w", err)
	}

	return s, nil
}

// Start begins running jobs in the background
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts the cron runner and waits for a running job to finish
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

// runPromptJob replaces the pinned prompt and the summary with fresh copies
// on game day and reminder day
func (s *Scheduler) runPromptJob() {
	metrics.SchedulerJobsTotal.WithLabelValues("send_notification").Inc()
	ctx := context.Background()

	out, err := s.roster.GetOrCreateSession(ctx, &roster.GetOrCreateSessionInput{ChatID: s.chatID})
	if err != nil {
		log.Printf("prompt job: failed to resolve session: %v", err)
		metrics.ErrorsTotal.WithLabelValues("scheduler").Inc()
		return
	}
	session := out.Session
	if session.IsClosed {
		return
	}

	if session.PinnedMessageID != 0 {
		if err := s.transport.UnpinMessage(ctx, s.chatID, session.PinnedMessageID); err != nil {
			log.Printf("prompt job: failed to unpin message %d: %v", session.PinnedMessageID, err)
		}
		if err := s.transport.DeleteMessage(ctx, s.chatID, session.PinnedMessageID); err != nil {
			log.Printf("prompt job: failed to delete pinned message %d: %v", session.PinnedMessageID, err)
		}
	}

	if session.ListMessageID != 0 {
		if err := s.transport.DeleteMessage(ctx, s.chatID, session.ListMessageID); err != nil {
			log.Printf("prompt job: failed to delete summary message %d: %v", session.ListMessageID, err)
		}
		if err := s.roster.SetListMessage(ctx, &roster.SetListMessageInput{
			SessionID: session.ID,
			ChatID:    s.chatID,
			MessageID: 0,
		}); err != nil {
			log.Printf("prompt job: failed to clear summary message id: %v", err)
		}
		session.ListMessageID = 0
	}

	messageID, err := s.prompter.SendPrompt(ctx, s.chatID)
	if err != nil {
		log.Printf("prompt job: failed to send prompt: %v", err)
		metrics.ErrorsTotal.WithLabelValues("scheduler").Inc()
		return
	}

	// Pinning needs an extra permission; its absence is non-fatal
	if err := s.transport.PinMessage(ctx, s.chatID, messageID); err != nil {
		log.Printf("prompt job: failed to pin prompt: %v", err)
	} else if err := s.roster.SetPinnedMessage(ctx, &roster.SetPinnedMessageInput{
		SessionID: session.ID,
		ChatID:    s.chatID,
		MessageID: messageID,
	}); err != nil {
		log.Printf("prompt job: failed to record pinned message id: %v", err)
	}

	if err := s.publisher.EnsureSummary(ctx, &publisher.EnsureSummaryInput{Session: session}); err != nil {
		log.Printf("prompt job: failed to publish summary: %v", err)
		metrics.ErrorsTotal.WithLabelValues("publish").Inc()
	}
}

// runCloseJob closes the open session at the cutoff
func (s *Scheduler) runCloseJob() {
	metrics.SchedulerJobsTotal.WithLabelValues("close_session").Inc()
	ctx := context.Background()

	session, err := s.roster.GetOpenSession(ctx, &roster.GetOpenSessionInput{ChatID: s.chatID})
	if err != nil {
		if !errors.Is(err, roster.ErrSessionNotFound) {
			log.Printf("close job: failed to load open session: %v", err)
			metrics.ErrorsTotal.WithLabelValues("scheduler").Inc()
		}
		return
	}

	if session.PinnedMessageID != 0 {
		if err := s.transport.UnpinMessage(ctx, s.chatID, session.PinnedMessageID); err != nil {
			log.Printf("close job: failed to unpin message %d: %v", session.PinnedMessageID, err)
		}
	}

	if err := s.roster.CloseSession(ctx, &roster.CloseSessionInput{
		SessionID: session.ID,
		ChatID:    s.chatID,
	}); err != nil {
		log.Printf("close job: failed to close session %d: %v", session.ID, err)
		metrics.ErrorsTotal.WithLabelValues("scheduler").Inc()
		return
	}

	messageID, err := s.transport.SendMessage(ctx, s.chatID, "Сессия закрыта.")
	if err != nil {
		log.Printf("close job: failed to send confirmation: %v", err)
		return
	}

	if s.confirmTTL > 0 {
		time.AfterFunc(s.confirmTTL, func() {
			_ = s.transport.DeleteMessage(context.Background(), s.chatID, messageID)
		})
	}
}

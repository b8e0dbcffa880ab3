package telegram

import (
	"context"
	"log"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"

	"github.com/KirkDiggler/matchday/internal/metrics"
)

// Message auto-delete delays. Service chatter is cleaned up quickly so the
// pinned prompt and the summary stay the only persistent messages.
const (
	deleteDelayCommand = 3 * time.Second
	deleteDelayConfirm = 3 * time.Second
	deleteDelayNotice  = 5 * time.Second
	deleteDelayError   = 10 * time.Second
	deleteDelayPrompt  = 15 * time.Second
)

// instrument runs a handler with a request ID in the logs and observes its
// duration under the handler's name
func (b *Bot) instrument(name string, fn func()) {
	requestID := uuid.New().String()
	start := time.Now()

	defer func() {
		metrics.RequestDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
	}()

	log.Printf("[%s] handling %s", requestID, name)
	fn()
}

// isChatAdmin reports whether the user may run admin actions: either on the
// configured allow-list or holding an elevated role in the chat
func (b *Bot) isChatAdmin(chatID, userID int64) bool {
	if b.adminIDs[userID] {
		return true
	}

	member, err := b.api.GetChatMember(tgbotapi.GetChatMemberConfig{
		ChatConfigWithUser: tgbotapi.ChatConfigWithUser{
			ChatID: chatID,
			UserID: userID,
		},
	})
	if err != nil {
		log.Printf("failed to check admin status for user %d: %v", userID, err)
		metrics.ErrorsTotal.WithLabelValues("admin_check").Inc()
		return false
	}

	return member.IsAdministrator() || member.IsCreator()
}

// scheduleDelete removes a message after a delay as a fire-and-forget task.
// Deletion failures are ignored; the message may already be gone.
func (b *Bot) scheduleDelete(chatID int64, messageID int, delay time.Duration) {
	go func() {
		select {
		case <-b.done:
			return
		case <-time.After(delay):
		}
		_ = b.transport.DeleteMessage(context.Background(), chatID, messageID)
	}()
}

// deleteMessageSafe removes a message immediately, reporting success
func (b *Bot) deleteMessageSafe(ctx context.Context, chatID int64, messageID int) bool {
	if err := b.transport.DeleteMessage(ctx, chatID, messageID); err != nil {
		log.Printf("failed to delete message %d in chat %d: %v", messageID, chatID, err)
		return false
	}
	return true
}

// unpinMessageSafe unpins a message, ignoring permission failures
func (b *Bot) unpinMessageSafe(ctx context.Context, chatID int64, messageID int) {
	if err := b.transport.UnpinMessage(ctx, chatID, messageID); err != nil {
		log.Printf("failed to unpin message %d in chat %d: %v", messageID, chatID, err)
	}
}

package telegram

import (
	"context"
	"errors"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/KirkDiggler/matchday/internal/metrics"
	"github.com/KirkDiggler/matchday/internal/services/publisher"
	"github.com/KirkDiggler/matchday/internal/services/roster"
)

const promptText = "Привет! Нажми кнопку под сообщением бота и выбери статус.\n" +
	"Если фамилия еще не сохранена, бот попросит ее один раз."

const helpText = "Команды:\n" +
	"/start - показать кнопки выбора статуса\n" +
	"/status - обновить список участников\n" +
	"/reset - сбросить сессию (только для администраторов)\n" +
	"/close - закрыть сессию (только для администраторов)"

func (b *Bot) handleCommand(ctx context.Context, message *tgbotapi.Message) {
	command := message.Command()
	metrics.CommandsTotal.WithLabelValues(command).Inc()

	if message.Chat.ID != b.chatID {
		return
	}

	// Commands themselves are chat noise, clean them up
	b.scheduleDelete(message.Chat.ID, message.MessageID, deleteDelayCommand)

	switch command {
	case "start":
		b.instrument("start", func() { b.handleStart(ctx, message) })
	case "status":
		b.instrument("status", func() { b.handleStatus(ctx, message) })
	case "reset":
		b.instrument("reset", func() { b.handleReset(ctx, message) })
	case "close":
		b.instrument("close", func() { b.handleClose(ctx, message) })
	case "help":
		b.instrument("help", func() { b.handleHelp(ctx, message) })
	}
}

// handleStart posts the status keyboard, replacing the previous prompt so
// only one set of buttons floats in the chat
func (b *Bot) handleStart(ctx context.Context, message *tgbotapi.Message) {
	chatID := message.Chat.ID

	if old := b.getLastStartMessage(chatID); old != 0 {
		b.deleteMessageSafe(ctx, chatID, old)
	}

	messageID := b.sendKeyboard(chatID, promptText, promptKeyboard())
	if messageID != 0 {
		b.setLastStartMessage(chatID, messageID)
	}
}

// handleStatus forces a session refresh, drops the stale summary message,
// and reposts both the prompt and a fresh summary
func (b *Bot) handleStatus(ctx context.Context, message *tgbotapi.Message) {
	chatID := message.Chat.ID

	if old := b.getLastStartMessage(chatID); old != 0 {
		b.deleteMessageSafe(ctx, chatID, old)
	}

	b.roster.InvalidateCache(b.chatID)
	out, err := b.roster.GetOrCreateSession(ctx, &roster.GetOrCreateSessionInput{
		ChatID:       b.chatID,
		ForceRefresh: true,
	})
	if err != nil {
		log.Printf("status: failed to resolve session: %v", err)
		metrics.ErrorsTotal.WithLabelValues("session_resolve").Inc()
		return
	}
	session := out.Session

	if session.ListMessageID != 0 {
		b.deleteMessageSafe(ctx, chatID, session.ListMessageID)
		if err := b.roster.SetListMessage(ctx, &roster.SetListMessageInput{
			SessionID: session.ID,
			ChatID:    b.chatID,
			MessageID: 0,
		}); err != nil {
			log.Printf("status: failed to clear summary message id: %v", err)
		}
		session.ListMessageID = 0
	}

	messageID := b.sendKeyboard(chatID, promptText, promptKeyboard())
	if messageID != 0 {
		b.setLastStartMessage(chatID, messageID)
	}

	if err := b.publisher.EnsureSummary(ctx, &publisher.EnsureSummaryInput{Session: session}); err != nil {
		log.Printf("status: failed to publish summary: %v", err)
		metrics.ErrorsTotal.WithLabelValues("publish").Inc()
	}
}

// handleReset closes the current session, removes its messages, and opens a
// fresh one. Admin only.
func (b *Bot) handleReset(ctx context.Context, message *tgbotapi.Message) {
	chatID := message.Chat.ID

	if !b.isChatAdmin(chatID, message.From.ID) {
		errorID := b.sendMessage(chatID, "Команда доступна только администраторам.")
		b.scheduleDelete(chatID, errorID, deleteDelayNotice)
		return
	}

	open, err := b.roster.GetOpenSession(ctx, &roster.GetOpenSessionInput{ChatID: b.chatID})
	if err != nil && !errors.Is(err, roster.ErrSessionNotFound) {
		log.Printf("reset: failed to load open session: %v", err)
		metrics.ErrorsTotal.WithLabelValues("session_resolve").Inc()
		return
	}

	if open != nil {
		if open.PinnedMessageID != 0 {
			b.unpinMessageSafe(ctx, chatID, open.PinnedMessageID)
		}
		if open.ListMessageID != 0 {
			b.deleteMessageSafe(ctx, chatID, open.ListMessageID)
		}
		if err := b.roster.CloseSession(ctx, &roster.CloseSessionInput{
			SessionID: open.ID,
			ChatID:    b.chatID,
		}); err != nil {
			log.Printf("reset: failed to close session: %v", err)
			return
		}
	}

	out, err := b.roster.GetOrCreateSession(ctx, &roster.GetOrCreateSessionInput{
		ChatID:       b.chatID,
		ForceRefresh: true,
	})
	if err != nil {
		log.Printf("reset: failed to open new session: %v", err)
		return
	}

	if err := b.publisher.EnsureSummary(ctx, &publisher.EnsureSummaryInput{Session: out.Session}); err != nil {
		log.Printf("reset: failed to publish summary: %v", err)
	}

	confirmID := b.sendMessage(chatID, "Сессия сброшена.")
	b.scheduleDelete(chatID, confirmID, deleteDelayConfirm)
}

// handleClose closes the current session without opening a new one. Admin
// only.
func (b *Bot) handleClose(ctx context.Context, message *tgbotapi.Message) {
	chatID := message.Chat.ID

	if !b.isChatAdmin(chatID, message.From.ID) {
		errorID := b.sendMessage(chatID, "Команда доступна только администраторам.")
		b.scheduleDelete(chatID, errorID, deleteDelayNotice)
		return
	}

	open, err := b.roster.GetOpenSession(ctx, &roster.GetOpenSessionInput{ChatID: b.chatID})
	if err != nil {
		if errors.Is(err, roster.ErrSessionNotFound) {
			errorID := b.sendMessage(chatID, "Нет активной сессии.")
			b.scheduleDelete(chatID, errorID, deleteDelayNotice)
			return
		}
		log.Printf("close: failed to load open session: %v", err)
		metrics.ErrorsTotal.WithLabelValues("session_resolve").Inc()
		return
	}

	if open.PinnedMessageID != 0 {
		b.unpinMessageSafe(ctx, chatID, open.PinnedMessageID)
	}

	if err := b.roster.CloseSession(ctx, &roster.CloseSessionInput{
		SessionID: open.ID,
		ChatID:    b.chatID,
	}); err != nil {
		log.Printf("close: failed to close session: %v", err)
		return
	}

	confirmID := b.sendMessage(chatID, "Сессия закрыта.")
	b.scheduleDelete(chatID, confirmID, deleteDelayConfirm)
}

func (b *Bot) handleHelp(_ context.Context, message *tgbotapi.Message) {
	helpID := b.sendMessage(message.Chat.ID, helpText)
	b.scheduleDelete(message.Chat.ID, helpID, deleteDelayPrompt)
}

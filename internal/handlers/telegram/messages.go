package telegram

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/KirkDiggler/matchday/internal/metrics"
	"github.com/KirkDiggler/matchday/internal/models"
	"github.com/KirkDiggler/matchday/internal/services/roster"
)

// handleText feeds a free-text message into the user's in-flight flow.
// Messages from users with no pending flow are ignored.
func (b *Bot) handleText(ctx context.Context, message *tgbotapi.Message) {
	if message.Chat.ID != b.chatID || message.From == nil {
		return
	}

	state := b.states.get(message.From.ID)
	switch state.kind {
	case pendingVoteLastName:
		b.instrument("vote_last_name", func() { b.handleVoteLastName(ctx, message, state) })
	case pendingGuestLastName:
		b.instrument("guest_last_name", func() { b.handleGuestLastName(ctx, message) })
	case pendingDeleteLastName:
		b.instrument("delete_last_name", func() { b.handleDeleteLastName(ctx, message) })
	case pendingChangeTeamLastName:
		b.instrument("change_team_last_name", func() { b.handleChangeTeamLastName(ctx, message) })
	}
}

// validLastName trims the message text and reports an auto-deleted error
// message on empty input
func (b *Bot) validLastName(message *tgbotapi.Message) (string, bool) {
	lastName := strings.TrimSpace(message.Text)
	if lastName == "" {
		errorID := b.sendMessage(message.Chat.ID, "Фамилия не может быть пустой. Попробуй еще раз.")
		b.scheduleDelete(message.Chat.ID, errorID, deleteDelayError)
		return "", false
	}
	return lastName, true
}

// handleVoteLastName captures a first-time voter's last name and moves on to
// the team pick
func (b *Bot) handleVoteLastName(ctx context.Context, message *tgbotapi.Message, state pendingState) {
	chatID := message.Chat.ID

	lastName, ok := b.validLastName(message)
	if !ok {
		return
	}

	if state.status == "" {
		errorID := b.sendMessage(chatID, "Не удалось определить статус. Нажми кнопку еще раз.")
		b.scheduleDelete(chatID, errorID, deleteDelayError)
		b.states.clear(message.From.ID)
		return
	}

	b.scheduleDelete(chatID, message.MessageID, deleteDelayConfirm)

	b.states.set(message.From.ID, pendingState{
		kind:     pendingVoteTeam,
		status:   state.status,
		lastName: lastName,
	})

	promptID := b.sendKeyboard(chatID, "Выбери свою команду:", teamKeyboard())
	b.scheduleDelete(chatID, promptID, deleteDelayPrompt)
}

// handleGuestLastName captures a guest's last name and moves on to the
// guest's team pick
func (b *Bot) handleGuestLastName(ctx context.Context, message *tgbotapi.Message) {
	chatID := message.Chat.ID

	lastName, ok := b.validLastName(message)
	if !ok {
		return
	}

	session, ok := b.sessionForTextFlow(ctx, message)
	if !ok {
		return
	}

	b.scheduleDelete(chatID, message.MessageID, deleteDelayConfirm)

	b.states.set(message.From.ID, pendingState{
		kind:          pendingGuestTeam,
		lastName:      lastName,
		sessionID:     session.ID,
		addedByUserID: message.From.ID,
	})

	promptID := b.sendKeyboard(chatID, "Выбери команду для гостя:", teamKeyboard())
	b.scheduleDelete(chatID, promptID, deleteDelayPrompt)
}

// handleDeleteLastName removes the named participant from the roster
func (b *Bot) handleDeleteLastName(ctx context.Context, message *tgbotapi.Message) {
	chatID := message.Chat.ID

	lastName, ok := b.validLastName(message)
	if !ok {
		return
	}

	session, ok := b.sessionForTextFlow(ctx, message)
	if !ok {
		return
	}

	deleted, err := b.roster.DeleteResponseByName(ctx, &roster.DeleteResponseByNameInput{
		SessionID: session.ID,
		LastName:  lastName,
	})
	if err != nil {
		log.Printf("failed to delete response %q: %v", lastName, err)
		metrics.ErrorsTotal.WithLabelValues("delete_response").Inc()
		return
	}

	b.states.clear(message.From.ID)
	b.scheduleDelete(chatID, message.MessageID, deleteDelayConfirm)

	var confirmID int
	if deleted {
		metrics.GuestsDeletedTotal.Inc()
		b.publishSummary(ctx, session)
		confirmID = b.sendMessage(chatID, fmt.Sprintf("✅ Участник '%s' удалён из списка.", lastName))
	} else {
		confirmID = b.sendMessage(chatID, fmt.Sprintf("❌ Участник с фамилией '%s' не найден в списке.", lastName))
	}
	b.scheduleDelete(chatID, confirmID, deleteDelayNotice)
}

// handleChangeTeamLastName captures the rename target and moves on to the
// new team pick
func (b *Bot) handleChangeTeamLastName(ctx context.Context, message *tgbotapi.Message) {
	chatID := message.Chat.ID

	lastName, ok := b.validLastName(message)
	if !ok {
		return
	}

	session, ok := b.sessionForTextFlow(ctx, message)
	if !ok {
		return
	}

	b.scheduleDelete(chatID, message.MessageID, deleteDelayConfirm)

	b.states.set(message.From.ID, pendingState{
		kind:      pendingChangeTeamSelect,
		lastName:  lastName,
		sessionID: session.ID,
	})

	promptID := b.sendKeyboard(chatID, fmt.Sprintf("Выбери новую команду для '%s':", lastName), teamKeyboard())
	b.scheduleDelete(chatID, promptID, deleteDelayPrompt)
}

// sessionForTextFlow resolves the open session for a text-driven flow,
// reporting and clearing the flow when the session is closed
func (b *Bot) sessionForTextFlow(ctx context.Context, message *tgbotapi.Message) (*models.Session, bool) {
	session, err := b.openSession(ctx)
	if errors.Is(err, roster.ErrSessionClosed) {
		errorID := b.sendMessage(message.Chat.ID, sessionClosedTxt)
		b.scheduleDelete(message.Chat.ID, errorID, deleteDelayConfirm)
		b.states.clear(message.From.ID)
		return nil, false
	}
	if err != nil {
		log.Printf("failed to resolve session: %v", err)
		metrics.ErrorsTotal.WithLabelValues("session_resolve").Inc()
		return nil, false
	}

	return session, true
}

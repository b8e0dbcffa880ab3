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
	"github.com/KirkDiggler/matchday/internal/services/directory"
	"github.com/KirkDiggler/matchday/internal/services/publisher"
	"github.com/KirkDiggler/matchday/internal/services/roster"
)

const (
	wrongChatText    = "Этот бот работает в другой группе."
	sessionClosedTxt = "Сессия закрыта."
	flowErrorText    = "Произошла ошибка. Попробуй ещё раз."
)

func (b *Bot) handleCallback(ctx context.Context, callback *tgbotapi.CallbackQuery) {
	if callback.Message == nil {
		b.answerCallback(callback.ID, "")
		return
	}

	if callback.Message.Chat.ID != b.chatID {
		b.answerCallback(callback.ID, wrongChatText)
		return
	}

	data := callback.Data
	switch {
	case strings.HasPrefix(data, callbackStatusPrefix):
		b.instrument("status_callback", func() { b.handleStatusCallback(ctx, callback) })
	case strings.HasPrefix(data, callbackTeamPrefix):
		b.instrument("team_callback", func() { b.handleTeamCallback(ctx, callback) })
	case data == callbackAddGuest:
		b.instrument("add_guest", func() { b.handleAddGuestCallback(ctx, callback) })
	case data == callbackDeleteGuest:
		b.instrument("delete_guest", func() { b.handleDeleteGuestCallback(ctx, callback) })
	case data == callbackChangeTeam:
		b.instrument("change_team", func() { b.handleChangeTeamCallback(ctx, callback) })
	default:
		b.answerCallback(callback.ID, "")
	}
}

// handleStatusCallback records a vote, detouring through the name and team
// flows when the voter's profile is incomplete
func (b *Bot) handleStatusCallback(ctx context.Context, callback *tgbotapi.CallbackQuery) {
	metrics.CallbacksTotal.WithLabelValues("status").Inc()

	status := models.Status(strings.TrimPrefix(callback.Data, callbackStatusPrefix))
	if !status.IsValid() {
		b.answerCallback(callback.ID, "Неизвестный статус.")
		return
	}

	userID := callback.From.ID
	chatID := callback.Message.Chat.ID

	profile, err := b.directory.GetProfile(ctx, &directory.GetProfileInput{UserID: userID})
	if err != nil {
		if !errors.Is(err, directory.ErrProfileNotFound) {
			log.Printf("failed to load profile for user %d: %v", userID, err)
			metrics.ErrorsTotal.WithLabelValues("profile_load").Inc()
			b.answerCallback(callback.ID, flowErrorText)
			return
		}

		// First-time voter, ask for a last name
		b.states.set(userID, pendingState{kind: pendingVoteLastName, status: status})
		promptID := b.sendMessage(chatID, "Пожалуйста, отправь свою фамилию.")
		b.scheduleDelete(chatID, promptID, deleteDelayPrompt)
		b.answerCallback(callback.ID, "")
		return
	}

	user := profile.User
	if user.Team == "" {
		b.states.set(userID, pendingState{
			kind:     pendingVoteTeam,
			status:   status,
			lastName: user.LastName,
		})
		promptID := b.sendKeyboard(chatID, "Выбери свою команду:", teamKeyboard())
		b.scheduleDelete(chatID, promptID, deleteDelayPrompt)
		b.answerCallback(callback.ID, "")
		return
	}

	session, ok := b.currentSession(ctx, callback.ID)
	if !ok {
		return
	}

	if err := b.roster.AddResponse(ctx, &roster.AddResponseInput{
		SessionID: session.ID,
		ChatID:    b.chatID,
		UserID:    userID,
		LastName:  user.LastName,
		Status:    status,
		Team:      user.Team,
		IsGoalie:  user.IsGoalie,
	}); err != nil {
		log.Printf("failed to record response for user %d: %v", userID, err)
		metrics.ErrorsTotal.WithLabelValues("add_response").Inc()
		b.answerCallback(callback.ID, flowErrorText)
		return
	}
	metrics.ResponsesTotal.WithLabelValues(string(status)).Inc()

	b.publishSummary(ctx, session)
	b.answerCallback(callback.ID, "")
}

// handleTeamCallback routes a team pick by the user's in-flight flow
func (b *Bot) handleTeamCallback(ctx context.Context, callback *tgbotapi.CallbackQuery) {
	team := models.Team(strings.TrimPrefix(callback.Data, callbackTeamPrefix))
	if !team.IsValid() {
		b.answerCallback(callback.ID, "Неизвестная команда.")
		return
	}

	state := b.states.get(callback.From.ID)
	switch state.kind {
	case pendingVoteTeam:
		b.finishVote(ctx, callback, state, team)
	case pendingGuestTeam:
		b.finishAddGuest(ctx, callback, state, team)
	case pendingChangeTeamSelect:
		b.finishChangeTeam(ctx, callback, state, team)
	default:
		b.answerCallback(callback.ID, "")
	}
}

func (b *Bot) finishVote(ctx context.Context, callback *tgbotapi.CallbackQuery, state pendingState, team models.Team) {
	metrics.CallbacksTotal.WithLabelValues("team_select").Inc()

	userID := callback.From.ID
	chatID := callback.Message.Chat.ID

	if state.lastName == "" || state.status == "" {
		b.answerCallback(callback.ID, flowErrorText)
		b.states.clear(userID)
		return
	}

	if _, err := b.directory.SaveProfile(ctx, &directory.SaveProfileInput{
		UserID:   userID,
		LastName: state.lastName,
		Team:     team,
	}); err != nil {
		log.Printf("failed to save profile for user %d: %v", userID, err)
		metrics.ErrorsTotal.WithLabelValues("profile_save").Inc()
		b.answerCallback(callback.ID, flowErrorText)
		return
	}

	session, ok := b.currentSession(ctx, callback.ID)
	if !ok {
		b.states.clear(userID)
		return
	}

	if err := b.roster.AddResponse(ctx, &roster.AddResponseInput{
		SessionID: session.ID,
		ChatID:    b.chatID,
		UserID:    userID,
		LastName:  state.lastName,
		Status:    state.status,
		Team:      team,
	}); err != nil {
		log.Printf("failed to record response for user %d: %v", userID, err)
		metrics.ErrorsTotal.WithLabelValues("add_response").Inc()
		b.answerCallback(callback.ID, flowErrorText)
		return
	}
	metrics.ResponsesTotal.WithLabelValues(string(state.status)).Inc()
	metrics.TeamSelectionsTotal.WithLabelValues(string(team)).Inc()

	b.publishSummary(ctx, session)
	b.states.clear(userID)

	b.deleteMessageSafe(ctx, chatID, callback.Message.MessageID)
	confirmID := b.sendMessage(chatID, fmt.Sprintf("✅ %s (%s) добавлен в список.", state.lastName, team.Display()))
	b.scheduleDelete(chatID, confirmID, deleteDelayConfirm)

	b.answerCallback(callback.ID, "")
}

func (b *Bot) finishAddGuest(ctx context.Context, callback *tgbotapi.CallbackQuery, state pendingState, team models.Team) {
	metrics.CallbacksTotal.WithLabelValues("guest_team_select").Inc()

	userID := callback.From.ID
	chatID := callback.Message.Chat.ID

	if state.lastName == "" || state.sessionID == 0 {
		b.answerCallback(callback.ID, flowErrorText)
		b.states.clear(userID)
		return
	}

	if _, err := b.roster.AddGuest(ctx, &roster.AddGuestInput{
		SessionID:     state.sessionID,
		ChatID:        b.chatID,
		LastName:      state.lastName,
		Team:          team,
		AddedByUserID: state.addedByUserID,
	}); err != nil {
		log.Printf("failed to add guest %q: %v", state.lastName, err)
		metrics.ErrorsTotal.WithLabelValues("add_guest").Inc()
		b.answerCallback(callback.ID, flowErrorText)
		return
	}
	metrics.ResponsesTotal.WithLabelValues(string(models.StatusYes)).Inc()
	metrics.GuestsAddedTotal.Inc()
	metrics.TeamSelectionsTotal.WithLabelValues(string(team)).Inc()

	if session, ok := b.currentSession(ctx, ""); ok {
		b.publishSummary(ctx, session)
	}
	b.states.clear(userID)

	b.deleteMessageSafe(ctx, chatID, callback.Message.MessageID)
	confirmID := b.sendMessage(chatID, fmt.Sprintf("✅ Гость '%s' (%s) добавлен в список.", state.lastName, team.Display()))
	b.scheduleDelete(chatID, confirmID, deleteDelayConfirm)

	b.answerCallback(callback.ID, "")
}

func (b *Bot) finishChangeTeam(ctx context.Context, callback *tgbotapi.CallbackQuery, state pendingState, team models.Team) {
	metrics.CallbacksTotal.WithLabelValues("change_team_select").Inc()

	userID := callback.From.ID
	chatID := callback.Message.Chat.ID

	if state.lastName == "" || state.sessionID == 0 {
		b.answerCallback(callback.ID, flowErrorText)
		b.states.clear(userID)
		return
	}

	updated, err := b.roster.UpdateResponseTeam(ctx, &roster.UpdateResponseTeamInput{
		SessionID: state.sessionID,
		LastName:  state.lastName,
		Team:      team,
	})
	if err != nil {
		log.Printf("failed to change team for %q: %v", state.lastName, err)
		metrics.ErrorsTotal.WithLabelValues("change_team").Inc()
		b.answerCallback(callback.ID, flowErrorText)
		return
	}

	b.states.clear(userID)
	b.deleteMessageSafe(ctx, chatID, callback.Message.MessageID)

	var confirmID int
	if updated {
		metrics.TeamChangesTotal.WithLabelValues(string(team)).Inc()
		if session, ok := b.currentSession(ctx, ""); ok {
			b.publishSummary(ctx, session)
		}
		confirmID = b.sendMessage(chatID, fmt.Sprintf("✅ Команда участника '%s' изменена на %s.", state.lastName, team.Display()))
	} else {
		confirmID = b.sendMessage(chatID, fmt.Sprintf("❌ Участник с фамилией '%s' не найден в списке.", state.lastName))
	}
	b.scheduleDelete(chatID, confirmID, deleteDelayNotice)

	b.answerCallback(callback.ID, "")
}

func (b *Bot) handleAddGuestCallback(ctx context.Context, callback *tgbotapi.CallbackQuery) {
	metrics.CallbacksTotal.WithLabelValues("add_guest").Inc()

	if _, ok := b.currentSession(ctx, callback.ID); !ok {
		return
	}

	if !b.isChatAdmin(callback.Message.Chat.ID, callback.From.ID) {
		b.answerCallbackAlert(callback.ID, "Только администраторы могут добавлять гостей.")
		return
	}

	b.states.set(callback.From.ID, pendingState{kind: pendingGuestLastName})
	promptID := b.sendMessage(callback.Message.Chat.ID, "Введите фамилию участника, который придёт с вами:")
	b.scheduleDelete(callback.Message.Chat.ID, promptID, deleteDelayPrompt)
	b.answerCallback(callback.ID, "")
}

func (b *Bot) handleDeleteGuestCallback(ctx context.Context, callback *tgbotapi.CallbackQuery) {
	metrics.CallbacksTotal.WithLabelValues("delete_guest").Inc()

	if _, ok := b.currentSession(ctx, callback.ID); !ok {
		return
	}

	if !b.isChatAdmin(callback.Message.Chat.ID, callback.From.ID) {
		b.answerCallbackAlert(callback.ID, "Только администраторы могут удалять участников.")
		return
	}

	b.states.set(callback.From.ID, pendingState{kind: pendingDeleteLastName})
	promptID := b.sendMessage(callback.Message.Chat.ID, "Введите фамилию участника, которого нужно удалить из списка:")
	b.scheduleDelete(callback.Message.Chat.ID, promptID, deleteDelayPrompt)
	b.answerCallback(callback.ID, "")
}

func (b *Bot) handleChangeTeamCallback(ctx context.Context, callback *tgbotapi.CallbackQuery) {
	metrics.CallbacksTotal.WithLabelValues("change_team").Inc()

	if _, ok := b.currentSession(ctx, callback.ID); !ok {
		return
	}

	if !b.isChatAdmin(callback.Message.Chat.ID, callback.From.ID) {
		b.answerCallbackAlert(callback.ID, "Только администраторы могут изменять команду участников.")
		return
	}

	b.states.set(callback.From.ID, pendingState{kind: pendingChangeTeamLastName})
	promptID := b.sendMessage(callback.Message.Chat.ID, "Введите фамилию участника, которому нужно изменить команду:")
	b.scheduleDelete(callback.Message.Chat.ID, promptID, deleteDelayPrompt)
	b.answerCallback(callback.ID, "")
}

// openSession resolves the chat's session, rejecting a closed one with
// roster.ErrSessionClosed
func (b *Bot) openSession(ctx context.Context) (*models.Session, error) {
	out, err := b.roster.GetOrCreateSession(ctx, &roster.GetOrCreateSessionInput{ChatID: b.chatID})
	if err != nil {
		return nil, err
	}

	if out.Session.IsClosed {
		return nil, roster.ErrSessionClosed
	}

	return out.Session, nil
}

// currentSession resolves the open session and rejects closed ones. When
// callbackID is set the rejection is surfaced as a callback answer.
func (b *Bot) currentSession(ctx context.Context, callbackID string) (*models.Session, bool) {
	session, err := b.openSession(ctx)
	if errors.Is(err, roster.ErrSessionClosed) {
		if callbackID != "" {
			b.answerCallback(callbackID, sessionClosedTxt)
		}
		return nil, false
	}
	if err != nil {
		log.Printf("failed to resolve session: %v", err)
		metrics.ErrorsTotal.WithLabelValues("session_resolve").Inc()
		if callbackID != "" {
			b.answerCallback(callbackID, flowErrorText)
		}
		return nil, false
	}

	return session, true
}

// publishSummary refreshes the outward summary and the player gauges
func (b *Bot) publishSummary(ctx context.Context, session *models.Session) {
	if err := b.publisher.UpdateSummary(ctx, &publisher.UpdateSummaryInput{Session: session}); err != nil {
		log.Printf("failed to publish summary for session %d: %v", session.ID, err)
		metrics.ErrorsTotal.WithLabelValues("publish").Inc()
	}

	counts, err := b.roster.GetPlayerCounts(ctx, &roster.GetPlayerCountsInput{SessionID: session.ID})
	if err != nil {
		log.Printf("failed to count players for session %d: %v", session.ID, err)
		return
	}
	metrics.PlayersCurrent.WithLabelValues(string(models.StatusYes)).Set(float64(counts.Yes))
	metrics.PlayersCurrent.WithLabelValues(string(models.StatusMaybe)).Set(float64(counts.Maybe))
	metrics.PlayersCurrent.WithLabelValues(string(models.StatusNo)).Set(float64(counts.No))
}

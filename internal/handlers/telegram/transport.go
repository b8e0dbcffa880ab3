package telegram

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/KirkDiggler/matchday/internal/services/publisher"
)

// Transport adapts the Telegram Bot API to the publisher's transport
// contract, folding the API's string-typed edit failures into sentinel
// errors the publisher can branch on.
type Transport struct {
	api *tgbotapi.BotAPI
}

// NewTransport wraps a Telegram API client
func NewTransport(api *tgbotapi.BotAPI) *Transport {
	return &Transport{api: api}
}

// SendMessage posts a plain text message and returns its message ID
func (t *Transport) SendMessage(_ context.Context, chatID int64, text string) (int, error) {
	sent, err := t.api.Send(tgbotapi.NewMessage(chatID, text))
	if err != nil {
		return 0, err
	}
	return sent.MessageID, nil
}

// EditMessageText rewrites an existing message in place
func (t *Transport) EditMessageText(_ context.Context, chatID int64, messageID int, text string) error {
	_, err := t.api.Send(tgbotapi.NewEditMessageText(chatID, messageID, text))
	return mapEditError(err)
}

// DeleteMessage removes a message
func (t *Transport) DeleteMessage(_ context.Context, chatID int64, messageID int) error {
	_, err := t.api.Request(tgbotapi.NewDeleteMessage(chatID, messageID))
	return err
}

// PinMessage pins a message without notifying the chat
func (t *Transport) PinMessage(_ context.Context, chatID int64, messageID int) error {
	_, err := t.api.Request(tgbotapi.PinChatMessageConfig{
		ChatID:              chatID,
		MessageID:           messageID,
		DisableNotification: true,
	})
	return err
}

// UnpinMessage unpins a message
func (t *Transport) UnpinMessage(_ context.Context, chatID int64, messageID int) error {
	_, err := t.api.Request(tgbotapi.UnpinChatMessageConfig{
		ChatID:    chatID,
		MessageID: messageID,
	})
	return err
}

// mapEditError translates the Telegram API's edit failures. The API reports
// both outcomes as generic bad requests distinguishable only by text.
func mapEditError(err error) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	if strings.Contains(msg, "message is not modified") {
		return publisher.ErrNotModified
	}
	if strings.Contains(msg, "message to edit not found") {
		return publisher.ErrMessageNotFound
	}
	return err
}

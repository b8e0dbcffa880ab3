// Package telegram connects the bot to the Telegram API: long-poll dispatch,
// command and button handlers, and the multi-step input flows.
package telegram

import (
	"context"
	"log"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/KirkDiggler/matchday/internal/services/directory"
	"github.com/KirkDiggler/matchday/internal/services/publisher"
	"github.com/KirkDiggler/matchday/internal/services/roster"
)

// BotError is a custom error type for bot-related errors
type BotError string

// Error implements the error interface
func (e BotError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig    BotError = "config cannot be nil"
	ErrNilAPI       BotError = "telegram api cannot be nil"
	ErrNilRoster    BotError = "roster service cannot be nil"
	ErrNilDirectory BotError = "directory service cannot be nil"
	ErrNilPublisher BotError = "publisher service cannot be nil"
	ErrNoChatID     BotError = "chat ID cannot be empty"
)

// Config contains the dependencies for creating a new bot
type Config struct {
	API       *tgbotapi.BotAPI
	Roster    roster.Service
	Directory directory.Service
	Publisher publisher.Service

	// ChatID is the one group the bot serves
	ChatID int64

	// AdminIDs always pass the admin check
	AdminIDs map[int64]bool
}

// Bot dispatches inbound updates to handlers
type Bot struct {
	api       *tgbotapi.BotAPI
	transport *Transport
	roster    roster.Service
	directory directory.Service
	publisher publisher.Service

	chatID   int64
	adminIDs map[int64]bool

	states *stateStore

	// Last /start or /status prompt message per chat, replaced on reuse
	startMu   sync.Mutex
	lastStart map[int64]int

	done chan struct{}
	wg   sync.WaitGroup
}

// New creates a new bot with the provided configuration
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.API == nil {
		return nil, ErrNilAPI
	}

	if cfg.Roster == nil {
		return nil, ErrNilRoster
	}

	if cfg.Directory == nil {
		return nil, ErrNilDirectory
	}

	if cfg.Publisher == nil {
		return nil, ErrNilPublisher
	}

	if cfg.ChatID == 0 {
		return nil, ErrNoChatID
	}

	adminIDs := cfg.AdminIDs
	if adminIDs == nil {
		adminIDs = make(map[int64]bool)
	}

	return &Bot{
		api:       cfg.API,
		transport: NewTransport(cfg.API),
		roster:    cfg.Roster,
		directory: cfg.Directory,
		publisher: cfg.Publisher,
		chatID:    cfg.ChatID,
		adminIDs:  adminIDs,
		states:    newStateStore(),
		lastStart: make(map[int64]int),
		done:      make(chan struct{}),
	}, nil
}

// Transport returns the bot's transport adapter for wiring into other
// components
func (b *Bot) Transport() *Transport {
	return b.transport
}

// SendPrompt posts the pinned scheduler prompt with the status keyboard and
// returns its message ID
func (b *Bot) SendPrompt(_ context.Context, chatID int64) (int, error) {
	msg := tgbotapi.NewMessage(chatID, "Если планируешь посетить игру в среду на «Бобрах», нажми на кнопку")
	msg.ReplyMarkup = promptKeyboard()
	sent, err := b.api.Send(msg)
	if err != nil {
		return 0, err
	}
	return sent.MessageID, nil
}

// Start begins long-polling for updates. Each update is handled in its own
// goroutine; handlers serialize shared state themselves.
func (b *Bot) Start() {
	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 30

	updates := b.api.GetUpdatesChan(updateConfig)

	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		for update := range updates {
			update := update
			b.wg.Add(1)
			go func() {
				defer b.wg.Done()
				b.dispatch(update)
			}()
		}
	}()

	log.Printf("bot started as @%s", b.api.Self.UserName)
}

// Stop halts polling and waits for in-flight handlers
func (b *Bot) Stop() {
	close(b.done)
	b.api.StopReceivingUpdates()
	b.wg.Wait()
}

func (b *Bot) dispatch(update tgbotapi.Update) {
	ctx := context.Background()

	switch {
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil && update.Message.IsCommand():
		b.handleCommand(ctx, update.Message)
	case update.Message != nil && update.Message.Text != "":
		b.handleText(ctx, update.Message)
	}
}

func (b *Bot) getLastStartMessage(chatID int64) int {
	b.startMu.Lock()
	defer b.startMu.Unlock()
	return b.lastStart[chatID]
}

func (b *Bot) setLastStartMessage(chatID int64, messageID int) {
	b.startMu.Lock()
	defer b.startMu.Unlock()
	b.lastStart[chatID] = messageID
}

// sendMessage posts a plain text message and returns its ID, 0 on failure
func (b *Bot) sendMessage(chatID int64, text string) int {
	sent, err := b.api.Send(tgbotapi.NewMessage(chatID, text))
	if err != nil {
		log.Printf("failed to send message to chat %d: %v", chatID, err)
		return 0
	}
	return sent.MessageID
}

// sendKeyboard posts a message with an inline keyboard
func (b *Bot) sendKeyboard(chatID int64, text string, keyboard tgbotapi.InlineKeyboardMarkup) int {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = keyboard
	sent, err := b.api.Send(msg)
	if err != nil {
		log.Printf("failed to send keyboard message to chat %d: %v", chatID, err)
		return 0
	}
	return sent.MessageID
}

// answerCallback acknowledges a button press with optional toast text
func (b *Bot) answerCallback(callbackID, text string) {
	if _, err := b.api.Request(tgbotapi.NewCallback(callbackID, text)); err != nil {
		log.Printf("failed to answer callback: %v", err)
	}
}

// answerCallbackAlert acknowledges a button press with a modal alert
func (b *Bot) answerCallbackAlert(callbackID, text string) {
	if _, err := b.api.Request(tgbotapi.NewCallbackWithAlert(callbackID, text)); err != nil {
		log.Printf("failed to answer callback: %v", err)
	}
}

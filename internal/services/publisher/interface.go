package publisher

import (
	"context"
)

//go:generate mockgen -destination=mocks/mock_service.go -package=mocks -source=interface.go

// Transport is the chat API surface the publisher needs. Implementations
// must map a provider's "content identical" and "message missing" edit
// failures onto ErrNotModified and ErrMessageNotFound so the publisher can
// tell a harmless no-op from a lost message.
type Transport interface {
	// SendMessage posts a new message and returns its identity
	SendMessage(ctx context.Context, chatID int64, text string) (int, error)

	// EditMessageText rewrites an existing message in place
	EditMessageText(ctx context.Context, chatID int64, messageID int, text string) error

	// DeleteMessage removes a message, best effort
	DeleteMessage(ctx context.Context, chatID int64, messageID int) error

	// PinMessage pins a message in the chat, best effort
	PinMessage(ctx context.Context, chatID int64, messageID int) error

	// UnpinMessage unpins a message in the chat, best effort
	UnpinMessage(ctx context.Context, chatID int64, messageID int) error
}

// Service keeps the outward summary message in step with the roster
type Service interface {
	// EnsureSummary renders the session's summary and edits the recorded
	// message in place, falling back to posting a fresh one
	EnsureSummary(ctx context.Context, input *EnsureSummaryInput) error

	// UpdateSummary reloads the session before publishing so concurrent
	// voters converge on the freshest recorded message identity
	UpdateSummary(ctx context.Context, input *UpdateSummaryInput) error
}

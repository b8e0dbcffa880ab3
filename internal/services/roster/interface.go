package roster

import (
	"context"

	"github.com/KirkDiggler/matchday/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/matchday/internal/services/roster Service

// Service defines the interface for session and response management
type Service interface {
	// GetOrCreateSession resolves the chat's session for the current
	// occurrence, closing stale sessions and creating a new one if needed
	GetOrCreateSession(ctx context.Context, input *GetOrCreateSessionInput) (*GetOrCreateSessionOutput, error)

	// GetOpenSession returns the chat's open session straight from the
	// store, bypassing the cache, or ErrSessionNotFound
	GetOpenSession(ctx context.Context, input *GetOpenSessionInput) (*models.Session, error)

	// GetSessionByDate returns the latest session for a chat and date
	// straight from the store, bypassing the cache
	GetSessionByDate(ctx context.Context, input *GetSessionByDateInput) (*models.Session, error)

	// CloseSession closes a session and invalidates the chat's cache entry
	CloseSession(ctx context.Context, input *CloseSessionInput) error

	// SetListMessage records the summary message identity on a session
	SetListMessage(ctx context.Context, input *SetListMessageInput) error

	// SetPinnedMessage records the pinned prompt identity on a session
	SetPinnedMessage(ctx context.Context, input *SetPinnedMessageInput) error

	// AddResponse records or overwrites a player's vote
	AddResponse(ctx context.Context, input *AddResponseInput) error

	// AddGuest records an attending guest under a synthetic negative user ID
	AddGuest(ctx context.Context, input *AddGuestInput) (*AddGuestOutput, error)

	// DeleteResponseByName removes a response by case-insensitive last name
	DeleteResponseByName(ctx context.Context, input *DeleteResponseByNameInput) (bool, error)

	// UpdateResponseTeam rewrites a response's team by case-insensitive last name
	UpdateResponseTeam(ctx context.Context, input *UpdateResponseTeamInput) (bool, error)

	// ListResponses returns a session's responses, first-to-respond first
	ListResponses(ctx context.Context, input *ListResponsesInput) ([]*models.Response, error)

	// GetPlayerCounts tallies responses per canonical status
	GetPlayerCounts(ctx context.Context, input *GetPlayerCountsInput) (*models.PlayerCounts, error)

	// InvalidateCache drops the chat's cached session snapshot
	InvalidateCache(chatID int64)
}

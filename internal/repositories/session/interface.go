package session

import (
	"context"

	"github.com/KirkDiggler/matchday/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/matchday/internal/repositories/session Repository

// Repository defines the interface for session and response persistence
type Repository interface {
	// CreateSession creates a new open session for a chat and target date
	CreateSession(ctx context.Context, input *CreateSessionInput) (*models.Session, error)

	// GetSession retrieves a session by ID
	GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error)

	// GetOpenSession retrieves the chat's current open session
	GetOpenSession(ctx context.Context, input *GetOpenSessionInput) (*models.Session, error)

	// GetSessionByDate retrieves the latest session for a chat and target
	// date, open or closed
	GetSessionByDate(ctx context.Context, input *GetSessionByDateInput) (*models.Session, error)

	// CloseSession marks a session closed; closing a closed session is a no-op
	CloseSession(ctx context.Context, input *CloseSessionInput) error

	// SetListMessageID records the summary message identity on a session.
	// A zero MessageID clears it.
	SetListMessageID(ctx context.Context, input *SetListMessageIDInput) error

	// SetPinnedMessageID records the pinned prompt message identity on a session
	SetPinnedMessageID(ctx context.Context, input *SetPinnedMessageIDInput) error

	// UpsertResponse creates or overwrites the response for (session, user)
	UpsertResponse(ctx context.Context, input *UpsertResponseInput) error

	// ListResponses returns a session's responses ordered by UpdatedAt ascending
	ListResponses(ctx context.Context, input *ListResponsesInput) ([]*models.Response, error)

	// DeleteResponseByName removes the first response whose last name
	// matches case-insensitively, reporting whether one was removed
	DeleteResponseByName(ctx context.Context, input *DeleteResponseByNameInput) (bool, error)

	// UpdateResponseTeamByName rewrites the team of the first response
	// whose last name matches case-insensitively
	UpdateResponseTeamByName(ctx context.Context, input *UpdateResponseTeamByNameInput) (bool, error)

	// AllocateGuestID returns the next synthetic negative user ID for a session
	AllocateGuestID(ctx context.Context, input *AllocateGuestIDInput) (int64, error)
}

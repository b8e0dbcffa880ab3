package roster

import (
	"time"

	"github.com/KirkDiggler/matchday/internal/common/clock"
	"github.com/KirkDiggler/matchday/internal/models"
	sessionRepo "github.com/KirkDiggler/matchday/internal/repositories/session"
	"github.com/KirkDiggler/matchday/internal/schedule"
)

// DefaultCacheTTL bounds how long a session snapshot is served from memory
const DefaultCacheTTL = 60 * time.Second

// Config holds configuration for the roster service
type Config struct {
	// Repository dependencies
	SessionRepo sessionRepo.Repository

	// Service dependencies
	Resolver *schedule.Resolver
	Clock    clock.Clock

	// CacheTTL overrides DefaultCacheTTL when non-zero
	CacheTTL time.Duration
}

// GetOrCreateSessionInput contains parameters for resolving the current session
type GetOrCreateSessionInput struct {
	ChatID int64

	// ForceRefresh bypasses the cache and re-reads the store
	ForceRefresh bool
}

// GetOrCreateSessionOutput contains the resolved session
type GetOrCreateSessionOutput struct {
	Session *models.Session
}

// GetOpenSessionInput contains parameters for reading the open session
type GetOpenSessionInput struct {
	ChatID int64
}

// GetSessionByDateInput contains parameters for reading a session by date
type GetSessionByDateInput struct {
	ChatID     int64
	TargetDate string
}

// CloseSessionInput contains parameters for closing a session
type CloseSessionInput struct {
	SessionID int64
	ChatID    int64
}

// SetListMessageInput contains parameters for recording the summary message
type SetListMessageInput struct {
	SessionID int64
	ChatID    int64
	MessageID int
}

// SetPinnedMessageInput contains parameters for recording the pinned prompt
type SetPinnedMessageInput struct {
	SessionID int64
	ChatID    int64
	MessageID int
}

// AddResponseInput contains parameters for recording a vote
type AddResponseInput struct {
	SessionID int64
	ChatID    int64
	UserID    int64
	LastName  string
	Status    models.Status
	Team      models.Team
	IsGoalie  bool
}

// AddGuestInput contains parameters for recording a guest
type AddGuestInput struct {
	SessionID int64
	ChatID    int64
	LastName  string
	Team      models.Team

	// AddedByUserID is the admin who brought the guest, written to the audit log
	AddedByUserID int64
}

// AddGuestOutput contains the allocated guest identity
type AddGuestOutput struct {
	GuestID int64
}

// DeleteResponseByNameInput contains parameters for removing a response
type DeleteResponseByNameInput struct {
	SessionID int64
	LastName  string
}

// UpdateResponseTeamInput contains parameters for rewriting a response's team
type UpdateResponseTeamInput struct {
	SessionID int64
	LastName  string
	Team      models.Team
}

// ListResponsesInput contains parameters for listing responses
type ListResponsesInput struct {
	SessionID int64
}

// GetPlayerCountsInput contains parameters for tallying responses
type GetPlayerCountsInput struct {
	SessionID int64
}

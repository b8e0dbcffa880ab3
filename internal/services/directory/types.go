package directory

import (
	"github.com/KirkDiggler/matchday/internal/common/clock"
	"github.com/KirkDiggler/matchday/internal/models"
	profileRepo "github.com/KirkDiggler/matchday/internal/repositories/profile"
)

// DefaultCacheSize bounds the in-memory profile cache
const DefaultCacheSize = 256

// Config holds configuration for the directory service
type Config struct {
	// Repository dependencies
	ProfileRepo profileRepo.Repository

	// Service dependencies
	Clock clock.Clock

	// CacheSize bounds the read-through cache; DefaultCacheSize when zero
	CacheSize int
}

// GetProfileInput contains parameters for retrieving a profile
type GetProfileInput struct {
	UserID int64
}

// GetProfileOutput contains the retrieved profile
type GetProfileOutput struct {
	User *models.User
}

// SaveProfileInput contains parameters for saving a profile
type SaveProfileInput struct {
	UserID   int64
	LastName string
	Team     models.Team
	IsGoalie bool
}

// SaveProfileOutput contains the saved profile
type SaveProfileOutput struct {
	User *models.User
}

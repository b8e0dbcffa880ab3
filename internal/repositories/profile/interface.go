package profile

import (
	"context"

	"github.com/KirkDiggler/matchday/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/matchday/internal/repositories/profile Repository

// Repository defines the interface for user profile persistence
type Repository interface {
	// SaveProfile persists a user profile
	SaveProfile(ctx context.Context, input *SaveProfileInput) error

	// GetProfile retrieves a user profile by ID
	GetProfile(ctx context.Context, input *GetProfileInput) (*models.User, error)
}

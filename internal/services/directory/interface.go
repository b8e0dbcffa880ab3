package directory

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/matchday/internal/services/directory Service

// Service defines the interface for the user directory
type Service interface {
	// GetProfile returns a user's remembered profile, or ErrProfileNotFound
	GetProfile(ctx context.Context, input *GetProfileInput) (*GetProfileOutput, error)

	// SaveProfile remembers a user's last name, team and goalie flag
	SaveProfile(ctx context.Context, input *SaveProfileInput) (*SaveProfileOutput, error)
}

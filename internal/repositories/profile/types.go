package profile

import "github.com/KirkDiggler/matchday/internal/models"

// SaveProfileInput contains parameters for saving a user profile
type SaveProfileInput struct {
	User *models.User
}

// GetProfileInput contains parameters for retrieving a user profile
type GetProfileInput struct {
	UserID int64
}

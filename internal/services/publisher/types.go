package publisher

import (
	"github.com/KirkDiggler/matchday/internal/models"
	"github.com/KirkDiggler/matchday/internal/services/roster"
)

// Config contains the dependencies for creating a new publisher service
type Config struct {
	Roster    roster.Service
	Transport Transport
}

// EnsureSummaryInput contains the session whose summary is published
type EnsureSummaryInput struct {
	Session *models.Session
}

// UpdateSummaryInput contains the session snapshot that triggered the update
type UpdateSummaryInput struct {
	Session *models.Session
}

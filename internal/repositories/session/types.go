package session

import "github.com/KirkDiggler/matchday/internal/models"

// CreateSessionInput contains parameters for creating a session
type CreateSessionInput struct {
	ChatID     int64
	TargetDate string
}

// GetSessionInput contains parameters for retrieving a session by ID
type GetSessionInput struct {
	SessionID int64
}

// GetOpenSessionInput contains parameters for retrieving a chat's open session
type GetOpenSessionInput struct {
	ChatID int64
}

// GetSessionByDateInput contains parameters for retrieving a session by date
type GetSessionByDateInput struct {
	ChatID     int64
	TargetDate string
}

// CloseSessionInput contains parameters for closing a session
type CloseSessionInput struct {
	SessionID int64
}

// SetListMessageIDInput contains parameters for recording the summary message
type SetListMessageIDInput struct {
	SessionID int64
	MessageID int
}

// SetPinnedMessageIDInput contains parameters for recording the pinned prompt
type SetPinnedMessageIDInput struct {
	SessionID int64
	MessageID int
}

// UpsertResponseInput contains parameters for creating or overwriting a response
type UpsertResponseInput struct {
	Response *models.Response
}

// ListResponsesInput contains parameters for listing a session's responses
type ListResponsesInput struct {
	SessionID int64
}

// DeleteResponseByNameInput contains parameters for removing a response by name
type DeleteResponseByNameInput struct {
	SessionID int64
	LastName  string
}

// UpdateResponseTeamByNameInput contains parameters for rewriting a response's team
type UpdateResponseTeamByNameInput struct {
	SessionID int64
	LastName  string
	Team      models.Team
}

// AllocateGuestIDInput contains parameters for allocating a guest ID
type AllocateGuestIDInput struct {
	SessionID int64
}

package models

import (
	"time"
)

// Status is a player's intent for a session
type Status string

const (
	// StatusYes means attending
	StatusYes Status = "YES"

	// StatusMaybe means undecided
	StatusMaybe Status = "MAYBE"

	// StatusNo means declining
	StatusNo Status = "NO"
)

// AllStatuses lists the canonical statuses in display order
var AllStatuses = []Status{StatusYes, StatusMaybe, StatusNo}

// IsValid reports whether the status is one of the canonical values
func (s Status) IsValid() bool {
	switch s {
	case StatusYes, StatusMaybe, StatusNo:
		return true
	}
	return false
}

// Response is one user's current intent for one session. At most one
// response exists per (session, user); re-voting overwrites.
type Response struct {
	// SessionID is the session this response belongs to
	SessionID int64

	// ChatID is the chat the session runs in
	ChatID int64

	// UserID is the voter's Telegram ID; guests use synthetic negative IDs
	UserID int64

	// LastName is the name snapshot taken at vote time
	LastName string

	// Status is the recorded intent
	Status Status

	// Team is the team snapshot taken at vote time, may be empty
	Team Team

	// IsGoalie marks goalkeepers; attending goalies are listed apart from
	// the skaters
	IsGoalie bool

	// UpdatedAt orders responses first-to-respond first
	UpdatedAt time.Time
}

// IsGuest reports whether the response was entered on someone's behalf
func (r *Response) IsGuest() bool {
	return r.UserID < 0
}

// PlayerCounts tallies a session's responses per canonical status
type PlayerCounts struct {
	Yes   int
	Maybe int
	No    int
}

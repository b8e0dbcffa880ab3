package models

import (
	"time"
)

// Team represents one of the two club teams
type Team string

const (
	// TeamArmada is the Армада team
	TeamArmada Team = "Армада"

	// TeamKabany is the Кабаны team
	TeamKabany Team = "Кабаны"
)

// AllTeams lists the known teams in display order
var AllTeams = []Team{TeamArmada, TeamKabany}

// teamEmoji maps a team to its chat emoji
var teamEmoji = map[Team]string{
	TeamArmada: "🛡️",
	TeamKabany: "🐗",
}

// IsValid reports whether the team is one of the known values
func (t Team) IsValid() bool {
	_, ok := teamEmoji[t]
	return ok
}

// Display returns the team name with its emoji suffix
func (t Team) Display() string {
	emoji, ok := teamEmoji[t]
	if !ok {
		return string(t)
	}
	return string(t) + " " + emoji
}

// User is a remembered player profile. Created on first vote, updated
// whenever the player re-supplies their name or team, never deleted.
type User struct {
	// UserID is the Telegram user ID
	UserID int64

	// LastName is the player's self-reported last name
	LastName string

	// Team is the player's team, empty until chosen
	Team Team

	// IsGoalie marks goalkeepers
	IsGoalie bool

	// UpdatedAt is when the profile was last written
	UpdatedAt time.Time
}

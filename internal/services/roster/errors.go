package roster

// RosterError is a custom error type for roster-related errors
type RosterError string

// Error implements the error interface
func (e RosterError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrSessionNotFound RosterError = "session not found"
	ErrSessionClosed   RosterError = "session is closed"
	ErrInvalidStatus   RosterError = "invalid response status"
	ErrInvalidTeam     RosterError = "invalid team"
	ErrEmptyLastName   RosterError = "last name cannot be empty"
	ErrNilConfig       RosterError = "config cannot be nil"
	ErrNilSessionRepo  RosterError = "session repository cannot be nil"
	ErrNilResolver     RosterError = "schedule resolver cannot be nil"
	ErrNilClock        RosterError = "clock cannot be nil"
)

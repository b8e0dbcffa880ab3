package telegram

import (
	"sync"

	"github.com/KirkDiggler/matchday/internal/models"
)

// pendingKind names the input a user's next message or button press is
// expected to supply
type pendingKind int

const (
	pendingNone pendingKind = iota

	// Voter supplied a status but has no stored last name yet
	pendingVoteLastName

	// Voter's last name is known, waiting for a team pick
	pendingVoteTeam

	// Admin is typing a guest's last name
	pendingGuestLastName

	// Guest's name captured, waiting for the guest's team pick
	pendingGuestTeam

	// Admin is typing the last name to remove from the roster
	pendingDeleteLastName

	// Admin is typing the last name whose team will change
	pendingChangeTeamLastName

	// Target named, waiting for the new team pick
	pendingChangeTeamSelect
)

// pendingState carries the data collected so far in a multi-step flow
type pendingState struct {
	kind pendingKind

	// Status the voter picked before the flow started
	status models.Status

	// LastName collected during the flow (voter, guest, or target)
	lastName string

	sessionID     int64
	addedByUserID int64
}

// stateStore tracks each user's in-flight flow. State lives in memory only;
// a restart drops unfinished flows and the user starts over from a button.
type stateStore struct {
	mu     sync.Mutex
	states map[int64]pendingState
}

func newStateStore() *stateStore {
	return &stateStore{states: make(map[int64]pendingState)}
}

func (s *stateStore) get(userID int64) pendingState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.states[userID]
}

func (s *stateStore) set(userID int64, state pendingState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[userID] = state
}

func (s *stateStore) clear(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.states, userID)
}

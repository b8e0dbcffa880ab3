package telegram

import (
	"testing"

	"github.com/KirkDiggler/matchday/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestStateStoreRoundTrip(t *testing.T) {
	store := newStateStore()

	assert.Equal(t, pendingNone, store.get(42).kind)

	store.set(42, pendingState{kind: pendingVoteLastName, status: models.StatusYes})
	state := store.get(42)
	assert.Equal(t, pendingVoteLastName, state.kind)
	assert.Equal(t, models.StatusYes, state.status)

	// Another user's flow is independent
	assert.Equal(t, pendingNone, store.get(43).kind)

	store.clear(42)
	assert.Equal(t, pendingNone, store.get(42).kind)
}

func TestStateStoreOverwrite(t *testing.T) {
	store := newStateStore()

	store.set(42, pendingState{kind: pendingVoteLastName, status: models.StatusYes})
	store.set(42, pendingState{kind: pendingVoteTeam, status: models.StatusYes, lastName: "Иванов"})

	state := store.get(42)
	assert.Equal(t, pendingVoteTeam, state.kind)
	assert.Equal(t, "Иванов", state.lastName)
}

func TestPromptKeyboardCallbackData(t *testing.T) {
	keyboard := promptKeyboard()

	var data []string
	for _, row := range keyboard.InlineKeyboard {
		for _, button := range row {
			data = append(data, *button.CallbackData)
		}
	}

	assert.Equal(t, []string{
		"status:YES",
		"status:MAYBE",
		"status:NO",
		"add_guest",
		"delete_guest",
		"change_team",
	}, data)
}

func TestTeamKeyboardCallbackData(t *testing.T) {
	keyboard := teamKeyboard()

	var data []string
	for _, row := range keyboard.InlineKeyboard {
		for _, button := range row {
			data = append(data, *button.CallbackData)
		}
	}

	assert.Equal(t, []string{"team:Армада", "team:Кабаны"}, data)
}

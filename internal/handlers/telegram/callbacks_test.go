package telegram

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/matchday/internal/models"
	"github.com/KirkDiggler/matchday/internal/services/roster"
	rosterMocks "github.com/KirkDiggler/matchday/internal/services/roster/mocks"
)

func TestOpenSessionRejectsClosedSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRoster := rosterMocks.NewMockService(ctrl)
	b := &Bot{roster: mockRoster, chatID: -100}
	ctx := context.Background()

	mockRoster.EXPECT().
		GetOrCreateSession(ctx, &roster.GetOrCreateSessionInput{ChatID: -100}).
		Return(&roster.GetOrCreateSessionOutput{
			Session: &models.Session{ID: 7, ChatID: -100, IsClosed: true},
		}, nil)

	session, err := b.openSession(ctx)
	assert.ErrorIs(t, err, roster.ErrSessionClosed)
	assert.Nil(t, session)
}

func TestOpenSessionReturnsOpenSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRoster := rosterMocks.NewMockService(ctrl)
	b := &Bot{roster: mockRoster, chatID: -100}
	ctx := context.Background()

	mockRoster.EXPECT().
		GetOrCreateSession(ctx, &roster.GetOrCreateSessionInput{ChatID: -100}).
		Return(&roster.GetOrCreateSessionOutput{
			Session: &models.Session{ID: 7, ChatID: -100, TargetDate: "2025-11-05"},
		}, nil)

	session, err := b.openSession(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), session.ID)
}

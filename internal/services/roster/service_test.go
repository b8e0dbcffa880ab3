package roster

import (
	"bytes"
	"context"
	"log"
	"os"
	"testing"
	"time"

	clockMocks "github.com/KirkDiggler/matchday/internal/common/clock/mocks"
	"github.com/KirkDiggler/matchday/internal/models"
	sessionRepo "github.com/KirkDiggler/matchday/internal/repositories/session"
	sessionMocks "github.com/KirkDiggler/matchday/internal/repositories/session/mocks"
	"github.com/KirkDiggler/matchday/internal/schedule"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RosterServiceTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockSessionRepo *sessionMocks.MockRepository
	mockClock       *clockMocks.MockClock
	svc             Service
	ctx             context.Context

	// Test data
	testTime   time.Time
	testChatID int64
	testDate   string

	expectedSession *models.Session
}

func (s *RosterServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockSessionRepo = sessionMocks.NewMockRepository(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.ctx = context.Background()

	// Monday 09:00 UTC resolves to Wednesday 2025-11-05
	s.testTime = time.Date(2025, 11, 3, 9, 0, 0, 0, time.UTC)
	s.testChatID = -100123456
	s.testDate = "2025-11-05"

	s.expectedSession = &models.Session{
		ID:         1,
		ChatID:     s.testChatID,
		TargetDate: s.testDate,
	}

	svc, err := NewService(&Config{
		SessionRepo: s.mockSessionRepo,
		Resolver: schedule.New(&schedule.Config{
			Weekday:  time.Wednesday,
			Location: time.UTC,
		}),
		Clock: s.mockClock,
	})
	s.Require().NoError(err)
	s.svc = svc
}

func (s *RosterServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRosterServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RosterServiceTestSuite))
}

func (s *RosterServiceTestSuite) expectNow() {
	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()
}

func (s *RosterServiceTestSuite) notFound() error {
	return sessionRepo.ErrSessionNotFound
}

func (s *RosterServiceTestSuite) TestGetOrCreateSessionCreatesWhenNoneExists() {
	s.expectNow()

	s.mockSessionRepo.EXPECT().
		GetOpenSession(s.ctx, &sessionRepo.GetOpenSessionInput{ChatID: s.testChatID}).
		Return(nil, s.notFound())
	s.mockSessionRepo.EXPECT().
		GetSessionByDate(s.ctx, &sessionRepo.GetSessionByDateInput{ChatID: s.testChatID, TargetDate: s.testDate}).
		Return(nil, s.notFound())
	s.mockSessionRepo.EXPECT().
		CreateSession(s.ctx, &sessionRepo.CreateSessionInput{ChatID: s.testChatID, TargetDate: s.testDate}).
		Return(s.expectedSession, nil)

	out, err := s.svc.GetOrCreateSession(s.ctx, &GetOrCreateSessionInput{ChatID: s.testChatID})
	s.Require().NoError(err)
	s.Equal(s.expectedSession, out.Session)
}

func (s *RosterServiceTestSuite) TestGetOrCreateSessionServesFromCache() {
	s.expectNow()

	// The store is consulted once; the second call within the TTL is
	// answered from the cache
	s.mockSessionRepo.EXPECT().
		GetOpenSession(s.ctx, gomock.Any()).
		Return(s.expectedSession, nil).
		Times(1)

	for i := 0; i < 2; i++ {
		out, err := s.svc.GetOrCreateSession(s.ctx, &GetOrCreateSessionInput{ChatID: s.testChatID})
		s.Require().NoError(err)
		s.Equal(s.expectedSession, out.Session)
	}
}

func (s *RosterServiceTestSuite) TestGetOrCreateSessionForceRefreshBypassesCache() {
	s.expectNow()

	s.mockSessionRepo.EXPECT().
		GetOpenSession(s.ctx, gomock.Any()).
		Return(s.expectedSession, nil).
		Times(2)

	_, err := s.svc.GetOrCreateSession(s.ctx, &GetOrCreateSessionInput{ChatID: s.testChatID})
	s.Require().NoError(err)

	_, err = s.svc.GetOrCreateSession(s.ctx, &GetOrCreateSessionInput{ChatID: s.testChatID, ForceRefresh: true})
	s.Require().NoError(err)
}

func (s *RosterServiceTestSuite) TestGetOrCreateSessionCacheExpires() {
	later := s.testTime.Add(2 * time.Minute)
	gomock.InOrder(
		s.mockClock.EXPECT().Now().Return(s.testTime),
		s.mockClock.EXPECT().Now().Return(later),
	)

	s.mockSessionRepo.EXPECT().
		GetOpenSession(s.ctx, gomock.Any()).
		Return(s.expectedSession, nil).
		Times(2)

	for i := 0; i < 2; i++ {
		_, err := s.svc.GetOrCreateSession(s.ctx, &GetOrCreateSessionInput{ChatID: s.testChatID})
		s.Require().NoError(err)
	}
}

func (s *RosterServiceTestSuite) TestGetOrCreateSessionClosesStaleOpenSession() {
	s.expectNow()

	stale := &models.Session{
		ID:         7,
		ChatID:     s.testChatID,
		TargetDate: "2025-10-29",
	}
	created := &models.Session{
		ID:         8,
		ChatID:     s.testChatID,
		TargetDate: s.testDate,
	}

	gomock.InOrder(
		s.mockSessionRepo.EXPECT().
			GetOpenSession(s.ctx, gomock.Any()).
			Return(stale, nil),
		s.mockSessionRepo.EXPECT().
			CloseSession(s.ctx, &sessionRepo.CloseSessionInput{SessionID: 7}).
			Return(nil),
		s.mockSessionRepo.EXPECT().
			GetSessionByDate(s.ctx, gomock.Any()).
			Return(nil, s.notFound()),
		s.mockSessionRepo.EXPECT().
			CreateSession(s.ctx, &sessionRepo.CreateSessionInput{ChatID: s.testChatID, TargetDate: s.testDate}).
			Return(created, nil),
	)

	out, err := s.svc.GetOrCreateSession(s.ctx, &GetOrCreateSessionInput{ChatID: s.testChatID})
	s.Require().NoError(err)
	s.Equal(created, out.Session)
}

func (s *RosterServiceTestSuite) TestGetOrCreateSessionRecoversByDate() {
	s.expectNow()

	// The open index missed the session but a date-keyed lookup finds it
	s.mockSessionRepo.EXPECT().
		GetOpenSession(s.ctx, gomock.Any()).
		Return(nil, s.notFound())
	s.mockSessionRepo.EXPECT().
		GetSessionByDate(s.ctx, gomock.Any()).
		Return(s.expectedSession, nil)

	out, err := s.svc.GetOrCreateSession(s.ctx, &GetOrCreateSessionInput{ChatID: s.testChatID})
	s.Require().NoError(err)
	s.Equal(s.expectedSession, out.Session)
}

func (s *RosterServiceTestSuite) TestGetOrCreateSessionNeverReusesClosedSession() {
	s.expectNow()

	closed := &models.Session{
		ID:         3,
		ChatID:     s.testChatID,
		TargetDate: s.testDate,
		IsClosed:   true,
	}
	fresh := &models.Session{
		ID:         4,
		ChatID:     s.testChatID,
		TargetDate: s.testDate,
	}

	// An admin closed the date-matching session; a new one is created for
	// the same date instead of reusing it
	s.mockSessionRepo.EXPECT().
		GetOpenSession(s.ctx, gomock.Any()).
		Return(nil, s.notFound())
	s.mockSessionRepo.EXPECT().
		GetSessionByDate(s.ctx, gomock.Any()).
		Return(closed, nil)
	s.mockSessionRepo.EXPECT().
		CreateSession(s.ctx, gomock.Any()).
		Return(fresh, nil)

	out, err := s.svc.GetOrCreateSession(s.ctx, &GetOrCreateSessionInput{ChatID: s.testChatID})
	s.Require().NoError(err)
	s.Equal(fresh, out.Session)
	s.False(out.Session.IsClosed)
}

func (s *RosterServiceTestSuite) TestCloseSessionInvalidatesCache() {
	s.expectNow()

	s.mockSessionRepo.EXPECT().
		GetOpenSession(s.ctx, gomock.Any()).
		Return(s.expectedSession, nil).
		Times(2)

	_, err := s.svc.GetOrCreateSession(s.ctx, &GetOrCreateSessionInput{ChatID: s.testChatID})
	s.Require().NoError(err)

	s.mockSessionRepo.EXPECT().
		CloseSession(s.ctx, &sessionRepo.CloseSessionInput{SessionID: 1}).
		Return(nil)

	err = s.svc.CloseSession(s.ctx, &CloseSessionInput{SessionID: 1, ChatID: s.testChatID})
	s.Require().NoError(err)

	// The next resolution goes back to the store
	_, err = s.svc.GetOrCreateSession(s.ctx, &GetOrCreateSessionInput{ChatID: s.testChatID})
	s.Require().NoError(err)
}

func (s *RosterServiceTestSuite) TestSetListMessageInvalidatesCache() {
	s.expectNow()

	s.mockSessionRepo.EXPECT().
		GetOpenSession(s.ctx, gomock.Any()).
		Return(s.expectedSession, nil).
		Times(2)

	_, err := s.svc.GetOrCreateSession(s.ctx, &GetOrCreateSessionInput{ChatID: s.testChatID})
	s.Require().NoError(err)

	s.mockSessionRepo.EXPECT().
		SetListMessageID(s.ctx, &sessionRepo.SetListMessageIDInput{SessionID: 1, MessageID: 99}).
		Return(nil)

	err = s.svc.SetListMessage(s.ctx, &SetListMessageInput{SessionID: 1, ChatID: s.testChatID, MessageID: 99})
	s.Require().NoError(err)

	_, err = s.svc.GetOrCreateSession(s.ctx, &GetOrCreateSessionInput{ChatID: s.testChatID})
	s.Require().NoError(err)
}

func (s *RosterServiceTestSuite) TestAddResponse() {
	s.expectNow()

	s.mockSessionRepo.EXPECT().
		UpsertResponse(s.ctx, &sessionRepo.UpsertResponseInput{
			Response: &models.Response{
				SessionID: 1,
				ChatID:    s.testChatID,
				UserID:    42,
				LastName:  "Иванов",
				Status:    models.StatusYes,
				Team:      models.TeamArmada,
				UpdatedAt: s.testTime,
			},
		}).
		Return(nil)

	err := s.svc.AddResponse(s.ctx, &AddResponseInput{
		SessionID: 1,
		ChatID:    s.testChatID,
		UserID:    42,
		LastName:  " Иванов ",
		Status:    models.StatusYes,
		Team:      models.TeamArmada,
	})
	s.Require().NoError(err)
}

func (s *RosterServiceTestSuite) TestAddResponseRejectsInvalidStatus() {
	err := s.svc.AddResponse(s.ctx, &AddResponseInput{
		SessionID: 1,
		ChatID:    s.testChatID,
		UserID:    42,
		LastName:  "Иванов",
		Status:    models.Status("PERHAPS"),
	})
	s.Require().ErrorIs(err, ErrInvalidStatus)
}

func (s *RosterServiceTestSuite) TestAddResponseRejectsEmptyName() {
	err := s.svc.AddResponse(s.ctx, &AddResponseInput{
		SessionID: 1,
		ChatID:    s.testChatID,
		UserID:    42,
		LastName:  "  ",
		Status:    models.StatusYes,
	})
	s.Require().ErrorIs(err, ErrEmptyLastName)
}

func (s *RosterServiceTestSuite) TestAddGuest() {
	s.expectNow()

	gomock.InOrder(
		s.mockSessionRepo.EXPECT().
			AllocateGuestID(s.ctx, &sessionRepo.AllocateGuestIDInput{SessionID: 1}).
			Return(int64(-1), nil),
		s.mockSessionRepo.EXPECT().
			UpsertResponse(s.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, input *sessionRepo.UpsertResponseInput) error {
				s.Equal(int64(1), input.Response.SessionID)
				s.Equal(int64(-1), input.Response.UserID)
				s.True(input.Response.IsGuest())
				s.Equal("Гостевич", input.Response.LastName)
				s.Equal(models.StatusYes, input.Response.Status)
				s.Equal(models.TeamKabany, input.Response.Team)
				s.Equal(s.testTime, input.Response.UpdatedAt)
				return nil
			}),
	)

	var logBuf bytes.Buffer
	log.SetOutput(&logBuf)
	defer log.SetOutput(os.Stderr)

	out, err := s.svc.AddGuest(s.ctx, &AddGuestInput{
		SessionID:     1,
		ChatID:        s.testChatID,
		LastName:      "Гостевич",
		Team:          models.TeamKabany,
		AddedByUserID: 42,
	})
	s.Require().NoError(err)
	s.Equal(int64(-1), out.GuestID)

	// The admin who brought the guest lands in the audit log
	s.Contains(logBuf.String(), "by user 42")
}

func (s *RosterServiceTestSuite) TestGetPlayerCounts() {
	responses := []*models.Response{
		{UserID: 1, Status: models.StatusYes},
		{UserID: 2, Status: models.StatusYes},
		{UserID: 3, Status: models.StatusMaybe},
		{UserID: 4, Status: models.StatusNo},
		{UserID: 5, Status: models.Status("CORRUPT")},
	}

	s.mockSessionRepo.EXPECT().
		ListResponses(s.ctx, &sessionRepo.ListResponsesInput{SessionID: 1}).
		Return(responses, nil)

	counts, err := s.svc.GetPlayerCounts(s.ctx, &GetPlayerCountsInput{SessionID: 1})
	s.Require().NoError(err)
	s.Equal(2, counts.Yes)
	s.Equal(1, counts.Maybe)
	s.Equal(1, counts.No)
}

func (s *RosterServiceTestSuite) TestUpdateResponseTeamRejectsUnknownTeam() {
	_, err := s.svc.UpdateResponseTeam(s.ctx, &UpdateResponseTeamInput{
		SessionID: 1,
		LastName:  "Иванов",
		Team:      models.Team("Тигры"),
	})
	s.Require().ErrorIs(err, ErrInvalidTeam)
}

func (s *RosterServiceTestSuite) TestDeleteResponseByName() {
	s.mockSessionRepo.EXPECT().
		DeleteResponseByName(s.ctx, &sessionRepo.DeleteResponseByNameInput{SessionID: 1, LastName: "Иванов"}).
		Return(true, nil)

	deleted, err := s.svc.DeleteResponseByName(s.ctx, &DeleteResponseByNameInput{
		SessionID: 1,
		LastName:  "Иванов",
	})
	s.Require().NoError(err)
	s.True(deleted)
}

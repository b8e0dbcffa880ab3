package session

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/matchday/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time

	testChatID int64
	testDate   string
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	// Create a Redis client connected to the miniredis server
	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	// Create the repository
	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.testNow = time.Date(2025, 11, 3, 10, 0, 0, 0, time.UTC)
	s.testChatID = -100123456
	s.testDate = "2025-11-05"
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) createSession() *models.Session {
	session, err := s.repo.CreateSession(context.Background(), &CreateSessionInput{
		ChatID:     s.testChatID,
		TargetDate: s.testDate,
	})
	s.Require().NoError(err)
	return session
}

func (s *RedisRepositoryTestSuite) upsertResponse(session *models.Session, userID int64, lastName string, status models.Status, at time.Time) {
	err := s.repo.UpsertResponse(context.Background(), &UpsertResponseInput{
		Response: &models.Response{
			SessionID: session.ID,
			ChatID:    session.ChatID,
			UserID:    userID,
			LastName:  lastName,
			Status:    status,
			Team:      models.TeamArmada,
			UpdatedAt: at,
		},
	})
	s.Require().NoError(err)
}

func (s *RedisRepositoryTestSuite) TestCreateSessionAssignsSequentialIDs() {
	first := s.createSession()
	second := s.createSession()

	s.Equal(first.ID+1, second.ID)
	s.Equal(s.testChatID, first.ChatID)
	s.Equal(s.testDate, first.TargetDate)
	s.False(first.IsClosed)
}

func (s *RedisRepositoryTestSuite) TestGetOpenSession() {
	created := s.createSession()

	open, err := s.repo.GetOpenSession(context.Background(), &GetOpenSessionInput{
		ChatID: s.testChatID,
	})
	s.Require().NoError(err)
	s.Equal(created.ID, open.ID)
	s.Equal(created.TargetDate, open.TargetDate)
}

func (s *RedisRepositoryTestSuite) TestGetOpenSessionNotFound() {
	_, err := s.repo.GetOpenSession(context.Background(), &GetOpenSessionInput{
		ChatID: s.testChatID,
	})
	s.Require().ErrorIs(err, ErrSessionNotFound)
}

func (s *RedisRepositoryTestSuite) TestCloseSession() {
	created := s.createSession()

	err := s.repo.CloseSession(context.Background(), &CloseSessionInput{
		SessionID: created.ID,
	})
	s.Require().NoError(err)

	// The open index must be cleared
	_, err = s.repo.GetOpenSession(context.Background(), &GetOpenSessionInput{
		ChatID: s.testChatID,
	})
	s.Require().ErrorIs(err, ErrSessionNotFound)

	// The session itself survives, closed
	closed, err := s.repo.GetSessionByDate(context.Background(), &GetSessionByDateInput{
		ChatID:     s.testChatID,
		TargetDate: s.testDate,
	})
	s.Require().NoError(err)
	s.True(closed.IsClosed)

	// Closing again is a no-op
	err = s.repo.CloseSession(context.Background(), &CloseSessionInput{
		SessionID: created.ID,
	})
	s.Require().NoError(err)
}

func (s *RedisRepositoryTestSuite) TestCloseSupersededSessionKeepsSuccessorOpen() {
	stale := s.createSession()

	successor, err := s.repo.CreateSession(context.Background(), &CreateSessionInput{
		ChatID:     s.testChatID,
		TargetDate: "2025-11-12",
	})
	s.Require().NoError(err)

	err = s.repo.CloseSession(context.Background(), &CloseSessionInput{
		SessionID: stale.ID,
	})
	s.Require().NoError(err)

	open, err := s.repo.GetOpenSession(context.Background(), &GetOpenSessionInput{
		ChatID: s.testChatID,
	})
	s.Require().NoError(err)
	s.Equal(successor.ID, open.ID)
}

func (s *RedisRepositoryTestSuite) TestSetListMessageID() {
	created := s.createSession()

	err := s.repo.SetListMessageID(context.Background(), &SetListMessageIDInput{
		SessionID: created.ID,
		MessageID: 777,
	})
	s.Require().NoError(err)

	got, err := s.repo.GetSession(context.Background(), &GetSessionInput{SessionID: created.ID})
	s.Require().NoError(err)
	s.Equal(777, got.ListMessageID)

	// Zero clears the identity
	err = s.repo.SetListMessageID(context.Background(), &SetListMessageIDInput{
		SessionID: created.ID,
		MessageID: 0,
	})
	s.Require().NoError(err)

	got, err = s.repo.GetSession(context.Background(), &GetSessionInput{SessionID: created.ID})
	s.Require().NoError(err)
	s.Equal(0, got.ListMessageID)
}

func (s *RedisRepositoryTestSuite) TestSetPinnedMessageID() {
	created := s.createSession()

	err := s.repo.SetPinnedMessageID(context.Background(), &SetPinnedMessageIDInput{
		SessionID: created.ID,
		MessageID: 555,
	})
	s.Require().NoError(err)

	got, err := s.repo.GetSession(context.Background(), &GetSessionInput{SessionID: created.ID})
	s.Require().NoError(err)
	s.Equal(555, got.PinnedMessageID)
}

func (s *RedisRepositoryTestSuite) TestUpsertResponseIsIdempotent() {
	session := s.createSession()

	s.upsertResponse(session, 42, "Иванов", models.StatusYes, s.testNow)
	s.upsertResponse(session, 42, "Иванов", models.StatusYes, s.testNow)

	responses, err := s.repo.ListResponses(context.Background(), &ListResponsesInput{
		SessionID: session.ID,
	})
	s.Require().NoError(err)
	s.Require().Len(responses, 1)
	s.Equal(int64(42), responses[0].UserID)
	s.Equal(models.StatusYes, responses[0].Status)
}

func (s *RedisRepositoryTestSuite) TestUpsertResponseOverwritesOnRevote() {
	session := s.createSession()

	s.upsertResponse(session, 42, "Иванов", models.StatusYes, s.testNow)
	s.upsertResponse(session, 42, "Иванов", models.StatusNo, s.testNow.Add(time.Minute))

	responses, err := s.repo.ListResponses(context.Background(), &ListResponsesInput{
		SessionID: session.ID,
	})
	s.Require().NoError(err)
	s.Require().Len(responses, 1)
	s.Equal(models.StatusNo, responses[0].Status)
}

func (s *RedisRepositoryTestSuite) TestListResponsesOrderedByUpdatedAt() {
	session := s.createSession()

	s.upsertResponse(session, 1, "Первый", models.StatusYes, s.testNow)
	s.upsertResponse(session, 2, "Второй", models.StatusYes, s.testNow.Add(time.Minute))
	s.upsertResponse(session, 3, "Третий", models.StatusMaybe, s.testNow.Add(2*time.Minute))

	// Re-vote moves the first responder to the end
	s.upsertResponse(session, 1, "Первый", models.StatusYes, s.testNow.Add(3*time.Minute))

	responses, err := s.repo.ListResponses(context.Background(), &ListResponsesInput{
		SessionID: session.ID,
	})
	s.Require().NoError(err)
	s.Require().Len(responses, 3)
	s.Equal(int64(2), responses[0].UserID)
	s.Equal(int64(3), responses[1].UserID)
	s.Equal(int64(1), responses[2].UserID)
}

func (s *RedisRepositoryTestSuite) TestDeleteResponseByNameIsCaseInsensitive() {
	session := s.createSession()
	s.upsertResponse(session, 42, "Smith", models.StatusYes, s.testNow)

	deleted, err := s.repo.DeleteResponseByName(context.Background(), &DeleteResponseByNameInput{
		SessionID: session.ID,
		LastName:  "sMITH",
	})
	s.Require().NoError(err)
	s.True(deleted)

	responses, err := s.repo.ListResponses(context.Background(), &ListResponsesInput{
		SessionID: session.ID,
	})
	s.Require().NoError(err)
	s.Empty(responses)
}

func (s *RedisRepositoryTestSuite) TestDeleteResponseByNameNoMatch() {
	session := s.createSession()
	s.upsertResponse(session, 42, "Иванов", models.StatusYes, s.testNow)

	deleted, err := s.repo.DeleteResponseByName(context.Background(), &DeleteResponseByNameInput{
		SessionID: session.ID,
		LastName:  "Петров",
	})
	s.Require().NoError(err)
	s.False(deleted)

	// Nothing was mutated
	responses, err := s.repo.ListResponses(context.Background(), &ListResponsesInput{
		SessionID: session.ID,
	})
	s.Require().NoError(err)
	s.Len(responses, 1)
}

func (s *RedisRepositoryTestSuite) TestDeleteResponseByNameRemovesFirstMatch() {
	session := s.createSession()
	s.upsertResponse(session, 1, "Иванов", models.StatusYes, s.testNow)
	s.upsertResponse(session, 2, "Иванов", models.StatusNo, s.testNow.Add(time.Minute))

	deleted, err := s.repo.DeleteResponseByName(context.Background(), &DeleteResponseByNameInput{
		SessionID: session.ID,
		LastName:  "Иванов",
	})
	s.Require().NoError(err)
	s.True(deleted)

	responses, err := s.repo.ListResponses(context.Background(), &ListResponsesInput{
		SessionID: session.ID,
	})
	s.Require().NoError(err)
	s.Require().Len(responses, 1)
	s.Equal(int64(2), responses[0].UserID)
}

func (s *RedisRepositoryTestSuite) TestUpdateResponseTeamByName() {
	session := s.createSession()
	s.upsertResponse(session, 42, "Иванов", models.StatusYes, s.testNow)

	updated, err := s.repo.UpdateResponseTeamByName(context.Background(), &UpdateResponseTeamByNameInput{
		SessionID: session.ID,
		LastName:  "иванов",
		Team:      models.TeamKabany,
	})
	s.Require().NoError(err)
	s.True(updated)

	responses, err := s.repo.ListResponses(context.Background(), &ListResponsesInput{
		SessionID: session.ID,
	})
	s.Require().NoError(err)
	s.Require().Len(responses, 1)
	s.Equal(models.TeamKabany, responses[0].Team)

	// No match reports false
	updated, err = s.repo.UpdateResponseTeamByName(context.Background(), &UpdateResponseTeamByNameInput{
		SessionID: session.ID,
		LastName:  "Петров",
		Team:      models.TeamArmada,
	})
	s.Require().NoError(err)
	s.False(updated)
}

func (s *RedisRepositoryTestSuite) TestAllocateGuestID() {
	session := s.createSession()

	first, err := s.repo.AllocateGuestID(context.Background(), &AllocateGuestIDInput{
		SessionID: session.ID,
	})
	s.Require().NoError(err)
	s.Equal(int64(-1), first)

	second, err := s.repo.AllocateGuestID(context.Background(), &AllocateGuestIDInput{
		SessionID: session.ID,
	})
	s.Require().NoError(err)
	s.Equal(int64(-2), second)

	// Counters are scoped per session
	other := s.createSession()
	otherFirst, err := s.repo.AllocateGuestID(context.Background(), &AllocateGuestIDInput{
		SessionID: other.ID,
	})
	s.Require().NoError(err)
	s.Equal(int64(-1), otherFirst)
}

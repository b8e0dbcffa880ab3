package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/matchday/internal/models"
	"github.com/KirkDiggler/matchday/internal/services/publisher"
	publisherMocks "github.com/KirkDiggler/matchday/internal/services/publisher/mocks"
	"github.com/KirkDiggler/matchday/internal/services/roster"
	rosterMocks "github.com/KirkDiggler/matchday/internal/services/roster/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type fakePrompter struct {
	messageID int
	err       error
	calls     int
}

func (f *fakePrompter) SendPrompt(_ context.Context, _ int64) (int, error) {
	f.calls++
	return f.messageID, f.err
}

type SchedulerTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockRoster    *rosterMocks.MockService
	mockPublisher *publisherMocks.MockService
	mockTransport *publisherMocks.MockTransport
	prompter      *fakePrompter
	sched         *Scheduler

	testChatID int64
}

func (s *SchedulerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRoster = rosterMocks.NewMockService(s.mockCtrl)
	s.mockPublisher = publisherMocks.NewMockService(s.mockCtrl)
	s.mockTransport = publisherMocks.NewMockTransport(s.mockCtrl)
	s.prompter = &fakePrompter{messageID: 321}
	s.testChatID = -100123456

	sched, err := New(&Config{
		Roster:       s.mockRoster,
		Publisher:    s.mockPublisher,
		Transport:    s.mockTransport,
		Prompter:     s.prompter,
		ChatID:       s.testChatID,
		Location:     time.UTC,
		NotifyHour:   11,
		NotifyMinute: 0,
	})
	s.Require().NoError(err)
	sched.confirmTTL = 0
	s.sched = sched
}

func (s *SchedulerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSchedulerTestSuite(t *testing.T) {
	suite.Run(t, new(SchedulerTestSuite))
}

func (s *SchedulerTestSuite) TestPromptJobReplacesMessagesAndPins() {
	session := &models.Session{
		ID:              1,
		ChatID:          s.testChatID,
		TargetDate:      "2025-11-05",
		ListMessageID:   100,
		PinnedMessageID: 200,
	}

	s.mockRoster.EXPECT().
		GetOrCreateSession(gomock.Any(), &roster.GetOrCreateSessionInput{ChatID: s.testChatID}).
		Return(&roster.GetOrCreateSessionOutput{Session: session}, nil)

	s.mockTransport.EXPECT().UnpinMessage(gomock.Any(), s.testChatID, 200).Return(nil)
	s.mockTransport.EXPECT().DeleteMessage(gomock.Any(), s.testChatID, 200).Return(nil)
	s.mockTransport.EXPECT().DeleteMessage(gomock.Any(), s.testChatID, 100).Return(nil)
	s.mockRoster.EXPECT().
		SetListMessage(gomock.Any(), &roster.SetListMessageInput{SessionID: 1, ChatID: s.testChatID, MessageID: 0}).
		Return(nil)

	s.mockTransport.EXPECT().PinMessage(gomock.Any(), s.testChatID, 321).Return(nil)
	s.mockRoster.EXPECT().
		SetPinnedMessage(gomock.Any(), &roster.SetPinnedMessageInput{SessionID: 1, ChatID: s.testChatID, MessageID: 321}).
		Return(nil)

	s.mockPublisher.EXPECT().
		EnsureSummary(gomock.Any(), &publisher.EnsureSummaryInput{Session: session}).
		Return(nil)

	s.sched.runPromptJob()
	s.Equal(1, s.prompter.calls)
	s.Equal(0, session.ListMessageID)
}

func (s *SchedulerTestSuite) TestPromptJobSkipsClosedSession() {
	session := &models.Session{
		ID:         1,
		ChatID:     s.testChatID,
		TargetDate: "2025-11-05",
		IsClosed:   true,
	}

	s.mockRoster.EXPECT().
		GetOrCreateSession(gomock.Any(), gomock.Any()).
		Return(&roster.GetOrCreateSessionOutput{Session: session}, nil)

	s.sched.runPromptJob()
	s.Equal(0, s.prompter.calls)
}

func (s *SchedulerTestSuite) TestPromptJobPinFailureIsNonFatal() {
	session := &models.Session{
		ID:         1,
		ChatID:     s.testChatID,
		TargetDate: "2025-11-05",
	}

	s.mockRoster.EXPECT().
		GetOrCreateSession(gomock.Any(), gomock.Any()).
		Return(&roster.GetOrCreateSessionOutput{Session: session}, nil)

	s.mockTransport.EXPECT().
		PinMessage(gomock.Any(), s.testChatID, 321).
		Return(publisher.PublisherError("no pin rights"))

	// Pinned message id must not be recorded when the pin failed, and the
	// summary is still published
	s.mockPublisher.EXPECT().
		EnsureSummary(gomock.Any(), &publisher.EnsureSummaryInput{Session: session}).
		Return(nil)

	s.sched.runPromptJob()
}

func (s *SchedulerTestSuite) TestCloseJobClosesOpenSession() {
	session := &models.Session{
		ID:              1,
		ChatID:          s.testChatID,
		TargetDate:      "2025-11-05",
		PinnedMessageID: 200,
	}

	s.mockRoster.EXPECT().
		GetOpenSession(gomock.Any(), &roster.GetOpenSessionInput{ChatID: s.testChatID}).
		Return(session, nil)

	s.mockTransport.EXPECT().UnpinMessage(gomock.Any(), s.testChatID, 200).Return(nil)
	s.mockRoster.EXPECT().
		CloseSession(gomock.Any(), &roster.CloseSessionInput{SessionID: 1, ChatID: s.testChatID}).
		Return(nil)
	s.mockTransport.EXPECT().
		SendMessage(gomock.Any(), s.testChatID, "Сессия закрыта.").
		Return(400, nil)

	s.sched.runCloseJob()
}

func (s *SchedulerTestSuite) TestCloseJobNoOpWithoutOpenSession() {
	s.mockRoster.EXPECT().
		GetOpenSession(gomock.Any(), gomock.Any()).
		Return(nil, roster.ErrSessionNotFound)

	s.sched.runCloseJob()
}

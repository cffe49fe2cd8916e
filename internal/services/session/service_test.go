package session

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	clockMocks "github.com/KirkDiggler/speedmeet/internal/common/clock/mocks"
	uuidMocks "github.com/KirkDiggler/speedmeet/internal/common/uuid/mocks"
	"github.com/KirkDiggler/speedmeet/internal/events"
	eventMocks "github.com/KirkDiggler/speedmeet/internal/events/mocks"
	"github.com/KirkDiggler/speedmeet/internal/itinerary"
	"github.com/KirkDiggler/speedmeet/internal/models"
	participantRepo "github.com/KirkDiggler/speedmeet/internal/repositories/participant"
	participantMocks "github.com/KirkDiggler/speedmeet/internal/repositories/participant/mocks"
	planRepo "github.com/KirkDiggler/speedmeet/internal/repositories/plan"
	planMocks "github.com/KirkDiggler/speedmeet/internal/repositories/plan/mocks"
	"github.com/KirkDiggler/speedmeet/internal/scheduler"
	"github.com/KirkDiggler/speedmeet/internal/services/messaging"
	messagingMocks "github.com/KirkDiggler/speedmeet/internal/services/messaging/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SessionServiceTestSuite struct {
	suite.Suite
	mockCtrl            *gomock.Controller
	mockParticipantRepo *participantMocks.MockRepository
	mockPlanRepo        *planMocks.MockRepository
	mockMessaging       *messagingMocks.MockService
	mockPublisher       *eventMocks.MockPublisher
	mockClock           *clockMocks.MockClock
	mockUUID            *uuidMocks.MockGenerator
	service             Service
	ctx                 context.Context

	testTime     time.Time
	testPlanID   string
	participants []*models.Participant
}

func (s *SessionServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockParticipantRepo = participantMocks.NewMockRepository(s.mockCtrl)
	s.mockPlanRepo = planMocks.NewMockRepository(s.mockCtrl)
	s.mockMessaging = messagingMocks.NewMockService(s.mockCtrl)
	s.mockPublisher = eventMocks.NewMockPublisher(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockGenerator(s.mockCtrl)
	s.ctx = context.Background()

	s.testTime = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
	s.testPlanID = "plan-1"
	s.participants = make([]*models.Participant, 0, 6)
	for i := 1; i <= 6; i++ {
		s.participants = append(s.participants, &models.Participant{
			ID:     fmt.Sprintf("p%d", i),
			Name:   fmt.Sprintf("Guest %d", i),
			Active: true,
		})
	}

	sched, err := scheduler.New(nil)
	s.Require().NoError(err)

	svc, err := New(&Config{
		ParticipantRepo:  s.mockParticipantRepo,
		PlanRepo:         s.mockPlanRepo,
		Scheduler:        sched,
		MessagingService: s.mockMessaging,
		Publisher:        s.mockPublisher,
		Clock:            s.mockClock,
		UUIDGenerator:    s.mockUUID,
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *SessionServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSessionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SessionServiceTestSuite))
}

func (s *SessionServiceTestSuite) expectRoster() {
	s.mockParticipantRepo.EXPECT().
		ListParticipants(s.ctx, &participantRepo.ListParticipantsInput{ActiveOnly: true}).
		Return(&participantRepo.ListParticipantsOutput{Participants: s.participants}, nil)
}

func (s *SessionServiceTestSuite) expectStamp() {
	s.mockUUID.EXPECT().NewUUID().Return(s.testPlanID)
	s.mockClock.EXPECT().Now().Return(s.testTime)
}

func (s *SessionServiceTestSuite) TestGenerateSession() {
	s.expectRoster()
	s.expectStamp()

	var saved *models.SessionPlan
	s.mockPlanRepo.EXPECT().
		SavePlan(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *planRepo.SavePlanInput) error {
			saved = input.Plan
			return nil
		})
	s.mockPublisher.EXPECT().
		PublishSessionGenerated(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, event *events.SessionGeneratedEvent) error {
			s.Equal(s.testPlanID, event.SessionID)
			s.Equal(3, event.TotalRounds)
			return nil
		})
	s.mockMessaging.EXPECT().
		GetSessionGeneratedMessage(s.ctx, gomock.Any()).
		Return(&messaging.GetSessionGeneratedMessageOutput{Message: "ok"}, nil)

	out, err := s.service.GenerateSession(s.ctx, &GenerateSessionInput{
		TableCount:             3,
		SessionDurationMinutes: 25,
		MinutesPerRound:        10,
	})
	s.Require().NoError(err)
	s.Equal("ok", out.Message)

	plan := out.Plan
	s.Same(saved, plan)
	s.Equal(s.testPlanID, plan.ID)
	s.Equal(s.testTime, plan.CreatedAt)
	s.Equal(6, plan.Metadata.TotalParticipants)
	s.Equal(3, plan.Metadata.TotalTables)
	s.Equal(3, plan.Metadata.TotalRounds)
	s.Equal(10, plan.Metadata.MinutesPerRound)
	s.Equal(25, plan.Metadata.SessionDurationMinutes)
	s.NoError(scheduler.ValidatePlan(plan))
}

func (s *SessionServiceTestSuite) TestGenerateSessionSurvivesPublishFailure() {
	s.expectRoster()
	s.expectStamp()
	s.mockPlanRepo.EXPECT().SavePlan(s.ctx, gomock.Any()).Return(nil)
	s.mockPublisher.EXPECT().PublishSessionGenerated(s.ctx, gomock.Any()).Return(errors.New("broker down"))
	s.mockMessaging.EXPECT().
		GetSessionGeneratedMessage(s.ctx, gomock.Any()).
		Return(&messaging.GetSessionGeneratedMessageOutput{Message: "ok"}, nil)

	out, err := s.service.GenerateSession(s.ctx, &GenerateSessionInput{
		TableCount:             2,
		SessionDurationMinutes: 20,
		MinutesPerRound:        10,
	})
	s.Require().NoError(err)
	s.Equal(s.testPlanID, out.Plan.ID)
}

func (s *SessionServiceTestSuite) TestGenerateSessionWithSeedIsReproducible() {
	seed := int64(42)
	var plans []*models.SessionPlan

	for i := 0; i < 2; i++ {
		s.expectRoster()
		s.expectStamp()
		s.mockPlanRepo.EXPECT().SavePlan(s.ctx, gomock.Any()).Return(nil)
		s.mockPublisher.EXPECT().PublishSessionGenerated(s.ctx, gomock.Any()).Return(nil)
		s.mockMessaging.EXPECT().
			GetSessionGeneratedMessage(s.ctx, gomock.Any()).
			Return(&messaging.GetSessionGeneratedMessageOutput{}, nil)

		out, err := s.service.GenerateSession(s.ctx, &GenerateSessionInput{
			TableCount:             2,
			SessionDurationMinutes: 30,
			MinutesPerRound:        10,
			Seed:                   &seed,
		})
		s.Require().NoError(err)
		plans = append(plans, out.Plan)
	}

	s.Equal(plans[0], plans[1])
	// the roster itself is left in registration order
	s.Equal("p1", s.participants[0].ID)
}

func (s *SessionServiceTestSuite) TestGenerateSessionInvalidConfiguration() {
	testCases := []struct {
		name  string
		input *GenerateSessionInput
	}{
		{name: "nil input", input: nil},
		{name: "zero tables", input: &GenerateSessionInput{TableCount: 0, SessionDurationMinutes: 60, MinutesPerRound: 10}},
		{name: "zero duration", input: &GenerateSessionInput{TableCount: 2, SessionDurationMinutes: 0, MinutesPerRound: 10}},
		{name: "negative round length", input: &GenerateSessionInput{TableCount: 2, SessionDurationMinutes: 60, MinutesPerRound: -5}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.service.GenerateSession(s.ctx, tc.input)
			s.ErrorIs(err, scheduler.ErrInvalidConfiguration)
		})
	}
}

func (s *SessionServiceTestSuite) TestGenerateSessionEmptyRoster() {
	s.mockParticipantRepo.EXPECT().
		ListParticipants(s.ctx, gomock.Any()).
		Return(&participantRepo.ListParticipantsOutput{Participants: []*models.Participant{}}, nil)

	_, err := s.service.GenerateSession(s.ctx, &GenerateSessionInput{
		TableCount:             2,
		SessionDurationMinutes: 60,
		MinutesPerRound:        10,
	})
	s.ErrorIs(err, scheduler.ErrEmptyRoster)
}

func (s *SessionServiceTestSuite) TestGenerateSessionSaveFailure() {
	s.expectRoster()
	s.expectStamp()
	s.mockPlanRepo.EXPECT().SavePlan(s.ctx, gomock.Any()).Return(errors.New("redis down"))

	_, err := s.service.GenerateSession(s.ctx, &GenerateSessionInput{
		TableCount:             2,
		SessionDurationMinutes: 60,
		MinutesPerRound:        10,
	})
	s.Error(err)
}

func (s *SessionServiceTestSuite) TestPreviewSession() {
	s.expectStamp()

	out, err := s.service.PreviewSession(s.ctx, &PreviewSessionInput{
		ParticipantCount:       9,
		TableCount:             3,
		SessionDurationMinutes: 20,
		MinutesPerRound:        10,
	})
	s.Require().NoError(err)
	s.Equal(9, out.Plan.Metadata.TotalParticipants)
	s.Equal(2, out.Plan.Metadata.TotalRounds)
	s.Equal(0, out.Plan.Metadata.RepeatedPairs)
	s.Equal("Participant 1", out.Plan.Rounds[0].Tables[0].Members[0].Name)

	_, err = s.service.PreviewSession(s.ctx, &PreviewSessionInput{
		ParticipantCount:       MaxPreviewParticipants + 1,
		TableCount:             3,
		SessionDurationMinutes: 20,
		MinutesPerRound:        10,
	})
	s.ErrorIs(err, scheduler.ErrInvalidConfiguration)
}

func (s *SessionServiceTestSuite) TestRoundCountAboveLimitIsRejectedBeforeScheduling() {
	// one-minute rounds over a full day
	_, err := s.service.GenerateSession(s.ctx, &GenerateSessionInput{
		TableCount:             2,
		SessionDurationMinutes: 24 * 60,
		MinutesPerRound:        1,
	})
	s.ErrorIs(err, scheduler.ErrInvalidConfiguration)

	_, err = s.service.PreviewSession(s.ctx, &PreviewSessionInput{
		ParticipantCount:       60,
		TableCount:             6,
		SessionDurationMinutes: 2000,
		MinutesPerRound:        1,
	})
	s.ErrorIs(err, scheduler.ErrInvalidConfiguration)
}

func (s *SessionServiceTestSuite) TestGetCurrentSession() {
	plan := &models.SessionPlan{ID: s.testPlanID}
	s.mockPlanRepo.EXPECT().GetCurrentPlan(s.ctx, gomock.Any()).Return(plan, nil)

	out, err := s.service.GetCurrentSession(s.ctx, &GetCurrentSessionInput{})
	s.Require().NoError(err)
	s.Same(plan, out.Plan)
}

func (s *SessionServiceTestSuite) TestNoActiveSession() {
	s.mockPlanRepo.EXPECT().GetCurrentPlan(s.ctx, gomock.Any()).Return(nil, planRepo.ErrNoActiveSession).Times(3)

	_, err := s.service.GetCurrentSession(s.ctx, &GetCurrentSessionInput{})
	s.ErrorIs(err, itinerary.ErrNoActiveSession)

	_, err = s.service.GetItinerary(s.ctx, &GetItineraryInput{ParticipantName: "Guest 1"})
	s.ErrorIs(err, itinerary.ErrNoActiveSession)

	_, err = s.service.GetTableRotations(s.ctx, &GetTableRotationsInput{TableID: 1})
	s.ErrorIs(err, itinerary.ErrNoActiveSession)
}

func (s *SessionServiceTestSuite) TestClearCurrentSession() {
	s.mockPlanRepo.EXPECT().ClearCurrentPlan(s.ctx, gomock.Any()).Return(nil)

	_, err := s.service.ClearCurrentSession(s.ctx, &ClearCurrentSessionInput{})
	s.NoError(err)
}

func (s *SessionServiceTestSuite) TestGetItinerary() {
	plan, err := scheduler.Generate(s.participants, 3, 2)
	s.Require().NoError(err)
	s.mockPlanRepo.EXPECT().GetCurrentPlan(s.ctx, gomock.Any()).Return(plan, nil)
	s.mockMessaging.EXPECT().
		GetItineraryText(s.ctx, gomock.Any()).
		Return(&messaging.GetItineraryTextOutput{Text: "text"}, nil)

	out, err := s.service.GetItinerary(s.ctx, &GetItineraryInput{ParticipantName: "guest 4"})
	s.Require().NoError(err)
	s.Equal("p4", out.Itinerary.ParticipantID)
	s.Len(out.Itinerary.Entries, 2)
	s.Equal("text", out.Text)
}

func (s *SessionServiceTestSuite) TestGetItineraryUnknownName() {
	plan, err := scheduler.Generate(s.participants, 3, 2)
	s.Require().NoError(err)
	s.mockPlanRepo.EXPECT().GetCurrentPlan(s.ctx, gomock.Any()).Return(plan, nil)

	_, err = s.service.GetItinerary(s.ctx, &GetItineraryInput{ParticipantName: "Nobody"})
	s.ErrorIs(err, itinerary.ErrNotFound)
}

func (s *SessionServiceTestSuite) TestGetTableRotations() {
	plan, err := scheduler.Generate(s.participants, 3, 2)
	s.Require().NoError(err)
	s.mockPlanRepo.EXPECT().GetCurrentPlan(s.ctx, gomock.Any()).Return(plan, nil).Times(2)

	out, err := s.service.GetTableRotations(s.ctx, &GetTableRotationsInput{TableID: 3})
	s.Require().NoError(err)
	s.Equal(3, out.Rotation.TableID)
	s.Len(out.Rotation.Rounds, 2)

	_, err = s.service.GetTableRotations(s.ctx, &GetTableRotationsInput{TableID: 9})
	s.ErrorIs(err, itinerary.ErrNotFound)
}

func (s *SessionServiceTestSuite) TestRoundCount() {
	testCases := []struct {
		duration, perRound, expected int
	}{
		{duration: 60, perRound: 10, expected: 6},
		{duration: 65, perRound: 10, expected: 7},
		{duration: 5, perRound: 10, expected: 1},
	}

	for _, tc := range testCases {
		rounds, err := RoundCount(tc.duration, tc.perRound)
		s.Require().NoError(err)
		s.Equal(tc.expected, rounds)
	}

	_, err := RoundCount(60, 0)
	s.ErrorIs(err, scheduler.ErrInvalidConfiguration)
}

func (s *SessionServiceTestSuite) TestNewValidatesDependencies() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{})
	s.ErrorIs(err, ErrNilParticipantRepo)
}

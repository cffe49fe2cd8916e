package session

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/KirkDiggler/speedmeet/internal/common/clock"
	"github.com/KirkDiggler/speedmeet/internal/common/uuid"
	"github.com/KirkDiggler/speedmeet/internal/events"
	"github.com/KirkDiggler/speedmeet/internal/itinerary"
	"github.com/KirkDiggler/speedmeet/internal/models"
	participantRepo "github.com/KirkDiggler/speedmeet/internal/repositories/participant"
	planRepo "github.com/KirkDiggler/speedmeet/internal/repositories/plan"
	"github.com/KirkDiggler/speedmeet/internal/scheduler"
	"github.com/KirkDiggler/speedmeet/internal/services/messaging"
	"github.com/KirkDiggler/speedmeet/internal/shuffle"
)

// service implements the Service interface
type service struct {
	participantRepo  participantRepo.Repository
	planRepo         planRepo.Repository
	scheduler        *scheduler.Scheduler
	messagingService messaging.Service
	publisher        events.Publisher
	clock            clock.Clock
	uuidGenerator    uuid.Generator
}

// New creates a new session service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.ParticipantRepo == nil {
		return nil, ErrNilParticipantRepo
	}

	if cfg.PlanRepo == nil {
		return nil, ErrNilPlanRepo
	}

	if cfg.Scheduler == nil {
		return nil, ErrNilScheduler
	}

	if cfg.MessagingService == nil {
		return nil, ErrNilMessagingService
	}

	if cfg.Publisher == nil {
		return nil, ErrNilPublisher
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &service{
		participantRepo:  cfg.ParticipantRepo,
		planRepo:         cfg.PlanRepo,
		scheduler:        cfg.Scheduler,
		messagingService: cfg.MessagingService,
		publisher:        cfg.Publisher,
		clock:            cfg.Clock,
		uuidGenerator:    cfg.UUIDGenerator,
	}, nil
}

// RoundCount is the number of rounds that fit a session, a partial last round counting as one
func RoundCount(sessionDurationMinutes, minutesPerRound int) (int, error) {
	if sessionDurationMinutes < 1 {
		return 0, fmt.Errorf("%w: session duration must be positive", scheduler.ErrInvalidConfiguration)
	}

	if minutesPerRound < 1 {
		return 0, fmt.Errorf("%w: minutes per round must be positive", scheduler.ErrInvalidConfiguration)
	}

	return (sessionDurationMinutes + minutesPerRound - 1) / minutesPerRound, nil
}

// roundCount derives the round count and rejects plans longer than the scheduler allows
func (s *service) roundCount(sessionDurationMinutes, minutesPerRound int) (int, error) {
	rounds, err := RoundCount(sessionDurationMinutes, minutesPerRound)
	if err != nil {
		return 0, err
	}

	if rounds > s.scheduler.MaxRounds() {
		return 0, fmt.Errorf("%w: %d rounds requested, limit is %d",
			scheduler.ErrInvalidConfiguration, rounds, s.scheduler.MaxRounds())
	}

	return rounds, nil
}

// GenerateSession seats the active roster and makes the result the current session
func (s *service) GenerateSession(ctx context.Context, input *GenerateSessionInput) (*GenerateSessionOutput, error) {
	if input == nil {
		return nil, fmt.Errorf("%w: input cannot be nil", scheduler.ErrInvalidConfiguration)
	}

	if input.TableCount < 1 {
		return nil, fmt.Errorf("%w: table count must be positive", scheduler.ErrInvalidConfiguration)
	}

	rounds, err := s.roundCount(input.SessionDurationMinutes, input.MinutesPerRound)
	if err != nil {
		return nil, err
	}

	roster, err := s.participantRepo.ListParticipants(ctx, &participantRepo.ListParticipantsInput{
		ActiveOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}

	participants := roster.Participants
	if input.Seed != nil {
		participants = shuffle.New(&shuffle.Config{Seed: *input.Seed}).Participants(participants)
	}

	plan, err := s.buildPlan(participants, input.TableCount, rounds, input.SessionDurationMinutes, input.MinutesPerRound)
	if err != nil {
		return nil, err
	}

	if err := s.planRepo.SavePlan(ctx, &planRepo.SavePlanInput{
		Plan: plan,
	}); err != nil {
		return nil, fmt.Errorf("failed to save plan: %w", err)
	}

	// The plan is already current; a broker outage must not fail the request
	if err := s.publisher.PublishSessionGenerated(ctx, events.NewSessionGeneratedEvent(plan)); err != nil {
		log.Printf("Failed to publish session %s: %v", plan.ID, err)
	}

	msg, err := s.messagingService.GetSessionGeneratedMessage(ctx, &messaging.GetSessionGeneratedMessageInput{
		Metadata: plan.Metadata,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build message: %w", err)
	}

	log.Printf("Generated session %s: %d participants, %d tables, %d rounds, %d repeated pairs",
		plan.ID, plan.Metadata.TotalParticipants, plan.Metadata.TotalTables, plan.Metadata.TotalRounds, plan.Metadata.RepeatedPairs)

	return &GenerateSessionOutput{
		Plan:    plan,
		Message: msg.Message,
	}, nil
}

// PreviewSession schedules placeholder participants without touching the current session
func (s *service) PreviewSession(ctx context.Context, input *PreviewSessionInput) (*PreviewSessionOutput, error) {
	if input == nil {
		return nil, fmt.Errorf("%w: input cannot be nil", scheduler.ErrInvalidConfiguration)
	}

	if input.ParticipantCount < 1 || input.ParticipantCount > MaxPreviewParticipants {
		return nil, fmt.Errorf("%w: participant count must be between 1 and %d",
			scheduler.ErrInvalidConfiguration, MaxPreviewParticipants)
	}

	if input.TableCount < 1 {
		return nil, fmt.Errorf("%w: table count must be positive", scheduler.ErrInvalidConfiguration)
	}

	rounds, err := s.roundCount(input.SessionDurationMinutes, input.MinutesPerRound)
	if err != nil {
		return nil, err
	}

	participants := make([]*models.Participant, 0, input.ParticipantCount)
	for i := 1; i <= input.ParticipantCount; i++ {
		participants = append(participants, &models.Participant{
			ID:     fmt.Sprintf("preview-%d", i),
			Name:   fmt.Sprintf("Participant %d", i),
			Active: true,
		})
	}

	plan, err := s.buildPlan(participants, input.TableCount, rounds, input.SessionDurationMinutes, input.MinutesPerRound)
	if err != nil {
		return nil, err
	}

	return &PreviewSessionOutput{
		Plan: plan,
	}, nil
}

// GetCurrentSession returns the current plan
func (s *service) GetCurrentSession(ctx context.Context, input *GetCurrentSessionInput) (*GetCurrentSessionOutput, error) {
	plan, err := s.currentPlan(ctx)
	if err != nil {
		return nil, err
	}

	return &GetCurrentSessionOutput{
		Plan: plan,
	}, nil
}

// ClearCurrentSession ends the current session
func (s *service) ClearCurrentSession(ctx context.Context, input *ClearCurrentSessionInput) (*ClearCurrentSessionOutput, error) {
	if err := s.planRepo.ClearCurrentPlan(ctx, &planRepo.ClearCurrentPlanInput{}); err != nil {
		return nil, fmt.Errorf("failed to clear session: %w", err)
	}

	return &ClearCurrentSessionOutput{}, nil
}

// GetItinerary returns one participant's tables, looked up by display name
func (s *service) GetItinerary(ctx context.Context, input *GetItineraryInput) (*GetItineraryOutput, error) {
	if input == nil {
		return nil, itinerary.ErrNotFound
	}

	plan, err := s.currentPlan(ctx)
	if err != nil {
		return nil, err
	}

	it, err := itinerary.Resolve(plan, input.ParticipantName)
	if err != nil {
		return nil, err
	}

	text, err := s.messagingService.GetItineraryText(ctx, &messaging.GetItineraryTextInput{
		Itinerary: it,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render itinerary: %w", err)
	}

	return &GetItineraryOutput{
		Itinerary: it,
		Text:      text.Text,
	}, nil
}

// GetTableRotations returns who sits at a table in every round
func (s *service) GetTableRotations(ctx context.Context, input *GetTableRotationsInput) (*GetTableRotationsOutput, error) {
	if input == nil {
		return nil, itinerary.ErrNotFound
	}

	plan, err := s.currentPlan(ctx)
	if err != nil {
		return nil, err
	}

	rotation, err := itinerary.TableRotations(plan, input.TableID)
	if err != nil {
		return nil, err
	}

	return &GetTableRotationsOutput{
		Rotation: rotation,
	}, nil
}

func (s *service) buildPlan(participants []*models.Participant, tables, rounds, duration, minutesPerRound int) (*models.SessionPlan, error) {
	plan, err := s.scheduler.Generate(participants, tables, rounds)
	if err != nil {
		return nil, err
	}

	if err := scheduler.ValidatePlan(plan); err != nil {
		return nil, err
	}

	plan.ID = s.uuidGenerator.NewUUID()
	plan.CreatedAt = s.clock.Now()
	plan.Metadata.MinutesPerRound = minutesPerRound
	plan.Metadata.SessionDurationMinutes = duration

	return plan, nil
}

func (s *service) currentPlan(ctx context.Context) (*models.SessionPlan, error) {
	plan, err := s.planRepo.GetCurrentPlan(ctx, &planRepo.GetCurrentPlanInput{})
	if err != nil {
		if errors.Is(err, planRepo.ErrNoActiveSession) {
			return nil, itinerary.ErrNoActiveSession
		}
		return nil, fmt.Errorf("failed to load current session: %w", err)
	}

	return plan, nil
}

package session

import (
	"github.com/KirkDiggler/speedmeet/internal/common/clock"
	"github.com/KirkDiggler/speedmeet/internal/common/uuid"
	"github.com/KirkDiggler/speedmeet/internal/events"
	"github.com/KirkDiggler/speedmeet/internal/models"
	participantRepo "github.com/KirkDiggler/speedmeet/internal/repositories/participant"
	planRepo "github.com/KirkDiggler/speedmeet/internal/repositories/plan"
	"github.com/KirkDiggler/speedmeet/internal/scheduler"
	"github.com/KirkDiggler/speedmeet/internal/services/messaging"
)

// MaxPreviewParticipants caps the placeholder roster of a preview
const MaxPreviewParticipants = 200

// Config holds the session service dependencies
type Config struct {
	ParticipantRepo  participantRepo.Repository
	PlanRepo         planRepo.Repository
	Scheduler        *scheduler.Scheduler
	MessagingService messaging.Service
	Publisher        events.Publisher
	Clock            clock.Clock
	UUIDGenerator    uuid.Generator
}

// GenerateSessionInput contains the organizer's session parameters
type GenerateSessionInput struct {
	TableCount             int
	SessionDurationMinutes int
	MinutesPerRound        int

	// Seed shuffles the roster before seating when set
	Seed *int64
}

// GenerateSessionOutput contains the new current plan
type GenerateSessionOutput struct {
	Plan    *models.SessionPlan
	Message string
}

// PreviewSessionInput contains parameters for a dry run
type PreviewSessionInput struct {
	ParticipantCount       int
	TableCount             int
	SessionDurationMinutes int
	MinutesPerRound        int
}

// PreviewSessionOutput contains a plan that was not saved
type PreviewSessionOutput struct {
	Plan *models.SessionPlan
}

// GetCurrentSessionInput is empty
type GetCurrentSessionInput struct{}

// GetCurrentSessionOutput contains the current plan
type GetCurrentSessionOutput struct {
	Plan *models.SessionPlan
}

// ClearCurrentSessionInput is empty
type ClearCurrentSessionInput struct{}

// ClearCurrentSessionOutput is empty
type ClearCurrentSessionOutput struct{}

// GetItineraryInput contains the name a participant typed
type GetItineraryInput struct {
	ParticipantName string
}

// GetItineraryOutput contains the participant's tables
type GetItineraryOutput struct {
	Itinerary *models.Itinerary
	Text      string
}

// GetTableRotationsInput identifies a table
type GetTableRotationsInput struct {
	TableID int
}

// GetTableRotationsOutput contains a table's occupants per round
type GetTableRotationsOutput struct {
	Rotation *models.TableRotation
}

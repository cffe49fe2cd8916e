package events

//go:generate mockgen -package=mocks -destination=mocks/mock_publisher.go github.com/KirkDiggler/speedmeet/internal/events Publisher

import (
	"context"
	"time"

	"github.com/KirkDiggler/speedmeet/internal/models"
)

// SessionGeneratedQueue is the queue plan announcements are published to
const SessionGeneratedQueue = "session.generated"

// Publisher announces domain events to other systems
type Publisher interface {
	// PublishSessionGenerated announces that a new plan became current
	PublishSessionGenerated(ctx context.Context, event *SessionGeneratedEvent) error
}

// SessionGeneratedEvent is the payload sent when a plan is generated
type SessionGeneratedEvent struct {
	SessionID         string    `json:"session_id"`
	GeneratedAt       time.Time `json:"generated_at"`
	TotalParticipants int       `json:"total_participants"`
	TotalTables       int       `json:"total_tables"`
	TotalRounds       int       `json:"total_rounds"`
	MinutesPerRound   int       `json:"time_per_round_minutes"`
	RepeatedPairs     int       `json:"repeated_pairs"`
}

// NewSessionGeneratedEvent builds the announcement for a plan
func NewSessionGeneratedEvent(plan *models.SessionPlan) *SessionGeneratedEvent {
	if plan == nil {
		return nil
	}

	return &SessionGeneratedEvent{
		SessionID:         plan.ID,
		GeneratedAt:       plan.CreatedAt,
		TotalParticipants: plan.Metadata.TotalParticipants,
		TotalTables:       plan.Metadata.TotalTables,
		TotalRounds:       plan.Metadata.TotalRounds,
		MinutesPerRound:   plan.Metadata.MinutesPerRound,
		RepeatedPairs:     plan.Metadata.RepeatedPairs,
	}
}

// NoopPublisher drops every event. Used when no broker is configured.
type NoopPublisher struct{}

// NewNoop creates a publisher that does nothing
func NewNoop() *NoopPublisher {
	return &NoopPublisher{}
}

// PublishSessionGenerated discards the event
func (p *NoopPublisher) PublishSessionGenerated(ctx context.Context, event *SessionGeneratedEvent) error {
	return nil
}

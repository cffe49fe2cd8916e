package rest

import (
	"errors"

	"github.com/KirkDiggler/speedmeet/internal/services/messaging"
	"github.com/KirkDiggler/speedmeet/internal/services/participant"
	"github.com/KirkDiggler/speedmeet/internal/services/session"
)

// Config holds the REST handler dependencies
type Config struct {
	SessionService     session.Service
	ParticipantService participant.Service
	MessagingService   messaging.Service

	// Defaults applied when a generate request omits a timing
	DefaultMinutesPerRound int
	DefaultSessionDuration int
}

// Handler serves the HTTP API
type Handler struct {
	sessionService     session.Service
	participantService participant.Service
	messagingService   messaging.Service

	defaultMinutesPerRound int
	defaultSessionDuration int
}

// New creates a new REST handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.SessionService == nil {
		return nil, errors.New("session service cannot be nil")
	}

	if cfg.ParticipantService == nil {
		return nil, errors.New("participant service cannot be nil")
	}

	if cfg.MessagingService == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	return &Handler{
		sessionService:         cfg.SessionService,
		participantService:     cfg.ParticipantService,
		messagingService:       cfg.MessagingService,
		defaultMinutesPerRound: cfg.DefaultMinutesPerRound,
		defaultSessionDuration: cfg.DefaultSessionDuration,
	}, nil
}

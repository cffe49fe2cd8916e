package participant

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/KirkDiggler/speedmeet/internal/common/clock"
	"github.com/KirkDiggler/speedmeet/internal/common/uuid"
	"github.com/KirkDiggler/speedmeet/internal/models"
	participantRepo "github.com/KirkDiggler/speedmeet/internal/repositories/participant"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// service implements the Service interface
type service struct {
	repo          participantRepo.Repository
	clock         clock.Clock
	uuidGenerator uuid.Generator
}

// New creates a new participant service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Repository == nil {
		return nil, ErrNilRepository
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &service{
		repo:          cfg.Repository,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
	}, nil
}

// DisplayName formats a participant name as "First LAST", upper-casing the last
// name with French casing rules
func DisplayName(firstName, lastName string) string {
	first := strings.Join(strings.Fields(firstName), " ")
	last := cases.Upper(language.French).String(strings.Join(strings.Fields(lastName), " "))

	switch {
	case first == "":
		return last
	case last == "":
		return first
	}
	return first + " " + last
}

// AddParticipant registers one person, active by default
func (s *service) AddParticipant(ctx context.Context, input *AddParticipantInput) (*AddParticipantOutput, error) {
	p, err := s.newParticipant(input, s.clock.Now())
	if err != nil {
		return nil, err
	}

	if err := s.repo.SaveParticipant(ctx, &participantRepo.SaveParticipantInput{
		Participant: p,
	}); err != nil {
		return nil, fmt.Errorf("failed to save participant: %w", err)
	}

	return &AddParticipantOutput{
		Participant: p,
	}, nil
}

// ImportParticipants registers a batch of people. Every row is validated before
// anything is written; one incomplete row rejects the whole batch.
func (s *service) ImportParticipants(ctx context.Context, input *ImportParticipantsInput) (*ImportParticipantsOutput, error) {
	if input == nil {
		return nil, fmt.Errorf("%w: input cannot be nil", ErrInvalidParticipant)
	}

	if len(input.Rows) == 0 {
		return nil, fmt.Errorf("%w: import has no rows", ErrInvalidParticipant)
	}

	now := s.clock.Now()
	participants := make([]*models.Participant, 0, len(input.Rows))
	for i, row := range input.Rows {
		p, err := s.newParticipant(row, now)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		participants = append(participants, p)
	}

	if err := s.repo.SaveParticipants(ctx, &participantRepo.SaveParticipantsInput{
		Participants: participants,
	}); err != nil {
		return nil, fmt.Errorf("failed to save import: %w", err)
	}

	return &ImportParticipantsOutput{
		Participants: participants,
	}, nil
}

// ListParticipants returns the roster in registration order
func (s *service) ListParticipants(ctx context.Context, input *ListParticipantsInput) (*ListParticipantsOutput, error) {
	if input == nil {
		input = &ListParticipantsInput{}
	}

	out, err := s.repo.ListParticipants(ctx, &participantRepo.ListParticipantsInput{
		ActiveOnly: input.ActiveOnly,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}

	return &ListParticipantsOutput{
		Participants: out.Participants,
	}, nil
}

// SetParticipantActive includes or excludes someone from the next generation
func (s *service) SetParticipantActive(ctx context.Context, input *SetParticipantActiveInput) (*SetParticipantActiveOutput, error) {
	if input == nil || input.ParticipantID == "" {
		return nil, fmt.Errorf("%w: participant ID is required", ErrInvalidParticipant)
	}

	p, err := s.repo.GetParticipant(ctx, &participantRepo.GetParticipantInput{
		ParticipantID: input.ParticipantID,
	})
	if err != nil {
		if errors.Is(err, participantRepo.ErrParticipantNotFound) {
			return nil, ErrParticipantNotFound
		}
		return nil, fmt.Errorf("failed to get participant: %w", err)
	}

	if p.Active != input.Active {
		p.Active = input.Active
		p.UpdatedAt = s.clock.Now()

		if err := s.repo.SaveParticipant(ctx, &participantRepo.SaveParticipantInput{
			Participant: p,
		}); err != nil {
			return nil, fmt.Errorf("failed to save participant: %w", err)
		}
	}

	return &SetParticipantActiveOutput{
		Participant: p,
	}, nil
}

// RemoveParticipant deletes someone from the roster
func (s *service) RemoveParticipant(ctx context.Context, input *RemoveParticipantInput) (*RemoveParticipantOutput, error) {
	if input == nil || input.ParticipantID == "" {
		return nil, fmt.Errorf("%w: participant ID is required", ErrInvalidParticipant)
	}

	err := s.repo.DeleteParticipant(ctx, &participantRepo.DeleteParticipantInput{
		ParticipantID: input.ParticipantID,
	})
	if err != nil {
		if errors.Is(err, participantRepo.ErrParticipantNotFound) {
			return nil, ErrParticipantNotFound
		}
		return nil, fmt.Errorf("failed to delete participant: %w", err)
	}

	return &RemoveParticipantOutput{}, nil
}

// ClearParticipants empties the roster
func (s *service) ClearParticipants(ctx context.Context, input *ClearParticipantsInput) (*ClearParticipantsOutput, error) {
	if err := s.repo.ClearParticipants(ctx, &participantRepo.ClearParticipantsInput{}); err != nil {
		return nil, fmt.Errorf("failed to clear participants: %w", err)
	}

	return &ClearParticipantsOutput{}, nil
}

func (s *service) newParticipant(input *AddParticipantInput, now time.Time) (*models.Participant, error) {
	if input == nil {
		return nil, fmt.Errorf("%w: input cannot be nil", ErrInvalidParticipant)
	}

	first := strings.Join(strings.Fields(input.FirstName), " ")
	last := strings.Join(strings.Fields(input.LastName), " ")
	if first == "" || last == "" {
		return nil, fmt.Errorf("%w: first and last name are required", ErrInvalidParticipant)
	}

	return &models.Participant{
		ID:        s.uuidGenerator.NewUUID(),
		FirstName: first,
		LastName:  cases.Upper(language.French).String(last),
		Name:      DisplayName(first, last),
		Email:     strings.TrimSpace(input.Email),
		Company:   strings.TrimSpace(input.Company),
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

package messaging

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// service implements the Service interface
type service struct{}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	return &service{}, nil
}

// GetSessionGeneratedMessage returns the confirmation shown after a generation
func (s *service) GetSessionGeneratedMessage(ctx context.Context, input *GetSessionGeneratedMessageInput) (*GetSessionGeneratedMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	message := "Session générée avec succès. Les participants peuvent consulter leurs tables."

	// Tell the organizer when the configuration forced people to meet twice
	switch meta := input.Metadata; {
	case meta.RepeatedPairs == 1:
		message += " Une rencontre se répète entre deux rotations."
	case meta.RepeatedPairs > 1:
		message += fmt.Sprintf(" %d rencontres se répètent entre rotations.", meta.RepeatedPairs)
	}

	return &GetSessionGeneratedMessageOutput{
		Message: message,
	}, nil
}

// GetItineraryText renders an itinerary as plain text, one line per rotation
func (s *service) GetItineraryText(ctx context.Context, input *GetItineraryTextInput) (*GetItineraryTextOutput, error) {
	if input == nil || input.Itinerary == nil {
		return nil, errors.New("input and itinerary cannot be nil")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Itinéraire de %s\n", input.Itinerary.Participant)
	for _, entry := range input.Itinerary.Entries {
		fmt.Fprintf(&b, "Rotation %d : %s\n", entry.Round, entry.TableName)
	}

	return &GetItineraryTextOutput{
		Text: b.String(),
	}, nil
}

// GetErrorMessage returns the detail text for an error kind
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var detail string
	switch input.ErrorType {
	case ErrorTypeNoActiveSession:
		detail = "Aucune session active. Les tables n'ont pas encore été générées."
	case ErrorTypeParticipantNotFound:
		if input.Subject != "" {
			detail = fmt.Sprintf("Participant introuvable : %s", input.Subject)
		} else {
			detail = "Participant introuvable dans la session en cours."
		}
	case ErrorTypeTableNotFound:
		if input.Subject != "" {
			detail = fmt.Sprintf("Table introuvable : %s", input.Subject)
		} else {
			detail = "Table introuvable dans la session en cours."
		}
	case ErrorTypeEmptyRoster:
		detail = "La liste des participants est vide. Importez un fichier d'abord !"
	case ErrorTypeInvalidConfiguration:
		detail = "Configuration invalide : le nombre de tables, la durée et le temps par rotation doivent être positifs."
	case ErrorTypeInvalidParticipant:
		detail = "Participant invalide : le prénom et le nom sont obligatoires."
	case ErrorTypeRateLimited:
		detail = "Trop de requêtes. Réessayez dans quelques secondes."
	default:
		detail = "Une erreur interne est survenue."
	}

	return &GetErrorMessageOutput{
		Detail: detail,
	}, nil
}

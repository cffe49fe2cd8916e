package rest

import (
	"errors"
	"log"
	"net/http"

	"github.com/KirkDiggler/speedmeet/internal/itinerary"
	"github.com/KirkDiggler/speedmeet/internal/scheduler"
	"github.com/KirkDiggler/speedmeet/internal/services/messaging"
	"github.com/KirkDiggler/speedmeet/internal/services/participant"
	"github.com/labstack/echo/v4"
)

// errorResponse is the envelope every error is returned in
type errorResponse struct {
	Detail string `json:"detail"`
}

// classify maps a service error to a status and the text that explains it.
// notFound names what a lookup miss refers to on this route.
func classify(err error, notFound messaging.ErrorType) (int, messaging.ErrorType) {
	switch {
	case errors.Is(err, itinerary.ErrNoActiveSession):
		return http.StatusNotFound, messaging.ErrorTypeNoActiveSession
	case errors.Is(err, itinerary.ErrNotFound):
		return http.StatusNotFound, notFound
	case errors.Is(err, participant.ErrParticipantNotFound):
		return http.StatusNotFound, messaging.ErrorTypeParticipantNotFound
	case errors.Is(err, scheduler.ErrEmptyRoster):
		return http.StatusBadRequest, messaging.ErrorTypeEmptyRoster
	case errors.Is(err, scheduler.ErrInvalidConfiguration):
		return http.StatusBadRequest, messaging.ErrorTypeInvalidConfiguration
	case errors.Is(err, participant.ErrInvalidParticipant):
		return http.StatusBadRequest, messaging.ErrorTypeInvalidParticipant
	default:
		return http.StatusInternalServerError, messaging.ErrorTypeInternal
	}
}

// respondError writes err as a {"detail": ...} body
func (h *Handler) respondError(c echo.Context, err error, notFound messaging.ErrorType, subject string) error {
	status, errorType := classify(err, notFound)
	if status == http.StatusInternalServerError {
		log.Printf("%s %s failed: %v", c.Request().Method, c.Path(), err)
	}

	return h.respondDetail(c, status, errorType, subject)
}

func (h *Handler) respondDetail(c echo.Context, status int, errorType messaging.ErrorType, subject string) error {
	msg, err := h.messagingService.GetErrorMessage(c.Request().Context(), &messaging.GetErrorMessageInput{
		ErrorType: errorType,
		Subject:   subject,
	})
	if err != nil {
		return err
	}

	return c.JSON(status, errorResponse{Detail: msg.Detail})
}

package rest

import (
	"net/http"
	"time"

	"github.com/KirkDiggler/speedmeet/internal/models"
	"github.com/KirkDiggler/speedmeet/internal/services/messaging"
	"github.com/KirkDiggler/speedmeet/internal/services/participant"
	"github.com/labstack/echo/v4"
)

type participantRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Company   string `json:"company"`
}

type importRequest struct {
	Participants []participantRequest `json:"participants"`
}

type participantResponse struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Company   string    `json:"company,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

type importResponse struct {
	Imported     int                   `json:"imported"`
	Participants []participantResponse `json:"participants"`
}

func newParticipantResponse(p *models.Participant) participantResponse {
	return participantResponse{
		ID:        p.ID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Name:      p.Name,
		Email:     p.Email,
		Company:   p.Company,
		Active:    p.Active,
		CreatedAt: p.CreatedAt,
	}
}

func newParticipantResponses(participants []*models.Participant) []participantResponse {
	out := make([]participantResponse, 0, len(participants))
	for _, p := range participants {
		out = append(out, newParticipantResponse(p))
	}
	return out
}

func (r participantRequest) input() *participant.AddParticipantInput {
	return &participant.AddParticipantInput{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Company:   r.Company,
	}
}

// ListParticipants handles GET /api/participants; ?active=true keeps active ones only
func (h *Handler) ListParticipants(c echo.Context) error {
	var activeOnly bool
	if err := echo.QueryParamsBinder(c).Bool("active", &activeOnly).BindError(); err != nil {
		return h.respondDetail(c, http.StatusBadRequest, messaging.ErrorTypeInvalidParticipant, "")
	}

	out, err := h.participantService.ListParticipants(c.Request().Context(), &participant.ListParticipantsInput{
		ActiveOnly: activeOnly,
	})
	if err != nil {
		return h.respondError(c, err, messaging.ErrorTypeParticipantNotFound, "")
	}

	return c.JSON(http.StatusOK, newParticipantResponses(out.Participants))
}

// AddParticipant handles POST /api/participants
func (h *Handler) AddParticipant(c echo.Context) error {
	var req participantRequest
	if err := c.Bind(&req); err != nil {
		return h.respondDetail(c, http.StatusBadRequest, messaging.ErrorTypeInvalidParticipant, "")
	}

	out, err := h.participantService.AddParticipant(c.Request().Context(), req.input())
	if err != nil {
		return h.respondError(c, err, messaging.ErrorTypeParticipantNotFound, "")
	}

	return c.JSON(http.StatusCreated, newParticipantResponse(out.Participant))
}

// ImportParticipants handles POST /api/participants/import
func (h *Handler) ImportParticipants(c echo.Context) error {
	var req importRequest
	if err := c.Bind(&req); err != nil {
		return h.respondDetail(c, http.StatusBadRequest, messaging.ErrorTypeInvalidParticipant, "")
	}

	rows := make([]*participant.AddParticipantInput, 0, len(req.Participants))
	for _, p := range req.Participants {
		rows = append(rows, p.input())
	}

	out, err := h.participantService.ImportParticipants(c.Request().Context(), &participant.ImportParticipantsInput{
		Rows: rows,
	})
	if err != nil {
		return h.respondError(c, err, messaging.ErrorTypeParticipantNotFound, "")
	}

	return c.JSON(http.StatusOK, importResponse{
		Imported:     len(out.Participants),
		Participants: newParticipantResponses(out.Participants),
	})
}

// ActivateParticipant handles POST /api/participants/:id/activate
func (h *Handler) ActivateParticipant(c echo.Context) error {
	return h.setActive(c, true)
}

// DeactivateParticipant handles POST /api/participants/:id/deactivate
func (h *Handler) DeactivateParticipant(c echo.Context) error {
	return h.setActive(c, false)
}

func (h *Handler) setActive(c echo.Context, active bool) error {
	id := c.Param("id")
	out, err := h.participantService.SetParticipantActive(c.Request().Context(), &participant.SetParticipantActiveInput{
		ParticipantID: id,
		Active:        active,
	})
	if err != nil {
		return h.respondError(c, err, messaging.ErrorTypeParticipantNotFound, id)
	}

	return c.JSON(http.StatusOK, newParticipantResponse(out.Participant))
}

// RemoveParticipant handles DELETE /api/participants/:id
func (h *Handler) RemoveParticipant(c echo.Context) error {
	id := c.Param("id")
	if _, err := h.participantService.RemoveParticipant(c.Request().Context(), &participant.RemoveParticipantInput{
		ParticipantID: id,
	}); err != nil {
		return h.respondError(c, err, messaging.ErrorTypeParticipantNotFound, id)
	}

	return c.NoContent(http.StatusNoContent)
}

// ClearParticipants handles DELETE /api/participants/clear
func (h *Handler) ClearParticipants(c echo.Context) error {
	if _, err := h.participantService.ClearParticipants(c.Request().Context(), &participant.ClearParticipantsInput{}); err != nil {
		return h.respondError(c, err, messaging.ErrorTypeInternal, "")
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Liste des participants vidée."})
}

package rest

import (
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/KirkDiggler/speedmeet/internal/models"
	"github.com/KirkDiggler/speedmeet/internal/services/messaging"
	"github.com/KirkDiggler/speedmeet/internal/services/session"
	"github.com/labstack/echo/v4"
)

// generateRequest keeps the field names the web client already sends
type generateRequest struct {
	TableCount      *int   `json:"tableCountLabel"`
	SessionDuration *int   `json:"sessionDurationLabel"`
	MinutesPerRound *int   `json:"time_per_round"`
	Seed            *int64 `json:"seed"`
}

type metadataResponse struct {
	TotalParticipants      int `json:"total_participants"`
	TotalRounds            int `json:"total_rounds"`
	ParticipantsPerTable   int `json:"participants_per_table"`
	MinutesPerRound        int `json:"time_per_round_minutes"`
	TotalTables            int `json:"total_tables"`
	SessionDurationMinutes int `json:"session_duration_minutes"`
	RepeatedPairs          int `json:"repeated_pairs"`
}

type tableResponse struct {
	TableID   int      `json:"table_id"`
	TableName string   `json:"table_name"`
	Members   []string `json:"members"`
}

type roundResponse struct {
	Round  int             `json:"round"`
	Tables []tableResponse `json:"tables"`
}

type sessionResponse struct {
	SessionID string           `json:"session_id"`
	CreatedAt time.Time        `json:"created_at"`
	Metadata  metadataResponse `json:"metadata"`
	Rounds    []roundResponse  `json:"rounds"`
	Message   string           `json:"message,omitempty"`
}

type itineraryEntryResponse struct {
	Rotation  int    `json:"rotation"`
	Table     int    `json:"table"`
	TableName string `json:"table_name"`
}

type itineraryResponse struct {
	Participant    string                   `json:"participant"`
	TotalRotations int                      `json:"total_rotations"`
	Itinerary      []itineraryEntryResponse `json:"itinerary"`
	ItineraryText  string                   `json:"itinerary_text"`
}

type tableRotationEntryResponse struct {
	Rotation int      `json:"rotation"`
	Members  []string `json:"members"`
}

type tableRotationsResponse struct {
	TableID   int                          `json:"table_id"`
	TableName string                       `json:"table_name"`
	Rotations []tableRotationEntryResponse `json:"rotations"`
}

func newSessionResponse(plan *models.SessionPlan, message string) sessionResponse {
	rounds := make([]roundResponse, 0, len(plan.Rounds))
	for _, round := range plan.Rounds {
		tables := make([]tableResponse, 0, len(round.Tables))
		for _, table := range round.Tables {
			tables = append(tables, tableResponse{
				TableID:   table.ID,
				TableName: table.Name,
				Members:   table.MemberNames(),
			})
		}
		rounds = append(rounds, roundResponse{
			Round:  round.Number,
			Tables: tables,
		})
	}

	meta := plan.Metadata
	return sessionResponse{
		SessionID: plan.ID,
		CreatedAt: plan.CreatedAt,
		Metadata: metadataResponse{
			TotalParticipants:      meta.TotalParticipants,
			TotalRounds:            meta.TotalRounds,
			ParticipantsPerTable:   meta.ParticipantsPerTable,
			MinutesPerRound:        meta.MinutesPerRound,
			TotalTables:            meta.TotalTables,
			SessionDurationMinutes: meta.SessionDurationMinutes,
			RepeatedPairs:          meta.RepeatedPairs,
		},
		Rounds:  rounds,
		Message: message,
	}
}

// GenerateSession handles POST /api/generate
func (h *Handler) GenerateSession(c echo.Context) error {
	var req generateRequest
	if err := c.Bind(&req); err != nil {
		return h.respondDetail(c, http.StatusBadRequest, messaging.ErrorTypeInvalidConfiguration, "")
	}

	input := &session.GenerateSessionInput{
		SessionDurationMinutes: h.defaultSessionDuration,
		MinutesPerRound:        h.defaultMinutesPerRound,
		Seed:                   req.Seed,
	}
	if req.TableCount != nil {
		input.TableCount = *req.TableCount
	}
	if req.SessionDuration != nil {
		input.SessionDurationMinutes = *req.SessionDuration
	}
	if req.MinutesPerRound != nil {
		input.MinutesPerRound = *req.MinutesPerRound
	}

	out, err := h.sessionService.GenerateSession(c.Request().Context(), input)
	if err != nil {
		return h.respondError(c, err, messaging.ErrorTypeInternal, "")
	}

	return c.JSON(http.StatusOK, newSessionResponse(out.Plan, out.Message))
}

// PreviewSession handles GET /api/preview
func (h *Handler) PreviewSession(c echo.Context) error {
	input := &session.PreviewSessionInput{
		SessionDurationMinutes: h.defaultSessionDuration,
		MinutesPerRound:        h.defaultMinutesPerRound,
	}

	err := echo.QueryParamsBinder(c).
		MustInt("participants", &input.ParticipantCount).
		MustInt("tables", &input.TableCount).
		Int("duration", &input.SessionDurationMinutes).
		Int("time_per_round", &input.MinutesPerRound).
		BindError()
	if err != nil {
		return h.respondDetail(c, http.StatusBadRequest, messaging.ErrorTypeInvalidConfiguration, "")
	}

	out, err := h.sessionService.PreviewSession(c.Request().Context(), input)
	if err != nil {
		return h.respondError(c, err, messaging.ErrorTypeInternal, "")
	}

	return c.JSON(http.StatusOK, newSessionResponse(out.Plan, ""))
}

// GetCurrentSession handles GET /api/session/current
func (h *Handler) GetCurrentSession(c echo.Context) error {
	out, err := h.sessionService.GetCurrentSession(c.Request().Context(), &session.GetCurrentSessionInput{})
	if err != nil {
		return h.respondError(c, err, messaging.ErrorTypeInternal, "")
	}

	return c.JSON(http.StatusOK, newSessionResponse(out.Plan, ""))
}

// ClearCurrentSession handles DELETE /api/session/current
func (h *Handler) ClearCurrentSession(c echo.Context) error {
	if _, err := h.sessionService.ClearCurrentSession(c.Request().Context(), &session.ClearCurrentSessionInput{}); err != nil {
		return h.respondError(c, err, messaging.ErrorTypeInternal, "")
	}

	return c.NoContent(http.StatusNoContent)
}

// GetItinerary handles GET /api/participants/name/:name/itinerary
func (h *Handler) GetItinerary(c echo.Context) error {
	name := c.Param("name")
	if unescaped, err := url.PathUnescape(name); err == nil {
		name = unescaped
	}

	out, err := h.sessionService.GetItinerary(c.Request().Context(), &session.GetItineraryInput{
		ParticipantName: name,
	})
	if err != nil {
		return h.respondError(c, err, messaging.ErrorTypeParticipantNotFound, name)
	}

	entries := make([]itineraryEntryResponse, 0, len(out.Itinerary.Entries))
	for _, entry := range out.Itinerary.Entries {
		entries = append(entries, itineraryEntryResponse{
			Rotation:  entry.Round,
			Table:     entry.TableID,
			TableName: entry.TableName,
		})
	}

	return c.JSON(http.StatusOK, itineraryResponse{
		Participant:    out.Itinerary.Participant,
		TotalRotations: len(entries),
		Itinerary:      entries,
		ItineraryText:  out.Text,
	})
}

// GetTableRotations handles GET /api/tables/:id/rotations
func (h *Handler) GetTableRotations(c echo.Context) error {
	raw := c.Param("id")
	tableID, err := strconv.Atoi(raw)
	if err != nil {
		return h.respondDetail(c, http.StatusNotFound, messaging.ErrorTypeTableNotFound, raw)
	}

	out, err := h.sessionService.GetTableRotations(c.Request().Context(), &session.GetTableRotationsInput{
		TableID: tableID,
	})
	if err != nil {
		return h.respondError(c, err, messaging.ErrorTypeTableNotFound, raw)
	}

	rotations := make([]tableRotationEntryResponse, 0, len(out.Rotation.Rounds))
	for _, round := range out.Rotation.Rounds {
		names := make([]string, 0, len(round.Members))
		for _, m := range round.Members {
			names = append(names, m.Name)
		}
		rotations = append(rotations, tableRotationEntryResponse{
			Rotation: round.Round,
			Members:  names,
		})
	}

	return c.JSON(http.StatusOK, tableRotationsResponse{
		TableID:   out.Rotation.TableID,
		TableName: out.Rotation.TableName,
		Rotations: rotations,
	})
}

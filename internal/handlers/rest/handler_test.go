package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/KirkDiggler/speedmeet/internal/itinerary"
	"github.com/KirkDiggler/speedmeet/internal/models"
	"github.com/KirkDiggler/speedmeet/internal/scheduler"
	"github.com/KirkDiggler/speedmeet/internal/services/messaging"
	"github.com/KirkDiggler/speedmeet/internal/services/participant"
	participantMocks "github.com/KirkDiggler/speedmeet/internal/services/participant/mocks"
	"github.com/KirkDiggler/speedmeet/internal/services/session"
	sessionMocks "github.com/KirkDiggler/speedmeet/internal/services/session/mocks"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type HandlerTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockSession     *sessionMocks.MockService
	mockParticipant *participantMocks.MockService
	server          *echo.Echo
	testTime        time.Time
	plan            *models.SessionPlan
}

func (s *HandlerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockSession = sessionMocks.NewMockService(s.mockCtrl)
	s.mockParticipant = participantMocks.NewMockService(s.mockCtrl)
	s.testTime = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)

	messages, err := messaging.NewService(&messaging.ServiceConfig{})
	s.Require().NoError(err)

	h, err := New(&Config{
		SessionService:         s.mockSession,
		ParticipantService:     s.mockParticipant,
		MessagingService:       messages,
		DefaultMinutesPerRound: 10,
		DefaultSessionDuration: 60,
	})
	s.Require().NoError(err)

	s.server = NewServer(&ServerConfig{Handler: h})

	participants := []*models.Participant{
		{ID: "p1", Name: "Alice MARTIN", Active: true},
		{ID: "p2", Name: "Bruno DURAND", Active: true},
		{ID: "p3", Name: "Chloé PETIT", Active: true},
		{ID: "p4", Name: "David LEROY", Active: true},
	}
	plan, err := scheduler.Generate(participants, 2, 2)
	s.Require().NoError(err)
	plan.ID = "plan-1"
	plan.CreatedAt = s.testTime
	plan.Metadata.MinutesPerRound = 10
	plan.Metadata.SessionDurationMinutes = 20
	s.plan = plan
}

func (s *HandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) do(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	s.server.ServeHTTP(rec, req)
	return rec
}

func (s *HandlerTestSuite) decode(rec *httptest.ResponseRecorder, target any) {
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), target))
}

func (s *HandlerTestSuite) detail(rec *httptest.ResponseRecorder) string {
	var body errorResponse
	s.decode(rec, &body)
	return body.Detail
}

func (s *HandlerTestSuite) TestGenerateSession() {
	s.mockSession.EXPECT().
		GenerateSession(gomock.Any(), &session.GenerateSessionInput{
			TableCount:             2,
			SessionDurationMinutes: 20,
			MinutesPerRound:        10,
		}).
		Return(&session.GenerateSessionOutput{Plan: s.plan, Message: "Session générée avec succès."}, nil)

	rec := s.do(http.MethodPost, "/api/generate", `{"tableCountLabel": 2, "sessionDurationLabel": 20, "time_per_round": 10}`)
	s.Require().Equal(http.StatusOK, rec.Code)

	var body sessionResponse
	s.decode(rec, &body)
	s.Equal("plan-1", body.SessionID)
	s.Equal("Session générée avec succès.", body.Message)
	s.Equal(4, body.Metadata.TotalParticipants)
	s.Equal(2, body.Metadata.TotalRounds)
	s.Equal(2, body.Metadata.ParticipantsPerTable)
	s.Equal(10, body.Metadata.MinutesPerRound)
	s.Require().Len(body.Rounds, 2)
	s.Equal(1, body.Rounds[0].Round)
	s.Equal("Table 1", body.Rounds[0].Tables[0].TableName)
	s.Equal([]string{"Alice MARTIN", "Bruno DURAND"}, body.Rounds[0].Tables[0].Members)
}

func (s *HandlerTestSuite) TestGenerateSessionAppliesDefaults() {
	seed := int64(7)
	s.mockSession.EXPECT().
		GenerateSession(gomock.Any(), &session.GenerateSessionInput{
			TableCount:             3,
			SessionDurationMinutes: 60,
			MinutesPerRound:        10,
			Seed:                   &seed,
		}).
		Return(&session.GenerateSessionOutput{Plan: s.plan}, nil)

	rec := s.do(http.MethodPost, "/api/generate", `{"tableCountLabel": 3, "seed": 7}`)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *HandlerTestSuite) TestGenerateSessionErrors() {
	testCases := []struct {
		name     string
		err      error
		status   int
		contains string
	}{
		{
			name:     "empty roster",
			err:      scheduler.ErrEmptyRoster,
			status:   http.StatusBadRequest,
			contains: "La liste des participants est vide",
		},
		{
			name:     "invalid configuration",
			err:      scheduler.ErrInvalidConfiguration,
			status:   http.StatusBadRequest,
			contains: "Configuration invalide",
		},
		{
			name:     "storage failure",
			err:      errors.New("redis down"),
			status:   http.StatusInternalServerError,
			contains: "erreur interne",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.mockSession.EXPECT().GenerateSession(gomock.Any(), gomock.Any()).Return(nil, tc.err)

			rec := s.do(http.MethodPost, "/api/generate", `{"tableCountLabel": 2}`)
			s.Equal(tc.status, rec.Code)
			s.Contains(s.detail(rec), tc.contains)
		})
	}
}

func (s *HandlerTestSuite) TestGenerateSessionBadBody() {
	rec := s.do(http.MethodPost, "/api/generate", `{"tableCountLabel": "two"}`)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(s.detail(rec), "Configuration invalide")
}

func (s *HandlerTestSuite) TestGetItinerary() {
	s.mockSession.EXPECT().
		GetItinerary(gomock.Any(), &session.GetItineraryInput{ParticipantName: "Chloé PETIT"}).
		Return(&session.GetItineraryOutput{
			Itinerary: &models.Itinerary{
				ParticipantID: "p3",
				Participant:   "Chloé PETIT",
				Entries: []models.ItineraryEntry{
					{Round: 1, TableID: 2, TableName: "Table 2"},
					{Round: 2, TableID: 1, TableName: "Table 1"},
				},
			},
			Text: "Itinéraire de Chloé PETIT\n",
		}, nil)

	rec := s.do(http.MethodGet, "/api/participants/name/Chlo%C3%A9%20PETIT/itinerary", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var body itineraryResponse
	s.decode(rec, &body)
	s.Equal("Chloé PETIT", body.Participant)
	s.Equal(2, body.TotalRotations)
	s.Equal([]itineraryEntryResponse{
		{Rotation: 1, Table: 2, TableName: "Table 2"},
		{Rotation: 2, Table: 1, TableName: "Table 1"},
	}, body.Itinerary)
	s.Equal("Itinéraire de Chloé PETIT\n", body.ItineraryText)
}

func (s *HandlerTestSuite) TestGetItineraryWithoutSession() {
	s.mockSession.EXPECT().GetItinerary(gomock.Any(), gomock.Any()).Return(nil, itinerary.ErrNoActiveSession)

	rec := s.do(http.MethodGet, "/api/participants/name/Alice/itinerary", "")
	s.Equal(http.StatusNotFound, rec.Code)
	s.Contains(s.detail(rec), "Aucune session")
}

func (s *HandlerTestSuite) TestGetItineraryUnknownName() {
	s.mockSession.EXPECT().GetItinerary(gomock.Any(), gomock.Any()).Return(nil, itinerary.ErrNotFound)

	rec := s.do(http.MethodGet, "/api/participants/name/Nobody/itinerary", "")
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("Participant introuvable : Nobody", s.detail(rec))
}

func (s *HandlerTestSuite) TestGetCurrentSession() {
	s.mockSession.EXPECT().GetCurrentSession(gomock.Any(), gomock.Any()).
		Return(&session.GetCurrentSessionOutput{Plan: s.plan}, nil)

	rec := s.do(http.MethodGet, "/api/session/current", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var body sessionResponse
	s.decode(rec, &body)
	s.Equal("plan-1", body.SessionID)
	s.True(s.testTime.Equal(body.CreatedAt))
	s.Empty(body.Message)
}

func (s *HandlerTestSuite) TestClearCurrentSession() {
	s.mockSession.EXPECT().ClearCurrentSession(gomock.Any(), gomock.Any()).
		Return(&session.ClearCurrentSessionOutput{}, nil)

	rec := s.do(http.MethodDelete, "/api/session/current", "")
	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *HandlerTestSuite) TestGetTableRotations() {
	rotation, err := itinerary.TableRotations(s.plan, 1)
	s.Require().NoError(err)
	s.mockSession.EXPECT().
		GetTableRotations(gomock.Any(), &session.GetTableRotationsInput{TableID: 1}).
		Return(&session.GetTableRotationsOutput{Rotation: rotation}, nil)

	rec := s.do(http.MethodGet, "/api/tables/1/rotations", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var body tableRotationsResponse
	s.decode(rec, &body)
	s.Equal(1, body.TableID)
	s.Equal("Table 1", body.TableName)
	s.Require().Len(body.Rotations, 2)
	s.Equal([]string{"Alice MARTIN", "Bruno DURAND"}, body.Rotations[0].Members)
}

func (s *HandlerTestSuite) TestGetTableRotationsBadID() {
	rec := s.do(http.MethodGet, "/api/tables/abc/rotations", "")
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("Table introuvable : abc", s.detail(rec))

	s.mockSession.EXPECT().GetTableRotations(gomock.Any(), gomock.Any()).Return(nil, itinerary.ErrNotFound)
	rec = s.do(http.MethodGet, "/api/tables/9/rotations", "")
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("Table introuvable : 9", s.detail(rec))
}

func (s *HandlerTestSuite) TestPreviewSession() {
	s.mockSession.EXPECT().
		PreviewSession(gomock.Any(), &session.PreviewSessionInput{
			ParticipantCount:       4,
			TableCount:             2,
			SessionDurationMinutes: 20,
			MinutesPerRound:        10,
		}).
		Return(&session.PreviewSessionOutput{Plan: s.plan}, nil)

	rec := s.do(http.MethodGet, "/api/preview?participants=4&tables=2&duration=20", "")
	s.Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/api/preview?tables=2", "")
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerTestSuite) TestRateLimitGuardsPreviewAndPolledRoutes() {
	limited := map[string]bool{}
	blockAll := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			limited[c.Path()] = true
			return c.NoContent(http.StatusTooManyRequests)
		}
	}

	messages, err := messaging.NewService(&messaging.ServiceConfig{})
	s.Require().NoError(err)

	h, err := New(&Config{
		SessionService:         s.mockSession,
		ParticipantService:     s.mockParticipant,
		MessagingService:       messages,
		DefaultMinutesPerRound: 10,
		DefaultSessionDuration: 60,
	})
	s.Require().NoError(err)
	s.server = NewServer(&ServerConfig{Handler: h, RateLimit: blockAll})

	for _, target := range []string{
		"/api/preview?participants=4&tables=2",
		"/api/participants/name/alice/itinerary",
		"/api/tables/1/rotations",
	} {
		rec := s.do(http.MethodGet, target, "")
		s.Equal(http.StatusTooManyRequests, rec.Code, target)
	}
	s.True(limited["/api/preview"])

	s.mockParticipant.EXPECT().ListParticipants(gomock.Any(), gomock.Any()).
		Return(&participant.ListParticipantsOutput{}, nil)
	rec := s.do(http.MethodGet, "/api/participants", "")
	s.Equal(http.StatusOK, rec.Code)
}

func (s *HandlerTestSuite) TestAddParticipant() {
	s.mockParticipant.EXPECT().
		AddParticipant(gomock.Any(), &participant.AddParticipantInput{
			FirstName: "Alice",
			LastName:  "Martin",
			Email:     "alice@example.com",
		}).
		Return(&participant.AddParticipantOutput{Participant: &models.Participant{
			ID:        "p1",
			FirstName: "Alice",
			LastName:  "MARTIN",
			Name:      "Alice MARTIN",
			Email:     "alice@example.com",
			Active:    true,
			CreatedAt: s.testTime,
		}}, nil)

	rec := s.do(http.MethodPost, "/api/participants", `{"first_name": "Alice", "last_name": "Martin", "email": "alice@example.com"}`)
	s.Require().Equal(http.StatusCreated, rec.Code)

	var body participantResponse
	s.decode(rec, &body)
	s.Equal("p1", body.ID)
	s.Equal("Alice MARTIN", body.Name)
	s.True(body.Active)
}

func (s *HandlerTestSuite) TestAddParticipantInvalid() {
	s.mockParticipant.EXPECT().AddParticipant(gomock.Any(), gomock.Any()).Return(nil, participant.ErrInvalidParticipant)

	rec := s.do(http.MethodPost, "/api/participants", `{"first_name": "Alice"}`)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(s.detail(rec), "Participant invalide")
}

func (s *HandlerTestSuite) TestImportParticipants() {
	s.mockParticipant.EXPECT().ImportParticipants(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, input *participant.ImportParticipantsInput) (*participant.ImportParticipantsOutput, error) {
			s.Len(input.Rows, 2)
			return &participant.ImportParticipantsOutput{
				Participants: []*models.Participant{
					{ID: "p1", Name: "Alice MARTIN", Active: true},
					{ID: "p2", Name: "Bob DUPONT", Active: true},
				},
			}, nil
		})

	rec := s.do(http.MethodPost, "/api/participants/import",
		`{"participants": [{"first_name": "Alice", "last_name": "Martin"}, {"first_name": "Bob", "last_name": "Dupont"}]}`)
	s.Require().Equal(http.StatusOK, rec.Code)

	var body importResponse
	s.decode(rec, &body)
	s.Equal(2, body.Imported)
	s.Len(body.Participants, 2)
}

func (s *HandlerTestSuite) TestImportParticipantsRejectsIncompleteBatch() {
	s.mockParticipant.EXPECT().ImportParticipants(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("row 2: %w", participant.ErrInvalidParticipant))

	rec := s.do(http.MethodPost, "/api/participants/import",
		`{"participants": [{"first_name": "Alice", "last_name": "Martin"}, {"first_name": "Bob"}]}`)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(s.detail(rec), "Participant invalide")
}

func (s *HandlerTestSuite) TestListParticipants() {
	s.mockParticipant.EXPECT().
		ListParticipants(gomock.Any(), &participant.ListParticipantsInput{ActiveOnly: true}).
		Return(&participant.ListParticipantsOutput{Participants: []*models.Participant{{ID: "p1", Name: "Alice MARTIN"}}}, nil)

	rec := s.do(http.MethodGet, "/api/participants?active=true", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var body []participantResponse
	s.decode(rec, &body)
	s.Require().Len(body, 1)
	s.Equal("p1", body[0].ID)
}

func (s *HandlerTestSuite) TestToggleParticipant() {
	s.mockParticipant.EXPECT().
		SetParticipantActive(gomock.Any(), &participant.SetParticipantActiveInput{ParticipantID: "p1", Active: false}).
		Return(&participant.SetParticipantActiveOutput{Participant: &models.Participant{ID: "p1"}}, nil)

	rec := s.do(http.MethodPost, "/api/participants/p1/deactivate", "")
	s.Equal(http.StatusOK, rec.Code)

	s.mockParticipant.EXPECT().
		SetParticipantActive(gomock.Any(), &participant.SetParticipantActiveInput{ParticipantID: "missing", Active: true}).
		Return(nil, participant.ErrParticipantNotFound)

	rec = s.do(http.MethodPost, "/api/participants/missing/activate", "")
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("Participant introuvable : missing", s.detail(rec))
}

func (s *HandlerTestSuite) TestRemoveAndClearParticipants() {
	s.mockParticipant.EXPECT().
		RemoveParticipant(gomock.Any(), &participant.RemoveParticipantInput{ParticipantID: "p1"}).
		Return(&participant.RemoveParticipantOutput{}, nil)

	rec := s.do(http.MethodDelete, "/api/participants/p1", "")
	s.Equal(http.StatusNoContent, rec.Code)

	s.mockParticipant.EXPECT().ClearParticipants(gomock.Any(), gomock.Any()).
		Return(&participant.ClearParticipantsOutput{}, nil)

	rec = s.do(http.MethodDelete, "/api/participants/clear", "")
	s.Equal(http.StatusOK, rec.Code)
}

func (s *HandlerTestSuite) TestHealth() {
	rec := s.do(http.MethodGet, "/healthz", "")
	s.Equal(http.StatusOK, rec.Code)
}

func (s *HandlerTestSuite) TestNewValidatesDependencies() {
	_, err := New(nil)
	s.Error(err)

	_, err = New(&Config{SessionService: s.mockSession})
	s.Error(err)
}

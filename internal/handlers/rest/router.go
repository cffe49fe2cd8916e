package rest

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// ServerConfig configures the echo instance
type ServerConfig struct {
	Handler     *Handler
	CORSOrigins []string

	// RateLimit guards the polled endpoints and previews; nil disables it
	RateLimit echo.MiddlewareFunc
}

// NewServer builds the echo instance with middleware and routes
func NewServer(cfg *ServerConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Printf("%s %s %d %s", v.Method, v.URI, v.Status, v.Latency)
			return nil
		},
	}))

	if len(cfg.CORSOrigins) > 0 {
		e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: cfg.CORSOrigins,
			AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		}))
	}

	RegisterRoutes(e, cfg.Handler, cfg.RateLimit)

	return e
}

// RegisterRoutes maps the API onto e
func RegisterRoutes(e *echo.Echo, h *Handler, rateLimit echo.MiddlewareFunc) {
	var polled []echo.MiddlewareFunc
	if rateLimit != nil {
		polled = append(polled, rateLimit)
	}

	e.GET("/healthz", h.Health)

	api := e.Group("/api")

	api.POST("/generate", h.GenerateSession)
	api.GET("/preview", h.PreviewSession, polled...)
	api.GET("/session/current", h.GetCurrentSession)
	api.DELETE("/session/current", h.ClearCurrentSession)
	api.GET("/tables/:id/rotations", h.GetTableRotations, polled...)

	api.GET("/participants", h.ListParticipants)
	api.POST("/participants", h.AddParticipant)
	api.POST("/participants/import", h.ImportParticipants)
	api.DELETE("/participants/clear", h.ClearParticipants)
	api.GET("/participants/name/:name/itinerary", h.GetItinerary, polled...)
	api.POST("/participants/:id/activate", h.ActivateParticipant)
	api.POST("/participants/:id/deactivate", h.DeactivateParticipant)
	api.DELETE("/participants/:id", h.RemoveParticipant)
}

// Health reports that the process is serving
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

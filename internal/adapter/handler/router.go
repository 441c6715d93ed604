package handler

import (
	stdErrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/johnquangdev/meeting-notes/internal/adapter/dto/common"
	"github.com/johnquangdev/meeting-notes/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg            *config.Config
	meetingHandler *Meeting
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, meetingHandler *Meeting) *Router {
	return &Router{
		cfg:            cfg,
		meetingHandler: meetingHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// API v1 group
	v1 := e.Group("/v1")
	v1.GET("/status", rt.status)

	rt.setupMeetingRoutes(v1)
}

// setupMeetingRoutes configures meeting notes routes
func (rt *Router) setupMeetingRoutes(g *echo.Group) {
	notes := g.Group("/meetings/notes")

	notes.POST("", rt.meetingHandler.Process)
	notes.POST("/analyze", rt.meetingHandler.Analyze)
	notes.GET("/latest", rt.meetingHandler.Latest)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}

// status reports which pipeline components are configured
// @Summary      Pipeline status
// @Description  Lists configured components; secret values are never returned
// @Tags         System
// @Produce      json
// @Success      200  {object}  common.StatusResponse
// @Router       /status [get]
func (rt *Router) status(c echo.Context) error {
	return HandleSuccess(nil, c, BuildStatus(rt.cfg))
}

// BuildStatus summarizes configuration without exposing secret values
func BuildStatus(cfg *config.Config) common.StatusResponse {
	return common.StatusResponse{
		Environment: cfg.Server.Environment,
		Extractor:   componentStatus(cfg.ValidateExtractor(), cfg.Extractor.Provider),
		Notion:      componentStatus(cfg.ValidateNotion(), ""),
		Slack:       common.ComponentStatus{Configured: cfg.Slack.WebhookURL != ""},
	}
}

func componentStatus(err error, provider string) common.ComponentStatus {
	status := common.ComponentStatus{Configured: err == nil, Provider: provider}
	var cfgErr *config.ConfigError
	if stdErrors.As(err, &cfgErr) {
		status.Missing = cfgErr.Missing
	}
	return status
}

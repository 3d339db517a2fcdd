package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/wekesa/mizigo/internal/pkg/middleware"
	"github.com/wekesa/mizigo/internal/pkg/models"
	natspkg "github.com/wekesa/mizigo/internal/pkg/nats"
	"github.com/wekesa/mizigo/services/tracking"
	httpHandler "github.com/wekesa/mizigo/services/tracking/handler/http"
)

// Handler combines the HTTP and NATS handlers for the tracking service
type Handler struct {
	trackingHTTP *httpHandler.TrackingHandler
	trackingNATS *NATSHandler
	cfg          *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(trackingUC tracking.TrackingUC, natsClient *natspkg.Client, cfg *models.Config) *Handler {
	return &Handler{
		trackingHTTP: httpHandler.NewTrackingHandler(trackingUC),
		trackingNATS: NewNATSHandler(trackingUC, natsClient),
		cfg:          cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	keys := map[string]string{
		"app": h.cfg.APIKey.TrackingKey,
	}

	internal := e.Group("/internal", middleware.ValidateAPIKey(keys, "app"))

	internal.POST("/trips/:id/tracking", h.trackingHTTP.StartTracking)
	internal.DELETE("/trips/:id/tracking", h.trackingHTTP.StopTracking)
	internal.GET("/trips/:id/tracking", h.trackingHTTP.GetStatus)
	internal.GET("/trips/:id/alerts", h.trackingHTTP.GetAlerts)
	internal.GET("/trips/:id/routes/alternatives", h.trackingHTTP.GetAlternativeRoutes)
}

// InitNATSConsumers initializes all NATS consumers
func (h *Handler) InitNATSConsumers() error {
	return h.trackingNATS.InitNATSConsumers()
}

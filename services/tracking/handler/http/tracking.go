package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/wekesa/mizigo/internal/pkg/logger"
	"github.com/wekesa/mizigo/internal/pkg/models"
	"github.com/wekesa/mizigo/internal/utils"
	"github.com/wekesa/mizigo/services/tracking"
	"github.com/wekesa/mizigo/services/tracking/usecase"
)

// TrackingHandler handles HTTP requests for tracking operations
type TrackingHandler struct {
	trackingUC tracking.TrackingUC
}

// NewTrackingHandler creates a new tracking HTTP handler
func NewTrackingHandler(trackingUC tracking.TrackingUC) *TrackingHandler {
	return &TrackingHandler{
		trackingUC: trackingUC,
	}
}

// StartTracking starts (or joins) the tracking session for a trip
func (h *TrackingHandler) StartTracking(c echo.Context) error {
	tripID := c.Param("id")
	if tripID == "" {
		return utils.BadRequestResponse(c, "trip id is required")
	}

	var req struct {
		ObserverID string `json:"observer_id"`
	}
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}
	if req.ObserverID == "" {
		return utils.BadRequestResponse(c, "observer_id is required")
	}

	err := h.trackingUC.Start(c.Request().Context(), tripID, req.ObserverID, tracking.Callbacks{})
	if err != nil {
		if errors.Is(err, usecase.ErrTerminalStatus) {
			return utils.ConflictResponse(c, err.Error())
		}
		logger.Error("Failed to start tracking",
			logger.String("trip_id", tripID),
			logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "failed to start tracking")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Tracking started", map[string]string{"trip_id": tripID})
}

// StopTracking stops the tracking session for a trip
func (h *TrackingHandler) StopTracking(c echo.Context) error {
	tripID := c.Param("id")
	if tripID == "" {
		return utils.BadRequestResponse(c, "trip id is required")
	}

	h.trackingUC.Stop(tripID)
	return utils.SuccessResponse(c, http.StatusOK, "Tracking stopped", map[string]string{"trip_id": tripID})
}

// GetStatus reports whether a trip is being tracked and when it last updated
func (h *TrackingHandler) GetStatus(c echo.Context) error {
	tripID := c.Param("id")
	if tripID == "" {
		return utils.BadRequestResponse(c, "trip id is required")
	}

	active := h.trackingUC.IsActive(tripID)
	var lastUpdate *time.Time
	if t, ok := h.trackingUC.LastUpdate(tripID); ok && !t.IsZero() {
		lastUpdate = &t
	}

	return utils.SuccessResponse(c, http.StatusOK, "Tracking status", map[string]interface{}{
		"trip_id":     tripID,
		"active":      active,
		"last_update": lastUpdate,
	})
}

// GetAlerts returns the trip's bounded alert history
func (h *TrackingHandler) GetAlerts(c echo.Context) error {
	tripID := c.Param("id")
	if tripID == "" {
		return utils.BadRequestResponse(c, "trip id is required")
	}

	alerts, err := h.trackingUC.AlertHistory(c.Request().Context(), tripID)
	if err != nil {
		logger.Error("Failed to load alert history",
			logger.String("trip_id", tripID),
			logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "failed to load alerts")
	}
	if alerts == nil {
		alerts = []models.TrafficAlert{}
	}

	return utils.SuccessResponse(c, http.StatusOK, "Alert history", alerts)
}

// GetAlternativeRoutes returns ranked alternatives to the trip's current route
func (h *TrackingHandler) GetAlternativeRoutes(c echo.Context) error {
	tripID := c.Param("id")
	if tripID == "" {
		return utils.BadRequestResponse(c, "trip id is required")
	}

	options, err := h.trackingUC.AlternativeRoutes(c.Request().Context(), tripID)
	if err != nil {
		logger.Error("Failed to fetch alternative routes",
			logger.String("trip_id", tripID),
			logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "failed to fetch alternative routes")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Alternative routes", options)
}

package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/wekesa/mizigo/internal/pkg/middleware"
	"github.com/wekesa/mizigo/internal/pkg/models"
	"github.com/wekesa/mizigo/services/planner"
	httpHandler "github.com/wekesa/mizigo/services/planner/handler/http"
)

// Handler wires the planner HTTP handlers
type Handler struct {
	plannerHTTP *httpHandler.PlannerHandler
	cfg         *models.Config
}

// NewHandler creates a new planner handler
func NewHandler(plannerUC planner.PlannerUC, cfg *models.Config) *Handler {
	return &Handler{
		plannerHTTP: httpHandler.NewPlannerHandler(plannerUC),
		cfg:         cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	keys := map[string]string{
		"app": h.cfg.APIKey.PlannerKey,
	}

	internal := e.Group("/internal", middleware.ValidateAPIKey(keys, "app"))

	internal.POST("/trips/:id/plans", h.plannerHTTP.ComputePlan)
	internal.POST("/trips/:id/plans/accept", h.plannerHTTP.AcceptPlan)
}

package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/wekesa/mizigo/internal/pkg/logger"
	"github.com/wekesa/mizigo/internal/pkg/models"
	"github.com/wekesa/mizigo/internal/utils"
	"github.com/wekesa/mizigo/services/planner"
	"github.com/wekesa/mizigo/services/planner/usecase"
)

// PlannerHandler handles HTTP requests for consolidation planning
type PlannerHandler struct {
	plannerUC planner.PlannerUC
}

// NewPlannerHandler creates a new planner HTTP handler
func NewPlannerHandler(plannerUC planner.PlannerUC) *PlannerHandler {
	return &PlannerHandler{
		plannerUC: plannerUC,
	}
}

// ComputePlan computes a consolidation plan for a trip. The plan is a
// proposal; the caller accepts it with a separate request or discards it by
// doing nothing.
func (h *PlannerHandler) ComputePlan(c echo.Context) error {
	tripID := c.Param("id")
	if tripID == "" {
		return utils.BadRequestResponse(c, "trip id is required")
	}

	plan, err := h.plannerUC.PlanTrip(c.Request().Context(), tripID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNoCandidates):
			return utils.NotFoundResponse(c, "no consolidatable loads available")
		case errors.Is(err, usecase.ErrTerminalStatus):
			return utils.ConflictResponse(c, err.Error())
		}
		logger.Error("Failed to compute plan",
			logger.String("trip_id", tripID),
			logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "failed to compute plan")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Consolidation plan", plan)
}

// AcceptPlan commits a computed plan to the trip's route
func (h *PlannerHandler) AcceptPlan(c echo.Context) error {
	tripID := c.Param("id")
	if tripID == "" {
		return utils.BadRequestResponse(c, "trip id is required")
	}

	var plan models.ConsolidatedRoutePlan
	if err := c.Bind(&plan); err != nil {
		return utils.BadRequestResponse(c, "invalid plan body")
	}
	if len(plan.Waypoints) == 0 && len(plan.LoadIDs) > 0 {
		return utils.BadRequestResponse(c, "plan has loads but no waypoints")
	}

	if err := h.plannerUC.Accept(c.Request().Context(), tripID, plan); err != nil {
		if errors.Is(err, usecase.ErrTerminalStatus) || errors.Is(err, usecase.ErrNoActiveSession) {
			return utils.ConflictResponse(c, err.Error())
		}
		logger.Error("Failed to accept plan",
			logger.String("trip_id", tripID),
			logger.String("plan_id", plan.ID),
			logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "failed to accept plan")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Plan accepted", map[string]string{
		"trip_id": tripID,
		"plan_id": plan.ID,
	})
}

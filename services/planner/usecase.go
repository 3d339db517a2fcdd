package planner

import (
	"context"

	"github.com/wekesa/mizigo/internal/pkg/models"
)

// PlannerUC defines the interface for load consolidation operations
type PlannerUC interface {
	// PlanTrip computes a consolidation plan for the trip's current route
	// from the open load pool. The plan is a proposal; nothing is stored.
	PlanTrip(ctx context.Context, tripID string) (*models.ConsolidatedRoutePlan, error)

	// Accept commits a previously computed plan: the trip's current route
	// is replaced wholesale by the plan's waypoint sequence. Rejecting a
	// plan is simply never calling Accept.
	Accept(ctx context.Context, tripID string, plan models.ConsolidatedRoutePlan) error
}

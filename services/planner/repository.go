package planner

import (
	"context"

	"github.com/wekesa/mizigo/internal/pkg/models"
)

// PlannerRepo defines the interface for planner data operations
type PlannerRepo interface {
	// GetCurrentRoute returns the trip's planned route, or nil if none is
	// stored yet
	GetCurrentRoute(ctx context.Context, tripID string) (*models.Route, error)

	// StoreRoute replaces the trip's planned route wholesale
	StoreRoute(ctx context.Context, route models.Route) error
}

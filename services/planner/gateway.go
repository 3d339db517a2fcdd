package planner

import (
	"context"

	"github.com/wekesa/mizigo/internal/pkg/models"
)

// PlannerGW defines the interface for planner gateway operations:
// the bookings API (trips, vehicles, loads) and the routing provider.
type PlannerGW interface {
	// Bookings API
	GetTrip(ctx context.Context, tripID string) (*models.Trip, error)
	GetVehicleCapacity(ctx context.Context, transporterID string) (models.Capacity, error)
	ListOpenLoads(ctx context.Context, origin models.GeoPoint, radiusKm float64) ([]models.Load, error)

	// Routing provider
	GetRouteMetrics(ctx context.Context, points []models.GeoPoint) (*models.RouteMetrics, error)
}

package tracking

import (
	"context"

	"github.com/wekesa/mizigo/internal/pkg/models"
)

// TrackingGW defines the interface for tracking gateway operations:
// the bookings API, the routing/traffic provider, and NATS publishing.
type TrackingGW interface {
	// Bookings API (source of truth for trip status)
	GetTrip(ctx context.Context, tripID string) (*models.Trip, error)

	// Event publishing
	PublishDeviationEvent(ctx context.Context, event models.RouteDeviationEvent) error
	PublishAlerts(ctx context.Context, tripID string, alerts []models.TrafficAlert) error

	// Routing/traffic provider
	GetTrafficSnapshot(ctx context.Context, center models.GeoPoint, radiusKm float64) (*models.TrafficSnapshot, error)
	GetAlternativeRoutes(ctx context.Context, route models.Route) ([]models.RouteOption, error)
	ReverseGeocode(ctx context.Context, point models.GeoPoint) (string, error)
}

package tracking

import (
	"context"
	"time"

	"github.com/wekesa/mizigo/internal/pkg/models"
)

// Callbacks are the observer hooks invoked on each tracking tick.
// Nil entries are skipped. Callbacks receive copies, never internal state.
type Callbacks struct {
	OnLocationUpdate func(pos models.TrackedPosition)
	OnRouteDeviation func(ev models.RouteDeviationEvent)
	OnTrafficAlert   func(alerts []models.TrafficAlert)
	OnDegraded       func(degraded bool)
}

// TrackingUC defines the interface for tracking session business logic
type TrackingUC interface {
	// Session lifecycle
	Start(ctx context.Context, tripID, observerID string, cb Callbacks) error
	Stop(tripID string)
	Unsubscribe(tripID, observerID string)
	IsActive(tripID string) bool
	LastUpdate(tripID string) (time.Time, bool)

	// Queries
	AlertHistory(ctx context.Context, tripID string) ([]models.TrafficAlert, error)
	AlternativeRoutes(ctx context.Context, tripID string) ([]models.RouteOption, error)

	// Event-driven session management
	HandleTripStatus(ctx context.Context, event models.TripStatusEvent) error
	HandlePositionReport(ctx context.Context, pos models.TrackedPosition) error
}

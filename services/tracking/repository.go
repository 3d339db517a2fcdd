package tracking

import (
	"context"

	"github.com/wekesa/mizigo/internal/pkg/models"
)

// TrackingRepo defines the interface for tracking data access operations
type TrackingRepo interface {
	// Latest-position cache (one sample per trip, superseded by each report)
	StorePosition(ctx context.Context, pos models.TrackedPosition) error
	GetLatestPosition(ctx context.Context, tripID string) (*models.TrackedPosition, error)

	// Current route (replaced wholesale on consolidation acceptance)
	GetCurrentRoute(ctx context.Context, tripID string) (*models.Route, error)

	// Bounded alert history, most recent first
	AppendAlerts(ctx context.Context, tripID string, alerts []models.TrafficAlert, limit int) error
	GetAlertHistory(ctx context.Context, tripID string, limit int) ([]models.TrafficAlert, error)
}

package gateway

import (
	"context"
	"fmt"
	"strings"
	"time"

	httpclient "github.com/wekesa/mizigo/internal/pkg/http"
	"github.com/wekesa/mizigo/internal/pkg/logger"
	"github.com/wekesa/mizigo/internal/pkg/models"
	"github.com/wekesa/mizigo/internal/pkg/retry"
	"github.com/wekesa/mizigo/services/planner"
)

// plannerGW bundles the bookings API client and the routing provider client
// behind the planner.PlannerGW interface.
type plannerGW struct {
	bookingsClient *httpclient.Client
	routingClient  *httpclient.Client
	retrier        *retry.Retrier
}

// NewPlannerGW creates a new planner gateway
func NewPlannerGW(cfg *models.Config, zapLogger *logger.ZapLogger) planner.PlannerGW {
	return &plannerGW{
		bookingsClient: httpclient.NewClient(cfg.Services.BookingsAPIURL, 10*time.Second).WithAPIKey(cfg.APIKey.PlannerKey),
		routingClient:  httpclient.NewClient(cfg.Services.RoutingAPIURL, 10*time.Second),
		retrier:        retry.NewWithDefaults(zapLogger),
	}
}

// GetTrip fetches a trip from the bookings API, the source of truth for
// trip status.
func (g *plannerGW) GetTrip(ctx context.Context, tripID string) (*models.Trip, error) {
	var trip models.Trip
	err := g.retrier.Execute(ctx, func(ctx context.Context) error {
		return g.bookingsClient.Get(ctx, "/bookings/"+tripID, &trip)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking %s: %w", tripID, err)
	}
	return &trip, nil
}

// GetVehicleCapacity fetches the carrying capacity of the transporter's
// vehicle.
func (g *plannerGW) GetVehicleCapacity(ctx context.Context, transporterID string) (models.Capacity, error) {
	var capacity models.Capacity
	err := g.retrier.Execute(ctx, func(ctx context.Context) error {
		return g.bookingsClient.Get(ctx, "/transporters/"+transporterID+"/vehicle", &capacity)
	})
	if err != nil {
		return models.Capacity{}, fmt.Errorf("failed to fetch vehicle for transporter %s: %w", transporterID, err)
	}
	return capacity, nil
}

// ListOpenLoads fetches the pool of consolidatable loads near a point
func (g *plannerGW) ListOpenLoads(ctx context.Context, origin models.GeoPoint, radiusKm float64) ([]models.Load, error) {
	var loads []models.Load
	path := fmt.Sprintf("/loads?status=open&consolidatable=true&lat=%f&lng=%f&radius_km=%f",
		origin.Latitude, origin.Longitude, radiusKm)
	if err := g.bookingsClient.Get(ctx, path, &loads); err != nil {
		return nil, fmt.Errorf("failed to fetch open loads: %w", err)
	}
	return loads, nil
}

// GetRouteMetrics asks the routing provider for road distance and duration
// over an ordered point sequence.
func (g *plannerGW) GetRouteMetrics(ctx context.Context, points []models.GeoPoint) (*models.RouteMetrics, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("need at least two points")
	}

	coords := make([]string, 0, len(points))
	for _, p := range points {
		coords = append(coords, fmt.Sprintf("%f,%f", p.Latitude, p.Longitude))
	}

	var metrics models.RouteMetrics
	path := "/routes/metrics?points=" + strings.Join(coords, ";")
	if err := g.routingClient.Get(ctx, path, &metrics); err != nil {
		return nil, fmt.Errorf("failed to fetch route metrics: %w", err)
	}
	return &metrics, nil
}

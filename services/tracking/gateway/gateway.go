package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/wekesa/mizigo/internal/pkg/constants"
	httpclient "github.com/wekesa/mizigo/internal/pkg/http"
	"github.com/wekesa/mizigo/internal/pkg/logger"
	"github.com/wekesa/mizigo/internal/pkg/models"
	natspkg "github.com/wekesa/mizigo/internal/pkg/nats"
	"github.com/wekesa/mizigo/internal/pkg/retry"
	"github.com/wekesa/mizigo/services/tracking"
)

// trackingGW bundles the bookings API client, the routing provider client
// and the NATS producer behind the tracking.TrackingGW interface.
type trackingGW struct {
	bookingsClient *httpclient.Client
	routingClient  *httpclient.Client
	producer       *natspkg.Producer
	retrier        *retry.Retrier
}

// NewTrackingGW creates a new tracking gateway
func NewTrackingGW(cfg *models.Config, natsClient *natspkg.Client, zapLogger *logger.ZapLogger) tracking.TrackingGW {
	return &trackingGW{
		bookingsClient: httpclient.NewClient(cfg.Services.BookingsAPIURL, 10*time.Second).WithAPIKey(cfg.APIKey.TrackingKey),
		routingClient:  httpclient.NewClient(cfg.Services.RoutingAPIURL, 10*time.Second),
		producer:       natspkg.NewProducer(natsClient),
		retrier:        retry.NewWithDefaults(zapLogger),
	}
}

// GetTrip fetches a trip from the bookings API, the source of truth for
// trip status.
func (g *trackingGW) GetTrip(ctx context.Context, tripID string) (*models.Trip, error) {
	var trip models.Trip
	err := g.retrier.Execute(ctx, func(ctx context.Context) error {
		return g.bookingsClient.Get(ctx, "/bookings/"+tripID, &trip)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking %s: %w", tripID, err)
	}
	return &trip, nil
}

// PublishDeviationEvent publishes a deviation event for downstream consumers
func (g *trackingGW) PublishDeviationEvent(ctx context.Context, event models.RouteDeviationEvent) error {
	return g.producer.Publish(constants.SubjectTripDeviation, event)
}

// PublishAlerts publishes the trip's ranked alert list
func (g *trackingGW) PublishAlerts(ctx context.Context, tripID string, alerts []models.TrafficAlert) error {
	return g.producer.Publish(constants.SubjectTripAlert, alertBatch{TripID: tripID, Alerts: alerts})
}

// GetTrafficSnapshot queries the routing provider for live traffic
// conditions around a point.
func (g *trackingGW) GetTrafficSnapshot(ctx context.Context, center models.GeoPoint, radiusKm float64) (*models.TrafficSnapshot, error) {
	var snapshot models.TrafficSnapshot
	path := fmt.Sprintf("/traffic?lat=%f&lng=%f&radius_km=%f", center.Latitude, center.Longitude, radiusKm)
	if err := g.routingClient.Get(ctx, path, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to fetch traffic snapshot: %w", err)
	}
	return &snapshot, nil
}

// GetAlternativeRoutes asks the routing provider for alternatives between
// the current route's endpoints.
func (g *trackingGW) GetAlternativeRoutes(ctx context.Context, route models.Route) ([]models.RouteOption, error) {
	if !route.Valid() {
		return nil, fmt.Errorf("route has no endpoints")
	}

	start, end := route.Start(), route.End()
	path := fmt.Sprintf("/routes/alternatives?from_lat=%f&from_lng=%f&to_lat=%f&to_lng=%f",
		start.Latitude, start.Longitude, end.Latitude, end.Longitude)

	var options []models.RouteOption
	if err := g.routingClient.Get(ctx, path, &options); err != nil {
		return nil, fmt.Errorf("failed to fetch alternative routes: %w", err)
	}
	return options, nil
}

// ReverseGeocode resolves a place name for a point
func (g *trackingGW) ReverseGeocode(ctx context.Context, point models.GeoPoint) (string, error) {
	var result struct {
		Name string `json:"name"`
	}
	path := fmt.Sprintf("/geocode/reverse?lat=%f&lng=%f", point.Latitude, point.Longitude)
	if err := g.routingClient.Get(ctx, path, &result); err != nil {
		return "", fmt.Errorf("failed to reverse geocode: %w", err)
	}
	return result.Name, nil
}

// alertBatch is the wire shape for published alert lists
type alertBatch struct {
	TripID string                `json:"trip_id"`
	Alerts []models.TrafficAlert `json:"alerts"`
}

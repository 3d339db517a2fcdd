package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/wekesa/mizigo/internal/pkg/constants"
	"github.com/wekesa/mizigo/internal/pkg/database"
	"github.com/wekesa/mizigo/internal/pkg/models"
	"github.com/wekesa/mizigo/internal/utils"
	"github.com/wekesa/mizigo/services/tracking"
)

const (
	// PositionTTL keeps position data around long enough for post-trip
	// review without growing the keyspace indefinitely.
	PositionTTL = 24 * time.Hour

	// RouteTTL outlives the longest plausible trip
	RouteTTL = 7 * 24 * time.Hour

	// positionGeohashPrecision gives cells of roughly 150m, enough for
	// corridor-level proximity queries.
	positionGeohashPrecision = 7
)

type trackingRepo struct {
	redisClient *database.RedisClient
}

// NewTrackingRepository creates a new tracking repository
func NewTrackingRepository(redisClient *database.RedisClient) tracking.TrackingRepo {
	return &trackingRepo{
		redisClient: redisClient,
	}
}

// StorePosition stores the latest position sample for a trip. Each sample
// supersedes the previous one; only the latest is retained.
func (r *trackingRepo) StorePosition(ctx context.Context, pos models.TrackedPosition) error {
	positionKey := fmt.Sprintf(constants.KeyTripPosition, pos.TripID)
	positionData := map[string]interface{}{
		constants.FieldLatitude:  strconv.FormatFloat(pos.Point.Latitude, 'f', -1, 64),
		constants.FieldLongitude: strconv.FormatFloat(pos.Point.Longitude, 'f', -1, 64),
		constants.FieldTimestamp: strconv.FormatInt(pos.Timestamp.Unix(), 10),
		constants.FieldGeohash:   utils.EncodeLocation(pos.Point, positionGeohashPrecision),
	}

	if err := r.redisClient.HMSet(ctx, positionKey, positionData); err != nil {
		return fmt.Errorf("failed to store position: %w", err)
	}

	if err := r.redisClient.Expire(ctx, positionKey, PositionTTL); err != nil {
		return fmt.Errorf("failed to set position TTL: %w", err)
	}

	// Geo set for fleet-wide queries
	if err := r.redisClient.GeoAdd(ctx, constants.KeyTransportGeo, pos.Point.Longitude, pos.Point.Latitude, pos.TripID); err != nil {
		return fmt.Errorf("failed to update geo set: %w", err)
	}

	return nil
}

// GetLatestPosition gets the last stored position for a trip
func (r *trackingRepo) GetLatestPosition(ctx context.Context, tripID string) (*models.TrackedPosition, error) {
	positionKey := fmt.Sprintf(constants.KeyTripPosition, tripID)

	values, err := r.redisClient.HMGet(ctx, positionKey,
		constants.FieldLatitude,
		constants.FieldLongitude,
		constants.FieldTimestamp,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get position data: %w", err)
	}

	hasValue := false
	for _, v := range values {
		if v != "" {
			hasValue = true
			break
		}
	}
	if !hasValue || len(values) != 3 {
		return nil, fmt.Errorf("no position data found for trip %s", tripID)
	}

	lat, err := strconv.ParseFloat(values[0], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude: %w", err)
	}

	lng, err := strconv.ParseFloat(values[1], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude: %w", err)
	}

	ts, err := strconv.ParseInt(values[2], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid timestamp: %w", err)
	}

	return &models.TrackedPosition{
		TripID:    tripID,
		Point:     models.GeoPoint{Latitude: lat, Longitude: lng},
		Timestamp: time.Unix(ts, 0),
	}, nil
}

// GetCurrentRoute loads the trip's current route document
func (r *trackingRepo) GetCurrentRoute(ctx context.Context, tripID string) (*models.Route, error) {
	routeKey := fmt.Sprintf(constants.KeyTripRoute, tripID)

	data, err := r.redisClient.Get(ctx, routeKey)
	if err != nil {
		return nil, fmt.Errorf("no route found for trip %s: %w", tripID, err)
	}

	var route models.Route
	if err := json.Unmarshal([]byte(data), &route); err != nil {
		return nil, fmt.Errorf("failed to decode route for trip %s: %w", tripID, err)
	}
	return &route, nil
}

// AppendAlerts prepends alerts to the trip's history list, trimming beyond
// the cap so the oldest entries are evicted first.
func (r *trackingRepo) AppendAlerts(ctx context.Context, tripID string, alerts []models.TrafficAlert, limit int) error {
	if len(alerts) == 0 {
		return nil
	}

	alertsKey := fmt.Sprintf(constants.KeyTripAlerts, tripID)

	entries := make([]interface{}, 0, len(alerts))
	for _, alert := range alerts {
		data, err := json.Marshal(alert)
		if err != nil {
			return fmt.Errorf("failed to encode alert: %w", err)
		}
		entries = append(entries, data)
	}

	if err := r.redisClient.LPush(ctx, alertsKey, entries...); err != nil {
		return fmt.Errorf("failed to append alerts: %w", err)
	}
	if err := r.redisClient.LTrim(ctx, alertsKey, 0, int64(limit-1)); err != nil {
		return fmt.Errorf("failed to trim alert history: %w", err)
	}
	return r.redisClient.Expire(ctx, alertsKey, PositionTTL)
}

// GetAlertHistory returns up to limit alerts for a trip, most recent first
func (r *trackingRepo) GetAlertHistory(ctx context.Context, tripID string, limit int) ([]models.TrafficAlert, error) {
	alertsKey := fmt.Sprintf(constants.KeyTripAlerts, tripID)

	entries, err := r.redisClient.LRange(ctx, alertsKey, 0, int64(limit-1))
	if err != nil {
		return nil, fmt.Errorf("failed to read alert history: %w", err)
	}

	alerts := make([]models.TrafficAlert, 0, len(entries))
	for _, entry := range entries {
		var alert models.TrafficAlert
		if err := json.Unmarshal([]byte(entry), &alert); err != nil {
			return nil, fmt.Errorf("failed to decode alert: %w", err)
		}
		alerts = append(alerts, alert)
	}
	return alerts, nil
}

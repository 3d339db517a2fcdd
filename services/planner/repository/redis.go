package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/wekesa/mizigo/internal/pkg/constants"
	"github.com/wekesa/mizigo/internal/pkg/database"
	"github.com/wekesa/mizigo/internal/pkg/models"
	"github.com/wekesa/mizigo/services/planner"
)

// RouteTTL outlives the longest plausible trip
const RouteTTL = 7 * 24 * time.Hour

type plannerRepo struct {
	redisClient *database.RedisClient
}

// NewPlannerRepository creates a new planner repository
func NewPlannerRepository(redisClient *database.RedisClient) planner.PlannerRepo {
	return &plannerRepo{
		redisClient: redisClient,
	}
}

// GetCurrentRoute reads the trip's stored route. A missing route is not an
// error here; the planner falls back to the trip's own anchors.
func (r *plannerRepo) GetCurrentRoute(ctx context.Context, tripID string) (*models.Route, error) {
	routeKey := fmt.Sprintf(constants.KeyTripRoute, tripID)

	data, err := r.redisClient.Get(ctx, routeKey)
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read route: %w", err)
	}

	var route models.Route
	if err := json.Unmarshal([]byte(data), &route); err != nil {
		return nil, fmt.Errorf("failed to decode route for trip %s: %w", tripID, err)
	}
	return &route, nil
}

// StoreRoute replaces the trip's route document wholesale. The tracking
// service reads the same key, so an accepted plan takes effect on the next
// deviation check.
func (r *plannerRepo) StoreRoute(ctx context.Context, route models.Route) error {
	routeKey := fmt.Sprintf(constants.KeyTripRoute, route.TripID)

	data, err := json.Marshal(route)
	if err != nil {
		return fmt.Errorf("failed to encode route: %w", err)
	}
	if err := r.redisClient.Set(ctx, routeKey, data, RouteTTL); err != nil {
		return fmt.Errorf("failed to store route: %w", err)
	}
	return nil
}

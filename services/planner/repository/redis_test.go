package repository

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wekesa/mizigo/internal/pkg/database"
	"github.com/wekesa/mizigo/internal/pkg/models"
)

func setupMiniredis(t *testing.T) *database.RedisClient {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return &database.RedisClient{Client: client}
}

func TestStoreRoute_RoundTrip(t *testing.T) {
	repo := NewPlannerRepository(setupMiniredis(t))
	ctx := context.Background()

	route := models.Route{
		TripID: "trip-123",
		Points: []models.GeoPoint{
			{Latitude: -1.2921, Longitude: 36.8219},
			{Latitude: -2.0, Longitude: 37.5},
			{Latitude: -4.0435, Longitude: 39.6682},
		},
	}

	require.NoError(t, repo.StoreRoute(ctx, route))

	got, err := repo.GetCurrentRoute(ctx, "trip-123")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, route, *got)
}

func TestStoreRoute_ReplacesWholesale(t *testing.T) {
	repo := NewPlannerRepository(setupMiniredis(t))
	ctx := context.Background()

	first := models.Route{
		TripID: "trip-123",
		Points: []models.GeoPoint{{Latitude: 0, Longitude: 0}, {Latitude: 1, Longitude: 1}},
	}
	second := models.Route{
		TripID: "trip-123",
		Points: []models.GeoPoint{{Latitude: 0, Longitude: 0}, {Latitude: 0.5, Longitude: 0.5}, {Latitude: 1, Longitude: 1}},
	}

	require.NoError(t, repo.StoreRoute(ctx, first))
	require.NoError(t, repo.StoreRoute(ctx, second))

	got, err := repo.GetCurrentRoute(ctx, "trip-123")
	require.NoError(t, err)
	assert.Len(t, got.Points, 3)
}

func TestGetCurrentRoute_MissingIsNotAnError(t *testing.T) {
	repo := NewPlannerRepository(setupMiniredis(t))

	got, err := repo.GetCurrentRoute(context.Background(), "nope")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

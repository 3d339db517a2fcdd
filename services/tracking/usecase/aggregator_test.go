package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/wekesa/mizigo/internal/pkg/cache"
	"github.com/wekesa/mizigo/internal/pkg/models"
	"github.com/wekesa/mizigo/services/tracking/mocks"
)

func newTestAggregator(t *testing.T, historyLimit int) (*AlertAggregator, *mocks.MockTrackingGW) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockGW := mocks.NewMockTrackingGW(ctrl)
	places, err := cache.NewPlaceCache(16)
	assert.NoError(t, err)

	return NewAlertAggregator(1.0, historyLimit, mockGW, places), mockGW
}

func TestAggregate_RanksBySeverityThenRecency(t *testing.T) {
	aggregator, _ := newTestAggregator(t, 50)

	now := time.Now()
	external := []models.TrafficAlert{
		{ID: "a", Severity: models.AlertSeverityLow, CreatedAt: now},
		{ID: "b", Severity: models.AlertSeverityCritical, CreatedAt: now.Add(-time.Hour)},
		{ID: "c", Severity: models.AlertSeverityMedium, CreatedAt: now.Add(-time.Minute)},
		{ID: "d", Severity: models.AlertSeverityMedium, CreatedAt: now},
	}

	alerts := aggregator.Aggregate("trip-1", nil, external)

	ids := make([]string, 0, len(alerts))
	for _, a := range alerts {
		ids = append(ids, a.ID)
	}
	// critical first, then the two mediums most recent first, then low
	assert.Equal(t, []string{"b", "d", "c", "a"}, ids)
}

func TestAggregate_SynthesizesDeviationAlert(t *testing.T) {
	aggregator, _ := newTestAggregator(t, 50)

	dev := &models.RouteDeviationEvent{
		TripID:            "trip-1",
		DetectedAt:        time.Now(),
		DistanceFromRoute: 1.5,
		Deviating:         true,
	}

	alerts := aggregator.Aggregate("trip-1", dev, nil)

	assert.Len(t, alerts, 1)
	assert.Equal(t, models.AlertTypeDeviation, alerts[0].Type)
	assert.Equal(t, models.AlertSeverityMedium, alerts[0].Severity)
}

func TestAggregate_DeviationSeverityScalesWithDistance(t *testing.T) {
	aggregator, _ := newTestAggregator(t, 50)

	dev := &models.RouteDeviationEvent{
		TripID:            "trip-1",
		DetectedAt:        time.Now(),
		DistanceFromRoute: 2.5, // more than twice the 1.0 km threshold
		Deviating:         true,
	}

	alerts := aggregator.Aggregate("trip-1", dev, nil)

	assert.Len(t, alerts, 1)
	assert.Equal(t, models.AlertSeverityHigh, alerts[0].Severity)
}

func TestAggregate_RecoveryEventProducesNoAlert(t *testing.T) {
	aggregator, _ := newTestAggregator(t, 50)

	dev := &models.RouteDeviationEvent{TripID: "trip-1", Deviating: false}

	alerts := aggregator.Aggregate("trip-1", dev, nil)
	assert.Empty(t, alerts)
}

func TestHistory_BoundedEviction(t *testing.T) {
	aggregator, _ := newTestAggregator(t, 5)

	for i := 0; i < 10; i++ {
		aggregator.Aggregate("trip-1", nil, []models.TrafficAlert{
			{ID: fmt.Sprintf("alert-%d", i), Severity: models.AlertSeverityLow, CreatedAt: time.Now()},
		})
	}

	hist := aggregator.History("trip-1")
	assert.Len(t, hist, 5)
	// most recent batch is first, oldest entries were evicted
	assert.Equal(t, "alert-9", hist[0].ID)
	assert.Equal(t, "alert-5", hist[4].ID)
}

func TestForget_DropsHistory(t *testing.T) {
	aggregator, _ := newTestAggregator(t, 5)

	aggregator.Aggregate("trip-1", nil, []models.TrafficAlert{
		{ID: "a", Severity: models.AlertSeverityLow, CreatedAt: time.Now()},
	})
	aggregator.Forget("trip-1")

	assert.Empty(t, aggregator.History("trip-1"))
}

func TestRankAlternativeRoutes_AnnotatesAndSorts(t *testing.T) {
	aggregator, mockGW := newTestAggregator(t, 50)

	route := models.Route{
		TripID: "trip-1",
		Points: []models.GeoPoint{{Latitude: 0, Longitude: 0}, {Latitude: 1, Longitude: 1}},
	}

	mockGW.EXPECT().
		GetAlternativeRoutes(gomock.Any(), route).
		Return([]models.RouteOption{
			{ID: "slow", DistanceKm: 120, DurationMin: 90, HasTolls: false},
			{ID: "fast", DistanceKm: 110, DurationMin: 60, HasTolls: true},
		}, nil)

	options, err := aggregator.RankAlternativeRoutes(context.Background(), route, 100, 75)

	assert.NoError(t, err)
	assert.Len(t, options, 2)
	// sorted by duration ascending
	assert.Equal(t, "fast", options[0].ID)
	assert.Contains(t, options[0].Advantages, "15 min faster")
	assert.Contains(t, options[0].Disadvantages, "10.0 km longer")
	assert.Contains(t, options[0].Disadvantages, "includes toll roads")
	assert.Contains(t, options[1].Advantages, "toll free")
	assert.Contains(t, options[1].Disadvantages, "15 min slower")
}

func TestPlaceName_CachesLookups(t *testing.T) {
	aggregator, mockGW := newTestAggregator(t, 50)

	point := models.GeoPoint{Latitude: -1.2921, Longitude: 36.8219}

	mockGW.EXPECT().
		ReverseGeocode(gomock.Any(), point).
		Return("Nairobi CBD", nil).
		Times(1)

	assert.Equal(t, "Nairobi CBD", aggregator.PlaceName(context.Background(), point))
	// second lookup is served from the cache
	assert.Equal(t, "Nairobi CBD", aggregator.PlaceName(context.Background(), point))
}

func TestPlaceName_AbsorbsProviderFailure(t *testing.T) {
	aggregator, mockGW := newTestAggregator(t, 50)

	point := models.GeoPoint{Latitude: -1.2921, Longitude: 36.8219}

	mockGW.EXPECT().
		ReverseGeocode(gomock.Any(), point).
		Return("", fmt.Errorf("provider down"))

	assert.Equal(t, "", aggregator.PlaceName(context.Background(), point))
}

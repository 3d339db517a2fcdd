package usecase

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/wekesa/mizigo/internal/pkg/cache"
	"github.com/wekesa/mizigo/internal/pkg/models"
	"github.com/wekesa/mizigo/services/tracking"
	"github.com/wekesa/mizigo/services/tracking/mocks"
)

func testConfig() *models.Config {
	return &models.Config{
		Tracking: models.TrackingConfig{
			// Long interval so no tick fires unless the test waits for one
			IntervalSec:          60,
			FetchTimeoutSec:      5,
			DeviationThresholdKm: 1.0,
			AlertHistoryLimit:    50,
			DegradedAfter:        3,
		},
	}
}

func newTestUC(t *testing.T, cfg *models.Config) (*TrackingUCImpl, *mocks.MockTrackingRepo, *mocks.MockTrackingGW) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockTrackingRepo(ctrl)
	mockGW := mocks.NewMockTrackingGW(ctrl)

	places, err := cache.NewPlaceCache(16)
	assert.NoError(t, err)

	detector := NewDeviationDetector(cfg.Tracking.DeviationThresholdKm)
	aggregator := NewAlertAggregator(cfg.Tracking.DeviationThresholdKm, cfg.Tracking.AlertHistoryLimit, mockGW, places)

	return NewTrackingUC(cfg, mockRepo, mockGW, detector, aggregator), mockRepo, mockGW
}

func activeTrip(tripID string) *models.Trip {
	return &models.Trip{ID: tripID, Status: models.TripStatusInProgress}
}

func TestStart_IdempotentJoin(t *testing.T) {
	uc, _, mockGW := newTestUC(t, testConfig())

	// Trip status is validated once; the second Start joins the existing
	// session without another fetch.
	mockGW.EXPECT().GetTrip(gomock.Any(), "trip-1").Return(activeTrip("trip-1"), nil).Times(1)

	assert.NoError(t, uc.Start(context.Background(), "trip-1", "observer-1", tracking.Callbacks{}))
	assert.NoError(t, uc.Start(context.Background(), "trip-1", "observer-2", tracking.Callbacks{}))
	assert.True(t, uc.IsActive("trip-1"))

	uc.Stop("trip-1")
}

func TestStart_SecondJoinKeepsSingleTickRate(t *testing.T) {
	cfg := testConfig()
	cfg.Tracking.IntervalSec = 1
	cfg.Tracking.DegradedAfter = 100

	uc, mockRepo, mockGW := newTestUC(t, cfg)

	mockGW.EXPECT().GetTrip(gomock.Any(), "trip-1").Return(activeTrip("trip-1"), nil).Times(1)

	var ticks int64
	mockRepo.EXPECT().
		GetLatestPosition(gomock.Any(), "trip-1").
		DoAndReturn(func(ctx context.Context, tripID string) (*models.TrackedPosition, error) {
			atomic.AddInt64(&ticks, 1)
			return nil, errors.New("no position yet")
		}).
		AnyTimes()

	assert.NoError(t, uc.Start(context.Background(), "trip-1", "observer-1", tracking.Callbacks{}))
	assert.NoError(t, uc.Start(context.Background(), "trip-1", "observer-2", tracking.Callbacks{}))

	// One loop serves both observers: roughly two ticks in 2.5s on a 1s
	// interval, never the doubled rate a second loop would produce
	time.Sleep(2500 * time.Millisecond)
	uc.Stop("trip-1")

	seen := atomic.LoadInt64(&ticks)
	assert.GreaterOrEqual(t, seen, int64(1))
	assert.LessOrEqual(t, seen, int64(3))
}

func TestStart_RejectsTerminalStatus(t *testing.T) {
	uc, _, mockGW := newTestUC(t, testConfig())

	mockGW.EXPECT().GetTrip(gomock.Any(), "trip-1").
		Return(&models.Trip{ID: "trip-1", Status: models.TripStatusCompleted}, nil)

	err := uc.Start(context.Background(), "trip-1", "observer-1", tracking.Callbacks{})

	assert.ErrorIs(t, err, ErrTerminalStatus)
	assert.False(t, uc.IsActive("trip-1"))
}

func TestStart_PropagatesFetchError(t *testing.T) {
	uc, _, mockGW := newTestUC(t, testConfig())

	mockGW.EXPECT().GetTrip(gomock.Any(), "trip-1").Return(nil, errors.New("bookings down"))

	err := uc.Start(context.Background(), "trip-1", "observer-1", tracking.Callbacks{})

	assert.Error(t, err)
	assert.False(t, uc.IsActive("trip-1"))
}

func TestStop_NoFurtherTicks(t *testing.T) {
	cfg := testConfig()
	cfg.Tracking.IntervalSec = 1
	cfg.Tracking.DegradedAfter = 100

	uc, mockRepo, mockGW := newTestUC(t, cfg)

	mockGW.EXPECT().GetTrip(gomock.Any(), "trip-1").Return(activeTrip("trip-1"), nil)

	var ticks int64
	mockRepo.EXPECT().
		GetLatestPosition(gomock.Any(), "trip-1").
		DoAndReturn(func(ctx context.Context, tripID string) (*models.TrackedPosition, error) {
			atomic.AddInt64(&ticks, 1)
			return nil, errors.New("no position yet")
		}).
		AnyTimes()

	assert.NoError(t, uc.Start(context.Background(), "trip-1", "observer-1", tracking.Callbacks{}))

	// Let at least one tick happen, then stop
	time.Sleep(1500 * time.Millisecond)
	uc.Stop("trip-1")
	assert.False(t, uc.IsActive("trip-1"))

	seen := atomic.LoadInt64(&ticks)
	assert.GreaterOrEqual(t, seen, int64(1))

	// Stop blocks until the loop exits, so no tick may happen after it
	time.Sleep(1500 * time.Millisecond)
	assert.Equal(t, seen, atomic.LoadInt64(&ticks))

	// Stopping again is a no-op
	uc.Stop("trip-1")
}

func TestTick_DegradedAfterConsecutiveFailures(t *testing.T) {
	cfg := testConfig()
	uc, mockRepo, _ := newTestUC(t, cfg)

	var degradedCalls []bool
	s := &session{
		tripID:    "trip-1",
		done:      make(chan struct{}),
		observers: map[string]tracking.Callbacks{"observer-1": {
			OnDegraded: func(d bool) { degradedCalls = append(degradedCalls, d) },
		}},
	}

	mockRepo.EXPECT().
		GetLatestPosition(gomock.Any(), "trip-1").
		Return(nil, errors.New("redis timeout")).
		Times(4)

	// Two failures: below the threshold, no callback yet
	uc.tick(context.Background(), s)
	uc.tick(context.Background(), s)
	assert.Empty(t, degradedCalls)

	// Third consecutive failure crosses the threshold
	uc.tick(context.Background(), s)
	assert.Equal(t, []bool{true}, degradedCalls)

	// Further failures do not re-fire the callback
	uc.tick(context.Background(), s)
	assert.Equal(t, []bool{true}, degradedCalls)
}

func TestTick_RecoveryClearsDegraded(t *testing.T) {
	cfg := testConfig()
	uc, mockRepo, mockGW := newTestUC(t, cfg)

	var degradedCalls []bool
	var positions []models.TrackedPosition
	s := &session{
		tripID: "trip-1",
		done:   make(chan struct{}),
		observers: map[string]tracking.Callbacks{"observer-1": {
			OnDegraded:       func(d bool) { degradedCalls = append(degradedCalls, d) },
			OnLocationUpdate: func(pos models.TrackedPosition) { positions = append(positions, pos) },
		}},
	}

	mockRepo.EXPECT().
		GetLatestPosition(gomock.Any(), "trip-1").
		Return(nil, errors.New("redis timeout")).
		Times(3)

	for i := 0; i < 3; i++ {
		uc.tick(context.Background(), s)
	}
	assert.Equal(t, []bool{true}, degradedCalls)

	pos := &models.TrackedPosition{
		TripID:    "trip-1",
		Point:     models.GeoPoint{Latitude: 0.005, Longitude: 0},
		Timestamp: time.Now(),
	}
	route := &models.Route{
		TripID: "trip-1",
		Points: []models.GeoPoint{{Latitude: 0, Longitude: 0}, {Latitude: 1, Longitude: 1}},
	}

	mockRepo.EXPECT().GetLatestPosition(gomock.Any(), "trip-1").Return(pos, nil)
	mockRepo.EXPECT().GetCurrentRoute(gomock.Any(), "trip-1").Return(route, nil)
	mockGW.EXPECT().GetTrafficSnapshot(gomock.Any(), pos.Point, 5.0).Return(nil, errors.New("provider down"))

	uc.tick(context.Background(), s)

	assert.Equal(t, []bool{true, false}, degradedCalls)
	assert.Len(t, positions, 1)
	assert.Equal(t, "trip-1", positions[0].TripID)

	lastUpdate := s.lastUpdate
	assert.False(t, lastUpdate.IsZero())
}

func TestTick_NoRouteStillAggregatesTraffic(t *testing.T) {
	cfg := testConfig()
	uc, mockRepo, mockGW := newTestUC(t, cfg)

	var received []models.TrafficAlert
	s := &session{
		tripID: "trip-1",
		done:   make(chan struct{}),
		observers: map[string]tracking.Callbacks{"observer-1": {
			OnTrafficAlert: func(alerts []models.TrafficAlert) { received = append(received, alerts...) },
		}},
	}

	pos := &models.TrackedPosition{
		TripID:    "trip-1",
		Point:     models.GeoPoint{Latitude: -1.2921, Longitude: 36.8219},
		Timestamp: time.Now(),
	}
	snapshot := &models.TrafficSnapshot{
		Center:   pos.Point,
		RadiusKm: 5.0,
		Alerts: []models.TrafficAlert{{
			ID:       "ext-1",
			TripID:   "trip-1",
			Type:     models.AlertTypeAccident,
			Severity: models.AlertSeverityHigh,
			Message:  "accident ahead",
		}},
	}

	// Route fetch fails but external traffic alerts still flow
	mockRepo.EXPECT().GetLatestPosition(gomock.Any(), "trip-1").Return(pos, nil)
	mockRepo.EXPECT().GetCurrentRoute(gomock.Any(), "trip-1").Return(nil, errors.New("no route yet"))
	mockGW.EXPECT().GetTrafficSnapshot(gomock.Any(), pos.Point, 5.0).Return(snapshot, nil)
	mockRepo.EXPECT().AppendAlerts(gomock.Any(), "trip-1", gomock.Any(), 50).Return(nil)
	mockGW.EXPECT().PublishAlerts(gomock.Any(), "trip-1", gomock.Any()).Return(nil)

	uc.tick(context.Background(), s)

	assert.Len(t, received, 1)
	assert.Equal(t, "ext-1", received[0].ID)
}

func TestTick_PublishesDeviationOnTransition(t *testing.T) {
	cfg := testConfig()
	uc, mockRepo, mockGW := newTestUC(t, cfg)

	var deviations []models.RouteDeviationEvent
	s := &session{
		tripID: "trip-1",
		done:   make(chan struct{}),
		observers: map[string]tracking.Callbacks{"observer-1": {
			OnRouteDeviation: func(ev models.RouteDeviationEvent) { deviations = append(deviations, ev) },
		}},
	}

	// ~2.2 km off both anchors
	pos := &models.TrackedPosition{
		TripID:    "trip-1",
		Point:     models.GeoPoint{Latitude: 0.02, Longitude: 0},
		Timestamp: time.Now(),
	}
	route := &models.Route{
		TripID: "trip-1",
		Points: []models.GeoPoint{{Latitude: 0, Longitude: 0}, {Latitude: 1, Longitude: 1}},
	}

	mockRepo.EXPECT().GetLatestPosition(gomock.Any(), "trip-1").Return(pos, nil).Times(2)
	mockRepo.EXPECT().GetCurrentRoute(gomock.Any(), "trip-1").Return(route, nil).Times(2)
	mockGW.EXPECT().GetTrafficSnapshot(gomock.Any(), pos.Point, 5.0).Return(nil, errors.New("provider down")).Times(2)

	// First tick: transition into deviation, event published and alert stored
	mockGW.EXPECT().PublishDeviationEvent(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().ReverseGeocode(gomock.Any(), pos.Point).Return("", errors.New("no geocoder"))
	mockRepo.EXPECT().AppendAlerts(gomock.Any(), "trip-1", gomock.Any(), 50).Return(nil)
	mockGW.EXPECT().PublishAlerts(gomock.Any(), "trip-1", gomock.Any()).Return(nil)

	uc.tick(context.Background(), s)
	assert.Len(t, deviations, 1)
	assert.True(t, deviations[0].Deviating)

	// Second tick at the same position: steady state, nothing published
	uc.tick(context.Background(), s)
	assert.Len(t, deviations, 1)
}

func TestHandleTripStatus_StopsSessionOnTerminalStatus(t *testing.T) {
	uc, _, mockGW := newTestUC(t, testConfig())

	mockGW.EXPECT().GetTrip(gomock.Any(), "trip-1").Return(activeTrip("trip-1"), nil)

	assert.NoError(t, uc.Start(context.Background(), "trip-1", "observer-1", tracking.Callbacks{}))
	assert.True(t, uc.IsActive("trip-1"))

	err := uc.HandleTripStatus(context.Background(), models.TripStatusEvent{
		TripID:    "trip-1",
		OldStatus: models.TripStatusInProgress,
		NewStatus: models.TripStatusCompleted,
	})

	assert.NoError(t, err)
	assert.False(t, uc.IsActive("trip-1"))
}

func TestHandleTripStatus_IgnoresTrackableStatus(t *testing.T) {
	uc, _, mockGW := newTestUC(t, testConfig())

	mockGW.EXPECT().GetTrip(gomock.Any(), "trip-1").Return(activeTrip("trip-1"), nil)

	assert.NoError(t, uc.Start(context.Background(), "trip-1", "observer-1", tracking.Callbacks{}))

	err := uc.HandleTripStatus(context.Background(), models.TripStatusEvent{
		TripID:    "trip-1",
		OldStatus: models.TripStatusStarted,
		NewStatus: models.TripStatusInProgress,
	})

	assert.NoError(t, err)
	assert.True(t, uc.IsActive("trip-1"))

	uc.Stop("trip-1")
}

func TestHandlePositionReport_StoresValidSample(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t, testConfig())

	mockRepo.EXPECT().
		StorePosition(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, pos models.TrackedPosition) error {
			assert.False(t, pos.Timestamp.IsZero(), "zero timestamp should be filled in")
			return nil
		})

	err := uc.HandlePositionReport(context.Background(), models.TrackedPosition{
		TripID: "trip-1",
		Point:  models.GeoPoint{Latitude: -1.2921, Longitude: 36.8219},
	})
	assert.NoError(t, err)
}

func TestHandlePositionReport_RejectsInvalidPoint(t *testing.T) {
	uc, _, _ := newTestUC(t, testConfig())

	err := uc.HandlePositionReport(context.Background(), models.TrackedPosition{
		TripID: "trip-1",
		Point:  models.GeoPoint{Latitude: 120, Longitude: 36.8219},
	})
	assert.Error(t, err)
}

func TestLastUpdate_UnknownTrip(t *testing.T) {
	uc, _, _ := newTestUC(t, testConfig())

	_, ok := uc.LastUpdate("nope")
	assert.False(t, ok)
}

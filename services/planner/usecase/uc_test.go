package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/wekesa/mizigo/internal/pkg/models"
	"github.com/wekesa/mizigo/services/planner/mocks"
)

func plannerConfig() *models.Config {
	return &models.Config{
		Planner: models.PlannerConfig{
			AvgSpeedKmh:      60,
			MaxDetourKm:      100,
			AcceptTimeoutSec: 5,
		},
	}
}

func newTestPlannerUC(t *testing.T) (*PlannerUCImpl, *mocks.MockPlannerRepo, *mocks.MockPlannerGW) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockPlannerRepo(ctrl)
	mockGW := mocks.NewMockPlannerGW(ctrl)
	return NewPlannerUC(plannerConfig(), mockRepo, mockGW), mockRepo, mockGW
}

func startedTrip() *models.Trip {
	return &models.Trip{
		ID:              "trip-1",
		TransporterID:   "transporter-1",
		PickupLocation:  nairobi,
		DropoffLocation: mombasa,
		Status:          models.TripStatusStarted,
	}
}

func TestPlanTrip_ComputesPlanFromOpenLoads(t *testing.T) {
	uc, mockRepo, mockGW := newTestPlannerUC(t)

	loads := []models.Load{
		{
			ID:             "L1",
			Pickup:         models.GeoPoint{Latitude: -2.0, Longitude: 37.5},
			Dropoff:        models.GeoPoint{Latitude: -3.0, Longitude: 38.5},
			WeightKg:       500,
			Price:          5000,
			Consolidatable: true,
		},
	}

	mockGW.EXPECT().GetTrip(gomock.Any(), "trip-1").Return(startedTrip(), nil)
	mockRepo.EXPECT().GetCurrentRoute(gomock.Any(), "trip-1").Return(nil, nil)
	mockGW.EXPECT().GetVehicleCapacity(gomock.Any(), "transporter-1").
		Return(models.Capacity{TotalCapacityKg: 1000}, nil)
	mockGW.EXPECT().ListOpenLoads(gomock.Any(), nairobi, 100.0).Return(loads, nil)
	mockGW.EXPECT().GetRouteMetrics(gomock.Any(), gomock.Any()).
		Return(&models.RouteMetrics{DistanceKm: 510, DurationMin: 480}, nil)

	plan, err := uc.PlanTrip(context.Background(), "trip-1")

	assert.NoError(t, err)
	assert.Equal(t, []string{"L1"}, plan.LoadIDs)
	assert.Equal(t, 510.0, plan.TotalDistanceKm)
	assert.Equal(t, 480, plan.TotalDurationMin)
}

func TestPlanTrip_FallsBackToEstimatedDuration(t *testing.T) {
	uc, mockRepo, mockGW := newTestPlannerUC(t)

	loads := []models.Load{
		{
			ID:             "L1",
			Pickup:         models.GeoPoint{Latitude: -2.0, Longitude: 37.5},
			Dropoff:        models.GeoPoint{Latitude: -3.0, Longitude: 38.5},
			WeightKg:       500,
			Price:          5000,
			Consolidatable: true,
		},
	}

	mockGW.EXPECT().GetTrip(gomock.Any(), "trip-1").Return(startedTrip(), nil)
	mockRepo.EXPECT().GetCurrentRoute(gomock.Any(), "trip-1").Return(nil, nil)
	mockGW.EXPECT().GetVehicleCapacity(gomock.Any(), "transporter-1").
		Return(models.Capacity{TotalCapacityKg: 1000}, nil)
	mockGW.EXPECT().ListOpenLoads(gomock.Any(), nairobi, 100.0).Return(loads, nil)
	mockGW.EXPECT().GetRouteMetrics(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("routing provider down"))

	plan, err := uc.PlanTrip(context.Background(), "trip-1")

	assert.NoError(t, err)
	// 60 km/h over the haversine distance
	assert.Greater(t, plan.TotalDurationMin, 0)
	assert.InDelta(t, plan.TotalDistanceKm, float64(plan.TotalDurationMin), plan.TotalDistanceKm*0.05)
}

func TestPlanTrip_TerminalStatus(t *testing.T) {
	uc, _, mockGW := newTestPlannerUC(t)

	mockGW.EXPECT().GetTrip(gomock.Any(), "trip-1").
		Return(&models.Trip{ID: "trip-1", Status: models.TripStatusCancelled}, nil)

	_, err := uc.PlanTrip(context.Background(), "trip-1")
	assert.ErrorIs(t, err, ErrTerminalStatus)
}

func TestPlanTrip_EmptyPool(t *testing.T) {
	uc, mockRepo, mockGW := newTestPlannerUC(t)

	mockGW.EXPECT().GetTrip(gomock.Any(), "trip-1").Return(startedTrip(), nil)
	mockRepo.EXPECT().GetCurrentRoute(gomock.Any(), "trip-1").Return(nil, nil)
	mockGW.EXPECT().GetVehicleCapacity(gomock.Any(), "transporter-1").
		Return(models.Capacity{TotalCapacityKg: 1000}, nil)
	mockGW.EXPECT().ListOpenLoads(gomock.Any(), nairobi, 100.0).Return(nil, nil)

	_, err := uc.PlanTrip(context.Background(), "trip-1")
	assert.ErrorIs(t, err, ErrNoCandidates)
}

func TestAccept_StoresAnchoredRoute(t *testing.T) {
	uc, mockRepo, mockGW := newTestPlannerUC(t)

	plan := models.ConsolidatedRoutePlan{
		ID:     "plan-1",
		TripID: "trip-1",
		Waypoints: []models.Waypoint{
			{LoadID: "L1", Point: models.GeoPoint{Latitude: -2.0, Longitude: 37.5}, Kind: models.WaypointPickup},
			{LoadID: "L1", Point: models.GeoPoint{Latitude: -3.0, Longitude: 38.5}, Kind: models.WaypointDropoff},
		},
	}

	mockGW.EXPECT().GetTrip(gomock.Any(), "trip-1").Return(startedTrip(), nil)
	mockRepo.EXPECT().GetCurrentRoute(gomock.Any(), "trip-1").Return(nil, nil)
	mockRepo.EXPECT().
		StoreRoute(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, route models.Route) error {
			assert.Equal(t, "trip-1", route.TripID)
			assert.Len(t, route.Points, 4)
			assert.True(t, route.Points[0].Equals(nairobi), "route must stay anchored at the pickup")
			assert.True(t, route.Points[3].Equals(mombasa), "route must stay anchored at the dropoff")
			return nil
		})

	assert.NoError(t, uc.Accept(context.Background(), "trip-1", plan))
}

func TestAccept_RejectsMismatchedTrip(t *testing.T) {
	uc, _, _ := newTestPlannerUC(t)

	err := uc.Accept(context.Background(), "trip-2", models.ConsolidatedRoutePlan{TripID: "trip-1"})
	assert.Error(t, err)
}

func TestAccept_TerminalStatusLosesTheRace(t *testing.T) {
	uc, _, mockGW := newTestPlannerUC(t)

	mockGW.EXPECT().GetTrip(gomock.Any(), "trip-1").
		Return(&models.Trip{ID: "trip-1", Status: models.TripStatusCompleted}, nil)

	err := uc.Accept(context.Background(), "trip-1", models.ConsolidatedRoutePlan{TripID: "trip-1"})
	assert.ErrorIs(t, err, ErrTerminalStatus)
}

func TestAccept_RequiresActiveSession(t *testing.T) {
	uc, _, mockGW := newTestPlannerUC(t)

	// A pending trip has no tracking session yet, so nothing is stored
	mockGW.EXPECT().GetTrip(gomock.Any(), "trip-1").
		Return(&models.Trip{ID: "trip-1", Status: models.TripStatusPending}, nil)

	err := uc.Accept(context.Background(), "trip-1", models.ConsolidatedRoutePlan{TripID: "trip-1"})
	assert.ErrorIs(t, err, ErrNoActiveSession)
}

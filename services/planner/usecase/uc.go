package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/wekesa/mizigo/internal/pkg/logger"
	"github.com/wekesa/mizigo/internal/pkg/models"
	"github.com/wekesa/mizigo/services/planner"
)

// ErrTerminalStatus is returned when a plan is requested or accepted for a
// trip that has already completed or been cancelled.
var ErrTerminalStatus = errors.New("trip is in a terminal status")

// ErrNoActiveSession is returned when a plan is accepted for a trip whose
// status cannot hold an active tracking session.
var ErrNoActiveSession = errors.New("trip has no active tracking session")

// PlannerUCImpl implements the planner.PlannerUC interface
type PlannerUCImpl struct {
	cfg     *models.Config
	repo    planner.PlannerRepo
	gw      planner.PlannerGW
	planner *Planner

	mu        sync.Mutex
	tripLocks map[string]*sync.Mutex
}

// NewPlannerUC creates a new planner use case
func NewPlannerUC(cfg *models.Config, repo planner.PlannerRepo, gw planner.PlannerGW) *PlannerUCImpl {
	return &PlannerUCImpl{
		cfg:       cfg,
		repo:      repo,
		gw:        gw,
		planner:   NewPlanner(cfg.Planner.AvgSpeedKmh, cfg.Planner.MaxDetourKm),
		tripLocks: make(map[string]*sync.Mutex),
	}
}

// PlanTrip computes a consolidation plan for the trip's current route from
// the open load pool. The plan is a proposal only; nothing is stored until
// Accept.
func (uc *PlannerUCImpl) PlanTrip(ctx context.Context, tripID string) (*models.ConsolidatedRoutePlan, error) {
	trip, err := uc.gw.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if trip.Status.IsTerminal() {
		return nil, ErrTerminalStatus
	}

	route, err := uc.currentRoute(ctx, trip)
	if err != nil {
		return nil, err
	}

	capacity, err := uc.gw.GetVehicleCapacity(ctx, trip.TransporterID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch vehicle capacity: %w", err)
	}

	loads, err := uc.gw.ListOpenLoads(ctx, route.Start(), uc.cfg.Planner.MaxDetourKm)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch open loads: %w", err)
	}

	plan, err := uc.planner.Plan(*route, loads, capacity)
	if err != nil {
		return nil, err
	}

	// The routing provider gives road distance; the plan's haversine
	// estimate stands in when the provider is unreachable.
	if metrics, err := uc.gw.GetRouteMetrics(ctx, routePoints(*route, plan)); err != nil {
		logger.Warn("Routing provider unavailable, using estimated duration",
			logger.String("trip_id", tripID),
			logger.Err(err))
	} else {
		plan.TotalDistanceKm = metrics.DistanceKm
		plan.TotalDurationMin = metrics.DurationMin
	}

	logger.Info("Consolidation plan computed",
		logger.String("trip_id", tripID),
		logger.Int("loads", len(plan.LoadIDs)),
		logger.Float64("used_capacity_kg", plan.UsedCapacityKg),
		logger.Float64("earnings", plan.TotalEarnings))
	return plan, nil
}

// Accept commits a plan: the trip's route is replaced wholesale by the
// plan's waypoint sequence between the existing route anchors. Acceptance
// is serialized per trip and re-validates status, so a stale plan loses the
// race instead of clobbering a newer route.
func (uc *PlannerUCImpl) Accept(ctx context.Context, tripID string, plan models.ConsolidatedRoutePlan) error {
	if plan.TripID != tripID {
		return fmt.Errorf("plan belongs to trip %s, not %s", plan.TripID, tripID)
	}

	lock := uc.tripLock(tripID)
	lock.Lock()
	defer lock.Unlock()

	ctx, cancel := context.WithTimeout(ctx, time.Duration(uc.cfg.Planner.AcceptTimeoutSec)*time.Second)
	defer cancel()

	trip, err := uc.gw.GetTrip(ctx, tripID)
	if err != nil {
		return err
	}
	if trip.Status.IsTerminal() {
		return ErrTerminalStatus
	}
	if !trip.Status.Trackable() {
		return ErrNoActiveSession
	}

	route, err := uc.currentRoute(ctx, trip)
	if err != nil {
		return err
	}

	newRoute := models.Route{TripID: tripID, Points: routePoints(*route, &plan)}
	if err := uc.repo.StoreRoute(ctx, newRoute); err != nil {
		return fmt.Errorf("failed to store consolidated route: %w", err)
	}

	logger.Info("Consolidation plan accepted",
		logger.String("trip_id", tripID),
		logger.String("plan_id", plan.ID),
		logger.Int("waypoints", len(plan.Waypoints)))
	return nil
}

// currentRoute reads the stored route, falling back to the trip's own
// pickup/dropoff pair when no consolidation has happened yet.
func (uc *PlannerUCImpl) currentRoute(ctx context.Context, trip *models.Trip) (*models.Route, error) {
	route, err := uc.repo.GetCurrentRoute(ctx, trip.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to read current route: %w", err)
	}
	if route != nil && route.Valid() {
		return route, nil
	}

	if !trip.PickupLocation.Valid() || !trip.DropoffLocation.Valid() {
		return nil, fmt.Errorf("trip %s has no usable route anchors", trip.ID)
	}
	return &models.Route{
		TripID: trip.ID,
		Points: []models.GeoPoint{trip.PickupLocation, trip.DropoffLocation},
	}, nil
}

// routePoints anchors the plan's stop sequence between the base route's
// endpoints.
func routePoints(route models.Route, plan *models.ConsolidatedRoutePlan) []models.GeoPoint {
	points := make([]models.GeoPoint, 0, len(plan.Waypoints)+2)
	points = append(points, route.Start())
	points = append(points, plan.RoutePoints()...)
	points = append(points, route.End())
	return points
}

func (uc *PlannerUCImpl) tripLock(tripID string) *sync.Mutex {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	lock, ok := uc.tripLocks[tripID]
	if !ok {
		lock = &sync.Mutex{}
		uc.tripLocks[tripID] = lock
	}
	return lock
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/wekesa/mizigo/internal/pkg/logger"
	"github.com/wekesa/mizigo/internal/pkg/models"
	"github.com/wekesa/mizigo/services/tracking"
)

var (
	// ErrTerminalStatus is returned when tracking is requested for a trip
	// whose status does not permit an active session.
	ErrTerminalStatus = errors.New("trip status does not permit tracking")
)

// session is the live state of one tracked trip. The loop goroutine is the
// only writer of lastUpdate/failures; observers is guarded by mu because
// Start/Unsubscribe mutate it from other goroutines.
type session struct {
	tripID string
	cancel context.CancelFunc
	done   chan struct{}

	mu         sync.Mutex
	observers  map[string]tracking.Callbacks
	lastUpdate time.Time
	failures   int
	degraded   bool
}

func (s *session) callbacks() []tracking.Callbacks {
	s.mu.Lock()
	defer s.mu.Unlock()

	cbs := make([]tracking.Callbacks, 0, len(s.observers))
	for _, cb := range s.observers {
		cbs = append(cbs, cb)
	}
	return cbs
}

// TrackingUCImpl implements the tracking.TrackingUC interface: one polling
// loop per actively tracked trip, each on its own interval timer.
type TrackingUCImpl struct {
	cfg        *models.Config
	repo       tracking.TrackingRepo
	gw         tracking.TrackingGW
	detector   *DeviationDetector
	aggregator *AlertAggregator

	mu       sync.Mutex
	sessions map[string]*session
}

// NewTrackingUC creates a new tracking use case
func NewTrackingUC(cfg *models.Config, repo tracking.TrackingRepo, gw tracking.TrackingGW, detector *DeviationDetector, aggregator *AlertAggregator) *TrackingUCImpl {
	return &TrackingUCImpl{
		cfg:        cfg,
		repo:       repo,
		gw:         gw,
		detector:   detector,
		aggregator: aggregator,
		sessions:   make(map[string]*session),
	}
}

// Start begins (or joins) the tracking session for a trip. Starting twice is
// idempotent: the second caller is registered as an additional observer of
// the existing session and the tick rate is unchanged. Trips in a
// non-trackable status are rejected with ErrTerminalStatus.
func (uc *TrackingUCImpl) Start(ctx context.Context, tripID, observerID string, cb tracking.Callbacks) error {
	uc.mu.Lock()
	if s, ok := uc.sessions[tripID]; ok {
		s.mu.Lock()
		s.observers[observerID] = cb
		s.mu.Unlock()
		uc.mu.Unlock()
		logger.Debug("Joined existing tracking session",
			logger.String("trip_id", tripID),
			logger.String("observer_id", observerID))
		return nil
	}
	uc.mu.Unlock()

	// Re-validate status with the bookings API rather than trusting the
	// caller. Done outside the lock: this is a network call.
	trip, err := uc.gw.GetTrip(ctx, tripID)
	if err != nil {
		return fmt.Errorf("failed to fetch trip %s: %w", tripID, err)
	}
	if !trip.Status.Trackable() {
		return fmt.Errorf("trip %s is %s: %w", tripID, trip.Status, ErrTerminalStatus)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	// Another caller may have won the race while we validated
	if s, ok := uc.sessions[tripID]; ok {
		s.mu.Lock()
		s.observers[observerID] = cb
		s.mu.Unlock()
		return nil
	}

	loopCtx, cancel := context.WithCancel(context.Background())
	s := &session{
		tripID:    tripID,
		cancel:    cancel,
		done:      make(chan struct{}),
		observers: map[string]tracking.Callbacks{observerID: cb},
	}
	uc.sessions[tripID] = s

	go uc.run(loopCtx, s)

	logger.Info("Tracking session started",
		logger.String("trip_id", tripID),
		logger.String("observer_id", observerID))
	return nil
}

// Stop terminates the tracking session for a trip. No further ticks occur
// after Stop returns. Stopping an unknown or already stopped trip is a no-op.
func (uc *TrackingUCImpl) Stop(tripID string) {
	uc.mu.Lock()
	s, ok := uc.sessions[tripID]
	if ok {
		delete(uc.sessions, tripID)
	}
	uc.mu.Unlock()

	if !ok {
		return
	}

	s.cancel()
	<-s.done

	uc.detector.Reset(tripID)
	uc.aggregator.Forget(tripID)

	logger.Info("Tracking session stopped", logger.String("trip_id", tripID))
}

// Unsubscribe removes one observer's callbacks. The polling loop keeps
// running while other observers remain; it is not stopped implicitly.
func (uc *TrackingUCImpl) Unsubscribe(tripID, observerID string) {
	uc.mu.Lock()
	s, ok := uc.sessions[tripID]
	uc.mu.Unlock()
	if !ok {
		return
	}

	s.mu.Lock()
	delete(s.observers, observerID)
	s.mu.Unlock()
}

// IsActive reports whether a session exists for the trip
func (uc *TrackingUCImpl) IsActive(tripID string) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	_, ok := uc.sessions[tripID]
	return ok
}

// LastUpdate returns the time of the last successful tick for a trip.
// A stale value is the observable symptom of a stalled session.
func (uc *TrackingUCImpl) LastUpdate(tripID string) (time.Time, bool) {
	uc.mu.Lock()
	s, ok := uc.sessions[tripID]
	uc.mu.Unlock()
	if !ok {
		return time.Time{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastUpdate, true
}

// AlertHistory returns the trip's bounded alert history, most recent first
func (uc *TrackingUCImpl) AlertHistory(ctx context.Context, tripID string) ([]models.TrafficAlert, error) {
	return uc.repo.GetAlertHistory(ctx, tripID, uc.cfg.Tracking.AlertHistoryLimit)
}

// AlternativeRoutes fetches and ranks alternative routes for a trip's
// current route.
func (uc *TrackingUCImpl) AlternativeRoutes(ctx context.Context, tripID string) ([]models.RouteOption, error) {
	route, err := uc.repo.GetCurrentRoute(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to load current route for trip %s: %w", tripID, err)
	}

	trip, err := uc.gw.GetTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch trip %s: %w", tripID, err)
	}

	return uc.aggregator.RankAlternativeRoutes(ctx, *route, trip.DistanceKm, trip.DurationMin)
}

// HandleTripStatus reacts to a trip status transition. Sessions self-
// terminate when the trip leaves a trackable status; leaking polling loops
// across completed trips is the primary resource-leak risk here.
func (uc *TrackingUCImpl) HandleTripStatus(ctx context.Context, event models.TripStatusEvent) error {
	if event.NewStatus.Trackable() {
		return nil
	}

	if uc.IsActive(event.TripID) {
		logger.Info("Trip left trackable status, stopping session",
			logger.String("trip_id", event.TripID),
			logger.String("status", string(event.NewStatus)))
		uc.Stop(event.TripID)
	}
	return nil
}

// HandlePositionReport stores an externally pushed position sample so the
// next tick picks it up. The poll loop remains the staleness bound; pushed
// reports just lower latency.
func (uc *TrackingUCImpl) HandlePositionReport(ctx context.Context, pos models.TrackedPosition) error {
	if !pos.Point.Valid() {
		return fmt.Errorf("invalid position for trip %s", pos.TripID)
	}
	if pos.Timestamp.IsZero() {
		pos.Timestamp = time.Now()
	}
	return uc.repo.StorePosition(ctx, pos)
}

// run is the per-trip polling loop. Ticks are strictly ordered: the next
// tick does not start until the previous tick's callbacks have returned.
func (uc *TrackingUCImpl) run(ctx context.Context, s *session) {
	defer close(s.done)

	interval := time.Duration(uc.cfg.Tracking.IntervalSec) * time.Second
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			uc.tick(ctx, s)
		}
	}
}

// tick runs one poll cycle: fetch position, detect deviation, aggregate
// alerts, invoke callbacks. Fetch failures are absorbed; after
// cfg.Tracking.DegradedAfter consecutive failures the degraded callback
// fires so the UI can show a stale-data indicator. The session itself never
// terminates due to fetch failure.
func (uc *TrackingUCImpl) tick(ctx context.Context, s *session) {
	fetchCtx, cancel := context.WithTimeout(ctx, time.Duration(uc.cfg.Tracking.FetchTimeoutSec)*time.Second)
	defer cancel()

	pos, err := uc.repo.GetLatestPosition(fetchCtx, s.tripID)
	if err != nil {
		uc.recordFailure(s, err)
		return
	}

	s.mu.Lock()
	s.failures = 0
	recovered := s.degraded
	s.degraded = false
	s.lastUpdate = time.Now()
	s.mu.Unlock()

	cbs := s.callbacks()

	if recovered {
		for _, cb := range cbs {
			if cb.OnDegraded != nil {
				cb.OnDegraded(false)
			}
		}
	}

	for _, cb := range cbs {
		if cb.OnLocationUpdate != nil {
			cb.OnLocationUpdate(*pos)
		}
	}

	// A missing route disables deviation detection for the tick but not
	// traffic aggregation; external alerts do not depend on the route.
	var devEvent *models.RouteDeviationEvent
	route, err := uc.repo.GetCurrentRoute(fetchCtx, s.tripID)
	if err != nil {
		logger.Warn("No current route for tracked trip",
			logger.String("trip_id", s.tripID),
			logger.Err(err))
	} else {
		var verdict models.DeviationVerdict
		verdict, devEvent = uc.detector.Observe(s.tripID, *route, pos.Point)
		if devEvent != nil {
			if err := uc.gw.PublishDeviationEvent(ctx, *devEvent); err != nil {
				logger.Error("Failed to publish deviation event",
					logger.String("trip_id", s.tripID),
					logger.Err(err))
			}

			place := uc.aggregator.PlaceName(fetchCtx, pos.Point)
			logger.Info("Deviation state changed",
				logger.String("trip_id", s.tripID),
				logger.Bool("deviating", devEvent.Deviating),
				logger.Float64("distance_km", verdict.DistanceFromRoute),
				logger.String("near", place))

			for _, cb := range cbs {
				if cb.OnRouteDeviation != nil {
					cb.OnRouteDeviation(*devEvent)
				}
			}
		}
	}

	// External traffic conditions are best-effort; a provider outage must
	// not suppress deviation alerts.
	var external []models.TrafficAlert
	if snapshot, err := uc.gw.GetTrafficSnapshot(fetchCtx, pos.Point, uc.cfg.Tracking.DeviationThresholdKm*5); err == nil {
		external = snapshot.Alerts
	} else {
		logger.Debug("Traffic snapshot unavailable",
			logger.String("trip_id", s.tripID),
			logger.Err(err))
	}

	alerts := uc.aggregator.Aggregate(s.tripID, devEvent, external)
	if len(alerts) == 0 {
		return
	}

	if err := uc.repo.AppendAlerts(ctx, s.tripID, alerts, uc.cfg.Tracking.AlertHistoryLimit); err != nil {
		logger.Error("Failed to persist alerts",
			logger.String("trip_id", s.tripID),
			logger.Err(err))
	}
	if err := uc.gw.PublishAlerts(ctx, s.tripID, alerts); err != nil {
		logger.Error("Failed to publish alerts",
			logger.String("trip_id", s.tripID),
			logger.Err(err))
	}

	for _, cb := range cbs {
		if cb.OnTrafficAlert != nil {
			out := make([]models.TrafficAlert, len(alerts))
			copy(out, alerts)
			cb.OnTrafficAlert(out)
		}
	}
}

func (uc *TrackingUCImpl) recordFailure(s *session, err error) {
	s.mu.Lock()
	s.failures++
	count := s.failures
	escalate := count == uc.cfg.Tracking.DegradedAfter && !s.degraded
	if escalate {
		s.degraded = true
	}
	s.mu.Unlock()

	logger.Warn("Position fetch failed, skipping tick",
		logger.String("trip_id", s.tripID),
		logger.Int("consecutive_failures", count),
		logger.Err(err))

	if escalate {
		for _, cb := range s.callbacks() {
			if cb.OnDegraded != nil {
				cb.OnDegraded(true)
			}
		}
	}
}

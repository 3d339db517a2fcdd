package usecase

import (
	"sync"
	"time"

	"github.com/wekesa/mizigo/internal/pkg/models"
	"github.com/wekesa/mizigo/internal/utils"
)

// DeviationDetector decides whether a reported position constitutes a route
// deviation. Detection state has hysteresis: once a trip is flagged
// deviating it stays flagged until an evaluation reports otherwise, and
// events are emitted only on state transitions, never once per tick.
type DeviationDetector struct {
	thresholdKm float64

	mu        sync.Mutex
	deviating map[string]bool
}

// NewDeviationDetector creates a detector with the given threshold in km.
// The threshold is configuration, not a constant: what counts as "off route"
// depends on road density and GPS quality per deployment.
func NewDeviationDetector(thresholdKm float64) *DeviationDetector {
	return &DeviationDetector{
		thresholdKm: thresholdKm,
		deviating:   make(map[string]bool),
	}
}

// Evaluate computes the deviation verdict for a single position against a
// route. Pure: no state is touched. The check compares the position against
// the route's start and end anchors only, not the full polyline; this
// mirrors the original behavior and errs on the side of not alerting.
// A missing route or invalid position yields a non-deviating verdict.
func (d *DeviationDetector) Evaluate(route models.Route, position models.GeoPoint) models.DeviationVerdict {
	if !route.Valid() || position.IsZero() || !position.Valid() {
		return models.DeviationVerdict{}
	}

	distance := utils.EndpointProximityKm(position, route)
	return models.DeviationVerdict{
		IsDeviating:       distance > d.thresholdKm,
		DistanceFromRoute: distance,
	}
}

// Observe evaluates a position and updates the trip's hysteresis state.
// It returns an event only when the deviation state changed (deviate or
// recover); steady state returns nil.
func (d *DeviationDetector) Observe(tripID string, route models.Route, position models.GeoPoint) (models.DeviationVerdict, *models.RouteDeviationEvent) {
	verdict := d.Evaluate(route, position)

	d.mu.Lock()
	was := d.deviating[tripID]
	if verdict.IsDeviating == was {
		d.mu.Unlock()
		return verdict, nil
	}
	d.deviating[tripID] = verdict.IsDeviating
	d.mu.Unlock()

	reason := "position returned to expected route"
	if verdict.IsDeviating {
		reason = "position exceeds deviation threshold from both route anchors"
	}

	return verdict, &models.RouteDeviationEvent{
		TripID:            tripID,
		DetectedAt:        time.Now(),
		DistanceFromRoute: verdict.DistanceFromRoute,
		Deviating:         verdict.IsDeviating,
		Reason:            reason,
	}
}

// Reset clears the hysteresis state for a trip, called when its session stops
func (d *DeviationDetector) Reset(tripID string) {
	d.mu.Lock()
	delete(d.deviating, tripID)
	d.mu.Unlock()
}

// ThresholdKm returns the configured deviation threshold
func (d *DeviationDetector) ThresholdKm() float64 {
	return d.thresholdKm
}

package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wekesa/mizigo/internal/pkg/models"
)

var testRoute = models.Route{
	TripID: "trip-1",
	Points: []models.GeoPoint{
		{Latitude: 0, Longitude: 0},
		{Latitude: 1, Longitude: 1},
	},
}

func TestEvaluate_NearAnchorIsNotDeviating(t *testing.T) {
	detector := NewDeviationDetector(1.0)

	// ~0.55 km north of the start anchor
	verdict := detector.Evaluate(testRoute, models.GeoPoint{Latitude: 0.005, Longitude: 0})

	assert.False(t, verdict.IsDeviating)
	assert.InDelta(t, 0.55, verdict.DistanceFromRoute, 0.05)
}

func TestEvaluate_FarFromBothAnchorsIsDeviating(t *testing.T) {
	detector := NewDeviationDetector(1.0)

	// ~2.2 km from the start anchor and far from the end anchor
	verdict := detector.Evaluate(testRoute, models.GeoPoint{Latitude: 0.02, Longitude: 0})

	assert.True(t, verdict.IsDeviating)
	assert.Greater(t, verdict.DistanceFromRoute, 1.0)
}

func TestEvaluate_InvalidInputIsNotDeviating(t *testing.T) {
	detector := NewDeviationDetector(1.0)

	verdict := detector.Evaluate(models.Route{}, models.GeoPoint{Latitude: 0.5, Longitude: 0.5})
	assert.False(t, verdict.IsDeviating)

	verdict = detector.Evaluate(testRoute, models.GeoPoint{})
	assert.False(t, verdict.IsDeviating)
}

func TestObserve_EdgeTriggeredEvents(t *testing.T) {
	detector := NewDeviationDetector(1.0)

	// On-route, on-route, off, off, off, back on-route. Exactly two state
	// transitions, so exactly two events.
	offsets := []float64{0.005, 0.005, 0.02, 0.02, 0.02, 0.005}

	var events []*models.RouteDeviationEvent
	for _, offset := range offsets {
		_, ev := detector.Observe("trip-1", testRoute, models.GeoPoint{Latitude: offset, Longitude: 0})
		if ev != nil {
			events = append(events, ev)
		}
	}

	assert.Len(t, events, 2)
	assert.True(t, events[0].Deviating, "first event should enter deviation")
	assert.False(t, events[1].Deviating, "second event should recover")
	assert.Equal(t, "trip-1", events[0].TripID)
	assert.NotZero(t, events[0].DetectedAt)
}

func TestObserve_IndependentPerTrip(t *testing.T) {
	detector := NewDeviationDetector(1.0)

	off := models.GeoPoint{Latitude: 0.02, Longitude: 0}

	_, ev1 := detector.Observe("trip-1", testRoute, off)
	_, ev2 := detector.Observe("trip-2", testRoute, off)

	assert.NotNil(t, ev1)
	assert.NotNil(t, ev2, "trip-2 state must not be affected by trip-1")
}

func TestReset_ClearsHysteresisState(t *testing.T) {
	detector := NewDeviationDetector(1.0)

	off := models.GeoPoint{Latitude: 0.02, Longitude: 0}

	_, ev := detector.Observe("trip-1", testRoute, off)
	assert.NotNil(t, ev)

	detector.Reset("trip-1")

	// After reset the same off-route position is a fresh transition again
	_, ev = detector.Observe("trip-1", testRoute, off)
	assert.NotNil(t, ev)
	assert.True(t, ev.Deviating)
}

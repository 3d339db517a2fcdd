package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wekesa/mizigo/internal/pkg/models"
)

var (
	nairobi = models.GeoPoint{Latitude: -1.2921, Longitude: 36.8219}
	mombasa = models.GeoPoint{Latitude: -4.0435, Longitude: 39.6682}
)

func TestCalculateDistance_KnownPairs(t *testing.T) {
	// Nairobi to Mombasa is roughly 440 km great-circle
	assert.InDelta(t, 440, CalculateDistance(nairobi, mombasa), 10)

	// Symmetric
	assert.Equal(t, CalculateDistance(nairobi, mombasa), CalculateDistance(mombasa, nairobi))

	// Identity
	assert.InDelta(t, 0, CalculateDistance(nairobi, nairobi), 1e-9)
}

func TestBearing_CardinalDirections(t *testing.T) {
	origin := models.GeoPoint{Latitude: 0, Longitude: 0}

	assert.InDelta(t, 0, Bearing(origin, models.GeoPoint{Latitude: 1, Longitude: 0}), 0.1)
	assert.InDelta(t, 90, Bearing(origin, models.GeoPoint{Latitude: 0, Longitude: 1}), 0.1)
	assert.InDelta(t, 180, Bearing(origin, models.GeoPoint{Latitude: -1, Longitude: 0}), 0.1)
	assert.InDelta(t, 270, Bearing(origin, models.GeoPoint{Latitude: 0, Longitude: -1}), 0.1)
}

func TestPointToSegmentKm(t *testing.T) {
	a := models.GeoPoint{Latitude: 0, Longitude: 0}
	b := models.GeoPoint{Latitude: 0, Longitude: 1}

	// Directly above the middle of the segment: distance is the latitude offset
	p := models.GeoPoint{Latitude: 0.01, Longitude: 0.5}
	assert.InDelta(t, 1.11, PointToSegmentKm(p, a, b), 0.05)

	// Beyond the end: clamped to the endpoint distance
	beyond := models.GeoPoint{Latitude: 0, Longitude: 1.5}
	assert.InDelta(t, CalculateDistance(beyond, b), PointToSegmentKm(beyond, a, b), 0.5)

	// Degenerate segment falls back to point distance
	assert.InDelta(t, CalculateDistance(p, a), PointToSegmentKm(p, a, a), 1e-9)
}

func TestDistanceToRouteKm_PicksNearestSegment(t *testing.T) {
	route := models.Route{
		Points: []models.GeoPoint{
			{Latitude: 0, Longitude: 0},
			{Latitude: 0, Longitude: 1},
			{Latitude: 1, Longitude: 1},
		},
	}

	// Close to the second segment, far from the first
	p := models.GeoPoint{Latitude: 0.5, Longitude: 1.01}
	assert.InDelta(t, 1.11, DistanceToRouteKm(p, route), 0.1)
}

func TestEndpointProximityKm_UsesNearestAnchor(t *testing.T) {
	route := models.Route{
		Points: []models.GeoPoint{nairobi, mombasa},
	}

	// A point close to Mombasa is near the route even though it is hundreds
	// of kilometers from Nairobi.
	nearMombasa := models.GeoPoint{Latitude: -4.05, Longitude: 39.66}
	assert.Less(t, EndpointProximityKm(nearMombasa, route), 2.0)

	// A midpoint far from both anchors reads as far, regardless of the line
	midway := models.GeoPoint{Latitude: -2.67, Longitude: 38.25}
	assert.Greater(t, EndpointProximityKm(midway, route), 100.0)
}

func TestPolylineLengthKm(t *testing.T) {
	points := []models.GeoPoint{nairobi, mombasa}
	assert.Equal(t, CalculateDistance(nairobi, mombasa), PolylineLengthKm(points))

	// A waypoint off the straight line increases the length
	detour := []models.GeoPoint{nairobi, {Latitude: -2.0, Longitude: 38.5}, mombasa}
	assert.Greater(t, PolylineLengthKm(detour), PolylineLengthKm(points))

	assert.Equal(t, 0.0, PolylineLengthKm(nil))
	assert.Equal(t, 0.0, PolylineLengthKm(points[:1]))
}

func TestInsertionCostKm_NonNegative(t *testing.T) {
	a := models.GeoPoint{Latitude: 0, Longitude: 0}
	b := models.GeoPoint{Latitude: 0, Longitude: 2}

	// On the path: essentially free
	on := models.GeoPoint{Latitude: 0, Longitude: 1}
	assert.InDelta(t, 0, InsertionCostKm(on, a, b), 0.5)

	// Off the path: strictly positive
	off := models.GeoPoint{Latitude: 1, Longitude: 1}
	assert.Greater(t, InsertionCostKm(off, a, b), 100.0)
}

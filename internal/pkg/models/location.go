package models

import (
	"math"
	"time"
)

// CoordEpsilon is the tolerance used when comparing coordinates.
// GPS fixes are never byte-identical, so exact equality is meaningless.
const CoordEpsilon = 1e-6

// GeoPoint represents a geographical point with latitude and longitude
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Equals compares two points within CoordEpsilon
func (p GeoPoint) Equals(other GeoPoint) bool {
	return math.Abs(p.Latitude-other.Latitude) < CoordEpsilon &&
		math.Abs(p.Longitude-other.Longitude) < CoordEpsilon
}

// IsZero reports whether the point is the uninitialized origin
func (p GeoPoint) IsZero() bool {
	return p.Latitude == 0 && p.Longitude == 0
}

// Valid reports whether the point is within WGS84 bounds
func (p GeoPoint) Valid() bool {
	return p.Latitude >= -90 && p.Latitude <= 90 &&
		p.Longitude >= -180 && p.Longitude <= 180
}

// TrackedPosition is the latest reported sample for a trip.
// Each new sample supersedes the previous one; only the latest is retained.
type TrackedPosition struct {
	TripID    string    `json:"trip_id"`
	Point     GeoPoint  `json:"point"`
	Timestamp time.Time `json:"timestamp"`
}

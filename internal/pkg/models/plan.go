package models

import "time"

// WaypointKind distinguishes pickup and dropoff stops
type WaypointKind string

const (
	WaypointPickup  WaypointKind = "pickup"
	WaypointDropoff WaypointKind = "dropoff"
)

// Waypoint is one stop in a consolidated route plan
type Waypoint struct {
	LoadID string       `json:"load_id"`
	Point  GeoPoint     `json:"point"`
	Kind   WaypointKind `json:"kind"`
}

// ConsolidatedRoutePlan is the planner's output: a capacity-bounded subset of
// loads with ordered waypoints and aggregate metrics. Created on demand,
// discarded if rejected; its waypoint sequence becomes the trip's Route when
// accepted.
type ConsolidatedRoutePlan struct {
	ID               string     `json:"id"`
	TripID           string     `json:"trip_id"`
	LoadIDs          []string   `json:"load_ids"`
	Waypoints        []Waypoint `json:"waypoints"`
	TotalDistanceKm  float64    `json:"total_distance_km"`
	TotalDurationMin int        `json:"total_duration_min"`
	TotalEarnings    float64    `json:"total_earnings"`
	UsedCapacityKg   float64    `json:"used_capacity_kg"`
	TotalCapacityKg  float64    `json:"total_capacity_kg"`
	CreatedAt        time.Time  `json:"created_at"`
}

// RoutePoints flattens the waypoint sequence into route points, used when an
// accepted plan replaces the trip's current route.
func (p ConsolidatedRoutePlan) RoutePoints() []GeoPoint {
	points := make([]GeoPoint, 0, len(p.Waypoints))
	for _, wp := range p.Waypoints {
		points = append(points, wp.Point)
	}
	return points
}

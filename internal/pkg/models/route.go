package models

// Route is the planned path for a trip. It is created once per trip (at
// acceptance or at consolidation) and replaced wholesale when a new
// consolidation plan is accepted, never mutated in place.
type Route struct {
	TripID string     `json:"trip_id"`
	Points []GeoPoint `json:"points"`
}

// Valid reports whether the route has at least a start and an end anchor
func (r Route) Valid() bool {
	return len(r.Points) >= 2
}

// Start returns the first point of the route
func (r Route) Start() GeoPoint {
	if len(r.Points) == 0 {
		return GeoPoint{}
	}
	return r.Points[0]
}

// End returns the last point of the route
func (r Route) End() GeoPoint {
	if len(r.Points) == 0 {
		return GeoPoint{}
	}
	return r.Points[len(r.Points)-1]
}

// Copy returns a deep copy so callers never share the backing slice
func (r Route) Copy() Route {
	points := make([]GeoPoint, len(r.Points))
	copy(points, r.Points)
	return Route{TripID: r.TripID, Points: points}
}

// RouteOption is an alternative route candidate returned by the routing
// provider, annotated with advantages/disadvantages for display.
type RouteOption struct {
	ID            string     `json:"id"`
	Points        []GeoPoint `json:"points"`
	DistanceKm    float64    `json:"distance_km"`
	DurationMin   int        `json:"duration_min"`
	HasTolls      bool       `json:"has_tolls"`
	Advantages    []string   `json:"advantages,omitempty"`
	Disadvantages []string   `json:"disadvantages,omitempty"`
}

// RouteMetrics holds distance/duration for a pair of points as reported by
// the routing provider.
type RouteMetrics struct {
	DistanceKm  float64 `json:"distance_km"`
	DurationMin int     `json:"duration_min"`
}

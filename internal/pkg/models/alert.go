package models

import "time"

// AlertSeverity ranks traffic alerts
type AlertSeverity string

const (
	AlertSeverityLow      AlertSeverity = "low"
	AlertSeverityMedium   AlertSeverity = "medium"
	AlertSeverityHigh     AlertSeverity = "high"
	AlertSeverityCritical AlertSeverity = "critical"
)

// Rank returns a comparable weight, higher is more severe
func (s AlertSeverity) Rank() int {
	switch s {
	case AlertSeverityCritical:
		return 4
	case AlertSeverityHigh:
		return 3
	case AlertSeverityMedium:
		return 2
	case AlertSeverityLow:
		return 1
	}
	return 0
}

// AlertType categorizes traffic alerts
type AlertType string

const (
	AlertTypeDeviation   AlertType = "route_deviation"
	AlertTypeCongestion  AlertType = "congestion"
	AlertTypeAccident    AlertType = "accident"
	AlertTypeRoadClosure AlertType = "road_closure"
	AlertTypeWeather     AlertType = "weather"
)

// TrafficAlert is an externally sourced or internally raised alert for a trip
type TrafficAlert struct {
	ID        string        `json:"id"`
	TripID    string        `json:"trip_id"`
	Type      AlertType     `json:"type"`
	Severity  AlertSeverity `json:"severity"`
	Location  GeoPoint      `json:"location"`
	Message   string        `json:"message"`
	CreatedAt time.Time     `json:"created_at"`
}

// RouteDeviationEvent is produced by the deviation detector on state
// transitions only (edge-triggered), never once per tick.
type RouteDeviationEvent struct {
	TripID            string    `json:"trip_id"`
	DetectedAt        time.Time `json:"detected_at"`
	DistanceFromRoute float64   `json:"distance_from_route_km"`
	Deviating         bool      `json:"deviating"`
	Reason            string    `json:"reason"`
}

// DeviationVerdict is the detector's per-evaluation result
type DeviationVerdict struct {
	IsDeviating       bool    `json:"is_deviating"`
	DistanceFromRoute float64 `json:"distance_from_route_km"`
}

// TrafficSnapshot carries live traffic conditions for a radius, as returned
// by the routing provider.
type TrafficSnapshot struct {
	Center    GeoPoint       `json:"center"`
	RadiusKm  float64        `json:"radius_km"`
	Alerts    []TrafficAlert `json:"alerts"`
	FetchedAt time.Time      `json:"fetched_at"`
}

package models

import "time"

// TripStatus represents the current status of a trip
type TripStatus string

const (
	TripStatusPending    TripStatus = "pending"
	TripStatusAccepted   TripStatus = "accepted"
	TripStatusStarted    TripStatus = "started"
	TripStatusInProgress TripStatus = "in_progress"
	TripStatusCompleted  TripStatus = "completed"
	TripStatusCancelled  TripStatus = "cancelled"

	// TripStatusOngoing is a legacy alias still emitted by older backend
	// deployments; treated as in_progress for tracking purposes.
	TripStatusOngoing TripStatus = "ongoing"
)

// legalTransitions is the trip status state machine:
//
//	pending -> accepted -> started -> in_progress -> completed
//	accepted -> cancelled
//	started  -> cancelled
var legalTransitions = map[TripStatus][]TripStatus{
	TripStatusPending:    {TripStatusAccepted},
	TripStatusAccepted:   {TripStatusStarted, TripStatusCancelled},
	TripStatusStarted:    {TripStatusInProgress, TripStatusCancelled},
	TripStatusInProgress: {TripStatusCompleted},
}

// CanTransitionTo reports whether moving from s to next is a legal transition
func (s TripStatus) CanTransitionTo(next TripStatus) bool {
	for _, allowed := range legalTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions are possible
func (s TripStatus) IsTerminal() bool {
	return s == TripStatusCompleted || s == TripStatusCancelled
}

// Trackable reports whether a tracking session may be active for this status
func (s TripStatus) Trackable() bool {
	switch s {
	case TripStatusAccepted, TripStatusStarted, TripStatusInProgress, TripStatusOngoing:
		return true
	}
	return false
}

// Trip represents a transport job with a pickup, delivery and assigned
// transporter. The bookings backend is the source of truth; this is the
// shape we read back over HTTP.
type Trip struct {
	ID              string     `json:"id"`
	CustomerID      string     `json:"customer_id"`
	TransporterID   string     `json:"transporter_id"`
	DriverID        string     `json:"driver_id,omitempty"`
	BrokerID        string     `json:"broker_id,omitempty"`
	PickupLocation  GeoPoint   `json:"pickup_location"`
	DropoffLocation GeoPoint   `json:"dropoff_location"`
	Status          TripStatus `json:"status"`
	DistanceKm      float64    `json:"distance_km"`
	DurationMin     int        `json:"duration_min"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// TripStatusEvent is published on the trip status NATS subject whenever a
// booking transitions. Every transition is a dispatch-worthy event.
type TripStatusEvent struct {
	TripID     string     `json:"trip_id"`
	OldStatus  TripStatus `json:"old_status"`
	NewStatus  TripStatus `json:"new_status"`
	OccurredAt time.Time  `json:"occurred_at"`
}

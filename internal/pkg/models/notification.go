package models

import "time"

// NotificationEventType categorizes domain occurrences worth notifying about
type NotificationEventType string

const (
	EventTripStatusChanged NotificationEventType = "trip_status_changed"
	EventRouteDeviation    NotificationEventType = "route_deviation"
	EventTrafficAlert      NotificationEventType = "traffic_alert"
)

// NotificationEvent is a transient domain occurrence; it exists only for the
// duration of dispatch.
type NotificationEvent struct {
	Type       NotificationEventType `json:"type"`
	TripID     string                `json:"trip_id"`
	Status     TripStatus            `json:"status,omitempty"`
	Payload    map[string]string     `json:"payload,omitempty"`
	OccurredAt time.Time             `json:"occurred_at"`
}

// Channel is a delivery mechanism owned by an external provider
type Channel string

const (
	ChannelInApp Channel = "in_app"
	ChannelEmail Channel = "email"
	ChannelSMS   Channel = "sms"
)

// Audience is a class of notification recipient
type Audience string

const (
	AudienceCustomer Audience = "customer"
	AudienceDriver   Audience = "driver"
	AudienceCompany  Audience = "company"
	AudienceBroker   Audience = "broker"
	AudienceAdmin    Audience = "admin"
)

// Message is one (channel, audience) delivery produced by the dispatcher.
// Content is deterministic for a given event so duplicate sends are harmless
// beyond noise.
type Message struct {
	ID           string   `json:"id"`
	Channel      Channel  `json:"channel"`
	Audience     Audience `json:"audience"`
	RecipientRef string   `json:"recipient_ref"`
	TripID       string   `json:"trip_id"`
	Subject      string   `json:"subject"`
	Body         string   `json:"body"`
}

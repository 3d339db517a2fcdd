package models

// LoadUrgency indicates how time-sensitive a load is
type LoadUrgency string

const (
	LoadUrgencyLow    LoadUrgency = "low"
	LoadUrgencyMedium LoadUrgency = "medium"
	LoadUrgencyHigh   LoadUrgency = "high"
)

// Load represents a shippable unit offered on the marketplace.
// Immutable once fetched; the candidate pool is refreshed per planning
// request.
type Load struct {
	ID                  string      `json:"id"`
	Pickup              GeoPoint    `json:"pickup"`
	Dropoff             GeoPoint    `json:"dropoff"`
	WeightKg            float64     `json:"weight_kg"`
	Price               float64     `json:"price"`
	Urgency             LoadUrgency `json:"urgency"`
	SpecialRequirements []string    `json:"special_requirements,omitempty"`
	Consolidatable      bool        `json:"consolidatable"`
}

// Capacity is the maximum weight a transporter's vehicle can carry on a
// consolidated route.
type Capacity struct {
	TotalCapacityKg float64 `json:"total_capacity_kg"`
}

package constants

// Redis key formats
const (
	// Tracking service
	KeyTripPosition = "trip:position:%s" // Format: trip:position:{trip_id}
	KeyTripRoute    = "trip:route:%s"    // Format: trip:route:{trip_id}
	KeyTripAlerts   = "trip:alerts:%s"   // Format: trip:alerts:{trip_id}
	KeyTransportGeo = "transporters:geo" // Geo set of latest transporter positions
)

// Redis hash fields
const (
	FieldLatitude  = "lat"
	FieldLongitude = "lng"
	FieldTimestamp = "ts"
	FieldGeohash   = "geohash"
)

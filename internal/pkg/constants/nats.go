package constants

// NATS Subjects
const (
	// Trip lifecycle (published by the bookings backend)
	SubjectTripStatus = "trip.status"

	// Tracking service
	SubjectTripDeviation = "trip.deviation"
	SubjectTripAlert     = "trip.alert"
	SubjectTripPosition  = "trip.position"

	// Notification channel providers
	SubjectNotifyInApp = "notify.in_app"
	SubjectNotifyEmail = "notify.email"
	SubjectNotifySMS   = "notify.sms"
)

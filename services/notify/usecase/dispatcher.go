package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/wekesa/mizigo/internal/pkg/logger"
	"github.com/wekesa/mizigo/internal/pkg/models"
	"github.com/wekesa/mizigo/services/notify"
)

// routing is one row of the fan-out table: who gets told, and how
type routing struct {
	audiences []models.Audience
	channels  []models.Channel
}

var (
	inAppOnly   = []models.Channel{models.ChannelInApp}
	allChannels = []models.Channel{models.ChannelInApp, models.ChannelEmail, models.ChannelSMS}
)

// statusRouting drives fan-out for trip status transitions. In-app always;
// email and SMS additionally for status-defining events. This table replaces
// the per-call-site conditionals that used to decide audiences ad hoc.
var statusRouting = map[models.TripStatus]routing{
	models.TripStatusAccepted: {
		audiences: []models.Audience{models.AudienceCustomer, models.AudienceDriver, models.AudienceCompany, models.AudienceBroker},
		channels:  allChannels,
	},
	models.TripStatusStarted: {
		audiences: []models.Audience{models.AudienceCustomer, models.AudienceCompany, models.AudienceBroker},
		channels:  allChannels,
	},
	models.TripStatusInProgress: {
		audiences: []models.Audience{models.AudienceCustomer},
		channels:  inAppOnly,
	},
	models.TripStatusCompleted: {
		audiences: []models.Audience{models.AudienceCustomer, models.AudienceDriver, models.AudienceCompany, models.AudienceBroker, models.AudienceAdmin},
		channels:  allChannels,
	},
	models.TripStatusCancelled: {
		audiences: []models.Audience{models.AudienceCustomer, models.AudienceDriver, models.AudienceCompany, models.AudienceBroker, models.AudienceAdmin},
		channels:  allChannels,
	},
}

// eventRouting drives fan-out for non-status events
var eventRouting = map[models.NotificationEventType]routing{
	models.EventRouteDeviation: {
		audiences: []models.Audience{models.AudienceCustomer, models.AudienceCompany, models.AudienceAdmin},
		channels:  inAppOnly,
	},
	models.EventTrafficAlert: {
		audiences: []models.Audience{models.AudienceDriver},
		channels:  inAppOnly,
	},
}

// statusSubjects are the audience-facing subject lines per status
var statusSubjects = map[models.TripStatus]string{
	models.TripStatusAccepted:   "Your trip has been accepted",
	models.TripStatusStarted:    "Your trip has started",
	models.TripStatusInProgress: "Your trip is in progress",
	models.TripStatusCompleted:  "Your trip has been completed",
	models.TripStatusCancelled:  "Your trip has been cancelled",
}

// NotifyUCImpl implements the notify.NotifyUC interface
type NotifyUCImpl struct {
	repo notify.NotifyRepo
	gw   notify.NotifyGW
}

// NewNotifyUC creates a new notification use case
func NewNotifyUC(repo notify.NotifyRepo, gw notify.NotifyGW) *NotifyUCImpl {
	return &NotifyUCImpl{
		repo: repo,
		gw:   gw,
	}
}

// Map translates a domain event into the full set of (channel, audience)
// messages the fan-out table prescribes. Pure and deterministic; the
// dispatcher does not deduplicate, so stable content is what makes duplicate
// sends harmless.
func (uc *NotifyUCImpl) Map(event models.NotificationEvent) []models.Message {
	var route routing
	var subject string

	switch event.Type {
	case models.EventTripStatusChanged:
		var ok bool
		route, ok = statusRouting[event.Status]
		if !ok {
			return nil
		}
		subject = statusSubjects[event.Status]
	default:
		var ok bool
		route, ok = eventRouting[event.Type]
		if !ok {
			return nil
		}
		subject = eventSubject(event)
	}

	messages := make([]models.Message, 0, len(route.audiences)*len(route.channels))
	for _, audience := range route.audiences {
		body := bodyFor(audience, event)
		for _, channel := range route.channels {
			messages = append(messages, models.Message{
				ID:           messageID(event, audience, channel),
				Channel:      channel,
				Audience:     audience,
				RecipientRef: fmt.Sprintf("%s:%s", audience, event.TripID),
				TripID:       event.TripID,
				Subject:      subject,
				Body:         body,
			})
		}
	}
	return messages
}

// Dispatch fans the event out to the channel providers. A provider publish
// failure aborts the dispatch so the caller can redeliver; already published
// messages are harmless duplicates on retry.
func (uc *NotifyUCImpl) Dispatch(ctx context.Context, event models.NotificationEvent) error {
	messages := uc.Map(event)
	if len(messages) == 0 {
		logger.Debug("No routing for event",
			logger.String("type", string(event.Type)),
			logger.String("status", string(event.Status)))
		return nil
	}

	for _, msg := range messages {
		if err := uc.gw.PublishMessage(ctx, msg); err != nil {
			return fmt.Errorf("failed to publish %s message for trip %s: %w", msg.Channel, event.TripID, err)
		}

		if err := uc.repo.RecordDispatch(ctx, event, msg); err != nil {
			// The audit log is best-effort; delivery already happened
			logger.Error("Failed to record dispatch",
				logger.String("message_id", msg.ID),
				logger.Err(err))
		}
	}

	logger.Info("Event dispatched",
		logger.String("type", string(event.Type)),
		logger.String("trip_id", event.TripID),
		logger.Int("messages", len(messages)))
	return nil
}

// messageID derives a stable identifier so duplicate dispatches of the same
// (type, trip, status) tuple produce identical messages.
func messageID(event models.NotificationEvent, audience models.Audience, channel models.Channel) string {
	key := fmt.Sprintf("%s:%s:%s:%s:%s", event.Type, event.TripID, event.Status, audience, channel)
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(key)).String()
}

func eventSubject(event models.NotificationEvent) string {
	switch event.Type {
	case models.EventRouteDeviation:
		return "Transporter has deviated from the planned route"
	case models.EventTrafficAlert:
		return "Traffic conditions on your route"
	}
	return "Trip update"
}

// bodyFor renders the audience-appropriate template for the same semantic
// event.
func bodyFor(audience models.Audience, event models.NotificationEvent) string {
	switch event.Type {
	case models.EventTripStatusChanged:
		switch audience {
		case models.AudienceCustomer:
			return fmt.Sprintf("Your shipment on trip %s is now %s.", event.TripID, event.Status)
		case models.AudienceDriver:
			return fmt.Sprintf("Trip %s is now %s.", event.TripID, event.Status)
		case models.AudienceCompany:
			return fmt.Sprintf("Trip %s assigned to your fleet is now %s.", event.TripID, event.Status)
		case models.AudienceBroker:
			return fmt.Sprintf("Brokered trip %s is now %s.", event.TripID, event.Status)
		case models.AudienceAdmin:
			return fmt.Sprintf("Trip %s transitioned to %s.", event.TripID, event.Status)
		}
	case models.EventRouteDeviation:
		return fmt.Sprintf("Trip %s has left its planned route (%s).", event.TripID, event.Payload["reason"])
	case models.EventTrafficAlert:
		return fmt.Sprintf("Traffic reported near trip %s: %s", event.TripID, event.Payload["message"])
	}
	return fmt.Sprintf("Update for trip %s.", event.TripID)
}

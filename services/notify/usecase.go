package notify

import (
	"context"

	"github.com/wekesa/mizigo/internal/pkg/models"
)

// NotifyUC defines the interface for notification dispatch logic
type NotifyUC interface {
	// Map is the pure event -> messages translation. Deterministic: the same
	// event always yields the same messages, so at-least-once delivery from
	// the caller is safe.
	Map(event models.NotificationEvent) []models.Message

	// Dispatch maps the event and hands each message to the channel
	// providers, recording an audit row per message.
	Dispatch(ctx context.Context, event models.NotificationEvent) error
}

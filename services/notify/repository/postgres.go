package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/wekesa/mizigo/internal/pkg/database"
	"github.com/wekesa/mizigo/internal/pkg/models"
	"github.com/wekesa/mizigo/services/notify"
)

type notifyRepo struct {
	pg *database.PostgresClient
}

// NewNotifyRepository creates a new notification repository
func NewNotifyRepository(pg *database.PostgresClient) notify.NotifyRepo {
	return &notifyRepo{pg: pg}
}

// RecordDispatch inserts one audit row per dispatched message. The message
// ID is deterministic per (event, audience, channel), so redelivered events
// upsert instead of duplicating rows.
func (r *notifyRepo) RecordDispatch(ctx context.Context, event models.NotificationEvent, msg models.Message) error {
	query := `
		INSERT INTO notification_dispatches (
			message_id, trip_id, event_type, trip_status, audience, channel, subject, dispatched_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (message_id) DO UPDATE SET dispatched_at = EXCLUDED.dispatched_at`

	_, err := r.pg.GetDB().ExecContext(ctx, query,
		msg.ID,
		msg.TripID,
		string(event.Type),
		string(event.Status),
		string(msg.Audience),
		string(msg.Channel),
		msg.Subject,
		time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to record dispatch: %w", err)
	}
	return nil
}

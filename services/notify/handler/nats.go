package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/wekesa/mizigo/internal/pkg/constants"
	"github.com/wekesa/mizigo/internal/pkg/logger"
	"github.com/wekesa/mizigo/internal/pkg/models"
	natspkg "github.com/wekesa/mizigo/internal/pkg/nats"
	"github.com/wekesa/mizigo/services/notify"
)

// NATSHandler consumes dispatch-worthy domain events
type NATSHandler struct {
	notifyUC   notify.NotifyUC
	natsClient *natspkg.Client
	subs       []*nats.Subscription
}

// NewNATSHandler creates a new notification NATS handler
func NewNATSHandler(notifyUC notify.NotifyUC, client *natspkg.Client) *NATSHandler {
	return &NATSHandler{
		notifyUC:   notifyUC,
		natsClient: client,
		subs:       make([]*nats.Subscription, 0),
	}
}

// InitNATSConsumers subscribes to the subjects that produce notifications
func (h *NATSHandler) InitNATSConsumers() error {
	subjects := map[string]nats.MsgHandler{
		constants.SubjectTripStatus: func(msg *nats.Msg) {
			if err := h.handleTripStatus(msg.Data); err != nil {
				logger.Error("Error handling trip status event", logger.Err(err))
			}
		},
		constants.SubjectTripDeviation: func(msg *nats.Msg) {
			if err := h.handleDeviation(msg.Data); err != nil {
				logger.Error("Error handling deviation event", logger.Err(err))
			}
		},
		constants.SubjectTripAlert: func(msg *nats.Msg) {
			if err := h.handleAlerts(msg.Data); err != nil {
				logger.Error("Error handling traffic alerts", logger.Err(err))
			}
		},
	}

	for subject, handlerFn := range subjects {
		sub, err := h.natsClient.Subscribe(subject, handlerFn)
		if err != nil {
			return fmt.Errorf("failed to subscribe to %s: %w", subject, err)
		}
		h.subs = append(h.subs, sub)
	}

	logger.Info("Notification NATS consumers initialized")
	return nil
}

// handleTripStatus dispatches notifications for a status transition
func (h *NATSHandler) handleTripStatus(data []byte) error {
	var event models.TripStatusEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return fmt.Errorf("failed to decode trip status event: %w", err)
	}

	return h.notifyUC.Dispatch(context.Background(), models.NotificationEvent{
		Type:       models.EventTripStatusChanged,
		TripID:     event.TripID,
		Status:     event.NewStatus,
		OccurredAt: event.OccurredAt,
	})
}

// handleDeviation dispatches notifications for a deviation state change.
// Recovery transitions are not notified; only entering deviation is.
func (h *NATSHandler) handleDeviation(data []byte) error {
	var event models.RouteDeviationEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return fmt.Errorf("failed to decode deviation event: %w", err)
	}
	if !event.Deviating {
		return nil
	}

	occurredAt := event.DetectedAt
	if occurredAt.IsZero() {
		occurredAt = time.Now()
	}

	return h.notifyUC.Dispatch(context.Background(), models.NotificationEvent{
		Type:   models.EventRouteDeviation,
		TripID: event.TripID,
		Payload: map[string]string{
			"reason":      event.Reason,
			"distance_km": fmt.Sprintf("%.1f", event.DistanceFromRoute),
		},
		OccurredAt: occurredAt,
	})
}

// alertBatch mirrors the wire shape the tracking service publishes on
// trip.alert: the ranked list, most severe first.
type alertBatch struct {
	TripID string                `json:"trip_id"`
	Alerts []models.TrafficAlert `json:"alerts"`
}

// handleAlerts dispatches the most severe traffic alert of a batch. Deviation
// alerts are skipped here since the deviation subject already covers them.
func (h *NATSHandler) handleAlerts(data []byte) error {
	var batch alertBatch
	if err := json.Unmarshal(data, &batch); err != nil {
		return fmt.Errorf("failed to decode alert batch: %w", err)
	}

	for _, alert := range batch.Alerts {
		if alert.Type == models.AlertTypeDeviation {
			continue
		}
		return h.notifyUC.Dispatch(context.Background(), models.NotificationEvent{
			Type:   models.EventTrafficAlert,
			TripID: batch.TripID,
			Payload: map[string]string{
				"message":  alert.Message,
				"severity": string(alert.Severity),
			},
			OccurredAt: alert.CreatedAt,
		})
	}
	return nil
}

package handler

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/wekesa/mizigo/internal/pkg/constants"
	"github.com/wekesa/mizigo/internal/pkg/logger"
	"github.com/wekesa/mizigo/internal/pkg/models"
	natspkg "github.com/wekesa/mizigo/internal/pkg/nats"
	"github.com/wekesa/mizigo/services/tracking"
)

// NATSHandler consumes trip status transitions and pushed position reports
type NATSHandler struct {
	trackingUC tracking.TrackingUC
	natsClient *natspkg.Client
	subs       []*nats.Subscription
}

// NewNATSHandler creates a new tracking NATS handler
func NewNATSHandler(trackingUC tracking.TrackingUC, client *natspkg.Client) *NATSHandler {
	return &NATSHandler{
		trackingUC: trackingUC,
		natsClient: client,
		subs:       make([]*nats.Subscription, 0),
	}
}

// InitNATSConsumers subscribes to the subjects the tracking service reacts to
func (h *NATSHandler) InitNATSConsumers() error {
	sub, err := h.natsClient.Subscribe(constants.SubjectTripStatus, func(msg *nats.Msg) {
		if err := h.handleTripStatus(msg.Data); err != nil {
			logger.Error("Error handling trip status event", logger.Err(err))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe to trip status events: %w", err)
	}
	h.subs = append(h.subs, sub)

	sub, err = h.natsClient.Subscribe(constants.SubjectTripPosition, func(msg *nats.Msg) {
		if err := h.handlePositionReport(msg.Data); err != nil {
			logger.Error("Error handling position report", logger.Err(err))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe to position reports: %w", err)
	}
	h.subs = append(h.subs, sub)

	logger.Info("Tracking NATS consumers initialized")
	return nil
}

// handleTripStatus lets sessions self-terminate on terminal transitions
func (h *NATSHandler) handleTripStatus(data []byte) error {
	var event models.TripStatusEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return fmt.Errorf("failed to decode trip status event: %w", err)
	}

	return h.trackingUC.HandleTripStatus(context.Background(), event)
}

// handlePositionReport stores a pushed position sample
func (h *NATSHandler) handlePositionReport(data []byte) error {
	var pos models.TrackedPosition
	if err := json.Unmarshal(data, &pos); err != nil {
		return fmt.Errorf("failed to decode position report: %w", err)
	}

	return h.trackingUC.HandlePositionReport(context.Background(), pos)
}

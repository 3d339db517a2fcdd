package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/wekesa/mizigo/internal/pkg/models"
	"github.com/wekesa/mizigo/services/notify/mocks"
)

func statusEvent(status models.TripStatus) models.NotificationEvent {
	return models.NotificationEvent{
		Type:       models.EventTripStatusChanged,
		TripID:     "trip-1",
		Status:     status,
		OccurredAt: time.Now(),
	}
}

func TestMap_FanOutPerStatus(t *testing.T) {
	uc := NewNotifyUC(nil, nil)

	tests := []struct {
		name      string
		status    models.TripStatus
		audiences int
		channels  int
	}{
		{"accepted", models.TripStatusAccepted, 4, 3},
		{"started", models.TripStatusStarted, 3, 3},
		{"in_progress", models.TripStatusInProgress, 1, 1},
		{"completed", models.TripStatusCompleted, 5, 3},
		{"cancelled", models.TripStatusCancelled, 5, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			messages := uc.Map(statusEvent(tt.status))

			assert.Len(t, messages, tt.audiences*tt.channels)

			seen := make(map[string]bool)
			for _, msg := range messages {
				assert.NotEmpty(t, msg.ID)
				assert.NotEmpty(t, msg.Subject)
				assert.NotEmpty(t, msg.Body)
				assert.Equal(t, "trip-1", msg.TripID)

				key := string(msg.Audience) + "/" + string(msg.Channel)
				assert.False(t, seen[key], "duplicate message for %s", key)
				seen[key] = true
			}
		})
	}
}

func TestMap_UnroutedEventsYieldNothing(t *testing.T) {
	uc := NewNotifyUC(nil, nil)

	// pending is not a dispatch-worthy transition
	assert.Empty(t, uc.Map(statusEvent(models.TripStatusPending)))
	assert.Empty(t, uc.Map(models.NotificationEvent{Type: "unknown_event", TripID: "trip-1"}))
}

func TestMap_Deterministic(t *testing.T) {
	uc := NewNotifyUC(nil, nil)

	event := statusEvent(models.TripStatusCompleted)
	first := uc.Map(event)
	second := uc.Map(event)

	assert.Equal(t, first, second, "the same event must always map to identical messages")
}

func TestMap_DeviationGoesInAppOnly(t *testing.T) {
	uc := NewNotifyUC(nil, nil)

	messages := uc.Map(models.NotificationEvent{
		Type:    models.EventRouteDeviation,
		TripID:  "trip-1",
		Payload: map[string]string{"reason": "off route"},
	})

	assert.Len(t, messages, 3)
	for _, msg := range messages {
		assert.Equal(t, models.ChannelInApp, msg.Channel)
		assert.NotEqual(t, models.AudienceDriver, msg.Audience, "the driver caused the deviation")
	}
}

func TestDispatch_PublishesAndRecordsEveryMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockNotifyRepo(ctrl)
	mockGW := mocks.NewMockNotifyGW(ctrl)
	uc := NewNotifyUC(mockRepo, mockGW)

	event := statusEvent(models.TripStatusCompleted)
	expected := len(uc.Map(event))

	mockGW.EXPECT().PublishMessage(gomock.Any(), gomock.Any()).Return(nil).Times(expected)
	mockRepo.EXPECT().RecordDispatch(gomock.Any(), event, gomock.Any()).Return(nil).Times(expected)

	assert.NoError(t, uc.Dispatch(context.Background(), event))
}

func TestDispatch_PublishFailureAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockNotifyRepo(ctrl)
	mockGW := mocks.NewMockNotifyGW(ctrl)
	uc := NewNotifyUC(mockRepo, mockGW)

	event := statusEvent(models.TripStatusCompleted)

	// First publish succeeds, second fails; dispatch stops there so the
	// caller redelivers. Duplicate sends are harmless because message IDs
	// are stable.
	gomock.InOrder(
		mockGW.EXPECT().PublishMessage(gomock.Any(), gomock.Any()).Return(nil),
		mockGW.EXPECT().PublishMessage(gomock.Any(), gomock.Any()).Return(errors.New("nats down")),
	)
	mockRepo.EXPECT().RecordDispatch(gomock.Any(), event, gomock.Any()).Return(nil).Times(1)

	assert.Error(t, uc.Dispatch(context.Background(), event))
}

func TestDispatch_AuditFailureIsAbsorbed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockNotifyRepo(ctrl)
	mockGW := mocks.NewMockNotifyGW(ctrl)
	uc := NewNotifyUC(mockRepo, mockGW)

	event := models.NotificationEvent{
		Type:    models.EventTrafficAlert,
		TripID:  "trip-1",
		Payload: map[string]string{"message": "heavy congestion"},
	}

	mockGW.EXPECT().PublishMessage(gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().RecordDispatch(gomock.Any(), event, gomock.Any()).Return(errors.New("postgres down"))

	// Delivery already happened; a failed audit row must not fail dispatch
	assert.NoError(t, uc.Dispatch(context.Background(), event))
}

func TestDispatch_NoRoutingIsANoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockNotifyRepo(ctrl)
	mockGW := mocks.NewMockNotifyGW(ctrl)
	uc := NewNotifyUC(mockRepo, mockGW)

	assert.NoError(t, uc.Dispatch(context.Background(), statusEvent(models.TripStatusPending)))
}

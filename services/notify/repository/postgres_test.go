package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wekesa/mizigo/internal/pkg/database"
	"github.com/wekesa/mizigo/internal/pkg/models"
)

func setupNotifyRepoTest(t *testing.T) (*database.PostgresClient, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	return &database.PostgresClient{DB: sqlx.NewDb(mockDB, "sqlmock")}, mock
}

func TestRecordDispatch_InsertsAuditRow(t *testing.T) {
	pg, mock := setupNotifyRepoTest(t)
	repo := NewNotifyRepository(pg)

	event := models.NotificationEvent{
		Type:       models.EventTripStatusChanged,
		TripID:     "trip-123",
		Status:     models.TripStatusCompleted,
		OccurredAt: time.Now(),
	}
	msg := models.Message{
		ID:       "msg-1",
		Channel:  models.ChannelEmail,
		Audience: models.AudienceCustomer,
		TripID:   "trip-123",
		Subject:  "Your trip has been completed",
	}

	mock.ExpectExec("INSERT INTO notification_dispatches").
		WithArgs(
			msg.ID,
			msg.TripID,
			string(event.Type),
			string(event.Status),
			string(msg.Audience),
			string(msg.Channel),
			msg.Subject,
			sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.RecordDispatch(context.Background(), event, msg))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordDispatch_PropagatesDatabaseError(t *testing.T) {
	pg, mock := setupNotifyRepoTest(t)
	repo := NewNotifyRepository(pg)

	mock.ExpectExec("INSERT INTO notification_dispatches").
		WillReturnError(errors.New("connection reset"))

	err := repo.RecordDispatch(context.Background(), models.NotificationEvent{}, models.Message{})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

package notify

import (
	"context"

	"github.com/wekesa/mizigo/internal/pkg/models"
)

// NotifyRepo defines the interface for the dispatch audit log
type NotifyRepo interface {
	RecordDispatch(ctx context.Context, event models.NotificationEvent, msg models.Message) error
}

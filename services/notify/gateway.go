package notify

import (
	"context"

	"github.com/wekesa/mizigo/internal/pkg/models"
)

// NotifyGW defines the interface for handing messages to channel providers.
// The dispatcher never talks to email/SMS/push providers directly; it only
// publishes to their delivery subjects.
type NotifyGW interface {
	PublishMessage(ctx context.Context, msg models.Message) error
}

package gateway

import (
	"context"
	"fmt"

	"github.com/wekesa/mizigo/internal/pkg/constants"
	"github.com/wekesa/mizigo/internal/pkg/models"
	natspkg "github.com/wekesa/mizigo/internal/pkg/nats"
	"github.com/wekesa/mizigo/services/notify"
)

// channelSubjects maps each delivery channel to its provider subject
var channelSubjects = map[models.Channel]string{
	models.ChannelInApp: constants.SubjectNotifyInApp,
	models.ChannelEmail: constants.SubjectNotifyEmail,
	models.ChannelSMS:   constants.SubjectNotifySMS,
}

type notifyGW struct {
	producer *natspkg.Producer
}

// NewNotifyGW creates a new notification gateway
func NewNotifyGW(natsClient *natspkg.Client) notify.NotifyGW {
	return &notifyGW{
		producer: natspkg.NewProducer(natsClient),
	}
}

// PublishMessage hands a message to its channel provider's subject
func (g *notifyGW) PublishMessage(ctx context.Context, msg models.Message) error {
	subject, ok := channelSubjects[msg.Channel]
	if !ok {
		return fmt.Errorf("unknown channel %q", msg.Channel)
	}
	return g.producer.Publish(subject, msg)
}

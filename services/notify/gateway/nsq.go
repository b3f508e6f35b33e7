package gateway

import (
	"github.com/PriyanKishoreMS/RideAlong-Server/internal/pkg/constants"
	"github.com/PriyanKishoreMS/RideAlong-Server/internal/pkg/models"
	nsqpkg "github.com/PriyanKishoreMS/RideAlong-Server/internal/pkg/nsq"
	"github.com/PriyanKishoreMS/RideAlong-Server/services/notify"
)

// PushGW queues push messages on NSQ for the dispatcher
type PushGW struct {
	producer *nsqpkg.Producer
}

// NewPushGW creates a new push queue gateway
func NewPushGW(producer *nsqpkg.Producer) notify.PushQueue {
	return &PushGW{
		producer: producer,
	}
}

// Enqueue queues a push message for dispatch
func (g *PushGW) Enqueue(msg *models.PushMessage) error {
	return g.producer.Publish(constants.TopicPushNotifications, msg)
}

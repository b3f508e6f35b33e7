package nats

import (
	"fmt"

	"github.com/nats-io/nats.go"

	"github.com/PriyanKishoreMS/RideAlong-Server/internal/pkg/logger"
)

// MessageHandler is a function that processes NATS messages
type MessageHandler func(message []byte) error

// Consumer handles consuming messages from NATS subjects
type Consumer struct {
	conn         *nats.Conn
	subscription *nats.Subscription
}

// NewConsumer creates a new NATS consumer for a subject. A non-empty
// queue group load-balances the subject across worker instances.
func NewConsumer(subject, queueGroup, address string, handler MessageHandler) (*Consumer, error) {
	conn, err := nats.Connect(address)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS server: %w", err)
	}

	process := func(msg *nats.Msg) {
		if err := handler(msg.Data); err != nil {
			logger.Warn("Error processing message",
				logger.String("subject", subject),
				logger.String("queue_group", queueGroup),
				logger.Err(err))
		}
	}

	var subscription *nats.Subscription
	if queueGroup != "" {
		subscription, err = conn.QueueSubscribe(subject, queueGroup, process)
	} else {
		subscription, err = conn.Subscribe(subject, process)
	}
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to subscribe to subject: %w", err)
	}

	return &Consumer{
		conn:         conn,
		subscription: subscription,
	}, nil
}

// Stop unsubscribes and closes the connection
func (c *Consumer) Stop() {
	if c.subscription != nil {
		_ = c.subscription.Unsubscribe()
	}
	if c.conn != nil {
		c.conn.Close()
	}
}

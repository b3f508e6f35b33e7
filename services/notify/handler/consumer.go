package handler

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/PriyanKishoreMS/RideAlong-Server/internal/pkg/constants"
	"github.com/PriyanKishoreMS/RideAlong-Server/internal/pkg/models"
	natspkg "github.com/PriyanKishoreMS/RideAlong-Server/internal/pkg/nats"
	nsqpkg "github.com/PriyanKishoreMS/RideAlong-Server/internal/pkg/nsq"
	"github.com/PriyanKishoreMS/RideAlong-Server/services/notify"
)

// Handler wires the notify use case to its NATS and NSQ consumers
type Handler struct {
	cfg      *models.Config
	notifyUC notify.NotifyUC

	consumers  []*natspkg.Consumer
	dispatcher *nsqpkg.Consumer
}

// NewHandler creates a new notify consumer handler
func NewHandler(cfg *models.Config, notifyUC notify.NotifyUC) *Handler {
	return &Handler{
		cfg:      cfg,
		notifyUC: notifyUC,
	}
}

// Start subscribes to the ride event subjects and the push queue
func (h *Handler) Start() error {
	created, err := natspkg.NewConsumer(
		constants.SubjectRideCreated,
		constants.NotifyRideQueueGroup,
		h.cfg.NATS.URL,
		h.handleRideCreated,
	)
	if err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", constants.SubjectRideCreated, err)
	}
	h.consumers = append(h.consumers, created)

	accepted, err := natspkg.NewConsumer(
		constants.SubjectRideAccepted,
		constants.NotifyAcceptedQueueGroup,
		h.cfg.NATS.URL,
		h.handleRideAccepted,
	)
	if err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", constants.SubjectRideAccepted, err)
	}
	h.consumers = append(h.consumers, accepted)

	dispatcher, err := nsqpkg.NewConsumer(
		constants.TopicPushNotifications,
		constants.ChannelPushDispatcher,
		h.cfg.NSQ.Address,
		h.handlePushMessage,
	)
	if err != nil {
		return fmt.Errorf("failed to start push dispatcher: %w", err)
	}
	h.dispatcher = dispatcher

	return nil
}

// Stop tears down all consumers
func (h *Handler) Stop() {
	for _, c := range h.consumers {
		c.Stop()
	}
	if h.dispatcher != nil {
		h.dispatcher.Stop()
	}
}

func (h *Handler) handleRideCreated(message []byte) error {
	var event models.RideCreatedEvent
	if err := json.Unmarshal(message, &event); err != nil {
		return fmt.Errorf("failed to unmarshal ride created event: %w", err)
	}
	return h.notifyUC.HandleRideCreated(context.Background(), &event)
}

func (h *Handler) handleRideAccepted(message []byte) error {
	var event models.RideAcceptedEvent
	if err := json.Unmarshal(message, &event); err != nil {
		return fmt.Errorf("failed to unmarshal ride accepted event: %w", err)
	}
	return h.notifyUC.HandleRideAccepted(context.Background(), &event)
}

func (h *Handler) handlePushMessage(message []byte) error {
	var msg models.PushMessage
	if err := nsqpkg.UnmarshalMessage(message, &msg); err != nil {
		return err
	}
	return h.notifyUC.Dispatch(context.Background(), &msg)
}

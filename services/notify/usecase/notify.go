package usecase

import (
	"context"
	"fmt"

	"github.com/PriyanKishoreMS/RideAlong-Server/internal/pkg/logger"
	"github.com/PriyanKishoreMS/RideAlong-Server/internal/pkg/models"
	"github.com/PriyanKishoreMS/RideAlong-Server/services/notify"
)

// notifyUC implements the notify.NotifyUC interface
type notifyUC struct {
	cfg        *models.Config
	recipients notify.RecipientRepo
	queue      notify.PushQueue
	sender     notify.PushSender
}

// NewNotifyUC creates a new notification use case
func NewNotifyUC(
	cfg *models.Config,
	recipients notify.RecipientRepo,
	queue notify.PushQueue,
	sender notify.PushSender,
) (notify.NotifyUC, error) {
	return &notifyUC{
		cfg:        cfg,
		recipients: recipients,
		queue:      queue,
		sender:     sender,
	}, nil
}

// HandleRideCreated fans a new ride out to the owner's followers. A
// follower without registered devices is skipped silently.
func (uc *notifyUC) HandleRideCreated(ctx context.Context, event *models.RideCreatedEvent) error {
	followers, err := uc.recipients.FollowerIDs(ctx, event.OwnerID)
	if err != nil {
		return fmt.Errorf("failed to resolve followers: %w", err)
	}

	var tokens []string
	for _, followerID := range followers {
		followerTokens, err := uc.recipients.Tokens(ctx, followerID)
		if err != nil {
			logger.WarnCtx(ctx, "Failed to resolve device tokens, skipping follower",
				logger.String("user_id", followerID.String()),
				logger.Err(err))
			continue
		}
		tokens = append(tokens, followerTokens...)
	}
	if len(tokens) == 0 {
		return nil
	}

	msg := &models.PushMessage{
		Tokens: tokens,
		Title:  "New ride to " + event.Destination,
		Body:   fmt.Sprintf("A ride from %s to %s just opened with %d seats", event.Source, event.Destination, event.Seats),
		Data: map[string]string{
			"type":    "ride_created",
			"ride_id": event.RideID.String(),
		},
	}
	if err := uc.queue.Enqueue(msg); err != nil {
		return fmt.Errorf("failed to enqueue push: %w", err)
	}

	logger.InfoCtx(ctx, "Ride created push queued",
		logger.String("ride_id", event.RideID.String()),
		logger.Int("tokens", len(tokens)))
	return nil
}

// HandleRideAccepted notifies the accepted passenger
func (uc *notifyUC) HandleRideAccepted(ctx context.Context, event *models.RideAcceptedEvent) error {
	tokens, err := uc.recipients.Tokens(ctx, event.PassengerID)
	if err != nil {
		return fmt.Errorf("failed to resolve device tokens: %w", err)
	}
	if len(tokens) == 0 {
		return nil
	}

	msg := &models.PushMessage{
		Tokens: tokens,
		Title:  "You're in!",
		Body:   fmt.Sprintf("Your request to join the ride to %s was accepted", event.Destination),
		Data: map[string]string{
			"type":    "ride_accepted",
			"ride_id": event.RideID.String(),
		},
	}
	if err := uc.queue.Enqueue(msg); err != nil {
		return fmt.Errorf("failed to enqueue push: %w", err)
	}

	logger.InfoCtx(ctx, "Ride accepted push queued",
		logger.String("ride_id", event.RideID.String()),
		logger.String("passenger_id", event.PassengerID.String()))
	return nil
}

// Dispatch delivers a queued push message
func (uc *notifyUC) Dispatch(ctx context.Context, msg *models.PushMessage) error {
	if len(msg.Tokens) == 0 {
		return nil
	}
	if err := uc.sender.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to dispatch push: %w", err)
	}
	return nil
}

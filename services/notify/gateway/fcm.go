package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	httppkg "github.com/PriyanKishoreMS/RideAlong-Server/internal/pkg/http"
	"github.com/PriyanKishoreMS/RideAlong-Server/internal/pkg/models"
	"github.com/PriyanKishoreMS/RideAlong-Server/services/notify"
)

// fcmPayload is the legacy FCM HTTP API request body
type fcmPayload struct {
	RegistrationIDs []string          `json:"registration_ids"`
	Notification    fcmNotification   `json:"notification"`
	Data            map[string]string `json:"data,omitempty"`
}

type fcmNotification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// FCMGW delivers push messages over the FCM HTTP API
type FCMGW struct {
	cfg    *models.Config
	client *httppkg.EnhancedClient
}

// NewFCMGW creates a new FCM gateway
func NewFCMGW(cfg *models.Config, client *httppkg.EnhancedClient) notify.PushSender {
	return &FCMGW{
		cfg:    cfg,
		client: client,
	}
}

// Send delivers the message to every token it carries
func (g *FCMGW) Send(ctx context.Context, msg *models.PushMessage) error {
	if len(msg.Tokens) == 0 {
		return nil
	}

	payload := fcmPayload{
		RegistrationIDs: msg.Tokens,
		Notification: fcmNotification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Data: msg.Data,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal push payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.FCM.Endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build push request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "key="+g.cfg.FCM.ServerKey)

	resp, err := g.client.Do(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to deliver push: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("push service returned status %d", resp.StatusCode)
	}
	return nil
}

package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/waqaskhan1437/wishesu-sub006/internal/usecase/interfaces"
)

// WebhookNotifier delivers order events to an outbound automation endpoint
// (e.g. a spreadsheet webhook). An empty endpoint disables delivery; the
// caller treats every failure as non-fatal.
type WebhookNotifier struct {
	endpoint string
	client   *http.Client
}

var _ interfaces.INotifier = (*WebhookNotifier)(nil)

func NewWebhookNotifier(endpoint string) *WebhookNotifier {
	if endpoint == "" {
		log.Printf("[notify][sink] ORDER_WEBHOOK_URL not set; order notifications disabled")
	}
	return &WebhookNotifier{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

func (n *WebhookNotifier) OrderCreated(ctx context.Context, notification interfaces.OrderCreatedNotification) error {
	if n.endpoint == "" {
		return nil
	}

	body := struct {
		Event string                              `json:"event"`
		Order interfaces.OrderCreatedNotification `json:"order"`
	}{Event: "order.created", Order: notification}

	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to create notification request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("notification endpoint returned status %d: %s", resp.StatusCode, string(raw))
	}

	log.Printf("[notify][sink] order notification delivered order_id=%s", notification.OrderID)
	return nil
}

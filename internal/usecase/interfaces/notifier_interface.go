package interfaces

import "context"

// OrderCreatedNotification is the out-of-band event emitted after an order is
// created from a completed checkout.
type OrderCreatedNotification struct {
	OrderID     string  `json:"order_id"`
	Email       string  `json:"email,omitempty"`
	Amount      float64 `json:"amount"`
	TrackingURL string  `json:"tracking_url,omitempty"`
}

// INotifier delivers order events to an external automation endpoint.
// Delivery failure is never fatal to the payment core.
type INotifier interface {
	OrderCreated(ctx context.Context, n OrderCreatedNotification) error
}

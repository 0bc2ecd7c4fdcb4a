package entities

import (
	"encoding/json"
	"time"
)

// OrderStatus represents the order processing outcome.
//
// The webhook flow only ever creates completed orders; pending/cancelled
// exist for the downstream fulfillment code that owns the record afterwards.

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Order is created exactly once per checkout session, by the webhook
// processor, after it wins the claim on the session row.
//
// Storage model (DynamoDB):
//   - PK: id
//
// EncryptedData keeps the buyer-facing payload (email, amount, addon
// snapshot) as a single JSON blob for traceability.
type Order struct {
	ID            string          `json:"id"`
	ProductID     int             `json:"product_id"`
	Status        OrderStatus     `json:"status"`
	EncryptedData json.RawMessage `json:"encrypted_data,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

package entities

import "time"

// CheckoutStatus represents the lifecycle of a provider checkout session.
//
// Transitions are strictly forward:
//   - pending -> completed (webhook claim)
//   - pending -> archived  (expiry reaping)
//
// A terminal session is never deleted; it stays for audit/reconciliation.

type CheckoutStatus string

const (
	CheckoutStatusPending   CheckoutStatus = "pending"
	CheckoutStatusCompleted CheckoutStatus = "completed"
	CheckoutStatusArchived  CheckoutStatus = "archived"
)

// CheckoutTTL is the validity window of a checkout session. The reaper is the
// only enforcement mechanism; nothing actively cancels a session.
const CheckoutTTL = 15 * time.Minute

// AddonSelection is one buyer-chosen option captured at checkout time.
// The provider may omit these when echoing metadata back, so the stored
// snapshot is authoritative.
type AddonSelection struct {
	Field string  `json:"field"`
	Value string  `json:"value"`
	Price float64 `json:"price,omitempty"`
}

// SessionMetadata is the blob attached to a provider checkout session.
// It travels to the provider on creation and (sometimes truncated) comes back
// on the completion webhook.
type SessionMetadata struct {
	ProductID int              `json:"product_id"`
	Addons    []AddonSelection `json:"addons,omitempty"`
	Email     string           `json:"email,omitempty"`
	Amount    float64          `json:"amount"`
	CreatedAt string           `json:"created_at,omitempty"`
}

// CheckoutSession is the local source of truth for a provider checkout.
//
// Storage model (DynamoDB):
//   - PK: checkout_id
//   - GSI (status-expires_at-index): status / expires_at (epoch seconds)
//
// Before the provider confirms the real checkout id, the dynamic-plan flow
// keys the row by the synthetic placeholder "plan_<planID>"; the rewrite to
// the real id replaces the row in a single transaction so exactly one row
// exists per session at any time.
type CheckoutSession struct {
	CheckoutID  string          `json:"checkout_id"`
	ProductID   int             `json:"product_id"`
	PlanID      string          `json:"plan_id,omitempty"`
	Metadata    SessionMetadata `json:"metadata"`
	ExpiresAt   time.Time       `json:"expires_at"`
	Status      CheckoutStatus  `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	CompletedAt *time.Time      `json:"completed_at,omitempty"`
}

// PlaceholderCheckoutID builds the synthetic id used to key a session before
// the provider assigns the real checkout id.
func PlaceholderCheckoutID(planID string) string {
	return "plan_" + planID
}

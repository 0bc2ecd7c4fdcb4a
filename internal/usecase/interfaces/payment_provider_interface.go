package interfaces

import (
	"context"

	"github.com/waqaskhan1437/wishesu-sub006/internal/domain/entities"
)

// PlanRequest describes the one-time plan to provision at the provider.
type PlanRequest struct {
	ProductID string
	Title     string
	Price     float64
	Currency  string
}

// CheckoutRequest describes the provider checkout session to create. Email is
// a best-effort prefill hint; an empty value must not fail the call.
type CheckoutRequest struct {
	PlanID      string
	RedirectURL string
	Metadata    entities.SessionMetadata
	Email       string
}

// CheckoutSessionRef identifies a provider-hosted checkout page.
type CheckoutSessionRef struct {
	ID          string
	PurchaseURL string
}

// IPaymentProvider abstracts the external payment provider (plans + hosted
// checkout sessions).
//
// Delete/archive operations are resource hygiene, not correctness: callers
// treat their failures as log-only, and the provider-side objects as
// best-effort mirrors of local state. Deleting an already-deleted object is
// success.
type IPaymentProvider interface {
	CreatePlan(ctx context.Context, req PlanRequest) (string, error)
	CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (CheckoutSessionRef, error)
	DeleteCheckoutSession(ctx context.Context, checkoutID string) error
	DeletePlan(ctx context.Context, planID string) error
	// ArchivePlan makes a plan unpurchasable: hidden visibility first, hard
	// delete as fallback.
	ArchivePlan(ctx context.Context, planID string) error
}

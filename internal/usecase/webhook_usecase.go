package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/waqaskhan1437/wishesu-sub006/internal/domain/entities"
	"github.com/waqaskhan1437/wishesu-sub006/internal/usecase/interfaces"
)

var (
	ErrInvalidWebhookPayload    = errors.New("invalid webhook payload")
	ErrMissingEventType         = errors.New("webhook payload missing event type")
	ErrMissingCheckoutSessionID = errors.New("webhook payload missing checkout session id")
)

// WebhookEvent is the provider-shaped completion event.
type WebhookEvent struct {
	Event string           `json:"event"`
	Data  WebhookEventData `json:"data"`
}

type WebhookEventData struct {
	ID                string                   `json:"id"`
	CheckoutSessionID string                   `json:"checkout_session_id"`
	MembershipID      string                   `json:"membership_id"`
	PlanID            string                   `json:"plan_id"`
	Email             string                   `json:"email"`
	FinalAmount       float64                  `json:"final_amount"`
	Metadata          entities.SessionMetadata `json:"metadata"`
}

// WebhookOutcome reports what the processor did with an event. Exactly one of
// Handled/Skipped/AlreadyClaimed is set on a nil-error return.
type WebhookOutcome struct {
	Handled        bool
	Skipped        bool
	AlreadyClaimed bool
	OrderID        string
}

type IWebhookUseCase interface {
	ProcessEvent(ctx context.Context, payload json.RawMessage) (WebhookOutcome, error)
}

type WebhookUseCase struct {
	sessions        interfaces.ICheckoutSessionRepository
	orders          interfaces.IOrderRepository
	provider        interfaces.IPaymentProvider
	notifier        interfaces.INotifier
	trackingBaseURL string
}

var _ IWebhookUseCase = (*WebhookUseCase)(nil)

func NewWebhookUseCase(
	sessions interfaces.ICheckoutSessionRepository,
	orders interfaces.IOrderRepository,
	provider interfaces.IPaymentProvider,
	notifier interfaces.INotifier,
	trackingBaseURL string,
) *WebhookUseCase {
	return &WebhookUseCase{sessions: sessions, orders: orders, provider: provider, notifier: notifier, trackingBaseURL: trackingBaseURL}
}

// ProcessEvent runs the per-event state machine: reconcile metadata, claim
// the session, create the order, clean up provider resources, notify.
//
// Repeated delivery of the same event is expected; only the claim winner
// creates an order. Provider cleanup is attempted even on a lost claim since
// provider-side deletes are idempotent.
func (u *WebhookUseCase) ProcessEvent(ctx context.Context, payload json.RawMessage) (WebhookOutcome, error) {
	var evt WebhookEvent
	if err := json.Unmarshal(payload, &evt); err != nil {
		log.Printf("[webhook][usecase] payload unmarshal failed err=%v", err)
		return WebhookOutcome{}, fmt.Errorf("%w: %v", ErrInvalidWebhookPayload, err)
	}
	if strings.TrimSpace(evt.Event) == "" {
		return WebhookOutcome{}, ErrMissingEventType
	}
	if !isCompletionEvent(evt.Event) {
		log.Printf("[webhook][usecase] skipping event type=%s", evt.Event)
		return WebhookOutcome{Skipped: true}, nil
	}

	checkoutID := strings.TrimSpace(evt.Data.CheckoutSessionID)
	if checkoutID == "" {
		checkoutID = strings.TrimSpace(evt.Data.ID)
	}
	if checkoutID == "" {
		return WebhookOutcome{}, ErrMissingCheckoutSessionID
	}
	log.Printf("[webhook][usecase] process start event=%s checkout_id=%s membership_id=%s", evt.Event, checkoutID, evt.Data.MembershipID)

	stored, err := u.sessions.GetByCheckoutID(ctx, checkoutID)
	if err != nil {
		log.Printf("[webhook][usecase] session load failed checkout_id=%s err=%v", checkoutID, err)
		return WebhookOutcome{}, err
	}

	// Pure reconciliation happens before any state transition.
	webhookMeta := evt.Data.Metadata
	if webhookMeta.Email == "" {
		webhookMeta.Email = evt.Data.Email
	}
	if webhookMeta.Amount == 0 {
		webhookMeta.Amount = evt.Data.FinalAmount
	}
	meta := reconcileMetadata(webhookMeta, stored.Metadata)

	planID := stored.PlanID
	if planID == "" {
		planID = evt.Data.PlanID
	}

	claimed, err := u.sessions.ClaimCompleted(ctx, checkoutID)
	if err != nil {
		log.Printf("[webhook][usecase] claim failed checkout_id=%s err=%v", checkoutID, err)
		return WebhookOutcome{}, err
	}
	if !claimed {
		log.Printf("[webhook][usecase] claim lost checkout_id=%s (already terminal or unknown); skipping order creation", checkoutID)
		u.cleanupProvider(ctx, checkoutID, planID)
		return WebhookOutcome{AlreadyClaimed: true}, nil
	}

	productID := meta.ProductID
	if productID == 0 {
		productID = stored.ProductID
	}

	encrypted, err := json.Marshal(struct {
		Email  string                    `json:"email,omitempty"`
		Amount float64                   `json:"amount"`
		Addons []entities.AddonSelection `json:"addons,omitempty"`
	}{Email: meta.Email, Amount: meta.Amount, Addons: meta.Addons})
	if err != nil {
		return WebhookOutcome{}, err
	}

	order := entities.Order{
		ID:            newOrderID(),
		ProductID:     productID,
		Status:        entities.OrderStatusCompleted,
		EncryptedData: encrypted,
		CreatedAt:     time.Now().UTC(),
	}
	created, err := u.orders.Create(ctx, order)
	if err != nil {
		log.Printf("[webhook][usecase] order create failed checkout_id=%s order_id=%s err=%v", checkoutID, order.ID, err)
		return WebhookOutcome{}, err
	}
	log.Printf("[webhook][usecase] order created checkout_id=%s order_id=%s amount=%.2f", checkoutID, created.ID, meta.Amount)

	u.cleanupProvider(ctx, checkoutID, planID)
	u.notifyOrderCreated(ctx, created.ID, meta)

	return WebhookOutcome{Handled: true, OrderID: created.ID}, nil
}

func isCompletionEvent(event string) bool {
	switch event {
	case "payment.succeeded", "membership.went_valid":
		return true
	}
	return false
}

// reconcileMetadata merges the webhook echo with the stored snapshot. The
// stored addon list always wins when present (the provider is known to
// truncate or drop metadata on echo); scalar fields fall back to the stored
// values only when the webhook left them empty.
func reconcileMetadata(webhook, stored entities.SessionMetadata) entities.SessionMetadata {
	out := webhook
	if len(stored.Addons) > 0 {
		out.Addons = stored.Addons
	}
	if out.Email == "" {
		out.Email = stored.Email
	}
	if out.Amount == 0 {
		out.Amount = stored.Amount
	}
	if out.ProductID == 0 {
		out.ProductID = stored.ProductID
	}
	if out.CreatedAt == "" {
		out.CreatedAt = stored.CreatedAt
	}
	return out
}

// cleanupProvider removes the transient provider objects. Hygiene only:
// failures are logged and swallowed, and 404s are treated as success by the
// gateway.
func (u *WebhookUseCase) cleanupProvider(ctx context.Context, checkoutID, planID string) {
	if u.provider == nil {
		return
	}
	if err := u.provider.DeleteCheckoutSession(ctx, checkoutID); err != nil {
		log.Printf("[webhook][usecase] checkout session cleanup failed checkout_id=%s err=%v", checkoutID, err)
	}
	if planID != "" {
		if err := u.provider.DeletePlan(ctx, planID); err != nil {
			log.Printf("[webhook][usecase] plan cleanup failed plan_id=%s err=%v", planID, err)
		}
	}
}

func (u *WebhookUseCase) notifyOrderCreated(ctx context.Context, orderID string, meta entities.SessionMetadata) {
	if u.notifier == nil {
		return
	}
	n := interfaces.OrderCreatedNotification{
		OrderID:     orderID,
		Email:       meta.Email,
		Amount:      meta.Amount,
		TrackingURL: fmt.Sprintf("%s/track-order?order_id=%s", strings.TrimRight(u.trackingBaseURL, "/"), orderID),
	}
	if err := u.notifier.OrderCreated(ctx, n); err != nil {
		log.Printf("[webhook][usecase] order notification failed order_id=%s err=%v", orderID, err)
	}
}

// newOrderID builds a human-traceable, globally unique id: a UTC timestamp
// for operators plus a random suffix for uniqueness.
func newOrderID() string {
	suffix := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return fmt.Sprintf("ORD-%s-%s", time.Now().UTC().Format("20060102150405"), suffix)
}

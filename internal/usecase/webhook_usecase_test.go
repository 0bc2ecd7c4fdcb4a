package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/waqaskhan1437/wishesu-sub006/internal/domain/entities"
	"github.com/waqaskhan1437/wishesu-sub006/internal/usecase/interfaces"
	mock_interfaces "github.com/waqaskhan1437/wishesu-sub006/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestReconcileMetadata(t *testing.T) {
	t.Run("stored addons win over webhook echo", func(t *testing.T) {
		stored := entities.SessionMetadata{
			Addons: []entities.AddonSelection{{Field: "note", Value: "hi"}},
		}
		webhook := entities.SessionMetadata{
			Addons: []entities.AddonSelection{{Field: "note", Value: "truncated"}},
		}
		got := reconcileMetadata(webhook, stored)
		if len(got.Addons) != 1 || got.Addons[0].Value != "hi" {
			t.Fatalf("expected stored addons to win, got %+v", got.Addons)
		}
	})

	t.Run("stored addons recovered when webhook drops them", func(t *testing.T) {
		stored := entities.SessionMetadata{
			Addons: []entities.AddonSelection{{Field: "note", Value: "hi"}},
			Email:  "buyer@example.com",
			Amount: 42,
		}
		got := reconcileMetadata(entities.SessionMetadata{}, stored)
		if len(got.Addons) != 1 || got.Addons[0].Field != "note" {
			t.Fatalf("expected stored addons recovered, got %+v", got.Addons)
		}
		if got.Email != "buyer@example.com" || got.Amount != 42 {
			t.Fatalf("expected stored scalars backfilled, got %+v", got)
		}
	})

	t.Run("webhook scalars win when present", func(t *testing.T) {
		stored := entities.SessionMetadata{Email: "old@example.com", Amount: 10, ProductID: 3}
		webhook := entities.SessionMetadata{Email: "new@example.com", Amount: 12}
		got := reconcileMetadata(webhook, stored)
		if got.Email != "new@example.com" || got.Amount != 12 {
			t.Fatalf("expected webhook scalars kept, got %+v", got)
		}
		if got.ProductID != 3 {
			t.Fatalf("expected stored product id backfilled, got %d", got.ProductID)
		}
	})
}

func TestWebhookUseCase_ProcessEvent_PayloadChecks(t *testing.T) {
	uc := NewWebhookUseCase(nil, nil, nil, nil, "")

	t.Run("invalid json", func(t *testing.T) {
		_, err := uc.ProcessEvent(context.Background(), json.RawMessage(`{`))
		if !errors.Is(err, ErrInvalidWebhookPayload) {
			t.Fatalf("expected ErrInvalidWebhookPayload, got %v", err)
		}
	})

	t.Run("missing event type", func(t *testing.T) {
		_, err := uc.ProcessEvent(context.Background(), json.RawMessage(`{"data":{"id":"ch_1"}}`))
		if !errors.Is(err, ErrMissingEventType) {
			t.Fatalf("expected ErrMissingEventType, got %v", err)
		}
	})

	t.Run("non-completion event is skipped", func(t *testing.T) {
		outcome, err := uc.ProcessEvent(context.Background(), json.RawMessage(`{"event":"membership.went_invalid","data":{"id":"ch_1"}}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !outcome.Skipped {
			t.Fatalf("expected skipped outcome, got %+v", outcome)
		}
	})

	t.Run("missing checkout session id", func(t *testing.T) {
		_, err := uc.ProcessEvent(context.Background(), json.RawMessage(`{"event":"payment.succeeded","data":{}}`))
		if !errors.Is(err, ErrMissingCheckoutSessionID) {
			t.Fatalf("expected ErrMissingCheckoutSessionID, got %v", err)
		}
	})
}

func TestWebhookUseCase_ProcessEvent_Completion(t *testing.T) {
	storedSession := func() entities.CheckoutSession {
		return entities.CheckoutSession{
			CheckoutID: "ch_1",
			ProductID:  7,
			PlanID:     "plan_dyn",
			Status:     entities.CheckoutStatusPending,
			Metadata: entities.SessionMetadata{
				ProductID: 7,
				Addons:    []entities.AddonSelection{{Field: "note", Value: "hi"}},
				Email:     "buyer@example.com",
				Amount:    42,
			},
			ExpiresAt: time.Now().UTC().Add(10 * time.Minute),
		}
	}

	payload := json.RawMessage(`{"event":"payment.succeeded","data":{"checkout_session_id":"ch_1","final_amount":42}}`)

	t.Run("claim winner creates exactly one order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mock_interfaces.NewMockICheckoutSessionRepository(ctrl)
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		provider := mock_interfaces.NewMockIPaymentProvider(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		uc := NewWebhookUseCase(sessions, orders, provider, notifier, "https://shop.test")

		sessions.EXPECT().GetByCheckoutID(gomock.Any(), "ch_1").Return(storedSession(), nil)
		sessions.EXPECT().ClaimCompleted(gomock.Any(), "ch_1").Return(true, nil)
		orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.ProductID != 7 || o.Status != entities.OrderStatusCompleted {
					t.Fatalf("unexpected order %+v", o)
				}
				if !strings.HasPrefix(o.ID, "ORD-") {
					t.Fatalf("unexpected order id %s", o.ID)
				}
				var data struct {
					Email  string                    `json:"email"`
					Amount float64                   `json:"amount"`
					Addons []entities.AddonSelection `json:"addons"`
				}
				if err := json.Unmarshal(o.EncryptedData, &data); err != nil {
					t.Fatalf("order data unmarshal: %v", err)
				}
				if data.Email != "buyer@example.com" || data.Amount != 42 || len(data.Addons) != 1 {
					t.Fatalf("unexpected order data %+v", data)
				}
				return o, nil
			})
		provider.EXPECT().DeleteCheckoutSession(gomock.Any(), "ch_1").Return(nil)
		provider.EXPECT().DeletePlan(gomock.Any(), "plan_dyn").Return(nil)
		notifier.EXPECT().OrderCreated(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, n interfaces.OrderCreatedNotification) error {
				if !strings.HasPrefix(n.TrackingURL, "https://shop.test/track-order?order_id=ORD-") {
					t.Fatalf("unexpected tracking url %s", n.TrackingURL)
				}
				if n.Amount != 42 {
					t.Fatalf("unexpected amount %v", n.Amount)
				}
				return nil
			})

		outcome, err := uc.ProcessEvent(context.Background(), payload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !outcome.Handled || outcome.OrderID == "" {
			t.Fatalf("expected handled outcome, got %+v", outcome)
		}
	})

	t.Run("lost claim acknowledges without an order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mock_interfaces.NewMockICheckoutSessionRepository(ctrl)
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		provider := mock_interfaces.NewMockIPaymentProvider(ctrl)
		uc := NewWebhookUseCase(sessions, orders, provider, nil, "")

		sessions.EXPECT().GetByCheckoutID(gomock.Any(), "ch_1").Return(storedSession(), nil)
		sessions.EXPECT().ClaimCompleted(gomock.Any(), "ch_1").Return(false, nil)
		// Cleanup still runs on a lost claim; provider deletes are idempotent.
		provider.EXPECT().DeleteCheckoutSession(gomock.Any(), "ch_1").Return(nil)
		provider.EXPECT().DeletePlan(gomock.Any(), "plan_dyn").Return(nil)

		outcome, err := uc.ProcessEvent(context.Background(), payload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !outcome.AlreadyClaimed || outcome.Handled {
			t.Fatalf("expected already-claimed outcome, got %+v", outcome)
		}
	})

	t.Run("cleanup failure does not fail the event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mock_interfaces.NewMockICheckoutSessionRepository(ctrl)
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		provider := mock_interfaces.NewMockIPaymentProvider(ctrl)
		uc := NewWebhookUseCase(sessions, orders, provider, nil, "")

		sessions.EXPECT().GetByCheckoutID(gomock.Any(), "ch_1").Return(storedSession(), nil)
		sessions.EXPECT().ClaimCompleted(gomock.Any(), "ch_1").Return(true, nil)
		orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) { return o, nil })
		provider.EXPECT().DeleteCheckoutSession(gomock.Any(), "ch_1").Return(errors.New("503"))
		provider.EXPECT().DeletePlan(gomock.Any(), "plan_dyn").Return(errors.New("503"))

		outcome, err := uc.ProcessEvent(context.Background(), payload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !outcome.Handled {
			t.Fatalf("expected handled outcome, got %+v", outcome)
		}
	})

	t.Run("order create failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mock_interfaces.NewMockICheckoutSessionRepository(ctrl)
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewWebhookUseCase(sessions, orders, nil, nil, "")

		sessions.EXPECT().GetByCheckoutID(gomock.Any(), "ch_1").Return(storedSession(), nil)
		sessions.EXPECT().ClaimCompleted(gomock.Any(), "ch_1").Return(true, nil)
		orders.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Order{}, errors.New("db"))

		_, err := uc.ProcessEvent(context.Background(), payload)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("membership event with data id falls back as checkout id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mock_interfaces.NewMockICheckoutSessionRepository(ctrl)
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewWebhookUseCase(sessions, orders, nil, nil, "")

		sessions.EXPECT().GetByCheckoutID(gomock.Any(), "ch_2").Return(entities.CheckoutSession{CheckoutID: "ch_2", ProductID: 3, Status: entities.CheckoutStatusPending}, nil)
		sessions.EXPECT().ClaimCompleted(gomock.Any(), "ch_2").Return(true, nil)
		orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) { return o, nil })

		outcome, err := uc.ProcessEvent(context.Background(), json.RawMessage(`{"event":"membership.went_valid","data":{"id":"ch_2"}}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !outcome.Handled {
			t.Fatalf("expected handled outcome, got %+v", outcome)
		}
	})
}

func TestNewOrderID(t *testing.T) {
	a := newOrderID()
	b := newOrderID()
	if !strings.HasPrefix(a, "ORD-") {
		t.Fatalf("unexpected prefix %s", a)
	}
	if a == b {
		t.Fatalf("expected unique ids, got %s twice", a)
	}
	parts := strings.Split(a, "-")
	if len(parts) != 3 || len(parts[1]) != 14 {
		t.Fatalf("unexpected shape %s", a)
	}
}

package usecase

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/waqaskhan1437/wishesu-sub006/internal/domain/entities"
	"github.com/waqaskhan1437/wishesu-sub006/internal/usecase/interfaces"
	mock_interfaces "github.com/waqaskhan1437/wishesu-sub006/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func f64(v float64) *float64 { return &v }

func TestResolvePrice(t *testing.T) {
	t.Run("nil amount uses base price", func(t *testing.T) {
		got, err := resolvePrice(nil, 49.90)
		if err != nil || got != 49.90 {
			t.Fatalf("expected 49.90, got %v err=%v", got, err)
		}
	})

	t.Run("positive amount overrides base price", func(t *testing.T) {
		got, err := resolvePrice(f64(120), 49.90)
		if err != nil || got != 120 {
			t.Fatalf("expected 120, got %v err=%v", got, err)
		}
	})

	t.Run("zero amount falls back to base price", func(t *testing.T) {
		got, err := resolvePrice(f64(0), 49.90)
		if err != nil || got != 49.90 {
			t.Fatalf("expected 49.90, got %v err=%v", got, err)
		}
	})

	t.Run("negative amount falls back to base price", func(t *testing.T) {
		got, err := resolvePrice(f64(-5), 49.90)
		if err != nil || got != 49.90 {
			t.Fatalf("expected 49.90, got %v err=%v", got, err)
		}
	})

	t.Run("NaN amount falls back to base price", func(t *testing.T) {
		got, err := resolvePrice(f64(math.NaN()), 49.90)
		if err != nil || got != 49.90 {
			t.Fatalf("expected 49.90, got %v err=%v", got, err)
		}
	})

	t.Run("negative base price with no amount is rejected", func(t *testing.T) {
		_, err := resolvePrice(nil, -1)
		if !errors.Is(err, ErrInvalidPrice) {
			t.Fatalf("expected ErrInvalidPrice, got %v", err)
		}
	})

	t.Run("zero base price with no amount is a free checkout", func(t *testing.T) {
		got, err := resolvePrice(nil, 0)
		if err != nil || got != 0 {
			t.Fatalf("expected 0, got %v err=%v", got, err)
		}
	})
}

func TestPrefillEmail(t *testing.T) {
	cases := map[string]string{
		"buyer@example.com":   "buyer@example.com",
		" buyer@example.com ": "buyer@example.com",
		"":                    "",
		"no-at-sign":          "",
		"@example.com":        "",
		"buyer@":              "",
		"buyer@nodot":         "",
		"buyer@example.":      "",
	}
	for in, want := range cases {
		if got := prefillEmail(in); got != want {
			t.Fatalf("prefillEmail(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCheckoutUseCase_InitiateCheckout(t *testing.T) {
	t.Run("invalid product id", func(t *testing.T) {
		uc := NewCheckoutUseCase(nil, nil, nil, nil, CheckoutOptions{})
		_, err := uc.InitiateCheckout(context.Background(), 0, nil, "")
		if !errors.Is(err, ErrInvalidProductID) {
			t.Fatalf("expected ErrInvalidProductID, got %v", err)
		}
	})

	t.Run("provider not configured", func(t *testing.T) {
		uc := NewCheckoutUseCase(nil, nil, nil, nil, CheckoutOptions{})
		_, err := uc.InitiateCheckout(context.Background(), 7, nil, "")
		if !errors.Is(err, ErrProviderNotConfigured) {
			t.Fatalf("expected ErrProviderNotConfigured, got %v", err)
		}
	})

	t.Run("product not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		provider := mock_interfaces.NewMockIPaymentProvider(ctrl)
		uc := NewCheckoutUseCase(nil, products, nil, provider, CheckoutOptions{})

		products.EXPECT().GetByID(gomock.Any(), 7).Return(entities.Product{}, nil)

		_, err := uc.InitiateCheckout(context.Background(), 7, nil, "")
		if !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})

	t.Run("no plan configured anywhere", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		settings := mock_interfaces.NewMockISettingsRepository(ctrl)
		provider := mock_interfaces.NewMockIPaymentProvider(ctrl)
		uc := NewCheckoutUseCase(nil, products, settings, provider, CheckoutOptions{})

		products.EXPECT().GetByID(gomock.Any(), 7).Return(entities.Product{ID: 7, Price: 10}, nil)
		settings.EXPECT().GetBillingSettings(gomock.Any()).Return(entities.BillingSettings{}, nil)

		_, err := uc.InitiateCheckout(context.Background(), 7, nil, "")
		if !errors.Is(err, ErrNoPlanConfigured) {
			t.Fatalf("expected ErrNoPlanConfigured, got %v", err)
		}
	})

	t.Run("client amount ignored on public path", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mock_interfaces.NewMockICheckoutSessionRepository(ctrl)
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		provider := mock_interfaces.NewMockIPaymentProvider(ctrl)
		uc := NewCheckoutUseCase(sessions, products, nil, provider, CheckoutOptions{RedirectBaseURL: "https://shop.test"})

		products.EXPECT().GetByID(gomock.Any(), 7).Return(entities.Product{ID: 7, Price: 49.90, PlanID: "plan_fixed"}, nil)
		provider.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req interfaces.CheckoutRequest) (interfaces.CheckoutSessionRef, error) {
				if req.Metadata.Amount != 49.90 {
					t.Fatalf("expected stored price 49.90, got %v", req.Metadata.Amount)
				}
				if req.PlanID != "plan_fixed" {
					t.Fatalf("expected plan_fixed, got %s", req.PlanID)
				}
				return interfaces.CheckoutSessionRef{ID: "ch_1", PurchaseURL: "https://pay.test/ch_1"}, nil
			})
		sessions.EXPECT().RecordPending(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.CheckoutSession) error {
				if s.CheckoutID != "ch_1" || s.Status != entities.CheckoutStatusPending {
					t.Fatalf("unexpected session %+v", s)
				}
				return nil
			})

		result, err := uc.InitiateCheckout(context.Background(), 7, f64(1), "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.CheckoutID != "ch_1" || result.CheckoutURL != "https://pay.test/ch_1" {
			t.Fatalf("unexpected result %+v", result)
		}
	})

	t.Run("client amount honored when opted in", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mock_interfaces.NewMockICheckoutSessionRepository(ctrl)
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		provider := mock_interfaces.NewMockIPaymentProvider(ctrl)
		uc := NewCheckoutUseCase(sessions, products, nil, provider, CheckoutOptions{AllowClientAmount: true})

		products.EXPECT().GetByID(gomock.Any(), 7).Return(entities.Product{ID: 7, Price: 49.90, PlanID: "plan_fixed"}, nil)
		provider.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req interfaces.CheckoutRequest) (interfaces.CheckoutSessionRef, error) {
				if req.Metadata.Amount != 15 {
					t.Fatalf("expected caller amount 15, got %v", req.Metadata.Amount)
				}
				return interfaces.CheckoutSessionRef{ID: "ch_2"}, nil
			})
		sessions.EXPECT().RecordPending(gomock.Any(), gomock.Any()).Return(nil)

		if _, err := uc.InitiateCheckout(context.Background(), 7, f64(15), ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("sale price beats regular price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mock_interfaces.NewMockICheckoutSessionRepository(ctrl)
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		provider := mock_interfaces.NewMockIPaymentProvider(ctrl)
		uc := NewCheckoutUseCase(sessions, products, nil, provider, CheckoutOptions{})

		products.EXPECT().GetByID(gomock.Any(), 7).Return(entities.Product{ID: 7, Price: 100, SalePrice: 80, PlanID: "plan_fixed"}, nil)
		provider.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req interfaces.CheckoutRequest) (interfaces.CheckoutSessionRef, error) {
				if req.Metadata.Amount != 80 {
					t.Fatalf("expected sale price 80, got %v", req.Metadata.Amount)
				}
				return interfaces.CheckoutSessionRef{ID: "ch_3"}, nil
			})
		sessions.EXPECT().RecordPending(gomock.Any(), gomock.Any()).Return(nil)

		if _, err := uc.InitiateCheckout(context.Background(), 7, nil, ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("default plan from settings", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mock_interfaces.NewMockICheckoutSessionRepository(ctrl)
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		settings := mock_interfaces.NewMockISettingsRepository(ctrl)
		provider := mock_interfaces.NewMockIPaymentProvider(ctrl)
		uc := NewCheckoutUseCase(sessions, products, settings, provider, CheckoutOptions{})

		products.EXPECT().GetByID(gomock.Any(), 7).Return(entities.Product{ID: 7, Price: 10}, nil)
		settings.EXPECT().GetBillingSettings(gomock.Any()).Return(entities.BillingSettings{DefaultPlanID: "plan_default"}, nil)
		provider.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req interfaces.CheckoutRequest) (interfaces.CheckoutSessionRef, error) {
				if req.PlanID != "plan_default" {
					t.Fatalf("expected plan_default, got %s", req.PlanID)
				}
				return interfaces.CheckoutSessionRef{ID: "ch_4"}, nil
			})
		sessions.EXPECT().RecordPending(gomock.Any(), gomock.Any()).Return(nil)

		if _, err := uc.InitiateCheckout(context.Background(), 7, nil, ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("provider failure is wrapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		provider := mock_interfaces.NewMockIPaymentProvider(ctrl)
		uc := NewCheckoutUseCase(nil, products, nil, provider, CheckoutOptions{})

		products.EXPECT().GetByID(gomock.Any(), 7).Return(entities.Product{ID: 7, Price: 10, PlanID: "plan_fixed"}, nil)
		provider.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).Return(interfaces.CheckoutSessionRef{}, errors.New("401 invalid api key"))

		_, err := uc.InitiateCheckout(context.Background(), 7, nil, "")
		if !errors.Is(err, ErrProviderRequest) {
			t.Fatalf("expected ErrProviderRequest, got %v", err)
		}
		if !strings.Contains(err.Error(), "401 invalid api key") {
			t.Fatalf("expected provider detail in error, got %v", err)
		}
	})
}

func TestCheckoutUseCase_InitiateDynamicPlanCheckout(t *testing.T) {
	product := entities.Product{ID: 7, Title: "Birthday Video", Price: 25, ProviderProductID: "prod_abc"}

	t.Run("records pending before checkout and rewrites the placeholder", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mock_interfaces.NewMockICheckoutSessionRepository(ctrl)
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		settings := mock_interfaces.NewMockISettingsRepository(ctrl)
		provider := mock_interfaces.NewMockIPaymentProvider(ctrl)
		uc := NewCheckoutUseCase(sessions, products, settings, provider, CheckoutOptions{})

		addons := []entities.AddonSelection{{Field: "gift_wrap", Value: "yes", Price: 5}}

		products.EXPECT().GetByID(gomock.Any(), 7).Return(product, nil)
		settings.EXPECT().GetBillingSettings(gomock.Any()).Return(entities.BillingSettings{DefaultCurrency: "usd"}, nil)
		provider.EXPECT().CreatePlan(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req interfaces.PlanRequest) (string, error) {
				if req.Price != 30 {
					t.Fatalf("expected base+addons 30, got %v", req.Price)
				}
				if req.ProductID != "prod_abc" {
					t.Fatalf("expected prod_abc, got %s", req.ProductID)
				}
				return "plan_dyn", nil
			})

		pending := sessions.EXPECT().RecordPending(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.CheckoutSession) error {
				if s.CheckoutID != entities.PlaceholderCheckoutID("plan_dyn") {
					t.Fatalf("expected placeholder key, got %s", s.CheckoutID)
				}
				if s.PlanID != "plan_dyn" {
					t.Fatalf("expected plan_dyn, got %s", s.PlanID)
				}
				return nil
			})
		checkout := provider.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).Return(interfaces.CheckoutSessionRef{ID: "ch_9", PurchaseURL: "https://pay.test/ch_9"}, nil)
		rewrite := sessions.EXPECT().RewriteCheckoutID(gomock.Any(), "plan_plan_dyn", "ch_9").Return(nil)
		gomock.InOrder(pending, checkout, rewrite)

		result, err := uc.InitiateDynamicPlanCheckout(context.Background(), 7, nil, "buyer@example.com", addons)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.PlanID != "plan_dyn" || result.CheckoutID != "ch_9" {
			t.Fatalf("unexpected result %+v", result)
		}
		if !result.EmailPrefilled {
			t.Fatalf("expected email to be prefilled")
		}
		if result.Warning != "" {
			t.Fatalf("unexpected warning %q", result.Warning)
		}
	})

	t.Run("caller amount overrides computed total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mock_interfaces.NewMockICheckoutSessionRepository(ctrl)
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		settings := mock_interfaces.NewMockISettingsRepository(ctrl)
		provider := mock_interfaces.NewMockIPaymentProvider(ctrl)
		uc := NewCheckoutUseCase(sessions, products, settings, provider, CheckoutOptions{})

		products.EXPECT().GetByID(gomock.Any(), 7).Return(product, nil)
		settings.EXPECT().GetBillingSettings(gomock.Any()).Return(entities.BillingSettings{}, nil)
		provider.EXPECT().CreatePlan(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req interfaces.PlanRequest) (string, error) {
				if req.Price != 99.99 {
					t.Fatalf("expected caller amount 99.99, got %v", req.Price)
				}
				if req.Currency != "usd" {
					t.Fatalf("expected usd fallback, got %s", req.Currency)
				}
				return "plan_dyn", nil
			})
		sessions.EXPECT().RecordPending(gomock.Any(), gomock.Any()).Return(nil)
		provider.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).Return(interfaces.CheckoutSessionRef{ID: "ch_9"}, nil)
		sessions.EXPECT().RewriteCheckoutID(gomock.Any(), gomock.Any(), "ch_9").Return(nil)

		if _, err := uc.InitiateDynamicPlanCheckout(context.Background(), 7, f64(99.99), "", nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("checkout failure degrades to plan-only result", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mock_interfaces.NewMockICheckoutSessionRepository(ctrl)
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		settings := mock_interfaces.NewMockISettingsRepository(ctrl)
		provider := mock_interfaces.NewMockIPaymentProvider(ctrl)
		uc := NewCheckoutUseCase(sessions, products, settings, provider, CheckoutOptions{})

		products.EXPECT().GetByID(gomock.Any(), 7).Return(product, nil)
		settings.EXPECT().GetBillingSettings(gomock.Any()).Return(entities.BillingSettings{}, nil)
		provider.EXPECT().CreatePlan(gomock.Any(), gomock.Any()).Return("plan_dyn", nil)
		sessions.EXPECT().RecordPending(gomock.Any(), gomock.Any()).Return(nil)
		provider.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).Return(interfaces.CheckoutSessionRef{}, errors.New("rate limited"))

		result, err := uc.InitiateDynamicPlanCheckout(context.Background(), 7, nil, "", nil)
		if err != nil {
			t.Fatalf("expected degraded result, got error %v", err)
		}
		if result.PlanID != "plan_dyn" || result.CheckoutID != "" || result.CheckoutURL != "" {
			t.Fatalf("unexpected result %+v", result)
		}
		if result.Warning == "" {
			t.Fatalf("expected warning on degraded result")
		}
	})

	t.Run("no provider product anywhere", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		settings := mock_interfaces.NewMockISettingsRepository(ctrl)
		provider := mock_interfaces.NewMockIPaymentProvider(ctrl)
		uc := NewCheckoutUseCase(nil, products, settings, provider, CheckoutOptions{})

		products.EXPECT().GetByID(gomock.Any(), 7).Return(entities.Product{ID: 7, Price: 25}, nil)
		settings.EXPECT().GetBillingSettings(gomock.Any()).Return(entities.BillingSettings{}, nil)

		_, err := uc.InitiateDynamicPlanCheckout(context.Background(), 7, nil, "", nil)
		if !errors.Is(err, ErrNoProviderProduct) {
			t.Fatalf("expected ErrNoProviderProduct, got %v", err)
		}
	})
}

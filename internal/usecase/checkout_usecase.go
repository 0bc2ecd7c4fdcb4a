package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"github.com/waqaskhan1437/wishesu-sub006/internal/domain/entities"
	"github.com/waqaskhan1437/wishesu-sub006/internal/usecase/interfaces"
)

var (
	ErrInvalidProductID      = errors.New("invalid product id")
	ErrProductNotFound       = errors.New("product not found")
	ErrInvalidPrice          = errors.New("invalid price")
	ErrNoPlanConfigured      = errors.New("no plan configured for product")
	ErrNoProviderProduct     = errors.New("no provider product configured")
	ErrProviderNotConfigured = errors.New("payment provider not configured")
	ErrProviderRequest       = errors.New("payment provider request failed")
)

const expiresInLabel = "15 minutes"

// CheckoutResult is returned by the fixed-plan initiation flow.
type CheckoutResult struct {
	CheckoutID  string
	CheckoutURL string
	ExpiresIn   string
}

// DynamicPlanResult is returned by the dynamic-plan initiation flow. When the
// provider accepts the plan but refuses the checkout session, CheckoutID and
// CheckoutURL stay empty and Warning explains the degradation; the recorded
// pending session keeps the plan reapable.
type DynamicPlanResult struct {
	PlanID         string
	CheckoutID     string
	CheckoutURL    string
	ProductID      int
	Email          string
	Metadata       entities.SessionMetadata
	ExpiresIn      string
	EmailPrefilled bool
	Warning        string
}

// ICheckoutUseCase exposes checkout initiation.
//
//   - InitiateCheckout sells through a pre-existing provider plan (the
//     product's own binding, or the store default).
//   - InitiateDynamicPlanCheckout provisions a one-time plan priced for this
//     purchase, then binds a checkout session to it.
type ICheckoutUseCase interface {
	InitiateCheckout(ctx context.Context, productID int, amount *float64, email string) (CheckoutResult, error)
	InitiateDynamicPlanCheckout(ctx context.Context, productID int, amount *float64, email string, addons []entities.AddonSelection) (DynamicPlanResult, error)
}

// CheckoutOptions carries the wiring-time policy knobs.
//
// AllowClientAmount controls whether the public fixed-plan flow honors a
// caller-supplied amount at all. The dynamic-plan flow always honors it: that
// path is reserved for trusted internal callers (tips, variable addons).
type CheckoutOptions struct {
	AllowClientAmount bool
	RedirectBaseURL   string
}

type CheckoutUseCase struct {
	sessions interfaces.ICheckoutSessionRepository
	products interfaces.IProductRepository
	settings interfaces.ISettingsRepository
	provider interfaces.IPaymentProvider
	opts     CheckoutOptions
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(
	sessions interfaces.ICheckoutSessionRepository,
	products interfaces.IProductRepository,
	settings interfaces.ISettingsRepository,
	provider interfaces.IPaymentProvider,
	opts CheckoutOptions,
) *CheckoutUseCase {
	return &CheckoutUseCase{sessions: sessions, products: products, settings: settings, provider: provider, opts: opts}
}

func (u *CheckoutUseCase) InitiateCheckout(ctx context.Context, productID int, amount *float64, email string) (CheckoutResult, error) {
	log.Printf("[checkout][usecase] initiate start product_id=%d has_amount=%t", productID, amount != nil)
	if productID <= 0 {
		return CheckoutResult{}, ErrInvalidProductID
	}
	if u.provider == nil {
		return CheckoutResult{}, ErrProviderNotConfigured
	}

	product, err := u.products.GetByID(ctx, productID)
	if err != nil {
		log.Printf("[checkout][usecase] product load failed product_id=%d err=%v", productID, err)
		return CheckoutResult{}, err
	}
	if product.ID == 0 {
		return CheckoutResult{}, ErrProductNotFound
	}

	// The fixed-plan route is reachable from the public storefront. The
	// stored product price is the source of truth unless the deployment
	// explicitly opts in to client-supplied amounts.
	if amount != nil && !u.opts.AllowClientAmount {
		log.Printf("[checkout][usecase] ignoring client amount product_id=%d", productID)
		amount = nil
	}
	resolved, err := resolvePrice(amount, product.BasePrice())
	if err != nil {
		return CheckoutResult{}, err
	}

	planID := product.PlanID
	if planID == "" {
		settings, err := u.settings.GetBillingSettings(ctx)
		if err != nil {
			return CheckoutResult{}, err
		}
		planID = settings.DefaultPlanID
	}
	if planID == "" {
		log.Printf("[checkout][usecase] no plan binding product_id=%d", productID)
		return CheckoutResult{}, ErrNoPlanConfigured
	}

	now := time.Now().UTC()
	meta := entities.SessionMetadata{
		ProductID: productID,
		Email:     email,
		Amount:    resolved,
		CreatedAt: now.Format(time.RFC3339Nano),
	}

	ref, err := u.provider.CreateCheckoutSession(ctx, interfaces.CheckoutRequest{
		PlanID:      planID,
		RedirectURL: u.redirectURL(productID),
		Metadata:    meta,
		Email:       prefillEmail(email),
	})
	if err != nil {
		log.Printf("[checkout][usecase] checkout creation failed product_id=%d err=%v", productID, err)
		return CheckoutResult{}, fmt.Errorf("%w: %v", ErrProviderRequest, err)
	}

	session := entities.CheckoutSession{
		CheckoutID: ref.ID,
		ProductID:  productID,
		Metadata:   meta,
		ExpiresAt:  now.Add(entities.CheckoutTTL),
		Status:     entities.CheckoutStatusPending,
		CreatedAt:  now,
	}
	if err := u.sessions.RecordPending(ctx, session); err != nil {
		log.Printf("[checkout][usecase] record pending failed checkout_id=%s err=%v", ref.ID, err)
		return CheckoutResult{}, err
	}

	log.Printf("[checkout][usecase] initiate success product_id=%d checkout_id=%s amount=%.2f", productID, ref.ID, resolved)
	return CheckoutResult{CheckoutID: ref.ID, CheckoutURL: ref.PurchaseURL, ExpiresIn: expiresInLabel}, nil
}

func (u *CheckoutUseCase) InitiateDynamicPlanCheckout(ctx context.Context, productID int, amount *float64, email string, addons []entities.AddonSelection) (DynamicPlanResult, error) {
	log.Printf("[checkout][usecase] dynamic-plan start product_id=%d has_amount=%t addons=%d", productID, amount != nil, len(addons))
	if productID <= 0 {
		return DynamicPlanResult{}, ErrInvalidProductID
	}
	if u.provider == nil {
		return DynamicPlanResult{}, ErrProviderNotConfigured
	}

	product, err := u.products.GetByID(ctx, productID)
	if err != nil {
		log.Printf("[checkout][usecase] product load failed product_id=%d err=%v", productID, err)
		return DynamicPlanResult{}, err
	}
	if product.ID == 0 {
		return DynamicPlanResult{}, ErrProductNotFound
	}

	settings, err := u.settings.GetBillingSettings(ctx)
	if err != nil {
		return DynamicPlanResult{}, err
	}

	// Trusted-caller path: a supplied amount overrides the server-side
	// computation (base price plus priced addons).
	resolved, err := resolvePrice(amount, product.BasePrice()+addonTotal(addons))
	if err != nil {
		return DynamicPlanResult{}, err
	}

	providerProductID := product.ProviderProductID
	if providerProductID == "" {
		providerProductID = settings.ProviderProductID
	}
	if providerProductID == "" {
		log.Printf("[checkout][usecase] no provider product binding product_id=%d", productID)
		return DynamicPlanResult{}, ErrNoProviderProduct
	}

	currency := settings.DefaultCurrency
	if currency == "" {
		currency = "usd"
	}

	planID, err := u.provider.CreatePlan(ctx, interfaces.PlanRequest{
		ProductID: providerProductID,
		Title:     product.Title,
		Price:     resolved,
		Currency:  currency,
	})
	if err != nil {
		log.Printf("[checkout][usecase] plan creation failed product_id=%d err=%v", productID, err)
		return DynamicPlanResult{}, fmt.Errorf("%w: %v", ErrProviderRequest, err)
	}
	log.Printf("[checkout][usecase] plan created product_id=%d plan_id=%s amount=%.2f", productID, planID, resolved)

	now := time.Now().UTC()
	meta := entities.SessionMetadata{
		ProductID: productID,
		Addons:    addons,
		Email:     email,
		Amount:    resolved,
		CreatedAt: now.Format(time.RFC3339Nano),
	}

	// The plan-session mapping is recorded before the checkout attempt so a
	// failed checkout still leaves a reapable row keyed by the placeholder.
	placeholder := entities.PlaceholderCheckoutID(planID)
	session := entities.CheckoutSession{
		CheckoutID: placeholder,
		ProductID:  productID,
		PlanID:     planID,
		Metadata:   meta,
		ExpiresAt:  now.Add(entities.CheckoutTTL),
		Status:     entities.CheckoutStatusPending,
		CreatedAt:  now,
	}
	if err := u.sessions.RecordPending(ctx, session); err != nil {
		log.Printf("[checkout][usecase] record pending failed plan_id=%s err=%v", planID, err)
		return DynamicPlanResult{}, err
	}

	prefilled := prefillEmail(email) != ""
	result := DynamicPlanResult{
		PlanID:         planID,
		ProductID:      productID,
		Email:          email,
		Metadata:       meta,
		ExpiresIn:      expiresInLabel,
		EmailPrefilled: prefilled,
	}

	ref, err := u.provider.CreateCheckoutSession(ctx, interfaces.CheckoutRequest{
		PlanID:      planID,
		RedirectURL: u.redirectURL(productID),
		Metadata:    meta,
		Email:       prefillEmail(email),
	})
	if err != nil {
		log.Printf("[checkout][usecase] checkout creation failed plan_id=%s err=%v (degrading to plan-only response)", planID, err)
		result.Warning = "checkout session could not be created; the plan stays reserved and will be reclaimed if unused"
		return result, nil
	}

	if err := u.sessions.RewriteCheckoutID(ctx, placeholder, ref.ID); err != nil {
		log.Printf("[checkout][usecase] checkout id rewrite failed old=%s new=%s err=%v", placeholder, ref.ID, err)
		return DynamicPlanResult{}, err
	}

	log.Printf("[checkout][usecase] dynamic-plan success product_id=%d plan_id=%s checkout_id=%s", productID, planID, ref.ID)
	result.CheckoutID = ref.ID
	result.CheckoutURL = ref.PurchaseURL
	return result, nil
}

func (u *CheckoutUseCase) redirectURL(productID int) string {
	base := strings.TrimRight(u.opts.RedirectBaseURL, "/")
	return fmt.Sprintf("%s/thank-you?product_id=%d", base, productID)
}

// resolvePrice picks the authoritative charge amount. A caller-supplied
// amount wins when it is present, finite and positive; otherwise the stored
// base price applies. The result is rejected when non-finite or negative.
func resolvePrice(callerAmount *float64, basePrice float64) (float64, error) {
	resolved := basePrice
	if callerAmount != nil && !math.IsNaN(*callerAmount) && !math.IsInf(*callerAmount, 0) && *callerAmount > 0 {
		resolved = *callerAmount
	}
	if math.IsNaN(resolved) || math.IsInf(resolved, 0) || resolved < 0 {
		return 0, ErrInvalidPrice
	}
	return resolved, nil
}

func addonTotal(addons []entities.AddonSelection) float64 {
	total := 0.0
	for _, a := range addons {
		if a.Price > 0 {
			total += a.Price
		}
	}
	return total
}

// prefillEmail returns the email when it is plausible enough to hand the
// provider as a prefill hint, empty otherwise. Absence never fails a call.
func prefillEmail(email string) string {
	email = strings.TrimSpace(email)
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return ""
	}
	domain := email[at+1:]
	dot := strings.LastIndex(domain, ".")
	if dot <= 0 || dot == len(domain)-1 {
		return ""
	}
	return email
}

package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/waqaskhan1437/wishesu-sub006/internal/usecase/interfaces"
)

var ErrMissingWhopAPIKey = errors.New("missing WHOP_API_KEY")

const (
	defaultWhopBaseURL = "https://api.whop.com/api/v2"
	// Plans are single-purpose, so stock is effectively unlimited.
	planStockCeiling = 9999
)

// ProviderError is a non-2xx response from Whop. The raw body is kept because
// provider error text is usually actionable by an administrator (bad plan id,
// revoked key) and must survive up to logs/responses.
type ProviderError struct {
	Operation  string
	StatusCode int
	Body       string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("whop %s failed: status=%d body=%s", e.Operation, e.StatusCode, e.Body)
}

// WhopGateway talks to the Whop v2 REST API. Whop publishes no Go SDK, so
// this is a plain HTTP client.
type WhopGateway struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

var _ interfaces.IPaymentProvider = (*WhopGateway)(nil)

func NewWhopGateway(apiKey string) (*WhopGateway, error) {
	if apiKey == "" {
		log.Printf("[whop][gateway] missing WHOP_API_KEY")
		return nil, ErrMissingWhopAPIKey
	}
	log.Printf("[whop][gateway] client initialized")
	return &WhopGateway{
		baseURL: getenvDefault("WHOP_API_BASE_URL", defaultWhopBaseURL),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 15 * time.Second},
	}, nil
}

type whopPlanResponse struct {
	ID string `json:"id"`
}

type whopCheckoutResponse struct {
	ID          string `json:"id"`
	PurchaseURL string `json:"purchase_url"`
}

// CreatePlan provisions a one-time "buy now" plan priced for this purchase.
//
// It first toggles allow_multiple_purchases on the underlying product so a
// returning buyer is not blocked by a one-per-user restriction. That toggle
// is a UX nicety: its failure is logged and the plan is created anyway.
func (g *WhopGateway) CreatePlan(ctx context.Context, req interfaces.PlanRequest) (string, error) {
	log.Printf("[whop][gateway] create plan start product=%s amount=%.2f %s", req.ProductID, req.Price, req.Currency)

	if req.ProductID != "" {
		toggle := map[string]any{"allow_multiple_purchases": true}
		if err := g.doRequest(ctx, http.MethodPost, "/products/"+req.ProductID, "update product", toggle, nil); err != nil {
			log.Printf("[whop][gateway] allow-multiple-purchases toggle failed product=%s err=%v", req.ProductID, err)
		}
	}

	payload := map[string]any{
		"plan_type":      "one_time",
		"release_method": "buy_now",
		"base_currency":  req.Currency,
		"initial_price":  req.Price,
		"renewal_price":  0,
		"internal_notes": fmt.Sprintf("%s - %.2f %s", req.Title, req.Price, req.Currency),
		"stock":          planStockCeiling,
		"product_id":     req.ProductID,
	}

	var resp whopPlanResponse
	if err := g.doRequest(ctx, http.MethodPost, "/plans", "create plan", payload, &resp); err != nil {
		return "", err
	}
	log.Printf("[whop][gateway] create plan success plan_id=%s", resp.ID)
	return resp.ID, nil
}

func (g *WhopGateway) CreateCheckoutSession(ctx context.Context, req interfaces.CheckoutRequest) (interfaces.CheckoutSessionRef, error) {
	log.Printf("[whop][gateway] create checkout start plan_id=%s prefill_email=%t", req.PlanID, req.Email != "")

	payload := map[string]any{
		"plan_id":      req.PlanID,
		"redirect_url": req.RedirectURL,
		"metadata":     req.Metadata,
	}
	if req.Email != "" {
		payload["email"] = req.Email
	}

	var resp whopCheckoutResponse
	if err := g.doRequest(ctx, http.MethodPost, "/checkout_sessions", "create checkout session", payload, &resp); err != nil {
		return interfaces.CheckoutSessionRef{}, err
	}
	log.Printf("[whop][gateway] create checkout success checkout_id=%s", resp.ID)
	return interfaces.CheckoutSessionRef{ID: resp.ID, PurchaseURL: resp.PurchaseURL}, nil
}

func (g *WhopGateway) DeleteCheckoutSession(ctx context.Context, checkoutID string) error {
	return g.deleteResource(ctx, "/checkout_sessions/"+checkoutID, "delete checkout session")
}

func (g *WhopGateway) DeletePlan(ctx context.Context, planID string) error {
	return g.deleteResource(ctx, "/plans/"+planID, "delete plan")
}

// ArchivePlan makes an abandoned plan unpurchasable. Hidden visibility is the
// primary strategy; a hard delete is the fallback, with 404 treated as
// success since the object may already be gone.
func (g *WhopGateway) ArchivePlan(ctx context.Context, planID string) error {
	hide := map[string]any{"visibility": "hidden"}
	err := g.doRequest(ctx, http.MethodPost, "/plans/"+planID, "hide plan", hide, nil)
	if err == nil {
		return nil
	}
	log.Printf("[whop][gateway] hide plan failed plan_id=%s err=%v; falling back to delete", planID, err)
	return g.deleteResource(ctx, "/plans/"+planID, "delete plan")
}

func (g *WhopGateway) deleteResource(ctx context.Context, path, operation string) error {
	err := g.doRequest(ctx, http.MethodDelete, path, operation, nil, nil)
	var pe *ProviderError
	if errors.As(err, &pe) && pe.StatusCode == http.StatusNotFound {
		return nil
	}
	return err
}

func (g *WhopGateway) doRequest(ctx context.Context, method, path, operation string, payload any, out any) error {
	var bodyReader io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal %s payload: %w", operation, err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create %s request: %w", operation, err)
	}
	req.Header.Set("Authorization", "Bearer "+g.apiKey)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send %s request: %w", operation, err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &ProviderError{Operation: operation, StatusCode: resp.StatusCode, Body: string(raw)}
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("failed to decode %s response: %w", operation, err)
		}
	}
	return nil
}

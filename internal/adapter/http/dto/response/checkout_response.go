package response

import (
	"github.com/waqaskhan1437/wishesu-sub006/internal/domain/entities"
	"github.com/waqaskhan1437/wishesu-sub006/internal/usecase"
)

type CheckoutResponse struct {
	CheckoutID  string `json:"checkout_id"`
	CheckoutURL string `json:"checkout_url"`
	ExpiresIn   string `json:"expires_in"`
}

func FromCheckoutResult(r usecase.CheckoutResult) CheckoutResponse {
	return CheckoutResponse{
		CheckoutID:  r.CheckoutID,
		CheckoutURL: r.CheckoutURL,
		ExpiresIn:   r.ExpiresIn,
	}
}

type DynamicPlanCheckoutResponse struct {
	PlanID         string                   `json:"plan_id"`
	CheckoutID     string                   `json:"checkout_id,omitempty"`
	CheckoutURL    string                   `json:"checkout_url,omitempty"`
	ProductID      int                      `json:"product_id"`
	Email          string                   `json:"email,omitempty"`
	Metadata       entities.SessionMetadata `json:"metadata"`
	ExpiresIn      string                   `json:"expires_in"`
	EmailPrefilled bool                     `json:"email_prefilled"`
	Warning        string                   `json:"warning,omitempty"`
}

func FromDynamicPlanResult(r usecase.DynamicPlanResult) DynamicPlanCheckoutResponse {
	return DynamicPlanCheckoutResponse{
		PlanID:         r.PlanID,
		CheckoutID:     r.CheckoutID,
		CheckoutURL:    r.CheckoutURL,
		ProductID:      r.ProductID,
		Email:          r.Email,
		Metadata:       r.Metadata,
		ExpiresIn:      r.ExpiresIn,
		EmailPrefilled: r.EmailPrefilled,
		Warning:        r.Warning,
	}
}

package request

import (
	"github.com/waqaskhan1437/wishesu-sub006/internal/domain/entities"
)

// AddonSelectionRequest mirrors one buyer-chosen option as submitted by the
// storefront. Price is only honored on the trusted dynamic-plan path.
type AddonSelectionRequest struct {
	Field string  `json:"field" binding:"required"`
	Value string  `json:"value"`
	Price float64 `json:"price"`
}

// CheckoutMetadataRequest is the optional metadata envelope of the
// dynamic-plan initiation body.
type CheckoutMetadataRequest struct {
	Addons []AddonSelectionRequest `json:"addons"`
}

// CheckoutRequest is the body of POST /checkout (fixed-plan flow).
type CheckoutRequest struct {
	ProductID int      `json:"product_id" binding:"required"`
	Amount    *float64 `json:"amount"`
	Email     string   `json:"email"`
}

// DynamicPlanCheckoutRequest is the body of POST /checkout/dynamic-plan.
type DynamicPlanCheckoutRequest struct {
	ProductID int                     `json:"product_id" binding:"required"`
	Amount    *float64                `json:"amount"`
	Email     string                  `json:"email"`
	Metadata  CheckoutMetadataRequest `json:"metadata"`
}

// AddonSelections converts the submitted addon list into the domain shape.
func (r DynamicPlanCheckoutRequest) AddonSelections() []entities.AddonSelection {
	if len(r.Metadata.Addons) == 0 {
		return nil
	}
	addons := make([]entities.AddonSelection, 0, len(r.Metadata.Addons))
	for _, a := range r.Metadata.Addons {
		addons = append(addons, entities.AddonSelection{Field: a.Field, Value: a.Value, Price: a.Price})
	}
	return addons
}

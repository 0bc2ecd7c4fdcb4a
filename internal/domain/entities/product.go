package entities

import "encoding/json"

// Product is the stored catalog record. The payment core only reads it:
// price resolution and plan provisioning never mutate the product.
//
// Storage model (DynamoDB):
//   - PK: id (numeric string)
type Product struct {
	ID                int             `json:"id"`
	Title             string          `json:"title"`
	Price             float64         `json:"price"`
	SalePrice         float64         `json:"sale_price,omitempty"`
	PlanID            string          `json:"plan_id,omitempty"`
	ProviderProductID string          `json:"provider_product_id,omitempty"`
	Addons            json.RawMessage `json:"addons,omitempty"`
}

// BasePrice is the authoritative server-side price: the sale price when one
// is set, otherwise the normal price.
func (p Product) BasePrice() float64 {
	if p.SalePrice > 0 {
		return p.SalePrice
	}
	return p.Price
}

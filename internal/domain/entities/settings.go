package entities

// BillingSettings holds the store-wide provider defaults used when a product
// carries no explicit plan/product binding.
type BillingSettings struct {
	DefaultPlanID     string `json:"default_plan_id,omitempty"`
	DefaultCurrency   string `json:"default_currency,omitempty"`
	ProviderProductID string `json:"provider_product_id,omitempty"`
}

package interfaces

import (
	"context"

	"github.com/waqaskhan1437/wishesu-sub006/internal/domain/entities"
)

// IProductRepository is the read-only view of the catalog consumed by the
// payment core.
type IProductRepository interface {
	GetByID(ctx context.Context, id int) (entities.Product, error)
}

// ISettingsRepository resolves store-wide billing defaults (fallback plan,
// provider product, currency).
type ISettingsRepository interface {
	GetBillingSettings(ctx context.Context) (entities.BillingSettings, error)
}

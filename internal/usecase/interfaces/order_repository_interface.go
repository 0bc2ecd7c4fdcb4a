package interfaces

import (
	"context"

	"github.com/waqaskhan1437/wishesu-sub006/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for Order.
//
// The payment core only creates orders; everything else about the record is
// owned by downstream fulfillment code.
type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
}

package interfaces

import (
	"context"

	"github.com/waqaskhan1437/wishesu-sub006/internal/domain/entities"
)

// ICheckoutSessionRepository abstracts DynamoDB persistence for CheckoutSession.
//
// The session row is the only shared mutable resource in the payment core.
// ClaimCompleted is the sole mutual-exclusion primitive: it must be a single
// conditional write so concurrent webhook deliveries for the same event
// cannot both win.
type ICheckoutSessionRepository interface {
	// RecordPending inserts a pending session. It is an upsert keyed by
	// checkout id that refuses to downgrade a terminal status.
	RecordPending(ctx context.Context, s entities.CheckoutSession) error

	// RewriteCheckoutID replaces the synthetic placeholder key with the
	// provider-assigned id. It is an update of the single session row, not a
	// second insert.
	RewriteCheckoutID(ctx context.Context, oldID, newID string) error

	// ClaimCompleted atomically transitions pending -> completed and reports
	// whether this caller won the transition. A false return means the
	// session was already terminal or unknown.
	ClaimCompleted(ctx context.Context, checkoutID string) (bool, error)

	// GetByCheckoutID returns the session or a zero value when absent.
	GetByCheckoutID(ctx context.Context, checkoutID string) (entities.CheckoutSession, error)

	// FindExpiredPending returns up to limit sessions with status pending and
	// expires_at strictly before now, oldest first.
	FindExpiredPending(ctx context.Context, limit int32) ([]entities.CheckoutSession, error)

	// Archive transitions pending -> archived. A session that is no longer
	// pending is left untouched and no error is returned.
	Archive(ctx context.Context, checkoutID string) error
}

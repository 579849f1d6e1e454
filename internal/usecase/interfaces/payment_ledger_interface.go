package interfaces

import (
	"context"
	"encoding/json"
	"errors"

	"epicare_backend/internal/domain/entities"
)

// ErrCorrelationIDClaimed is returned by AttachCorrelationIDs when a
// correlation id is already bound to a different attempt. An id is never
// silently re-pointed at another record.
var ErrCorrelationIDClaimed = errors.New("correlation id already claimed by another attempt")

// IPaymentLedger is the durable store of payment attempts.
//
// Lookups return the zero-value attempt (ID == "") when nothing matches.
// CloseStatus is the compare-and-set primitive the reconciler relies on:
// it applies the transition only while the stored status equals `from` and
// reports false, without error, when the attempt is already terminal, so a
// duplicate provider callback degrades to a no-op.

type IPaymentLedger interface {
	Create(ctx context.Context, a entities.PaymentAttempt) (entities.PaymentAttempt, error)
	GetByID(ctx context.Context, id string) (entities.PaymentAttempt, error)
	FindByCorrelationID(ctx context.Context, correlationID string) (entities.PaymentAttempt, error)
	AttachCorrelationIDs(ctx context.Context, id string, ids entities.CorrelationIDs, payload json.RawMessage) error
	CloseStatus(ctx context.Context, id string, from, to entities.AttemptStatus, payload json.RawMessage) (bool, error)
}

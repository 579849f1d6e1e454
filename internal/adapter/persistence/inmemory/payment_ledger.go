package inmemory

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"epicare_backend/internal/domain/entities"
	"epicare_backend/internal/usecase/interfaces"
)

// PaymentLedger is an in-memory IPaymentLedger used for local development
// (LEDGER_BACKEND=memory) and tests. It mirrors the DynamoDB repository's
// semantics: zero-value misses, claim-once correlation ids, and a
// compare-and-set close guarded by a single mutex.

type PaymentLedger struct {
	mu       sync.Mutex
	attempts map[string]entities.PaymentAttempt
	claims   map[string]string // correlation id -> attempt id
}

var _ interfaces.IPaymentLedger = (*PaymentLedger)(nil)

func NewPaymentLedger() *PaymentLedger {
	return &PaymentLedger{
		attempts: make(map[string]entities.PaymentAttempt),
		claims:   make(map[string]string),
	}
}

func (l *PaymentLedger) Create(_ context.Context, a entities.PaymentAttempt) (entities.PaymentAttempt, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.attempts[a.ID] = a
	return a, nil
}

func (l *PaymentLedger) GetByID(_ context.Context, id string) (entities.PaymentAttempt, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.attempts[id], nil
}

func (l *PaymentLedger) FindByCorrelationID(_ context.Context, correlationID string) (entities.PaymentAttempt, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	attemptID, ok := l.claims[correlationID]
	if !ok {
		return entities.PaymentAttempt{}, nil
	}
	return l.attempts[attemptID], nil
}

func (l *PaymentLedger) AttachCorrelationIDs(_ context.Context, id string, ids entities.CorrelationIDs, payload json.RawMessage) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, cid := range ids.Values() {
		if owner, claimed := l.claims[cid]; claimed && owner != id {
			return interfaces.ErrCorrelationIDClaimed
		}
	}
	for _, cid := range ids.Values() {
		l.claims[cid] = id
	}

	a, ok := l.attempts[id]
	if !ok {
		return nil
	}
	if ids.CheckoutRequestID != "" {
		a.CheckoutRequestID = ids.CheckoutRequestID
	}
	if ids.MerchantRequestID != "" {
		a.MerchantRequestID = ids.MerchantRequestID
	}
	if ids.OrderID != "" {
		a.OrderID = ids.OrderID
	}
	if len(payload) > 0 {
		a.ProviderPayload = payload
	}
	a.UpdatedAt = time.Now().UTC()
	l.attempts[id] = a
	return nil
}

func (l *PaymentLedger) CloseStatus(_ context.Context, id string, from, to entities.AttemptStatus, payload json.RawMessage) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	a, ok := l.attempts[id]
	if !ok || a.Status != from {
		return false, nil
	}
	a.Status = to
	if len(payload) > 0 {
		a.ProviderPayload = payload
	}
	a.UpdatedAt = time.Now().UTC()
	l.attempts[id] = a
	return true, nil
}

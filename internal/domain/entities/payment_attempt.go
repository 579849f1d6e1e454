package entities

import (
	"encoding/json"
	"time"
)

// PaymentProvider identifies which external provider an attempt was initiated
// against.

type PaymentProvider string

const (
	ProviderMpesa  PaymentProvider = "mpesa"
	ProviderPaypal PaymentProvider = "paypal"
)

// AttemptStatus is the reconciliation state of a payment attempt.
//
// pending is the only initial state. completed and failed are terminal:
// once an attempt is closed no further transition is applied, which is what
// makes duplicate provider callbacks harmless.

type AttemptStatus string

const (
	AttemptStatusPending   AttemptStatus = "pending"
	AttemptStatusCompleted AttemptStatus = "completed"
	AttemptStatusFailed    AttemptStatus = "failed"
)

// IsTerminal reports whether no further status transition is allowed.
func (s AttemptStatus) IsTerminal() bool {
	return s == AttemptStatusCompleted || s == AttemptStatusFailed
}

// CorrelationIDs are the provider-assigned identifiers used to match an
// asynchronous callback back to its originating attempt. M-Pesa assigns a
// checkout/merchant request id pair on STK push; PayPal assigns an order id.

type CorrelationIDs struct {
	CheckoutRequestID string `json:"checkout_request_id,omitempty"`
	MerchantRequestID string `json:"merchant_request_id,omitempty"`
	OrderID           string `json:"order_id,omitempty"`
}

// Values returns the non-empty identifiers, lookup-priority first.
func (c CorrelationIDs) Values() []string {
	ids := make([]string, 0, 3)
	if c.CheckoutRequestID != "" {
		ids = append(ids, c.CheckoutRequestID)
	}
	if c.MerchantRequestID != "" {
		ids = append(ids, c.MerchantRequestID)
	}
	if c.OrderID != "" {
		ids = append(ids, c.OrderID)
	}
	return ids
}

// PaymentAttempt is one logical payment initiation and its eventual outcome.
//
// Storage model (DynamoDB):
//   - PK: id
//   - correlation ids are claimed as separate `corr#<id>` items in the same
//     table, which is what enforces the one-attempt-per-correlation-id rule.
//
// ProviderPayload keeps the last raw provider body (initiation response or
// callback) for audit; it is overwritten, not merged, on each update.

type PaymentAttempt struct {
	ID             string          `json:"id"`
	Provider       PaymentProvider `json:"provider"`
	PayerReference string          `json:"payer_reference"`
	Amount         float64         `json:"amount"`
	Currency       string          `json:"currency"`

	CheckoutRequestID string `json:"checkout_request_id,omitempty"`
	MerchantRequestID string `json:"merchant_request_id,omitempty"`
	OrderID           string `json:"order_id,omitempty"`

	Status          AttemptStatus   `json:"status"`
	ProviderPayload json.RawMessage `json:"provider_payload,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CorrelationIDs collects the attempt's provider identifiers.
func (a PaymentAttempt) CorrelationIDs() CorrelationIDs {
	return CorrelationIDs{
		CheckoutRequestID: a.CheckoutRequestID,
		MerchantRequestID: a.MerchantRequestID,
		OrderID:           a.OrderID,
	}
}

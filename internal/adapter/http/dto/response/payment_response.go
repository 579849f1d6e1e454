package response

import (
	"time"

	"epicare_backend/internal/domain/entities"
)

// PaymentAttemptResponse is the API rendering of a payment attempt.
// AttemptID duplicates ID for older frontend builds that read `attempt_id`.

type PaymentAttemptResponse struct {
	AttemptID      string  `json:"attempt_id"`
	ID             string  `json:"id"`
	Provider       string  `json:"provider"`
	PayerReference string  `json:"payer_reference,omitempty"`
	Amount         float64 `json:"amount"`
	Currency       string  `json:"currency,omitempty"`

	CheckoutRequestID string `json:"checkout_request_id,omitempty"`
	MerchantRequestID string `json:"merchant_request_id,omitempty"`
	OrderID           string `json:"order_id,omitempty"`

	Status          string `json:"status"`
	ProviderPayload string `json:"provider_payload,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromPaymentAttempt(a entities.PaymentAttempt) PaymentAttemptResponse {
	return PaymentAttemptResponse{
		AttemptID:         a.ID,
		ID:                a.ID,
		Provider:          string(a.Provider),
		PayerReference:    a.PayerReference,
		Amount:            a.Amount,
		Currency:          a.Currency,
		CheckoutRequestID: a.CheckoutRequestID,
		MerchantRequestID: a.MerchantRequestID,
		OrderID:           a.OrderID,
		Status:            string(a.Status),
		ProviderPayload:   string(a.ProviderPayload),
		CreatedAt:         a.CreatedAt,
		UpdatedAt:         a.UpdatedAt,
	}
}

// PaypalOrderResponse pairs the created attempt with the approval URL the
// frontend redirects the payer to.

type PaypalOrderResponse struct {
	Attempt     PaymentAttemptResponse `json:"attempt"`
	ApprovalURL string                 `json:"approval_url,omitempty"`
}

// WebhookResponse reports the verification outcome of a PayPal webhook.

type WebhookResponse struct {
	Verified bool `json:"verified"`
}

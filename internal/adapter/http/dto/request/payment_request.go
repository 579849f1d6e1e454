package request

import "encoding/json"

// StkPushRequest initiates an M-Pesa STK push. Phone accepts local
// ("07...") or international ("2547...") forms; normalization happens in the
// usecase.

type StkPushRequest struct {
	Phone  string  `json:"phone" binding:"required"`
	Amount float64 `json:"amount" binding:"required"`
}

// PaypalOrderRequest initiates a PayPal checkout order. Currency defaults to
// USD when omitted.

type PaypalOrderRequest struct {
	Amount   float64 `json:"amount" binding:"required"`
	Currency string  `json:"currency"`
}

// PaypalCaptureLogRequest is the client-side capture report posted by the
// frontend after an on-page approval. `raw_payload` is stored as-is for
// audit, the same way provider callbacks are.

type PaypalCaptureLogRequest struct {
	OrderID    string          `json:"order_id" binding:"required"`
	PayerID    string          `json:"payer_id"`
	Amount     float64         `json:"amount"`
	Currency   string          `json:"currency"`
	Status     string          `json:"status"`
	RawPayload json.RawMessage `json:"raw_payload"`
}

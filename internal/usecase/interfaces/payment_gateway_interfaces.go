package interfaces

import (
	"context"
	"encoding/json"

	"epicare_backend/internal/domain/entities"
)

// IMpesaGateway abstracts the Safaricom Daraja STK push flow (OAuth token +
// processrequest call). Implementations must not hold any ledger lock while
// the HTTP call is in flight.

type IMpesaGateway interface {
	StkPush(ctx context.Context, phone string, amount float64) (entities.StkPushResult, error)
}

// IPaypalGateway abstracts the PayPal REST API: order creation for initiation
// and the verify-webhook-signature endpoint, which is the sole trust boundary
// between the public internet and PayPal-driven ledger mutations.

type IPaypalGateway interface {
	CreateOrder(ctx context.Context, amount float64, currency string) (entities.PaypalOrder, error)
	VerifyWebhookSignature(ctx context.Context, event json.RawMessage, t entities.PaypalTransmission) (bool, error)
}

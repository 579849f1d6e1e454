package response

import (
	"encoding/json"
	"testing"
	"time"

	"epicare_backend/internal/domain/entities"
)

func TestFromPaymentAttempt(t *testing.T) {
	now := time.Now().UTC()
	raw := json.RawMessage(`{"ResultCode":0}`)

	a := entities.PaymentAttempt{
		ID:                "pa-1",
		Provider:          entities.ProviderMpesa,
		PayerReference:    "254712345678",
		Amount:            100,
		Currency:          "KES",
		CheckoutRequestID: "ws_CO_1",
		MerchantRequestID: "mr-1",
		Status:            entities.AttemptStatusCompleted,
		ProviderPayload:   raw,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	res := FromPaymentAttempt(a)
	if res.ID != "pa-1" || res.AttemptID != "pa-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.Provider != "mpesa" || res.Status != "completed" {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if res.CheckoutRequestID != "ws_CO_1" || res.MerchantRequestID != "mr-1" {
		t.Fatalf("unexpected correlation ids: %+v", res)
	}
	if res.ProviderPayload != string(raw) {
		t.Fatalf("unexpected payload: %s", res.ProviderPayload)
	}
	if !res.CreatedAt.Equal(now) || !res.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected timestamps: %+v", res)
	}
}

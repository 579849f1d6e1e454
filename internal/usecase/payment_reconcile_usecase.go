package usecase

import (
	"context"
	"encoding/json"
	"log"
	"strconv"
	"strings"
	"time"

	"epicare_backend/internal/domain/entities"

	"github.com/google/uuid"
)

// stkCallback is the result structure inside an M-Pesa STK push notification.

type stkCallback struct {
	MerchantRequestID string      `json:"MerchantRequestID"`
	CheckoutRequestID string      `json:"CheckoutRequestID"`
	ResultCode        json.Number `json:"ResultCode"`
	ResultDesc        string      `json:"ResultDesc"`
}

type stkEnvelope struct {
	Body struct {
		StkCallback *stkCallback `json:"stkCallback"`
	} `json:"Body"`
}

// stkExtractors are the envelope shapes seen across Daraja deployments, tried
// in order: the documented Body.stkCallback wrapper first, then the whole
// body as the callback itself.
var stkExtractors = []func(raw json.RawMessage) (stkCallback, bool){
	func(raw json.RawMessage) (stkCallback, bool) {
		var env stkEnvelope
		if err := json.Unmarshal(raw, &env); err != nil || env.Body.StkCallback == nil {
			return stkCallback{}, false
		}
		return *env.Body.StkCallback, true
	},
	func(raw json.RawMessage) (stkCallback, bool) {
		var cb stkCallback
		if err := json.Unmarshal(raw, &cb); err != nil {
			return stkCallback{}, false
		}
		if cb.CheckoutRequestID == "" && cb.MerchantRequestID == "" {
			return stkCallback{}, false
		}
		return cb, true
	},
}

func extractStkCallback(raw json.RawMessage) (stkCallback, bool) {
	if len(raw) == 0 || !json.Valid(raw) {
		return stkCallback{}, false
	}
	for _, extract := range stkExtractors {
		if cb, ok := extract(raw); ok {
			return cb, ok
		}
	}
	return stkCallback{}, false
}

// ReconcileMpesaCallback matches an inbound STK push result to its pending
// attempt and closes it. The returned ack is always sent back with HTTP 200;
// a non-zero ResultCode is only produced when the body itself was unreadable.
// A callback matching no attempt is recorded as an orphan row so the
// notification is never silently dropped.
func (u *PaymentUseCase) ReconcileMpesaCallback(ctx context.Context, raw json.RawMessage) (MpesaAck, error) {
	log.Printf("[payment][usecase] mpesa callback received payload_len=%d", len(raw))
	cb, ok := extractStkCallback(raw)
	if !ok {
		log.Printf("[payment][usecase] mpesa callback unparseable")
		return MpesaAck{ResultCode: 1, ResultDesc: "Rejected"}, ErrMalformedCallback
	}

	resultCode, err := cb.ResultCode.Int64()
	if err != nil {
		// No result code at all is a provider contract violation; treat the
		// outcome as failed rather than guessing success.
		resultCode = 1
	}

	a, err := u.findByCallbackIDs(ctx, cb.CheckoutRequestID, cb.MerchantRequestID)
	if err != nil {
		log.Printf("[payment][usecase] mpesa callback lookup failed err=%v", err)
		return MpesaAck{ResultCode: 0, ResultDesc: "Accepted"}, nil
	}

	if a.ID == "" {
		u.recordOrphan(ctx, entities.ProviderMpesa, entities.CorrelationIDs{
			CheckoutRequestID: cb.CheckoutRequestID,
			MerchantRequestID: cb.MerchantRequestID,
		}, 0, mpesaCurrency, raw)
		return MpesaAck{ResultCode: 0, ResultDesc: "Accepted"}, nil
	}

	to := entities.AttemptStatusFailed
	if resultCode == 0 {
		to = entities.AttemptStatusCompleted
	}
	applied, err := u.ledger.CloseStatus(ctx, a.ID, entities.AttemptStatusPending, to, raw)
	switch {
	case err != nil:
		log.Printf("[payment][usecase] mpesa close failed attempt_id=%s err=%v", a.ID, err)
	case !applied:
		log.Printf("[payment][usecase] mpesa callback repeated, attempt already terminal attempt_id=%s", a.ID)
	default:
		log.Printf("[payment][usecase] mpesa attempt closed attempt_id=%s status=%s result_code=%d", a.ID, to, resultCode)
	}
	return MpesaAck{ResultCode: 0, ResultDesc: "Accepted"}, nil
}

// findByCallbackIDs resolves an attempt by checkout request id first, then by
// merchant request id.
func (u *PaymentUseCase) findByCallbackIDs(ctx context.Context, checkoutID, merchantID string) (entities.PaymentAttempt, error) {
	if checkoutID != "" {
		a, err := u.ledger.FindByCorrelationID(ctx, checkoutID)
		if err != nil || a.ID != "" {
			return a, err
		}
	}
	if merchantID != "" {
		return u.ledger.FindByCorrelationID(ctx, merchantID)
	}
	return entities.PaymentAttempt{}, nil
}

// recordOrphan keeps an audit row for a notification that matched nothing.
// Orphans never claim correlation ids, so they cannot shadow a real attempt
// whose initiation call is still persisting its ids.
func (u *PaymentUseCase) recordOrphan(ctx context.Context, provider entities.PaymentProvider, ids entities.CorrelationIDs, amount float64, currency string, raw json.RawMessage) {
	now := time.Now().UTC()
	orphan := entities.PaymentAttempt{
		ID:                uuid.NewString(),
		Provider:          provider,
		PayerReference:    orphanPayerReference,
		Amount:            amount,
		Currency:          currency,
		Status:            entities.AttemptStatusFailed,
		CheckoutRequestID: ids.CheckoutRequestID,
		MerchantRequestID: ids.MerchantRequestID,
		OrderID:           ids.OrderID,
		ProviderPayload:   raw,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if _, err := u.ledger.Create(ctx, orphan); err != nil {
		log.Printf("[payment][usecase] orphan record create failed err=%v", err)
		return
	}
	log.Printf("[payment][usecase] orphan callback recorded orphan_id=%s provider=%s", orphan.ID, provider)
}

// paypalEvent is the subset of a PayPal webhook event the reconciler reads.

type paypalEvent struct {
	EventType string `json:"event_type"`
	Resource  struct {
		ID        string `json:"id"`
		InvoiceID string `json:"invoice_id"`
		OrderID   string `json:"order_id"`
		Amount    struct {
			Value        string `json:"value"`
			CurrencyCode string `json:"currency_code"`
		} `json:"amount"`
		PurchaseUnits []struct {
			Amount struct {
				Value        string `json:"value"`
				CurrencyCode string `json:"currency_code"`
			} `json:"amount"`
		} `json:"purchase_units"`
	} `json:"resource"`
}

func (e paypalEvent) orderID() string {
	for _, id := range []string{e.Resource.ID, e.Resource.InvoiceID, e.Resource.OrderID} {
		if id != "" {
			return id
		}
	}
	return ""
}

// mapPaypalEventStatus maps a webhook event type onto the attempt state
// machine. Non-terminal lifecycle events (order created, checkout approved
// but not captured, ...) are acknowledged without a transition.
func mapPaypalEventStatus(eventType string) (entities.AttemptStatus, bool) {
	switch {
	case strings.HasSuffix(eventType, ".COMPLETED"):
		return entities.AttemptStatusCompleted, true
	case strings.HasSuffix(eventType, ".DENIED"),
		strings.HasSuffix(eventType, ".DECLINED"),
		strings.HasSuffix(eventType, ".FAILED"),
		strings.HasSuffix(eventType, ".REVERSED"),
		strings.HasSuffix(eventType, ".REFUNDED"):
		return entities.AttemptStatusFailed, true
	default:
		return "", false
	}
}

// ReconcilePaypalWebhook verifies the event signature and then applies the
// event to the ledger. Verification runs first and an unverified event causes
// zero ledger writes, not even an orphan: unauthenticated input is not
// trusted for payment state.
func (u *PaymentUseCase) ReconcilePaypalWebhook(ctx context.Context, event json.RawMessage, t entities.PaypalTransmission) (entities.PaymentAttempt, error) {
	if len(event) == 0 || !json.Valid(event) {
		return entities.PaymentAttempt{}, ErrMalformedCallback
	}
	if u.paypal == nil {
		log.Printf("[payment][usecase] paypal webhook rejected, gateway not configured")
		return entities.PaymentAttempt{}, ErrWebhookNotVerified
	}

	verified, err := u.paypal.VerifyWebhookSignature(ctx, event, t)
	if err != nil || !verified {
		log.Printf("[payment][usecase] paypal webhook signature rejected verified=%t err=%v", verified, err)
		return entities.PaymentAttempt{}, ErrWebhookNotVerified
	}

	var ev paypalEvent
	if err := json.Unmarshal(event, &ev); err != nil {
		return entities.PaymentAttempt{}, ErrMalformedCallback
	}
	orderID := ev.orderID()
	log.Printf("[payment][usecase] paypal webhook verified event_type=%s order_id=%s", ev.EventType, orderID)

	to, terminal := mapPaypalEventStatus(ev.EventType)

	var a entities.PaymentAttempt
	if orderID != "" {
		a, err = u.ledger.FindByCorrelationID(ctx, orderID)
		if err != nil {
			return entities.PaymentAttempt{}, err
		}
	}

	if a.ID == "" {
		amount, currency := amountFromEvent(ev)
		u.recordOrphan(ctx, entities.ProviderPaypal, entities.CorrelationIDs{OrderID: orderID}, amount, currency, event)
		return entities.PaymentAttempt{}, nil
	}

	if !terminal {
		log.Printf("[payment][usecase] paypal non-terminal event acknowledged attempt_id=%s event_type=%s", a.ID, ev.EventType)
		return a, nil
	}

	applied, err := u.ledger.CloseStatus(ctx, a.ID, entities.AttemptStatusPending, to, event)
	if err != nil {
		return a, err
	}
	if !applied {
		log.Printf("[payment][usecase] paypal event repeated, attempt already terminal attempt_id=%s", a.ID)
		return a, nil
	}
	a.Status = to
	a.ProviderPayload = event
	log.Printf("[payment][usecase] paypal attempt closed attempt_id=%s status=%s", a.ID, to)
	return a, nil
}

// LogPaypalCapture records a client-reported capture for an order. The
// frontend calls this after an on-page approval, so the server keeps a ledger
// row even when the webhook is delayed or lost.
func (u *PaymentUseCase) LogPaypalCapture(ctx context.Context, capture PaypalCaptureLog) (entities.PaymentAttempt, error) {
	orderID := strings.TrimSpace(capture.OrderID)
	if orderID == "" {
		return entities.PaymentAttempt{}, ErrInvalidOrderID
	}
	currency := strings.ToUpper(strings.TrimSpace(capture.Currency))
	if currency == "" {
		currency = defaultPaypalCurrency
	}

	a, err := u.ledger.FindByCorrelationID(ctx, orderID)
	if err != nil {
		return entities.PaymentAttempt{}, err
	}
	if a.ID == "" {
		now := time.Now().UTC()
		a = entities.PaymentAttempt{
			ID:             uuid.NewString(),
			Provider:       entities.ProviderPaypal,
			PayerReference: strings.TrimSpace(capture.PayerID),
			Amount:         capture.Amount,
			Currency:       currency,
			Status:         entities.AttemptStatusPending,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if a, err = u.ledger.Create(ctx, a); err != nil {
			return entities.PaymentAttempt{}, err
		}
		if err := u.ledger.AttachCorrelationIDs(ctx, a.ID, entities.CorrelationIDs{OrderID: orderID}, capture.RawPayload); err != nil {
			return entities.PaymentAttempt{}, err
		}
		a.OrderID = orderID
	}

	if isCompletedCaptureStatus(capture.Status) {
		applied, err := u.ledger.CloseStatus(ctx, a.ID, entities.AttemptStatusPending, entities.AttemptStatusCompleted, capture.RawPayload)
		if err != nil {
			return a, err
		}
		if applied {
			a.Status = entities.AttemptStatusCompleted
		}
	}
	log.Printf("[payment][usecase] paypal capture logged attempt_id=%s order_id=%s status=%s", a.ID, orderID, a.Status)
	return a, nil
}

func isCompletedCaptureStatus(status string) bool {
	switch strings.ToUpper(strings.TrimSpace(status)) {
	case "COMPLETED", "PAYMENT.CAPTURE.COMPLETED", "CHECKOUT.ORDER.COMPLETED":
		return true
	}
	return false
}

// amountFromEvent pulls the decimal amount out of a webhook resource,
// probing the capture amount first and then the order purchase units.
func amountFromEvent(ev paypalEvent) (float64, string) {
	value := ev.Resource.Amount.Value
	currency := ev.Resource.Amount.CurrencyCode
	if value == "" && len(ev.Resource.PurchaseUnits) > 0 {
		value = ev.Resource.PurchaseUnits[0].Amount.Value
		currency = ev.Resource.PurchaseUnits[0].Amount.CurrencyCode
	}
	amount, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, currency
	}
	return amount, currency
}

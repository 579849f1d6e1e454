package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"epicare_backend/internal/domain/entities"
	"epicare_backend/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidPhone       = errors.New("invalid phone number")
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrInvalidOrderID     = errors.New("invalid order_id")
	ErrAttemptNotFound    = errors.New("payment attempt not found")
	ErrGateway            = errors.New("payment gateway request failed")
	ErrMalformedCallback  = errors.New("malformed callback payload")
	ErrWebhookNotVerified = errors.New("webhook signature not verified")
)

const (
	mpesaCurrency         = "KES"
	defaultPaypalCurrency = "USD"
	orphanPayerReference  = "unknown"
)

// MpesaAck is the acknowledgment body Safaricom expects from the callback
// endpoint. ResultCode stays 0 for everything we could parse, matched or not;
// a non-zero code is only used when the inbound body itself was unreadable.

type MpesaAck struct {
	ResultCode int    `json:"ResultCode"`
	ResultDesc string `json:"ResultDesc"`
}

// PaypalCaptureLog is a client-side capture report posted by the frontend
// after an on-page PayPal approval.

type PaypalCaptureLog struct {
	OrderID    string
	PayerID    string
	Amount     float64
	Currency   string
	Status     string
	RawPayload json.RawMessage
}

// IPaymentUseCase exposes payment initiation and callback reconciliation.
//
// Initiation always creates exactly one ledger row, before any network call,
// so a crash or gateway failure still leaves an auditable record. Completion
// is only ever learned from the provider's asynchronous callback.

type IPaymentUseCase interface {
	InitiateMpesa(ctx context.Context, phone string, amount float64) (entities.PaymentAttempt, error)
	InitiatePaypal(ctx context.Context, amount float64, currency string) (entities.PaymentAttempt, string, error)
	ReconcileMpesaCallback(ctx context.Context, raw json.RawMessage) (MpesaAck, error)
	ReconcilePaypalWebhook(ctx context.Context, event json.RawMessage, t entities.PaypalTransmission) (entities.PaymentAttempt, error)
	LogPaypalCapture(ctx context.Context, capture PaypalCaptureLog) (entities.PaymentAttempt, error)
	GetAttempt(ctx context.Context, id string) (entities.PaymentAttempt, error)
}

type PaymentUseCase struct {
	ledger interfaces.IPaymentLedger
	mpesa  interfaces.IMpesaGateway
	paypal interfaces.IPaypalGateway
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(ledger interfaces.IPaymentLedger, mpesa interfaces.IMpesaGateway, paypal interfaces.IPaypalGateway) *PaymentUseCase {
	return &PaymentUseCase{ledger: ledger, mpesa: mpesa, paypal: paypal}
}

// NormalizePhone rewrites an MSISDN into the full international form Daraja
// expects: "+" and whitespace are stripped, a local leading "0" becomes
// "254". Already-normalized numbers pass through unchanged.
func NormalizePhone(phone string) string {
	phone = strings.ReplaceAll(phone, "+", "")
	phone = strings.Join(strings.Fields(phone), "")
	if strings.HasPrefix(phone, "0") {
		phone = "254" + phone[1:]
	}
	return phone
}

func isValidMSISDN(phone string) bool {
	if len(phone) != 12 || !strings.HasPrefix(phone, "254") {
		return false
	}
	for _, r := range phone {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func (u *PaymentUseCase) InitiateMpesa(ctx context.Context, phone string, amount float64) (entities.PaymentAttempt, error) {
	phone = NormalizePhone(phone)
	log.Printf("[payment][usecase] mpesa initiate start phone=%s amount=%.2f", phone, amount)
	if !isValidMSISDN(phone) {
		return entities.PaymentAttempt{}, ErrInvalidPhone
	}
	if amount <= 0 {
		return entities.PaymentAttempt{}, ErrInvalidAmount
	}

	now := time.Now().UTC()
	a := entities.PaymentAttempt{
		ID:             uuid.NewString(),
		Provider:       entities.ProviderMpesa,
		PayerReference: phone,
		Amount:         amount,
		Currency:       mpesaCurrency,
		Status:         entities.AttemptStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	a, err := u.ledger.Create(ctx, a)
	if err != nil {
		log.Printf("[payment][usecase] ledger create failed err=%v", err)
		return entities.PaymentAttempt{}, err
	}

	if u.mpesa == nil {
		return a, u.closeInitiationFailed(ctx, a.ID, errors.New("mpesa gateway not configured"))
	}

	res, err := u.mpesa.StkPush(ctx, phone, amount)
	if err != nil {
		log.Printf("[payment][usecase] stk push failed attempt_id=%s err=%v", a.ID, err)
		return a, u.closeInitiationFailed(ctx, a.ID, err)
	}

	ids := entities.CorrelationIDs{
		CheckoutRequestID: res.CheckoutRequestID,
		MerchantRequestID: res.MerchantRequestID,
	}
	if err := u.ledger.AttachCorrelationIDs(ctx, a.ID, ids, res.Raw); err != nil {
		log.Printf("[payment][usecase] attach correlation ids failed attempt_id=%s err=%v", a.ID, err)
		return a, u.closeInitiationFailed(ctx, a.ID, err)
	}

	a.CheckoutRequestID = res.CheckoutRequestID
	a.MerchantRequestID = res.MerchantRequestID
	a.ProviderPayload = res.Raw
	a.UpdatedAt = time.Now().UTC()
	log.Printf("[payment][usecase] mpesa initiate success attempt_id=%s checkout_request_id=%s", a.ID, a.CheckoutRequestID)
	return a, nil
}

func (u *PaymentUseCase) InitiatePaypal(ctx context.Context, amount float64, currency string) (entities.PaymentAttempt, string, error) {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		currency = defaultPaypalCurrency
	}
	log.Printf("[payment][usecase] paypal initiate start amount=%.2f currency=%s", amount, currency)
	if amount <= 0 {
		return entities.PaymentAttempt{}, "", ErrInvalidAmount
	}

	now := time.Now().UTC()
	a := entities.PaymentAttempt{
		ID:        uuid.NewString(),
		Provider:  entities.ProviderPaypal,
		Amount:    amount,
		Currency:  currency,
		Status:    entities.AttemptStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	a, err := u.ledger.Create(ctx, a)
	if err != nil {
		log.Printf("[payment][usecase] ledger create failed err=%v", err)
		return entities.PaymentAttempt{}, "", err
	}

	if u.paypal == nil {
		return a, "", u.closeInitiationFailed(ctx, a.ID, errors.New("paypal gateway not configured"))
	}

	order, err := u.paypal.CreateOrder(ctx, amount, currency)
	if err != nil {
		log.Printf("[payment][usecase] create order failed attempt_id=%s err=%v", a.ID, err)
		return a, "", u.closeInitiationFailed(ctx, a.ID, err)
	}

	if err := u.ledger.AttachCorrelationIDs(ctx, a.ID, entities.CorrelationIDs{OrderID: order.OrderID}, order.Raw); err != nil {
		log.Printf("[payment][usecase] attach correlation ids failed attempt_id=%s err=%v", a.ID, err)
		return a, "", u.closeInitiationFailed(ctx, a.ID, err)
	}

	a.OrderID = order.OrderID
	a.ProviderPayload = order.Raw
	a.UpdatedAt = time.Now().UTC()
	log.Printf("[payment][usecase] paypal initiate success attempt_id=%s order_id=%s", a.ID, a.OrderID)
	return a, order.ApprovalURL, nil
}

// closeInitiationFailed marks the attempt failed with the error detail
// recorded. An attempt whose gateway call failed must never stay pending.
func (u *PaymentUseCase) closeInitiationFailed(ctx context.Context, id string, cause error) error {
	detail, _ := json.Marshal(map[string]string{"error": cause.Error()})
	if _, err := u.ledger.CloseStatus(ctx, id, entities.AttemptStatusPending, entities.AttemptStatusFailed, detail); err != nil {
		log.Printf("[payment][usecase] close failed attempt_id=%s err=%v", id, err)
	}
	return fmt.Errorf("%w: %v", ErrGateway, cause)
}

func (u *PaymentUseCase) GetAttempt(ctx context.Context, id string) (entities.PaymentAttempt, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PaymentAttempt{}, ErrAttemptNotFound
	}
	a, err := u.ledger.GetByID(ctx, id)
	if err != nil {
		return entities.PaymentAttempt{}, err
	}
	if a.ID == "" {
		return entities.PaymentAttempt{}, ErrAttemptNotFound
	}
	return a, nil
}

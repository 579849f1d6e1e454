package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	request "epicare_backend/internal/adapter/http/dto/request"
	response "epicare_backend/internal/adapter/http/dto/response"
	"epicare_backend/internal/domain/entities"
	"epicare_backend/internal/usecase"
	"epicare_backend/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles HTTP requests for payment initiation, provider
// callbacks and attempt lookups.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// MpesaStkPush initiates an STK push for the given phone/amount.
func (h *PaymentHandler) MpesaStkPush(c *gin.Context) {
	var req request.StkPushRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[payment][handler] stkpush invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Phone and amount are required", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	attempt, err := h.usecase.InitiateMpesa(c.Request.Context(), req.Phone, req.Amount)
	if err != nil {
		log.Printf("[payment][handler] stkpush failed phone=%s err=%v", req.Phone, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] stkpush accepted attempt_id=%s checkout_request_id=%s", attempt.ID, attempt.CheckoutRequestID)

	c.JSON(http.StatusOK, response.FromPaymentAttempt(attempt))
}

// MpesaCallback receives the asynchronous STK push result from Safaricom.
// The provider contract requires an acknowledgment on every delivery, so this
// always answers 200; reconciliation problems are logged, never surfaced.
func (h *PaymentHandler) MpesaCallback(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		log.Printf("[payment][handler] mpesa callback body unreadable err=%v", err)
		c.JSON(http.StatusOK, usecase.MpesaAck{ResultCode: 1, ResultDesc: "Rejected"})
		return
	}

	ack, err := h.usecase.ReconcileMpesaCallback(c.Request.Context(), raw)
	if err != nil {
		log.Printf("[payment][handler] mpesa callback not applied err=%v", err)
	}
	c.JSON(http.StatusOK, ack)
}

// PaypalCreateOrder creates a PayPal checkout order and returns the approval
// URL the frontend redirects the payer to.
func (h *PaymentHandler) PaypalCreateOrder(c *gin.Context) {
	var req request.PaypalOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[payment][handler] paypal order invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Amount is required", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	attempt, approvalURL, err := h.usecase.InitiatePaypal(c.Request.Context(), req.Amount, req.Currency)
	if err != nil {
		log.Printf("[payment][handler] paypal order failed err=%v", err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] paypal order created attempt_id=%s order_id=%s", attempt.ID, attempt.OrderID)

	c.JSON(http.StatusOK, response.PaypalOrderResponse{
		Attempt:     response.FromPaymentAttempt(attempt),
		ApprovalURL: approvalURL,
	})
}

// PaypalWebhook verifies and applies a PayPal webhook event. An event that
// fails signature verification is rejected without touching payment state.
func (h *PaymentHandler) PaypalWebhook(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		log.Printf("[payment][handler] paypal webhook body unreadable err=%v", err)
		c.JSON(http.StatusBadRequest, response.WebhookResponse{Verified: false})
		return
	}

	transmission := entities.PaypalTransmission{
		TransmissionID:   c.GetHeader("Paypal-Transmission-Id"),
		TransmissionTime: c.GetHeader("Paypal-Transmission-Time"),
		CertURL:          c.GetHeader("Paypal-Cert-Url"),
		AuthAlgo:         c.GetHeader("Paypal-Auth-Algo"),
		TransmissionSig:  c.GetHeader("Paypal-Transmission-Sig"),
	}

	_, err = h.usecase.ReconcilePaypalWebhook(c.Request.Context(), raw, transmission)
	if err != nil {
		log.Printf("[payment][handler] paypal webhook rejected err=%v", err)
		c.JSON(http.StatusBadRequest, response.WebhookResponse{Verified: false})
		return
	}
	c.JSON(http.StatusOK, response.WebhookResponse{Verified: true})
}

// PaypalLog records a client-reported capture.
func (h *PaymentHandler) PaypalLog(c *gin.Context) {
	var req request.PaypalCaptureLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[payment][handler] paypal log invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "order_id is required", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	attempt, err := h.usecase.LogPaypalCapture(c.Request.Context(), usecase.PaypalCaptureLog{
		OrderID:    req.OrderID,
		PayerID:    req.PayerID,
		Amount:     req.Amount,
		Currency:   req.Currency,
		Status:     req.Status,
		RawPayload: normalizeRawPayload(req.RawPayload),
	})
	if err != nil {
		log.Printf("[payment][handler] paypal log failed order_id=%s err=%v", req.OrderID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] paypal capture logged attempt_id=%s order_id=%s", attempt.ID, req.OrderID)

	c.JSON(http.StatusOK, response.FromPaymentAttempt(attempt))
}

// GetPayment returns a payment attempt by id, for frontend status polling.
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	id := c.Param("id")

	attempt, err := h.usecase.GetAttempt(c.Request.Context(), id)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentAttempt(attempt))
}

func normalizeRawPayload(raw json.RawMessage) json.RawMessage {
	if len(raw) == 0 || !json.Valid(raw) {
		return nil
	}
	return raw
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPhone), errors.Is(err, usecase.ErrInvalidAmount), errors.Is(err, usecase.ErrInvalidOrderID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrGateway):
		return pkg.NewDomainError("GATEWAY_ERROR", "Payment provider rejected or did not answer the request", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrAttemptNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment attempt not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

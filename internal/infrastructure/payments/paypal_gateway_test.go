package payments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"epicare_backend/internal/domain/entities"
)

func transmission() entities.PaypalTransmission {
	return entities.PaypalTransmission{
		TransmissionID:   "tx-1",
		TransmissionTime: "2026-08-29T10:00:00Z",
		TransmissionSig:  "sig",
		CertURL:          "https://api.paypal.com/cert",
		AuthAlgo:         "SHA256withRSA",
	}
}

func newPaypalGateway(t *testing.T, baseURL string) *PaypalGateway {
	t.Helper()
	g, err := NewPaypalGateway(PaypalConfig{
		Env:          "sandbox",
		BaseURL:      baseURL,
		ClientID:     "client",
		ClientSecret: "secret",
		WebhookID:    "wh-1",
		ReturnURL:    "https://example.org/donate/success",
		CancelURL:    "https://example.org/donate/cancel",
	})
	if err != nil {
		t.Fatalf("new gateway: %v", err)
	}
	return g
}

func TestNewPaypalGateway_MissingCredentials(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	_, err := NewPaypalGateway(PaypalConfig{ClientID: "client"})
	if !errors.Is(err, ErrMissingPaypalCredentials) {
		t.Fatalf("expected ErrMissingPaypalCredentials, got %v", err)
	}
}

func TestPaypalGateway_CreateOrder(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")

	t.Run("success extracts approval link", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/v1/oauth2/token":
				json.NewEncoder(w).Encode(map[string]string{"access_token": "tok-1"})
			case "/v2/checkout/orders":
				var payload map[string]any
				json.NewDecoder(r.Body).Decode(&payload)
				if payload["intent"] != "CAPTURE" {
					t.Errorf("expected CAPTURE intent, got %v", payload["intent"])
				}
				json.NewEncoder(w).Encode(map[string]any{
					"id":     "ORD-1",
					"status": "CREATED",
					"links": []map[string]string{
						{"rel": "self", "href": "https://api.sandbox.paypal.com/v2/checkout/orders/ORD-1"},
						{"rel": "approve", "href": "https://www.sandbox.paypal.com/checkoutnow?token=ORD-1"},
					},
				})
			default:
				t.Errorf("unexpected path %s", r.URL.Path)
			}
		}))
		defer srv.Close()

		g := newPaypalGateway(t, srv.URL)
		order, err := g.CreateOrder(context.Background(), 25, "USD")
		if err != nil {
			t.Fatalf("create order: %v", err)
		}
		if order.OrderID != "ORD-1" {
			t.Fatalf("unexpected order: %+v", order)
		}
		if !strings.Contains(order.ApprovalURL, "checkoutnow") {
			t.Fatalf("expected approval url, got %q", order.ApprovalURL)
		}
	})

	t.Run("order rejected", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/v1/oauth2/token" {
				json.NewEncoder(w).Encode(map[string]string{"access_token": "tok-1"})
				return
			}
			http.Error(w, `{"name":"INVALID_REQUEST"}`, http.StatusUnprocessableEntity)
		}))
		defer srv.Close()

		g := newPaypalGateway(t, srv.URL)
		_, err := g.CreateOrder(context.Background(), 25, "USD")
		if err == nil || !strings.Contains(err.Error(), "status=422") {
			t.Fatalf("expected rejection error, got %v", err)
		}
	})

	t.Run("mock mode", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "true")
		g, err := NewPaypalGateway(PaypalConfig{})
		if err != nil {
			t.Fatalf("new mock gateway: %v", err)
		}
		order, err := g.CreateOrder(context.Background(), 25, "USD")
		if err != nil {
			t.Fatalf("mock order: %v", err)
		}
		if !strings.HasPrefix(order.OrderID, "MOCK-") {
			t.Fatalf("expected mock order id, got %s", order.OrderID)
		}
	})
}

func TestPaypalGateway_VerifyWebhookSignature(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	event := json.RawMessage(`{"event_type":"PAYMENT.CAPTURE.COMPLETED"}`)

	t.Run("incomplete headers rejected without any call", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			t.Errorf("unexpected request to %s", r.URL.Path)
		}))
		defer srv.Close()

		g := newPaypalGateway(t, srv.URL)
		verified, err := g.VerifyWebhookSignature(context.Background(), event, entities.PaypalTransmission{TransmissionID: "tx-1"})
		if !errors.Is(err, ErrMissingTransmissionHeaders) {
			t.Fatalf("expected ErrMissingTransmissionHeaders, got %v", err)
		}
		if verified {
			t.Fatal("expected unverified")
		}
	})

	t.Run("verification success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/v1/oauth2/token":
				json.NewEncoder(w).Encode(map[string]string{"access_token": "tok-1"})
			case "/v1/notifications/verify-webhook-signature":
				var payload map[string]any
				json.NewDecoder(r.Body).Decode(&payload)
				if payload["webhook_id"] != "wh-1" {
					t.Errorf("expected configured webhook id, got %v", payload["webhook_id"])
				}
				if payload["transmission_sig"] != "sig" {
					t.Errorf("expected transmission sig forwarded, got %v", payload["transmission_sig"])
				}
				json.NewEncoder(w).Encode(map[string]string{"verification_status": "SUCCESS"})
			default:
				t.Errorf("unexpected path %s", r.URL.Path)
			}
		}))
		defer srv.Close()

		g := newPaypalGateway(t, srv.URL)
		verified, err := g.VerifyWebhookSignature(context.Background(), event, transmission())
		if err != nil {
			t.Fatalf("verify: %v", err)
		}
		if !verified {
			t.Fatal("expected verified")
		}
	})

	t.Run("verification failure status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/v1/oauth2/token" {
				json.NewEncoder(w).Encode(map[string]string{"access_token": "tok-1"})
				return
			}
			json.NewEncoder(w).Encode(map[string]string{"verification_status": "FAILURE"})
		}))
		defer srv.Close()

		g := newPaypalGateway(t, srv.URL)
		verified, err := g.VerifyWebhookSignature(context.Background(), event, transmission())
		if err != nil {
			t.Fatalf("verify: %v", err)
		}
		if verified {
			t.Fatal("expected unverified on FAILURE status")
		}
	})

	t.Run("verification endpoint error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/v1/oauth2/token" {
				json.NewEncoder(w).Encode(map[string]string{"access_token": "tok-1"})
				return
			}
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer srv.Close()

		g := newPaypalGateway(t, srv.URL)
		verified, err := g.VerifyWebhookSignature(context.Background(), event, transmission())
		if err == nil {
			t.Fatal("expected error")
		}
		if verified {
			t.Fatal("expected unverified on transport error")
		}
	})
}

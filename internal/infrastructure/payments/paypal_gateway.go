package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"epicare_backend/internal/domain/entities"
	"epicare_backend/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrMissingPaypalCredentials   = errors.New("missing paypal client id/secret config")
	ErrMissingTransmissionHeaders = errors.New("missing paypal transmission headers")
)

const (
	paypalSandboxBaseURL    = "https://api.sandbox.paypal.com"
	paypalProductionBaseURL = "https://api.paypal.com"

	paypalRequestTimeout = 15 * time.Second

	verificationStatusSuccess = "SUCCESS"
)

// PaypalConfig is the explicit PayPal REST configuration handed to the
// gateway. WebhookID is the pre-shared identifier from the developer
// dashboard; without it signature verification cannot succeed.

type PaypalConfig struct {
	Env          string // "sandbox" or "production"
	BaseURL      string
	ClientID     string
	ClientSecret string
	WebhookID    string
	ReturnURL    string
	CancelURL    string
}

func (c PaypalConfig) baseURL() string {
	if c.BaseURL != "" {
		return strings.TrimRight(c.BaseURL, "/")
	}
	if c.Env == "production" {
		return paypalProductionBaseURL
	}
	return paypalSandboxBaseURL
}

// PaypalGateway talks to the PayPal REST API: client-credential OAuth,
// checkout order creation, and webhook signature verification. Verification
// is the trust boundary for inbound webhooks: the reconciler never touches
// the ledger for an event this gateway did not confirm.

type PaypalGateway struct {
	cfg      PaypalConfig
	client   *http.Client
	mockMode bool
}

var _ interfaces.IPaypalGateway = (*PaypalGateway)(nil)

func NewPaypalGateway(cfg PaypalConfig) (*PaypalGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] paypal mock mode enabled")
		return &PaypalGateway{cfg: cfg, mockMode: true}, nil
	}
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		log.Printf("[payment][gateway] paypal config incomplete")
		return nil, ErrMissingPaypalCredentials
	}
	log.Printf("[payment][gateway] paypal gateway initialized env=%s", cfg.Env)
	return &PaypalGateway{cfg: cfg, client: &http.Client{Timeout: paypalRequestTimeout}}, nil
}

func (g *PaypalGateway) accessToken(ctx context.Context) (string, error) {
	form := url.Values{"grant_type": {"client_credentials"}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.baseURL()+"/v1/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(g.cfg.ClientID, g.cfg.ClientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("paypal token request rejected status=%d body=%s", resp.StatusCode, body)
	}

	var tok struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(body, &tok); err != nil {
		return "", err
	}
	if tok.AccessToken == "" {
		return "", fmt.Errorf("paypal token response missing access_token body=%s", body)
	}
	return tok.AccessToken, nil
}

// postJSON sends an authorized JSON request and returns the response body,
// failing on any non-2xx status.
func (g *PaypalGateway) postJSON(ctx context.Context, token, path string, payload any) (json.RawMessage, error) {
	buf, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.baseURL()+path, bytes.NewReader(buf))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("paypal request rejected path=%s status=%d body=%s", path, resp.StatusCode, body)
	}
	return body, nil
}

func (g *PaypalGateway) CreateOrder(ctx context.Context, amount float64, currency string) (entities.PaypalOrder, error) {
	if g != nil && g.mockMode {
		orderID := "MOCK-" + uuid.NewString()
		raw, _ := json.Marshal(map[string]string{"id": orderID, "status": "CREATED"})
		log.Printf("[payment][gateway] paypal mock order created order_id=%s", orderID)
		return entities.PaypalOrder{OrderID: orderID, ApprovalURL: "https://www.sandbox.paypal.com/checkoutnow?token=" + orderID, Raw: raw}, nil
	}

	token, err := g.accessToken(ctx)
	if err != nil {
		log.Printf("[payment][gateway] paypal token fetch failed err=%v", err)
		return entities.PaypalOrder{}, err
	}

	payload := map[string]any{
		"intent": "CAPTURE",
		"purchase_units": []map[string]any{{
			"amount": map[string]string{
				"currency_code": currency,
				"value":         fmt.Sprintf("%.2f", amount),
			},
			"description": "Epicare donation",
		}},
		"application_context": map[string]string{
			"return_url": g.cfg.ReturnURL,
			"cancel_url": g.cfg.CancelURL,
		},
	}
	body, err := g.postJSON(ctx, token, "/v2/checkout/orders", payload)
	if err != nil {
		log.Printf("[payment][gateway] paypal order create failed err=%v", err)
		return entities.PaypalOrder{}, err
	}

	var order struct {
		ID    string `json:"id"`
		Links []struct {
			Rel  string `json:"rel"`
			Href string `json:"href"`
		} `json:"links"`
	}
	if err := json.Unmarshal(body, &order); err != nil {
		return entities.PaypalOrder{}, err
	}
	if order.ID == "" {
		return entities.PaypalOrder{}, fmt.Errorf("paypal order response missing id body=%s", body)
	}

	approvalURL := ""
	for _, link := range order.Links {
		if link.Rel == "approve" || link.Rel == "approval_url" {
			approvalURL = link.Href
			break
		}
	}

	log.Printf("[payment][gateway] paypal order created order_id=%s", order.ID)
	return entities.PaypalOrder{OrderID: order.ID, ApprovalURL: approvalURL, Raw: body}, nil
}

func (g *PaypalGateway) VerifyWebhookSignature(ctx context.Context, event json.RawMessage, t entities.PaypalTransmission) (bool, error) {
	if !t.Complete() {
		log.Printf("[payment][gateway] paypal verification skipped, incomplete transmission headers")
		return false, ErrMissingTransmissionHeaders
	}

	if g != nil && g.mockMode {
		log.Printf("[payment][gateway] paypal mock verification accepted transmission_id=%s", t.TransmissionID)
		return true, nil
	}

	token, err := g.accessToken(ctx)
	if err != nil {
		log.Printf("[payment][gateway] paypal token fetch failed err=%v", err)
		return false, err
	}

	payload := map[string]any{
		"transmission_id":   t.TransmissionID,
		"transmission_time": t.TransmissionTime,
		"cert_url":          t.CertURL,
		"auth_algo":         t.AuthAlgo,
		"transmission_sig":  t.TransmissionSig,
		"webhook_id":        g.cfg.WebhookID,
		"webhook_event":     event,
	}
	body, err := g.postJSON(ctx, token, "/v1/notifications/verify-webhook-signature", payload)
	if err != nil {
		log.Printf("[payment][gateway] paypal verification request failed err=%v", err)
		return false, err
	}

	var result struct {
		VerificationStatus string `json:"verification_status"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return false, err
	}

	verified := result.VerificationStatus == verificationStatusSuccess
	log.Printf("[payment][gateway] paypal verification result transmission_id=%s status=%s", t.TransmissionID, result.VerificationStatus)
	return verified, nil
}

package payments

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"epicare_backend/internal/domain/entities"
	"epicare_backend/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var ErrMissingMpesaCredentials = errors.New("missing mpesa consumer key/secret or shortcode config")

const (
	mpesaSandboxBaseURL    = "https://sandbox.safaricom.co.ke"
	mpesaProductionBaseURL = "https://api.safaricom.co.ke"

	mpesaTokenTimeout   = 15 * time.Second
	mpesaRequestTimeout = 20 * time.Second

	mpesaTimestampLayout = "20060102150405"
)

// MpesaConfig is the explicit Daraja configuration handed to the gateway.
// BaseURL overrides the env-derived host, used for tests and local fakes.

type MpesaConfig struct {
	Env            string // "sandbox" or "production"
	BaseURL        string
	ConsumerKey    string
	ConsumerSecret string
	Shortcode      string
	Passkey        string
	CallbackURL    string
}

func (c MpesaConfig) baseURL() string {
	if c.BaseURL != "" {
		return strings.TrimRight(c.BaseURL, "/")
	}
	if c.Env == "production" {
		return mpesaProductionBaseURL
	}
	return mpesaSandboxBaseURL
}

// MpesaGateway drives the STK push flow: obtain an OAuth token with the
// consumer key/secret, then submit the processrequest payload. Completion of
// the payment itself is only ever reported through the async callback.

type MpesaGateway struct {
	cfg      MpesaConfig
	client   *http.Client
	mockMode bool
	now      func() time.Time
}

var _ interfaces.IMpesaGateway = (*MpesaGateway)(nil)

func NewMpesaGateway(cfg MpesaConfig) (*MpesaGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mpesa mock mode enabled")
		return &MpesaGateway{cfg: cfg, mockMode: true, now: time.Now}, nil
	}
	if cfg.ConsumerKey == "" || cfg.ConsumerSecret == "" || cfg.Shortcode == "" || cfg.Passkey == "" {
		log.Printf("[payment][gateway] mpesa config incomplete")
		return nil, ErrMissingMpesaCredentials
	}
	log.Printf("[payment][gateway] mpesa gateway initialized env=%s", cfg.Env)
	return &MpesaGateway{
		cfg:    cfg,
		client: &http.Client{Timeout: mpesaRequestTimeout},
		now:    time.Now,
	}, nil
}

// stkPassword is base64(shortcode + passkey + timestamp), the Daraja
// "Lipa na M-Pesa" password scheme.
func stkPassword(shortcode, passkey, timestamp string) string {
	return base64.StdEncoding.EncodeToString([]byte(shortcode + passkey + timestamp))
}

func (g *MpesaGateway) accessToken(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, mpesaTokenTimeout)
	defer cancel()

	url := g.cfg.baseURL() + "/oauth/v1/generate?grant_type=client_credentials"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(g.cfg.ConsumerKey, g.cfg.ConsumerSecret)

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
		return "", fmt.Errorf("mpesa token request rejected status=%d body=%s", resp.StatusCode, body)
	}

	var tok struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(body, &tok); err != nil {
		return "", err
	}
	if tok.AccessToken == "" {
		return "", fmt.Errorf("mpesa token response missing access_token body=%s", body)
	}
	return tok.AccessToken, nil
}

func (g *MpesaGateway) StkPush(ctx context.Context, phone string, amount float64) (entities.StkPushResult, error) {
	if g != nil && g.mockMode {
		checkoutID := "ws_CO_mock_" + uuid.NewString()
		merchantID := "mock-" + uuid.NewString()
		raw, _ := json.Marshal(map[string]string{
			"MerchantRequestID":   merchantID,
			"CheckoutRequestID":   checkoutID,
			"ResponseCode":        "0",
			"ResponseDescription": "Success. Request accepted for processing",
			"CustomerMessage":     "Success. Request accepted for processing",
		})
		log.Printf("[payment][gateway] mpesa mock stk push checkout_request_id=%s", checkoutID)
		return entities.StkPushResult{
			CheckoutRequestID: checkoutID,
			MerchantRequestID: merchantID,
			Raw:               raw,
		}, nil
	}

	token, err := g.accessToken(ctx)
	if err != nil {
		log.Printf("[payment][gateway] mpesa token fetch failed err=%v", err)
		return entities.StkPushResult{}, err
	}

	timestamp := g.now().UTC().Format(mpesaTimestampLayout)
	payload := map[string]string{
		"BusinessShortCode": g.cfg.Shortcode,
		"Password":          stkPassword(g.cfg.Shortcode, g.cfg.Passkey, timestamp),
		"Timestamp":         timestamp,
		"TransactionType":   "CustomerPayBillOnline",
		"Amount":            fmt.Sprintf("%.0f", amount),
		"PartyA":            phone,
		"PartyB":            g.cfg.Shortcode,
		"PhoneNumber":       phone,
		"CallBackURL":       g.cfg.CallbackURL,
		"AccountReference":  "EPICARE",
		"TransactionDesc":   "Donation",
	}
	buf, err := json.Marshal(payload)
	if err != nil {
		return entities.StkPushResult{}, err
	}

	url := g.cfg.baseURL() + "/mpesa/stkpush/v1/processrequest"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(buf))
	if err != nil {
		return entities.StkPushResult{}, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		log.Printf("[payment][gateway] mpesa stk push request failed err=%v", err)
		return entities.StkPushResult{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return entities.StkPushResult{}, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("[payment][gateway] mpesa stk push rejected status=%d", resp.StatusCode)
		return entities.StkPushResult{}, fmt.Errorf("mpesa stk push rejected status=%d body=%s", resp.StatusCode, body)
	}

	var stk struct {
		MerchantRequestID string `json:"MerchantRequestID"`
		CheckoutRequestID string `json:"CheckoutRequestID"`
		ResponseCode      string `json:"ResponseCode"`
	}
	if err := json.Unmarshal(body, &stk); err != nil {
		return entities.StkPushResult{}, err
	}
	if stk.CheckoutRequestID == "" {
		return entities.StkPushResult{}, fmt.Errorf("mpesa stk push response missing CheckoutRequestID body=%s", body)
	}

	log.Printf("[payment][gateway] mpesa stk push accepted checkout_request_id=%s merchant_request_id=%s", stk.CheckoutRequestID, stk.MerchantRequestID)
	return entities.StkPushResult{
		CheckoutRequestID: stk.CheckoutRequestID,
		MerchantRequestID: stk.MerchantRequestID,
		Raw:               body,
	}, nil
}

func isPaymentGatewayMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("PAYMENT_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

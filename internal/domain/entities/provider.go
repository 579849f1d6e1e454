package entities

import "encoding/json"

// StkPushResult is what the Daraja gateway reports back after a successful
// STK push submission. Raw keeps the full provider response for audit.

type StkPushResult struct {
	CheckoutRequestID string
	MerchantRequestID string
	Raw               json.RawMessage
}

// PaypalOrder is the result of creating a PayPal checkout order. ApprovalURL
// is where the frontend redirects the payer.

type PaypalOrder struct {
	OrderID     string
	ApprovalURL string
	Raw         json.RawMessage
}

// PaypalTransmission carries the five PayPal-* headers required by the
// verify-webhook-signature endpoint. All five must be present for an event
// to even be submitted for verification.

type PaypalTransmission struct {
	TransmissionID   string
	TransmissionTime string
	CertURL          string
	AuthAlgo         string
	TransmissionSig  string
}

// Complete reports whether every required transmission header is present.
func (t PaypalTransmission) Complete() bool {
	return t.TransmissionID != "" &&
		t.TransmissionTime != "" &&
		t.CertURL != "" &&
		t.AuthAlgo != "" &&
		t.TransmissionSig != ""
}

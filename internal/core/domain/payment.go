package domain

import (
	"math"
	"strconv"
)

// PayoutSpeed is the delivery tier for settling funds to a vendor.
type PayoutSpeed string

const (
	PayoutSpeedStandard PayoutSpeed = "standard"
	PayoutSpeedInstant  PayoutSpeed = "instant"
)

// Known reports whether the payout speed is recognized.
func (p PayoutSpeed) Known() bool {
	return p == PayoutSpeedStandard || p == PayoutSpeedInstant
}

// FeeQuote is the result of fee calculation. All amounts are minor units.
// Valid is false when the input did not parse as a positive amount; the
// quote is then the safe zero quote and the UI renders a neutral fee row.
type FeeQuote struct {
	Amount int64   `json:"amount"`
	Fee    int64   `json:"fee"`
	Total  int64   `json:"total"`
	Rate   float64 `json:"rate"`
	Valid  bool    `json:"valid"`
}

// ParseAmount converts operator-entered text into minor units. It returns
// ok=false for non-numeric, non-finite or non-positive input, and for
// amounts too large to represent as int64 minor units.
func ParseAmount(s string) (int64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, false
	}
	minor := math.Round(v * 100)
	if minor >= float64(math.MaxInt64) {
		return 0, false
	}
	return int64(minor), true
}

// FlowState is the payment orchestration state within one session.
type FlowState string

const (
	FlowStateIdle        FlowState = "IDLE"
	FlowStateConfiguring FlowState = "CONFIGURING"
	// FlowStateAwaitingAuthorization covers the in-flight create-intent call.
	FlowStateAwaitingAuthorization FlowState = "AWAITING_AUTHORIZATION"
	FlowStateConfirming            FlowState = "CONFIRMING"
	FlowStateSucceeded             FlowState = "SUCCEEDED"
	// FlowStateFailed is retryable: the form survives, the client secret does not.
	FlowStateFailed FlowState = "FAILED"
)

// CardDetails is the raw card input captured by the confirmation surface.
// It is handed to the card gateway only and must never reach the backend.
type CardDetails struct {
	Number     string `json:"number"`
	ExpMonth   int    `json:"exp_month"`
	ExpYear    int    `json:"exp_year"`
	CVC        string `json:"cvc"`
	HolderName string `json:"holder_name"`
}

// FlowSnapshot is a read-only view of a session's payment flow for rendering.
// The client secret is deliberately absent.
type FlowSnapshot struct {
	State       FlowState   `json:"state"`
	VendorID    string      `json:"vendor_id,omitempty"`
	VendorName  string      `json:"vendor_name,omitempty"`
	Description string      `json:"description,omitempty"`
	PayoutSpeed PayoutSpeed `json:"payout_speed,omitempty"`
	Quote       FeeQuote    `json:"quote"`
	LastError   string      `json:"last_error,omitempty"`
}

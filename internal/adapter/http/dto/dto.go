package dto

import "github.com/Gigabyte00/flowpay-dashboard/internal/core/domain"

// SignInRequest is the request body for session creation. Token is the
// backend-issued bearer token obtained out-of-band.
type SignInRequest struct {
	Token string `json:"token" binding:"required"`
}

// SignInResponse is the response body for a created session.
type SignInResponse struct {
	SessionToken string `json:"session_token"`
	DisplayName  string `json:"display_name"`
}

// CreateVendorRequest is the request body for vendor registration.
type CreateVendorRequest struct {
	Name         string `json:"name" binding:"required,min=1,max=100"`
	Email        string `json:"email" binding:"required,email"`
	Type         string `json:"type" binding:"required"`
	BusinessType string `json:"businessType" binding:"required"`
}

// VendorCreatedResponse pairs the new vendor with the optional external
// account-setup URL. An empty URL means no onboarding step is outstanding.
type VendorCreatedResponse struct {
	Vendor        domain.Vendor `json:"vendor"`
	OnboardingURL string        `json:"onboardingUrl,omitempty"`
}

// DashboardURLResponse carries a fresh single-use vendor dashboard URL.
type DashboardURLResponse struct {
	URL string `json:"url"`
}

// PaymentIntentRequest is the request body for payment submission. Amount
// is the raw operator input, parsed server-side.
type PaymentIntentRequest struct {
	VendorID    string `json:"vendorId" binding:"required,safe_id"`
	Amount      string `json:"amount" binding:"required"`
	Description string `json:"description" binding:"max=500"`
	PayoutSpeed string `json:"payoutSpeed"`
}

// ConfirmPaymentRequest is the request body for card confirmation. The card
// fields pass straight through to the gateway.
type ConfirmPaymentRequest struct {
	Card CardInput `json:"card" binding:"required"`
}

// CardInput is the raw card entry from the confirmation surface.
type CardInput struct {
	Number     string `json:"number" binding:"required"`
	ExpMonth   int    `json:"exp_month" binding:"required,min=1,max=12"`
	ExpYear    int    `json:"exp_year" binding:"required"`
	CVC        string `json:"cvc" binding:"required"`
	HolderName string `json:"holder_name"`
}

// UpdateProfileRequest is the request body for a display-name change.
type UpdateProfileRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

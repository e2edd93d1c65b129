package ports

import (
	"context"

	"github.com/Gigabyte00/flowpay-dashboard/internal/core/domain"
)

//go:generate mockgen -source=clients.go -destination=mocks/clients.go -package=mocks

// BackendClient is the typed contract with the FlowPay backend API. Every
// method takes the session's bearer token; a success:false envelope from the
// backend surfaces as an UPS error, transport trouble as a NET error.
type BackendClient interface {
	// GetProfile fetches the signed-in user's profile; also used to verify
	// a bearer token at sign-in.
	GetProfile(ctx context.Context, token string) (*UserProfile, error)
	// DashboardStats fetches the backend-computed account aggregates.
	DashboardStats(ctx context.Context, token string) (*domain.DashboardStats, error)
	// UpdateProfile changes the user's display name.
	UpdateProfile(ctx context.Context, token string, name string) error

	// ListVendors fetches all vendor records for the account.
	ListVendors(ctx context.Context, token string) ([]domain.Vendor, error)
	// CreateVendor registers a vendor; the returned URL (possibly empty)
	// points at the external account-setup destination.
	CreateVendor(ctx context.Context, token string, req CreateVendorRequest) (*domain.Vendor, string, error)
	// VendorStatus re-reads one vendor, picking up out-of-band onboarding
	// state flips.
	VendorStatus(ctx context.Context, token string, vendorID string) (*domain.Vendor, error)
	// VendorDashboardURL requests a fresh, single-use dashboard URL for an
	// onboarded vendor. Never cache the result.
	VendorDashboardURL(ctx context.Context, token string, vendorID string) (string, error)

	// CreatePaymentIntent reserves a charge and returns the client secret
	// authorizing exactly one confirmation attempt.
	CreatePaymentIntent(ctx context.Context, token string, req CreateIntentRequest) (string, error)
	// ListTransactions fetches one page of the ledger. Returns the items
	// and the total page count.
	ListTransactions(ctx context.Context, token string, params TransactionListParams) ([]domain.Transaction, int, error)
}

// UserProfile is the backend's view of the signed-in user.
type UserProfile struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CreateVendorRequest holds validated input for vendor registration.
type CreateVendorRequest struct {
	Name      string                `json:"name"`
	Email     string                `json:"email"`
	Category  domain.VendorCategory `json:"type"`
	LegalForm domain.LegalForm      `json:"businessType"`
}

// CreateIntentRequest holds validated input for payment authorization.
// Amount is minor units.
type CreateIntentRequest struct {
	Amount      int64              `json:"amount"`
	VendorID    string             `json:"vendorId"`
	Description string             `json:"description"`
	PayoutSpeed domain.PayoutSpeed `json:"payoutSpeed"`
}

// TransactionListParams holds pagination + filter for the ledger view.
type TransactionListParams struct {
	Page     int
	PageSize int
	Status   *domain.TransactionStatus
}

// CardConfirmer is the external card-confirmation mechanism. It receives
// the client secret plus raw card input and resolves the authorization.
// Raw card data goes here and nowhere else.
type CardConfirmer interface {
	// Confirm returns nil when the gateway reports succeeded, a CARD error
	// on explicit rejection and a NET error on transport failure.
	Confirm(ctx context.Context, clientSecret string, card domain.CardDetails) error
}

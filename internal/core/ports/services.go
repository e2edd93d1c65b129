package ports

import (
	"context"
	"time"

	"github.com/Gigabyte00/flowpay-dashboard/internal/core/domain"

	"github.com/google/uuid"
)

//go:generate mockgen -source=services.go -destination=mocks/services.go -package=mocks

// FeeQuoter turns a requested amount into a platform fee and total charge.
// Pure: same input, same quote, every call.
type FeeQuoter interface {
	// Quote parses the operator-entered amount and prices it for the given
	// payout speed. Unparseable or non-positive input yields the zero quote.
	Quote(amount string, speed domain.PayoutSpeed) domain.FeeQuote
	// Rate returns the fee rate for a payout speed. Unknown speeds price
	// as standard.
	Rate(speed domain.PayoutSpeed) float64
}

// VendorService is the vendor directory plus the onboarding orchestrator.
type VendorService interface {
	// Refresh reloads the directory from the backend.
	Refresh(ctx context.Context, sess *domain.Session) ([]domain.Vendor, error)
	// Vendors returns the current in-memory projection, optionally filtered
	// to payable (onboarded) vendors and by a text query.
	Vendors(sess *domain.Session, payableOnly bool, query string) []domain.Vendor
	// CreateVendor validates locally, registers the vendor with the backend
	// and prepends the pending record to the directory. The returned URL,
	// when non-empty, is the external account-setup destination; declining
	// to visit it is not an error.
	CreateVendor(ctx context.Context, sess *domain.Session, req CreateVendorRequest) (*domain.Vendor, string, error)
	// OnboardingDashboardURL returns a fresh single-use dashboard URL.
	// Guarded: the vendor must be onboarded.
	OnboardingDashboardURL(ctx context.Context, sess *domain.Session, vendorID string) (string, error)
	// RefreshVendor reconciles one vendor's onboarding state with the
	// backend.
	RefreshVendor(ctx context.Context, sess *domain.Session, vendorID string) (*domain.Vendor, error)
	// Forget drops a session's directory projection. Called at sign-out.
	Forget(sessionID uuid.UUID)
}

// PaymentOrchestrator drives one payment flow per session through
// Configuring -> AwaitingAuthorization -> Confirming -> Succeeded/Failed.
type PaymentOrchestrator interface {
	// CreateIntent validates the request, reserves a charge with the
	// backend and moves the session's flow to Confirming.
	CreateIntent(ctx context.Context, sess *domain.Session, req PaymentRequest) (*domain.FlowSnapshot, error)
	// Confirm hands the stored client secret plus card details to the card
	// gateway. At most once per client secret.
	Confirm(ctx context.Context, sess *domain.Session, card domain.CardDetails) (*domain.FlowSnapshot, error)
	// Abandon drops the session's flow without cancelling the intent
	// server-side.
	Abandon(sess *domain.Session)
	// Flow returns a read-only snapshot of the session's flow.
	Flow(sess *domain.Session) *domain.FlowSnapshot
}

// PaymentRequest is the operator's transient payment form, as submitted.
// Amount is the raw operator input; it is parsed, not trusted.
type PaymentRequest struct {
	VendorID    string
	Amount      string
	Description string
	PayoutSpeed domain.PayoutSpeed
}

// LedgerService is the read-only transaction projection.
type LedgerService interface {
	// ListTransactions fetches one page from the backend and optionally
	// applies the current-page text search.
	ListTransactions(ctx context.Context, sess *domain.Session, params LedgerParams) (*LedgerPage, error)
}

// LedgerParams holds pagination, status filter and the page-local query.
type LedgerParams struct {
	Page     int
	PageSize int
	Status   *domain.TransactionStatus
	Query    string
}

// LedgerPage is one rendered page of the ledger.
type LedgerPage struct {
	Items      []LedgerItem `json:"items"`
	Page       int          `json:"page"`
	TotalPages int          `json:"total_pages"`
}

// LedgerItem pairs a transaction with its presentation.
type LedgerItem struct {
	Transaction  domain.Transaction        `json:"transaction"`
	Presentation domain.StatusPresentation `json:"presentation"`
}

// AccountService covers the dashboard aggregates and profile editing.
type AccountService interface {
	DashboardStats(ctx context.Context, sess *domain.Session) (*domain.DashboardStats, error)
	UpdateProfile(ctx context.Context, sess *domain.Session, name string) error
}

// SessionService owns the session lifecycle: init on sign-in, teardown on
// sign-out.
type SessionService interface {
	// SignIn verifies the backend bearer token, creates a session and
	// returns its signed token.
	SignIn(ctx context.Context, backendToken string) (*domain.Session, string, error)
	// Resolve validates a session token and loads the session.
	Resolve(ctx context.Context, sessionToken string) (*domain.Session, error)
	// SignOut deletes the session.
	SignOut(ctx context.Context, sess *domain.Session) error
}

// TokenService signs and validates session tokens.
type TokenService interface {
	Generate(sessionID uuid.UUID) (string, time.Time, error)
	Validate(tokenString string) (uuid.UUID, error)
}

package domain

import "time"

// TransactionStatus is the lifecycle state of a transaction as reported by
// the backend. This core never writes transactions; it only renders them.
type TransactionStatus string

const (
	TransactionStatusPending    TransactionStatus = "Pending"
	TransactionStatusProcessing TransactionStatus = "Processing"
	TransactionStatusCompleted  TransactionStatus = "Completed"
	TransactionStatusFailed     TransactionStatus = "Failed"
	TransactionStatusCancelled  TransactionStatus = "Cancelled"
)

// IsTerminal returns true if the transaction can no longer change state.
func (s TransactionStatus) IsTerminal() bool {
	return s == TransactionStatusCompleted ||
		s == TransactionStatusFailed ||
		s == TransactionStatusCancelled
}

// VendorRef is the vendor snapshot embedded in a transaction record.
type VendorRef struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Category VendorCategory `json:"type"`
}

// Transaction is the backend-owned record of a completed or in-flight
// payment. Amount and Fee are in minor units.
type Transaction struct {
	ID                string            `json:"id"`
	Date              time.Time         `json:"date"`
	Merchant          string            `json:"merchant"`
	Amount            int64             `json:"amount"`
	Fee               int64             `json:"fee"`
	Status            TransactionStatus `json:"status"`
	Method            string            `json:"method"`
	GatewayPaymentID  string            `json:"stripe_payment_id"`
	GatewayTransferID *string           `json:"stripe_transfer_id,omitempty"`
	Description       *string           `json:"description,omitempty"`
	Vendor            *VendorRef        `json:"vendor,omitempty"`
}

// StatusMarker is the presentation marker class for a transaction status.
type StatusMarker string

const (
	MarkerSuccess  StatusMarker = "success"
	MarkerProgress StatusMarker = "progress"
	MarkerFailure  StatusMarker = "failure"
	MarkerUnknown  StatusMarker = "unknown"
)

// StatusPresentation is how a status renders: a marker plus a color tone.
type StatusPresentation struct {
	Marker StatusMarker `json:"marker"`
	Tone   string       `json:"tone"`
}

// PresentStatus maps a transaction status to its presentation. The mapping
// is total: an unrecognized status renders as unknown rather than failing.
func PresentStatus(s TransactionStatus) StatusPresentation {
	switch s {
	case TransactionStatusCompleted:
		return StatusPresentation{Marker: MarkerSuccess, Tone: "green"}
	case TransactionStatusPending, TransactionStatusProcessing:
		return StatusPresentation{Marker: MarkerProgress, Tone: "amber"}
	case TransactionStatusFailed, TransactionStatusCancelled:
		return StatusPresentation{Marker: MarkerFailure, Tone: "red"}
	default:
		return StatusPresentation{Marker: MarkerUnknown, Tone: "gray"}
	}
}

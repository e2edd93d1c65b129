package domain

import (
	"time"

	"github.com/google/uuid"
)

// Session is the explicit per-operator context created at sign-in and torn
// down at sign-out. It is passed to every component that needs it; nothing
// in this codebase reads session state from globals.
type Session struct {
	ID           uuid.UUID `json:"id"`
	BackendToken string    `json:"-"` // bearer token for the backend API
	DisplayName  string    `json:"display_name"`
	CreatedAt    time.Time `json:"created_at"`
}

// DashboardStats are the backend-computed account aggregates shown on the
// dashboard landing view. Monetary values are minor units.
type DashboardStats struct {
	TotalPayments         int64 `json:"totalPayments"`
	MonthlyPayments       int64 `json:"monthlyPayments"`
	ActiveVendors         int   `json:"activeVendors"`
	CompletedTransactions int   `json:"completedTransactions"`
}

package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Local Validation (VAL) ----
// Caught before any network call; surfaced inline, never logged remotely.

// Validation returns a generic local validation error.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}

func ErrMissingField(field string) *AppError {
	return New("VAL_002", fmt.Sprintf("%s is required", field), http.StatusBadRequest)
}

func ErrInvalidAmount() *AppError {
	return New("VAL_003", "Amount must be a positive number", http.StatusBadRequest)
}

func ErrVendorNotPayable() *AppError {
	return New("VAL_004", "Vendor has not completed onboarding", http.StatusBadRequest)
}

func ErrNotFound(entity string) *AppError {
	return New("VAL_005", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ---- Payment Flow State (FLOW) ----

func ErrFlowState(message string) *AppError {
	return New("FLOW_001", message, http.StatusConflict)
}

// ErrRequestInFlight signals a duplicable call while one is already pending.
func ErrRequestInFlight() *AppError {
	return New("FLOW_002", "A request is already in progress", http.StatusConflict)
}

func ErrSecretConsumed() *AppError {
	return New("FLOW_003", "This payment authorization has already been used", http.StatusConflict)
}

// ---- Backend-Reported (UPS) ----
// The backend answered with success:false; the flow returns to its
// pre-call state and the message is surfaced verbatim.

func Upstream(message string) *AppError {
	if message == "" {
		message = "Request failed"
	}
	return New("UPS_001", message, http.StatusBadGateway)
}

// ---- Network / Transport (NET) ----

// Network maps transport failures and malformed responses to the generic
// retryable network error.
func Network(err error) *AppError {
	return Wrap("NET_001", "Network error", http.StatusBadGateway, err)
}

// ---- Card Gateway (CARD) ----

// CardDeclined carries the gateway-provided message. The client secret is
// discarded by the orchestrator before this is surfaced.
func CardDeclined(message string) *AppError {
	if message == "" {
		message = "Payment failed"
	}
	return New("CARD_001", message, http.StatusPaymentRequired)
}

// ---- Session (SES) ----

func ErrInvalidSession() *AppError {
	return New("SES_001", "Invalid or expired session", http.StatusUnauthorized)
}

// ---- System (SYS) ----

func ErrRateLimitExceeded() *AppError {
	return New("SYS_002", "Too many requests, please try again later", http.StatusTooManyRequests)
}

// InternalError wraps an unexpected internal error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/Gigabyte00/flowpay-dashboard/internal/core/domain"
	"github.com/Gigabyte00/flowpay-dashboard/internal/core/ports"
	"github.com/Gigabyte00/flowpay-dashboard/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// flightTTL caps how long a single-flight claim can outlive a crashed
// request before the key expires on its own.
const flightTTL = 30 * time.Second

// flowRecord is the per-session payment flow. The client secret lives here
// and nowhere else; snapshots never carry it.
type flowRecord struct {
	state        domain.FlowState
	vendorID     string
	vendorName   string
	description  string
	speed        domain.PayoutSpeed
	quote        domain.FeeQuote
	clientSecret string
	consumed     bool
	lastError    string
}

// PaymentOrchestratorImpl implements ports.PaymentOrchestrator: one payment
// flow per session, driven Idle -> Configuring -> AwaitingAuthorization ->
// Confirming -> Succeeded/Failed. Failure is retryable; the form survives,
// the client secret does not.
type PaymentOrchestratorImpl struct {
	backend ports.BackendClient
	cards   ports.CardConfirmer
	quoter  ports.FeeQuoter
	vendors ports.VendorService
	guard   ports.FlightGuard
	log     zerolog.Logger

	mu    sync.Mutex
	flows map[uuid.UUID]*flowRecord
}

// NewPaymentOrchestrator creates a new PaymentOrchestratorImpl.
func NewPaymentOrchestrator(
	backend ports.BackendClient,
	cards ports.CardConfirmer,
	quoter ports.FeeQuoter,
	vendors ports.VendorService,
	guard ports.FlightGuard,
	log zerolog.Logger,
) *PaymentOrchestratorImpl {
	return &PaymentOrchestratorImpl{
		backend: backend,
		cards:   cards,
		quoter:  quoter,
		vendors: vendors,
		guard:   guard,
		log:     log,
		flows:   make(map[uuid.UUID]*flowRecord),
	}
}

// CreateIntent validates the request locally, reserves a charge with the
// backend and moves the flow to Confirming. Validation failures never reach
// the network; backend failures return the flow to Configuring with the
// form intact and no secret stored.
func (s *PaymentOrchestratorImpl) CreateIntent(ctx context.Context, sess *domain.Session, req ports.PaymentRequest) (*domain.FlowSnapshot, error) {
	if strings.TrimSpace(req.VendorID) == "" {
		return nil, apperror.ErrMissingField("vendorId")
	}
	quote := s.quoter.Quote(req.Amount, req.PayoutSpeed)
	if !quote.Valid {
		return nil, apperror.ErrInvalidAmount()
	}

	vendor, err := s.payableVendor(ctx, sess, req.VendorID)
	if err != nil {
		return nil, err
	}

	description := strings.TrimSpace(req.Description)
	if description == "" {
		description = "Payment to " + vendor.Name
	}

	// Single-flight: one create-intent call per session at a time. A guard
	// outage degrades to the in-process state check rather than blocking
	// payments.
	key := "intent:" + sess.ID.String()
	acquired, err := s.guard.Acquire(ctx, key, flightTTL)
	if err != nil {
		s.log.Warn().Err(err).Msg("flight guard unavailable, relying on local state")
	} else if !acquired {
		return nil, apperror.ErrRequestInFlight()
	} else {
		defer func() {
			if rerr := s.guard.Release(context.WithoutCancel(ctx), key); rerr != nil {
				s.log.Warn().Err(rerr).Msg("flight guard release failed")
			}
		}()
	}

	s.mu.Lock()
	flow := s.flow(sess.ID)
	if flow.state == domain.FlowStateAwaitingAuthorization {
		s.mu.Unlock()
		return nil, apperror.ErrRequestInFlight()
	}
	// Any prior secret is abandoned, never reused.
	*flow = flowRecord{
		state:       domain.FlowStateAwaitingAuthorization,
		vendorID:    vendor.ID,
		vendorName:  vendor.Name,
		description: description,
		speed:       req.PayoutSpeed,
		quote:       quote,
	}
	s.mu.Unlock()

	secret, err := s.backend.CreatePaymentIntent(ctx, sess.BackendToken, ports.CreateIntentRequest{
		Amount:      quote.Amount,
		VendorID:    vendor.ID,
		Description: description,
		PayoutSpeed: req.PayoutSpeed,
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		flow.state = domain.FlowStateConfiguring
		flow.clientSecret = ""
		flow.lastError = errorMessage(err)
		snap := snapshot(flow)
		return &snap, err
	}

	flow.state = domain.FlowStateConfirming
	flow.clientSecret = secret
	flow.consumed = false
	flow.lastError = ""

	s.log.Info().
		Str("session_id", sess.ID.String()).
		Str("vendor_id", vendor.ID).
		Int64("amount", quote.Amount).
		Msg("payment intent created")

	snap := snapshot(flow)
	return &snap, nil
}

// Confirm hands the stored client secret plus card details to the card
// gateway, at most once per secret. A gateway rejection discards the secret
// and fails the flow; a transport failure keeps the secret for retry; a
// success resets the flow so a new cycle starts from Idle.
func (s *PaymentOrchestratorImpl) Confirm(ctx context.Context, sess *domain.Session, card domain.CardDetails) (*domain.FlowSnapshot, error) {
	if strings.TrimSpace(card.Number) == "" {
		return nil, apperror.ErrMissingField("card number")
	}
	if strings.TrimSpace(card.CVC) == "" {
		return nil, apperror.ErrMissingField("cvc")
	}

	key := "confirm:" + sess.ID.String()
	acquired, err := s.guard.Acquire(ctx, key, flightTTL)
	if err != nil {
		s.log.Warn().Err(err).Msg("flight guard unavailable, relying on local state")
	} else if !acquired {
		return nil, apperror.ErrRequestInFlight()
	} else {
		defer func() {
			if rerr := s.guard.Release(context.WithoutCancel(ctx), key); rerr != nil {
				s.log.Warn().Err(rerr).Msg("flight guard release failed")
			}
		}()
	}

	s.mu.Lock()
	flow := s.flow(sess.ID)
	switch {
	case flow.state == domain.FlowStateConfirming && flow.consumed:
		s.mu.Unlock()
		return nil, apperror.ErrSecretConsumed()
	case flow.state != domain.FlowStateConfirming || flow.clientSecret == "":
		s.mu.Unlock()
		return nil, apperror.ErrFlowState("No payment awaiting confirmation")
	}
	secret := flow.clientSecret
	flow.consumed = true
	s.mu.Unlock()

	confirmErr := s.cards.Confirm(ctx, secret, card)

	s.mu.Lock()
	defer s.mu.Unlock()
	switch {
	case confirmErr == nil:
		// Terminal success: the whole form resets.
		*flow = flowRecord{state: domain.FlowStateIdle}
		s.log.Info().Str("session_id", sess.ID.String()).Msg("payment confirmed")
		snap := domain.FlowSnapshot{State: domain.FlowStateSucceeded}
		return &snap, nil

	case isNetwork(confirmErr):
		// Transport trouble: the attempt may not have reached the gateway.
		// Keep the secret and let the operator retry.
		flow.consumed = false
		flow.lastError = errorMessage(confirmErr)
		snap := snapshot(flow)
		return &snap, confirmErr

	default:
		// Explicit rejection: secret discarded, form kept for a fresh
		// request.
		flow.state = domain.FlowStateFailed
		flow.clientSecret = ""
		flow.lastError = errorMessage(confirmErr)
		s.log.Info().
			Str("session_id", sess.ID.String()).
			Str("reason", flow.lastError).
			Msg("payment declined")
		snap := snapshot(flow)
		return &snap, confirmErr
	}
}

// Abandon drops the session's flow without cancelling the intent
// server-side; any backend-side expiry is the backend's business.
func (s *PaymentOrchestratorImpl) Abandon(sess *domain.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.flows, sess.ID)
}

// Flow returns a read-only snapshot of the session's flow.
func (s *PaymentOrchestratorImpl) Flow(sess *domain.Session) *domain.FlowSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := snapshot(s.flow(sess.ID))
	return &snap
}

// flow returns the session's record, creating the Idle one on first touch.
// Caller holds s.mu.
func (s *PaymentOrchestratorImpl) flow(sessionID uuid.UUID) *flowRecord {
	f, ok := s.flows[sessionID]
	if !ok {
		f = &flowRecord{state: domain.FlowStateIdle}
		s.flows[sessionID] = f
	}
	return f
}

// payableVendor resolves the vendor locally, loading the directory once if
// this session has not touched it yet.
func (s *PaymentOrchestratorImpl) payableVendor(ctx context.Context, sess *domain.Session, vendorID string) (*domain.Vendor, error) {
	dir := s.vendors.Vendors(sess, false, "")
	if len(dir) == 0 {
		var err error
		dir, err = s.vendors.Refresh(ctx, sess)
		if err != nil {
			return nil, err
		}
	}
	for i := range dir {
		if dir[i].ID == vendorID {
			if !dir[i].Payable() {
				return nil, apperror.ErrVendorNotPayable()
			}
			return &dir[i], nil
		}
	}
	return nil, apperror.ErrNotFound("Vendor")
}

func snapshot(f *flowRecord) domain.FlowSnapshot {
	return domain.FlowSnapshot{
		State:       f.state,
		VendorID:    f.vendorID,
		VendorName:  f.vendorName,
		Description: f.description,
		PayoutSpeed: f.speed,
		Quote:       f.quote,
		LastError:   f.lastError,
	}
}

func errorMessage(err error) string {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "Internal server error"
}

func isNetwork(err error) bool {
	var appErr *apperror.AppError
	return errors.As(err, &appErr) && appErr.Code == "NET_001"
}

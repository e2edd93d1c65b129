package service

import (
	"context"
	"strings"
	"sync"

	"github.com/Gigabyte00/flowpay-dashboard/internal/core/domain"
	"github.com/Gigabyte00/flowpay-dashboard/internal/core/ports"
	"github.com/Gigabyte00/flowpay-dashboard/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// VendorServiceImpl implements ports.VendorService. Each session holds its
// own directory projection, refreshed from the backend on demand; onboarding
// state flips happen out-of-band and are reconciled via RefreshVendor.
type VendorServiceImpl struct {
	backend ports.BackendClient
	log     zerolog.Logger

	mu   sync.RWMutex
	dirs map[uuid.UUID][]domain.Vendor
}

// NewVendorService creates a new VendorServiceImpl.
func NewVendorService(backend ports.BackendClient, log zerolog.Logger) *VendorServiceImpl {
	return &VendorServiceImpl{
		backend: backend,
		log:     log,
		dirs:    make(map[uuid.UUID][]domain.Vendor),
	}
}

// Refresh reloads the session's directory from the backend.
func (s *VendorServiceImpl) Refresh(ctx context.Context, sess *domain.Session) ([]domain.Vendor, error) {
	vendors, err := s.backend.ListVendors(ctx, sess.BackendToken)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.dirs[sess.ID] = vendors
	s.mu.Unlock()

	return s.Vendors(sess, false, ""), nil
}

// Vendors returns the current projection, optionally restricted to payable
// vendors and filtered by a case-insensitive match on name, category or
// email.
func (s *VendorServiceImpl) Vendors(sess *domain.Session, payableOnly bool, query string) []domain.Vendor {
	s.mu.RLock()
	dir := s.dirs[sess.ID]
	s.mu.RUnlock()

	query = strings.ToLower(strings.TrimSpace(query))
	out := make([]domain.Vendor, 0, len(dir))
	for _, v := range dir {
		if payableOnly && !v.Payable() {
			continue
		}
		if query != "" && !vendorMatches(v, query) {
			continue
		}
		out = append(out, v)
	}
	return out
}

func vendorMatches(v domain.Vendor, query string) bool {
	return strings.Contains(strings.ToLower(v.Name), query) ||
		strings.Contains(strings.ToLower(string(v.Category)), query) ||
		strings.Contains(strings.ToLower(v.Email), query)
}

// CreateVendor validates locally, registers the vendor with the backend and
// prepends the pending record to the directory. A non-empty returned URL is
// the external account-setup destination; the operator may decline to visit
// it and resume onboarding later.
func (s *VendorServiceImpl) CreateVendor(ctx context.Context, sess *domain.Session, req ports.CreateVendorRequest) (*domain.Vendor, string, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, "", apperror.ErrMissingField("name")
	}
	if strings.TrimSpace(req.Email) == "" {
		return nil, "", apperror.ErrMissingField("email")
	}
	if !req.Category.Known() {
		return nil, "", apperror.Validation("Unknown vendor category")
	}
	if !req.LegalForm.Known() {
		return nil, "", apperror.Validation("Unknown business type")
	}

	vendor, onboardingURL, err := s.backend.CreateVendor(ctx, sess.BackendToken, req)
	if err != nil {
		return nil, "", err
	}

	s.mu.Lock()
	s.dirs[sess.ID] = append([]domain.Vendor{*vendor}, s.dirs[sess.ID]...)
	s.mu.Unlock()

	s.log.Info().
		Str("session_id", sess.ID.String()).
		Str("vendor_id", vendor.ID).
		Bool("needs_onboarding", onboardingURL != "").
		Msg("vendor created")

	return vendor, onboardingURL, nil
}

// OnboardingDashboardURL requests a fresh single-use dashboard URL. Guarded:
// the vendor must exist in the directory and be onboarded. The URL is never
// cached.
func (s *VendorServiceImpl) OnboardingDashboardURL(ctx context.Context, sess *domain.Session, vendorID string) (string, error) {
	vendor := s.find(sess.ID, vendorID)
	if vendor == nil {
		return "", apperror.ErrNotFound("Vendor")
	}
	if !vendor.Payable() {
		return "", apperror.ErrVendorNotPayable()
	}
	return s.backend.VendorDashboardURL(ctx, sess.BackendToken, vendorID)
}

// RefreshVendor reconciles one vendor's record with the backend, picking up
// onboarding flips driven by the external account-setup flow.
func (s *VendorServiceImpl) RefreshVendor(ctx context.Context, sess *domain.Session, vendorID string) (*domain.Vendor, error) {
	vendor, err := s.backend.VendorStatus(ctx, sess.BackendToken, vendorID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	dir := s.dirs[sess.ID]
	replaced := false
	for i := range dir {
		if dir[i].ID == vendor.ID {
			dir[i] = *vendor
			replaced = true
			break
		}
	}
	if !replaced {
		s.dirs[sess.ID] = append([]domain.Vendor{*vendor}, dir...)
	}
	s.mu.Unlock()

	return vendor, nil
}

// Forget drops a session's directory projection. Called at sign-out.
func (s *VendorServiceImpl) Forget(sessionID uuid.UUID) {
	s.mu.Lock()
	delete(s.dirs, sessionID)
	s.mu.Unlock()
}

func (s *VendorServiceImpl) find(sessionID uuid.UUID, vendorID string) *domain.Vendor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.dirs[sessionID] {
		if s.dirs[sessionID][i].ID == vendorID {
			v := s.dirs[sessionID][i]
			return &v
		}
	}
	return nil
}

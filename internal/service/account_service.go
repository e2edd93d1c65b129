package service

import (
	"context"
	"strings"

	"github.com/Gigabyte00/flowpay-dashboard/internal/core/domain"
	"github.com/Gigabyte00/flowpay-dashboard/internal/core/ports"
	"github.com/Gigabyte00/flowpay-dashboard/pkg/apperror"

	"github.com/rs/zerolog"
)

// AccountServiceImpl implements ports.AccountService.
type AccountServiceImpl struct {
	backend ports.BackendClient
	log     zerolog.Logger
}

// NewAccountService creates a new AccountServiceImpl.
func NewAccountService(backend ports.BackendClient, log zerolog.Logger) *AccountServiceImpl {
	return &AccountServiceImpl{backend: backend, log: log}
}

// DashboardStats fetches the backend-computed account aggregates.
func (s *AccountServiceImpl) DashboardStats(ctx context.Context, sess *domain.Session) (*domain.DashboardStats, error) {
	return s.backend.DashboardStats(ctx, sess.BackendToken)
}

// UpdateProfile changes the user's display name. The session's copy is
// updated by the caller once the backend accepts the change.
func (s *AccountServiceImpl) UpdateProfile(ctx context.Context, sess *domain.Session, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return apperror.ErrMissingField("name")
	}
	if err := s.backend.UpdateProfile(ctx, sess.BackendToken, name); err != nil {
		return err
	}
	s.log.Info().Str("session_id", sess.ID.String()).Msg("profile updated")
	return nil
}

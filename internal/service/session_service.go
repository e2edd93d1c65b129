package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Gigabyte00/flowpay-dashboard/internal/core/domain"
	"github.com/Gigabyte00/flowpay-dashboard/internal/core/ports"
	"github.com/Gigabyte00/flowpay-dashboard/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// SessionServiceImpl implements ports.SessionService. A session is created
// by verifying the backend bearer token once, then lives in the session
// store until sign-out or expiry.
type SessionServiceImpl struct {
	backend ports.BackendClient
	store   ports.SessionStore
	tokens  ports.TokenService
	ttl     time.Duration
	log     zerolog.Logger
}

// NewSessionService creates a new SessionServiceImpl.
func NewSessionService(
	backend ports.BackendClient,
	store ports.SessionStore,
	tokens ports.TokenService,
	ttl time.Duration,
	log zerolog.Logger,
) *SessionServiceImpl {
	return &SessionServiceImpl{
		backend: backend,
		store:   store,
		tokens:  tokens,
		ttl:     ttl,
		log:     log,
	}
}

// SignIn verifies the backend token by fetching the profile, then creates
// and stores the session and returns its signed token.
func (s *SessionServiceImpl) SignIn(ctx context.Context, backendToken string) (*domain.Session, string, error) {
	if backendToken == "" {
		return nil, "", apperror.ErrMissingField("token")
	}

	profile, err := s.backend.GetProfile(ctx, backendToken)
	if err != nil {
		return nil, "", err
	}

	sess := &domain.Session{
		ID:           uuid.New(),
		BackendToken: backendToken,
		DisplayName:  profile.Name,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.store.Save(ctx, sess, s.ttl); err != nil {
		return nil, "", apperror.InternalError(fmt.Errorf("saving session: %w", err))
	}

	token, _, err := s.tokens.Generate(sess.ID)
	if err != nil {
		return nil, "", apperror.InternalError(fmt.Errorf("generating session token: %w", err))
	}

	s.log.Info().Str("session_id", sess.ID.String()).Msg("session created")
	return sess, token, nil
}

// Resolve validates a session token and loads the session.
func (s *SessionServiceImpl) Resolve(ctx context.Context, sessionToken string) (*domain.Session, error) {
	id, err := s.tokens.Validate(sessionToken)
	if err != nil {
		return nil, apperror.ErrInvalidSession()
	}

	sess, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("loading session: %w", err))
	}
	if sess == nil {
		return nil, apperror.ErrInvalidSession()
	}
	return sess, nil
}

// SignOut deletes the session. The flow state held by other services keys
// off the session ID and becomes unreachable with it.
func (s *SessionServiceImpl) SignOut(ctx context.Context, sess *domain.Session) error {
	if err := s.store.Delete(ctx, sess.ID); err != nil {
		return apperror.InternalError(fmt.Errorf("deleting session: %w", err))
	}
	s.log.Info().Str("session_id", sess.ID.String()).Msg("session ended")
	return nil
}

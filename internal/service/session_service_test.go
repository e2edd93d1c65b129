package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Gigabyte00/flowpay-dashboard/internal/core/domain"
	"github.com/Gigabyte00/flowpay-dashboard/internal/core/ports"
	"github.com/Gigabyte00/flowpay-dashboard/internal/core/ports/mocks"
	"github.com/Gigabyte00/flowpay-dashboard/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newSessionService(ctrl *gomock.Controller) (*SessionServiceImpl, *mocks.MockBackendClient, *mocks.MockSessionStore, *mocks.MockTokenService) {
	backend := mocks.NewMockBackendClient(ctrl)
	store := mocks.NewMockSessionStore(ctrl)
	tokens := mocks.NewMockTokenService(ctrl)
	svc := NewSessionService(backend, store, tokens, time.Hour, zerolog.Nop())
	return svc, backend, store, tokens
}

func TestSessionService_SignIn_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, backend, store, tokens := newSessionService(ctrl)

	backend.EXPECT().GetProfile(gomock.Any(), "backend-tok").Return(&ports.UserProfile{
		ID:   "u-1",
		Name: "Ada Lovelace",
	}, nil)
	store.EXPECT().Save(gomock.Any(), gomock.Any(), time.Hour).Return(nil)
	tokens.EXPECT().Generate(gomock.Any()).Return("signed-token", time.Now().Add(time.Hour), nil)

	sess, token, err := svc.SignIn(context.Background(), "backend-tok")
	require.NoError(t, err)
	assert.Equal(t, "signed-token", token)
	assert.Equal(t, "Ada Lovelace", sess.DisplayName)
	assert.Equal(t, "backend-tok", sess.BackendToken)
	assert.NotEqual(t, uuid.Nil, sess.ID)
}

func TestSessionService_SignIn_EmptyToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, _, _, _ := newSessionService(ctrl)

	_, _, err := svc.SignIn(context.Background(), "")
	require.Error(t, err)
	appErr := &apperror.AppError{}
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VAL_002", appErr.Code)
}

func TestSessionService_SignIn_BadBackendToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, backend, _, _ := newSessionService(ctrl)

	backend.EXPECT().GetProfile(gomock.Any(), "bad-tok").Return(nil, apperror.Upstream("Invalid token"))

	_, _, err := svc.SignIn(context.Background(), "bad-tok")
	require.Error(t, err)
	appErr := &apperror.AppError{}
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "UPS_001", appErr.Code)
	assert.Equal(t, "Invalid token", appErr.Message)
}

func TestSessionService_Resolve_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, _, store, tokens := newSessionService(ctrl)

	id := uuid.New()
	stored := &domain.Session{ID: id, BackendToken: "tok", DisplayName: "Ada"}
	tokens.EXPECT().Validate("session-token").Return(id, nil)
	store.EXPECT().Get(gomock.Any(), id).Return(stored, nil)

	sess, err := svc.Resolve(context.Background(), "session-token")
	require.NoError(t, err)
	assert.Equal(t, stored, sess)
}

func TestSessionService_Resolve_BadToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, _, _, tokens := newSessionService(ctrl)

	tokens.EXPECT().Validate("garbage").Return(uuid.Nil, errors.New("parsing token"))

	_, err := svc.Resolve(context.Background(), "garbage")
	require.Error(t, err)
	appErr := &apperror.AppError{}
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "SES_001", appErr.Code)
}

func TestSessionService_Resolve_MissingSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, _, store, tokens := newSessionService(ctrl)

	id := uuid.New()
	tokens.EXPECT().Validate("session-token").Return(id, nil)
	store.EXPECT().Get(gomock.Any(), id).Return(nil, nil)

	_, err := svc.Resolve(context.Background(), "session-token")
	require.Error(t, err)
	appErr := &apperror.AppError{}
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "SES_001", appErr.Code, "expired session resolves to invalid session")
}

func TestSessionService_SignOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, _, store, _ := newSessionService(ctrl)

	sess := &domain.Session{ID: uuid.New()}
	store.EXPECT().Delete(gomock.Any(), sess.ID).Return(nil)

	assert.NoError(t, svc.SignOut(context.Background(), sess))
}

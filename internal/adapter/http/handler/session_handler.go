package handler

import (
	"github.com/Gigabyte00/flowpay-dashboard/internal/adapter/http/dto"
	"github.com/Gigabyte00/flowpay-dashboard/internal/adapter/http/middleware"
	"github.com/Gigabyte00/flowpay-dashboard/internal/core/ports"
	"github.com/Gigabyte00/flowpay-dashboard/pkg/apperror"
	"github.com/Gigabyte00/flowpay-dashboard/pkg/envelope"

	"github.com/gin-gonic/gin"
)

// SessionHandler handles sign-in and sign-out.
type SessionHandler struct {
	sessionSvc ports.SessionService
	vendorSvc  ports.VendorService
	paymentSvc ports.PaymentOrchestrator
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(sessionSvc ports.SessionService, vendorSvc ports.VendorService, paymentSvc ports.PaymentOrchestrator) *SessionHandler {
	return &SessionHandler{sessionSvc: sessionSvc, vendorSvc: vendorSvc, paymentSvc: paymentSvc}
}

// SignIn handles POST /api/v1/session.
func (h *SessionHandler) SignIn(c *gin.Context) {
	var req dto.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		envelope.Fail(c, apperror.Validation(err.Error()))
		return
	}

	sess, token, err := h.sessionSvc.SignIn(c.Request.Context(), req.Token)
	if err != nil {
		envelope.Fail(c, err)
		return
	}

	envelope.Created(c, dto.SignInResponse{
		SessionToken: token,
		DisplayName:  sess.DisplayName,
	})
}

// SignOut handles DELETE /api/v1/session. It tears the session down fully:
// the Redis record, the vendor directory projection and any pending payment
// flow all go.
func (h *SessionHandler) SignOut(c *gin.Context) {
	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		envelope.Fail(c, apperror.ErrInvalidSession())
		return
	}

	h.paymentSvc.Abandon(sess)
	h.vendorSvc.Forget(sess.ID)

	if err := h.sessionSvc.SignOut(c.Request.Context(), sess); err != nil {
		envelope.Fail(c, err)
		return
	}

	envelope.OK(c, gin.H{"signed_out": true})
}

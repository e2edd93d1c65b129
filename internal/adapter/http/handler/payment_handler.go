package handler

import (
	"github.com/Gigabyte00/flowpay-dashboard/internal/adapter/http/dto"
	"github.com/Gigabyte00/flowpay-dashboard/internal/adapter/http/middleware"
	"github.com/Gigabyte00/flowpay-dashboard/internal/core/domain"
	"github.com/Gigabyte00/flowpay-dashboard/internal/core/ports"
	"github.com/Gigabyte00/flowpay-dashboard/pkg/apperror"
	"github.com/Gigabyte00/flowpay-dashboard/pkg/envelope"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles the payment flow endpoints.
type PaymentHandler struct {
	paymentSvc ports.PaymentOrchestrator
	feeSvc     ports.FeeQuoter
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(paymentSvc ports.PaymentOrchestrator, feeSvc ports.FeeQuoter) *PaymentHandler {
	return &PaymentHandler{paymentSvc: paymentSvc, feeSvc: feeSvc}
}

// Quote handles GET /api/v1/payments/quote. Pricing is pure and total:
// unparseable input yields the zero quote, never an error.
func (h *PaymentHandler) Quote(c *gin.Context) {
	quote := h.feeSvc.Quote(c.Query("amount"), domain.PayoutSpeed(c.Query("speed")))
	envelope.OK(c, quote)
}

// CreateIntent handles POST /api/v1/payments/intent.
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		envelope.Fail(c, apperror.ErrInvalidSession())
		return
	}

	var req dto.PaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		envelope.Fail(c, apperror.Validation(err.Error()))
		return
	}

	snap, err := h.paymentSvc.CreateIntent(c.Request.Context(), sess, ports.PaymentRequest{
		VendorID:    req.VendorID,
		Amount:      req.Amount,
		Description: req.Description,
		PayoutSpeed: domain.PayoutSpeed(req.PayoutSpeed),
	})
	if err != nil {
		envelope.Fail(c, err)
		return
	}

	envelope.Created(c, snap)
}

// Confirm handles POST /api/v1/payments/confirm. The card details pass
// through to the gateway and are never logged or stored.
func (h *PaymentHandler) Confirm(c *gin.Context) {
	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		envelope.Fail(c, apperror.ErrInvalidSession())
		return
	}

	var req dto.ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		envelope.Fail(c, apperror.Validation(err.Error()))
		return
	}

	snap, err := h.paymentSvc.Confirm(c.Request.Context(), sess, domain.CardDetails{
		Number:     req.Card.Number,
		ExpMonth:   req.Card.ExpMonth,
		ExpYear:    req.Card.ExpYear,
		CVC:        req.Card.CVC,
		HolderName: req.Card.HolderName,
	})
	if err != nil {
		envelope.Fail(c, err)
		return
	}

	envelope.OK(c, snap)
}

// Flow handles GET /api/v1/payments/flow.
func (h *PaymentHandler) Flow(c *gin.Context) {
	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		envelope.Fail(c, apperror.ErrInvalidSession())
		return
	}

	envelope.OK(c, h.paymentSvc.Flow(sess))
}

// Abandon handles DELETE /api/v1/payments/flow. The flow is dropped
// client-side only; any reserved intent simply expires upstream.
func (h *PaymentHandler) Abandon(c *gin.Context) {
	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		envelope.Fail(c, apperror.ErrInvalidSession())
		return
	}

	h.paymentSvc.Abandon(sess)
	envelope.OK(c, h.paymentSvc.Flow(sess))
}

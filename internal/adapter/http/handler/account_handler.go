package handler

import (
	"github.com/Gigabyte00/flowpay-dashboard/internal/adapter/http/dto"
	"github.com/Gigabyte00/flowpay-dashboard/internal/adapter/http/middleware"
	"github.com/Gigabyte00/flowpay-dashboard/internal/core/ports"
	"github.com/Gigabyte00/flowpay-dashboard/pkg/apperror"
	"github.com/Gigabyte00/flowpay-dashboard/pkg/envelope"

	"github.com/gin-gonic/gin"
)

// AccountHandler handles dashboard aggregates and profile editing.
type AccountHandler struct {
	accountSvc ports.AccountService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountSvc ports.AccountService) *AccountHandler {
	return &AccountHandler{accountSvc: accountSvc}
}

// Stats handles GET /api/v1/stats.
func (h *AccountHandler) Stats(c *gin.Context) {
	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		envelope.Fail(c, apperror.ErrInvalidSession())
		return
	}

	stats, err := h.accountSvc.DashboardStats(c.Request.Context(), sess)
	if err != nil {
		envelope.Fail(c, err)
		return
	}

	envelope.OK(c, gin.H{"stats": stats})
}

// UpdateProfile handles PATCH /api/v1/profile.
func (h *AccountHandler) UpdateProfile(c *gin.Context) {
	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		envelope.Fail(c, apperror.ErrInvalidSession())
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		envelope.Fail(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.accountSvc.UpdateProfile(c.Request.Context(), sess, req.Name); err != nil {
		envelope.Fail(c, err)
		return
	}

	envelope.OK(c, gin.H{"name": req.Name})
}

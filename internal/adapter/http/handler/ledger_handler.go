package handler

import (
	"strconv"

	"github.com/Gigabyte00/flowpay-dashboard/internal/adapter/http/middleware"
	"github.com/Gigabyte00/flowpay-dashboard/internal/core/domain"
	"github.com/Gigabyte00/flowpay-dashboard/internal/core/ports"
	"github.com/Gigabyte00/flowpay-dashboard/pkg/apperror"
	"github.com/Gigabyte00/flowpay-dashboard/pkg/envelope"

	"github.com/gin-gonic/gin"
)

// LedgerHandler handles the transaction ledger view.
type LedgerHandler struct {
	ledgerSvc ports.LedgerService
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledgerSvc ports.LedgerService) *LedgerHandler {
	return &LedgerHandler{ledgerSvc: ledgerSvc}
}

// List handles GET /api/v1/transactions. The status filter is server-side;
// q is applied to the fetched page only.
func (h *LedgerHandler) List(c *gin.Context) {
	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		envelope.Fail(c, apperror.ErrInvalidSession())
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	params := ports.LedgerParams{
		Page:     page,
		PageSize: limit,
		Query:    c.Query("q"),
	}
	if s := c.Query("status"); s != "" {
		status := domain.TransactionStatus(s)
		params.Status = &status
	}

	result, err := h.ledgerSvc.ListTransactions(c.Request.Context(), sess, params)
	if err != nil {
		envelope.Fail(c, err)
		return
	}

	envelope.OK(c, result)
}

package service

import (
	"context"
	"strings"

	"github.com/Gigabyte00/flowpay-dashboard/internal/core/domain"
	"github.com/Gigabyte00/flowpay-dashboard/internal/core/ports"

	"github.com/rs/zerolog"
)

const defaultPageSize = 10

// LedgerServiceImpl implements ports.LedgerService. The ledger is a pure
// projection of backend state; nothing here writes transactions.
type LedgerServiceImpl struct {
	backend ports.BackendClient
	log     zerolog.Logger
}

// NewLedgerService creates a new LedgerServiceImpl.
func NewLedgerService(backend ports.BackendClient, log zerolog.Logger) *LedgerServiceImpl {
	return &LedgerServiceImpl{backend: backend, log: log}
}

// ListTransactions fetches one page from the backend, applies the
// page-local text search and attaches presentation to every row. The search
// narrows the fetched page only; it does not re-query the backend.
func (s *LedgerServiceImpl) ListTransactions(ctx context.Context, sess *domain.Session, params ports.LedgerParams) (*ports.LedgerPage, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.PageSize < 1 {
		params.PageSize = defaultPageSize
	}

	items, totalPages, err := s.backend.ListTransactions(ctx, sess.BackendToken, ports.TransactionListParams{
		Page:     params.Page,
		PageSize: params.PageSize,
		Status:   params.Status,
	})
	if err != nil {
		return nil, err
	}

	query := strings.ToLower(strings.TrimSpace(params.Query))
	page := &ports.LedgerPage{
		Items:      make([]ports.LedgerItem, 0, len(items)),
		Page:       params.Page,
		TotalPages: totalPages,
	}
	for _, tx := range items {
		if query != "" && !transactionMatches(tx, query) {
			continue
		}
		page.Items = append(page.Items, ports.LedgerItem{
			Transaction:  tx,
			Presentation: domain.PresentStatus(tx.Status),
		})
	}
	return page, nil
}

func transactionMatches(tx domain.Transaction, query string) bool {
	if strings.Contains(strings.ToLower(tx.Merchant), query) ||
		strings.Contains(strings.ToLower(tx.GatewayPaymentID), query) {
		return true
	}
	return tx.Description != nil && strings.Contains(strings.ToLower(*tx.Description), query)
}

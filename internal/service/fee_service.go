package service

import (
	"math"

	"github.com/Gigabyte00/flowpay-dashboard/config"
	"github.com/Gigabyte00/flowpay-dashboard/internal/core/domain"
)

// FeeServiceImpl implements ports.FeeQuoter. Rates come from configuration;
// nothing here hardcodes a percentage.
type FeeServiceImpl struct {
	standard float64
	instant  float64
}

// NewFeeService creates a fee quoter from the configured rate table.
func NewFeeService(cfg config.FeesConfig) *FeeServiceImpl {
	return &FeeServiceImpl{
		standard: cfg.Standard,
		instant:  cfg.Instant,
	}
}

// Rate returns the fee rate for a payout speed. Unknown speeds price as
// standard.
func (s *FeeServiceImpl) Rate(speed domain.PayoutSpeed) float64 {
	if speed == domain.PayoutSpeedInstant {
		return s.instant
	}
	return s.standard
}

// Quote parses the operator-entered amount and prices it. Unparseable or
// non-positive input yields the zero quote with Valid=false.
func (s *FeeServiceImpl) Quote(amount string, speed domain.PayoutSpeed) domain.FeeQuote {
	minor, ok := domain.ParseAmount(amount)
	if !ok {
		return domain.FeeQuote{}
	}

	rate := s.Rate(speed)
	fee := int64(math.Round(float64(minor) * rate))
	return domain.FeeQuote{
		Amount: minor,
		Fee:    fee,
		Total:  minor + fee,
		Rate:   rate,
		Valid:  true,
	}
}

package logic

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Service fee: 0.1% of the tip amount, capped at 1 unit.
var (
	feeRate = decimal.NewFromFloat(0.001)
	feeCap  = decimal.NewFromInt(1)
)

// ComputeFee returns the service fee for a tip amount. The fee is
// recorded alongside the tip for audit; it is not deducted from the
// transferred amount. Negative amounts are rejected rather than
// silently mapped to a zero fee.
func ComputeFee(amount decimal.Decimal) (decimal.Decimal, error) {
	if amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: amount must not be negative, got %s", ErrInvalidInput, amount)
	}
	fee := amount.Mul(feeRate)
	if fee.GreaterThan(feeCap) {
		return feeCap, nil
	}
	return fee, nil
}

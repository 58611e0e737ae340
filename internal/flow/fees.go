package flow

import (
	"github.com/shopspring/decimal"

	"github.com/purser-dev/purser/internal/model"
)

// Static fallback rates in sat/vB, used only when the context carries no
// live estimates.
var defaultFees = model.FeeEstimates{Slow: 2, Medium: 10, Fast: 25}

// typicalVBytes is the assumed size of a one-input two-output transaction;
// the signing subsystem recomputes the real fee before broadcast.
const typicalVBytes = 140

// estimatedMinutes is the rough confirmation wait per fee level.
func estimatedMinutes(level model.FeeLevel) int {
	switch level {
	case model.FeeSlow:
		return 120
	case model.FeeFast:
		return 10
	default:
		return 30
	}
}

// buildPending assembles the confirmation snapshot, preferring live network
// estimates over the static defaults.
func buildPending(amount decimal.Decimal, addr string, level model.FeeLevel, ctx model.ConversationContext) *model.PendingTransaction {
	fees := defaultFees
	if ctx.FeeEstimates != nil {
		fees = *ctx.FeeEstimates
	}
	rate := fees.Rate(level)
	fee := decimal.NewFromInt(rate * typicalVBytes).Div(model.SatsPerBTC).Truncate(8)

	return &model.PendingTransaction{
		Address:    addr,
		Amount:     amount,
		FeeLevel:   level,
		FeeRate:    rate,
		Fee:        fee,
		EstMinutes: estimatedMinutes(level),
	}
}

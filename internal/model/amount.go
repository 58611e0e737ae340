package model

import "github.com/shopspring/decimal"

// AmountUnit is the unit an amount was expressed in.
type AmountUnit string

// Amount units.
const (
	UnitBTC  AmountUnit = "btc"
	UnitSats AmountUnit = "sats"
)

// SatsPerBTC is the number of satoshis in one bitcoin.
var SatsPerBTC = decimal.NewFromInt(100_000_000)

// MaxSupply is the total coin supply cap in BTC.
var MaxSupply = decimal.NewFromInt(21_000_000)

// NormalizeAmount converts an amount in the given unit to BTC, truncated to
// 8 fractional places. Unknown units are treated as BTC.
func NormalizeAmount(value decimal.Decimal, unit AmountUnit) decimal.Decimal {
	if unit == UnitSats {
		value = value.Div(SatsPerBTC)
	}
	return value.Truncate(8)
}

// ValidAmount reports whether a normalized BTC amount is spendable: strictly
// positive and within the supply cap.
func ValidAmount(btc decimal.Decimal) bool {
	return btc.IsPositive() && btc.LessThanOrEqual(MaxSupply)
}

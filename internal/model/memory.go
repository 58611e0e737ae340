package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionDirection marks whether funds moved in or out of the wallet.
type TransactionDirection string

// Transaction directions.
const (
	DirectionIncoming TransactionDirection = "incoming"
	DirectionOutgoing TransactionDirection = "outgoing"
)

// TransactionSummary is one row of the recently shown transaction list.
type TransactionSummary struct {
	TxID          string
	Amount        decimal.Decimal
	Direction     TransactionDirection
	Confirmations int
	Time          time.Time
}

// UTXO is one unspent output in the wallet.
type UTXO struct {
	TxID   string
	Vout   int
	Amount decimal.Decimal
}

// FeeEstimates holds per-level fee rates in sat/vB.
type FeeEstimates struct {
	Slow   int64
	Medium int64
	Fast   int64
}

// Rate returns the sat/vB rate for a level, falling back to medium.
func (f FeeEstimates) Rate(level FeeLevel) int64 {
	switch level {
	case FeeSlow:
		return f.Slow
	case FeeFast:
		return f.Fast
	default:
		return f.Medium
	}
}

// ConversationContext is a read-only snapshot of wallet data the host loads
// before each turn. The engine never fetches any of it itself.
type ConversationContext struct {
	Balance      decimal.Decimal
	FeeEstimates *FeeEstimates
	Prices       map[string]decimal.Decimal
	RecentTxns   []TransactionSummary
	UTXOs        []UTXO
}

// Price returns the BTC price in the given fiat currency, defaulting to USD.
func (c ConversationContext) Price(currency string) (decimal.Decimal, bool) {
	if currency == "" {
		currency = "USD"
	}
	p, ok := c.Prices[currency]
	return p, ok
}

// ConversationMemory is the mutable per-session state. It is exclusively
// owned by one conversation session; the orchestrator writes it once per
// turn after the engine returns, never concurrently.
type ConversationMemory struct {
	LastIntent     *WalletIntent
	LastResponse   string
	LastAddress    string
	LastAmount     *decimal.Decimal
	LastSentTxID   string
	LastBalance    *decimal.Decimal
	LastShownTxns  []TransactionSummary
	LastShownFees  *FeeEstimates
	ShownMoreCount int
	State          ConversationState
	Paused         *ConversationState
	Turns          int
}

// NewConversationMemory starts a fresh session at idle.
func NewConversationMemory() *ConversationMemory {
	return &ConversationMemory{State: Idle()}
}

// Pause demotes the active flow to idle and saves it as the single paused
// snapshot. A snapshot and an active flow are never both live at once.
func (m *ConversationMemory) Pause() {
	snap := m.State
	m.Paused = &snap
	m.State = Idle()
}

// Resume restores the paused snapshot as the active flow and clears it.
func (m *ConversationMemory) Resume() bool {
	if m.Paused == nil {
		return false
	}
	m.State = *m.Paused
	m.Paused = nil
	return true
}

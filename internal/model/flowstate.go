package model

import "github.com/shopspring/decimal"

// StateKind identifies a position in the multi-turn send dialogue.
type StateKind string

// Flow states.
const (
	StateIdle          StateKind = "idle"
	StateAwaitAmount   StateKind = "awaiting_amount"
	StateAwaitAddress  StateKind = "awaiting_address"
	StateAwaitFeeLevel StateKind = "awaiting_fee_level"
	StateAwaitConfirm  StateKind = "awaiting_confirmation"
	StateProcessing    StateKind = "processing"
	StateCompleted     StateKind = "completed"
	StateError         StateKind = "error"
)

// StateErrorCode classifies flow-level rejections. These are data, not Go
// errors, so callers can match exhaustively.
type StateErrorCode string

// State error codes.
const (
	ErrCodeInvalidAmount  StateErrorCode = "invalid_amount"
	ErrCodeInvalidAddress StateErrorCode = "invalid_address"
	ErrCodeTestnet        StateErrorCode = "testnet_not_supported"
	ErrCodeFlow           StateErrorCode = "flow_error"
)

// PendingTransaction is the fully assembled transaction shown to the user at
// the confirmation step. Amount and Fee are BTC; FeeRate is sat/vB.
type PendingTransaction struct {
	Address    string
	Amount     decimal.Decimal
	FeeLevel   FeeLevel
	FeeRate    int64
	Fee        decimal.Decimal
	EstMinutes int
}

// ConversationState is the flow machine's position plus the already
// collected and validated slot values. The payload for an awaiting state is
// always valid: addresses are checked before being stored and amounts are
// normalized to BTC with 8 fractional places.
type ConversationState struct {
	Kind      StateKind
	Amount    decimal.Decimal
	HasAmount bool
	Address   string
	FeeLevel  FeeLevel
	Pending   *PendingTransaction
	ErrCode   StateErrorCode
	ErrMsg    string
}

// Idle is the zero flow position.
func Idle() ConversationState {
	return ConversationState{Kind: StateIdle}
}

// ErrorState builds an error position carrying a rejection code while
// preserving previously collected slot values so the user can correct and
// retry.
func ErrorState(code StateErrorCode, msg string, prev ConversationState) ConversationState {
	return ConversationState{
		Kind:      StateError,
		Amount:    prev.Amount,
		HasAmount: prev.HasAmount,
		Address:   prev.Address,
		FeeLevel:  prev.FeeLevel,
		ErrCode:   code,
		ErrMsg:    msg,
	}
}

// Active reports whether a send flow is in progress.
func (s ConversationState) Active() bool {
	switch s.Kind {
	case StateAwaitAmount, StateAwaitAddress, StateAwaitFeeLevel, StateAwaitConfirm, StateProcessing:
		return true
	default:
		return false
	}
}

// AwaitedSlot names the datum an awaiting state needs next, or "" when the
// state is not waiting on anything.
func (s ConversationState) AwaitedSlot() string {
	switch s.Kind {
	case StateAwaitAmount:
		return "amount"
	case StateAwaitAddress:
		return "address"
	case StateAwaitFeeLevel:
		return "fee_level"
	case StateAwaitConfirm:
		return "confirmation"
	default:
		return ""
	}
}

// FlowActionKind classifies what the flow machine decided to do with a turn.
type FlowActionKind string

// Flow action kinds.
const (
	FlowAdvance        FlowActionKind = "advance"
	FlowPauseAndHandle FlowActionKind = "pause_and_handle"
	FlowModifyInPlace  FlowActionKind = "modify_in_place"
	FlowRespondMeaning FlowActionKind = "respond_to_meaning"
)

// FlowAction is the flow machine's decision for one turn. State is the
// resulting flow position (for a pause it is the state the unrelated intent
// handler sees, i.e. idle). ResumeHint is non-empty only for pauses.
type FlowAction struct {
	Kind       FlowActionKind
	State      ConversationState
	ResumeHint string
}

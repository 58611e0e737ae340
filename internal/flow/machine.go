// Package flow drives the multi-turn send dialogue: a pausable, resumable
// slot-filling state machine over the conversation memory. The machine owns
// the flow position and paused snapshot inside ConversationMemory; all other
// memory fields belong to the orchestrator.
package flow

import (
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/purser-dev/purser/internal/address"
	"github.com/purser-dev/purser/internal/model"
)

// Machine is the conversation flow state machine. Stateless itself; the
// position lives in the memory passed to Process.
type Machine struct {
	validator address.Validator
}

// NewMachine builds a flow machine over an address validator.
func NewMachine(v address.Validator) *Machine {
	return &Machine{validator: v}
}

// Process advances the flow for one turn. It mutates only mem.State and
// mem.Paused; everything else in memory is the orchestrator's to write.
func (m *Machine) Process(res model.ClassificationResult, mem *model.ConversationMemory, ctx model.ConversationContext) model.FlowAction {
	intent := res.Intent
	sm := res.Meaning

	// Emotional, evaluative and explanatory input never touches the flow.
	if respondsToMeaning(intent, sm) {
		return model.FlowAction{Kind: model.FlowRespondMeaning, State: mem.State}
	}

	// Cancellation wins from any depth and also discards a paused snapshot.
	if intent.Kind == model.IntentCancel {
		mem.State = model.Idle()
		mem.Paused = nil
		return model.FlowAction{Kind: model.FlowAdvance, State: mem.State}
	}

	// Error states stay correctable: the next slot value re-enters the flow.
	if mem.State.Active() || mem.State.Kind == model.StateError {
		return m.processActive(intent, sm, mem, ctx)
	}
	return m.processIdle(intent, sm, mem, ctx)
}

// respondsToMeaning reports whether the turn bypasses the flow entirely.
func respondsToMeaning(intent model.WalletIntent, sm *model.SentenceMeaning) bool {
	if sm == nil {
		return false
	}
	switch sm.Type {
	case model.SentenceEvaluation:
		return true
	case model.SentenceEmotional:
		// Greetings pause an active flow like any unrelated intent; raw
		// emotion is answered in place.
		return intent.Kind != model.IntentGreeting
	case model.SentenceQuestion:
		return intent.Kind == model.IntentExplain
	default:
		return false
	}
}

func (m *Machine) processIdle(intent model.WalletIntent, sm *model.SentenceMeaning, mem *model.ConversationMemory, ctx model.ConversationContext) model.FlowAction {
	// A paused flow resumes when this turn supplies exactly the awaited
	// datum; a complete new send replaces it instead.
	if mem.Paused != nil && intent.Kind == model.IntentSend {
		if resumable(*mem.Paused, intent) {
			mem.Resume()
			return m.processActive(intent, sm, mem, ctx)
		}
		if intent.Amount != nil && intent.Address != "" {
			mem.Paused = nil
		}
	}

	if intent.Kind == model.IntentSend {
		mem.State = m.startSend(intent, ctx)
		return model.FlowAction{Kind: model.FlowAdvance, State: mem.State}
	}

	// Anything else leaves the flow untouched.
	return model.FlowAction{Kind: model.FlowAdvance, State: mem.State}
}

// suppliesAwaited reports whether a send intent carries the datum the active
// state is waiting on.
func suppliesAwaited(intent model.WalletIntent, state model.ConversationState) bool {
	if intent.Kind != model.IntentSend {
		return false
	}
	switch state.Kind {
	case model.StateAwaitAmount:
		return intent.Amount != nil
	case model.StateAwaitAddress:
		return intent.Address != ""
	case model.StateAwaitFeeLevel:
		return intent.FeeLevel != ""
	default:
		return false
	}
}

// resumable reports whether the intent supplies the datum the paused state
// was waiting for, without amounting to a brand-new transfer.
func resumable(paused model.ConversationState, intent model.WalletIntent) bool {
	if intent.Amount != nil && intent.Address != "" {
		return false
	}
	switch paused.Kind {
	case model.StateAwaitAmount:
		return intent.Amount != nil
	case model.StateAwaitAddress:
		return intent.Address != ""
	case model.StateAwaitFeeLevel:
		return intent.FeeLevel != ""
	default:
		return false
	}
}

func (m *Machine) processActive(intent model.WalletIntent, sm *model.SentenceMeaning, mem *model.ConversationMemory, ctx model.ConversationContext) model.FlowAction {
	state := mem.State

	// A send intent carrying exactly the awaited datum fills the slot. Bare
	// fee words ("fast") resolve to the same modify meaning as "change the
	// fee", so the slot fill must be checked first or the value is lost.
	if suppliesAwaited(intent, state) {
		return m.advanceOnSend(intent, state, mem, ctx)
	}

	// In-place modification never restarts the flow.
	if modifies(sm) {
		next, ok := m.modifyInPlace(*sm, state, mem, ctx)
		if ok {
			mem.State = next
			return model.FlowAction{Kind: model.FlowModifyInPlace, State: next}
		}
	}

	switch intent.Kind {
	case model.IntentConfirm:
		return m.advanceOnConfirm(state, mem, ctx)
	case model.IntentSend:
		return m.advanceOnSend(intent, state, mem, ctx)
	}

	// Unrelated intent: pause, handle it, and offer a way back.
	hint := resumeHint(state)
	mem.Pause()
	slog.Debug("paused send flow", "was", state.Kind, "for", intent.Kind)
	return model.FlowAction{Kind: model.FlowPauseAndHandle, State: mem.State, ResumeHint: hint}
}

// advanceOnSend applies the slot-filling transition table. A send intent
// carrying fresh amount and address restarts the flow from scratch.
func (m *Machine) advanceOnSend(intent model.WalletIntent, state model.ConversationState, mem *model.ConversationMemory, ctx model.ConversationContext) model.FlowAction {
	if intent.Amount != nil && intent.Address != "" {
		mem.State = m.startSend(intent, ctx)
		return model.FlowAction{Kind: model.FlowAdvance, State: mem.State}
	}

	switch state.Kind {
	case model.StateAwaitAmount, model.StateError:
		if intent.Amount != nil {
			amt := model.NormalizeAmount(*intent.Amount, intent.Unit)
			if !model.ValidAmount(amt) {
				mem.State = model.ErrorState(model.ErrCodeInvalidAmount, "amount must be positive and within the coin supply", state)
				return model.FlowAction{Kind: model.FlowAdvance, State: mem.State}
			}
			mem.State = m.stateFor(amt, true, state.Address, intent.FeeLevel, ctx)
			return model.FlowAction{Kind: model.FlowAdvance, State: mem.State}
		}
		if intent.Address != "" && state.Kind == model.StateError {
			return m.acceptAddress(intent.Address, state, mem, ctx)
		}
	case model.StateAwaitAddress:
		if intent.Address != "" {
			return m.acceptAddress(intent.Address, state, mem, ctx)
		}
	case model.StateAwaitFeeLevel:
		level := intent.FeeLevel
		if level == "" {
			level = model.FeeMedium
		}
		pending := buildPending(state.Amount, state.Address, level, ctx)
		mem.State = model.ConversationState{
			Kind:      model.StateAwaitConfirm,
			Amount:    state.Amount,
			HasAmount: true,
			Address:   state.Address,
			FeeLevel:  level,
			Pending:   pending,
		}
		return model.FlowAction{Kind: model.FlowAdvance, State: mem.State}
	case model.StateAwaitConfirm:
		// A send with partial new data at confirmation restarts with it.
		if intent.Amount != nil || intent.Address != "" {
			mem.State = m.startSend(intent, ctx)
			return model.FlowAction{Kind: model.FlowAdvance, State: mem.State}
		}
	}

	return model.FlowAction{Kind: model.FlowAdvance, State: mem.State}
}

func (m *Machine) advanceOnConfirm(state model.ConversationState, mem *model.ConversationMemory, ctx model.ConversationContext) model.FlowAction {
	switch state.Kind {
	case model.StateAwaitConfirm:
		mem.State = model.ConversationState{
			Kind:      model.StateProcessing,
			Amount:    state.Amount,
			HasAmount: true,
			Address:   state.Address,
			FeeLevel:  state.FeeLevel,
			Pending:   state.Pending,
		}
	case model.StateAwaitFeeLevel:
		// A plain "yes" at the fee prompt takes the medium default.
		pending := buildPending(state.Amount, state.Address, model.FeeMedium, ctx)
		mem.State = model.ConversationState{
			Kind:      model.StateAwaitConfirm,
			Amount:    state.Amount,
			HasAmount: true,
			Address:   state.Address,
			FeeLevel:  model.FeeMedium,
			Pending:   pending,
		}
	}
	return model.FlowAction{Kind: model.FlowAdvance, State: mem.State}
}

// startSend computes the furthest reachable state given which slots the
// intent already carries.
func (m *Machine) startSend(intent model.WalletIntent, ctx model.ConversationContext) model.ConversationState {
	var amt decimal.Decimal
	hasAmount := false
	if intent.Amount != nil {
		amt = model.NormalizeAmount(*intent.Amount, intent.Unit)
		if !model.ValidAmount(amt) {
			return model.ErrorState(model.ErrCodeInvalidAmount, "amount must be positive and within the coin supply", model.Idle())
		}
		hasAmount = true
	}

	addr := intent.Address
	if addr != "" {
		if m.validator.IsTestnet(addr) {
			return model.ErrorState(model.ErrCodeTestnet, "testnet addresses are not supported", model.Idle())
		}
		if !m.validator.IsValid(addr) {
			return model.ErrorState(model.ErrCodeInvalidAddress, "that address does not look valid", model.Idle())
		}
	}

	return m.stateFor(amt, hasAmount, addr, intent.FeeLevel, ctx)
}

// stateFor is the slot-completeness table: all three known lands on
// confirmation, two on the fee prompt, one on whichever datum is missing.
func (m *Machine) stateFor(amt decimal.Decimal, hasAmount bool, addr string, level model.FeeLevel, ctx model.ConversationContext) model.ConversationState {
	switch {
	case hasAmount && addr != "" && level != "":
		return model.ConversationState{
			Kind:      model.StateAwaitConfirm,
			Amount:    amt,
			HasAmount: true,
			Address:   addr,
			FeeLevel:  level,
			Pending:   buildPending(amt, addr, level, ctx),
		}
	case hasAmount && addr != "":
		return model.ConversationState{Kind: model.StateAwaitFeeLevel, Amount: amt, HasAmount: true, Address: addr}
	case hasAmount:
		return model.ConversationState{Kind: model.StateAwaitAddress, Amount: amt, HasAmount: true}
	default:
		// Covers both address-only and empty sends; an empty address is the
		// placeholder until one arrives.
		return model.ConversationState{Kind: model.StateAwaitAmount, Address: addr}
	}
}

// acceptAddress validates and stores an address, rejecting testnet with a
// dedicated error and staying put on malformed input.
func (m *Machine) acceptAddress(addr string, state model.ConversationState, mem *model.ConversationMemory, ctx model.ConversationContext) model.FlowAction {
	if m.validator.IsTestnet(addr) {
		mem.State = model.ErrorState(model.ErrCodeTestnet, "testnet addresses are not supported", state)
		return model.FlowAction{Kind: model.FlowAdvance, State: mem.State}
	}
	if !m.validator.IsValid(addr) {
		return model.FlowAction{Kind: model.FlowAdvance, State: mem.State}
	}
	mem.State = m.stateFor(state.Amount, state.HasAmount, addr, state.FeeLevel, ctx)
	return model.FlowAction{Kind: model.FlowAdvance, State: mem.State}
}

// modifies reports whether the meaning is an in-flow adjustment.
func modifies(sm *model.SentenceMeaning) bool {
	if sm == nil {
		return false
	}
	if sm.Action == model.ActionModify {
		return true
	}
	switch sm.Modifier {
	case model.ModifierIncrease, model.ModifierDecrease, model.ModifierHalf, model.ModifierDouble, model.ModifierAll:
		return true
	}
	return false
}

// modifyInPlace adjusts amount or fee without leaving the flow, or steps
// back exactly one slot for an explicit "change X" request.
func (m *Machine) modifyInPlace(sm model.SentenceMeaning, state model.ConversationState, mem *model.ConversationMemory, ctx model.ConversationContext) (model.ConversationState, bool) {
	// Explicit slot change: step back one slot, keep everything else.
	if sm.Action == model.ActionModify && sm.Modifier == "" {
		switch sm.Object {
		case model.ObjectAmount:
			return model.ConversationState{Kind: model.StateAwaitAmount, Address: state.Address, FeeLevel: state.FeeLevel}, true
		case model.ObjectAddress:
			return model.ConversationState{Kind: model.StateAwaitAddress, Amount: state.Amount, HasAmount: state.HasAmount, FeeLevel: state.FeeLevel}, true
		case model.ObjectFee:
			if state.HasAmount && state.Address != "" {
				return model.ConversationState{Kind: model.StateAwaitFeeLevel, Amount: state.Amount, HasAmount: true, Address: state.Address}, true
			}
		}
		return state, false
	}

	targetsFee := sm.Object == model.ObjectFee
	// At confirmation both amount and fee are fixed, so a pure speed
	// modifier always means the fee.
	if state.Kind == model.StateAwaitConfirm && (sm.Modifier == model.ModifierIncrease || sm.Modifier == model.ModifierDecrease) {
		targetsFee = true
	}

	if targetsFee {
		level := shiftFee(state.FeeLevel, sm.Modifier)
		next := state
		next.FeeLevel = level
		if next.Pending != nil || state.Kind == model.StateAwaitConfirm {
			next.Pending = buildPending(state.Amount, state.Address, level, ctx)
		}
		return next, true
	}

	if !state.HasAmount {
		return state, false
	}
	amt, ok := adjustAmount(state.Amount, sm.Modifier, ctx)
	if !ok {
		return state, false
	}
	if !model.ValidAmount(amt) {
		return model.ErrorState(model.ErrCodeInvalidAmount, "adjusted amount is not spendable", state), true
	}
	next := state
	next.Amount = amt
	if next.Pending != nil {
		next.Pending = buildPending(amt, state.Address, state.FeeLevel, ctx)
	}
	return next, true
}

// shiftFee moves one tier up or down.
func shiftFee(level model.FeeLevel, mod model.ModifierKind) model.FeeLevel {
	if level == "" {
		level = model.FeeMedium
	}
	switch mod {
	case model.ModifierIncrease, model.ModifierDouble:
		if level == model.FeeSlow {
			return model.FeeMedium
		}
		return model.FeeFast
	case model.ModifierDecrease, model.ModifierHalf:
		if level == model.FeeFast {
			return model.FeeMedium
		}
		return model.FeeSlow
	default:
		return level
	}
}

// adjustAmount applies a quantity modifier to the in-flight amount.
func adjustAmount(amt decimal.Decimal, mod model.ModifierKind, ctx model.ConversationContext) (decimal.Decimal, bool) {
	switch mod {
	case model.ModifierHalf, model.ModifierDecrease:
		return amt.Div(decimal.NewFromInt(2)).Truncate(8), true
	case model.ModifierDouble, model.ModifierIncrease:
		return amt.Mul(decimal.NewFromInt(2)).Truncate(8), true
	case model.ModifierAll:
		if ctx.Balance.IsPositive() {
			return ctx.Balance.Truncate(8), true
		}
		return amt, false
	default:
		return amt, false
	}
}

// resumeHint describes the interrupted transfer so the user can pick it up.
func resumeHint(state model.ConversationState) string {
	switch state.Kind {
	case model.StateAwaitAmount:
		if state.Address != "" {
			return fmt.Sprintf("We were sending to %s. Tell me the amount to continue.", truncateAddr(state.Address))
		}
		return "We were setting up a transfer. Tell me the amount to continue."
	case model.StateAwaitAddress:
		return fmt.Sprintf("We were sending %s BTC. Give me the address to continue.", state.Amount.String())
	case model.StateAwaitFeeLevel:
		return fmt.Sprintf("Your %s BTC to %s still needs a fee level (slow, medium or fast).", state.Amount.String(), truncateAddr(state.Address))
	case model.StateAwaitConfirm:
		return fmt.Sprintf("Your %s BTC to %s is ready. Say confirm to send it.", state.Amount.String(), truncateAddr(state.Address))
	default:
		return ""
	}
}

func truncateAddr(addr string) string {
	if len(addr) <= 13 {
		return addr
	}
	return addr[:8] + "…" + addr[len(addr)-4:]
}

// Reset clears the flow and any paused snapshot; exposed for the host.
func (m *Machine) Reset(mem *model.ConversationMemory) {
	mem.State = model.Idle()
	mem.Paused = nil
}

// MarkCompleted records a successful broadcast reported by the signing
// subsystem, then returns the flow to idle for the next conversation.
func (m *Machine) MarkCompleted(mem *model.ConversationMemory) {
	mem.State = model.ConversationState{Kind: model.StateCompleted}
}

// MarkError records a downstream failure (for example a broadcast error)
// while preserving the pending data so the user can retry.
func (m *Machine) MarkError(mem *model.ConversationMemory, msg string) {
	mem.State = model.ErrorState(model.ErrCodeFlow, msg, mem.State)
}

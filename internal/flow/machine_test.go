package flow

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/purser-dev/purser/internal/address"
	"github.com/purser-dev/purser/internal/model"
)

const (
	mainnetAddr = "bc1qar0srrr7xfkvy5l643lydnw9re59gtzzwf5mdq"
	testnetAddr = "tb1qw508d6qejxtdg4y5r3zarvary0c5xw7kxpjzsx"
)

func newTestMachine() *Machine {
	return NewMachine(address.NewValidator())
}

func sendResult(amount string, addr string, level model.FeeLevel) model.ClassificationResult {
	intent := model.Intent(model.IntentSend)
	if amount != "" {
		a := decimal.RequireFromString(amount)
		intent.Amount = &a
		intent.Unit = model.UnitBTC
	}
	intent.Address = addr
	intent.FeeLevel = level
	return model.NewClassificationResult(intent, 0.9, nil, nil)
}

func intentResult(kind model.IntentKind) model.ClassificationResult {
	return model.NewClassificationResult(model.Intent(kind), 0.9, nil, nil)
}

func modifyResult(object model.ObjectKind, modifier model.ModifierKind) model.ClassificationResult {
	sm := model.SentenceMeaning{
		Type:     model.SentenceCommand,
		Action:   model.ActionModify,
		Object:   object,
		Modifier: modifier,
	}
	return model.NewClassificationResult(model.UnknownIntent(""), 0.8, nil, &sm)
}

// feeWordResult mirrors what the classifier delivers for a bare fee word
// like "fast": a send intent carrying the level, paired with the modify
// meaning the resolver assigns to fee-level literals.
func feeWordResult(level model.FeeLevel) model.ClassificationResult {
	intent := model.Intent(model.IntentSend)
	intent.FeeLevel = level
	sm := model.SentenceMeaning{
		Type:       model.SentenceCommand,
		Action:     model.ActionModify,
		Object:     model.ObjectFee,
		Confidence: 0.95,
	}
	return model.NewClassificationResult(intent, 0.95, nil, &sm)
}

func TestMachine_HappyPath(t *testing.T) {
	m := newTestMachine()
	mem := model.NewConversationMemory()
	ctx := model.ConversationContext{}

	act := m.Process(sendResult("0.01", mainnetAddr, ""), mem, ctx)
	assert.Equal(t, model.FlowAdvance, act.Kind)
	assert.Equal(t, model.StateAwaitFeeLevel, mem.State.Kind)

	act = m.Process(sendResult("", "", model.FeeFast), mem, ctx)
	assert.Equal(t, model.FlowAdvance, act.Kind)
	assert.Equal(t, model.StateAwaitConfirm, mem.State.Kind)
	assert.Equal(t, model.FeeFast, mem.State.FeeLevel)
	require.NotNil(t, mem.State.Pending)
	assert.Equal(t, int64(25), mem.State.Pending.FeeRate)
	assert.Equal(t, 10, mem.State.Pending.EstMinutes)

	act = m.Process(intentResult(model.IntentConfirm), mem, ctx)
	assert.Equal(t, model.FlowAdvance, act.Kind)
	assert.Equal(t, model.StateProcessing, mem.State.Kind)
	assert.True(t, mem.State.Amount.Equal(decimal.RequireFromString("0.01")))
	assert.Equal(t, mainnetAddr, mem.State.Address)
}

func TestMachine_SlotCompleteness(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		addr   string
		level  model.FeeLevel
		want   model.StateKind
	}{
		{name: "nothing known", want: model.StateAwaitAmount},
		{name: "amount only", amount: "0.01", want: model.StateAwaitAddress},
		{name: "address only", addr: mainnetAddr, want: model.StateAwaitAmount},
		{name: "amount and address", amount: "0.01", addr: mainnetAddr, want: model.StateAwaitFeeLevel},
		{name: "all three", amount: "0.01", addr: mainnetAddr, level: model.FeeSlow, want: model.StateAwaitConfirm},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestMachine()
			mem := model.NewConversationMemory()
			m.Process(sendResult(tt.amount, tt.addr, tt.level), mem, model.ConversationContext{})
			assert.Equal(t, tt.want, mem.State.Kind)
		})
	}
}

func TestMachine_AddressOnlyKeepsPlaceholder(t *testing.T) {
	m := newTestMachine()
	mem := model.NewConversationMemory()
	ctx := model.ConversationContext{}

	m.Process(sendResult("", mainnetAddr, ""), mem, ctx)
	assert.Equal(t, model.StateAwaitAmount, mem.State.Kind)
	assert.Equal(t, mainnetAddr, mem.State.Address)

	m.Process(sendResult("0.02", "", ""), mem, ctx)
	assert.Equal(t, model.StateAwaitFeeLevel, mem.State.Kind)
	assert.Equal(t, mainnetAddr, mem.State.Address)
}

func TestMachine_InvalidAmount(t *testing.T) {
	m := newTestMachine()
	mem := model.NewConversationMemory()
	ctx := model.ConversationContext{}

	m.Process(sendResult("22000000", mainnetAddr, ""), mem, ctx)
	assert.Equal(t, model.StateError, mem.State.Kind)
	assert.Equal(t, model.ErrCodeInvalidAmount, mem.State.ErrCode)

	// A corrected amount re-enters the flow from the error state.
	m.Process(sendResult("0.01", "", ""), mem, ctx)
	assert.Equal(t, model.StateAwaitAddress, mem.State.Kind)
	assert.True(t, mem.State.Amount.Equal(decimal.RequireFromString("0.01")))
}

func TestMachine_AddressValidation(t *testing.T) {
	ctx := model.ConversationContext{}

	t.Run("testnet is rejected with its own code", func(t *testing.T) {
		m := newTestMachine()
		mem := model.NewConversationMemory()
		m.Process(sendResult("0.01", "", ""), mem, ctx)

		m.Process(sendResult("", testnetAddr, ""), mem, ctx)
		assert.Equal(t, model.StateError, mem.State.Kind)
		assert.Equal(t, model.ErrCodeTestnet, mem.State.ErrCode)
		assert.True(t, mem.State.HasAmount)

		m.Process(sendResult("", mainnetAddr, ""), mem, ctx)
		assert.Equal(t, model.StateAwaitFeeLevel, mem.State.Kind)
		assert.Equal(t, mainnetAddr, mem.State.Address)
	})

	t.Run("malformed input stays at the prompt", func(t *testing.T) {
		m := newTestMachine()
		mem := model.NewConversationMemory()
		m.Process(sendResult("0.01", "", ""), mem, ctx)

		m.Process(sendResult("", "bc1qar0", ""), mem, ctx)
		assert.Equal(t, model.StateAwaitAddress, mem.State.Kind)
	})
}

func TestMachine_CancelFromAnyDepth(t *testing.T) {
	ctx := model.ConversationContext{}

	setups := []struct {
		name  string
		setup func(m *Machine, mem *model.ConversationMemory)
	}{
		{name: "awaiting amount", setup: func(m *Machine, mem *model.ConversationMemory) {
			m.Process(sendResult("", "", ""), mem, ctx)
		}},
		{name: "awaiting address", setup: func(m *Machine, mem *model.ConversationMemory) {
			m.Process(sendResult("0.01", "", ""), mem, ctx)
		}},
		{name: "awaiting fee", setup: func(m *Machine, mem *model.ConversationMemory) {
			m.Process(sendResult("0.01", mainnetAddr, ""), mem, ctx)
		}},
		{name: "awaiting confirmation", setup: func(m *Machine, mem *model.ConversationMemory) {
			m.Process(sendResult("0.01", mainnetAddr, model.FeeFast), mem, ctx)
		}},
		{name: "paused", setup: func(m *Machine, mem *model.ConversationMemory) {
			m.Process(sendResult("0.01", "", ""), mem, ctx)
			m.Process(intentResult(model.IntentBalance), mem, ctx)
		}},
	}

	for _, tt := range setups {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestMachine()
			mem := model.NewConversationMemory()
			tt.setup(m, mem)

			act := m.Process(intentResult(model.IntentCancel), mem, ctx)
			assert.Equal(t, model.FlowAdvance, act.Kind)
			assert.Equal(t, model.StateIdle, mem.State.Kind)
			assert.Nil(t, mem.Paused)
		})
	}
}

func TestMachine_PauseAndResume(t *testing.T) {
	m := newTestMachine()
	mem := model.NewConversationMemory()
	ctx := model.ConversationContext{}

	m.Process(sendResult("0.01", "", ""), mem, ctx)
	require.Equal(t, model.StateAwaitAddress, mem.State.Kind)

	act := m.Process(intentResult(model.IntentBalance), mem, ctx)
	assert.Equal(t, model.FlowPauseAndHandle, act.Kind)
	assert.Equal(t, model.StateIdle, mem.State.Kind)
	require.NotNil(t, mem.Paused)
	assert.Equal(t, model.StateAwaitAddress, mem.Paused.Kind)
	assert.Contains(t, act.ResumeHint, "0.01")

	// Supplying the awaited datum resumes the interrupted transfer.
	m.Process(sendResult("", mainnetAddr, ""), mem, ctx)
	assert.Nil(t, mem.Paused)
	assert.Equal(t, model.StateAwaitFeeLevel, mem.State.Kind)
	assert.True(t, mem.State.Amount.Equal(decimal.RequireFromString("0.01")))
}

func TestMachine_CompleteNewSendDiscardsPaused(t *testing.T) {
	m := newTestMachine()
	mem := model.NewConversationMemory()
	ctx := model.ConversationContext{}

	m.Process(sendResult("0.01", "", ""), mem, ctx)
	m.Process(intentResult(model.IntentHistory), mem, ctx)
	require.NotNil(t, mem.Paused)

	m.Process(sendResult("0.5", mainnetAddr, ""), mem, ctx)
	assert.Nil(t, mem.Paused)
	assert.Equal(t, model.StateAwaitFeeLevel, mem.State.Kind)
	assert.True(t, mem.State.Amount.Equal(decimal.RequireFromString("0.5")))
}

func TestMachine_ResumeHintTruncatesAddress(t *testing.T) {
	m := newTestMachine()
	mem := model.NewConversationMemory()
	ctx := model.ConversationContext{}

	m.Process(sendResult("0.01", mainnetAddr, model.FeeFast), mem, ctx)
	require.Equal(t, model.StateAwaitConfirm, mem.State.Kind)

	act := m.Process(intentResult(model.IntentPrice), mem, ctx)
	assert.Equal(t, model.FlowPauseAndHandle, act.Kind)
	assert.Contains(t, act.ResumeHint, "bc1qar0s…5mdq")
	assert.Contains(t, act.ResumeHint, "confirm")
}

func TestMachine_ConfirmAtFeePromptTakesMedium(t *testing.T) {
	m := newTestMachine()
	mem := model.NewConversationMemory()
	ctx := model.ConversationContext{}

	m.Process(sendResult("0.01", mainnetAddr, ""), mem, ctx)
	require.Equal(t, model.StateAwaitFeeLevel, mem.State.Kind)

	m.Process(intentResult(model.IntentConfirm), mem, ctx)
	assert.Equal(t, model.StateAwaitConfirm, mem.State.Kind)
	assert.Equal(t, model.FeeMedium, mem.State.FeeLevel)
	require.NotNil(t, mem.State.Pending)
	assert.Equal(t, int64(10), mem.State.Pending.FeeRate)
}

func TestMachine_FeeWordFillsFeeSlot(t *testing.T) {
	m := newTestMachine()
	mem := model.NewConversationMemory()
	ctx := model.ConversationContext{}

	m.Process(sendResult("0.01", mainnetAddr, ""), mem, ctx)
	require.Equal(t, model.StateAwaitFeeLevel, mem.State.Kind)

	act := m.Process(feeWordResult(model.FeeFast), mem, ctx)
	assert.Equal(t, model.FlowAdvance, act.Kind)
	assert.Equal(t, model.StateAwaitConfirm, mem.State.Kind)
	assert.Equal(t, model.FeeFast, mem.State.FeeLevel)
	require.NotNil(t, mem.State.Pending)
	assert.Equal(t, int64(25), mem.State.Pending.FeeRate)

	// "change the fee" carries the same modify meaning but no level, so it
	// still reads as a step back to the fee prompt.
	act = m.Process(modifyResult(model.ObjectFee, ""), mem, ctx)
	assert.Equal(t, model.FlowModifyInPlace, act.Kind)
	assert.Equal(t, model.StateAwaitFeeLevel, mem.State.Kind)
	assert.Empty(t, mem.State.FeeLevel)
}

func TestMachine_FeeWordResumesPausedFlow(t *testing.T) {
	m := newTestMachine()
	mem := model.NewConversationMemory()
	ctx := model.ConversationContext{}

	m.Process(sendResult("0.01", mainnetAddr, ""), mem, ctx)
	require.Equal(t, model.StateAwaitFeeLevel, mem.State.Kind)

	act := m.Process(intentResult(model.IntentBalance), mem, ctx)
	require.Equal(t, model.FlowPauseAndHandle, act.Kind)
	require.NotNil(t, mem.Paused)

	m.Process(feeWordResult(model.FeeSlow), mem, ctx)
	assert.Nil(t, mem.Paused)
	assert.Equal(t, model.StateAwaitConfirm, mem.State.Kind)
	assert.Equal(t, model.FeeSlow, mem.State.FeeLevel)
	assert.True(t, mem.State.Amount.Equal(decimal.RequireFromString("0.01")))
	assert.Equal(t, mainnetAddr, mem.State.Address)
}

func TestMachine_LiveFeeEstimatesPreferred(t *testing.T) {
	m := newTestMachine()
	mem := model.NewConversationMemory()
	ctx := model.ConversationContext{FeeEstimates: &model.FeeEstimates{Slow: 3, Medium: 12, Fast: 40}}

	m.Process(sendResult("0.01", mainnetAddr, model.FeeFast), mem, ctx)
	require.NotNil(t, mem.State.Pending)
	assert.Equal(t, int64(40), mem.State.Pending.FeeRate)
}

func TestMachine_ModifyInPlace(t *testing.T) {
	ctx := model.ConversationContext{}

	t.Run("speed modifier at confirmation shifts the fee tier", func(t *testing.T) {
		m := newTestMachine()
		mem := model.NewConversationMemory()
		m.Process(sendResult("0.01", mainnetAddr, model.FeeMedium), mem, ctx)
		require.Equal(t, model.StateAwaitConfirm, mem.State.Kind)

		act := m.Process(modifyResult(model.ObjectFee, model.ModifierIncrease), mem, ctx)
		assert.Equal(t, model.FlowModifyInPlace, act.Kind)
		assert.Equal(t, model.StateAwaitConfirm, mem.State.Kind)
		assert.Equal(t, model.FeeFast, mem.State.FeeLevel)
		require.NotNil(t, mem.State.Pending)
		assert.Equal(t, int64(25), mem.State.Pending.FeeRate)
	})

	t.Run("double adjusts the amount without restarting", func(t *testing.T) {
		m := newTestMachine()
		mem := model.NewConversationMemory()
		m.Process(sendResult("0.01", mainnetAddr, ""), mem, ctx)
		require.Equal(t, model.StateAwaitFeeLevel, mem.State.Kind)

		act := m.Process(modifyResult(model.ObjectAmount, model.ModifierDouble), mem, ctx)
		assert.Equal(t, model.FlowModifyInPlace, act.Kind)
		assert.Equal(t, model.StateAwaitFeeLevel, mem.State.Kind)
		assert.True(t, mem.State.Amount.Equal(decimal.RequireFromString("0.02")))
	})

	t.Run("all of it uses the wallet balance", func(t *testing.T) {
		m := newTestMachine()
		mem := model.NewConversationMemory()
		balCtx := model.ConversationContext{Balance: decimal.RequireFromString("0.0307")}
		m.Process(sendResult("0.01", mainnetAddr, ""), mem, balCtx)

		m.Process(modifyResult(model.ObjectAmount, model.ModifierAll), mem, balCtx)
		assert.True(t, mem.State.Amount.Equal(decimal.RequireFromString("0.0307")))
	})

	t.Run("halving below one satoshi is rejected", func(t *testing.T) {
		m := newTestMachine()
		mem := model.NewConversationMemory()
		m.Process(sendResult("0.00000001", mainnetAddr, ""), mem, ctx)

		m.Process(modifyResult(model.ObjectAmount, model.ModifierHalf), mem, ctx)
		assert.Equal(t, model.StateError, mem.State.Kind)
		assert.Equal(t, model.ErrCodeInvalidAmount, mem.State.ErrCode)
	})

	t.Run("explicit change steps back exactly one slot", func(t *testing.T) {
		m := newTestMachine()
		mem := model.NewConversationMemory()
		m.Process(sendResult("0.01", mainnetAddr, model.FeeFast), mem, ctx)
		require.Equal(t, model.StateAwaitConfirm, mem.State.Kind)

		act := m.Process(modifyResult(model.ObjectAmount, ""), mem, ctx)
		assert.Equal(t, model.FlowModifyInPlace, act.Kind)
		assert.Equal(t, model.StateAwaitAmount, mem.State.Kind)
		assert.Equal(t, mainnetAddr, mem.State.Address)
		assert.Equal(t, model.FeeFast, mem.State.FeeLevel)
	})

	t.Run("change the address keeps the amount", func(t *testing.T) {
		m := newTestMachine()
		mem := model.NewConversationMemory()
		m.Process(sendResult("0.01", mainnetAddr, model.FeeFast), mem, ctx)

		m.Process(modifyResult(model.ObjectAddress, ""), mem, ctx)
		assert.Equal(t, model.StateAwaitAddress, mem.State.Kind)
		assert.True(t, mem.State.HasAmount)
		assert.True(t, mem.State.Amount.Equal(decimal.RequireFromString("0.01")))
	})
}

func TestMachine_MeaningBypass(t *testing.T) {
	m := newTestMachine()
	mem := model.NewConversationMemory()
	ctx := model.ConversationContext{}

	m.Process(sendResult("0.01", mainnetAddr, model.FeeFast), mem, ctx)
	require.Equal(t, model.StateAwaitConfirm, mem.State.Kind)

	sm := model.SentenceMeaning{Type: model.SentenceEvaluation, Judgment: model.JudgmentExpensive, Object: model.ObjectFee}
	res := model.NewClassificationResult(model.UnknownIntent("too expensive"), 0.75, nil, &sm)

	act := m.Process(res, mem, ctx)
	assert.Equal(t, model.FlowRespondMeaning, act.Kind)
	assert.Equal(t, model.StateAwaitConfirm, mem.State.Kind)
}

func TestMachine_RestartAtConfirmationWithNewData(t *testing.T) {
	m := newTestMachine()
	mem := model.NewConversationMemory()
	ctx := model.ConversationContext{}

	m.Process(sendResult("0.01", mainnetAddr, model.FeeFast), mem, ctx)
	require.Equal(t, model.StateAwaitConfirm, mem.State.Kind)

	m.Process(sendResult("0.2", "", ""), mem, ctx)
	assert.Equal(t, model.StateAwaitAddress, mem.State.Kind)
	assert.True(t, mem.State.Amount.Equal(decimal.RequireFromString("0.2")))
}

func TestMachine_Lifecycle(t *testing.T) {
	m := newTestMachine()
	mem := model.NewConversationMemory()
	ctx := model.ConversationContext{}

	m.Process(sendResult("0.01", mainnetAddr, model.FeeFast), mem, ctx)
	m.Process(intentResult(model.IntentConfirm), mem, ctx)
	require.Equal(t, model.StateProcessing, mem.State.Kind)

	m.MarkCompleted(mem)
	assert.Equal(t, model.StateCompleted, mem.State.Kind)

	m.Reset(mem)
	assert.Equal(t, model.StateIdle, mem.State.Kind)

	m.Process(sendResult("0.01", mainnetAddr, model.FeeFast), mem, ctx)
	m.Process(intentResult(model.IntentConfirm), mem, ctx)
	m.MarkError(mem, "broadcast failed")
	assert.Equal(t, model.StateError, mem.State.Kind)
	assert.Equal(t, model.ErrCodeFlow, mem.State.ErrCode)
	assert.True(t, mem.State.HasAmount)
}

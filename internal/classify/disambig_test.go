package classify

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/purser-dev/purser/internal/model"
)

func result(kind model.IntentKind, conf float64, meaning *model.SentenceMeaning) model.ClassificationResult {
	return model.NewClassificationResult(model.Intent(kind), conf, nil, meaning)
}

func TestDisambig_NegatedSendIsCancel(t *testing.T) {
	d := NewDisambiguator()

	res := d.Apply("no, don't send it", result(model.IntentSend, 0.8, &model.SentenceMeaning{Negated: true}), model.NewConversationMemory())
	assert.Equal(t, model.IntentCancel, res.Intent.Kind)
	assert.InDelta(t, 0.85, res.Confidence, 0.0001)

	res = d.Apply("send it", result(model.IntentSend, 0.8, &model.SentenceMeaning{}), model.NewConversationMemory())
	assert.Equal(t, model.IntentSend, res.Intent.Kind)
}

func TestDisambig_QuestionedSendIsExplain(t *testing.T) {
	d := NewDisambiguator()
	mem := model.NewConversationMemory()

	t.Run("bare send question becomes explain", func(t *testing.T) {
		res := d.Apply("send?", result(model.IntentSend, 0.7, &model.SentenceMeaning{}), mem)
		assert.Equal(t, model.IntentExplain, res.Intent.Kind)
		assert.Equal(t, model.ConceptTransaction, res.Intent.Topic)
	})

	t.Run("send question with slots stays a send", func(t *testing.T) {
		in := result(model.IntentSend, 0.7, &model.SentenceMeaning{})
		amt := decimal.RequireFromString("0.01")
		in.Intent.Amount = &amt
		res := d.Apply("send 0.01?", in, mem)
		assert.Equal(t, model.IntentSend, res.Intent.Kind)
	})

	t.Run("arabic question mark counts", func(t *testing.T) {
		res := d.Apply("أرسل؟", result(model.IntentSend, 0.7, &model.SentenceMeaning{}), mem)
		assert.Equal(t, model.IntentExplain, res.Intent.Kind)
	})
}

func TestDisambig_SendItAtConfirmation(t *testing.T) {
	d := NewDisambiguator()

	mem := model.NewConversationMemory()
	mem.State = model.ConversationState{Kind: model.StateAwaitConfirm}

	res := d.Apply("ok send it", result(model.IntentSend, 0.7, &model.SentenceMeaning{}), mem)
	assert.Equal(t, model.IntentConfirm, res.Intent.Kind)
	assert.InDelta(t, 0.9, res.Confidence, 0.0001)

	t.Run("a send with new slot values restarts instead", func(t *testing.T) {
		in := result(model.IntentSend, 0.8, &model.SentenceMeaning{})
		in.Intent.Address = testBech32
		res := d.Apply("send to "+testBech32, in, mem)
		assert.Equal(t, model.IntentSend, res.Intent.Kind)
	})

	t.Run("ignored outside the confirmation step", func(t *testing.T) {
		res := d.Apply("send it", result(model.IntentSend, 0.7, &model.SentenceMeaning{}), model.NewConversationMemory())
		assert.Equal(t, model.IntentSend, res.Intent.Kind)
	})
}

func TestDisambig_OrphanConfirm(t *testing.T) {
	d := NewDisambiguator()

	t.Run("yes with nothing pending is downgraded", func(t *testing.T) {
		res := d.Apply("yes", result(model.IntentConfirm, 0.9, &model.SentenceMeaning{}), model.NewConversationMemory())
		assert.Equal(t, model.IntentUnknown, res.Intent.Kind)
		assert.True(t, res.NeedsClarification)
	})

	t.Run("active flow keeps the confirmation", func(t *testing.T) {
		mem := model.NewConversationMemory()
		mem.State = model.ConversationState{Kind: model.StateAwaitConfirm}
		res := d.Apply("yes", result(model.IntentConfirm, 0.9, &model.SentenceMeaning{}), mem)
		assert.Equal(t, model.IntentConfirm, res.Intent.Kind)
	})

	t.Run("paused flow keeps the confirmation", func(t *testing.T) {
		mem := model.NewConversationMemory()
		paused := model.ConversationState{Kind: model.StateAwaitAddress}
		mem.Paused = &paused
		res := d.Apply("yes", result(model.IntentConfirm, 0.9, &model.SentenceMeaning{}), mem)
		assert.Equal(t, model.IntentConfirm, res.Intent.Kind)
	})
}

func TestDisambig_MoreContinuesHistory(t *testing.T) {
	d := NewDisambiguator()

	mem := model.NewConversationMemory()
	last := model.Intent(model.IntentHistory)
	last.Count = 5
	mem.LastIntent = &last

	res := d.Apply("more", result(model.IntentUnknown, 0.4, &model.SentenceMeaning{Modifier: model.ModifierIncrease}), mem)
	assert.Equal(t, model.IntentHistory, res.Intent.Kind)
	assert.Equal(t, 5+defaultHistoryCount, res.Intent.Count)

	t.Run("no preceding history listing", func(t *testing.T) {
		res := d.Apply("more", result(model.IntentUnknown, 0.4, &model.SentenceMeaning{Modifier: model.ModifierIncrease}), model.NewConversationMemory())
		assert.Equal(t, model.IntentUnknown, res.Intent.Kind)
	})
}

func TestDisambig_RepeatResends(t *testing.T) {
	d := NewDisambiguator()

	mem := model.NewConversationMemory()
	mem.LastSentTxID = "4a5e1e4baab89f3a32518a88c31bc87f618f76673e2cc77ab2127b7afdeda33b"
	mem.LastAddress = testBech32
	amt := decimal.RequireFromString("0.01")
	mem.LastAmount = &amt

	res := d.Apply("again", result(model.IntentUnknown, 0.4, &model.SentenceMeaning{Modifier: model.ModifierAgain}), mem)
	assert.Equal(t, model.IntentSend, res.Intent.Kind)
	assert.Equal(t, testBech32, res.Intent.Address)
	assert.Equal(t, mem.LastAmount, res.Intent.Amount)

	t.Run("nothing sent yet", func(t *testing.T) {
		res := d.Apply("again", result(model.IntentUnknown, 0.4, &model.SentenceMeaning{Modifier: model.ModifierAgain}), model.NewConversationMemory())
		assert.Equal(t, model.IntentUnknown, res.Intent.Kind)
	})
}

func TestDisambig_InsistentQuestionIsHelp(t *testing.T) {
	d := NewDisambiguator()
	mem := model.NewConversationMemory()

	res := d.Apply("what??", result(model.IntentUnknown, 0.3, &model.SentenceMeaning{}), mem)
	assert.Equal(t, model.IntentHelp, res.Intent.Kind)

	t.Run("a single question mark is not insistence", func(t *testing.T) {
		res := d.Apply("what?", result(model.IntentUnknown, 0.3, &model.SentenceMeaning{}), mem)
		assert.Equal(t, model.IntentUnknown, res.Intent.Kind)
	})

	t.Run("a confident reading is left alone", func(t *testing.T) {
		res := d.Apply("balance??", result(model.IntentBalance, 0.75, &model.SentenceMeaning{}), mem)
		assert.Equal(t, model.IntentBalance, res.Intent.Kind)
	})
}

func TestDisambig_EndToEnd(t *testing.T) {
	c := newTestClassifier()
	d := NewDisambiguator()
	mem := model.NewConversationMemory()
	mem.State = model.ConversationState{Kind: model.StateAwaitConfirm}

	res := c.Classify("ok send it", mem, model.ConversationContext{})
	res = d.Apply("ok send it", res, mem)
	assert.Equal(t, model.IntentConfirm, res.Intent.Kind)
}

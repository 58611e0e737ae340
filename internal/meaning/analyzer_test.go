package meaning

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/purser-dev/purser/internal/lexicon"
	"github.com/purser-dev/purser/internal/model"
)

func newTestAnalyzer() *Analyzer {
	return NewAnalyzer(lexicon.NewClassifier())
}

func TestAnalyze_SentenceTypes(t *testing.T) {
	a := newTestAnalyzer()
	mem := model.NewConversationMemory()

	tests := []struct {
		name       string
		text       string
		wantType   model.SentenceType
		wantAction model.ActionKind
	}{
		{
			name:       "send command",
			text:       "send 0.01 btc to bc1qar0srrr7xfkvy5l643lydnw9re59gtzzwf5mdq",
			wantType:   model.SentenceCommand,
			wantAction: model.ActionSend,
		},
		{
			name:       "balance question",
			text:       "what is my balance?",
			wantType:   model.SentenceQuestion,
			wantAction: model.ActionBalance,
		},
		{
			name:     "greeting",
			text:     "hello",
			wantType: model.SentenceEmotional,
		},
		{
			name:     "gratitude",
			text:     "thank you",
			wantType: model.SentenceEmotional,
		},
		{
			name:     "pure affirmation",
			text:     "yes",
			wantType: model.SentenceConfirmation,
		},
		{
			name:     "pure negation",
			text:     "no",
			wantType: model.SentenceCancellation,
		},
		{
			name:     "negation outweighs affirmation",
			text:     "yes no",
			wantType: model.SentenceCancellation,
		},
		{
			name:       "past tense is history",
			text:       "did I send anything yesterday?",
			wantType:   model.SentenceQuestion,
			wantAction: model.ActionHistory,
		},
		{
			name:       "explain request",
			text:       "explain fees to me",
			wantType:   model.SentenceCommand,
			wantAction: model.ActionExplain,
		},
		{
			name:     "empty input",
			text:     "",
			wantType: model.SentenceEmpty,
		},
		{
			name:     "pure gibberish falls through",
			text:     "zyx wvu qpo",
			wantType: model.SentenceEmpty,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.Analyze(tt.text, mem)
			assert.Equal(t, tt.wantType, got.Type, "type for %q", tt.text)
			if tt.wantAction != "" {
				assert.Equal(t, tt.wantAction, got.Action, "action for %q", tt.text)
			}
		})
	}
}

func TestAnalyze_QuestionsAndConcepts(t *testing.T) {
	a := newTestAnalyzer()
	mem := model.NewConversationMemory()

	tests := []struct {
		name       string
		text       string
		wantAction model.ActionKind
		wantTopic  model.ConceptKind
	}{
		{name: "fee question", text: "what are the fees?", wantAction: model.ActionFeeEstimate, wantTopic: model.ConceptFee},
		{name: "price question", text: "what's the price?", wantAction: model.ActionPrice, wantTopic: model.ConceptPrice},
		{name: "spanish balance", text: "¿cuánto tengo?", wantAction: model.ActionBalance},
		{name: "safety question", text: "is this safe?", wantAction: model.ActionExplain, wantTopic: model.ConceptSecurity},
		{name: "bare balance noun", text: "balance", wantAction: model.ActionBalance},
		{name: "affordability", text: "can I afford to send 0.5?", wantAction: model.ActionAfford},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.Analyze(tt.text, mem)
			assert.Equal(t, tt.wantAction, got.Action, "action for %q", tt.text)
			if tt.wantTopic != "" {
				assert.Equal(t, tt.wantTopic, got.Topic, "topic for %q", tt.text)
			}
		})
	}
}

func TestAnalyze_Comparatives(t *testing.T) {
	a := newTestAnalyzer()

	t.Run("faster targets fee", func(t *testing.T) {
		mem := model.NewConversationMemory()
		got := a.Analyze("make it faster", mem)
		assert.Equal(t, model.ObjectFee, got.Object)
		assert.Equal(t, model.ModifierIncrease, got.Modifier)
	})

	t.Run("more after fees shown targets fee", func(t *testing.T) {
		mem := model.NewConversationMemory()
		mem.LastShownFees = &model.FeeEstimates{Slow: 2, Medium: 10, Fast: 25}
		got := a.Analyze("a bit more", mem)
		assert.Equal(t, model.ObjectFee, got.Object)
	})

	t.Run("more with no fee context targets amount", func(t *testing.T) {
		mem := model.NewConversationMemory()
		got := a.Analyze("a little more", mem)
		assert.Equal(t, model.ObjectAmount, got.Object)
	})
}

func TestAnalyze_Negation(t *testing.T) {
	a := newTestAnalyzer()
	mem := model.NewConversationMemory()

	got := a.Analyze("don't send it", mem)
	assert.True(t, got.Negated || got.Type == model.SentenceCancellation,
		"negated send should cancel, got %+v", got)
}

func TestAnalyze_ContextSensitiveTokens(t *testing.T) {
	a := newTestAnalyzer()

	t.Run("bare number while awaiting amount is near-certain", func(t *testing.T) {
		mem := model.NewConversationMemory()
		mem.State = model.ConversationState{Kind: model.StateAwaitAmount}
		got := a.Analyze("0.01", mem)
		assert.GreaterOrEqual(t, got.Confidence, 0.9)
	})

	t.Run("bare number at idle is uncertain", func(t *testing.T) {
		mem := model.NewConversationMemory()
		got := a.Analyze("0.01", mem)
		assert.Less(t, got.Confidence, 0.7)
	})

	t.Run("quantifier mid-flow", func(t *testing.T) {
		mem := model.NewConversationMemory()
		mem.State = model.ConversationState{Kind: model.StateAwaitAmount}
		got := a.Analyze("all of it", mem)
		assert.Equal(t, model.ModifierAll, got.Modifier)
		assert.GreaterOrEqual(t, got.Confidence, 0.9)
	})
}

func TestAnalyze_ModifyPhrases(t *testing.T) {
	a := newTestAnalyzer()
	mem := model.NewConversationMemory()
	mem.State = model.ConversationState{
		Kind:      model.StateAwaitConfirm,
		Amount:    decimal.RequireFromString("0.01"),
		HasAmount: true,
		Address:   "bc1qar0srrr7xfkvy5l643lydnw9re59gtzzwf5mdq",
		FeeLevel:  model.FeeMedium,
	}

	got := a.Analyze("change the amount", mem)
	assert.Equal(t, model.ActionModify, got.Action)
	assert.Equal(t, model.ObjectAmount, got.Object)
}

func TestAnalyze_ConfidenceBounds(t *testing.T) {
	a := newTestAnalyzer()
	mem := model.NewConversationMemory()

	inputs := []string{
		"", "send", "what?", "hello!!!", "0.01", "make it faster",
		"send 0.01 btc to bc1qar0srrr7xfkvy5l643lydnw9re59gtzzwf5mdq",
		"did i send anything", "too expensive", "؟؟؟", "no no no",
	}
	for _, text := range inputs {
		got := a.Analyze(text, mem)
		assert.GreaterOrEqual(t, got.Confidence, 0.0, "input %q", text)
		assert.LessOrEqual(t, got.Confidence, 1.0, "input %q", text)
	}
}

func TestAnalyze_Deterministic(t *testing.T) {
	a := newTestAnalyzer()
	mem := model.NewConversationMemory()
	first := a.Analyze("can you make the fee a little cheaper?", mem)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, a.Analyze("can you make the fee a little cheaper?", mem))
	}
}

// Package classify fuses the sentence-meaning reading with keyword, entity,
// context, reference and social signals into one confidence-scored wallet
// intent. It is deterministic: the same text, memory and context always
// produce the same result.
package classify

import (
	"log/slog"
	"strings"

	"github.com/purser-dev/purser/internal/entity"
	"github.com/purser-dev/purser/internal/meaning"
	"github.com/purser-dev/purser/internal/model"
)

// meaningWinThreshold is the resolver confidence at which the meaning
// reading wins outright; contextWinThreshold is the context-rule score that
// overrides everything.
const (
	meaningWinThreshold = 0.7
	contextWinThreshold = 0.9
)

// Classifier is the multi-signal intent classifier.
type Classifier struct {
	analyzer  *meaning.Analyzer
	extractor entity.Extractor
}

// NewClassifier wires the classifier over a shared analyzer.
func NewClassifier(analyzer *meaning.Analyzer) *Classifier {
	return &Classifier{analyzer: analyzer, extractor: entity.NewExtractor()}
}

// Classify resolves one turn of input into a scored intent.
func (c *Classifier) Classify(text string, mem *model.ConversationMemory, ctx model.ConversationContext) model.ClassificationResult {
	trimmed := strings.TrimSpace(text)

	// Pure punctuation ("...") short-circuits before anything else runs.
	if trimmed == "" || purePunctRe.MatchString(trimmed) {
		return model.NewClassificationResult(model.UnknownIntent(text), 0.1, nil, nil)
	}

	sm := c.analyzer.Analyze(text, mem)
	ents := c.extractor.Extract(text)

	var scores []model.IntentScore
	scores = append(scores, flowContextSignal(mem, ents, sm)...)
	scores = append(scores, entitySignal(ents)...)
	scores = append(scores, referenceSignal(text, mem)...)
	scores = append(scores, patternSignal(text, keywordPatterns, weightKeyword, sourceKeyword)...)
	scores = append(scores, patternSignal(text, semanticPatterns, weightSemantic, sourceSemantic)...)
	scores = append(scores, patternSignal(text, socialPatterns, weightSocial, sourceSocial)...)

	merged := mergeScores(scores)
	merged = dampeners(text, sm.Negated, merged)

	winner := c.decide(text, sm, merged)
	winner.Intent = c.enrich(winner.Intent, ents, mem, ctx)

	slog.Debug("classified input",
		"intent", winner.Intent.Kind,
		"confidence", winner.Confidence,
		"source", winner.Source,
		"signals", len(merged))

	return model.NewClassificationResult(winner.Intent, winner.Confidence, merged, &sm)
}

// decide applies the selection policy: a context-rule score at or above the
// override threshold always wins; otherwise a confident meaning reading wins
// outright; otherwise the higher of meaning and best merged signal.
func (c *Classifier) decide(text string, sm model.SentenceMeaning, merged []model.IntentScore) model.IntentScore {
	meaningScore := model.IntentScore{
		Intent:     meaningIntent(sm, text),
		Confidence: sm.Confidence,
		Source:     sourceMeaning,
	}

	for _, s := range merged {
		if s.Source == sourceContext && s.Confidence >= contextWinThreshold {
			return s
		}
	}

	if sm.Confidence >= meaningWinThreshold && meaningScore.Intent.Kind != model.IntentUnknown {
		return meaningScore
	}

	if len(merged) > 0 && merged[0].Confidence > sm.Confidence {
		return merged[0]
	}
	if meaningScore.Intent.Kind == model.IntentUnknown && len(merged) > 0 {
		return merged[0]
	}
	return meaningScore
}

// actionIntent maps a resolved action to its intent kind.
var actionIntent = map[model.ActionKind]model.IntentKind{
	model.ActionSend:        model.IntentSend,
	model.ActionReceive:     model.IntentReceive,
	model.ActionNewAddress:  model.IntentNewAddress,
	model.ActionBalance:     model.IntentBalance,
	model.ActionShow:        model.IntentBalance,
	model.ActionHistory:     model.IntentHistory,
	model.ActionShowMore:    model.IntentHistory,
	model.ActionFeeEstimate: model.IntentFeeEstimate,
	model.ActionBumpFee:     model.IntentBumpFee,
	model.ActionPrice:       model.IntentPrice,
	model.ActionConvert:     model.IntentConvert,
	model.ActionHealth:      model.IntentWalletHealth,
	model.ActionUTXOs:       model.IntentUTXOList,
	model.ActionNetwork:     model.IntentNetwork,
	model.ActionExport:      model.IntentExport,
	model.ActionHideBalance: model.IntentHideBalance,
	model.ActionShowBalance: model.IntentShowBalance,
	model.ActionRefresh:     model.IntentRefresh,
	model.ActionTxDetail:    model.IntentTxDetail,
	model.ActionConfirm:     model.IntentConfirm,
	model.ActionCancel:      model.IntentCancel,
	model.ActionExplain:     model.IntentExplain,
	model.ActionAfford:      model.IntentBalance,
	model.ActionHelp:        model.IntentHelp,
	model.ActionAbout:       model.IntentAbout,
	model.ActionSettings:    model.IntentSettings,
	model.ActionGreet:       model.IntentGreeting,
}

// meaningIntent lifts a sentence meaning into an intent.
func meaningIntent(sm model.SentenceMeaning, raw string) model.WalletIntent {
	switch sm.Type {
	case model.SentenceConfirmation:
		return model.Intent(model.IntentConfirm)
	case model.SentenceCancellation:
		return model.Intent(model.IntentCancel)
	case model.SentenceEmotional:
		if sm.Action == model.ActionGreet || sm.Emotion != "" {
			return model.Intent(model.IntentGreeting)
		}
	}

	if sm.Action == model.ActionModify {
		// Modification has no intent arm of its own; the flow machine acts
		// on the meaning directly.
		return model.UnknownIntent(raw)
	}

	if kind, ok := actionIntent[sm.Action]; ok {
		intent := model.Intent(kind)
		intent.Topic = sm.Topic
		return intent
	}
	return model.UnknownIntent(raw)
}

// defaultHistoryCount is how many rows a history request shows when the user
// did not ask for a specific number.
const defaultHistoryCount = 5

// enrich fills the winning intent's slots with extracted entity values; the
// classifier never re-derives these itself.
func (c *Classifier) enrich(intent model.WalletIntent, ents entity.Entities, mem *model.ConversationMemory, ctx model.ConversationContext) model.WalletIntent {
	switch intent.Kind {
	case model.IntentSend:
		if intent.Amount == nil && ents.Amount != nil {
			intent.Amount = ents.Amount
			intent.Unit = ents.Unit
		}
		if intent.Address == "" {
			intent.Address = ents.Address
		}
		if intent.FeeLevel == "" {
			intent.FeeLevel = ents.FeeLevel
		}
	case model.IntentHistory:
		if intent.Count == 0 {
			intent.Count = ents.Count
		}
		if intent.Count == 0 {
			intent.Count = defaultHistoryCount
		}
	case model.IntentPrice, model.IntentConvert:
		if ents.Fiat != nil {
			intent.Currency = ents.Fiat.Currency
			if intent.Kind == model.IntentConvert && intent.Amount == nil {
				intent.Amount = &ents.Fiat.Amount
			}
		}
		if intent.Kind == model.IntentConvert && intent.Amount == nil && ents.Amount != nil {
			intent.Amount = ents.Amount
			intent.Unit = ents.Unit
		}
		if intent.Currency == "" {
			if _, ok := ctx.Price("USD"); ok {
				intent.Currency = "USD"
			}
		}
	case model.IntentBumpFee:
		if intent.TxID == "" {
			intent.TxID = ents.TxID
		}
		if intent.TxID == "" && mem != nil {
			intent.TxID = mem.LastSentTxID
		}
	case model.IntentTxDetail:
		if intent.TxID == "" {
			intent.TxID = ents.TxID
		}
	}
	return intent
}

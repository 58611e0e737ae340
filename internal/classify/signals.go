package classify

import (
	"regexp"
	"sort"
	"strings"

	"github.com/purser-dev/purser/internal/entity"
	"github.com/purser-dev/purser/internal/model"
)

// Signal source weights. Context rules outrank everything; each source
// below votes at its fixed weight and the per-intent merge blends the top
// two votes.
const (
	weightContext   = 0.95
	weightEntity    = 0.85
	weightReference = 0.8
	weightKeyword   = 0.6
	weightSemantic  = 0.5
	weightSocial    = 0.4

	negationDamp  = 0.6
	questionDamp  = 0.8
	hesitancyDamp = 0.85
)

// Source tags carried on IntentScore for auditability.
const (
	sourceContext   = "flow_context"
	sourceEntity    = "entity"
	sourceReference = "reference"
	sourceKeyword   = "keyword"
	sourceSemantic  = "semantic"
	sourceSocial    = "social"
	sourceMeaning   = "meaning"
)

// flowContextSignal: when the active flow awaits a specific datum and the
// input supplies it, that reading takes precedence over everything else.
func flowContextSignal(mem *model.ConversationMemory, ents entity.Entities, meaning model.SentenceMeaning) []model.IntentScore {
	if mem == nil {
		return nil
	}
	state := mem.State

	var scores []model.IntentScore
	add := func(intent model.WalletIntent) {
		scores = append(scores, model.IntentScore{Intent: intent, Confidence: weightContext, Source: sourceContext})
	}

	switch state.Kind {
	case model.StateAwaitAmount:
		if ents.Amount != nil {
			intent := model.Intent(model.IntentSend)
			intent.Amount = ents.Amount
			intent.Unit = ents.Unit
			intent.Address = state.Address
			add(intent)
		}
	case model.StateAwaitAddress:
		if ents.Address != "" {
			intent := model.Intent(model.IntentSend)
			intent.Address = ents.Address
			add(intent)
		}
	case model.StateAwaitFeeLevel:
		if ents.FeeLevel != "" {
			intent := model.Intent(model.IntentSend)
			intent.FeeLevel = ents.FeeLevel
			add(intent)
		} else if meaning.Type == model.SentenceConfirmation {
			add(model.Intent(model.IntentConfirm))
		}
	case model.StateAwaitConfirm:
		switch meaning.Type {
		case model.SentenceConfirmation:
			add(model.Intent(model.IntentConfirm))
		case model.SentenceCancellation:
			add(model.Intent(model.IntentCancel))
		}
	case model.StateError:
		// A correction after a rejected slot re-supplies the same datum.
		switch state.ErrCode {
		case model.ErrCodeInvalidAmount:
			if ents.Amount != nil {
				intent := model.Intent(model.IntentSend)
				intent.Amount = ents.Amount
				intent.Unit = ents.Unit
				intent.Address = state.Address
				add(intent)
			}
		case model.ErrCodeInvalidAddress, model.ErrCodeTestnet:
			if ents.Address != "" {
				intent := model.Intent(model.IntentSend)
				intent.Address = ents.Address
				add(intent)
			}
		}
	}

	// A paused flow resumes the same way: the awaited datum is near-certain.
	if state.Kind == model.StateIdle && mem.Paused != nil {
		switch mem.Paused.Kind {
		case model.StateAwaitAmount:
			if ents.Amount != nil {
				intent := model.Intent(model.IntentSend)
				intent.Amount = ents.Amount
				intent.Unit = ents.Unit
				intent.Address = mem.Paused.Address
				add(intent)
			}
		case model.StateAwaitAddress:
			if ents.Address != "" {
				intent := model.Intent(model.IntentSend)
				intent.Address = ents.Address
				add(intent)
			}
		case model.StateAwaitFeeLevel:
			if ents.FeeLevel != "" {
				intent := model.Intent(model.IntentSend)
				intent.FeeLevel = ents.FeeLevel
				add(intent)
			}
		}
	}

	return scores
}

// entitySignal: a well-formed address, txid or fiat amount anywhere in the
// text is near-certain evidence on its own.
func entitySignal(ents entity.Entities) []model.IntentScore {
	var scores []model.IntentScore
	if ents.Address != "" {
		intent := model.Intent(model.IntentSend)
		intent.Address = ents.Address
		if ents.Amount != nil {
			intent.Amount = ents.Amount
			intent.Unit = ents.Unit
		}
		scores = append(scores, model.IntentScore{Intent: intent, Confidence: weightEntity, Source: sourceEntity})
	}
	if ents.TxID != "" {
		intent := model.Intent(model.IntentTxDetail)
		intent.TxID = ents.TxID
		scores = append(scores, model.IntentScore{Intent: intent, Confidence: weightEntity, Source: sourceEntity})
	}
	if ents.Fiat != nil {
		intent := model.Intent(model.IntentConvert)
		intent.Amount = &ents.Fiat.Amount
		intent.Currency = ents.Fiat.Currency
		scores = append(scores, model.IntentScore{Intent: intent, Confidence: weightEntity, Source: sourceEntity})
	}
	return scores
}

var ordinalRe = regexp.MustCompile(`(?i)\b(first|1st|primera?|الأول|second|2nd|segund[oa]|الثاني|third|3rd|tercer[oa]|الثالث|last|[uú]ltim[oa]|الأخير|اخر)\b\s*(one|transaction|tx)?`)

var ordinalIndex = map[string]int{
	"first": 0, "1st": 0, "primera": 0, "primero": 0, "الأول": 0,
	"second": 1, "2nd": 1, "segundo": 1, "segunda": 1, "الثاني": 1,
	"third": 2, "3rd": 2, "tercero": 2, "tercera": 2, "الثالث": 2,
}

// referenceSignal resolves anaphoric ordinals ("the second one") against the
// previously shown transaction list.
func referenceSignal(text string, mem *model.ConversationMemory) []model.IntentScore {
	if mem == nil || len(mem.LastShownTxns) == 0 {
		return nil
	}
	m := ordinalRe.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	word := strings.ToLower(m[1])

	idx, ok := ordinalIndex[word]
	if !ok {
		// Any remaining match is a "last" variant.
		idx = len(mem.LastShownTxns) - 1
	}
	if idx >= len(mem.LastShownTxns) {
		return nil
	}

	intent := model.Intent(model.IntentTxDetail)
	intent.TxID = mem.LastShownTxns[idx].TxID
	return []model.IntentScore{{Intent: intent, Confidence: weightReference, Source: sourceReference}}
}

func patternSignal(text string, patterns []keywordPattern, weight float64, source string) []model.IntentScore {
	var scores []model.IntentScore
	for _, p := range patterns {
		if p.re.MatchString(text) {
			scores = append(scores, model.IntentScore{
				Intent:     model.Intent(p.intent),
				Confidence: weight,
				Source:     source,
			})
		}
	}
	return scores
}

// mergeScores blends all votes per intent kind: 70% of the highest vote
// plus 30% of the second, capped at 1.0. Kinds with a single vote keep it.
// The returned slice is sorted by blended confidence, best first.
func mergeScores(scores []model.IntentScore) []model.IntentScore {
	byKind := make(map[model.IntentKind][]model.IntentScore)
	order := make([]model.IntentKind, 0, len(scores))
	for _, s := range scores {
		if _, seen := byKind[s.Intent.Kind]; !seen {
			order = append(order, s.Intent.Kind)
		}
		byKind[s.Intent.Kind] = append(byKind[s.Intent.Kind], s)
	}

	merged := make([]model.IntentScore, 0, len(order))
	for _, kind := range order {
		votes := byKind[kind]
		sort.SliceStable(votes, func(i, j int) bool { return votes[i].Confidence > votes[j].Confidence })

		best := votes[0]
		if len(votes) > 1 {
			blended := 0.7*votes[0].Confidence + 0.3*votes[1].Confidence
			if blended > 1 {
				blended = 1
			}
			best.Confidence = blended
		}
		merged = append(merged, best)
	}

	sort.SliceStable(merged, func(i, j int) bool { return merged[i].Confidence > merged[j].Confidence })
	return merged
}

var (
	purePunctRe = regexp.MustCompile(`^[\s\p{P}]+$`)
	ellipsisRe  = regexp.MustCompile(`\.{3}|…`)
	hesitancyRe = regexp.MustCompile(`(?i)\b(hmm+|uh+|um+|err+|maybe|quiz[aá]s|يمكن)\b`)
)

// dampeners applies the punctuation and negation penalties to send/confirm
// readings after all scores are merged.
func dampeners(text string, negated bool, scores []model.IntentScore) []model.IntentScore {
	trailingQuestion := strings.HasSuffix(strings.TrimSpace(text), "?") || strings.HasSuffix(strings.TrimSpace(text), "؟")
	hesitant := ellipsisRe.MatchString(text) || hesitancyRe.MatchString(text)

	for i, s := range scores {
		if s.Intent.Kind != model.IntentSend && s.Intent.Kind != model.IntentConfirm {
			continue
		}
		c := s.Confidence
		if trailingQuestion {
			c *= questionDamp
		}
		if hesitant {
			c *= hesitancyDamp
		}
		if negated {
			c *= negationDamp
		}
		scores[i].Confidence = c
	}

	sort.SliceStable(scores, func(i, j int) bool { return scores[i].Confidence > scores[j].Confidence })
	return scores
}

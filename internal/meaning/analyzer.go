// Package meaning resolves a classified token sequence into one structured
// sentence meaning. Resolution is an ordered list of pattern rules evaluated
// top to bottom; the first rule whose precondition matches produces the
// result. The ordering is the tie-break when several rules structurally
// match, so rules must never be reordered casually.
package meaning

import (
	"strings"

	"github.com/purser-dev/purser/internal/lexicon"
	"github.com/purser-dev/purser/internal/model"
)

// Analyzer turns raw text into a SentenceMeaning.
type Analyzer struct {
	lex   *lexicon.Classifier
	rules []rule
}

// NewAnalyzer builds an analyzer over the shared lexical classifier.
func NewAnalyzer(lex *lexicon.Classifier) *Analyzer {
	a := &Analyzer{lex: lex}
	a.rules = orderedRules()
	return a
}

// Analyze resolves one input turn. It never fails: when no rule matches it
// returns the low-confidence empty meaning.
func (a *Analyzer) Analyze(text string, mem *model.ConversationMemory) model.SentenceMeaning {
	in := input{
		text:     text,
		tokens:   a.lex.ClassifyAll(text),
		memory:   mem,
		question: strings.Contains(text, "?") || strings.Contains(text, "؟"),
	}

	for _, r := range a.rules {
		if m, ok := r.apply(in); ok {
			return clamp(m)
		}
	}
	return model.EmptyMeaning()
}

// input is everything a rule may consult.
type input struct {
	text     string
	tokens   []model.ClassifiedToken
	memory   *model.ConversationMemory
	question bool
}

// rule pairs a name with a predicate-plus-handler. A false second return
// means the rule did not match and the next one is consulted.
type rule struct {
	name  string
	apply func(in input) (model.SentenceMeaning, bool)
}

func clamp(m model.SentenceMeaning) model.SentenceMeaning {
	if m.Confidence < 0 {
		m.Confidence = 0
	}
	if m.Confidence > 1 {
		m.Confidence = 1
	}
	return m
}

// Token-sequence helpers.

func (in input) meaningful() []model.ClassifiedToken {
	out := make([]model.ClassifiedToken, 0, len(in.tokens))
	for _, t := range in.tokens {
		if !t.IsNoise() {
			out = append(out, t)
		}
	}
	return out
}

func (in input) has(kind model.WordKind) bool {
	for _, t := range in.tokens {
		if t.Category.Kind == kind {
			return true
		}
	}
	return false
}

func (in input) first(kind model.WordKind) (model.WordCategory, bool) {
	for _, t := range in.tokens {
		if t.Category.Kind == kind {
			return t.Category, true
		}
	}
	return model.WordCategory{}, false
}

func (in input) firstToken(kind model.WordKind) (model.ClassifiedToken, bool) {
	for _, t := range in.tokens {
		if t.Category.Kind == kind {
			return t, true
		}
	}
	return model.ClassifiedToken{}, false
}

func (in input) negated() bool {
	return in.has(model.WordNegation)
}

func (in input) hasVerb() bool {
	return in.has(model.WordWalletVerb) || in.has(model.WordGeneralVerb)
}

func (in input) generalVerb(lemma string) bool {
	for _, t := range in.tokens {
		if t.Category.Kind == model.WordGeneralVerb && t.Category.Verb == lemma {
			return true
		}
	}
	return false
}

func (in input) taggedUnknown(prefix string) (string, bool) {
	for _, t := range in.tokens {
		if t.Category.Kind == model.WordUnknown && strings.HasPrefix(t.Category.Raw, prefix) {
			return strings.TrimPrefix(t.Category.Raw, prefix), true
		}
	}
	return "", false
}

// concepts returns every concept noun in token order.
func (in input) concepts() []model.ConceptKind {
	var out []model.ConceptKind
	for _, t := range in.tokens {
		if t.Category.Kind == model.WordBitcoinNoun {
			out = append(out, t.Category.Concept)
		}
	}
	return out
}

// conceptRank orders co-occurring concepts by specificity; the lowest rank
// wins.
var conceptRank = map[model.ConceptKind]int{
	model.ConceptFee:          0,
	model.ConceptTransaction:  1,
	model.ConceptHistory:      1,
	model.ConceptBalance:      2,
	model.ConceptPrice:        3,
	model.ConceptAddress:      4,
	model.ConceptUTXO:         5,
	model.ConceptNetwork:      6,
	model.ConceptWallet:       6,
	model.ConceptConfirmation: 7,
	model.ConceptSecurity:     7,
	model.ConceptBitcoin:      8,
}

func mostSpecific(concepts []model.ConceptKind) model.ConceptKind {
	best := concepts[0]
	for _, c := range concepts[1:] {
		if conceptRank[c] < conceptRank[best] {
			best = c
		}
	}
	return best
}

// conceptAction is each concept noun's default action.
var conceptAction = map[model.ConceptKind]model.ActionKind{
	model.ConceptFee:          model.ActionFeeEstimate,
	model.ConceptTransaction:  model.ActionHistory,
	model.ConceptHistory:      model.ActionHistory,
	model.ConceptBalance:      model.ActionBalance,
	model.ConceptPrice:        model.ActionPrice,
	model.ConceptAddress:      model.ActionReceive,
	model.ConceptUTXO:         model.ActionUTXOs,
	model.ConceptNetwork:      model.ActionNetwork,
	model.ConceptWallet:       model.ActionHealth,
	model.ConceptConfirmation: model.ActionExplain,
	model.ConceptSecurity:     model.ActionExplain,
	model.ConceptBitcoin:      model.ActionExplain,
}

// evaluationObject picks what an evaluative remark refers to: the fee if fee
// estimates were just shown, a known amount otherwise, else whatever was
// mentioned last.
func evaluationObject(mem *model.ConversationMemory) model.ObjectKind {
	switch {
	case mem != nil && mem.LastShownFees != nil:
		return model.ObjectFee
	case mem != nil && (mem.State.HasAmount || mem.LastAmount != nil):
		return model.ObjectAmount
	default:
		return model.ObjectLastMentioned
	}
}

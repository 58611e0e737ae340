package classify

import (
	"log/slog"
	"strings"

	"github.com/purser-dev/purser/internal/model"
)

// Disambiguator is the final rule layer. It may rewrite the classifier's
// decision using flow state, memory and punctuation heuristics before any
// response is generated. Rules run in order; each sees the previous rule's
// output.
type Disambiguator struct {
	rules []disambigRule
}

type disambigRule struct {
	name  string
	apply func(text string, res model.ClassificationResult, mem *model.ConversationMemory) (model.ClassificationResult, bool)
}

// NewDisambiguator builds the override layer with its fixed rule set.
func NewDisambiguator() *Disambiguator {
	return &Disambiguator{rules: []disambigRule{
		{name: "negated_send_is_cancel", apply: negatedSendIsCancel},
		{name: "questioned_send_is_explain", apply: questionedSendIsExplain},
		{name: "send_it_at_confirmation", apply: sendItAtConfirmation},
		{name: "orphan_confirm", apply: orphanConfirm},
		{name: "more_continues_history", apply: moreContinuesHistory},
		{name: "repeat_resends", apply: repeatResends},
		{name: "insistent_question_is_help", apply: insistentQuestionIsHelp},
	}}
}

// Apply runs every rule in order over the classifier's result.
func (d *Disambiguator) Apply(text string, res model.ClassificationResult, mem *model.ConversationMemory) model.ClassificationResult {
	for _, r := range d.rules {
		next, fired := r.apply(text, res, mem)
		if fired {
			slog.Debug("disambiguation override", "rule", r.name, "from", res.Intent.Kind, "to", next.Intent.Kind)
			res = next
		}
	}
	return res
}

// A send reading with a negation anywhere is a cancellation: "no, don't
// send it".
func negatedSendIsCancel(_ string, res model.ClassificationResult, _ *model.ConversationMemory) (model.ClassificationResult, bool) {
	if res.Intent.Kind != model.IntentSend || res.Meaning == nil || !res.Meaning.Negated {
		return res, false
	}
	return model.NewClassificationResult(model.Intent(model.IntentCancel), 0.85, res.Alternatives, res.Meaning), true
}

// "send?" with no slot values asks how sending works rather than starting a
// transfer.
func questionedSendIsExplain(text string, res model.ClassificationResult, _ *model.ConversationMemory) (model.ClassificationResult, bool) {
	if res.Intent.Kind != model.IntentSend {
		return res, false
	}
	trimmed := strings.TrimSpace(text)
	if !strings.HasSuffix(trimmed, "?") && !strings.HasSuffix(trimmed, "؟") {
		return res, false
	}
	if res.Intent.Amount != nil || res.Intent.Address != "" {
		return res, false
	}
	intent := model.Intent(model.IntentExplain)
	intent.Topic = model.ConceptTransaction
	return model.NewClassificationResult(intent, 0.75, res.Alternatives, res.Meaning), true
}

// A bare send verb at the confirmation step ("send it", "ok send") is the
// confirmation, not a new transfer.
func sendItAtConfirmation(_ string, res model.ClassificationResult, mem *model.ConversationMemory) (model.ClassificationResult, bool) {
	if mem == nil || mem.State.Kind != model.StateAwaitConfirm {
		return res, false
	}
	if res.Intent.Kind != model.IntentSend || res.Intent.Amount != nil || res.Intent.Address != "" {
		return res, false
	}
	return model.NewClassificationResult(model.Intent(model.IntentConfirm), 0.9, res.Alternatives, res.Meaning), true
}

// A confirmation with nothing pending and nothing paused has no object;
// downgrade it so the host asks what to confirm.
func orphanConfirm(text string, res model.ClassificationResult, mem *model.ConversationMemory) (model.ClassificationResult, bool) {
	if res.Intent.Kind != model.IntentConfirm {
		return res, false
	}
	if mem != nil && (mem.State.Active() || mem.Paused != nil) {
		return res, false
	}
	return model.NewClassificationResult(model.UnknownIntent(text), 0.4, res.Alternatives, res.Meaning), true
}

// "more" right after a history listing pages the list instead of reading as
// a bare comparative.
func moreContinuesHistory(_ string, res model.ClassificationResult, mem *model.ConversationMemory) (model.ClassificationResult, bool) {
	if mem == nil || mem.LastIntent == nil || mem.LastIntent.Kind != model.IntentHistory {
		return res, false
	}
	if res.Intent.Kind != model.IntentUnknown || res.Meaning == nil {
		return res, false
	}
	if res.Meaning.Modifier != model.ModifierIncrease && res.Meaning.Modifier != model.ModifierNext {
		return res, false
	}
	intent := model.Intent(model.IntentHistory)
	intent.Count = mem.LastIntent.Count + defaultHistoryCount
	return model.NewClassificationResult(intent, 0.8, res.Alternatives, res.Meaning), true
}

// "again" repeats the last transfer when one exists.
func repeatResends(_ string, res model.ClassificationResult, mem *model.ConversationMemory) (model.ClassificationResult, bool) {
	if mem == nil || mem.LastSentTxID == "" {
		return res, false
	}
	if res.Meaning == nil || res.Meaning.Modifier != model.ModifierAgain {
		return res, false
	}
	if res.Intent.Kind != model.IntentUnknown && res.Intent.Kind != model.IntentSend {
		return res, false
	}
	intent := model.Intent(model.IntentSend)
	intent.Address = mem.LastAddress
	intent.Amount = mem.LastAmount
	return model.NewClassificationResult(intent, 0.75, res.Alternatives, res.Meaning), true
}

// Stacked question marks on an unresolved reading signal a lost user; offer
// help rather than another shrug.
func insistentQuestionIsHelp(text string, res model.ClassificationResult, _ *model.ConversationMemory) (model.ClassificationResult, bool) {
	if res.Intent.Kind != model.IntentUnknown || res.Confidence >= model.ClarificationThreshold {
		return res, false
	}
	if !strings.Contains(text, "??") {
		return res, false
	}
	return model.NewClassificationResult(model.Intent(model.IntentHelp), 0.55, res.Alternatives, res.Meaning), true
}

package meaning

import (
	"strings"

	"github.com/purser-dev/purser/internal/model"
)

// orderedRules is the full cascade. Precedence is load-bearing: several
// rules structurally match the same inputs and the earlier one must win.
func orderedRules() []rule {
	return []rule{
		{name: "special_literals", apply: specialLiterals},
		{name: "single_token", apply: singleToken},
		{name: "greeting_only", apply: greetingOnly},
		{name: "emotion_only", apply: emotionOnly},
		{name: "pure_affirm_negate", apply: pureAffirmNegate},
		{name: "possessive_unit", apply: possessiveUnit},
		{name: "bare_question", apply: bareQuestion},
		{name: "numeric_unit_question", apply: numericUnitQuestion},
		{name: "comparative", apply: comparativeRule},
		{name: "safety_question", apply: safetyQuestion},
		{name: "evaluative", apply: evaluativeRule},
		{name: "directional", apply: directionalRule},
		{name: "modal_afford", apply: modalAfford},
		{name: "past_tense", apply: pastTense},
		{name: "wallet_verb", apply: walletVerbRule},
		{name: "general_verb_concept", apply: generalVerbConcept},
		{name: "concept_noun", apply: conceptNoun},
		{name: "context_fallback", apply: contextFallback},
	}
}

// Rule 1: fee-level phrases and explicit "change X" literals short-circuit
// to a modify command before anything else is considered.
func specialLiterals(in input) (model.SentenceMeaning, bool) {
	tokens := in.meaningful()
	if len(tokens) == 0 {
		return model.SentenceMeaning{}, false
	}

	var object model.ObjectKind
	for _, t := range tokens {
		c := t.Category
		if c.Kind != model.WordUnknown {
			return model.SentenceMeaning{}, false
		}
		switch {
		case strings.HasPrefix(c.Raw, "feelevel:"):
			object = model.ObjectFee
		case c.Raw == "modify:amount":
			object = model.ObjectAmount
		case c.Raw == "modify:address":
			object = model.ObjectAddress
		case c.Raw == "modify:fee":
			object = model.ObjectFee
		default:
			return model.SentenceMeaning{}, false
		}
	}

	return model.SentenceMeaning{
		Type:       model.SentenceCommand,
		Action:     model.ActionModify,
		Object:     object,
		Confidence: 0.95,
		Negated:    in.negated(),
	}, true
}

// Rule 2: single meaningful token, resolved purely on its category.
func singleToken(in input) (model.SentenceMeaning, bool) {
	tokens := in.meaningful()
	if len(tokens) != 1 {
		return model.SentenceMeaning{}, false
	}
	return singleWordMeaning(tokens[0], in)
}

func singleWordMeaning(t model.ClassifiedToken, in input) (model.SentenceMeaning, bool) {
	c := t.Category
	state := model.Idle()
	if in.memory != nil {
		state = in.memory.State
	}

	switch c.Kind {
	case model.WordAffirmation:
		return model.SentenceMeaning{Type: model.SentenceConfirmation, Action: model.ActionConfirm, Confidence: 0.9}, true
	case model.WordNegation:
		return model.SentenceMeaning{Type: model.SentenceCancellation, Action: model.ActionCancel, Negated: true, Confidence: 0.9}, true
	case model.WordGreeting:
		return model.SentenceMeaning{Type: model.SentenceEmotional, Action: model.ActionGreet, Confidence: 0.9}, true
	case model.WordEmotion:
		return model.SentenceMeaning{Type: model.SentenceEmotional, Emotion: c.Emotion, Confidence: 0.9}, true
	case model.WordWalletVerb:
		switch c.Action {
		case model.ActionConfirm:
			if in.question {
				// "confirm?" asks how confirmation works, not to confirm.
				return model.SentenceMeaning{Type: model.SentenceQuestion, Action: model.ActionExplain, Topic: model.ConceptConfirmation, Confidence: 0.8}, true
			}
			return model.SentenceMeaning{Type: model.SentenceConfirmation, Action: model.ActionConfirm, Confidence: 0.85}, true
		case model.ActionCancel:
			return model.SentenceMeaning{Type: model.SentenceCancellation, Action: model.ActionCancel, Confidence: 0.9}, true
		default:
			typ := model.SentenceCommand
			if in.question {
				typ = model.SentenceQuestion
			}
			return model.SentenceMeaning{Type: typ, Action: c.Action, Confidence: 0.8}, true
		}
	case model.WordBitcoinNoun:
		return model.SentenceMeaning{Type: model.SentenceQuestion, Action: conceptAction[c.Concept], Topic: c.Concept, Confidence: 0.75}, true
	case model.WordBitcoinUnit:
		return model.SentenceMeaning{Type: model.SentenceQuestion, Action: model.ActionPrice, Subject: model.SubjectPrice, Confidence: 0.6}, true
	case model.WordQuestion:
		return questionKindMeaning(c.Question, 0.6), true
	case model.WordNumber:
		conf := 0.5
		if state.Kind == model.StateAwaitAmount {
			conf = 0.95
		}
		return model.SentenceMeaning{Type: model.SentenceStatement, Object: model.ObjectAmount, Confidence: conf}, true
	case model.WordAddress:
		conf := 0.6
		if state.Kind == model.StateAwaitAddress {
			conf = 0.95
		}
		return model.SentenceMeaning{Type: model.SentenceStatement, Object: model.ObjectAddress, Confidence: conf}, true
	case model.WordTxID:
		return model.SentenceMeaning{Type: model.SentenceQuestion, Action: model.ActionTxDetail, Object: model.ObjectTransaction, Confidence: 0.85}, true
	case model.WordComparative:
		return model.SentenceMeaning{
			Type:       model.SentenceCommand,
			Action:     model.ActionModify,
			Object:     comparativeObject(c, in.memory),
			Modifier:   compareModifier(c.Compare),
			Confidence: 0.7,
		}, true
	case model.WordQuantifier:
		conf := 0.4
		if state.Active() {
			conf = 0.9
		}
		return model.SentenceMeaning{
			Type:       model.SentenceCommand,
			Action:     model.ActionModify,
			Object:     model.ObjectAmount,
			Modifier:   quantityModifier(c.Quantity),
			Confidence: conf,
		}, true
	case model.WordDirectional:
		m := model.SentenceMeaning{
			Type:       model.SentenceCommand,
			Action:     c.Action,
			Object:     model.ObjectLastMentioned,
			Modifier:   navModifier(c.Nav),
			Confidence: 0.65,
		}
		return m, true
	case model.WordUnknown:
		if strings.HasPrefix(c.Raw, "currency:") {
			return model.SentenceMeaning{Type: model.SentenceQuestion, Action: model.ActionPrice, Subject: model.SubjectPrice, Confidence: 0.6}, true
		}
		if strings.HasPrefix(c.Raw, "fiat:") {
			conf := 0.5
			if state.Kind == model.StateAwaitAmount {
				conf = 0.9
			}
			return model.SentenceMeaning{Type: model.SentenceStatement, Object: model.ObjectAmount, Confidence: conf}, true
		}
	}
	return model.SentenceMeaning{}, false
}

// Rule 3: the whole input is greetings (plus noise).
func greetingOnly(in input) (model.SentenceMeaning, bool) {
	tokens := in.meaningful()
	if len(tokens) == 0 {
		return model.SentenceMeaning{}, false
	}
	for _, t := range tokens {
		if t.Category.Kind != model.WordGreeting {
			return model.SentenceMeaning{}, false
		}
	}
	return model.SentenceMeaning{Type: model.SentenceEmotional, Action: model.ActionGreet, Confidence: 0.95}, true
}

// Rule 4: pure emotion input; greetings may tag along.
func emotionOnly(in input) (model.SentenceMeaning, bool) {
	tokens := in.meaningful()
	var emo model.EmotionKind
	for _, t := range tokens {
		switch t.Category.Kind {
		case model.WordEmotion:
			emo = t.Category.Emotion
		case model.WordGreeting, model.WordPronoun:
		default:
			return model.SentenceMeaning{}, false
		}
	}
	if emo == "" {
		return model.SentenceMeaning{}, false
	}
	return model.SentenceMeaning{Type: model.SentenceEmotional, Emotion: emo, Confidence: 0.9}, true
}

// Rule 5: pure affirmation or negation, optionally with filler words; a
// negation anywhere outweighs affirmations.
func pureAffirmNegate(in input) (model.SentenceMeaning, bool) {
	tokens := in.meaningful()
	if len(tokens) == 0 {
		return model.SentenceMeaning{}, false
	}
	sawAffirm, sawNegate := false, false
	for _, t := range tokens {
		switch t.Category.Kind {
		case model.WordAffirmation:
			sawAffirm = true
		case model.WordNegation:
			sawNegate = true
		case model.WordGreeting, model.WordEmotion, model.WordPronoun:
		default:
			return model.SentenceMeaning{}, false
		}
	}
	switch {
	case sawNegate:
		return model.SentenceMeaning{Type: model.SentenceCancellation, Action: model.ActionCancel, Negated: true, Confidence: 0.9}, true
	case sawAffirm:
		return model.SentenceMeaning{Type: model.SentenceConfirmation, Action: model.ActionConfirm, Confidence: 0.9}, true
	}
	return model.SentenceMeaning{}, false
}

// Rule 6: possessive plus a bare Bitcoin unit ("my btc") asks for balance.
func possessiveUnit(in input) (model.SentenceMeaning, bool) {
	if in.hasVerb() || in.has(model.WordNumber) || in.has(model.WordAddress) {
		return model.SentenceMeaning{}, false
	}
	if !in.has(model.WordBitcoinUnit) {
		return model.SentenceMeaning{}, false
	}
	poss := false
	for _, t := range in.tokens {
		if t.Category.Kind == model.WordPronoun && t.Category.Pronoun == model.PronounPossessive {
			poss = true
		}
	}
	if !poss || in.has(model.WordQuestion) {
		return model.SentenceMeaning{}, false
	}
	return model.SentenceMeaning{
		Type:       model.SentenceQuestion,
		Action:     model.ActionBalance,
		Subject:    model.SubjectBalance,
		Confidence: 0.85,
	}, true
}

// Rule 7: a question word with no verb-of-action, number or address. A
// co-occurring concept noun picks the action; ownership wording plus a unit
// forces a balance reading over the bare price default.
func bareQuestion(in input) (model.SentenceMeaning, bool) {
	q, ok := in.first(model.WordQuestion)
	if !ok {
		return model.SentenceMeaning{}, false
	}
	if in.has(model.WordNumber) || in.has(model.WordAddress) || in.has(model.WordWalletVerb) {
		return model.SentenceMeaning{}, false
	}

	if concepts := in.concepts(); len(concepts) > 0 {
		c := mostSpecific(concepts)
		return model.SentenceMeaning{
			Type:       model.SentenceQuestion,
			Action:     conceptAction[c],
			Topic:      c,
			Negated:    in.negated(),
			Confidence: 0.85,
		}, true
	}

	ownership := in.generalVerb("have") || in.generalVerb("own")
	hasUnit := in.has(model.WordBitcoinUnit)

	if q.Question == model.QuestionHowMuch || q.Question == model.QuestionHowMany {
		if ownership || (hasUnit && in.has(model.WordPronoun)) {
			return model.SentenceMeaning{Type: model.SentenceQuestion, Action: model.ActionBalance, Subject: model.SubjectBalance, Confidence: 0.85}, true
		}
		if hasUnit {
			return model.SentenceMeaning{Type: model.SentenceQuestion, Action: model.ActionPrice, Subject: model.SubjectPrice, Confidence: 0.8}, true
		}
	}

	return questionKindMeaning(q.Question, 0.7), true
}

// questionKindMeaning is the sub-table for bare interrogatives.
func questionKindMeaning(k model.QuestionKind, conf float64) model.SentenceMeaning {
	m := model.SentenceMeaning{Type: model.SentenceQuestion, Confidence: conf}
	switch k {
	case model.QuestionHowMuch, model.QuestionHowMany:
		m.Action = model.ActionBalance
		m.Subject = model.SubjectBalance
	case model.QuestionWhere:
		m.Action = model.ActionReceive
	case model.QuestionWhen:
		m.Action = model.ActionExplain
		m.Topic = model.ConceptConfirmation
	case model.QuestionWhy, model.QuestionHow, model.QuestionWhat:
		m.Action = model.ActionHelp
	default:
		m.Action = model.ActionHelp
	}
	return m
}

// Rule 8: number + unit + question word reads as price conversion, not
// balance ("how much is 0.5 btc").
func numericUnitQuestion(in input) (model.SentenceMeaning, bool) {
	if !in.has(model.WordQuestion) || !in.has(model.WordNumber) || !in.has(model.WordBitcoinUnit) {
		return model.SentenceMeaning{}, false
	}
	return model.SentenceMeaning{
		Type:       model.SentenceQuestion,
		Action:     model.ActionConvert,
		Subject:    model.SubjectPrice,
		Object:     model.ObjectPrice,
		Confidence: 0.85,
	}, true
}

// comparativeHelpers are the only verbs a comparative may combine with and
// still read as a modify request.
var comparativeHelpers = map[string]bool{
	"make": true, "go": true, "get": true, "wait": true, "set": true,
}

// Rule 9: a comparative alone or with a compatible helper verb adjusts fee
// or amount. "bitcoin up?"-style price questions are explicitly excluded.
func comparativeRule(in input) (model.SentenceMeaning, bool) {
	cmp, ok := in.first(model.WordComparative)
	if !ok {
		return model.SentenceMeaning{}, false
	}

	// Exclusion: up/down against a bare unit is a price question.
	if (cmp.Raw == "up" || cmp.Raw == "down") && in.has(model.WordBitcoinUnit) && !in.hasVerb() && !in.has(model.WordNumber) {
		return model.SentenceMeaning{}, false
	}

	for _, t := range in.tokens {
		switch t.Category.Kind {
		case model.WordGeneralVerb:
			if !comparativeHelpers[t.Category.Verb] {
				return model.SentenceMeaning{}, false
			}
		case model.WordWalletVerb, model.WordNumber, model.WordAddress, model.WordQuestion:
			return model.SentenceMeaning{}, false
		}
	}

	return model.SentenceMeaning{
		Type:       model.SentenceCommand,
		Action:     model.ActionModify,
		Object:     comparativeObject(cmp, in.memory),
		Modifier:   compareModifier(cmp.Compare),
		Negated:    in.negated(),
		Confidence: 0.8,
	}, true
}

// comparativeObject targets the fee when a fee context was last shown, the
// amount otherwise. Speed-family comparatives always mean fee.
func comparativeObject(c model.WordCategory, mem *model.ConversationMemory) model.ObjectKind {
	if c.Raw == "faster" || c.Raw == "slower" || c.Raw == "cheaper" {
		return model.ObjectFee
	}
	if mem != nil && mem.LastShownFees != nil {
		return model.ObjectFee
	}
	return model.ObjectAmount
}

// Rule 10: safety/risk wording as a question is an explain request, claimed
// before the generic evaluative rule.
func safetyQuestion(in input) (model.SentenceMeaning, bool) {
	ev, ok := in.first(model.WordEvaluative)
	if !ok {
		return model.SentenceMeaning{}, false
	}
	if ev.Judgment != model.JudgmentSafe && ev.Judgment != model.JudgmentRisky {
		return model.SentenceMeaning{}, false
	}
	if !in.question && !in.generalVerb("be") {
		return model.SentenceMeaning{}, false
	}
	return model.SentenceMeaning{
		Type:       model.SentenceQuestion,
		Action:     model.ActionExplain,
		Topic:      model.ConceptSecurity,
		Judgment:   ev.Judgment,
		Negated:    in.negated(),
		Confidence: 0.85,
	}, true
}

// Rule 11: generic evaluation ("too much", "good", ...). The object follows
// what was shown last.
func evaluativeRule(in input) (model.SentenceMeaning, bool) {
	ev, ok := in.first(model.WordEvaluative)
	if !ok {
		return model.SentenceMeaning{}, false
	}
	return model.SentenceMeaning{
		Type:       model.SentenceEvaluation,
		Object:     evaluationObject(in.memory),
		Judgment:   ev.Judgment,
		Negated:    in.negated(),
		Confidence: 0.75,
	}, true
}

// directionalHelpers are the verbs a directional word may ride along with.
var directionalHelpers = map[string]bool{
	"tell": true, "see": true, "look": true, "explain": true, "teach": true,
}

// Rule 12: directional navigation (back/again/first/next/last) alone or
// with a compatible verb, but never when a number + transaction noun means
// a count query ("last 3 transactions").
func directionalRule(in input) (model.SentenceMeaning, bool) {
	dir, ok := in.first(model.WordDirectional)
	if !ok {
		return model.SentenceMeaning{}, false
	}

	if in.has(model.WordNumber) {
		for _, c := range in.concepts() {
			if c == model.ConceptTransaction || c == model.ConceptHistory {
				return model.SentenceMeaning{}, false
			}
		}
	}

	for _, t := range in.tokens {
		switch t.Category.Kind {
		case model.WordGeneralVerb:
			if !directionalHelpers[t.Category.Verb] {
				return model.SentenceMeaning{}, false
			}
		case model.WordWalletVerb:
			if t.Category.Action != model.ActionShow {
				return model.SentenceMeaning{}, false
			}
		}
	}

	m := model.SentenceMeaning{
		Type:       model.SentenceCommand,
		Action:     dir.Action,
		Object:     model.ObjectLastMentioned,
		Modifier:   navModifier(dir.Nav),
		Negated:    in.negated(),
		Confidence: 0.7,
	}
	if concepts := in.concepts(); len(concepts) > 0 && m.Action == "" {
		m.Action = conceptAction[mostSpecific(concepts)]
		m.Confidence = 0.75
	}
	return m, true
}

// Rule 13: modal + "afford" is an affordability comparison.
func modalAfford(in input) (model.SentenceMeaning, bool) {
	if !in.has(model.WordModal) || !in.generalVerb("afford") {
		return model.SentenceMeaning{}, false
	}
	return model.SentenceMeaning{
		Type:       model.SentenceQuestion,
		Action:     model.ActionAfford,
		Subject:    model.SubjectBalance,
		Object:     model.ObjectAmount,
		Negated:    in.negated(),
		Confidence: 0.8,
	}, true
}

// Rule 14: past-tense send/receive phrasing is a history question, not a
// new transfer.
func pastTense(in input) (model.SentenceMeaning, bool) {
	verb, ok := in.first(model.WordWalletVerb)
	if !ok || (verb.Action != model.ActionSend && verb.Action != model.ActionReceive) {
		return model.SentenceMeaning{}, false
	}

	past := verb.Time == model.TimePast
	if !past {
		for _, t := range in.tokens {
			if t.Category.Kind == model.WordTemporal && t.Category.Time == model.TimePast {
				past = true
				break
			}
		}
	}
	if !past {
		return model.SentenceMeaning{}, false
	}

	return model.SentenceMeaning{
		Type:       model.SentenceQuestion,
		Action:     model.ActionHistory,
		Subject:    model.SubjectTransaction,
		Negated:    in.negated(),
		Confidence: 0.8,
	}, true
}

// showFamily marks display verbs for the show/check sub-rules.
var showFamily = map[model.ActionKind]bool{model.ActionShow: true}

// Rule 15: a recognized wallet verb maps to its canonical action, with the
// documented special cases.
func walletVerbRule(in input) (model.SentenceMeaning, bool) {
	verb, ok := in.first(model.WordWalletVerb)
	if !ok {
		return model.SentenceMeaning{}, false
	}
	concepts := in.concepts()
	hasEntities := in.has(model.WordNumber) || in.has(model.WordAddress) || in.has(model.WordTxID)

	// Negated verb cancels whatever was being asked.
	if in.negated() {
		return model.SentenceMeaning{Type: model.SentenceCancellation, Action: model.ActionCancel, Negated: true, Confidence: 0.85}, true
	}

	// "confirm?" with nothing else asks about confirmation timing.
	if verb.Action == model.ActionConfirm && in.question && !hasEntities {
		return model.SentenceMeaning{Type: model.SentenceQuestion, Action: model.ActionExplain, Topic: model.ConceptConfirmation, Confidence: 0.8}, true
	}

	if showFamily[verb.Action] {
		// "show more" with no noun pages through history.
		if cmp, ok := in.first(model.WordComparative); ok && cmp.Raw == "more" && len(concepts) == 0 {
			return model.SentenceMeaning{Type: model.SentenceCommand, Action: model.ActionShowMore, Confidence: 0.8}, true
		}
		if len(concepts) > 0 {
			c := mostSpecific(concepts)
			switch c {
			case model.ConceptBalance:
				// "show balance" undoes hiding; it is the privacy toggle.
				return model.SentenceMeaning{Type: model.SentenceCommand, Action: model.ActionShowBalance, Object: model.ObjectBalance, Confidence: 0.85}, true
			case model.ConceptWallet:
				return model.SentenceMeaning{Type: model.SentenceCommand, Action: model.ActionBalance, Confidence: 0.85}, true
			default:
				return model.SentenceMeaning{Type: model.SentenceCommand, Action: conceptAction[c], Topic: c, Confidence: 0.85}, true
			}
		}
	}

	if verb.Action == model.ActionHideBalance {
		return model.SentenceMeaning{Type: model.SentenceCommand, Action: model.ActionHideBalance, Object: model.ObjectBalance, Confidence: 0.85}, true
	}

	// "change" plus a number is an amount modification even without a noun.
	if verb.Action == model.ActionModify {
		obj := model.ObjectLastMentioned
		switch {
		case in.has(model.WordNumber):
			obj = model.ObjectAmount
		case in.has(model.WordAddress):
			obj = model.ObjectAddress
		case len(concepts) > 0 && mostSpecific(concepts) == model.ConceptFee:
			obj = model.ObjectFee
		}
		return model.SentenceMeaning{Type: model.SentenceCommand, Action: model.ActionModify, Object: obj, Confidence: 0.85}, true
	}

	// A question-form verb sentence with no entities asks about the action.
	if in.question && !hasEntities && len(concepts) == 0 {
		return model.SentenceMeaning{Type: model.SentenceQuestion, Action: verb.Action, Confidence: 0.75}, true
	}

	conf := 0.85
	if verb.Action == model.ActionSend && hasEntities {
		conf = 0.9
	}
	return model.SentenceMeaning{Type: model.SentenceCommand, Action: verb.Action, Negated: in.negated(), Confidence: conf}, true
}

// Rule 16: a general verb with a Bitcoin concept noun takes the noun's
// default action; teach/explain verbs force an explain reading.
func generalVerbConcept(in input) (model.SentenceMeaning, bool) {
	if !in.has(model.WordGeneralVerb) {
		return model.SentenceMeaning{}, false
	}
	concepts := in.concepts()
	if len(concepts) == 0 {
		return model.SentenceMeaning{}, false
	}
	c := mostSpecific(concepts)

	action := conceptAction[c]
	if in.generalVerb("explain") || in.generalVerb("teach") || in.generalVerb("learn") {
		action = model.ActionExplain
	}

	typ := model.SentenceCommand
	if in.question {
		typ = model.SentenceQuestion
	}
	return model.SentenceMeaning{
		Type:       typ,
		Action:     action,
		Topic:      c,
		Negated:    in.negated(),
		Confidence: 0.8,
	}, true
}

// Rule 17: concept nouns with no verb; the specificity ranking picks the
// operative one. A bare unit with up/down (excluded from rule 9) lands here
// as a price question.
func conceptNoun(in input) (model.SentenceMeaning, bool) {
	if concepts := in.concepts(); len(concepts) > 0 {
		c := mostSpecific(concepts)
		return model.SentenceMeaning{
			Type:       model.SentenceQuestion,
			Action:     conceptAction[c],
			Topic:      c,
			Negated:    in.negated(),
			Confidence: 0.75,
		}, true
	}

	if in.has(model.WordBitcoinUnit) {
		if cmp, ok := in.first(model.WordComparative); ok && (cmp.Raw == "up" || cmp.Raw == "down") {
			return model.SentenceMeaning{Type: model.SentenceQuestion, Action: model.ActionPrice, Subject: model.SubjectPrice, Confidence: 0.75}, true
		}
	}
	return model.SentenceMeaning{}, false
}

// Rule 18: bare address, fiat/number or quantifier resolved against the
// current flow state; confidence is high only when the flow is explicitly
// waiting for that datum.
func contextFallback(in input) (model.SentenceMeaning, bool) {
	state := model.Idle()
	if in.memory != nil {
		state = in.memory.State
	}

	if in.has(model.WordAddress) {
		conf := 0.5
		if state.Kind == model.StateAwaitAddress {
			conf = 0.95
		}
		return model.SentenceMeaning{Type: model.SentenceStatement, Object: model.ObjectAddress, Confidence: conf}, true
	}

	_, isFiat := in.taggedUnknown("fiat:")
	if in.has(model.WordNumber) || isFiat {
		conf := 0.5
		if state.Kind == model.StateAwaitAmount {
			conf = 0.95
		}
		return model.SentenceMeaning{Type: model.SentenceStatement, Object: model.ObjectAmount, Confidence: conf}, true
	}

	if q, ok := in.first(model.WordQuantifier); ok {
		conf := 0.4
		if state.Active() {
			conf = 0.9
		}
		return model.SentenceMeaning{
			Type:       model.SentenceCommand,
			Action:     model.ActionModify,
			Object:     model.ObjectAmount,
			Modifier:   quantityModifier(q.Quantity),
			Confidence: conf,
		}, true
	}

	return model.SentenceMeaning{}, false
}

// Modifier mappings.

func compareModifier(d model.CompareDirection) model.ModifierKind {
	if d == model.CompareDecrease {
		return model.ModifierDecrease
	}
	return model.ModifierIncrease
}

func quantityModifier(q model.QuantityKind) model.ModifierKind {
	switch q {
	case model.QuantityHalf:
		return model.ModifierHalf
	case model.QuantityDouble:
		return model.ModifierDouble
	case model.QuantityAll, model.QuantityMost:
		return model.ModifierAll
	default:
		return model.ModifierAll
	}
}

func navModifier(n model.NavDirection) model.ModifierKind {
	switch n {
	case model.NavBack:
		return model.ModifierBack
	case model.NavAgain:
		return model.ModifierAgain
	case model.NavFirst:
		return model.ModifierFirst
	case model.NavNext:
		return model.ModifierNext
	case model.NavLast:
		return model.ModifierLast
	default:
		return model.ModifierAgain
	}
}

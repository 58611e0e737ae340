// Package model defines the core domain models used throughout the application.
package model

import "github.com/shopspring/decimal"

// WordKind identifies the grammatical or domain category of a single token.
type WordKind string

// Word kind constants.
const (
	WordQuestion    WordKind = "QUESTION"
	WordPronoun     WordKind = "PRONOUN"
	WordConjunction WordKind = "CONJUNCTION"
	WordPreposition WordKind = "PREPOSITION"
	WordArticle     WordKind = "ARTICLE"
	WordModal       WordKind = "MODAL"
	WordWalletVerb  WordKind = "WALLET_VERB"
	WordGeneralVerb WordKind = "GENERAL_VERB"
	WordComparative WordKind = "COMPARATIVE"
	WordQuantifier  WordKind = "QUANTIFIER"
	WordEvaluative  WordKind = "EVALUATIVE"
	WordDirectional WordKind = "DIRECTIONAL"
	WordTemporal    WordKind = "TEMPORAL"
	WordNegation    WordKind = "NEGATION"
	WordAffirmation WordKind = "AFFIRMATION"
	WordBitcoinNoun WordKind = "BITCOIN_NOUN"
	WordBitcoinUnit WordKind = "BITCOIN_UNIT"
	WordGreeting    WordKind = "GREETING"
	WordEmotion     WordKind = "EMOTION"
	WordNumber      WordKind = "NUMBER"
	WordAddress     WordKind = "ADDRESS"
	WordTxID        WordKind = "TXID"
	WordUnknown     WordKind = "UNKNOWN"
)

// QuestionKind distinguishes interrogative words.
type QuestionKind string

// Question kinds.
const (
	QuestionWhat    QuestionKind = "what"
	QuestionHow     QuestionKind = "how"
	QuestionHowMuch QuestionKind = "how_much"
	QuestionHowMany QuestionKind = "how_many"
	QuestionWhen    QuestionKind = "when"
	QuestionWhere   QuestionKind = "where"
	QuestionWhy     QuestionKind = "why"
	QuestionWhich   QuestionKind = "which"
	QuestionWho     QuestionKind = "who"
)

// PronounKind distinguishes pronoun roles relevant to intent resolution.
type PronounKind string

// Pronoun kinds.
const (
	PronounFirst      PronounKind = "first_person"
	PronounSecond     PronounKind = "second_person"
	PronounAnaphoric  PronounKind = "anaphoric"
	PronounPossessive PronounKind = "possessive"
)

// ModalKind distinguishes modal verbs.
type ModalKind string

// Modal kinds.
const (
	ModalCan    ModalKind = "can"
	ModalShould ModalKind = "should"
	ModalWould  ModalKind = "would"
	ModalMust   ModalKind = "must"
	ModalWant   ModalKind = "want"
	ModalNeed   ModalKind = "need"
)

// CompareDirection is the direction a comparative word pushes a value.
type CompareDirection string

// Comparative directions.
const (
	CompareIncrease CompareDirection = "increase"
	CompareDecrease CompareDirection = "decrease"
)

// QuantityKind distinguishes quantifier words.
type QuantityKind string

// Quantifier kinds.
const (
	QuantityAll    QuantityKind = "all"
	QuantityHalf   QuantityKind = "half"
	QuantityDouble QuantityKind = "double"
	QuantitySome   QuantityKind = "some"
	QuantityMost   QuantityKind = "most"
)

// JudgmentKind distinguishes evaluative words.
type JudgmentKind string

// Judgment kinds.
const (
	JudgmentTooMuch   JudgmentKind = "too_much"
	JudgmentTooLittle JudgmentKind = "too_little"
	JudgmentEnough    JudgmentKind = "enough"
	JudgmentGood      JudgmentKind = "good"
	JudgmentBad       JudgmentKind = "bad"
	JudgmentSafe      JudgmentKind = "safe"
	JudgmentRisky     JudgmentKind = "risky"
	JudgmentExpensive JudgmentKind = "expensive"
	JudgmentCheap     JudgmentKind = "cheap"
)

// NavDirection distinguishes directional navigation words.
type NavDirection string

// Navigation directions.
const (
	NavBack  NavDirection = "back"
	NavAgain NavDirection = "again"
	NavFirst NavDirection = "first"
	NavNext  NavDirection = "next"
	NavLast  NavDirection = "last"
)

// TimeRef distinguishes temporal reference words.
type TimeRef string

// Temporal references.
const (
	TimePast    TimeRef = "past"
	TimePresent TimeRef = "present"
	TimeFuture  TimeRef = "future"
)

// ConceptKind identifies a Bitcoin domain concept noun.
type ConceptKind string

// Concept kinds, ordered here roughly by the specificity ranking used when
// several concepts co-occur in one sentence.
const (
	ConceptFee          ConceptKind = "fee"
	ConceptTransaction  ConceptKind = "transaction"
	ConceptHistory      ConceptKind = "history"
	ConceptBalance      ConceptKind = "balance"
	ConceptPrice        ConceptKind = "price"
	ConceptAddress      ConceptKind = "address"
	ConceptUTXO         ConceptKind = "utxo"
	ConceptNetwork      ConceptKind = "network"
	ConceptWallet       ConceptKind = "wallet"
	ConceptConfirmation ConceptKind = "confirmation"
	ConceptSecurity     ConceptKind = "security"
	ConceptBitcoin      ConceptKind = "bitcoin"
)

// EmotionKind identifies the emotional tone of an input.
type EmotionKind string

// Emotion kinds.
const (
	EmotionHappy      EmotionKind = "happy"
	EmotionGrateful   EmotionKind = "grateful"
	EmotionFrustrated EmotionKind = "frustrated"
	EmotionConfused   EmotionKind = "confused"
	EmotionWorried    EmotionKind = "worried"
	EmotionExcited    EmotionKind = "excited"
)

// WordCategory is the classification of one token. Kind is always set; the
// sub-kind fields carry meaning only for the matching Kind and are zero
// otherwise. Raw holds the surface form for address, txid and unknown tokens
// (for unknown tokens it may encode a sub-tag such as a currency code or a
// fee-level literal).
type WordCategory struct {
	Kind     WordKind
	Question QuestionKind
	Pronoun  PronounKind
	Modal    ModalKind
	Action   ActionKind
	Verb     string
	Compare  CompareDirection
	Quantity QuantityKind
	Judgment JudgmentKind
	Nav      NavDirection
	Time     TimeRef
	Concept  ConceptKind
	Emotion  EmotionKind
	Number   decimal.Decimal
	Raw      string
}

// ClassifiedToken pairs a raw token with its category.
type ClassifiedToken struct {
	Raw      string
	Category WordCategory
}

// IsNoise reports whether the token carries no standalone meaning
// (articles, conjunctions, prepositions).
func (t ClassifiedToken) IsNoise() bool {
	switch t.Category.Kind {
	case WordArticle, WordConjunction, WordPreposition:
		return true
	default:
		return false
	}
}

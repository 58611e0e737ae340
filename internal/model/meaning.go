package model

// ActionKind is a canonical wallet action resolved from a verb, a concept
// noun's default, or a whole-sentence pattern.
type ActionKind string

// Action kinds.
const (
	ActionSend        ActionKind = "send"
	ActionShow        ActionKind = "show"
	ActionReceive     ActionKind = "receive"
	ActionNewAddress  ActionKind = "new_address"
	ActionBalance     ActionKind = "balance"
	ActionHistory     ActionKind = "history"
	ActionShowMore    ActionKind = "show_more"
	ActionFeeEstimate ActionKind = "fee_estimate"
	ActionBumpFee     ActionKind = "bump_fee"
	ActionPrice       ActionKind = "price"
	ActionConvert     ActionKind = "convert"
	ActionHealth      ActionKind = "wallet_health"
	ActionUTXOs       ActionKind = "utxo_list"
	ActionNetwork     ActionKind = "network_status"
	ActionExport      ActionKind = "export_history"
	ActionHideBalance ActionKind = "hide_balance"
	ActionShowBalance ActionKind = "show_balance"
	ActionRefresh     ActionKind = "refresh"
	ActionTxDetail    ActionKind = "transaction_detail"
	ActionConfirm     ActionKind = "confirm"
	ActionCancel      ActionKind = "cancel"
	ActionModify      ActionKind = "modify"
	ActionExplain     ActionKind = "explain"
	ActionAfford      ActionKind = "afford"
	ActionHelp        ActionKind = "help"
	ActionAbout       ActionKind = "about"
	ActionSettings    ActionKind = "settings"
	ActionGreet       ActionKind = "greet"
)

// SentenceType is the grammatical force of the whole input.
type SentenceType string

// Sentence types.
const (
	SentenceQuestion     SentenceType = "question"
	SentenceCommand      SentenceType = "command"
	SentenceStatement    SentenceType = "statement"
	SentenceEmotional    SentenceType = "emotional"
	SentenceConfirmation SentenceType = "confirmation"
	SentenceCancellation SentenceType = "cancellation"
	SentenceEvaluation   SentenceType = "evaluation"
	SentenceEmpty        SentenceType = "empty"
)

// SubjectKind is what the sentence is about.
type SubjectKind string

// Subject kinds.
const (
	SubjectUser        SubjectKind = "user"
	SubjectWallet      SubjectKind = "wallet"
	SubjectTransaction SubjectKind = "transaction"
	SubjectFee         SubjectKind = "fee"
	SubjectPrice       SubjectKind = "price"
	SubjectBalance     SubjectKind = "balance"
)

// ObjectKind is the thing an action or evaluation targets.
type ObjectKind string

// Object kinds.
const (
	ObjectAmount        ObjectKind = "amount"
	ObjectFee           ObjectKind = "fee"
	ObjectAddress       ObjectKind = "address"
	ObjectBalance       ObjectKind = "balance"
	ObjectPrice         ObjectKind = "price"
	ObjectTransaction   ObjectKind = "transaction"
	ObjectLastMentioned ObjectKind = "last_mentioned"
)

// ModifierKind adjusts an in-flight value or steps through shown lists.
type ModifierKind string

// Modifier kinds.
const (
	ModifierIncrease ModifierKind = "increase"
	ModifierDecrease ModifierKind = "decrease"
	ModifierHalf     ModifierKind = "half"
	ModifierDouble   ModifierKind = "double"
	ModifierAll      ModifierKind = "all"
	ModifierBack     ModifierKind = "back"
	ModifierAgain    ModifierKind = "again"
	ModifierFirst    ModifierKind = "first"
	ModifierNext     ModifierKind = "next"
	ModifierLast     ModifierKind = "last"
)

// SentenceMeaning is the single structured reading of one input turn.
// Zero-valued fields mean "absent"; Confidence is always within [0,1].
type SentenceMeaning struct {
	Type       SentenceType
	Action     ActionKind
	Subject    SubjectKind
	Object     ObjectKind
	Modifier   ModifierKind
	Topic      ConceptKind
	Judgment   JudgmentKind
	Emotion    EmotionKind
	Negated    bool
	Confidence float64
}

// EmptyMeaning is the low-confidence fallback when no rule matches.
func EmptyMeaning() SentenceMeaning {
	return SentenceMeaning{Type: SentenceEmpty, Confidence: 0.2}
}

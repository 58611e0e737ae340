package model

import "github.com/shopspring/decimal"

// IntentKind identifies one wallet intent.
type IntentKind string

// Intent kinds.
const (
	IntentSend         IntentKind = "send"
	IntentReceive      IntentKind = "receive"
	IntentNewAddress   IntentKind = "new_address"
	IntentBalance      IntentKind = "balance"
	IntentHistory      IntentKind = "history"
	IntentFeeEstimate  IntentKind = "fee_estimate"
	IntentBumpFee      IntentKind = "bump_fee"
	IntentPrice        IntentKind = "price"
	IntentConvert      IntentKind = "convert_amount"
	IntentWalletHealth IntentKind = "wallet_health"
	IntentUTXOList     IntentKind = "utxo_list"
	IntentNetwork      IntentKind = "network_status"
	IntentExport       IntentKind = "export_history"
	IntentHideBalance  IntentKind = "hide_balance"
	IntentShowBalance  IntentKind = "show_balance"
	IntentRefresh      IntentKind = "refresh_wallet"
	IntentTxDetail     IntentKind = "transaction_detail"
	IntentConfirm      IntentKind = "confirm_action"
	IntentCancel       IntentKind = "cancel_action"
	IntentGreeting     IntentKind = "greeting"
	IntentHelp         IntentKind = "help"
	IntentAbout        IntentKind = "about"
	IntentSettings     IntentKind = "settings"
	IntentExplain      IntentKind = "explain"
	IntentUnknown      IntentKind = "unknown"
)

// FeeLevel is a named fee tier.
type FeeLevel string

// Fee levels.
const (
	FeeSlow   FeeLevel = "slow"
	FeeMedium FeeLevel = "medium"
	FeeFast   FeeLevel = "fast"
	FeeCustom FeeLevel = "custom"
)

// WalletIntent is one resolved intent plus whatever slot values are known so
// far. Fields are optional per kind because slot-filling is incremental.
type WalletIntent struct {
	Kind     IntentKind
	Amount   *decimal.Decimal
	Unit     AmountUnit
	Address  string
	FeeLevel FeeLevel
	Count    int
	Currency string
	TxID     string
	Topic    ConceptKind
	Raw      string
}

// Intent builds a bare intent with no slot values.
func Intent(kind IntentKind) WalletIntent {
	return WalletIntent{Kind: kind}
}

// UnknownIntent builds the fallback intent carrying the raw input.
func UnknownIntent(raw string) WalletIntent {
	return WalletIntent{Kind: IntentUnknown, Raw: raw}
}

// IntentScore is one signal source's confidence-scored guess.
type IntentScore struct {
	Intent     WalletIntent
	Confidence float64
	Source     string
}

// ClarificationThreshold is the confidence below which the caller should ask
// a clarifying question instead of acting.
const ClarificationThreshold = 0.5

// ClassificationResult is the classifier's final decision for one turn.
type ClassificationResult struct {
	Intent             WalletIntent
	Confidence         float64
	NeedsClarification bool
	Alternatives       []IntentScore
	Meaning            *SentenceMeaning
}

// NewClassificationResult clamps confidence into [0,1] and derives
// NeedsClarification; it is the only way results should be constructed.
func NewClassificationResult(intent WalletIntent, confidence float64, alternatives []IntentScore, meaning *SentenceMeaning) ClassificationResult {
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}
	return ClassificationResult{
		Intent:             intent,
		Confidence:         confidence,
		NeedsClarification: confidence < ClarificationThreshold,
		Alternatives:       alternatives,
		Meaning:            meaning,
	}
}

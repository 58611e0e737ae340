// Package entity extracts structured values (amounts, addresses, transaction
// ids, counts, fee levels, fiat amounts) from raw text with regular
// expressions. It makes no judgment about what the values mean; that is the
// classifier's job.
package entity

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/purser-dev/purser/internal/model"
)

// FiatAmount is a number explicitly denominated in a fiat currency.
type FiatAmount struct {
	Amount   decimal.Decimal
	Currency string
}

// Entities holds everything found in one input. Nil / empty fields mean the
// value was absent.
type Entities struct {
	Amount   *decimal.Decimal
	Unit     model.AmountUnit
	Address  string
	TxID     string
	Count    int
	FeeLevel model.FeeLevel
	Fiat     *FiatAmount
}

// Extractor pulls entities out of raw text. Stateless and safe for reuse.
type Extractor struct{}

// NewExtractor returns a stateless extractor.
func NewExtractor() Extractor { return Extractor{} }

var (
	addressRe = regexp.MustCompile(`\b(?:bc1[qp][a-z0-9]{8,87}|tb1[qp][a-z0-9]{8,87}|[13mn2][a-km-zA-HJ-NP-Z1-9]{24,33})\b`)
	txidRe    = regexp.MustCompile(`\b[0-9a-fA-F]{64}\b`)
	amountRe  = regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s*(btc|bitcoins?|sats?|satoshis?)\b`)
	numberRe  = regexp.MustCompile(`\d+(?:[.,]\d+)?`)
	countRe   = regexp.MustCompile(`(?i)(?:last|past|recent|show|últimas?|ultimas?|آخر|اخر)\s+(\d{1,3})\b|\b(\d{1,3})\s+(?:transactions?|transacciones|معاملات)`)
	fiatRe    = regexp.MustCompile(`(?i)(?:([$€£¥])\s?(\d+(?:[.,]\d+)?))|(?:(\d+(?:[.,]\d+)?)\s*(usd|dollars?|dólares|dolares|eur|euros?|gbp|pounds?|jpy|pesos?|riyal|دولار|يورو|ريال))`)
)

var symbolCurrencies = map[string]string{
	"$": "USD",
	"€": "EUR",
	"£": "GBP",
	"¥": "JPY",
}

var wordCurrencies = map[string]string{
	"usd": "USD", "dollar": "USD", "dollars": "USD",
	"dólares": "USD", "dolares": "USD", "دولار": "USD",
	"eur": "EUR", "euro": "EUR", "euros": "EUR", "يورو": "EUR",
	"gbp": "GBP", "pound": "GBP", "pounds": "GBP",
	"jpy":  "JPY",
	"peso": "MXN", "pesos": "MXN",
	"riyal": "SAR", "ريال": "SAR",
}

var feeLevelWords = map[string]model.FeeLevel{
	"fast": model.FeeFast, "quick": model.FeeFast, "urgent": model.FeeFast,
	"priority": model.FeeFast, "fastest": model.FeeFast,
	"rápido": model.FeeFast, "rapido": model.FeeFast, "سريع": model.FeeFast,
	"slow": model.FeeSlow, "economy": model.FeeSlow, "cheapest": model.FeeSlow,
	"lento": model.FeeSlow, "بطيء": model.FeeSlow,
	"medium": model.FeeMedium, "normal": model.FeeMedium,
	"standard": model.FeeMedium, "average": model.FeeMedium,
	"medio": model.FeeMedium, "متوسط": model.FeeMedium,
}

// Extract pulls all recognizable entities from the text. Addresses and txids
// are removed before numeric extraction so digits inside them are never
// misread as amounts.
func (Extractor) Extract(text string) Entities {
	var out Entities

	if addr := addressRe.FindString(text); addr != "" {
		out.Address = addr
	}
	if txid := txidRe.FindString(text); txid != "" {
		out.TxID = strings.ToLower(txid)
	}

	scrubbed := addressRe.ReplaceAllString(text, " ")
	scrubbed = txidRe.ReplaceAllString(scrubbed, " ")

	if m := fiatRe.FindStringSubmatch(scrubbed); m != nil {
		var num, cur string
		if m[1] != "" {
			cur, num = symbolCurrencies[m[1]], m[2]
		} else {
			num, cur = m[3], wordCurrencies[strings.ToLower(m[4])]
		}
		if d, err := decimal.NewFromString(fixComma(num)); err == nil {
			out.Fiat = &FiatAmount{Amount: d, Currency: cur}
		}
	}

	if m := countRe.FindStringSubmatch(scrubbed); m != nil {
		digits := m[1]
		if digits == "" {
			digits = m[2]
		}
		if d, err := decimal.NewFromString(digits); err == nil {
			out.Count = int(d.IntPart())
		}
	}

	if m := amountRe.FindStringSubmatch(scrubbed); m != nil {
		if d, err := decimal.NewFromString(fixComma(m[1])); err == nil {
			out.Amount = &d
			out.Unit = unitOf(m[2])
		}
	} else if out.Fiat == nil {
		// A bare number with no unit still counts as a candidate amount;
		// count-query numbers are excluded above.
		rest := countRe.ReplaceAllString(scrubbed, " ")
		if num := numberRe.FindString(rest); num != "" {
			if d, err := decimal.NewFromString(fixComma(num)); err == nil {
				out.Amount = &d
				out.Unit = model.UnitBTC
			}
		}
	}

	for _, w := range strings.Fields(strings.ToLower(scrubbed)) {
		w = strings.Trim(w, ".,!?")
		if lvl, ok := feeLevelWords[w]; ok {
			out.FeeLevel = lvl
			break
		}
	}

	return out
}

func unitOf(word string) model.AmountUnit {
	switch strings.ToLower(word)[0] {
	case 's':
		return model.UnitSats
	default:
		return model.UnitBTC
	}
}

func fixComma(num string) string {
	return strings.ReplaceAll(num, ",", ".")
}

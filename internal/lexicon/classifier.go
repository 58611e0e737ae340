// Package lexicon tags tokens and phrases with grammatical and domain
// categories. Classification is pure data lookup plus a few shape checks; it
// performs no I/O and holds no mutable state.
package lexicon

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/purser-dev/purser/internal/model"
)

// Classifier tags individual tokens. The zero value is not usable; construct
// with NewClassifier.
type Classifier struct {
	dict    map[string]model.WordCategory
	phrases []phrase
}

// NewClassifier builds a classifier over the built-in dictionary.
func NewClassifier() *Classifier {
	return &Classifier{dict: dictionary, phrases: fusedPhrases}
}

var (
	bech32Re  = regexp.MustCompile(`^bc1[qp][a-z0-9]{8,87}$`)
	legacyRe  = regexp.MustCompile(`^[13][a-km-zA-HJ-NP-Z1-9]{24,33}$`)
	txidRe    = regexp.MustCompile(`^[0-9a-fA-F]{64}$`)
	numberRe  = regexp.MustCompile(`^-?\d+(\.\d+)?$`)
	trimPunct = regexp.MustCompile(`^[\p{P}\p{S}]+|[\p{P}\p{S}]+$`)
)

// Classify tags a single token. Lookup order: exact dictionary hit, numeric
// literal, Bitcoin address shape, 64-hex transaction id, then Unknown
// carrying the normalized token.
func (c *Classifier) Classify(token string) model.WordCategory {
	norm := normalizeToken(token)
	if norm == "" {
		return model.WordCategory{Kind: model.WordUnknown, Raw: token}
	}

	if cat, ok := c.dict[norm]; ok {
		return cat
	}
	// Contractions: "what's" and "whats" read the same.
	if stripped := strings.ReplaceAll(norm, "'", ""); stripped != norm {
		if cat, ok := c.dict[stripped]; ok {
			return cat
		}
	}

	if numberRe.MatchString(norm) {
		if d, err := decimal.NewFromString(norm); err == nil {
			return model.WordCategory{Kind: model.WordNumber, Number: d}
		}
	}

	// Addresses and txids are case-sensitive; check the raw token with only
	// outer punctuation removed.
	bare := trimPunct.ReplaceAllString(strings.TrimSpace(token), "")
	if bech32Re.MatchString(bare) || legacyRe.MatchString(bare) {
		return model.WordCategory{Kind: model.WordAddress, Raw: bare}
	}
	if txidRe.MatchString(bare) {
		return model.WordCategory{Kind: model.WordTxID, Raw: strings.ToLower(bare)}
	}

	if code, num, ok := splitFiat(norm); ok {
		return model.WordCategory{Kind: model.WordUnknown, Raw: "fiat:" + code + ":" + num}
	}

	return model.WordCategory{Kind: model.WordUnknown, Raw: norm}
}

// ClassifyAll fuses known multi-word idioms into single pseudo-tokens, then
// tags every token in order.
func (c *Classifier) ClassifyAll(text string) []model.ClassifiedToken {
	raw := strings.Fields(normalizeDigits(text))
	fused := c.fusePhrases(raw)

	tokens := make([]model.ClassifiedToken, 0, len(fused))
	for _, f := range fused {
		tokens = append(tokens, model.ClassifiedToken{
			Raw:      f,
			Category: c.Classify(f),
		})
	}
	return tokens
}

// fusePhrases rewrites multi-word idioms into single underscore-joined
// pseudo-tokens, longest phrase first so overlapping idioms cannot be
// partially matched. Matching is on normalized tokens; unmatched tokens pass
// through untouched so addresses keep their case.
func (c *Classifier) fusePhrases(raw []string) []string {
	norm := make([]string, len(raw))
	for i, t := range raw {
		norm[i] = normalizeToken(t)
	}

	out := make([]string, 0, len(raw))
	for i := 0; i < len(raw); {
		matched := false
		for _, p := range c.phrases {
			n := len(p.words)
			if i+n > len(raw) {
				continue
			}
			if equalTokens(norm[i:i+n], p.words) {
				out = append(out, p.fused)
				i += n
				matched = true
				break
			}
		}
		if !matched {
			out = append(out, raw[i])
			i++
		}
	}
	return out
}

func equalTokens(got, want []string) bool {
	for i := range want {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

// splitFiat recognizes currency-symbol pseudo-tokens produced by
// normalizeToken ("$50" -> "50_usd") and bare "50usd" style suffixes.
func splitFiat(norm string) (code, num string, ok bool) {
	m := fiatTokenRe.FindStringSubmatch(norm)
	if m == nil {
		return "", "", false
	}
	return m[2], m[1], true
}

var fiatTokenRe = regexp.MustCompile(`^(\d+(?:\.\d+)?)_?(usd|eur|gbp|jpy|cad|aud|sar|aed|egp|mxn|ars)$`)

// normalizeToken lowercases, strips surrounding punctuation, rewrites a
// leading currency symbol into a suffix pseudo-form, and reads a decimal
// comma between digits as a decimal point.
func normalizeToken(token string) string {
	t := strings.ToLower(strings.TrimSpace(token))
	for sym, code := range fiatSymbols {
		if rest, found := strings.CutPrefix(t, sym); found && rest != "" && numberLikeRe.MatchString(rest) {
			return rest + "_" + code
		}
	}
	t = trimPunct.ReplaceAllString(t, "")
	t = decimalCommaRe.ReplaceAllString(t, "$1.$2")
	return t
}

var (
	fiatSymbols = map[string]string{
		"$": "usd",
		"€": "eur",
		"£": "gbp",
		"¥": "jpy",
	}
	numberLikeRe   = regexp.MustCompile(`^\d+([.,]\d+)?$`)
	decimalCommaRe = regexp.MustCompile(`^(\d+),(\d+)$`)
)

// normalizeDigits maps Arabic-Indic digits to ASCII so numeric literals in
// Arabic input classify the same way.
func normalizeDigits(s string) string {
	if !strings.ContainsAny(s, "٠١٢٣٤٥٦٧٨٩") {
		return s
	}
	var b strings.Builder
	for _, r := range s {
		if r >= '٠' && r <= '٩' {
			b.WriteRune('0' + (r - '٠'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

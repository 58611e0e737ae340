package lexicon

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/purser-dev/purser/internal/model"
)

func TestClassify_WordKinds(t *testing.T) {
	c := NewClassifier()

	tests := []struct {
		name  string
		token string
		want  model.WordKind
	}{
		{name: "question word", token: "what", want: model.WordQuestion},
		{name: "spanish question word", token: "cuánto", want: model.WordQuestion},
		{name: "arabic question word", token: "كم", want: model.WordQuestion},
		{name: "wallet verb", token: "send", want: model.WordWalletVerb},
		{name: "misspelled wallet verb", token: "sned", want: model.WordWalletVerb},
		{name: "spanish wallet verb", token: "enviar", want: model.WordWalletVerb},
		{name: "number", token: "0.01", want: model.WordNumber},
		{name: "unit", token: "btc", want: model.WordBitcoinUnit},
		{name: "sats unit", token: "sats", want: model.WordBitcoinUnit},
		{name: "concept noun", token: "fee", want: model.WordBitcoinNoun},
		{name: "negation", token: "don't", want: model.WordNegation},
		{name: "affirmation", token: "yes", want: model.WordAffirmation},
		{name: "greeting", token: "hola", want: model.WordGreeting},
		{name: "emotion", token: "worried", want: model.WordEmotion},
		{name: "article is noise", token: "the", want: model.WordArticle},
		{name: "unknown token", token: "zyxwv", want: model.WordUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.token)
			assert.Equal(t, tt.want, got.Kind, "token %q", tt.token)
		})
	}
}

func TestClassify_Addresses(t *testing.T) {
	c := NewClassifier()

	bech32 := "bc1qar0srrr7xfkvy5l643lydnw9re59gtzzwf5mdq"
	got := c.Classify(bech32)
	require.Equal(t, model.WordAddress, got.Kind)
	assert.Equal(t, bech32, got.Raw)

	// Legacy addresses are case-sensitive and must survive untouched.
	legacy := "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa"
	got = c.Classify(legacy)
	require.Equal(t, model.WordAddress, got.Kind)
	assert.Equal(t, legacy, got.Raw)

	// Trailing punctuation is stripped before the shape check.
	got = c.Classify(bech32 + ",")
	assert.Equal(t, model.WordAddress, got.Kind)

	assert.NotEqual(t, model.WordAddress, c.Classify("bc1xyz").Kind)
}

func TestClassify_TxID(t *testing.T) {
	c := NewClassifier()
	txid := "9F2C3A1D5E7B4860A1B2C3D4E5F60718293A4B5C6D7E8F90A1B2C3D4E5F60718"
	got := c.Classify(txid)
	require.Equal(t, model.WordTxID, got.Kind)
	assert.Equal(t, "9f2c3a1d5e7b4860a1b2c3d4e5f60718293a4b5c6d7e8f90a1b2c3d4e5f60718", got.Raw)
}

func TestClassify_FiatTokens(t *testing.T) {
	c := NewClassifier()

	got := c.Classify("$50")
	require.Equal(t, model.WordUnknown, got.Kind)
	assert.Equal(t, "fiat:usd:50", got.Raw)

	got = c.Classify("€12.50")
	assert.Equal(t, "fiat:eur:12.50", got.Raw)

	got = c.Classify("100usd")
	assert.Equal(t, "fiat:usd:100", got.Raw)
}

func TestClassify_DecimalComma(t *testing.T) {
	c := NewClassifier()
	got := c.Classify("0,01")
	require.Equal(t, model.WordNumber, got.Kind)
	assert.True(t, got.Number.Equal(decimal.RequireFromString("0.01")))
}

func TestClassifyAll_ArabicDigits(t *testing.T) {
	c := NewClassifier()
	tokens := c.ClassifyAll("أرسل ٠.٠١")
	require.Len(t, tokens, 2)
	assert.Equal(t, model.WordWalletVerb, tokens[0].Category.Kind)
	require.Equal(t, model.WordNumber, tokens[1].Category.Kind)
	assert.True(t, tokens[1].Category.Number.Equal(decimal.RequireFromString("0.01")))
}

func TestClassifyAll_PhraseFusion(t *testing.T) {
	c := NewClassifier()

	tests := []struct {
		name     string
		text     string
		contains string
	}{
		{name: "speed it up", text: "speed it up", contains: "speed_up"},
		{name: "how much", text: "how much is bitcoin", contains: "how_much"},
		{name: "thank you", text: "thank you", contains: "thank_you"},
		{name: "change the amount", text: "change the amount", contains: "change_amount"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := c.ClassifyAll(tt.text)
			raws := make([]string, len(tokens))
			for i, tok := range tokens {
				raws[i] = tok.Raw
			}
			assert.Contains(t, raws, tt.contains)
		})
	}
}

func TestClassifyAll_FusionPreservesAddressCase(t *testing.T) {
	c := NewClassifier()
	legacy := "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa"
	tokens := c.ClassifyAll("send 0.01 to " + legacy)

	var addr string
	for _, tok := range tokens {
		if tok.Category.Kind == model.WordAddress {
			addr = tok.Category.Raw
		}
	}
	assert.Equal(t, legacy, addr)
}

func TestClassify_Deterministic(t *testing.T) {
	c := NewClassifier()
	first := c.ClassifyAll("can you send 0.01 btc to bc1qar0srrr7xfkvy5l643lydnw9re59gtzzwf5mdq please")
	for i := 0; i < 10; i++ {
		again := c.ClassifyAll("can you send 0.01 btc to bc1qar0srrr7xfkvy5l643lydnw9re59gtzzwf5mdq please")
		assert.Equal(t, first, again)
	}
}

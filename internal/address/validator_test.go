package address

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidator(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name        string
		addr        string
		wantValid   bool
		wantTestnet bool
	}{
		{
			name:      "bech32 mainnet",
			addr:      "bc1qar0srrr7xfkvy5l643lydnw9re59gtzzwf5mdq",
			wantValid: true,
		},
		{
			name:      "taproot mainnet",
			addr:      "bc1p5d7rjq7g6rdk2yhzks9smlaqtedr4dekq08ge8ztwac72sfr9rusxg3297",
			wantValid: true,
		},
		{
			name:      "legacy p2pkh",
			addr:      "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa",
			wantValid: true,
		},
		{
			name:      "legacy p2sh",
			addr:      "3J98t1WpEZ73CNmQviecrnyiWrnqRhWNLy",
			wantValid: true,
		},
		{
			name:        "testnet bech32",
			addr:        "tb1qw508d6qejxtdg4y5r3zarvary0c5xw7kxpjzsx",
			wantTestnet: true,
		},
		{
			name:        "testnet legacy",
			addr:        "mipcBbFg9gMiCh81Kj8tqqdgoZub1ZJRfn",
			wantTestnet: true,
		},
		{name: "empty string", addr: ""},
		{name: "random words", addr: "hello world"},
		{name: "truncated bech32", addr: "bc1qar0"},
		{name: "legacy with invalid chars", addr: "1A1zP1eP5QGefi2DMPTf0OIl7DivfNa"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantValid, v.IsValid(tt.addr), "IsValid(%q)", tt.addr)
			assert.Equal(t, tt.wantTestnet, v.IsTestnet(tt.addr), "IsTestnet(%q)", tt.addr)
		})
	}
}

// Package address provides structural validation of Bitcoin addresses. It
// checks shape and network prefix only; full checksum verification belongs
// to the signing subsystem.
package address

import "regexp"

var (
	mainnetBech32 = regexp.MustCompile(`^bc1[qp][a-z0-9]{8,87}$`)
	mainnetLegacy = regexp.MustCompile(`^[13][a-km-zA-HJ-NP-Z1-9]{24,33}$`)
	testnetBech32 = regexp.MustCompile(`^tb1[qp][a-z0-9]{8,87}$`)
	testnetLegacy = regexp.MustCompile(`^[mn2][a-km-zA-HJ-NP-Z1-9]{24,33}$`)
)

// Validator reports whether address strings are structurally plausible.
type Validator struct{}

// NewValidator returns a stateless validator.
func NewValidator() Validator { return Validator{} }

// IsValid reports whether the address has a plausible mainnet shape.
func (Validator) IsValid(addr string) bool {
	return mainnetBech32.MatchString(addr) || mainnetLegacy.MatchString(addr)
}

// IsTestnet reports whether the address has a testnet shape. Testnet
// addresses are structurally fine but unsupported for sending.
func (Validator) IsTestnet(addr string) bool {
	return testnetBech32.MatchString(addr) || testnetLegacy.MatchString(addr)
}

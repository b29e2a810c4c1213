package types

import (
	"encoding/hex"
	"strings"

	errorsmod "cosmossdk.io/errors"
	"golang.org/x/crypto/sha3"
)

// SymbolHash identifies an asset by the Keccak-256 hash of its symbol.
type SymbolHash [32]byte

// ETHSymbolHash is the symbol hash of "ETH", the asset every anchor is
// converted through.
var ETHSymbolHash = HashSymbol("ETH")

// HashSymbol returns the Keccak-256 hash of symbol.
func HashSymbol(symbol string) SymbolHash {
	var h SymbolHash
	hasher := sha3.NewLegacyKeccak256()
	hasher.Write([]byte(symbol))
	copy(h[:], hasher.Sum(nil))
	return h
}

// ParseSymbolHash decodes a 0x-prefixed or bare 64 character hex string.
func ParseSymbolHash(s string) (SymbolHash, error) {
	var h SymbolHash
	bz, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return h, errorsmod.Wrapf(ErrInvalidSymbolHash, "%q: %s", s, err)
	}
	if len(bz) != len(h) {
		return h, errorsmod.Wrapf(ErrInvalidSymbolHash, "%q: expected %d bytes, got %d", s, len(h), len(bz))
	}
	copy(h[:], bz)
	return h, nil
}

// IsZero reports whether h is the empty hash.
func (h SymbolHash) IsZero() bool {
	return h == SymbolHash{}
}

// String returns the 0x-prefixed hex encoding of h.
func (h SymbolHash) String() string {
	return "0x" + hex.EncodeToString(h[:])
}

// MarshalText implements encoding.TextMarshaler.
func (h SymbolHash) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (h *SymbolHash) UnmarshalText(text []byte) error {
	parsed, err := ParseSymbolHash(string(text))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

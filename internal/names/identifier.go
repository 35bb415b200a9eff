package names

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// IdentifierSize is the width of an on-chain name identifier (bytes32).
const IdentifierSize = 32

// Identifier is a label encoded as UTF-8 and right-padded with zero bytes.
type Identifier [IdentifierSize]byte

// IsZero reports whether the identifier is all zero bytes (no name).
func (id Identifier) IsZero() bool { return id == Identifier{} }

// Hex returns the 0x-prefixed hex form used by JSON-RPC.
func (id Identifier) Hex() string { return hexutil.Encode(id[:]) }

func (id Identifier) String() string { return id.Hex() }

// ParseIdentifier reads a 0x-prefixed 32-byte hex string.
func ParseIdentifier(s string) (Identifier, error) {
	raw, err := hexutil.Decode(s)
	if err != nil {
		return Identifier{}, fmt.Errorf("names: parse identifier: %w", err)
	}
	if len(raw) != IdentifierSize {
		return Identifier{}, fmt.Errorf("names: parse identifier: want %d bytes, got %d", IdentifierSize, len(raw))
	}
	var id Identifier
	copy(id[:], raw)
	return id, nil
}

// Encode strips the suffix from d and packs the label into an Identifier.
func Encode(d Domain) (Identifier, error) {
	s := string(d)
	if !strings.HasSuffix(s, Suffix) {
		return Identifier{}, ErrWrongSuffix
	}
	label := s[:len(s)-len(Suffix)]
	if len(label) > IdentifierSize {
		return Identifier{}, ErrCapacityExceeded
	}
	var id Identifier
	copy(id[:], label)
	return id, nil
}

// Decode recovers the label held by id. Trailing zero padding is dropped.
func Decode(id Identifier) (string, error) {
	label := bytes.TrimRight(id[:], "\x00")
	if !utf8.Valid(label) {
		return "", ErrInvalidEncoding
	}
	return string(label), nil
}

// DomainToIdentifier validates raw user input and encodes it.
func DomainToIdentifier(raw string) (Identifier, error) {
	d, err := Validate(raw)
	if err != nil {
		return Identifier{}, err
	}
	return Encode(d)
}

// IdentifierToDomain decodes id and re-attaches the suffix. The result must
// already be canonical; anything Validate would rewrite or reject, such as
// uppercase bytes or an embedded dot, fails with ErrInvalidEncoding.
func IdentifierToDomain(id Identifier) (Domain, error) {
	label, err := Decode(id)
	if err != nil {
		return "", err
	}
	raw := label + Suffix
	d, err := Validate(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrInvalidEncoding, raw, err)
	}
	if string(d) != raw {
		return "", fmt.Errorf("%w: %q normalizes to %q", ErrInvalidEncoding, raw, d)
	}
	return d, nil
}

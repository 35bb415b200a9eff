// Package names canonicalizes .og domain names and converts them to and from
// the fixed-width identifiers used by the on-chain registrar.
package names

import (
	"errors"
	"fmt"
	"strings"

	"github.com/adraffy/go-ens-normalize/ensip15"
)

const (
	// Suffix is the reserved top-level label of the registry.
	Suffix = ".og"
	// MaxDomainBytes bounds the UTF-8 length of a canonical domain, suffix included.
	MaxDomainBytes = IdentifierSize + len(Suffix)
)

var (
	ErrEmptyInput            = errors.New("names: empty input")
	ErrNormalization         = errors.New("names: normalization failed")
	ErrSubdomainNotSupported = errors.New("names: subdomains not supported")
	ErrWrongSuffix           = errors.New("names: domain does not end in " + Suffix)
	ErrTooLong               = errors.New("names: domain too long")
	ErrCapacityExceeded      = errors.New("names: label exceeds identifier capacity")
	ErrInvalidEncoding       = errors.New("names: identifier does not hold a canonical name")
)

// Domain is a canonical, validated .og name. Build one with Validate.
type Domain string

func (d Domain) String() string { return string(d) }

// Label returns the domain without its suffix.
func (d Domain) Label() string { return strings.TrimSuffix(string(d), Suffix) }

// Normalize maps raw user input onto its canonical form under ENSIP-15, the
// profile the registry's names are minted with. Mixed-script confusables,
// punycode labels and disallowed characters are rejected.
func Normalize(raw string) (string, error) {
	out, err := ensip15.Shared().Normalize(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNormalization, err)
	}
	return out, nil
}

// Validate normalizes raw and checks it against the registry rules. Length is
// measured in UTF-8 bytes of the normalized form, not in characters.
func Validate(raw string) (Domain, error) {
	if label, _, _ := strings.Cut(raw, "."); label == "" {
		return "", ErrEmptyInput
	}
	normalized, err := Normalize(raw)
	if err != nil {
		return "", err
	}
	if strings.Count(normalized, ".") > 1 {
		return "", ErrSubdomainNotSupported
	}
	if !strings.HasSuffix(normalized, Suffix) {
		return "", ErrWrongSuffix
	}
	if len(normalized) > MaxDomainBytes {
		return "", ErrTooLong
	}
	if len(normalized) == len(Suffix) {
		return "", ErrEmptyInput
	}
	return Domain(normalized), nil
}

// MustDomain is Validate for constants and tests; it panics on invalid input.
func MustDomain(raw string) Domain {
	d, err := Validate(raw)
	if err != nil {
		panic(fmt.Sprintf("names: %q: %v", raw, err))
	}
	return d
}

package names

import (
	"math/rand"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodePadsLabel(t *testing.T) {
	t.Parallel()

	id, err := Encode(MustDomain("test.og"))
	require.NoError(t, err)

	var want Identifier
	copy(want[:], "test")
	assert.Equal(t, want, id)
	assert.Equal(t, "0x74657374"+strings.Repeat("00", 28), id.Hex())
}

func TestEncodeRejectsOversizedLabel(t *testing.T) {
	t.Parallel()

	_, err := Encode(Domain(strings.Repeat("a", 33) + Suffix))
	require.ErrorIs(t, err, ErrCapacityExceeded)

	_, err = Encode(Domain("test.com"))
	require.ErrorIs(t, err, ErrWrongSuffix)
}

func TestDecode(t *testing.T) {
	t.Parallel()

	var id Identifier
	copy(id[:], "öl")
	label, err := Decode(id)
	require.NoError(t, err)
	assert.Equal(t, "öl", label)

	empty, err := Decode(Identifier{})
	require.NoError(t, err)
	assert.Empty(t, empty)

	var bad Identifier
	bad[0] = 0xff
	_, err = Decode(bad)
	require.ErrorIs(t, err, ErrInvalidEncoding)
}

func TestDecodeKeepsInteriorZeroBytes(t *testing.T) {
	t.Parallel()

	var id Identifier
	copy(id[:], "a\x00b")
	label, err := Decode(id)
	require.NoError(t, err)
	assert.Equal(t, "a\x00b", label)
}

func TestDomainRoundTrip(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"test.og", "öl.og", "straße.og", "0x.og", strings.Repeat("é", 16) + Suffix, strings.Repeat("z", 32) + Suffix} {
		d := MustDomain(raw)
		id, err := DomainToIdentifier(raw)
		require.NoError(t, err, raw)
		back, err := IdentifierToDomain(id)
		require.NoError(t, err, raw)
		assert.Equal(t, d, back, raw)
	}
}

func TestIdentifierToDomainRequiresCanonicalName(t *testing.T) {
	t.Parallel()

	for _, label := range []string{"Test", "a.b", "bad name", "\u0430pple", ""} {
		var id Identifier
		copy(id[:], label)
		_, err := IdentifierToDomain(id)
		require.ErrorIs(t, err, ErrInvalidEncoding, label)
	}
}

func TestDomainToIdentifierPropagatesValidation(t *testing.T) {
	t.Parallel()

	_, err := DomainToIdentifier("a.b.og")
	require.ErrorIs(t, err, ErrSubdomainNotSupported)
}

func TestLabelBytesRoundTrip(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42))
	alphabet := []rune("abcxyz019-éöß日本")
	for i := 0; i < 500; i++ {
		var b strings.Builder
		for n := rng.Intn(12); n > 0; n-- {
			r := alphabet[rng.Intn(len(alphabet))]
			if b.Len()+utf8.RuneLen(r) > IdentifierSize {
				break
			}
			b.WriteRune(r)
		}
		label := b.String()

		id, err := Encode(Domain(label + Suffix))
		require.NoError(t, err)
		got, err := Decode(id)
		require.NoError(t, err)
		require.Equal(t, label, got)

		again, err := Encode(Domain(got + Suffix))
		require.NoError(t, err)
		require.Equal(t, id, again)
	}
}

func TestParseIdentifier(t *testing.T) {
	t.Parallel()

	id, err := DomainToIdentifier("test.og")
	require.NoError(t, err)

	parsed, err := ParseIdentifier(id.Hex())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)
	assert.False(t, parsed.IsZero())
	assert.True(t, Identifier{}.IsZero())

	_, err = ParseIdentifier("0x1234")
	require.Error(t, err)
	_, err = ParseIdentifier("nothex")
	require.Error(t, err)
}

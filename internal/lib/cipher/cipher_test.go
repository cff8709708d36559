package cipher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaesarDecode(t *testing.T) {
	// ROT13
	got, err := CaesarDecode("Uryyb, jbeyq!", 13)
	require.NoError(t, err)
	assert.Equal(t, "Hello, world!", got)

	// Other shifts
	got, err = CaesarDecode("Jgnnq, yqtnf!", 2)
	require.NoError(t, err)
	assert.Equal(t, "Hello, world!", got)

	// Shift 0 is the identity
	got, err = CaesarDecode("Hello, world!", 0)
	require.NoError(t, err)
	assert.Equal(t, "Hello, world!", got)
}

func TestCaesar_RoundTrip(t *testing.T) {
	const text = "The Quick Brown Fox, jumps over 13 lazy dogs!"
	for shift := 0; shift <= 25; shift++ {
		encoded, err := CaesarEncode(text, shift)
		require.NoError(t, err)
		decoded, err := CaesarDecode(encoded, shift)
		require.NoError(t, err)
		assert.Equal(t, text, decoded, "shift %d", shift)
	}
}

func TestCaesar_ShiftRange(t *testing.T) {
	_, err := CaesarDecode("abc", -1)
	assert.ErrorIs(t, err, ErrShiftRange)

	_, err = CaesarDecode("abc", 26)
	assert.ErrorIs(t, err, ErrShiftRange)

	_, err = CaesarEncode("abc", 99)
	assert.ErrorIs(t, err, ErrShiftRange)
}

func TestVigenereDecode(t *testing.T) {
	got, err := VigenereDecode("Rijvs, uyvjn!", "key")
	require.NoError(t, err)
	assert.Equal(t, "Hello, world!", got)

	// The key is case-insensitive
	got, err = VigenereDecode("Rijvs, uyvjn!", "KeY")
	require.NoError(t, err)
	assert.Equal(t, "Hello, world!", got)
}

func TestVigenere_KeySkipsNonLetters(t *testing.T) {
	// Non-letters must not consume key positions: encode and decode a
	// text dense with punctuation and verify the round trip.
	const text = "N 47 36.123, W 122 19.456 (final!)"
	encoded, err := VigenereEncode(text, "geocache")
	require.NoError(t, err)
	decoded, err := VigenereDecode(encoded, "geocache")
	require.NoError(t, err)
	assert.Equal(t, text, decoded)
}

func TestVigenere_InvalidKey(t *testing.T) {
	_, err := VigenereDecode("abc", "")
	assert.ErrorIs(t, err, ErrInvalidKey)

	_, err = VigenereDecode("abc", "k3y")
	assert.ErrorIs(t, err, ErrInvalidKey)

	_, err = VigenereEncode("abc", "two words")
	assert.ErrorIs(t, err, ErrInvalidKey)
}

func TestAtbash(t *testing.T) {
	assert.Equal(t, "Svool Dliow", Atbash("Hello World"))

	// Atbash is its own inverse
	assert.Equal(t, "Hello World", Atbash(Atbash("Hello World")))

	// Non-letters pass through
	assert.Equal(t, "Z1 y2 x3!", Atbash("A1 b2 c3!"))
}

func TestFrequencyAnalysis(t *testing.T) {
	counts := FrequencyAnalysis("Abba, 123!")
	assert.Equal(t, map[rune]int{'a': 2, 'b': 2}, counts)

	assert.Empty(t, FrequencyAnalysis("123 456"))
}

func TestSubstitutionGuess(t *testing.T) {
	// The most frequent ciphertext letter maps to 'e'.
	got := SubstitutionGuess("xxxx yy z", nil)
	assert.Equal(t, "eeee tt a", got)

	// Known mappings override the statistics and case is preserved.
	got = SubstitutionGuess("Xxxx", map[rune]rune{'x': 'm'})
	assert.Equal(t, "Mmmm", got)
}

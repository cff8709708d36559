package puzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsciiToText(t *testing.T) {
	got, err := AsciiToText("72 101 108 108 111")
	require.NoError(t, err)
	assert.Equal(t, "Hello", got)

	// Extra whitespace is fine
	got, err = AsciiToText("  72\t101  ")
	require.NoError(t, err)
	assert.Equal(t, "He", got)

	got, err = AsciiToText("")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestAsciiToText_Errors(t *testing.T) {
	_, err := AsciiToText("72 abc")
	assert.ErrorContains(t, err, `"abc"`)

	_, err = AsciiToText("-5")
	assert.ErrorContains(t, err, "out of range")
}

func TestTextToAscii(t *testing.T) {
	assert.Equal(t, []int{72, 101, 108, 108, 111}, TextToAscii("Hello"))
	assert.Empty(t, TextToAscii(""))
}

func TestLetterToNumber(t *testing.T) {
	assert.Equal(t, []int{7, 5, 15}, LetterToNumber("GEO", 0))

	// Case-insensitive, non-letters skipped
	assert.Equal(t, []int{3, 1, 3, 8, 5}, LetterToNumber("Ca-che!", 0))

	// Offset 1 makes A=0
	assert.Equal(t, []int{0, 1, 2}, LetterToNumber("abc", 1))
}

func TestNumberToLetter(t *testing.T) {
	assert.Equal(t, "GEO", NumberToLetter([]int{7, 5, 15}, 0))

	// Out-of-range values are skipped
	assert.Equal(t, "AZ", NumberToLetter([]int{0, 1, 27, 26}, 0))
}

func TestNumberToLetter_InvertsLetterToNumber(t *testing.T) {
	for _, offset := range []int{0, 1, -1} {
		values := LetterToNumber("TREASURE", offset)
		assert.Equal(t, "TREASURE", NumberToLetter(values, offset), "offset %d", offset)
	}
}

func TestParseNumbers(t *testing.T) {
	got, err := ParseNumbers("1 -2 30")
	require.NoError(t, err)
	assert.Equal(t, []int{1, -2, 30}, got)

	_, err = ParseNumbers("1 two")
	assert.ErrorContains(t, err, `"two"`)
}

func TestReverseText(t *testing.T) {
	assert.Equal(t, "olleH", ReverseText("Hello"))
	assert.Equal(t, "", ReverseText(""))

	// Rune-safe
	assert.Equal(t, "°74 N", ReverseText("N 47°"))
}

func TestReverseWords(t *testing.T) {
	assert.Equal(t, "cache the find", ReverseWords("find the cache"))
	assert.Equal(t, "one", ReverseWords("one"))
	assert.Equal(t, "", ReverseWords("   "))
}

func TestExtractNumbers(t *testing.T) {
	got := ExtractNumbers("N 47° 36.123 W 122° 19.456")
	assert.Equal(t, []int{47, 36, 123, 122, 19, 456}, got)

	assert.Empty(t, ExtractNumbers("no digits here"))
}

package cipher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMorseDecode(t *testing.T) {
	got, err := MorseDecode(".... . .-.. .-.. --- / .-- --- .-. .-.. -..")
	require.NoError(t, err)
	assert.Equal(t, "HELLO WORLD", got)

	// Digits
	got, err = MorseDecode("....- --... / ...-- -....")
	require.NoError(t, err)
	assert.Equal(t, "47 36", got)

	// Punctuation
	got, err = MorseDecode(".... .. -.-.--")
	require.NoError(t, err)
	assert.Equal(t, "HI!", got)
}

func TestMorseDecode_SlashWithoutSpaces(t *testing.T) {
	got, err := MorseDecode("-..../-....")
	require.NoError(t, err)
	assert.Equal(t, "6 6", got)

	// Leading and doubled separators do not produce stray spaces
	got, err = MorseDecode("/ .... // ..")
	require.NoError(t, err)
	assert.Equal(t, "H I", got)
}

func TestMorseDecode_UnknownToken(t *testing.T) {
	_, err := MorseDecode(".... ........ ..")
	require.Error(t, err)

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "........", decodeErr.Token)
	assert.Equal(t, 2, decodeErr.Position)
	assert.Contains(t, err.Error(), `"........"`)
}

func TestMorseDecode_Empty(t *testing.T) {
	got, err := MorseDecode("")
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = MorseDecode("   / ")
	require.NoError(t, err)
	assert.Empty(t, got)
}

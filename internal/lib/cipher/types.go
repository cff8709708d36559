package cipher

import (
	"errors"
	"fmt"
)

// DecodeError reports a cipher token that could not be decoded, such as an
// unknown Morse sequence. Position is the 1-based index of the token in the
// input.
type DecodeError struct {
	Token    string
	Position int
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("unrecognized token %q at position %d", e.Token, e.Position)
}

// ErrShiftRange is returned for Caesar shifts outside [0, 25].
var ErrShiftRange = errors.New("shift must be in range [0, 25]")

// ErrInvalidKey is returned for Vigenère keys that are empty or contain
// non-letter characters.
var ErrInvalidKey = errors.New("key must be non-empty and contain only letters")

// Package cipher decodes the classical ciphers that show up in geocaching
// puzzles. Every function preserves the case of alphabetic characters and
// passes non-alphabetic characters through unchanged.
package cipher

import (
	"sort"
	"strings"
	"unicode"
)

// DefaultShift is the Caesar shift used when none is given (ROT13).
const DefaultShift = 13

// CaesarDecode shifts each letter back by shift positions modulo 26.
func CaesarDecode(text string, shift int) (string, error) {
	if shift < 0 || shift > 25 {
		return "", ErrShiftRange
	}
	return shiftLetters(text, -shift), nil
}

// CaesarEncode shifts each letter forward by shift positions modulo 26.
func CaesarEncode(text string, shift int) (string, error) {
	if shift < 0 || shift > 25 {
		return "", ErrShiftRange
	}
	return shiftLetters(text, shift), nil
}

func shiftLetters(text string, shift int) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune('a' + (r-'a'+rune(shift)+26)%26)
		case r >= 'A' && r <= 'Z':
			b.WriteRune('A' + (r-'A'+rune(shift)+26)%26)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// VigenereDecode reverses a repeating-key Vigenère substitution. Key letters
// map to shifts (A=0 … Z=25) and the key advances only on alphabetic
// ciphertext characters.
func VigenereDecode(text, key string) (string, error) {
	shifts, err := keyShifts(key)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.Grow(len(text))
	j := 0
	for _, r := range text {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune('a' + (r-'a'-shifts[j%len(shifts)]+26)%26)
			j++
		case r >= 'A' && r <= 'Z':
			b.WriteRune('A' + (r-'A'-shifts[j%len(shifts)]+26)%26)
			j++
		default:
			b.WriteRune(r)
		}
	}
	return b.String(), nil
}

// VigenereEncode applies a repeating-key Vigenère substitution, the inverse
// of VigenereDecode.
func VigenereEncode(text, key string) (string, error) {
	shifts, err := keyShifts(key)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.Grow(len(text))
	j := 0
	for _, r := range text {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune('a' + (r-'a'+shifts[j%len(shifts)])%26)
			j++
		case r >= 'A' && r <= 'Z':
			b.WriteRune('A' + (r-'A'+shifts[j%len(shifts)])%26)
			j++
		default:
			b.WriteRune(r)
		}
	}
	return b.String(), nil
}

func keyShifts(key string) ([]rune, error) {
	if key == "" {
		return nil, ErrInvalidKey
	}
	shifts := make([]rune, 0, len(key))
	for _, r := range strings.ToLower(key) {
		if r < 'a' || r > 'z' {
			return nil, ErrInvalidKey
		}
		shifts = append(shifts, r-'a')
	}
	return shifts, nil
}

// Atbash maps each letter i to letter 25-i within the same case. The cipher
// is its own inverse.
func Atbash(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune('a' + 'z' - r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune('A' + 'Z' - r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FrequencyAnalysis counts how often each letter occurs in text, lowercased.
// Non-letters are ignored.
func FrequencyAnalysis(text string) map[rune]int {
	counts := make(map[rune]int)
	for _, r := range strings.ToLower(text) {
		if r >= 'a' && r <= 'z' {
			counts[r]++
		}
	}
	return counts
}

// englishFrequency orders letters by their relative frequency in English
// prose, most common first.
var englishFrequency = []rune("etaoinshrdlcumwfgypbvkjxqz")

// SubstitutionGuess attempts to break a monoalphabetic substitution cipher
// by mapping the most frequent ciphertext letters onto the most frequent
// English letters. Entries in known override the statistical mapping. The
// result is a guess, useful as a starting point for manual solving.
func SubstitutionGuess(text string, known map[rune]rune) string {
	freq := FrequencyAnalysis(text)

	ranked := make([]rune, 0, len(freq))
	for r := range freq {
		ranked = append(ranked, r)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if freq[ranked[i]] != freq[ranked[j]] {
			return freq[ranked[i]] > freq[ranked[j]]
		}
		return ranked[i] < ranked[j]
	})

	mapping := make(map[rune]rune, len(ranked))
	for i, r := range ranked {
		if i < len(englishFrequency) {
			mapping[r] = englishFrequency[i]
		}
	}
	for k, v := range known {
		mapping[unicode.ToLower(k)] = unicode.ToLower(v)
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		lower := unicode.ToLower(r)
		sub, ok := mapping[lower]
		if !ok {
			b.WriteRune(r)
			continue
		}
		if unicode.IsUpper(r) {
			b.WriteRune(unicode.ToUpper(sub))
		} else {
			b.WriteRune(sub)
		}
	}
	return b.String()
}

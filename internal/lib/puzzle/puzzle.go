// Package puzzle collects small text and number transforms used when
// working geocaching puzzles.
package puzzle

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// AsciiToText converts space-separated character code values into text.
func AsciiToText(values string) (string, error) {
	var b strings.Builder
	for _, field := range strings.Fields(values) {
		n, err := strconv.Atoi(field)
		if err != nil {
			return "", fmt.Errorf("invalid character code %q", field)
		}
		if n < 0 || n > unicode.MaxRune {
			return "", fmt.Errorf("character code %d out of range", n)
		}
		b.WriteRune(rune(n))
	}
	return b.String(), nil
}

// TextToAscii converts text into a list of character code values.
func TextToAscii(text string) []int {
	values := make([]int, 0, len(text))
	for _, r := range text {
		values = append(values, int(r))
	}
	return values
}

// LetterToNumber converts letters to their alphabet positions (A=1 … Z=26),
// case-insensitively. Non-letters are skipped. The offset shifts the origin,
// e.g. offset 1 makes A=0.
func LetterToNumber(text string, offset int) []int {
	var values []int
	for _, r := range strings.ToUpper(text) {
		if r >= 'A' && r <= 'Z' {
			values = append(values, int(r-'A')+1-offset)
		}
	}
	return values
}

// NumberToLetter converts alphabet positions (A=1 … Z=26) into uppercase
// letters, undoing the same offset LetterToNumber applies. Values that fall
// outside the alphabet are skipped.
func NumberToLetter(values []int, offset int) string {
	var b strings.Builder
	b.Grow(len(values))
	for _, n := range values {
		adjusted := n + offset
		if adjusted >= 1 && adjusted <= 26 {
			b.WriteRune('A' + rune(adjusted-1))
		}
	}
	return b.String()
}

// ParseNumbers converts a space-separated list of integers into a slice.
func ParseNumbers(values string) ([]int, error) {
	fields := strings.Fields(values)
	numbers := make([]int, 0, len(fields))
	for _, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", field)
		}
		numbers = append(numbers, n)
	}
	return numbers, nil
}

// ReverseText reverses the characters of a string.
func ReverseText(text string) string {
	runes := []rune(text)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// ReverseWords reverses the order of whitespace-separated words, keeping the
// characters within each word in order.
func ReverseWords(text string) string {
	words := strings.Fields(text)
	for i, j := 0, len(words)-1; i < j; i, j = i+1, j-1 {
		words[i], words[j] = words[j], words[i]
	}
	return strings.Join(words, " ")
}

var numberRunPattern = regexp.MustCompile(`\d+`)

// ExtractNumbers returns every run of decimal digits in the text as an
// integer, in order of appearance.
func ExtractNumbers(text string) []int {
	var numbers []int
	for _, match := range numberRunPattern.FindAllString(text, -1) {
		n, err := strconv.Atoi(match)
		if err != nil {
			continue // digit run too long for an int
		}
		numbers = append(numbers, n)
	}
	return numbers
}

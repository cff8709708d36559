package cipher

import "strings"

// morseTable maps international Morse sequences to characters. Letters and
// digits follow ITU-R M.1677-1; the punctuation set matches common usage.
var morseTable = map[string]string{
	".-":   "A",
	"-...": "B",
	"-.-.": "C",
	"-..":  "D",
	".":    "E",
	"..-.": "F",
	"--.":  "G",
	"....": "H",
	"..":   "I",
	".---": "J",
	"-.-":  "K",
	".-..": "L",
	"--":   "M",
	"-.":   "N",
	"---":  "O",
	".--.": "P",
	"--.-": "Q",
	".-.":  "R",
	"...":  "S",
	"-":    "T",
	"..-":  "U",
	"...-": "V",
	".--":  "W",
	"-..-": "X",
	"-.--": "Y",
	"--..": "Z",

	".----": "1",
	"..---": "2",
	"...--": "3",
	"....-": "4",
	".....": "5",
	"-....": "6",
	"--...": "7",
	"---..": "8",
	"----.": "9",
	"-----": "0",

	".-.-.-": ".",
	"--..--": ",",
	"..--..": "?",
	".----.": "'",
	"-.-.--": "!",
	"-..-.":  "/",
	"-.--.":  "(",
	"-.--.-": ")",
	".-...":  "&",
	"---...": ":",
	"-.-.-.": ";",
	"-...-":  "=",
	".-.-.":  "+",
	"-....-": "-",
	"..--.-": "_",
	".-..-.": "\"",
	".--.-.": "@",
}

// MorseDecode converts Morse code to text. Tokens are separated by
// whitespace and words by "/", with or without surrounding spaces. An
// unknown dot-dash sequence fails with a *DecodeError naming the token and
// its 1-based position among the letter tokens.
func MorseDecode(code string) (string, error) {
	var b strings.Builder
	atWordStart := true
	pos := 0

	normalized := strings.ReplaceAll(code, "/", " / ")
	for _, token := range strings.Fields(normalized) {
		if token == "/" {
			if !atWordStart {
				b.WriteByte(' ')
				atWordStart = true
			}
			continue
		}
		pos++
		char, ok := morseTable[token]
		if !ok {
			return "", &DecodeError{Token: token, Position: pos}
		}
		b.WriteString(char)
		atWordStart = false
	}
	return b.String(), nil
}

package command

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gckit/gckit/internal/lib/cipher"
)

var (
	cipherMode  string
	cipherShift int
	cipherKey   string
)

var cipherCmd = &cobra.Command{
	Use:   "cipher [flags] TEXT",
	Short: "Decode classical ciphers",
	Long: `Decode text encrypted with the classical ciphers common in puzzle
caches. Modes: caesar (ROT-n, default shift 13), vigenere (requires
--key), atbash, morse, frequency (letter histogram), substitution
(frequency-based guess).`,
	Args: cobra.ExactArgs(1),
	RunE: runCipher,
}

func init() {
	cipherCmd.Flags().StringVar(&cipherMode, "mode", "", "cipher mode: caesar, vigenere, atbash, morse, frequency, substitution")
	cipherCmd.Flags().IntVar(&cipherShift, "shift", cipher.DefaultShift, "shift for caesar mode (default 13, ROT13)")
	cipherCmd.Flags().StringVar(&cipherKey, "key", "", "key for vigenere mode")
	cipherCmd.MarkFlagRequired("mode")
	rootCmd.AddCommand(cipherCmd)
}

func runCipher(cmd *cobra.Command, args []string) error {
	text := args[0]

	switch cipherMode {
	case "caesar":
		result, err := cipher.CaesarDecode(text, cipherShift)
		if err != nil {
			return err
		}
		return printResult(result, map[string]string{"plaintext": result})

	case "vigenere":
		if cipherKey == "" {
			return fmt.Errorf("--key is required for vigenere mode")
		}
		result, err := cipher.VigenereDecode(text, cipherKey)
		if err != nil {
			return err
		}
		return printResult(result, map[string]string{"plaintext": result})

	case "atbash":
		result := cipher.Atbash(text)
		return printResult(result, map[string]string{"plaintext": result})

	case "morse":
		result, err := cipher.MorseDecode(text)
		if err != nil {
			return err
		}
		return printResult(result, map[string]string{"plaintext": result})

	case "frequency":
		counts := cipher.FrequencyAnalysis(text)
		return printResult(formatFrequency(counts), frequencyJSON(counts))

	case "substitution":
		result := cipher.SubstitutionGuess(text, nil)
		return printResult(result, map[string]string{"plaintext": result})
	}
	return fmt.Errorf("unsupported cipher mode: %q", cipherMode)
}

// formatFrequency renders letter counts most frequent first, ties
// alphabetical.
func formatFrequency(counts map[rune]int) string {
	letters := make([]rune, 0, len(counts))
	for r := range counts {
		letters = append(letters, r)
	}
	sort.Slice(letters, func(i, j int) bool {
		if counts[letters[i]] != counts[letters[j]] {
			return counts[letters[i]] > counts[letters[j]]
		}
		return letters[i] < letters[j]
	})

	parts := make([]string, len(letters))
	for i, r := range letters {
		parts[i] = fmt.Sprintf("%c=%d", r, counts[r])
	}
	return strings.Join(parts, " ")
}

func frequencyJSON(counts map[rune]int) map[string]int {
	out := make(map[string]int, len(counts))
	for r, n := range counts {
		out[string(r)] = n
	}
	return out
}

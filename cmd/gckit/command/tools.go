package command

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gckit/gckit/internal/lib/puzzle"
)

var (
	toolsMode      string
	toolsDirection string
	toolsOffset    int
	toolsWordlist  string
	toolsWordsOnly bool
)

var toolsCmd = &cobra.Command{
	Use:   "tools [flags] INPUT",
	Short: "Text and number puzzle transforms",
	Long: `General puzzle-solving transforms. Modes: ascii-to-text,
text-to-ascii, anagram (dictionary anagrams of the letters), a1z26
(letter/number positions, requires --direction), reverse (--words
reverses word order instead of characters), extract-numbers.`,
	Args: cobra.ExactArgs(1),
	RunE: runTools,
}

func init() {
	toolsCmd.Flags().StringVar(&toolsMode, "mode", "", "transform: ascii-to-text, text-to-ascii, anagram, a1z26, reverse, extract-numbers")
	toolsCmd.Flags().StringVar(&toolsDirection, "direction", "", "a1z26 direction: to-numbers or to-letters")
	toolsCmd.Flags().IntVar(&toolsOffset, "offset", 0, "a1z26 offset, e.g. 1 makes A=0")
	toolsCmd.Flags().StringVar(&toolsWordlist, "wordlist", "", "word list file for anagram mode (default: embedded list)")
	toolsCmd.Flags().BoolVar(&toolsWordsOnly, "words", false, "reverse word order instead of characters (reverse mode)")
	toolsCmd.MarkFlagRequired("mode")
	rootCmd.AddCommand(toolsCmd)
}

func runTools(cmd *cobra.Command, args []string) error {
	input := args[0]

	switch toolsMode {
	case "ascii-to-text":
		result, err := puzzle.AsciiToText(input)
		if err != nil {
			return err
		}
		return printResult(result, map[string]string{"text": result})

	case "text-to-ascii":
		values := puzzle.TextToAscii(input)
		return printResult(joinInts(values), map[string]interface{}{"values": values})

	case "anagram":
		solver, err := anagramSolver()
		if err != nil {
			return err
		}
		words := solver.Anagrams(input)
		text := fmt.Sprintf("found %d anagrams", len(words))
		if len(words) > 0 {
			text += "\n" + strings.Join(words, "\n")
		}
		return printResult(text, map[string]interface{}{"anagrams": words})

	case "a1z26":
		switch toolsDirection {
		case "to-numbers":
			values := puzzle.LetterToNumber(input, toolsOffset)
			return printResult(joinInts(values), map[string]interface{}{"values": values})
		case "to-letters":
			values, err := puzzle.ParseNumbers(input)
			if err != nil {
				return err
			}
			result := puzzle.NumberToLetter(values, toolsOffset)
			return printResult(result, map[string]string{"text": result})
		}
		return fmt.Errorf("--direction must be to-numbers or to-letters for a1z26 mode")

	case "reverse":
		var result string
		if toolsWordsOnly {
			result = puzzle.ReverseWords(input)
		} else {
			result = puzzle.ReverseText(input)
		}
		return printResult(result, map[string]string{"text": result})

	case "extract-numbers":
		values := puzzle.ExtractNumbers(input)
		return printResult(joinInts(values), map[string]interface{}{"values": values})
	}
	return fmt.Errorf("unsupported tools mode: %q", toolsMode)
}

// anagramSolver builds a solver from the --wordlist flag, the configured
// word list path, or the embedded list, in that order.
func anagramSolver() (*puzzle.Solver, error) {
	path := toolsWordlist
	if path == "" {
		path = cfg.Anagram.Wordlist
	}
	if path == "" {
		return puzzle.NewSolver(), nil
	}
	solver, err := puzzle.NewSolverFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading word list: %w", err)
	}
	slog.Debug("loaded word list", "path", path, "words", solver.Words())
	return solver, nil
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}

package puzzle

import (
	"bufio"
	_ "embed"
	"io"
	"os"
	"sort"
	"strings"
)

// wordlist.txt is a list of common English words, one per line. It is
// embedded so the solver works without any filesystem dependency.
//
//go:embed wordlist.txt
var embeddedWordlist string

// Solver finds dictionary words that are anagrams of a given set of
// letters. The zero value has no dictionary and finds nothing; use
// NewSolver or one of the loaders.
type Solver struct {
	// index maps the sorted letters of each word to the words made of
	// exactly those letters.
	index map[string][]string
}

// NewSolver creates a Solver backed by the embedded word list.
func NewSolver() *Solver {
	s, _ := NewSolverFromReader(strings.NewReader(embeddedWordlist))
	return s
}

// NewSolverFromFile creates a Solver from a word list file with one word per
// line.
func NewSolverFromFile(path string) (*Solver, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return NewSolverFromReader(f)
}

// NewSolverFromReader creates a Solver from a word list with one word per
// line. Blank lines and lines starting with "#" are skipped.
func NewSolverFromReader(r io.Reader) (*Solver, error) {
	index := make(map[string][]string)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		key := sortLetters(word)
		index[key] = append(index[key], word)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return &Solver{index: index}, nil
}

// Anagrams returns the dictionary words using exactly the given letters,
// sorted alphabetically. Case and spaces in the input are ignored. Without a
// dictionary the result is empty, never an error.
func (s *Solver) Anagrams(letters string) []string {
	if s == nil || s.index == nil {
		return nil
	}
	key := sortLetters(strings.ReplaceAll(strings.ToLower(letters), " ", ""))
	if key == "" {
		return nil
	}

	words := s.index[key]
	result := make([]string, len(words))
	copy(result, words)
	sort.Strings(result)
	return result
}

// Words reports how many words are loaded.
func (s *Solver) Words() int {
	n := 0
	for _, words := range s.index {
		n += len(words)
	}
	return n
}

func sortLetters(word string) string {
	runes := []rune(word)
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })
	return string(runes)
}

// dictionary.go: supplies target words and validates guesses

package word

import "strings"

type Dictionary interface {
	// TargetWord returns an uppercase word of Length letters to be guessed
	TargetWord() string
	// IsAcceptable reports whether candidate may be played as a guess
	IsAcceptable(candidate string) bool
}

// Fixed always returns the same target word. If Accept is nil every
// candidate is acceptable, otherwise only the listed words (case-insensitive) are.
type Fixed struct {
	Word   string
	Accept []string
}

func (f Fixed) TargetWord() string {
	return strings.ToUpper(f.Word)
}

func (f Fixed) IsAcceptable(candidate string) bool {
	if f.Accept == nil {
		return true
	}
	for _, w := range f.Accept {
		if strings.EqualFold(w, candidate) {
			return true
		}
	}
	return false
}

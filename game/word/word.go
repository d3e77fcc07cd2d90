package word

import (
	"encoding/json"
	"strings"
)

// Length is the number of letters in every target word and guess
const Length = 5

// LetterStatus is an enum type for the Status of a letter in a word guess
type (
	LetterStatus   int
	LetterStatuses []LetterStatus
)

const (
	Building LetterStatus = iota // The letter has not been scored
	Correct                      // The letter is in the word and in the correct position
	Present                      // The letter is in the word but in the wrong position
	Absent                       // The letter is not in the word to be guessed
)

func (s LetterStatus) String() string {
	switch s {
	case Building:
		return "BUILDING"
	case Correct:
		return "CORRECT"
	case Present:
		return "PRESENT"
	case Absent:
		return "ABSENT"
	default:
		return "UNKNOWN"
	}
}

func (s LetterStatuses) Ints() []int {
	ints := make([]int, len(s))
	for i, v := range s {
		ints[i] = int(v)
	}
	return ints
}

// Letter is a single character of a guess together with its score.
type Letter struct {
	Char   rune         `json:"char"`
	Status LetterStatus `json:"status"`
}

// NewLetter returns the uppercased letter c with the given status.
func NewLetter(c rune, status LetterStatus) Letter {
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	return Letter{Char: c, Status: status}
}

// MarshalJSON writes Char as a one letter string instead of a rune code.
func (l Letter) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Char   string       `json:"char"`
		Status LetterStatus `json:"status"`
	}{string(l.Char), l.Status})
}

func (l *Letter) UnmarshalJSON(b []byte) error {
	var raw struct {
		Char   string       `json:"char"`
		Status LetterStatus `json:"status"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	l.Status = raw.Status
	l.Char = 0
	for _, r := range raw.Char {
		l.Char = r
		break
	}
	return nil
}

// Guess is one scored submission. The zero value is an unset slot.
//
// for example the guess 'ADIEU' against 'APPLE' holds
//
// A -> Correct
// D -> Absent
// I -> Absent
// E -> Present
// U -> Absent
type Guess []Letter

// NewGuess returns an unscored guess for w, every letter in the Building state.
func NewGuess(w string) Guess {
	w = strings.ToUpper(w)
	g := make(Guess, 0, len(w))
	for _, c := range w {
		g = append(g, NewLetter(c, Building))
	}
	return g
}

// Word returns the letters of the guess as a string.
func (g Guess) Word() string {
	var b strings.Builder
	for _, l := range g {
		b.WriteRune(l.Char)
	}
	return b.String()
}

func (g Guess) String() string {
	return g.Word()
}

// Stats returns the status of every letter of the guess.
func (g Guess) Stats() LetterStatuses {
	stats := make(LetterStatuses, len(g))
	for i, l := range g {
		stats[i] = l.Status
	}
	return stats
}

// Scored returns true if the guess is not empty and none of its letters is still Building
func (g Guess) Scored() bool {
	if len(g) == 0 {
		return false
	}
	for _, l := range g {
		if l.Status == Building {
			return false
		}
	}
	return true
}

// Correct returns true if the guess is not empty and every letter is Correct
func (g Guess) Correct() bool {
	if len(g) == 0 {
		return false
	}
	for _, l := range g {
		if l.Status != Correct {
			return false
		}
	}
	return true
}

// group returns the number of correct and present letters
func (g Guess) group() (c, p int) {
	for _, l := range g {
		switch l.Status {
		case Correct:
			c++
		case Present:
			p++
		default:
			continue
		}
	}
	return
}

// GreaterThan returns true if `g` has more correct letters than `other`,
// or as many correct and more present letters.
func (g Guess) GreaterThan(other Guess) bool {
	thisCorrect, thisPresent := g.group()
	itCorrect, itPresent := other.group()

	if thisCorrect != itCorrect {
		return thisCorrect > itCorrect
	}
	return thisPresent > itPresent
}

// Scorer assigns a status to every letter of candidate against target.
// Both strings are expected to be uppercase.
type Scorer func(candidate, target string) Guess

// blank fills the positions of a short candidate
const blank = ' '

// fit returns an unscored guess of exactly Length letters: extra letters of w
// are dropped and missing ones are blank and Absent.
func fit(w string) Guess {
	g := NewGuess(w)
	if len(g) > Length {
		return g[:Length]
	}
	for len(g) < Length {
		g = append(g, Letter{Char: blank, Status: Absent})
	}
	return g
}

// Score compares positions 0..Length-1 of candidate to target: equal letters are Correct,
// other letters found anywhere in target are Present, the rest are Absent.
// Letter counts are not tracked, so a repeated letter may be Present more than once.
// The result always has Length letters.
//
// Space Complexity: O(n)
// Time Complexity: O(n)
func Score(candidate, target string) Guess {
	targetRunes := []rune(target)
	contains := make(map[rune]struct{}, len(targetRunes))
	for _, r := range targetRunes {
		contains[r] = struct{}{}
	}

	g := fit(candidate)
	for i := range g {
		if g[i].Status == Absent {
			continue
		}
		c := g[i].Char
		if i < len(targetRunes) && c == targetRunes[i] {
			g[i].Status = Correct
		} else if _, ok := contains[c]; ok {
			g[i].Status = Present
		} else {
			g[i].Status = Absent
		}
	}
	return g
}

// ScoreCounted is the letter-count aware scorer: a letter is Present only while
// target still has unmatched copies of it. Like Score it returns Length letters.
func ScoreCounted(candidate, target string) Guess {
	targetRunes := []rune(target)
	g := fit(candidate)
	for i := range g {
		g[i].Status = Absent
	}

	// check if the lengths match
	if len(g) != len(targetRunes) {
		return g
	}

	// make a dict of the correct letters
	dict := make(map[rune]int)
	for _, v := range targetRunes {
		dict[v] += 1
	}

	// first parse the correct letters
	for i, l := range g {
		if l.Char == targetRunes[i] {
			g[i].Status = Correct
			dict[l.Char] -= 1
		}
	}

	// parse the letters that have wrong positions
	for i, l := range g {
		if l.Status == Correct {
			continue
		}
		if cnt, ok := dict[l.Char]; ok && cnt > 0 {
			g[i].Status = Present
			dict[l.Char] -= 1
		}
	}
	return g
}

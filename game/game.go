package game

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/kodekulture/wordle-solo/game/word"
)

// DefaultMaxGuesses is the number of guesses a player gets unless WithMaxGuesses says otherwise
const DefaultMaxGuesses = 6

type Option func(*Game)

// WithMaxGuesses sets the number of guess slots. Non-positive values are ignored.
func WithMaxGuesses(n int) Option {
	return func(g *Game) {
		if n > 0 {
			g.maxGuesses = n
		}
	}
}

// WithScorer replaces word.Score as the scoring rule.
func WithScorer(s word.Scorer) Option {
	return func(g *Game) {
		if s != nil {
			g.score = s
		}
	}
}

// Game holds the state of a single player's game.
//
// Game is not safe for concurrent use; guesses must be submitted by one caller at a time.
type Game struct {
	ID         uuid.UUID
	CreatedAt  time.Time
	dict       word.Dictionary
	score      word.Scorer
	target     string
	guesses    []word.Guess // len(guesses) == maxGuesses, slots >= current are unset
	maxGuesses int
	current    int
}

// New starts a game with a target word taken from dict.
func New(dict word.Dictionary, opts ...Option) *Game {
	g := &Game{
		ID:         uuid.New(),
		CreatedAt:  time.Now(),
		dict:       dict,
		score:      word.Score,
		maxGuesses: DefaultMaxGuesses,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.target = strings.ToUpper(dict.TargetWord())
	g.guesses = make([]word.Guess, g.maxGuesses)
	return g
}

// ScoreGuess scores candidate against the target word without changing the game.
func (g *Game) ScoreGuess(candidate string) word.Guess {
	return g.score(strings.ToUpper(candidate), g.target)
}

// SubmitGuess scores candidate and stores it in the next free slot.
// The game is left untouched when an error is returned.
func (g *Game) SubmitGuess(candidate string) error {
	if g.ShouldEndGame() {
		return ErrGameOver
	}
	if utf8.RuneCountInString(candidate) != word.Length {
		return ErrInvalidLength
	}
	if !g.dict.IsAcceptable(candidate) {
		return ErrNotAWord
	}
	g.guesses[g.current] = g.ScoreGuess(candidate)
	g.current++
	return nil
}

// IsSolved returns true if the latest guess is the target word
func (g *Game) IsSolved() bool {
	if g.current == 0 {
		return false
	}
	return g.guesses[g.current-1].Correct()
}

// ShouldEndGame returns true if the game was solved or every guess has been used
func (g *Game) ShouldEndGame() bool {
	return g.IsSolved() || g.current >= g.maxGuesses
}

func (g *Game) State() State {
	switch {
	case g.IsSolved():
		return Won
	case g.current >= g.maxGuesses:
		return Lost
	default:
		return InProgress
	}
}

// Target returns the uppercase target word
func (g *Game) Target() string {
	return g.target
}

func (g *Game) MaxGuesses() int {
	return g.maxGuesses
}

// Current returns the number of guesses submitted so far
func (g *Game) Current() int {
	return g.current
}

// Remaining returns the number of guesses left
func (g *Game) Remaining() int {
	return g.maxGuesses - g.current
}

// Guesses returns a copy of the submitted guesses in play order.
func (g *Game) Guesses() []word.Guess {
	out := make([]word.Guess, g.current)
	for i := range out {
		out[i] = append(word.Guess(nil), g.guesses[i]...)
	}
	return out
}

// Slot returns the guess stored at index i, or nil for unset or out of range slots
func (g *Game) Slot(i int) word.Guess {
	if i < 0 || i >= g.current {
		return nil
	}
	return g.guesses[i]
}

// BestGuess returns the highest ranked guess so far, nil if nothing was played
func (g *Game) BestGuess() word.Guess {
	var best word.Guess
	for _, guess := range g.guesses[:g.current] {
		if best == nil || guess.GreaterThan(best) {
			best = guess
		}
	}
	return best
}

package game

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lordvidex/errs"

	"github.com/kodekulture/wordle-solo/game/word"
)

// Snapshot contains everything needed to rebuild an unfinished game
type Snapshot struct {
	CreatedAt  time.Time `json:"created_at"`
	Target     string    `json:"target"`
	Words      []string  `json:"words"`
	MaxGuesses int       `json:"max_guesses"`
	ID         uuid.UUID `json:"id"`
}

func (g *Game) Snapshot() Snapshot {
	words := make([]string, g.current)
	for i, guess := range g.guesses[:g.current] {
		words[i] = guess.Word()
	}
	return Snapshot{
		ID:         g.ID,
		CreatedAt:  g.CreatedAt,
		Target:     g.target,
		MaxGuesses: g.maxGuesses,
		Words:      words,
	}
}

// fixedTarget keeps validating guesses with the wrapped dictionary but
// always hands out the same target.
type fixedTarget struct {
	word.Dictionary
	target string
}

func (f fixedTarget) TargetWord() string {
	return f.target
}

// Restore rebuilds the game described by s. Guesses are scored again and are
// not checked against dict, they were accepted when first played.
func Restore(s Snapshot, dict word.Dictionary, opts ...Option) (*Game, error) {
	if len([]rune(s.Target)) != word.Length {
		return nil, badSnapshot("target %q", s.Target)
	}
	if s.MaxGuesses <= 0 || len(s.Words) > s.MaxGuesses {
		return nil, badSnapshot("%d guesses for %d slots", len(s.Words), s.MaxGuesses)
	}

	opts = append(append([]Option(nil), opts...), WithMaxGuesses(s.MaxGuesses))
	g := New(fixedTarget{Dictionary: dict, target: strings.ToUpper(s.Target)}, opts...)
	g.ID = s.ID
	g.CreatedAt = s.CreatedAt
	for _, w := range s.Words {
		if g.ShouldEndGame() {
			return nil, badSnapshot("guess %q after the game ended", w)
		}
		if len([]rune(w)) != word.Length {
			return nil, badSnapshot("guess %q", w)
		}
		g.guesses[g.current] = g.ScoreGuess(w)
		g.current++
	}
	return g, nil
}

func badSnapshot(format string, args ...any) error {
	return errs.WrapCode(fmt.Errorf(format, args...), errs.InvalidArgument, "invalid game snapshot")
}

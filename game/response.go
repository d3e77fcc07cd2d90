package game

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lordvidex/x/ptr"

	"github.com/kodekulture/wordle-solo/game/word"
)

type Response struct {
	CreatedAt   time.Time       `json:"created_at"`
	State       string          `json:"state"`
	CorrectWord *string         `json:"correct_word,omitempty"` // returned only if game has ended
	Guesses     []GuessResponse `json:"guesses,omitempty"`
	MaxGuesses  int             `json:"max_guesses"`
	Remaining   int             `json:"remaining"`
	ID          uuid.UUID       `json:"id"`
}

type GuessResponse struct {
	// Word can be nil when the guess is shared without its letters
	Word   *string `json:"word,omitempty"`
	Status []int   `json:"status,omitempty"`
}

func ToResponse(g *Game) Response {
	setWord := func(w string) *string {
		if !g.ShouldEndGame() {
			return nil
		}
		return ptr.String(w)
	}
	guesses := make([]GuessResponse, 0, g.Current())
	for _, guess := range g.Guesses() {
		guesses = append(guesses, ToGuess(guess, true))
	}
	return Response{
		CreatedAt:   g.CreatedAt,
		State:       g.State().String(),
		CorrectWord: setWord(g.Target()),
		Guesses:     guesses,
		MaxGuesses:  g.MaxGuesses(),
		Remaining:   g.Remaining(),
		ID:          g.ID,
	}
}

// ToGuess converts a word.Guess to a GuessResponse.
// If showWord is true, the word is returned, otherwise it is nil.
func ToGuess(w word.Guess, showWord bool) GuessResponse {
	guessed := func() *string {
		if showWord {
			return ptr.String(w.Word())
		}
		return nil
	}
	return GuessResponse{
		Word:   guessed(),
		Status: w.Stats().Ints(),
	}
}

var tiles = map[int]string{
	int(word.Correct): "🟩",
	int(word.Present): "🟨",
	int(word.Absent):  "⬛",
}

// Share renders the result as a spoiler free grid of coloured squares,
// headed by the number of guesses used or X for a lost game.
func (r Response) Share() string {
	var b strings.Builder
	used := "X"
	if r.State == Won.String() {
		used = strconv.Itoa(len(r.Guesses))
	}
	b.WriteString("Wordle " + used + "/" + strconv.Itoa(r.MaxGuesses) + "\n")
	for _, g := range r.Guesses {
		b.WriteString("\n")
		for _, s := range g.Status {
			b.WriteString(tiles[s])
		}
	}
	return b.String()
}

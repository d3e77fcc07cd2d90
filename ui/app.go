package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"github.com/kodekulture/wordle-solo/game"
	"github.com/kodekulture/wordle-solo/game/word"
	"github.com/kodekulture/wordle-solo/service"
)

// Player is the part of the game service the terminal front end drives
type Player interface {
	Game() *game.Game
	Play(ctx context.Context, guess string) (word.Guess, error)
	NewGame(ctx context.Context) *game.Game
}

// App runs the input loop on a screen until the player quits.
type App struct {
	screen   *Screen
	renderer *Renderer
	player   Player
	input    []rune
	message  string
	running  bool
}

func New(screen *Screen, player Player) *App {
	return &App{
		screen:   screen,
		renderer: NewRenderer(screen),
		player:   player,
		running:  true,
	}
}

// Run renders and handles input until the player quits or ctx is done.
func (a *App) Run(ctx context.Context) error {
	if a.player.Game() == nil {
		return errors.New("ui: no game to play")
	}
	for a.running {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		a.render()

		ev := a.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			// screen was finalized
			return nil
		case *tcell.EventKey:
			a.handleKey(ctx, ev)
		case *tcell.EventResize:
			a.screen.Sync()
		}
	}
	return nil
}

func (a *App) render() {
	a.renderer.Render(View{
		Game:    a.player.Game(),
		Input:   string(a.input),
		Message: a.message,
	})
}

func (a *App) handleKey(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		a.running = false
	case tcell.KeyEnter:
		a.submit(ctx)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(a.input) > 0 {
			a.input = a.input[:len(a.input)-1]
		}
	case tcell.KeyRune:
		a.handleRune(ctx, ev.Rune())
	}
}

func (a *App) handleRune(ctx context.Context, r rune) {
	if a.player.Game().State().Ended() {
		switch r {
		case 'n', 'N':
			a.player.NewGame(ctx)
			a.input = a.input[:0]
			a.message = ""
		case 'q', 'Q':
			a.running = false
		}
		return
	}
	if !isLetter(r) || len(a.input) >= word.Length {
		return
	}
	a.input = append(a.input, word.NewLetter(r, word.Building).Char)
}

func (a *App) submit(ctx context.Context) {
	guess := string(a.input)
	if _, err := a.player.Play(ctx, guess); err != nil {
		a.message = errorMessage(err)
		return
	}
	a.input = a.input[:0]
	a.message = resultMessage(a.player.Game())
}

func resultMessage(g *game.Game) string {
	switch g.State() {
	case game.Won:
		return fmt.Sprintf("Solved in %d/%d!", g.Current(), g.MaxGuesses())
	case game.Lost:
		return fmt.Sprintf("The word was %s, your closest was %s", g.Target(), g.BestGuess().Word())
	default:
		return fmt.Sprintf("%d guesses left", g.Remaining())
	}
}

func errorMessage(err error) string {
	if !service.IsGameError(err) {
		log.Err(err).Msg("unexpected error playing guess")
		return "Something went wrong: " + strings.TrimSpace(err.Error())
	}
	switch {
	case errors.Is(err, game.ErrInvalidLength):
		return "Not enough letters"
	case errors.Is(err, game.ErrNotAWord):
		return "Not in word list"
	default:
		return "The game is over"
	}
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

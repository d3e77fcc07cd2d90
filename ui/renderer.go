package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/kodekulture/wordle-solo/game"
	"github.com/kodekulture/wordle-solo/game/word"
)

const (
	boardX   = 2
	boardY   = 2
	cellSize = 4 // " A " plus a gap
)

var keyboardRows = []string{"QWERTYUIOP", "ASDFGHJKL", "ZXCVBNM"}

// View is everything drawn in one frame
type View struct {
	Game    *game.Game
	Input   string
	Message string
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the board, the keyboard hint and the message line.
func (r *Renderer) Render(v View) {
	r.screen.Clear()
	r.screen.Text(boardX, 0, "WORDLE", tcell.StyleDefault.Bold(true))

	g := v.Game
	for i := 0; i < g.MaxGuesses(); i++ {
		y := boardY + i
		switch {
		case i < g.Current():
			r.renderGuess(y, g.Slot(i))
		case i == g.Current() && !g.ShouldEndGame():
			r.renderGuess(y, word.NewGuess(v.Input))
		default:
			r.renderGuess(y, nil)
		}
	}

	y := boardY + g.MaxGuesses() + 1
	r.renderKeyboard(y, g.Keyboard())

	y += len(keyboardRows) + 1
	r.screen.Text(boardX, y, v.Message, tcell.StyleDefault.Foreground(tcell.ColorWhite))
	r.screen.Text(boardX, y+1, help(g), tcell.StyleDefault.Foreground(tcell.ColorGray))
	r.screen.Show()
}

// renderGuess draws up to word.Length cells, empty cells are drawn as '_'
func (r *Renderer) renderGuess(y int, g word.Guess) {
	for i := 0; i < word.Length; i++ {
		l := word.NewLetter('_', word.Building)
		if i < len(g) {
			l = g[i]
		}
		x := boardX + i*cellSize
		style := statusStyle(l.Status)
		r.screen.SetContent(x, y, ' ', style)
		r.screen.SetContent(x+1, y, l.Char, style)
		r.screen.SetContent(x+2, y, ' ', style)
	}
}

func (r *Renderer) renderKeyboard(y int, k game.Keyboard) {
	for row, keys := range keyboardRows {
		for i, c := range keys {
			r.screen.SetContent(boardX+row+i*2, y+row, c, statusStyle(k.Status(c)))
		}
	}
}

// statusStyle returns the appropriate style for a letter status.
func statusStyle(s word.LetterStatus) tcell.Style {
	switch s {
	case word.Correct:
		return tcell.StyleDefault.Background(tcell.ColorGreen).Foreground(tcell.ColorBlack).Bold(true)
	case word.Present:
		return tcell.StyleDefault.Background(tcell.ColorYellow).Foreground(tcell.ColorBlack).Bold(true)
	case word.Absent:
		return tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorWhite)
	default:
		return tcell.StyleDefault.Foreground(tcell.ColorWhite)
	}
}

func help(g *game.Game) string {
	if g.ShouldEndGame() {
		return "n: new game   q: quit"
	}
	return "enter: guess   backspace: delete   esc: quit"
}

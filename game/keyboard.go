package game

import "github.com/kodekulture/wordle-solo/game/word"

// Keyboard holds the best known status of every letter from A to Z.
type Keyboard [26]word.LetterStatus

// rank orders statuses by how much they tell the player
var rank = map[word.LetterStatus]int{
	word.Building: 0,
	word.Absent:   1,
	word.Present:  2,
	word.Correct:  3,
}

// Keyboard folds all submitted guesses into a Keyboard
func (g *Game) Keyboard() Keyboard {
	var k Keyboard
	for _, guess := range g.guesses[:g.current] {
		for _, l := range guess {
			i := int(l.Char - 'A')
			if i < 0 || i >= len(k) {
				continue
			}
			if rank[l.Status] > rank[k[i]] {
				k[i] = l.Status
			}
		}
	}
	return k
}

// Status returns the status of letter c, Building if it was never played
func (k Keyboard) Status(c rune) word.LetterStatus {
	l := word.NewLetter(c, word.Building)
	i := int(l.Char - 'A')
	if i < 0 || i >= len(k) {
		return word.Building
	}
	return k[i]
}

package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kodekulture/wordle-solo/game/word"
)

func TestGame_Keyboard(t *testing.T) {
	g := New(newStub())
	assert.Equal(t, Keyboard{}, g.Keyboard())

	require.NoError(t, g.SubmitGuess("PLEAT")) // P present, L present, E present, A present, T absent
	require.NoError(t, g.SubmitGuess("ADIEU")) // A correct, E present

	k := g.Keyboard()
	assert.Equal(t, word.Correct, k.Status('A'))
	assert.Equal(t, word.Correct, k.Status('a'))
	assert.Equal(t, word.Present, k.Status('P'))
	assert.Equal(t, word.Present, k.Status('E'))
	assert.Equal(t, word.Absent, k.Status('T'))
	assert.Equal(t, word.Absent, k.Status('D'))
	assert.Equal(t, word.Building, k.Status('Z'))
	assert.Equal(t, word.Building, k.Status('1'))
}

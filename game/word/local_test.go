package word

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLocal(t *testing.T) {
	got := NewLocal()
	assert.Greater(t, got.Len(), 0, "words should be loaded")
	for _, w := range got.wordsArray {
		require.Len(t, w, Length)
		require.Equal(t, strings.ToUpper(w), w)
	}
}

func TestNewLocalFrom(t *testing.T) {
	d, err := NewLocalFrom(strings.NewReader("apple\n\n  Crane \nto\nbananas\nAPPLE\nab1de\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, d.Len())
	assert.True(t, d.IsAcceptable("APPLE"))
	assert.True(t, d.IsAcceptable("crane"))
	assert.False(t, d.IsAcceptable("bananas"))

	_, err = NewLocalFrom(strings.NewReader("a\nbb\n"))
	assert.ErrorIs(t, err, ErrEmptyList)
}

func Test_localDictionary_TargetWord(t *testing.T) {
	d := NewLocal()
	words := [3]string{}
	for i := 0; i < len(words); i++ {
		words[i] = d.TargetWord()
		assert.True(t, d.IsAcceptable(words[i]))
	}
	if words[0] == words[1] && words[1] == words[2] {
		t.Errorf("localDictionary.TargetWord() = %v, %v, %v on 3 consecutive calls; should be unique",
			words[0], words[1], words[2])
	}
}

func Test_localDictionary_IsAcceptable(t *testing.T) {
	d := NewLocal()
	correct, incorrect := 3, 3
	words := []string{}
	consonants := []rune{'B', 'C', 'D', 'F', 'G', 'H', 'J', 'K', 'L', 'M', 'N', 'P', 'Q', 'R', 'S', 'T', 'V', 'W', 'X', 'Z'}
	badWord := func() string {
		rns := make([]rune, 0, Length)
		for range Length {
			rns = append(rns, consonants[rand.IntN(len(consonants))])
		}
		return string(rns)
	}
	for i := 0; i < correct; i++ {
		words = append(words, d.TargetWord())
	}
	for i := 0; i < incorrect; i++ {
		words = append(words, badWord())
	}

	for _, tt := range words[:correct] {
		t.Run(fmt.Sprintf("correct %s", tt), func(t *testing.T) {
			assert.True(t, d.IsAcceptable(tt))
			assert.True(t, d.IsAcceptable(strings.ToLower(tt)))
		})
	}

	for _, tt := range words[correct:] {
		t.Run(fmt.Sprintf("incorrect %s", tt), func(t *testing.T) {
			assert.False(t, d.IsAcceptable(tt))
		})
	}
}

func TestFixed(t *testing.T) {
	open := Fixed{Word: "apple"}
	assert.Equal(t, "APPLE", open.TargetWord())
	assert.True(t, open.IsAcceptable("ZZZZZ"))

	closed := Fixed{Word: "APPLE", Accept: []string{"APPLE", "adieu"}}
	assert.True(t, closed.IsAcceptable("ADIEU"))
	assert.False(t, closed.IsAcceptable("GUESS"))
}

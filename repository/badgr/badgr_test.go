package badgr

import (
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kodekulture/wordle-solo/game"
	"github.com/kodekulture/wordle-solo/game/word"
)

func TestBackupRepo(t *testing.T) {
	repo := New(testDB, time.Hour)
	tests := []struct {
		name  string
		games []*game.Game
	}{
		{name: "empty", games: nil},
		{name: "single game", games: generateGames(1)},
		{name: "many games", games: generateGames(20)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, g := range tt.games {
				require.NoError(t, repo.Dump(g.Snapshot()))
			}
			got, err := repo.Load()
			require.NoError(t, err)
			defer func() {
				require.NoError(t, repo.Drop())
			}()
			require.Len(t, got, len(tt.games))

			byID := make(map[string]*game.Game)
			for _, g := range tt.games {
				byID[g.ID.String()] = g
			}
			for i, s := range got {
				if i > 0 {
					assert.False(t, s.CreatedAt.After(got[i-1].CreatedAt), "snapshots should be newest first")
				}
				g, ok := byID[s.ID.String()]
				require.True(t, ok)
				compareGames(t, g, s)
			}
		})
	}
}

func TestBackupRepo_Overwrite(t *testing.T) {
	repo := New(testDB, 0)
	defer func() { require.NoError(t, repo.Drop()) }()

	g := game.New(word.Fixed{Word: "APPLE"})
	require.NoError(t, repo.Dump(g.Snapshot()))
	require.NoError(t, g.SubmitGuess("ADIEU"))
	require.NoError(t, repo.Dump(g.Snapshot()))

	got, err := repo.Load()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, []string{"ADIEU"}, got[0].Words)
}

// compareGames compares a game with its stored snapshot
func compareGames(t *testing.T, g *game.Game, s game.Snapshot) {
	restored, err := game.Restore(s, word.Fixed{Word: g.Target()})
	require.NoError(t, err)
	assert.Equal(t, g.ID, restored.ID)
	assert.Equal(t, g.Target(), restored.Target())
	assert.Equal(t, g.MaxGuesses(), restored.MaxGuesses())
	assert.Equal(t, g.Guesses(), restored.Guesses())
	assert.WithinDuration(t, g.CreatedAt, restored.CreatedAt, time.Millisecond)
}

func generateGames(n int) []*game.Game {
	games := make([]*game.Game, 0, n)
	for i := 0; i < n; i++ {
		target := gofakeit.LetterN(word.Length)
		g := game.New(word.Fixed{Word: target}, game.WithMaxGuesses(gofakeit.Number(3, 8)))
		g.CreatedAt = gofakeit.Date()
		// play random words without finishing the game
		for j := 0; j < 2; j++ {
			guess := gofakeit.LetterN(word.Length)
			if g.ShouldEndGame() || word.NewGuess(guess).Word() == g.Target() {
				break
			}
			if err := g.SubmitGuess(guess); err != nil {
				panic(err)
			}
		}
		games = append(games, g)
	}
	return games
}

package game

import (
	"github.com/lordvidex/errs"
)

var (
	// ErrGameOver is returned when a guess is submitted after the game was won or lost
	ErrGameOver = errs.B().Code(errs.InvalidArgument).Msg("the game is over").Err()
	// ErrInvalidLength is returned for guesses that are not word.Length letters long
	ErrInvalidLength = errs.B().Code(errs.InvalidArgument).Msg("guess must be 5 letters long").Err()
	// ErrNotAWord is returned when the dictionary rejects a guess
	ErrNotAWord = errs.B().Code(errs.InvalidArgument).Msg("not in word list").Err()
	// ErrBadSnapshot is returned by Restore for snapshots that describe no valid game
	ErrBadSnapshot = errs.B().Code(errs.InvalidArgument).Msg("invalid game snapshot").Err()
)

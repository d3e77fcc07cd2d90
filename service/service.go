// Package service runs the game session played by the terminal front end.
//
// By default an unfinished game is discarded when the session ends. When a
// repository.Backup is given, Stop suspends the unfinished game instead and
// the next Start resumes it; cmd only does so when SUSPEND_ENABLED is set.
package service

import (
	"context"
	"errors"

	"github.com/lordvidex/errs"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/kodekulture/wordle-solo/game"
	"github.com/kodekulture/wordle-solo/game/word"
	"github.com/kodekulture/wordle-solo/internal/telemetry"
	"github.com/kodekulture/wordle-solo/repository"
)

var (
	ErrNoGame  = errs.B().Code(errs.InvalidArgument).Msg("no game in progress").Err()
	ErrStorage = errs.B().Code(errs.Internal).Msg("error accessing saved game").Err()
)

type Service struct {
	dict   word.Dictionary
	backup repository.Backup
	opts   []game.Option
	tracer trace.Tracer
	g      *game.Game
}

// New returns a Service creating games from dict. backup may be nil, then
// unfinished games are not kept between runs.
func New(dict word.Dictionary, backup repository.Backup, opts ...game.Option) *Service {
	return &Service{
		dict:   dict,
		backup: backup,
		opts:   opts,
		tracer: telemetry.Tracer("service"),
	}
}

// Start resumes the newest suspended game if there is one, otherwise a new game is created.
// The returned bool is true when a game was resumed.
func (s *Service) Start(ctx context.Context) (*game.Game, bool, error) {
	ctx, span := s.tracer.Start(ctx, "service.start")
	defer span.End()

	g, err := s.resume(ctx)
	if err != nil {
		telemetry.Fail(span, err)
		return nil, false, err
	}
	if g != nil {
		s.g = g
		span.SetAttributes(attribute.Bool("game.resumed", true), attribute.String("game.id", g.ID.String()))
		log.Info().Str("game", g.ID.String()).Int("played", g.Current()).Msg("resumed suspended game")
		return g, true, nil
	}
	g = s.NewGame(ctx)
	span.SetAttributes(attribute.Bool("game.resumed", false), attribute.String("game.id", g.ID.String()))
	return g, false, nil
}

func (s *Service) resume(_ context.Context) (*game.Game, error) {
	if s.backup == nil {
		return nil, nil
	}
	snaps, err := s.backup.Load()
	if err != nil {
		return nil, errs.WrapCode(err, errs.Internal, "error accessing saved game")
	}
	// a snapshot is used once, the game is dumped again if it is suspended again
	if err = s.backup.Drop(); err != nil {
		return nil, errs.WrapCode(err, errs.Internal, "error accessing saved game")
	}
	for _, snap := range snaps {
		g, err := game.Restore(snap, s.dict, s.opts...)
		if err != nil {
			log.Warn().Err(err).AnErr("cause", errors.Unwrap(err)).Str("game", snap.ID.String()).Msg("skipping invalid snapshot")
			continue
		}
		return g, nil
	}
	return nil, nil
}

// NewGame abandons the current game, if any, and starts a new one.
func (s *Service) NewGame(ctx context.Context) *game.Game {
	_, span := s.tracer.Start(ctx, "service.new_game")
	defer span.End()

	s.g = game.New(s.dict, s.opts...)
	span.SetAttributes(attribute.String("game.id", s.g.ID.String()), attribute.Int("game.max_guesses", s.g.MaxGuesses()))
	log.Info().Str("game", s.g.ID.String()).Int("max_guesses", s.g.MaxGuesses()).Msg("new game")
	log.Debug().Msg(s.g.Target())
	return s.g
}

// Game returns the current game, nil before Start or NewGame
func (s *Service) Game() *game.Game {
	return s.g
}

// Play submits guess to the current game and returns the scored guess.
func (s *Service) Play(ctx context.Context, guess string) (word.Guess, error) {
	_, span := s.tracer.Start(ctx, "service.play")
	defer span.End()

	if s.g == nil {
		telemetry.Fail(span, ErrNoGame)
		return nil, ErrNoGame
	}
	g := s.g
	span.SetAttributes(attribute.String("game.id", g.ID.String()), attribute.Int("game.guess", g.Current()+1))

	if err := g.SubmitGuess(guess); err != nil {
		telemetry.Fail(span, err)
		log.Debug().Err(err).Str("game", g.ID.String()).Str("guess", guess).Msg("guess rejected")
		return nil, err
	}
	scored := g.Slot(g.Current() - 1)
	log.Debug().Str("game", g.ID.String()).Str("guess", scored.Word()).Ints("status", scored.Stats().Ints()).Msg("guess played")

	if g.ShouldEndGame() {
		span.SetAttributes(attribute.String("game.state", g.State().String()))
		log.Info().
			Str("game", g.ID.String()).
			Str("state", g.State().String()).
			Int("guesses", g.Current()).
			Msg("game finished")
	}
	return scored, nil
}

// Stop ends the session. With a backup the current game is suspended so that
// the next Start resumes it, otherwise it is abandoned.
// Finished games and games without guesses are never kept.
func (s *Service) Stop(ctx context.Context) error {
	_, span := s.tracer.Start(ctx, "service.stop")
	defer span.End()

	g := s.g
	if g == nil || g.State().Ended() {
		return nil
	}
	if s.backup == nil || g.Current() == 0 {
		log.Info().Str("game", g.ID.String()).Int("played", g.Current()).Msg("game abandoned")
		return nil
	}
	if err := s.backup.Dump(g.Snapshot()); err != nil {
		log.Err(err).Caller().Str("game", g.ID.String()).Msg("failed to suspend game")
		err = errs.WrapCode(err, errs.Internal, "error accessing saved game")
		telemetry.Fail(span, err)
		return err
	}
	log.Info().Str("game", g.ID.String()).Int("played", g.Current()).Msg("game suspended")
	return nil
}

// IsGameError reports whether err is one of the errors returned for a rejected guess
func IsGameError(err error) bool {
	return errors.Is(err, game.ErrGameOver) ||
		errors.Is(err, game.ErrInvalidLength) ||
		errors.Is(err, game.ErrNotAWord)
}

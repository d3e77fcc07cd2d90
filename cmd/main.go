package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"github.com/kodekulture/wordle-solo/game"
	"github.com/kodekulture/wordle-solo/game/word"
	"github.com/kodekulture/wordle-solo/internal/config"
	"github.com/kodekulture/wordle-solo/internal/telemetry"
	"github.com/kodekulture/wordle-solo/repository"
	"github.com/kodekulture/wordle-solo/repository/badgr"
	"github.com/kodekulture/wordle-solo/service"
	"github.com/kodekulture/wordle-solo/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "wordle:", err)
		os.Exit(1)
	}
}

func run() error {
	envErr := config.LoadEnv()

	logFile, err := setupLogger()
	if err != nil {
		return err
	}
	defer logFile.Close()
	if envErr != nil {
		zlog.Debug().Err(envErr).Msg(".env file not loaded")
	}

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if config.GetBool("OTEL_ENABLED") {
		shutdown, err := telemetry.Setup(appCtx, config.GetFloat64("OTEL_SAMPLE_RATIO"))
		if err != nil {
			zlog.Warn().Err(err).Msg("telemetry setup failed, running without tracing")
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					zlog.Err(err).Msg("error shutting down telemetry")
				}
			}()
		}
	}

	dict, err := getDictionary()
	if err != nil {
		return err
	}

	var backup repository.Backup
	if config.GetBool("SUSPEND_ENABLED") {
		ttl, err := time.ParseDuration(config.Get("SNAPSHOT_TTL"))
		if err != nil {
			return fmt.Errorf("invalid SNAPSHOT_TTL: %w", err)
		}
		db, err := badgr.Open(config.Get("BADGER_PATH"), zlog.Logger)
		if err != nil {
			return fmt.Errorf("failed to open saved games: %w", err)
		}
		defer db.Close()
		backup = badgr.New(db, ttl)
	}

	srv := service.New(dict, backup,
		game.WithMaxGuesses(config.GetInt("MAX_GUESSES")),
		game.WithScorer(getScorer(config.Get("SCORING"))),
	)
	if _, resumed, err := srv.Start(appCtx); err != nil {
		return err
	} else if resumed {
		zlog.Info().Msg("continuing suspended game")
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return err
	}
	go shutdown(screen)

	err = ui.New(screen, srv).Run(appCtx)
	screen.Close()
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	if err = srv.Stop(appCtx); err != nil {
		return err
	}
	printResult(srv.Game())
	return nil
}

func setupLogger() (*os.File, error) {
	f, err := os.OpenFile(config.Get("LOG_FILE"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: f, NoColor: true, TimeFormat: time.RFC3339})
	lvl, err := zerolog.ParseLevel(config.GetOrDefault("LOG_LEVEL", "info"))
	if err == nil {
		zerolog.SetGlobalLevel(lvl)
		zlog.WithLevel(lvl).Msgf("Setting log level to %v", lvl)
	}
	return f, nil
}

func getDictionary() (word.Dictionary, error) {
	path := config.Get("WORDS_FILE")
	if path == "" {
		return word.NewLocal(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list: %w", err)
	}
	defer f.Close()
	d, err := word.NewLocalFrom(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load word list %s: %w", path, err)
	}
	zlog.Info().Str("file", path).Int("words", d.Len()).Msg("word list loaded")
	return d, nil
}

func getScorer(name string) word.Scorer {
	switch name {
	case "counted":
		return word.ScoreCounted
	case "simple", "":
		return word.Score
	default:
		zlog.Warn().Str("scoring", name).Msg("unknown scoring rule, using simple")
		return word.Score
	}
}

// shutdown closes the screen on SIGTERM so that the input loop returns and the game is suspended
func shutdown(s *ui.Screen) {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	<-sig
	zlog.Info().Msg("shutdown started")
	s.Close()
}

func printResult(g *game.Game) {
	if g == nil {
		return
	}
	if !g.State().Ended() {
		if g.Current() > 0 && config.GetBool("SUSPEND_ENABLED") {
			fmt.Println("Game suspended, run again to continue.")
		}
		return
	}
	fmt.Println(game.ToResponse(g).Share())
	if g.State() == game.Lost {
		fmt.Println("The word was", g.Target())
		fmt.Println("Your closest guess was", g.BestGuess().Word())
	}
}

package badgr

import (
	"github.com/dgraph-io/badger"
	"github.com/rs/zerolog"
)

var _ badger.Logger = zlogger{}

// zlogger sends badger's logs to zerolog instead of stderr
type zlogger struct {
	l zerolog.Logger
}

func (z zlogger) Errorf(f string, v ...interface{})   { z.l.Error().Msgf(f, v...) }
func (z zlogger) Warningf(f string, v ...interface{}) { z.l.Warn().Msgf(f, v...) }
func (z zlogger) Infof(f string, v ...interface{})    { z.l.Debug().Msgf(f, v...) }
func (z zlogger) Debugf(f string, v ...interface{})   { z.l.Trace().Msgf(f, v...) }

// Open opens the badger database at path, logging through l.
func Open(path string, l zerolog.Logger) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).WithLogger(zlogger{l: l.With().Str("component", "badger").Logger()})
	return badger.Open(opts)
}

package app

import (
	"os"
	"time"

	"github.com/rs/zerolog"

	"seedring/internal/services/keychain"
	"seedring/internal/store"
	"seedring/internal/unlock"
)

// Wire bundles the store, the gate and the keychain service for the CLI.
type Wire struct {
	Store *store.FileKeyring
	Gate  *unlock.Gate
	Keys  *keychain.Keychain
	Log   zerolog.Logger
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	log := newLogger(cfg.Verbose)

	ring := store.NewFileKeyring(cfg.Home)
	gate := unlock.New(ring, cfg.Prompt, log)
	keys := keychain.New(ring, gate, cfg.User, cfg.Testing, log)

	return &Wire{
		Store: ring,
		Gate:  gate,
		Keys:  keys,
		Log:   log,
	}, nil
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

package double

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Mode selects which call path a wired call site resolves to. It replaces
// build-tag style conditional compilation with a value chosen once at startup
// (or once per test harness invocation) and injected into the wiring helpers.
type Mode int

const (
	// ModeProduction resolves every wired call site to the original implementation.
	ModeProduction Mode = iota

	// ModeTest resolves a wired call site to its double whenever one is configured.
	ModeTest
)

const (
	modeNameProduction = "production"
	modeNameTest       = "test"
)

func (m Mode) String() string {
	switch m {
	case ModeTest:
		return modeNameTest
	default:
		return modeNameProduction
	}
}

// ParseMode parses a dispatch mode from its name.
func ParseMode(name string) (Mode, error) {
	switch name {
	case modeNameProduction:
		return ModeProduction, nil
	case modeNameTest:
		return ModeTest, nil
	default:
		return ModeProduction, fmt.Errorf("%w: %q", ErrUnknownMode, name)
	}
}

type modeConfig struct {
	Mode string `env:"FNMOCK_MODE" envDefault:"production"`
}

// ModeFromEnv selects the dispatch mode from the FNMOCK_MODE environment
// variable ("production" or "test"), defaulting to production.
func ModeFromEnv() (Mode, error) {
	cfg := modeConfig{}
	if parseErr := env.Parse(&cfg); parseErr != nil {
		return ModeProduction, parseErr
	}

	return ParseMode(cfg.Mode)
}

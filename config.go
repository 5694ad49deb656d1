package cssom

import (
	"go.uber.org/zap"

	"github.com/yacobolo/cssom/internal/shorthand"
)

// Config holds declaration settings
type Config struct {
	Logger *zap.Logger // nil disables logging

	// SequenceShorthands enables the aural cue, pause and rest shorthands.
	SequenceShorthands bool
}

func (c Config) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

func (c Config) options() shorthand.Options {
	return shorthand.Options{SequenceShorthands: c.SequenceShorthands}
}

package llm

import (
	"os"

	"github.com/rs/zerolog"
)

// Logger interface for service logging
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}

// ZerologAdapter adapts a zerolog.Logger to the Logger interface.
type ZerologAdapter struct {
	L zerolog.Logger
}

// NewDefaultLogger returns a zerolog-backed logger writing to stderr.
func NewDefaultLogger() Logger {
	return ZerologAdapter{L: zerolog.New(os.Stderr).With().Timestamp().Logger()}
}

func (a ZerologAdapter) Debug(msg string, keysAndValues ...interface{}) {
	a.emit(a.L.Debug(), msg, keysAndValues)
}

func (a ZerologAdapter) Info(msg string, keysAndValues ...interface{}) {
	a.emit(a.L.Info(), msg, keysAndValues)
}

func (a ZerologAdapter) Error(msg string, keysAndValues ...interface{}) {
	a.emit(a.L.Error(), msg, keysAndValues)
}

func (a ZerologAdapter) emit(e *zerolog.Event, msg string, keysAndValues []interface{}) {
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		e = e.Interface(key, keysAndValues[i+1])
	}
	e.Msg(msg)
}

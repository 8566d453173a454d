package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Logger writes structured events tagged with the emitting component.
type Logger struct {
	logger zerolog.Logger
}

func New(writer io.Writer, level zerolog.Level) *Logger {
	logger := zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Logger()

	return &Logger{logger: logger}
}

// NewFromConfig picks the console or JSON writer and parses the level name.
// Unknown level names fall back to info.
func NewFromConfig(format, level string) *Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	var writer io.Writer = os.Stderr
	if format != "json" {
		writer = zerolog.ConsoleWriter{Out: os.Stderr}
	}
	return New(writer, lvl)
}

// Nop discards everything.
func Nop() *Logger {
	return &Logger{logger: zerolog.Nop()}
}

// Component returns a child logger that stamps every event with component.
func (l *Logger) Component(component string) *Logger {
	return &Logger{logger: l.logger.With().Str("component", component).Logger()}
}

func (l *Logger) Info(message string, fields map[string]interface{}) {
	l.logger.Info().Fields(fields).Msg(message)
}

func (l *Logger) Warning(message string, fields map[string]interface{}) {
	l.logger.Warn().Fields(fields).Msg(message)
}

func (l *Logger) Debug(message string, fields map[string]interface{}) {
	l.logger.Debug().Fields(fields).Msg(message)
}

func (l *Logger) Error(message string, err error, fields map[string]interface{}) {
	l.logger.Error().Err(err).Fields(fields).Msg(message)
}

// Zerolog exposes the underlying logger for code that wants the event API.
func (l *Logger) Zerolog() *zerolog.Logger {
	return &l.logger
}

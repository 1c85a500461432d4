package logger

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

// Logger defines the interface for logging messages.
type Logger interface {
	Error(msg string, err error)
	Warn(msg string)
	Info(msg string)
	Debug(msg string)
}

type zeroLogger struct {
	logger zerolog.Logger
}

var (
	loggerInstance *zeroLogger
	once           sync.Once
)

// New creates a singleton logger writing human-readable output to stdout.
func New() Logger {
	once.Do(func() {
		out := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "2006-01-02 15:04:05"}
		loggerInstance = &zeroLogger{
			logger: zerolog.New(out).With().Timestamp().Logger(),
		}
	})
	return loggerInstance
}

// NewWithWriter creates a logger for tests or alternative sinks.
func NewWithWriter(w io.Writer) Logger {
	return &zeroLogger{logger: zerolog.New(w).With().Timestamp().Logger()}
}

func (l *zeroLogger) Error(msg string, err error) {
	l.logger.Error().Err(err).Msg(msg)
}

func (l *zeroLogger) Warn(msg string) {
	l.logger.Warn().Msg(msg)
}

func (l *zeroLogger) Info(msg string) {
	l.logger.Info().Msg(msg)
}

func (l *zeroLogger) Debug(msg string) {
	l.logger.Debug().Msg(msg)
}

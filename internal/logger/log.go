package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/go-logr/logr"
)

const (
	TextFormat Format = "text"
	JSONFormat Format = "json"
)

type Format string

type Config struct {
	Format    string
	Verbosity int
}

// Logger is the logging surface handed to every component. Debug lines are
// only emitted at verbosity 1 and above.
type Logger interface {
	Info(msg string, keysAndValues ...any)
	Error(msg string, err error, keysAndValues ...any)
	Debug(msg string, keysAndValues ...any)
	With(keysAndValues ...any) Logger
}

type GameSaveLogger struct {
	logger logr.Logger
}

// New builds a logger writing to stdout, tagged with the given name.
func New(loggerName string, cfg Config) (Logger, error) {
	return NewWithWriter(os.Stdout, loggerName, cfg)
}

func NewWithWriter(w io.Writer, loggerName string, cfg Config) (Logger, error) {
	opts := &slog.HandlerOptions{Level: toSlogLevel(cfg.Verbosity)}
	var handler slog.Handler
	switch Format(cfg.Format) {
	case TextFormat, "":
		handler = slog.NewTextHandler(w, opts)
	case JSONFormat:
		handler = slog.NewJSONHandler(w, opts)
	default:
		return nil, fmt.Errorf("unrecognised logging format: %s", cfg.Format)
	}
	attrs := []slog.Attr{slog.String("logger", loggerName)}
	h := handler.WithAttrs(attrs)
	return GameSaveLogger{logr.FromSlogHandler(h)}, nil
}

// Discard returns a logger that drops everything.
func Discard() Logger {
	return GameSaveLogger{logr.Discard()}
}

func (l GameSaveLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Info(msg, keysAndValues...)
}

func (l GameSaveLogger) Error(msg string, err error, keysAndValues ...any) {
	l.logger.Error(err, msg, keysAndValues...)
}

func (l GameSaveLogger) Debug(msg string, keysAndValues ...any) {
	l.logger.V(1).Info(msg, keysAndValues...)
}

func (l GameSaveLogger) With(keysAndValues ...any) Logger {
	return GameSaveLogger{l.logger.WithValues(keysAndValues...)}
}

// toSlogLevel maps a logr verbosity onto the slog level that logr uses for
// V(verbosity) when backed by a slog handler.
func toSlogLevel(verbosity int) slog.Level {
	if verbosity <= 0 {
		return slog.LevelInfo
	}
	return slog.Level(-verbosity)
}

// Package log provides helpers for creating a configured slog.Logger.
//
// When a log file path is not provided, records below error level go to stdout
// and errors go to stderr, so build systems capturing stderr only see failures.
package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"
)

// LevelTrace defines a custom slog level below Debug for very verbose output.
const LevelTrace slog.Level = -8

func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "trace":
		return LevelTrace
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// splitHandler routes error records to one handler and everything else to another.
type splitHandler struct {
	low, high slog.Handler
}

func (h splitHandler) pick(level slog.Level) slog.Handler {
	if level >= slog.LevelError {
		return h.high
	}
	return h.low
}

func (h splitHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.pick(level).Enabled(ctx, level)
}

func (h splitHandler) Handle(ctx context.Context, r slog.Record) error {
	return h.pick(r.Level).Handle(ctx, r)
}

func (h splitHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return splitHandler{low: h.low.WithAttrs(attrs), high: h.high.WithAttrs(attrs)}
}

func (h splitHandler) WithGroup(name string) slog.Handler {
	return splitHandler{low: h.low.WithGroup(name), high: h.high.WithGroup(name)}
}

func newHandler(w io.Writer, format string, level slog.Level) (slog.Handler, error) {
	opts := &slog.HandlerOptions{Level: level}
	switch format {
	case "json":
		return slog.NewJSONHandler(w, opts), nil
	case "text":
		return slog.NewTextHandler(w, opts), nil
	case "auto", "":
		if f, ok := w.(*os.File); ok && !term.IsTerminal(int(f.Fd())) {
			return slog.NewJSONHandler(w, opts), nil
		}
		return slog.NewTextHandler(w, opts), nil
	default:
		return nil, fmt.Errorf("unsupported log format: %s", format)
	}
}

// SetupLogger builds a slog.Logger writing to the console, or to logFile when set.
// format is "text", "json" or "auto" (text on a terminal, JSON otherwise).
func SetupLogger(logLevel, logFile, format string) (*slog.Logger, []io.Closer, error) {
	level := ParseLevel(logLevel)

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, err
		}
		h, err := newHandler(f, format, level)
		if err != nil {
			_ = f.Close()
			return nil, nil, err
		}
		return slog.New(h), []io.Closer{f}, nil
	}

	low, err := newHandler(os.Stdout, format, level)
	if err != nil {
		return nil, nil, err
	}
	high, err := newHandler(os.Stderr, format, max(level, slog.LevelError))
	if err != nil {
		return nil, nil, err
	}
	return slog.New(splitHandler{low: low, high: high}), nil, nil
}

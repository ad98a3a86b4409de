package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

type Level = slog.Level

const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

// Logger writes one JSON object per line with time, level, msg, the
// component (when set) and any extra fields.
type Logger struct {
	base   *slog.Logger
	logger *slog.Logger
}

func ParseLevel(levelStr string) Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

func NewLogger(levelStr string) *Logger {
	return NewLoggerWithWriter(levelStr, os.Stderr)
}

func NewLoggerWithWriter(levelStr string, w io.Writer) *Logger {
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(levelStr),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey && len(groups) == 0 {
				return slog.String(slog.LevelKey, strings.ToLower(a.Value.String()))
			}
			return a
		},
	})
	l := slog.New(h)
	return &Logger{base: l, logger: l}
}

// WithComponent returns a logger that tags every record with component,
// replacing any component set earlier.
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{base: l.base, logger: l.base.With("component", component)}
}

func (l *Logger) Debugw(msg string, fields map[string]any) { l.log(LevelDebug, msg, fields) }

func (l *Logger) Infow(msg string, fields map[string]any) { l.log(LevelInfo, msg, fields) }

func (l *Logger) Warnw(msg string, fields map[string]any) { l.log(LevelWarn, msg, fields) }

func (l *Logger) Errorw(msg string, fields map[string]any) { l.log(LevelError, msg, fields) }

func (l *Logger) Enabled(level Level) bool {
	return l.logger.Enabled(context.Background(), level)
}

func (l *Logger) log(level Level, msg string, fields map[string]any) {
	ctx := context.Background()
	if !l.logger.Enabled(ctx, level) {
		return
	}
	attrs := make([]slog.Attr, 0, len(fields))
	for k, v := range fields {
		attrs = append(attrs, slog.Any(k, v))
	}
	l.logger.LogAttrs(ctx, level, msg, attrs...)
}

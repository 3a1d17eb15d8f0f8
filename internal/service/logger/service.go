package logger

import (
	"context"
	"log/slog"
	"strings"
)

type SlogRequestLogger struct {
	log *slog.Logger
}

func New(log *slog.Logger) *SlogRequestLogger {
	if log == nil {
		log = slog.Default()
	}
	return &SlogRequestLogger{log: log}
}

func (l *SlogRequestLogger) LogRequest(ctx context.Context, source, endpoint string, status *int, err error) {
	p := strings.TrimSpace(endpoint)
	p = strings.Trim(p, "/")
	if p == "" {
		p = "unknown"
	}

	attrs := []slog.Attr{
		slog.String("source", source),
		slog.String("path", p),
	}
	if status != nil {
		attrs = append(attrs, slog.Int("status", *status))
	}

	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
		l.log.LogAttrs(ctx, slog.LevelWarn, "outbound request failed", attrs...)
		return
	}
	l.log.LogAttrs(ctx, slog.LevelDebug, "outbound request", attrs...)
}

// Nop discards every record.
type Nop struct{}

func (Nop) LogRequest(context.Context, string, string, *int, error) {}

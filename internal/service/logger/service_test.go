package logger_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"widget-currency/internal/service/logger"
)

func newBufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestSlogRequestLogger_Success(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(newBufferLogger(&buf))

	status := 200
	l.LogRequest(context.Background(), "restcountries", "/all", &status, nil)

	out := buf.String()
	assert.Contains(t, out, "level=DEBUG")
	assert.Contains(t, out, "source=restcountries")
	assert.Contains(t, out, "path=all")
	assert.Contains(t, out, "status=200")
}

func TestSlogRequestLogger_Failure(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(newBufferLogger(&buf))

	l.LogRequest(context.Background(), "exchangerate", "  ", nil, errors.New("dial tcp: refused"))

	out := buf.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "path=unknown")
	assert.Contains(t, out, `error="dial tcp: refused"`)
	assert.NotContains(t, out, "status=")
}

package logger

import "context"

// RequestLogger records one outbound request. status is nil when no response
// arrived.
type RequestLogger interface {
	LogRequest(ctx context.Context, source, path string, status *int, err error)
}

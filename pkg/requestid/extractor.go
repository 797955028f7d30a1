package requestid

import (
	"context"
	"log/slog"
)

// LogExtractor returns a logger context extractor that injects the request
// ID into every record logged with a request-scoped context.
func LogExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		id := FromContext(ctx)
		if id == "" {
			return slog.Attr{}, false
		}
		return slog.String("request_id", id), true
	}
}

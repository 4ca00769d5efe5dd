package logging

import (
	"context"

	"github.com/charmbracelet/log"
)

type loggerKey struct{}

// FromContext returns the logger attached to ctx by WithLogger. Commands that
// run without one log through Default.
func FromContext(ctx context.Context) *log.Logger {
	if ctx != nil {
		if l, _ := ctx.Value(loggerKey{}).(*log.Logger); l != nil {
			return l
		}
	}
	return Default()
}

// WithLogger attaches logger to ctx. A nil ctx is treated as
// context.Background.
func WithLogger(ctx context.Context, logger *log.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerKey{}, logger)
}

package rod

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/doccorpus"
)

// Ensure LoggingLoader implements doccorpus.Loader.
var _ doccorpus.Loader = (*LoggingLoader)(nil)

// LoggingLoader wraps a Loader with load timing logs.
type LoggingLoader struct {
	next   doccorpus.Loader
	logger *slog.Logger
}

// NewLoggingLoader creates a new LoggingLoader.
func NewLoggingLoader(next doccorpus.Loader, logger *slog.Logger) *LoggingLoader {
	return &LoggingLoader{next: next, logger: logger}
}

// Load logs the URL and duration and delegates to the wrapped loader.
func (l *LoggingLoader) Load(ctx context.Context, url string) (page doccorpus.Page, err error) {
	defer func(begin time.Time) {
		l.logger.Info("load",
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.Load(ctx, url)
}

// Release delegates to the wrapped loader.
func (l *LoggingLoader) Release(page doccorpus.Page) {
	l.next.Release(page)
}

// Close delegates to the wrapped loader.
func (l *LoggingLoader) Close() error {
	return l.next.Close()
}

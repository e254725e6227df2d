package rod

import (
	"context"
	"log/slog"
	"time"

	"github.com/ygolovnia/xkindle"
)

// Ensure the logging decorators implement the domain interfaces.
var (
	_ xkindle.Browser = (*LoggingBrowser)(nil)
	_ xkindle.Session = (*LoggingSession)(nil)
)

// LoggingBrowser wraps a Browser with debug logging. Sessions it opens are
// wrapped with LoggingSession.
type LoggingBrowser struct {
	next   xkindle.Browser
	logger *slog.Logger
}

// NewLoggingBrowser creates a new LoggingBrowser.
func NewLoggingBrowser(next xkindle.Browser, logger *slog.Logger) *LoggingBrowser {
	return &LoggingBrowser{next: next, logger: logger}
}

// Open logs the launch and delegates to the wrapped browser.
func (b *LoggingBrowser) Open(ctx context.Context) (sess xkindle.Session, err error) {
	defer func(begin time.Time) {
		b.logger.Info("browser open",
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())

	sess, err = b.next.Open(ctx)
	if err != nil {
		return nil, err
	}
	return &LoggingSession{next: sess, logger: b.logger}, nil
}

// LoggingSession wraps a Session with debug logging.
type LoggingSession struct {
	next   xkindle.Session
	logger *slog.Logger
}

// Navigate logs the navigation and delegates to the wrapped session.
func (s *LoggingSession) Navigate(ctx context.Context, url string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("navigate",
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Navigate(ctx, url)
}

// WaitVisible logs the wait and delegates to the wrapped session.
func (s *LoggingSession) WaitVisible(ctx context.Context, selector string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("wait visible",
			"selector", selector,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.WaitVisible(ctx, selector)
}

// HTML logs the snapshot size and delegates to the wrapped session.
func (s *LoggingSession) HTML(ctx context.Context) (html string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("page snapshot",
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.HTML(ctx)
}

// Close delegates to the wrapped session.
func (s *LoggingSession) Close() error {
	return s.next.Close()
}

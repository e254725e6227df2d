package rod

import (
	"context"
	"sync/atomic"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/ygolovnia/xkindle"
)

// Ensure Session implements xkindle.Session at compile time.
var _ xkindle.Session = (*Session)(nil)

// Session is one Chrome process plus one page context. It is owned by a
// single pipeline run and must be closed on every exit path.
type Session struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
	page     *rod.Page
	closed   atomic.Bool
}

// Navigate loads the URL and waits for the network-idle lifecycle event.
// The context bounds the whole operation; navigation is never retried.
func (s *Session) Navigate(ctx context.Context, url string) error {
	page := s.page.Context(ctx)

	// The waiter must be armed before Navigate fires the first request.
	wait := page.WaitNavigation(proto.PageLifecycleEventNameNetworkIdle)
	if err := page.Navigate(url); err != nil {
		return xkindle.Errorf(xkindle.EUNAVAILABLE, "navigating to %s: %v", url, err)
	}
	wait()

	if ctx.Err() != nil {
		return xkindle.Errorf(xkindle.EUNAVAILABLE, "navigation timed out for %s", url)
	}
	return nil
}

// WaitVisible blocks until an element matching the selector is present.
func (s *Session) WaitVisible(ctx context.Context, selector string) error {
	if _, err := s.page.Context(ctx).Element(selector); err != nil {
		return xkindle.Errorf(xkindle.ENOTFOUND, "waiting for %q: %v", selector, err)
	}
	return nil
}

// HTML returns the serialized DOM of the current page.
func (s *Session) HTML(ctx context.Context) (string, error) {
	html, err := s.page.Context(ctx).HTML()
	if err != nil {
		return "", xkindle.Errorf(xkindle.EUNAVAILABLE, "reading page HTML: %v", err)
	}
	return html, nil
}

// Close releases the page, the browser, and the launched process.
// Close is idempotent; repeated calls are no-ops.
func (s *Session) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return nil
	}

	err := s.page.Close()
	if cerr := s.browser.Close(); err == nil {
		err = cerr
	}
	s.launcher.Kill()
	return err
}

// configureIdentity applies the fixed desktop identity to a fresh page:
// user agent with matching Accept-Language, standard Accept headers, and
// a large fixed viewport.
func configureIdentity(page *rod.Page) error {
	if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{
		UserAgent:      userAgent,
		AcceptLanguage: acceptLanguageHeader,
	}); err != nil {
		return err
	}

	if _, err := page.SetExtraHeaders([]string{
		"Accept", acceptHeader,
		"Accept-Language", acceptLanguageHeader,
	}); err != nil {
		return err
	}

	return page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             viewportWidth,
		Height:            viewportHeight,
		DeviceScaleFactor: 1,
	})
}

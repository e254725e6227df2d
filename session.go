package xkindle

import "context"

// Browser launches request-scoped browser sessions.
// Implementations may drive a real headless browser or a test fake.
type Browser interface {
	// Open starts one browser process with a single page context.
	// The returned session must be closed by the caller.
	// Launch failure is fatal for the request; it is never retried.
	Open(ctx context.Context) (Session, error)
}

// Session is one running headless-browser process plus one page context.
// A session is exclusively owned by a single pipeline run and is never
// shared across requests.
type Session interface {
	// Navigate loads the URL and waits for network quiescence.
	// The context bounds the wait; navigation is never retried.
	Navigate(ctx context.Context, url string) error

	// WaitVisible blocks until an element matching the selector is
	// present on the page, or the context expires.
	WaitVisible(ctx context.Context, selector string) error

	// HTML returns the serialized DOM of the current page.
	HTML(ctx context.Context) (string, error)

	// Close releases the page and the browser process. Close is
	// idempotent and must be safe to call on every exit path.
	Close() error
}

// Package rod drives a headless Chrome browser via go-rod. Every Open call
// launches a dedicated browser process that lives for exactly one pipeline
// run and presents a plausible desktop identity to the target site.
package rod

import (
	"context"
	"fmt"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/stealth"
	"github.com/ygolovnia/xkindle"
)

// ExecMode selects the browser binary strategy. It is resolved once at
// startup from explicit configuration, never inferred at call time.
type ExecMode string

const (
	// ModeLocal lets the launcher find (or download) a local Chrome.
	ModeLocal ExecMode = "local"

	// ModeServerless targets a constrained serverless host: an explicit
	// chromium binary with the sandbox disabled.
	ModeServerless ExecMode = "serverless"
)

// Desktop identity presented to the target site. These values are
// functional, not cosmetic: the pipeline's success rate depends on not
// being classified as automated traffic.
const (
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	acceptHeader         = "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8"
	acceptLanguageHeader = "en-US,en;q=0.9"

	viewportWidth  = 1920
	viewportHeight = 1080
)

// Ensure Browser implements xkindle.Browser at compile time.
var _ xkindle.Browser = (*Browser)(nil)

// Browser launches request-scoped Chrome sessions.
// Browser is safe for concurrent use; every session is independent.
type Browser struct {
	mode ExecMode
	bin  string
}

// Option configures a Browser.
type Option func(*Browser)

// WithExecMode sets the binary selection strategy. Defaults to ModeLocal.
func WithExecMode(mode ExecMode) Option {
	return func(b *Browser) {
		if mode != "" {
			b.mode = mode
		}
	}
}

// WithBin sets an explicit browser binary path, used with ModeServerless.
func WithBin(path string) Option {
	return func(b *Browser) {
		b.bin = path
	}
}

// NewBrowser creates a new Browser.
func NewBrowser(opts ...Option) *Browser {
	b := &Browser{mode: ModeLocal}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Open launches a headless Chrome process with a single stealth page
// configured with the desktop identity. The returned session must be
// closed by the caller.
func (b *Browser) Open(ctx context.Context) (xkindle.Session, error) {
	l := b.newLauncher()
	u, err := l.Launch()
	if err != nil {
		return nil, xkindle.Errorf(xkindle.EUNAVAILABLE, "launching browser: %v", err)
	}

	browser := rod.New().ControlURL(u).Context(ctx)
	if err := browser.Connect(); err != nil {
		l.Kill() // Clean up launched process on connection failure
		return nil, xkindle.Errorf(xkindle.EUNAVAILABLE, "connecting to browser: %v", err)
	}

	page, err := stealth.Page(browser)
	if err != nil {
		_ = browser.Close()
		l.Kill()
		return nil, xkindle.Errorf(xkindle.EUNAVAILABLE, "creating page: %v", err)
	}

	if err := configureIdentity(page); err != nil {
		_ = page.Close()
		_ = browser.Close()
		l.Kill()
		return nil, xkindle.Errorf(xkindle.EUNAVAILABLE, "configuring page identity: %v", err)
	}

	return &Session{browser: browser, launcher: l, page: page}, nil
}

// newLauncher builds the launcher for the configured execution mode with
// anti-automation flags applied.
func (b *Browser) newLauncher() *launcher.Launcher {
	l := launcher.New().
		Headless(true).
		Leakless(true).
		Set("disable-blink-features", "AutomationControlled").
		Set("disable-features", "IsolateOrigins,site-per-process").
		Set("window-size", fmt.Sprintf("%d,%d", viewportWidth, viewportHeight))

	if b.mode == ModeServerless {
		if b.bin != "" {
			l = l.Bin(b.bin)
		}
		l = l.NoSandbox(true).
			Set("disable-setuid-sandbox").
			Set("disable-dev-shm-usage").
			Set("single-process")
	}

	return l
}

// Package pipeline orchestrates one article-to-Kindle run: validation,
// browser session lifecycle, extraction, document assembly, and delivery.
package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/ygolovnia/xkindle"
)

// Default stage timeouts. The hosting environment enforces the overall
// wall-clock budget through the caller's context.
const (
	DefaultNavigateTimeout = 30 * time.Second
	DefaultContentTimeout  = 15 * time.Second
)

// DefaultPublisher is the publisher label stamped into compiled documents.
const DefaultPublisher = "x-to-kindle"

// Diagnostic dump limits, in bytes. Dumps are logged, never returned.
const (
	notFoundDumpLen = 500
	extractDumpLen  = 2000
)

// Ensure Pipeline implements xkindle.Processor at compile time.
var _ xkindle.Processor = (*Pipeline)(nil)

// Pipeline sequences one extraction-and-delivery run. Every collaborator
// is an injected interface so the pipeline can be tested without a real
// browser or network. No stage retries internally.
type Pipeline struct {
	Browser   xkindle.Browser
	Extractor xkindle.Extractor
	Compiler  xkindle.Compiler
	Deliverer xkindle.Deliverer

	// AllowedHosts restricts source URLs. Defaults to
	// xkindle.DefaultAllowedHosts when nil.
	AllowedHosts []string

	// Publisher is the label stamped into document metadata.
	// Defaults to DefaultPublisher.
	Publisher string

	// NavigateTimeout bounds page navigation. Defaults to 30s.
	NavigateTimeout time.Duration

	// ContentTimeout bounds the article-presence wait. Defaults to 15s.
	ContentTimeout time.Duration

	Logger *slog.Logger
}

// Process runs the pipeline for one request and returns exactly one
// terminal outcome: a Receipt or a coded error. The browser session is
// released on every exit path, including panics.
func (p *Pipeline) Process(ctx context.Context, req *xkindle.ExtractionRequest) (receipt *xkindle.Receipt, err error) {
	log := p.logger().With("request_id", uuid.NewString(), "url", req.SourceURL)

	// Single recovery point for unanticipated faults. Deferred session
	// cleanup in extract runs before this during unwinding.
	defer func() {
		if r := recover(); r != nil {
			log.Error("pipeline panic", "panic", r)
			receipt = nil
			err = xkindle.Errorf(xkindle.EINTERNAL, "An unexpected error occurred: %v", r)
		}
	}()

	if err := req.Validate(p.allowedHosts()); err != nil {
		return nil, err
	}

	result, err := p.extract(ctx, log, req.SourceURL)
	if err != nil {
		return nil, err
	}

	title := xkindle.DeriveTitle(result.Text, result.Author, result.Title)

	doc, err := xkindle.AssembleDocument(p.Compiler, xkindle.DocumentMetadata{
		Title:     title,
		Author:    result.Author,
		Publisher: p.publisher(),
	}, result.Text)
	if err != nil {
		log.Error("document assembly failed", "err", err)
		return nil, err
	}

	status, err := p.Deliverer.Deliver(ctx, doc, req.Destination)
	if err != nil {
		log.Error("delivery failed", "err", err)
		return nil, err
	}

	log.Info("pipeline finished",
		"status", status,
		"title", title,
		"author", result.Author,
	)

	return &xkindle.Receipt{
		Status:      status,
		Author:      result.Author,
		Title:       title,
		TextPreview: xkindle.TextPreview(result.Text),
	}, nil
}

// extract owns the browser session: opened here, closed exactly once on
// every exit path, and released as soon as the DOM snapshot is taken so
// the process does not stay alive through compilation and delivery.
func (p *Pipeline) extract(ctx context.Context, log *slog.Logger, url string) (*xkindle.ExtractionResult, error) {
	sess, err := p.Browser.Open(ctx)
	if err != nil {
		log.Error("browser launch failed", "err", err)
		return nil, err
	}

	closed := false
	closeSession := func() {
		if closed {
			return
		}
		closed = true
		// Close errors are logged, not returned: they must never mask
		// the pipeline's primary error.
		if cerr := sess.Close(); cerr != nil {
			log.Warn("session close failed", "err", cerr)
		}
	}
	defer closeSession()

	navCtx, cancelNav := context.WithTimeout(ctx, p.navigateTimeout())
	defer cancelNav()
	if err := sess.Navigate(navCtx, url); err != nil {
		log.Error("navigation failed", "err", err)
		return nil, err
	}

	waitCtx, cancelWait := context.WithTimeout(ctx, p.contentTimeout())
	defer cancelWait()
	if err := sess.WaitVisible(waitCtx, xkindle.ArticleSelector); err != nil {
		// Raw markup is dumped for diagnosis only and never reaches the caller.
		if raw, herr := sess.HTML(ctx); herr == nil {
			log.Info("article container not found", "dom_dump", clip(raw, notFoundDumpLen))
		}
		return nil, xkindle.Errorf(xkindle.ENOTFOUND, "Could not find article content. It might be private or deleted.")
	}

	html, err := sess.HTML(ctx)
	if err != nil {
		log.Error("page snapshot failed", "err", err)
		return nil, err
	}

	// The snapshot is taken; nothing below needs the browser.
	closeSession()

	result, err := p.Extractor.Extract(html)
	if err != nil {
		return nil, err
	}
	if result.Text == "" {
		log.Info("extraction found no qualifying text", "debug_html", clip(result.DebugHTML, extractDumpLen))
		return nil, xkindle.Errorf(xkindle.EEXTRACT, "Failed to extract text from the X Article.")
	}

	return result, nil
}

func (p *Pipeline) logger() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return slog.Default()
}

func (p *Pipeline) allowedHosts() []string {
	if p.AllowedHosts != nil {
		return p.AllowedHosts
	}
	return xkindle.DefaultAllowedHosts
}

func (p *Pipeline) publisher() string {
	if p.Publisher != "" {
		return p.Publisher
	}
	return DefaultPublisher
}

func (p *Pipeline) navigateTimeout() time.Duration {
	if p.NavigateTimeout > 0 {
		return p.NavigateTimeout
	}
	return DefaultNavigateTimeout
}

func (p *Pipeline) contentTimeout() time.Duration {
	if p.ContentTimeout > 0 {
		return p.ContentTimeout
	}
	return DefaultContentTimeout
}

// clip bounds diagnostic dumps.
func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

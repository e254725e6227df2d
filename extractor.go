package xkindle

// ArticleSelector matches the article container the extractor operates on.
// The content-presence wait and the extraction heuristic must agree on it.
const ArticleSelector = "article"

// ExtractionResult holds the content extracted from an article page
// snapshot. Empty fields mean the corresponding value was not found.
type ExtractionResult struct {
	// Text is the article prose. Empty only when no qualifying content
	// nodes were found; this is the extraction success discriminator.
	Text string

	// Author is the display name of the article's author.
	// "Unknown Author" when the author marker is absent.
	Author string

	// Title is the explicit article title, when the page carries one.
	Title string

	// DebugHTML is the article container's inner HTML. It exists only
	// to aid failure diagnosis and is never surfaced to callers.
	DebugHTML string
}

// Extractor turns a serialized DOM snapshot into an ExtractionResult.
// Implementations must be pure functions of the snapshot so they can be
// tested with synthetic DOM trees, decoupled from the browser transport.
type Extractor interface {
	Extract(html string) (*ExtractionResult, error)
}

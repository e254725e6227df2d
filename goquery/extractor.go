// Package goquery implements the content-extraction heuristic over a
// serialized DOM snapshot using CSS selectors.
package goquery

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/ygolovnia/xkindle"
)

// minCandidateLen is the noise filter: rendered text this short is UI
// chrome (timestamps, counts, handles), not article prose.
const minCandidateLen = 20

// contentSelector matches the explicit content wrappers X uses. X Articles
// carry different data-testids than regular tweets, so both are listed.
// When nothing matches, the extractor falls back to every span inside the
// container: a much wider, noisier net that the length filter and the
// deduplication step then clean up.
const contentSelector = `[data-testid="article-content"], [data-testid="tweetText"]`

// authorSelector marks the author block inside the article container.
const authorSelector = `[data-testid="User-Name"]`

// Ensure Extractor implements xkindle.Extractor at compile time.
var _ xkindle.Extractor = (*Extractor)(nil)

// Extractor extracts article text, author, and title from an X article
// page snapshot. It is a pure function of the snapshot and holds no state.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses the snapshot and runs the selection heuristic. An empty
// Text in the result means no qualifying content nodes were found.
func (e *Extractor) Extract(html string) (*xkindle.ExtractionResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, xkindle.Errorf(xkindle.EINVALID, "failed to parse HTML: %v", err)
	}

	articles := doc.Find(xkindle.ArticleSelector)
	if articles.Length() == 0 {
		return &xkindle.ExtractionResult{}, nil
	}

	// Multiple article elements may exist on the page; only the first
	// one is used.
	container := articles.First()

	nodes := container.Find(contentSelector)
	if nodes.Length() == 0 {
		nodes = container.Find("span")
	}

	// X's DOM renders identical text in multiple hidden nested nodes, so
	// candidates are deduplicated by exact value with the first
	// occurrence determining final order.
	seen := make(map[string]struct{})
	var blocks []string
	nodes.Each(func(_ int, sel *goquery.Selection) {
		t := strings.TrimSpace(sel.Text())
		if utf8.RuneCountInString(t) <= minCandidateLen {
			return
		}
		if _, ok := seen[t]; ok {
			return
		}
		seen[t] = struct{}{}
		blocks = append(blocks, t)
	})

	debugHTML, _ := container.Html()

	return &xkindle.ExtractionResult{
		Text:      strings.Join(blocks, "\n\n"),
		Author:    extractAuthor(container),
		Title:     extractTitle(doc, container),
		DebugHTML: debugHTML,
	}, nil
}

// extractTitle tries the title candidates in precedence order: the
// explicit article-title marker, the first heading in the container, a
// heading inside a header region, then any heading in the document. The
// first non-empty candidate wins.
func extractTitle(doc *goquery.Document, container *goquery.Selection) string {
	candidates := []*goquery.Selection{
		container.Find(`[data-testid="article-title"]`),
		container.Find("h1"),
		doc.Find("header h1"),
		doc.Find("h1"),
	}

	for _, sel := range candidates {
		if t := strings.TrimSpace(sel.First().Text()); t != "" {
			return t
		}
	}
	return ""
}

// extractAuthor reads the author marker and keeps the display name before
// the @handle.
func extractAuthor(container *goquery.Selection) string {
	raw := container.Find(authorSelector).First().Text()
	name, _, _ := strings.Cut(raw, "@")
	if name = strings.TrimSpace(name); name == "" {
		return "Unknown Author"
	}
	return name
}

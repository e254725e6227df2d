package mock

import "github.com/ygolovnia/xkindle"

var _ xkindle.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of xkindle.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*xkindle.ExtractionResult, error)
}

func (e *Extractor) Extract(html string) (*xkindle.ExtractionResult, error) {
	return e.ExtractFn(html)
}

package mock

import (
	"context"

	"github.com/ygolovnia/xkindle"
)

var _ xkindle.Processor = (*Processor)(nil)

// Processor is a mock implementation of xkindle.Processor.
type Processor struct {
	ProcessFn func(ctx context.Context, req *xkindle.ExtractionRequest) (*xkindle.Receipt, error)
}

func (p *Processor) Process(ctx context.Context, req *xkindle.ExtractionRequest) (*xkindle.Receipt, error) {
	return p.ProcessFn(ctx, req)
}

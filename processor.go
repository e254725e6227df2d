package xkindle

import "context"

// Processor runs one extraction-and-delivery request end to end and
// produces exactly one terminal outcome: a Receipt or a coded error.
type Processor interface {
	Process(ctx context.Context, req *ExtractionRequest) (*Receipt, error)
}

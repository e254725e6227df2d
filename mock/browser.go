package mock

import (
	"context"

	"github.com/ygolovnia/xkindle"
)

var _ xkindle.Browser = (*Browser)(nil)

// Browser is a mock implementation of xkindle.Browser.
type Browser struct {
	OpenFn func(ctx context.Context) (xkindle.Session, error)
}

func (b *Browser) Open(ctx context.Context) (xkindle.Session, error) {
	return b.OpenFn(ctx)
}

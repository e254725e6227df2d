package mock

import (
	"context"

	"github.com/ygolovnia/xkindle"
)

var _ xkindle.Deliverer = (*Deliverer)(nil)

// Deliverer is a mock implementation of xkindle.Deliverer.
type Deliverer struct {
	DeliverFn func(ctx context.Context, doc *xkindle.PublicationDocument, destination string) (xkindle.DeliveryStatus, error)
}

func (d *Deliverer) Deliver(ctx context.Context, doc *xkindle.PublicationDocument, destination string) (xkindle.DeliveryStatus, error) {
	return d.DeliverFn(ctx, doc, destination)
}

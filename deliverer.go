package xkindle

import "context"

// DeliveryStatus is the terminal state of a delivery attempt that did not
// error.
type DeliveryStatus string

const (
	// Delivered means the delivery API accepted the document.
	Delivered DeliveryStatus = "delivered"

	// DeliverySkipped means no delivery credential was configured: the
	// document was generated but not sent. This is an explicit
	// partial-success signal, not an error.
	DeliverySkipped DeliveryStatus = "skipped"
)

// Deliverer sends an assembled document to a destination address.
// A rejected send is reported as an EDELIVERY error; missing credentials
// are reported as DeliverySkipped. Implementations never retry.
type Deliverer interface {
	Deliver(ctx context.Context, doc *PublicationDocument, destination string) (DeliveryStatus, error)
}

// Receipt is the success payload of one pipeline run.
type Receipt struct {
	Status      DeliveryStatus
	Author      string
	Title       string
	TextPreview string
}

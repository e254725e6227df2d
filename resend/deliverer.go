// Package resend dispatches assembled documents as email attachments
// through the Resend API (https://resend.com).
package resend

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/ygolovnia/xkindle"
)

// DefaultBaseURL is the Resend API endpoint.
const DefaultBaseURL = "https://api.resend.com"

// DefaultTimeout bounds the delivery HTTP call.
const DefaultTimeout = 30 * time.Second

// Ensure Deliverer implements xkindle.Deliverer at compile time.
var _ xkindle.Deliverer = (*Deliverer)(nil)

// Deliverer sends documents via the Resend email API. An empty API key
// switches it to degraded mode: every Deliver call reports
// DeliverySkipped, which keeps local testing of extraction and assembly
// useful without credentials.
type Deliverer struct {
	apiKey  string
	from    string
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

// Option configures a Deliverer.
type Option func(*Deliverer)

// WithBaseURL overrides the API endpoint. Used in tests.
func WithBaseURL(u string) Option {
	return func(d *Deliverer) {
		d.baseURL = u
	}
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(d *Deliverer) {
		d.client = c
	}
}

// NewDeliverer creates a Deliverer sending from the given address.
// The API key may be empty; see Deliverer.
func NewDeliverer(apiKey, from string, logger *slog.Logger, opts ...Option) *Deliverer {
	d := &Deliverer{
		apiKey:  apiKey,
		from:    from,
		baseURL: DefaultBaseURL,
		client:  &http.Client{Timeout: DefaultTimeout},
		logger:  logger,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

type emailRequest struct {
	From        string       `json:"from"`
	To          []string     `json:"to"`
	Subject     string       `json:"subject"`
	HTML        string       `json:"html"`
	Attachments []attachment `json:"attachments"`
}

type attachment struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
}

// Deliver issues one POST with the document base64-encoded as an
// attachment. A non-2xx response is mapped to an EDELIVERY error carrying
// the upstream message when the body holds one. No retry is attempted.
func (d *Deliverer) Deliver(ctx context.Context, doc *xkindle.PublicationDocument, destination string) (xkindle.DeliveryStatus, error) {
	if d.apiKey == "" {
		d.logger.Warn("delivery credential missing, skipping delivery",
			"destination", destination,
			"filename", doc.AttachmentFilename,
		)
		return xkindle.DeliverySkipped, nil
	}

	payload, err := json.Marshal(emailRequest{
		From:    d.from,
		To:      []string{destination},
		Subject: "X Article from " + doc.Author,
		HTML:    "<p>Your requested X Article</p>",
		Attachments: []attachment{{
			Filename: doc.AttachmentFilename,
			Content:  base64.StdEncoding.EncodeToString(doc.Content),
		}},
	})
	if err != nil {
		return "", xkindle.Errorf(xkindle.EINTERNAL, "encoding delivery request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.baseURL+"/emails", bytes.NewReader(payload))
	if err != nil {
		return "", xkindle.Errorf(xkindle.EINTERNAL, "building delivery request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+d.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return "", xkindle.Errorf(xkindle.EDELIVERY, "Failed to deliver to Kindle via Resend Email. %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := errorMessage(resp.Body)
		d.logger.Error("resend API error", "status", resp.StatusCode, "message", msg)
		return "", xkindle.Errorf(xkindle.EDELIVERY, "Failed to deliver to Kindle via Resend Email. %s", msg)
	}

	return xkindle.Delivered, nil
}

// errorMessage extracts the structured message from a Resend error body,
// falling back to a generic message when the body is unparseable.
func errorMessage(body io.Reader) string {
	var parsed struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(body).Decode(&parsed); err == nil && parsed.Message != "" {
		return parsed.Message
	}
	return "Unknown error"
}

package xkindle

import (
	"net/url"
	"strings"
)

// DefaultAllowedHosts lists the source hostnames accepted by default.
// Subdomains of these hosts are accepted too.
var DefaultAllowedHosts = []string{"x.com", "twitter.com"}

// ExtractionRequest describes one article-to-Kindle run. It is created per
// invocation, immutable, and discarded when the pipeline completes.
type ExtractionRequest struct {
	// SourceURL is the address of the X article page.
	SourceURL string

	// Destination is the Kindle email address that receives the attachment.
	Destination string
}

// Validate checks the request against the hostname allow-list. A hostname
// is allowed when it matches an entry exactly or is a subdomain of one.
// Returns EINVALID for every violation; nothing is retried downstream, so
// this must run before any browser session is opened.
func (r *ExtractionRequest) Validate(allowedHosts []string) error {
	if r.SourceURL == "" || r.Destination == "" {
		return Errorf(EINVALID, "Missing required fields: url or kindleEmail")
	}

	u, err := url.Parse(r.SourceURL)
	if err != nil || !u.IsAbs() || u.Hostname() == "" {
		return Errorf(EINVALID, "Invalid X/Twitter URL. Please provide a direct link.")
	}

	host := strings.ToLower(u.Hostname())
	for _, allowed := range allowedHosts {
		if host == allowed || strings.HasSuffix(host, "."+allowed) {
			return nil
		}
	}

	return Errorf(EINVALID, "Invalid X/Twitter URL. Please provide a direct link.")
}

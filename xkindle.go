// Package xkindle turns a single X (Twitter) article page into an EPUB and
// emails it to a Kindle address. The page is fetched through a headless
// browser, readable text and metadata are extracted with a selector
// heuristic tuned to X's markup, the result is compiled into an in-memory
// EPUB, and the document is dispatched through the Resend email API.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., rod/, goquery/, resend/).
package xkindle

package xkindle

import "strings"

// DocumentMetadata describes the document being compiled.
type DocumentMetadata struct {
	Title     string
	Author    string
	Publisher string
}

// Compiler builds a portable document from metadata and an HTML body
// fragment. Compilation is opaque to the pipeline: it either succeeds with
// a complete byte buffer or fails with an error.
type Compiler interface {
	Compile(meta DocumentMetadata, bodyHTML string) ([]byte, error)
}

// PublicationDocument is the assembled, ready-to-deliver document.
// Immutable after assembly.
type PublicationDocument struct {
	Title              string
	Author             string
	AttachmentFilename string
	HTMLBody           string
	Content            []byte
}

// BuildHTMLBody converts extracted plain text into the HTML fragment
// embedded in the document. The three HTML metacharacters are escaped
// first so the text cannot be misinterpreted as markup; double newlines
// become paragraph breaks and remaining single newlines become line
// breaks.
func BuildHTMLBody(text string) string {
	escaped := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;").Replace(text)
	escaped = strings.ReplaceAll(escaped, "\n\n", "</p><p>")
	escaped = strings.ReplaceAll(escaped, "\n", "<br/>")
	return "<p>" + escaped + "</p>"
}

// AssembleDocument builds the PublicationDocument for the extracted text.
// The attachment filename is derived from the metadata title.
func AssembleDocument(c Compiler, meta DocumentMetadata, text string) (*PublicationDocument, error) {
	body := BuildHTMLBody(text)

	content, err := c.Compile(meta, body)
	if err != nil {
		return nil, Errorf(EINTERNAL, "Failed to compile document: %v", err)
	}

	return &PublicationDocument{
		Title:              meta.Title,
		Author:             meta.Author,
		AttachmentFilename: DeriveAttachmentFilename(meta.Title),
		HTMLBody:           body,
		Content:            content,
	}, nil
}

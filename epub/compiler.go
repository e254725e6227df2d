// Package epub compiles assembled article content into an in-memory EPUB.
package epub

import (
	"bytes"
	"fmt"

	goepub "github.com/go-shiori/go-epub"
	"github.com/ygolovnia/xkindle"
)

// Ensure Compiler implements xkindle.Compiler at compile time.
var _ xkindle.Compiler = (*Compiler)(nil)

// Compiler builds single-section EPUB documents in memory.
type Compiler struct{}

// NewCompiler creates a new Compiler.
func NewCompiler() *Compiler {
	return &Compiler{}
}

// Compile builds an EPUB carrying the metadata and one section holding the
// body fragment, and returns the serialized bytes.
func (c *Compiler) Compile(meta xkindle.DocumentMetadata, bodyHTML string) ([]byte, error) {
	e, err := goepub.NewEpub(meta.Title)
	if err != nil {
		return nil, fmt.Errorf("creating epub: %w", err)
	}

	e.SetAuthor(meta.Author)
	e.SetLang("en")
	if meta.Publisher != "" {
		// go-epub has no publisher field; the label rides in the description.
		e.SetDescription(fmt.Sprintf("Compiled by %s.", meta.Publisher))
	}

	if _, err := e.AddSection(bodyHTML, meta.Title, "", ""); err != nil {
		return nil, fmt.Errorf("adding section: %w", err)
	}

	var buf bytes.Buffer
	if _, err := e.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("writing epub: %w", err)
	}
	return buf.Bytes(), nil
}

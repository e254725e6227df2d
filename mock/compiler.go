package mock

import "github.com/ygolovnia/xkindle"

var _ xkindle.Compiler = (*Compiler)(nil)

// Compiler is a mock implementation of xkindle.Compiler.
type Compiler struct {
	CompileFn func(meta xkindle.DocumentMetadata, bodyHTML string) ([]byte, error)
}

func (c *Compiler) Compile(meta xkindle.DocumentMetadata, bodyHTML string) ([]byte, error) {
	return c.CompileFn(meta, bodyHTML)
}

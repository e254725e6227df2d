package epub_test

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ygolovnia/xkindle"
	"github.com/ygolovnia/xkindle/epub"
)

func TestCompiler_Compile(t *testing.T) {
	t.Parallel()

	meta := xkindle.DocumentMetadata{
		Title:     "X Article by Jane Doe",
		Author:    "Jane Doe",
		Publisher: "x-to-kindle",
	}

	content, err := epub.NewCompiler().Compile(meta, "<p>Hello world, this is a long enough paragraph.</p>")
	require.NoError(t, err)
	require.NotEmpty(t, content)

	// EPUB is a zip container whose first entry is the mimetype marker.
	r, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	require.NoError(t, err)
	require.NotEmpty(t, r.File)

	assert.Equal(t, "mimetype", r.File[0].Name)

	f, err := r.File[0].Open()
	require.NoError(t, err)
	defer f.Close()

	mimetype, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "application/epub+zip", string(mimetype))
}

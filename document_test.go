package xkindle_test

import (
	"errors"
	"html"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ygolovnia/xkindle"
	"github.com/ygolovnia/xkindle/mock"
)

func TestBuildHTMLBody(t *testing.T) {
	t.Parallel()

	t.Run("escapes HTML metacharacters", func(t *testing.T) {
		t.Parallel()

		got := xkindle.BuildHTMLBody(`a < b && b > c`)
		assert.Equal(t, "<p>a &lt; b &amp;&amp; b &gt; c</p>", got)
	})

	t.Run("escaping round-trips through unescaping", func(t *testing.T) {
		t.Parallel()

		text := `5 < 6 & "x" > 'y'`
		got := xkindle.BuildHTMLBody(text)

		inner := strings.TrimSuffix(strings.TrimPrefix(got, "<p>"), "</p>")
		assert.Equal(t, text, html.UnescapeString(inner))
	})

	t.Run("maps double newlines to paragraphs and single newlines to line breaks", func(t *testing.T) {
		t.Parallel()

		got := xkindle.BuildHTMLBody("first paragraph\n\nsecond\nstill second")
		assert.Equal(t, "<p>first paragraph</p><p>second<br/>still second</p>", got)
	})
}

func TestAssembleDocument(t *testing.T) {
	t.Parallel()

	meta := xkindle.DocumentMetadata{
		Title:     "A Title",
		Author:    "Jane Doe",
		Publisher: "x-to-kindle",
	}

	t.Run("assembles an immutable document from compiler output", func(t *testing.T) {
		t.Parallel()

		var gotMeta xkindle.DocumentMetadata
		var gotBody string
		compiler := &mock.Compiler{
			CompileFn: func(meta xkindle.DocumentMetadata, bodyHTML string) ([]byte, error) {
				gotMeta, gotBody = meta, bodyHTML
				return []byte("epub-bytes"), nil
			},
		}

		doc, err := xkindle.AssembleDocument(compiler, meta, "Some text.")

		require.NoError(t, err)
		assert.Equal(t, meta, gotMeta)
		assert.Equal(t, "<p>Some text.</p>", gotBody)
		assert.Equal(t, "A Title", doc.Title)
		assert.Equal(t, "Jane Doe", doc.Author)
		assert.Equal(t, "A Title.epub", doc.AttachmentFilename)
		assert.Equal(t, "<p>Some text.</p>", doc.HTMLBody)
		assert.Equal(t, []byte("epub-bytes"), doc.Content)
	})

	t.Run("maps compiler failure to an internal error", func(t *testing.T) {
		t.Parallel()

		compiler := &mock.Compiler{
			CompileFn: func(xkindle.DocumentMetadata, string) ([]byte, error) {
				return nil, errors.New("compile blew up")
			},
		}

		doc, err := xkindle.AssembleDocument(compiler, meta, "Some text.")

		require.Error(t, err)
		assert.Nil(t, doc)
		assert.Equal(t, xkindle.EINTERNAL, xkindle.ErrorCode(err))
	})
}

package xkindle_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/ygolovnia/xkindle"
)

func TestDeriveTitle(t *testing.T) {
	t.Parallel()

	t.Run("uses the extracted title when present", func(t *testing.T) {
		t.Parallel()

		got := xkindle.DeriveTitle("Some article text.", "Jane Doe", "On Writing Well")
		assert.Equal(t, "On Writing Well", got)
	})

	t.Run("normalizes whitespace in the extracted title", func(t *testing.T) {
		t.Parallel()

		got := xkindle.DeriveTitle("text", "Jane Doe", "  On\n Writing\t\tWell  ")
		assert.Equal(t, "On Writing Well", got)
	})

	t.Run("is idempotent for normalized under-length titles", func(t *testing.T) {
		t.Parallel()

		title := "A perfectly ordinary title"
		assert.Equal(t, title, xkindle.DeriveTitle("text", "Jane Doe", title))
	})

	t.Run("truncates long extracted titles to 120 characters", func(t *testing.T) {
		t.Parallel()

		got := xkindle.DeriveTitle("text", "Jane Doe", strings.Repeat("a", 200))

		assert.Equal(t, 120, utf8.RuneCountInString(got))
		assert.True(t, strings.HasSuffix(got, xkindle.Ellipsis))
	})

	t.Run("ignores extracted titles of 2 characters or fewer", func(t *testing.T) {
		t.Parallel()

		got := xkindle.DeriveTitle("First line of the article.\nSecond line.", "Jane Doe", "ab")
		assert.Equal(t, "First line of the article.", got)
	})

	t.Run("falls back to the first non-blank line of the text", func(t *testing.T) {
		t.Parallel()

		got := xkindle.DeriveTitle("\n  \nHello world, this is a long enough paragraph.\nMore text.", "Jane Doe", "")
		assert.Equal(t, "Hello world, this is a long enough paragraph.", got)
	})

	t.Run("truncates text fallback titles to 80 characters", func(t *testing.T) {
		t.Parallel()

		got := xkindle.DeriveTitle(strings.Repeat("b", 150), "Jane Doe", "")

		assert.Equal(t, 80, utf8.RuneCountInString(got))
		assert.True(t, strings.HasSuffix(got, xkindle.Ellipsis))
	})

	t.Run("synthesizes a title when nothing else is available", func(t *testing.T) {
		t.Parallel()

		got := xkindle.DeriveTitle("", "Jane Doe", "")
		assert.Equal(t, "X Article by Jane Doe", got)
	})
}

func TestDeriveAttachmentFilename(t *testing.T) {
	t.Parallel()

	t.Run("strips filesystem-hostile characters", func(t *testing.T) {
		t.Parallel()

		got := xkindle.DeriveAttachmentFilename(`What: "a/b\c" * is <it>? | none`)
		assert.Equal(t, "What abc is it none.epub", got)
	})

	t.Run("collapses whitespace", func(t *testing.T) {
		t.Parallel()

		got := xkindle.DeriveAttachmentFilename("  A   spaced\tout   title ")
		assert.Equal(t, "A spaced out title.epub", got)
	})

	t.Run("falls back to a default name when nothing survives", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "X Article.epub", xkindle.DeriveAttachmentFilename(`\/:*?"<>|`))
		assert.Equal(t, "X Article.epub", xkindle.DeriveAttachmentFilename(""))
	})

	t.Run("truncates to 110 characters plus extension", func(t *testing.T) {
		t.Parallel()

		got := xkindle.DeriveAttachmentFilename(strings.Repeat("x", 300))

		base := strings.TrimSuffix(got, xkindle.AttachmentExtension)
		assert.Equal(t, 110, utf8.RuneCountInString(base))
		assert.True(t, strings.HasSuffix(base, xkindle.Ellipsis))
	})
}

func TestTextPreview(t *testing.T) {
	t.Parallel()

	t.Run("returns short text with a marker", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Hello...", xkindle.TextPreview("Hello"))
	})

	t.Run("limits long text to 100 characters", func(t *testing.T) {
		t.Parallel()

		got := xkindle.TextPreview(strings.Repeat("y", 500))
		assert.Equal(t, strings.Repeat("y", 100)+"...", got)
	})
}

package xkindle

import "strings"

// Ellipsis marks truncated titles and filenames.
const Ellipsis = "…"

// AttachmentExtension is the document extension appended to every derived
// attachment filename.
const AttachmentExtension = ".epub"

const (
	maxExtractedTitleLen = 120
	maxTextTitleLen      = 80
	maxFilenameLen       = 110
	previewLen           = 100
)

// DeriveTitle picks a document title with the following precedence: the
// extracted title when it is meaningful (longer than 2 characters after
// whitespace normalization), else the first non-blank line of the text,
// else a synthesized "X Article by {author}". Extracted titles are
// truncated to 120 characters, text fallbacks to 80.
func DeriveTitle(text, author, extractedTitle string) string {
	if t := normalizeSpace(extractedTitle); len([]rune(t)) > 2 {
		return truncate(t, maxExtractedTitleLen)
	}

	for _, line := range strings.Split(text, "\n") {
		if t := normalizeSpace(line); t != "" {
			return truncate(t, maxTextTitleLen)
		}
	}

	return "X Article by " + author
}

// DeriveAttachmentFilename turns a title into a filesystem-safe attachment
// name: filesystem-hostile characters stripped, whitespace collapsed,
// truncated to 110 characters, document extension appended.
func DeriveAttachmentFilename(title string) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case '\\', '/', ':', '*', '?', '"', '<', '>', '|':
			return -1
		}
		return r
	}, title)

	name = normalizeSpace(name)
	if name == "" {
		name = "X Article"
	}

	return truncate(name, maxFilenameLen) + AttachmentExtension
}

// TextPreview returns the first 100 characters of the text followed by a
// "..." marker, for API responses and log lines.
func TextPreview(text string) string {
	r := []rune(text)
	if len(r) > previewLen {
		r = r[:previewLen]
	}
	return string(r) + "..."
}

// normalizeSpace collapses internal whitespace runs to single spaces and
// trims both ends.
func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// truncate limits s to max runes. Truncated values end with the ellipsis
// marker and still fit within max.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + Ellipsis
}

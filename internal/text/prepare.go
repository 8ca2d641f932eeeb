// Package text turns raw input into the text the paginator expects.
package text

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Options controls how raw input is prepared.
type Options struct {
	// MergeLines joins lines separated by a single line break, so only blank
	// lines separate paragraphs. Hard-wrapped text reflows this way.
	MergeLines bool
}

// Prepare normalises line endings to "\n" and the text to NFC, optionally
// merges single line breaks, and makes sure non-empty text ends in a newline.
func Prepare(raw string, opts Options) string {
	if raw == "" {
		return ""
	}
	s := strings.ReplaceAll(raw, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = norm.NFC.String(s)
	if opts.MergeLines {
		s = mergeLines(s)
	}
	if !strings.HasSuffix(s, "\n") {
		s = strings.TrimRight(s, " \t") + "\n"
	}
	return s
}

// mergeLines replaces every newline that has no newline on either side with a
// space.
func mergeLines(s string) string {
	b := []byte(s)
	for i := range b {
		if b[i] != '\n' {
			continue
		}
		if i > 0 && s[i-1] == '\n' {
			continue
		}
		if i+1 < len(s) && s[i+1] == '\n' {
			continue
		}
		b[i] = ' '
	}
	return string(b)
}

package text

import (
	"errors"
	"strings"
	"unicode"
)

// ErrEmptyText is returned when replacing or appending text that holds
// nothing but whitespace.
var ErrEmptyText = errors.New("text: empty text")

// Buffer holds the raw text being read and hands out its prepared form.
type Buffer struct {
	raw  string
	opts Options
}

// NewBuffer returns a buffer holding raw.
func NewBuffer(raw string, opts Options) *Buffer {
	return &Buffer{raw: raw, opts: opts}
}

// Text returns the prepared text.
func (b *Buffer) Text() string {
	return Prepare(b.raw, b.opts)
}

// Replace swaps the whole buffer for s.
func (b *Buffer) Replace(s string) error {
	s = trim(s)
	if s == "" {
		return ErrEmptyText
	}
	b.raw = s
	return nil
}

// Append adds s after the current text, as a new paragraph.
func (b *Buffer) Append(s string) error {
	s = trim(s)
	if s == "" {
		return ErrEmptyText
	}
	existing := trim(b.raw)
	if existing == "" {
		b.raw = s
		return nil
	}
	sep := "\n"
	if b.opts.MergeLines {
		sep = "\n\n"
	}
	b.raw = existing + sep + s
	return nil
}

func trim(s string) string {
	s = strings.TrimLeft(s, " \r\n")
	return strings.TrimRightFunc(s, unicode.IsSpace)
}

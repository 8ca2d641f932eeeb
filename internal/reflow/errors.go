package reflow

import "errors"

var (
	// ErrLayoutTooNarrow reports a line width that leaves no room for text
	// once the paragraph indent is taken away.
	ErrLayoutTooNarrow = errors.New("reflow: layout too narrow")
	// ErrLayoutTooShort reports a page height below one line.
	ErrLayoutTooShort = errors.New("reflow: layout too short")
	// ErrWordTooLong reports a word that cannot be hyphenated into the
	// available width without stalling.
	ErrWordTooLong = errors.New("reflow: word too long to hyphenate")
)

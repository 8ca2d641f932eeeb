package reflow

import (
	"fmt"
	"strings"
)

// Cursor marks where a page starts within a token stream.
type Cursor struct {
	// Index is the position of the page's first token.
	Index int
	// Indent is the indent depth of a paragraph split by the previous page
	// break. Zero means the page starts a fresh paragraph.
	Indent int
	// Remainder, when non-empty, stands in for tokens[Index]: the unconsumed
	// tail of a word hyphenated on the previous page's last line.
	Remainder string
}

// Page is one laid-out page.
type Page struct {
	Text  string
	Lines int
	// LineStarts holds, per line, the index of the token the line begins with.
	LineStarts []int
	// Next is where the following page resumes.
	Next Cursor
}

type layoutState int

const (
	stateParagraphStart layoutState = iota
	stateLineAccumulating
	stateLineOverflow
	statePageFull
	stateStreamExhausted
)

type pageBuilder struct {
	tokens   []string
	config   Config
	width    int
	maxLines int

	out        strings.Builder
	lines      int
	lineStarts []int

	index      int
	pending    string
	hasPending bool

	indent    int
	effective int
	prefix    string
	endIndent int

	line      []string
	lineWidth int
	lineStart int
}

// LayoutPage fills one page of at most maxLines lines, each width cells wide,
// with the tokens from start onwards. tokens is only read; a word split by
// hyphenation continues through Page.Next.Remainder.
func (e *Engine) LayoutPage(tokens []string, width int, start Cursor, maxLines int) (Page, error) {
	if maxLines <= 0 {
		return Page{}, fmt.Errorf("%w: %d lines", ErrLayoutTooShort, maxLines)
	}
	if width <= 0 {
		return Page{}, fmt.Errorf("%w: %d columns", ErrLayoutTooNarrow, width)
	}
	if start.Index < 0 || start.Index > len(tokens) {
		return Page{}, fmt.Errorf("reflow: cursor %d outside %d tokens", start.Index, len(tokens))
	}

	b := &pageBuilder{
		tokens:   tokens,
		config:   e.config,
		width:    width,
		maxLines: maxLines,
		index:    start.Index,
	}
	if start.Remainder != "" {
		b.override(start.Remainder)
	}

	state := stateParagraphStart
	if start.Indent > 0 {
		if err := b.setIndent(start.Indent); err != nil {
			return Page{}, err
		}
		state = stateLineAccumulating
	}

	for {
		var err error
		switch state {
		case stateParagraphStart:
			state, err = b.startParagraph()
		case stateLineAccumulating:
			state = b.accumulate()
		case stateLineOverflow:
			state, err = b.overflow()
		case statePageFull:
			next := Cursor{Index: b.index, Indent: b.endIndent}
			if b.hasPending {
				next.Remainder = b.pending
			}
			return b.page(next), nil
		case stateStreamExhausted:
			b.flushPartial()
			return b.page(Cursor{Index: len(b.tokens)}), nil
		}
		if err != nil {
			return Page{}, err
		}
	}
}

// current returns the word under the cursor, stepping over empty tokens.
func (b *pageBuilder) current() (string, bool) {
	for b.index < len(b.tokens) {
		if b.hasPending {
			return b.pending, true
		}
		if token := b.tokens[b.index]; token != "" {
			return token, true
		}
		b.index++
	}
	return "", false
}

func (b *pageBuilder) advance() {
	b.index++
	b.pending = ""
	b.hasPending = false
}

func (b *pageBuilder) override(word string) {
	b.pending = word
	b.hasPending = true
}

func (b *pageBuilder) setIndent(indent int) error {
	effective := b.width - indent
	if effective <= 0 {
		return fmt.Errorf("%w: indent %d leaves %d of %d columns", ErrLayoutTooNarrow, indent, effective, b.width)
	}
	b.indent = indent
	b.effective = effective
	b.prefix = strings.Repeat(" ", indent)
	return nil
}

func (b *pageBuilder) startParagraph() (layoutState, error) {
	token, ok := b.current()
	if !ok {
		return stateStreamExhausted, nil
	}
	word, indent := b.config.resolveIndent(token)
	if err := b.setIndent(indent); err != nil {
		return 0, err
	}
	b.override(word)
	return stateLineAccumulating, nil
}

func (b *pageBuilder) accumulate() layoutState {
	word, ok := b.current()
	if !ok {
		return stateStreamExhausted
	}
	w := cellWidth(word)
	if b.lineWidth+w+1 > b.effective {
		return stateLineOverflow
	}
	b.append(word, w)
	b.advance()
	if !endsParagraph(word) {
		return stateLineAccumulating
	}
	b.closeLine()
	if b.lines >= b.maxLines {
		b.endIndent = 0
		return statePageFull
	}
	return stateParagraphStart
}

// overflow closes the current line because the word under the cursor does not
// fit. The closing line always belongs to this page; when it was the last line
// allowed, the word is retried on the next page.
func (b *pageBuilder) overflow() (layoutState, error) {
	word, _ := b.current()
	full := b.lines+1 >= b.maxLines
	switch {
	case len(b.line) == 0:
		// An empty line is never closed: the word must be split to make progress.
		if !b.hyphenate(word) {
			return 0, fmt.Errorf("%w: %q in %d columns", ErrWordTooLong, word, b.effective)
		}
	case !full && b.lineWidth < b.config.MinWidth:
		// A sparse line takes what fits of the word; when nothing does, the
		// word moves to the next line whole.
		b.hyphenate(word)
	}
	b.closeLine()
	if full {
		b.endIndent = b.indent
		return statePageFull, nil
	}
	return stateLineAccumulating, nil
}

// hyphenate moves as much of word as fits, plus a hyphen, onto the current
// line and leaves the rest pending as the next word. It reports false, leaving
// the line untouched, when not even one cluster fits.
func (b *pageBuilder) hyphenate(word string) bool {
	head, tail := splitAtCell(word, b.effective-2-b.lineWidth)
	if head == "" {
		return false
	}
	b.append(head+"-", cellWidth(head)+1)
	b.override(tail)
	return true
}

func (b *pageBuilder) append(word string, width int) {
	if len(b.line) == 0 {
		b.lineStart = b.index
	}
	b.line = append(b.line, word)
	b.lineWidth += width + 1
}

func (b *pageBuilder) closeLine() {
	b.out.WriteString(b.prefix)
	b.out.WriteString(justifyLine(b.line, b.lineWidth-len(b.line), b.effective))
	b.endLine()
}

// flushPartial writes a line cut short by the end of the stream, unjustified.
func (b *pageBuilder) flushPartial() {
	if len(b.line) == 0 {
		return
	}
	b.out.WriteString(b.prefix)
	b.out.WriteString(strings.Join(b.line, " "))
	if !endsParagraph(b.line[len(b.line)-1]) {
		b.out.WriteByte('\n')
	}
	b.endLine()
}

func (b *pageBuilder) endLine() {
	b.lineStarts = append(b.lineStarts, b.lineStart)
	b.lines++
	b.line = b.line[:0]
	b.lineWidth = 0
}

func (b *pageBuilder) page(next Cursor) Page {
	return Page{
		Text:       b.out.String(),
		Lines:      b.lines,
		LineStarts: b.lineStarts,
		Next:       next,
	}
}

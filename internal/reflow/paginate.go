package reflow

import (
	"fmt"
	"math"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Layout is a text laid out for one page geometry.
type Layout struct {
	Width  int
	Height int
	Pages  []string
	// Index[i] is the number of words consumed through the end of page i,
	// which is also the word offset the following page starts at.
	Index []int
	// LineStarts[i][j] is the word offset of the first word on line j of page i.
	LineStarts [][]int
	// Words is the number of tokens in the text.
	Words int
}

// Paginate lays text out as pages of at most height lines, each width cells
// wide. A missing trailing newline is supplied. Either a complete layout or
// an error is returned, never a partial layout.
func (e *Engine) Paginate(text string, width, height int) (Layout, error) {
	if width <= 0 {
		return Layout{}, fmt.Errorf("%w: %d columns", ErrLayoutTooNarrow, width)
	}
	if height <= 0 {
		return Layout{}, fmt.Errorf("%w: %d lines", ErrLayoutTooShort, height)
	}
	layout := Layout{Width: width, Height: height}
	if text == "" {
		return layout, nil
	}
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}

	started := time.Now()
	tokens := Tokenize(text)
	layout.Words = len(tokens)
	var cursor Cursor
	for cursor.Index < len(tokens) {
		page, err := e.LayoutPage(tokens, width, cursor, height)
		if err != nil {
			return Layout{}, fmt.Errorf("page %d: %w", len(layout.Pages)+1, err)
		}
		if page.Lines == 0 {
			break
		}
		layout.Pages = append(layout.Pages, page.Text)
		layout.Index = append(layout.Index, page.Next.Index)
		layout.LineStarts = append(layout.LineStarts, page.LineStarts)
		cursor = page.Next
	}

	e.logger.Debug("paginated",
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Int("words", layout.Words),
		zap.Int("pages", len(layout.Pages)),
		zap.Duration("elapsed", time.Since(started)),
	)
	return layout, nil
}

// Justify lays text out as a single page of unbounded height.
func (e *Engine) Justify(text string, width int) (string, error) {
	if text == "" {
		return "", nil
	}
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	page, err := e.LayoutPage(Tokenize(text), width, Cursor{}, math.MaxInt)
	if err != nil {
		return "", err
	}
	return page.Text, nil
}

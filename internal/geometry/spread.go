// Package geometry carves a terminal window into side-by-side pages.
package geometry

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// Margin is the number of blank columns around and between pages.
	Margin = 3
	// TopRows is the number of rows above the pages.
	TopRows = 1
	// BottomRows is the number of rows below the pages, holding page numbers
	// and the status line.
	BottomRows = 2

	minPageWidth  = 8
	minPageHeight = 2
)

var (
	// ErrNoColumns reports a spread asked to show fewer than one page.
	ErrNoColumns = errors.New("geometry: at least one column is required")
	// ErrWindowTooSmall reports pages too small to hold a line of text.
	ErrWindowTooSmall = errors.New("geometry: window too small")
)

// Spread is a window split into Columns pages shown next to each other.
type Spread struct {
	WindowWidth  int
	WindowHeight int
	Columns      int
	PageWidth    int
	PageHeight   int
}

// NewSpread lays columns pages out in a window of the given size.
func NewSpread(windowWidth, windowHeight, columns int) (Spread, error) {
	if columns < 1 {
		return Spread{}, fmt.Errorf("%w: got %d", ErrNoColumns, columns)
	}
	s := Spread{Columns: columns}
	if err := s.Update(windowWidth, windowHeight); err != nil {
		return Spread{}, err
	}
	return s, nil
}

// Update recomputes the page size after the window was resized. The spread
// keeps the new size even when it is too small, so a later resize can recover.
func (s *Spread) Update(width, height int) error {
	if s.Columns < 1 {
		return fmt.Errorf("%w: got %d", ErrNoColumns, s.Columns)
	}
	s.WindowWidth = width
	s.WindowHeight = height
	s.PageWidth = (width - Margin*(s.Columns+1)) / s.Columns
	s.PageHeight = height - TopRows - BottomRows
	if !s.Fits() {
		return fmt.Errorf("%w: %dx%d for %d columns", ErrWindowTooSmall, width, height, s.Columns)
	}
	return nil
}

// Fits reports whether the pages are large enough to hold text.
func (s Spread) Fits() bool {
	return s.PageWidth >= minPageWidth && s.PageHeight >= minPageHeight
}

// TextWidth is the number of columns text may use on a page. The last column
// stays free so a full line never wraps the terminal cursor.
func (s Spread) TextWidth() int {
	return s.PageWidth - 1
}

// TextHeight is the number of text lines on a page.
func (s Spread) TextHeight() int {
	return s.PageHeight - 1
}

// Align returns the first page of the spread showing page.
func (s Spread) Align(page int) int {
	return Align(page, s.Columns)
}

// Align rounds page down to a multiple of columns.
func Align(page, columns int) int {
	if columns < 1 || page < 0 {
		return 0
	}
	return page / columns * columns
}

// Progress is the reading progress in [0, 1] with page as the first page of
// the spread on screen.
func Progress(page, pages, columns int) float64 {
	if columns < 1 {
		columns = 1
	}
	total := pages - pages%columns
	if total <= 0 {
		return 0
	}
	p := float64(page) / float64(total)
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}

// ProgressBar draws progress as a bar of '#' and '-' followed by the
// percentage, width cells wide in total.
func ProgressBar(progress float64, width int) string {
	label := fmt.Sprintf("%.1f%%", progress*100)
	room := width - 1 - len(label)
	if room <= 0 {
		return label
	}
	done := int(progress * float64(room))
	return strings.Repeat("#", done) + strings.Repeat("-", room-done) + label
}

package reflow

import "sort"

// Locate returns the page holding the word at offset word: the first page
// whose index entry is greater than word. Offsets past the end map to the last
// page and an empty index maps to page 0.
func Locate(word int, index []int) int {
	if len(index) == 0 {
		return 0
	}
	page := sort.Search(len(index), func(i int) bool { return index[i] > word })
	if page == len(index) {
		return len(index) - 1
	}
	return page
}

// Locate returns the page holding the word at offset word.
func (l Layout) Locate(word int) int {
	return Locate(word, l.Index)
}

// PageStart returns the word offset the page begins with. It is the value to
// remember as a reading position while that page is shown.
func (l Layout) PageStart(page int) int {
	if page <= 0 || len(l.Index) == 0 {
		return 0
	}
	if page > len(l.Index) {
		page = len(l.Index)
	}
	return l.Index[page-1]
}

// WordAt returns the word offset of the first word on a line of a page. Lines
// past the end of the page clamp to its last line.
func (l Layout) WordAt(page, line int) int {
	if page < 0 || page >= len(l.LineStarts) || len(l.LineStarts[page]) == 0 {
		return l.PageStart(page)
	}
	starts := l.LineStarts[page]
	switch {
	case line < 0:
		line = 0
	case line >= len(starts):
		line = len(starts) - 1
	}
	return starts[line]
}

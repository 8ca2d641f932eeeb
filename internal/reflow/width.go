package reflow

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// cellWidth returns the number of terminal columns s occupies. Every grapheme
// cluster takes at least one column, so the newline that ends a paragraph is
// counted like any other character.
func cellWidth(s string) int {
	if s == "" {
		return 0
	}
	width := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		width += clusterWidth(g.Str())
	}
	return width
}

func clusterWidth(cluster string) int {
	if w := runewidth.StringWidth(cluster); w > 0 {
		return w
	}
	return 1
}

// splitAtCell cuts s so that head spans at most cells columns without
// breaking a grapheme cluster. head is empty when not even the first cluster
// fits.
func splitAtCell(s string, cells int) (head, tail string) {
	if cells <= 0 {
		return "", s
	}
	used := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		w := clusterWidth(g.Str())
		if used+w > cells {
			from, _ := g.Positions()
			return s[:from], s[from:]
		}
		used += w
	}
	return s, ""
}

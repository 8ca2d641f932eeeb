package main

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/padding"

	"github.com/csheth/justread/internal/geometry"
)

var pageStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	Padding(0, 1)

var pageNumberStyle = lipgloss.NewStyle().Faint(true)

// renderPlain prints pages as laid out, one blank line apart.
func renderPlain(pages []string) string {
	return strings.Join(pages, "\n")
}

// renderFramed draws each page in a border with its page number underneath
// and sets the pages next to each other.
func renderFramed(pages []string, first, width, height int) string {
	gap := strings.Repeat(" ", geometry.Margin)
	var columns []string
	for i, page := range pages {
		if i > 0 {
			columns = append(columns, gap)
		}
		box := pageStyle.Render(fillPage(page, width, height))
		number := lipgloss.PlaceHorizontal(lipgloss.Width(box), lipgloss.Center,
			pageNumberStyle.Render(strconv.Itoa(first+i+1)))
		columns = append(columns, lipgloss.JoinVertical(lipgloss.Left, box, number))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, columns...) + "\n"
}

// fillPage pads a page to exactly height lines of width cells so that short
// pages keep the frame size.
func fillPage(page string, width, height int) string {
	lines := strings.Split(strings.TrimSuffix(page, "\n"), "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i, line := range lines {
		lines[i] = padding.String(line, uint(width))
	}
	return strings.Join(lines, "\n")
}

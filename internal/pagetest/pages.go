// Package pagetest reads laid-out pages and printed output back into forms
// that are easy to assert on.
package pagetest

import (
	"regexp"
	"strings"
)

var (
	csiPattern = regexp.MustCompile(`\x1b\[[0-9;?]*[A-Za-z]`)
	oscPattern = regexp.MustCompile(`\x1b\][^\x07]*(\x07|\x1b\\)`)
)

// Lines returns the lines of all pages in reading order, without their
// terminating newlines.
func Lines(pages []string) []string {
	var lines []string
	for _, page := range pages {
		if page == "" {
			continue
		}
		split := strings.Split(page, "\n")
		if strings.HasSuffix(page, "\n") {
			split = split[:len(split)-1]
		}
		lines = append(lines, split...)
	}
	return lines
}

// Words recovers the word sequence from pages. Justification spaces and
// indentation are dropped. lineStarts holds, per page and line, the index of
// the token the line begins with; a line whose successor starts on its own
// last token ends in a hyphenated fragment, which is joined to the first word
// of that next line.
func Words(pages []string, lineStarts [][]int) []string {
	var words []string
	carry := ""
	for p, page := range pages {
		for l, line := range Lines([]string{page}) {
			fields := strings.Fields(line)
			if len(fields) == 0 {
				continue
			}
			if carry != "" {
				fields[0] = carry + fields[0]
				carry = ""
			}
			last := fields[len(fields)-1]
			if splitAfter(lineStarts, p, l, len(fields)) && strings.HasSuffix(last, "-") {
				carry = strings.TrimSuffix(last, "-")
				fields = fields[:len(fields)-1]
			}
			words = append(words, fields...)
		}
	}
	return words
}

// splitAfter reports whether the line after line l of page p begins with the
// token that ends line l.
func splitAfter(lineStarts [][]int, p, l, fields int) bool {
	if p >= len(lineStarts) || l >= len(lineStarts[p]) {
		return false
	}
	var next int
	switch {
	case l+1 < len(lineStarts[p]):
		next = lineStarts[p][l+1]
	case p+1 < len(lineStarts) && len(lineStarts[p+1]) > 0:
		next = lineStarts[p+1][0]
	default:
		return false
	}
	return next == lineStarts[p][l]+fields-1
}

// Plain strips terminal escape sequences and trailing blanks from printed
// output, dropping blank lines at the end.
func Plain(s string) string {
	s = oscPattern.ReplaceAllString(s, "")
	s = csiPattern.ReplaceAllString(s, "")
	lines := strings.Split(strings.ReplaceAll(s, "\r", ""), "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}

package reflow

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// resolveIndent measures the leading whitespace on the first token of a
// paragraph. It returns the token without that whitespace and the indent depth
// in output columns: IndentOut per started group of IndentIn input spaces.
// A token holding nothing but whitespace is kept as is, with no indent.
func (c Config) resolveIndent(token string) (string, int) {
	start := strings.IndexFunc(token, func(r rune) bool { return !unicode.IsSpace(r) })
	if start < 0 {
		return token, 0
	}
	leading := utf8.RuneCountInString(token[:start])
	levels := (leading + c.IndentIn - 1) / c.IndentIn
	return token[start:], c.IndentOut * levels
}

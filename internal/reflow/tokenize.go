package reflow

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Tokenize splits text into word tokens. A run of spaces or tabs that follows
// a non-whitespace rune separates two tokens and is dropped, and every newline
// ends the token it follows, so the last word of a paragraph carries the
// paragraph's "\n". Leading whitespace stays on a paragraph's first token for
// the indent resolver to measure. No empty token is emitted after the final
// newline.
func Tokenize(text string) []string {
	var tokens []string
	start := 0
	afterWord := false
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		switch {
		case r == '\n':
			i += size
			tokens = append(tokens, text[start:i])
			start = i
			afterWord = false
		case isBlank(r) && afterWord:
			tokens = append(tokens, text[start:i])
			for i < len(text) && isBlank(rune(text[i])) {
				i++
			}
			start = i
			afterWord = false
		default:
			afterWord = !unicode.IsSpace(r)
			i += size
		}
	}
	if start < len(text) {
		tokens = append(tokens, text[start:])
	}
	return tokens
}

func isBlank(r rune) bool {
	return r == ' ' || r == '\t'
}

func endsParagraph(token string) bool {
	return strings.HasSuffix(token, "\n")
}

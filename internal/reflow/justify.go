package reflow

import "strings"

// justifyLine renders one line of words padded to lineWidth cells. wordsWidth
// is the summed width of the words alone. Slack is spread over the gaps with
// the remainder going to the leftmost gaps first. The last line of a paragraph
// (its last word ends in a newline) is set with single spaces instead.
func justifyLine(words []string, wordsWidth, lineWidth int) string {
	if len(words) == 0 {
		return ""
	}
	last := words[len(words)-1]
	if endsParagraph(last) {
		return strings.Join(words, " ")
	}

	var b strings.Builder
	gaps := len(words) - 1
	if gaps > 0 {
		slack := lineWidth - wordsWidth
		if slack < 0 {
			slack = 0
		}
		base, extra := slack/gaps, slack%gaps
		for i, word := range words[:gaps] {
			b.WriteString(word)
			b.WriteString(strings.Repeat(" ", base))
			if i < extra {
				b.WriteByte(' ')
			}
		}
	}
	b.WriteString(last)
	b.WriteByte('\n')
	return b.String()
}

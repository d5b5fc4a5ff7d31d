package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// wrapWord splits a word that is wider than width into width-sized chunks.
func wrapWord(word string, width int) []string {
	var out []string
	var b strings.Builder
	cur := 0
	for _, r := range word {
		w := runewidth.RuneWidth(r)
		if cur+w > width && b.Len() > 0 {
			out = append(out, b.String())
			b.Reset()
			cur = 0
		}
		b.WriteRune(r)
		cur += w
	}
	if b.Len() > 0 {
		out = append(out, b.String())
	}
	return out
}

// wrapText wraps text to width cells, keeping words whole where they fit and
// preserving existing line breaks. width <= 0 disables wrapping.
func wrapText(text string, width int) string {
	if width <= 0 {
		return text
	}
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		line := ""
		for _, word := range strings.Fields(para) {
			ww := runewidth.StringWidth(word)
			switch {
			case line == "" && ww <= width:
				line = word
			case line == "":
				chunks := wrapWord(word, width)
				lines = append(lines, chunks[:len(chunks)-1]...)
				line = chunks[len(chunks)-1]
			case runewidth.StringWidth(line)+1+ww <= width:
				line += " " + word
			default:
				lines = append(lines, line)
				if ww <= width {
					line = word
				} else {
					chunks := wrapWord(word, width)
					lines = append(lines, chunks[:len(chunks)-1]...)
					line = chunks[len(chunks)-1]
				}
			}
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

package keysheet

import (
	"strings"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
)

const minWrapWidth = 10

func truncateWithEllipsis(text string, limit int) string {
	if ansi.PrintableRuneWidth(text) <= limit {
		return text
	}
	if limit <= 0 {
		return ""
	}
	if limit == 1 {
		return "…"
	}
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit-1]) + "…"
}

// hangingWrap wraps text to fit after a prefix of prefixWidth cells and
// indents continuation lines to line up under the first one.
func hangingWrap(text string, prefixWidth, width int) string {
	avail := width - prefixWidth
	if avail < minWrapWidth {
		avail = minWrapWidth
	}
	wrapped := wordwrap.String(text, avail)
	first, rest, found := strings.Cut(wrapped, "\n")
	if !found {
		return first
	}
	return first + "\n" + indent.String(rest, uint(prefixWidth))
}

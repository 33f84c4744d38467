package views

import (
	"strings"
	"unicode/utf8"
)

// sanitizeForTerminal strips the emoji joiners and modifiers that tcell
// measures wrongly, so names like "Anna 👍🏻" keep their column widths.
func sanitizeForTerminal(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !isWidthBreaker(r) {
			b.WriteRune(r)
		}
		i += size
	}
	return b.String()
}

func isWidthBreaker(r rune) bool {
	switch {
	case r >= 0x1F3FB && r <= 0x1F3FF: // skin tones
		return true
	case r == 0x200D: // zero width joiner
		return true
	case r >= 0xFE00 && r <= 0xFE0F, r >= 0xE0100 && r <= 0xE01EF: // variation selectors
		return true
	default:
		return false
	}
}

// sanitizeLine prepares text for a single table cell or header: line breaks
// and tabs become spaces. Message previews often contain newlines.
func sanitizeLine(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '\n', '\r', '\t':
			return ' '
		}
		return r
	}, sanitizeForTerminal(s))
}

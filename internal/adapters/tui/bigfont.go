package tui

import (
	"strings"
)

// glyphMap holds the 5-line block glyphs of the crash screen's sad face.
var glyphMap = map[rune][5]string{
	':': {
		" ",
		"█",
		" ",
		"█",
		" ",
	},
	'(': {
		"  █",
		" █ ",
		" █ ",
		" █ ",
		"  █",
	},
}

// logoArt is the emblem drawn above the alternate update bar.
var logoArt = []string{
	"    ▄█",
	"  ▄██▀▄▄",
	" ████████",
	" ███████▀",
	" ████████▄",
	"  ▀█████▀",
}

// renderBig returns text as 5-line block art. Characters without a glyph are
// skipped. Narrow terminals (under 20 columns) get the text unchanged.
func renderBig(text string, width int) string {
	if width < 20 {
		return text
	}

	lines := [5]string{}
	for _, ch := range text {
		glyph, ok := glyphMap[ch]
		if !ok {
			continue
		}
		for i := 0; i < 5; i++ {
			if lines[i] != "" {
				lines[i] += " "
			}
			lines[i] += glyph[i]
		}
	}
	return strings.Join(lines[:], "\n")
}

package overlay

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

var face font.Face = basicfont.Face7x13

const (
	glyphWidth = 7 // Face7x13 is fixed width
	lineHeight = 15
)

func drawText(dst *ebiten.Image, s string, x, y int, clr color.Color) {
	// y is the top of the line; text.Draw wants the baseline.
	text.Draw(dst, s, face, x, y+11, clr)
}

func textWidth(s string) int {
	return glyphWidth * len(s)
}

// wrapText breaks s into lines of at most maxChars characters at word
// boundaries. Words longer than maxChars get a line of their own.
func wrapText(s string, maxChars int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		if len(line)+1+len(word) <= maxChars {
			line += " " + word
		} else {
			lines = append(lines, line)
			line = word
		}
	}
	return append(lines, line)
}

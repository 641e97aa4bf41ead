package cli

import (
	"strings"
	"unicode"
)

const (
	boxTopLeft     = "╒"
	boxBottomLeft  = "└"
	boxTopRight    = "╕"
	boxBottomRight = "┘"
	boxSide        = "│"
	boxTop         = "═"
	boxBottom      = "─"
	ellipsis       = "…"
)

// Alignment of text inside a Banner.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

const (
	bannerPadding   = 2
	truncateReserve = 1
	halfDivisor     = 2

	// DefaultWidth is the banner width used when the caller has no better idea.
	DefaultWidth = 80
)

// Banner draws a box width columns wide around s, one row per line of s.
// Lines too long for the box are truncated with an ellipsis. It returns ""
// for empty input, a width too small for the border, or an unknown alignment.
func Banner(s string, width int, alignment Alignment) string {
	if s == "" || width <= bannerPadding {
		return ""
	}

	inner := width - bannerPadding

	var pad func(string, int) string

	switch alignment {
	case AlignLeft:
		pad = padLeft
	case AlignCenter:
		pad = padCenter
	case AlignRight:
		pad = padRight
	default:
		return ""
	}

	parts := []string{boxTopLeft + strings.Repeat(boxTop, inner) + boxTopRight}

	for _, line := range strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n") {
		parts = append(parts, boxSide+pad(line, inner)+boxSide)
	}

	parts = append(parts, boxBottomLeft+strings.Repeat(boxBottom, inner)+boxBottomRight)

	return strings.Join(parts, "\n") + "\n"
}

func countGraphic(s string) int {
	count := 0

	for _, r := range s {
		if unicode.IsGraphic(r) {
			count++
		}
	}

	return count
}

// fit truncates text to width graphic runes, marking the cut with an
// ellipsis, and returns it with its graphic length.
func fit(text string, width int) (string, int) {
	length := countGraphic(text)
	if length <= width {
		return text, length
	}

	var out strings.Builder

	count := 0

	for _, r := range text {
		if unicode.IsGraphic(r) {
			if count == width-truncateReserve {
				break
			}

			count++
		}

		out.WriteRune(r)
	}

	return out.String() + ellipsis, count + truncateReserve
}

func padCenter(text string, width int) string {
	str, length := fit(text, width)
	diff := width - length
	leftPad := diff / halfDivisor

	return strings.Repeat(" ", leftPad) + str + strings.Repeat(" ", diff-leftPad)
}

func padLeft(text string, width int) string {
	str, length := fit(text, width)

	return str + strings.Repeat(" ", width-length)
}

func padRight(text string, width int) string {
	str, length := fit(text, width)

	return strings.Repeat(" ", width-length) + str
}

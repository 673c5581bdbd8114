package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Palette holds a Lip Gloss style for each color a game is configured to
// draw with. Any other color, including core.ColorDefault, renders as plain
// text.
type Palette struct {
	styles map[core.Color]lipgloss.Style
}

// NewPalette builds styles for the given colors. Duplicates are fine.
func NewPalette(colors ...core.Color) Palette {
	p := Palette{styles: make(map[core.Color]lipgloss.Style, len(colors))}
	for _, c := range colors {
		if c == core.ColorDefault {
			continue
		}
		p.styles[c] = lipgloss.NewStyle().Foreground(terminalColor(c))
	}
	return p
}

// terminalColor maps a core color onto the ANSI 256 palette. The named
// colors follow the standard order 1-7 then 9-15; index 8 (bright black)
// has no core color.
func terminalColor(c core.Color) lipgloss.Color {
	switch {
	case c == core.ColorOrange:
		return lipgloss.Color("208")
	case c == core.ColorGray:
		return lipgloss.Color("245")
	case c >= core.ColorBrightRed:
		return lipgloss.Color(strconv.Itoa(int(c) + 1))
	default:
		return lipgloss.Color(strconv.Itoa(int(c)))
	}
}

// styled resolves c to the color that decides its run. Unstyled colors
// collapse to core.ColorDefault so they merge into one plain run.
func (p Palette) styled(c core.Color) core.Color {
	if _, ok := p.styles[c]; ok {
		return c
	}
	return core.ColorDefault
}

// Render converts a Screen to a string for display. Adjacent cells that
// share a style are written as one run, and plain runs carry no escape codes.
func (p Palette) Render(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		current := core.ColorDefault
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if c := p.styled(cell.Color); c != current {
				p.flush(&sb, &run, current)
				current = c
			}
			run.WriteRune(cell.Rune)
		}
		p.flush(&sb, &run, current)
	}
	return sb.String()
}

// flush writes the pending run in color c and empties it.
func (p Palette) flush(sb, run *strings.Builder, c core.Color) {
	if run.Len() == 0 {
		return
	}
	if style, ok := p.styles[c]; ok {
		sb.WriteString(style.Render(run.String()))
	} else {
		sb.WriteString(run.String())
	}
	run.Reset()
}

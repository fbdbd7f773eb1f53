package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// ansiCodes is the terminal color for each core.Color, indexed by value.
// Brown (ground) and gray (floating platforms, castle walls) need the
// 256-color table; the rest are the basic sixteen.
var ansiCodes = [...]string{
	core.ColorDefault:      "",
	core.ColorRed:          "1",   // enemies, castle flag
	core.ColorGreen:        "2",   // grass line
	core.ColorYellow:       "3",
	core.ColorBlue:         "4",
	core.ColorMagenta:      "5",
	core.ColorCyan:         "6",   // player feet
	core.ColorWhite:        "7",   // player head, castle door
	core.ColorBrightRed:    "9",   // enemy eyes, loss banner
	core.ColorBrightGreen:  "10",  // open castle, win banner
	core.ColorBrightYellow: "11",  // coins, HUD
	core.ColorBrightCyan:   "14",  // player body, pause banner
	core.ColorOrange:       "208", // hazard platforms
	core.ColorBrown:        "130",
	core.ColorGray:         "245",
}

// cellStyles holds one prebuilt style per palette entry.
var cellStyles = buildCellStyles()

func buildCellStyles() []lipgloss.Style {
	styles := make([]lipgloss.Style, len(ansiCodes))
	for i, code := range ansiCodes {
		styles[i] = lipgloss.NewStyle()
		if code != "" {
			styles[i] = styles[i].Foreground(lipgloss.Color(code))
		}
	}
	return styles
}

// styleFor returns the style for c. Unknown colors draw unstyled.
func styleFor(c core.Color) lipgloss.Style {
	if int(c) >= len(cellStyles) {
		return cellStyles[core.ColorDefault]
	}
	return cellStyles[c]
}

// colorRun is a horizontal stretch of cells sharing one color.
type colorRun struct {
	color core.Color
	text  string
}

// rowRuns splits row y into runs of equal color, left to right.
func rowRuns(s *core.Screen, y int) []colorRun {
	var runs []colorRun
	var text strings.Builder
	current := core.ColorDefault

	for x, w := 0, s.Width(); x < w; x++ {
		cell := s.GetCell(x, y)
		if x > 0 && cell.Color != current {
			runs = append(runs, colorRun{color: current, text: text.String()})
			text.Reset()
		}
		current = cell.Color
		text.WriteRune(cell.Rune)
	}
	if text.Len() > 0 {
		runs = append(runs, colorRun{color: current, text: text.String()})
	}
	return runs
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Each color run is styled once, so a frame costs one escape sequence per
// run rather than per cell.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Room for the runes plus escape codes.
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, run := range rowRuns(s, y) {
			sb.WriteString(styleFor(run.color).Render(run.text))
		}
	}
	return sb.String()
}

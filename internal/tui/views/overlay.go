package views

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// OverlayRenderer composites a floating surface on top of main content
type OverlayRenderer struct {
	styles *Styles
}

// NewOverlayRenderer creates a new overlay renderer
func NewOverlayRenderer(styles *Styles) *OverlayRenderer {
	return &OverlayRenderer{
		styles: styles,
	}
}

// ANSI escape sequence regex to strip styles/colors
var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

var dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

// RenderOverlay draws surfaceContent at cell (x, y) over mainContent.
// The base layer is desaturated so the surface stands out.
func (or *OverlayRenderer) RenderOverlay(mainContent, surfaceContent string, x, y, width, height int) string {
	baseLines := strings.Split(mainContent, "\n")
	for len(baseLines) < height {
		baseLines = append(baseLines, "")
	}

	surfLines := strings.Split(surfaceContent, "\n")
	surfWidth := lipgloss.Width(surfaceContent)

	out := make([]string, len(baseLines))
	for i, line := range baseLines {
		plain := []rune(ansiRE.ReplaceAllString(line, ""))

		si := i - y
		if si < 0 || si >= len(surfLines) {
			out[i] = dimStyle.Render(string(plain))
			continue
		}

		// Pad the base line so the splice point exists
		for len(plain) < x+surfWidth {
			plain = append(plain, ' ')
		}

		left := string(plain[:clampIdx(x, len(plain))])
		right := string(plain[clampIdx(x+surfWidth, len(plain)):])

		// Pad the surface line to the block width so the right edge lines up
		surfLine := surfLines[si]
		if pad := surfWidth - lipgloss.Width(surfLine); pad > 0 {
			surfLine += strings.Repeat(" ", pad)
		}

		out[i] = dimStyle.Render(left) + surfLine + dimStyle.Render(right)
	}

	return strings.Join(out, "\n")
}

func clampIdx(i, max int) int {
	if i < 0 {
		return 0
	}
	if i > max {
		return max
	}
	return i
}

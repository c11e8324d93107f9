package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
)

// Terminal palette for the two themes
var themeColors = map[string]lipgloss.Color{
	"secondary": lipgloss.Color("236"),
	"white":     lipgloss.Color("255"),
}

var themeText = map[string]lipgloss.Color{
	"secondary": lipgloss.Color("252"),
	"white":     lipgloss.Color("235"),
}

const starColor = lipgloss.Color("#FABB05")

// TerminalOptions controls terminal rendering
type TerminalOptions struct {
	Width   int
	NoColor bool
}

// Terminal renders g as styled terminal text. Cards are stacked; the
// block and card backgrounds follow the style variant.
func Terminal(g Grid, opts TerminalOptions) string {
	width := opts.Width
	if width <= 0 {
		width = 80
	}
	cardWidth := max(20, width-6)
	textWidth := cardWidth - 4

	blockStyle := lipgloss.NewStyle().Width(width).Padding(1, 1)
	cardStyle := lipgloss.NewStyle().
		Width(cardWidth).
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		Align(lipgloss.Center)
	headingStyle := lipgloss.NewStyle().Bold(true).Width(width - 2).Align(lipgloss.Center)
	authorStyle := lipgloss.NewStyle().Bold(true)
	starStyle := lipgloss.NewStyle().Foreground(starColor)
	dimStyle := lipgloss.NewStyle().Faint(true)

	if !opts.NoColor {
		blockStyle = blockStyle.Background(themeColors[g.Theme.Block]).Foreground(themeText[g.Theme.Block])
		cardStyle = cardStyle.Background(themeColors[g.Theme.Card]).Foreground(themeText[g.Theme.Card])
	}

	parts := []string{headingStyle.Render(g.Heading), ""}
	for _, c := range g.Cards {
		var lines []string
		if c.ShowImageRow() {
			image := truncate.StringWithTail(c.Image, uint(textWidth-c.Stars-3), "…")
			stars := c.StarString()
			if !opts.NoColor {
				stars = starStyle.Render(stars)
			}
			lines = append(lines, "🖼 "+image+"  "+stars, "")
		}
		if c.Quote != "" {
			lines = append(lines, wordwrap.String("“"+c.Quote+"”", textWidth), "")
		}
		lines = append(lines, authorStyle.Render(c.Author))
		for _, s := range []string{c.Title, c.Subtitle} {
			if s != "" {
				lines = append(lines, dimStyle.Render(s))
			}
		}
		parts = append(parts, cardStyle.Render(strings.Join(lines, "\n")))
	}

	return blockStyle.Render(lipgloss.JoinVertical(lipgloss.Center, parts...))
}

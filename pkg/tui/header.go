package tui

import (
	"github.com/charmbracelet/lipgloss"
)

const headerHeight = 3

func renderHeader(width int, title, version string) string {
	logo := "❝ testimonials ❞"
	if version != "" {
		logo += "\n" + lipgloss.NewStyle().Width(lipgloss.Width(logo)).Align(lipgloss.Right).Render(version)
	} else {
		logo += "\n"
	}

	logoStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true)

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true)

	headerPadding := lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1).
		PaddingBottom(1).
		Width(width)

	logoRendered := logoStyle.Render(logo)
	contentWidth := width - 2

	if title == "" {
		return headerPadding.Render(lipgloss.NewStyle().
			Width(contentWidth).
			Align(lipgloss.Right).
			Render(logoRendered))
	}

	// title sits on the version row
	titleRendered := titleStyle.Render("\n" + title)
	gap := max(1, contentWidth-lipgloss.Width(titleRendered)-lipgloss.Width(logoRendered))

	return headerPadding.Render(lipgloss.JoinHorizontal(
		lipgloss.Top,
		titleRendered,
		lipgloss.NewStyle().Width(gap).Render(""),
		logoRendered,
	))
}

package render

import (
	"fmt"
	"strings"
)

// Markdown renders g as a Markdown document
func Markdown(g Grid) string {
	var b strings.Builder

	fmt.Fprintf(&b, "## %s\n", escapeMarkdown(g.Heading))
	for _, c := range g.Cards {
		b.WriteString("\n---\n\n")
		if c.ShowImageRow() {
			fmt.Fprintf(&b, "![%s](%s) %s\n\n", escapeMarkdown(c.ImageAlt), linkDestination(c.Image), c.StarString())
		}
		if c.Quote != "" {
			for _, line := range strings.Split(c.Quote, "\n") {
				fmt.Fprintf(&b, "> %s\n", escapeMarkdown(line))
			}
			b.WriteString("\n")
		}
		if c.Author != "" {
			fmt.Fprintf(&b, "**%s**  \n", escapeMarkdown(c.Author))
		}
		for _, line := range []string{c.Title, c.Subtitle} {
			if line != "" {
				fmt.Fprintf(&b, "%s  \n", escapeMarkdown(line))
			}
		}
	}
	return b.String()
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"[", `\[`,
	"]", `\]`,
)

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}

var destinationEscaper = strings.NewReplacer(
	`\`, `\\`,
	"<", `\<`,
	">", `\>`,
)

// linkDestination wraps url in angle brackets so spaces and parentheses in
// local paths stay part of the link
func linkDestination(url string) string {
	return "<" + destinationEscaper.Replace(url) + ">"
}

// Package render turns a block's attributes into its public-facing grid.
// The grid is derived data: every renderer consumes the same Grid built
// by Build, so the image/rating rules live in one place.
package render

import (
	"fmt"
	"strings"

	"github.com/pluqqy/testimonials/pkg/i18n"
	"github.com/pluqqy/testimonials/pkg/models"
)

// DefaultHeading is shown when the block heading is empty
const DefaultHeading = "What They Say"

// StarGlyph is repeated once per rating point
const StarGlyph = "★"

// Format selects an output renderer
type Format string

const (
	FormatHTML     Format = "html"
	FormatMarkdown Format = "markdown"
	FormatTerminal Format = "terminal"
)

// ParseFormat validates a format name
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatHTML:
		return FormatHTML, nil
	case FormatMarkdown, "md":
		return FormatMarkdown, nil
	case FormatTerminal, "term", "text":
		return FormatTerminal, nil
	}
	return "", fmt.Errorf("invalid format: %s (must be: html, markdown, or terminal)", s)
}

// Theme is the pair of backgrounds chosen by the style variant
type Theme struct {
	Block string
	Card  string
}

var (
	themeDefault = Theme{Block: "secondary", Card: "white"}
	themePlain   = Theme{Block: "white", Card: "secondary"}
)

// ThemeFor maps the style variant to its theme
func ThemeFor(style models.Style) Theme {
	if style == models.StylePlain {
		return themePlain
	}
	return themeDefault
}

// Card is one rendered testimonial
type Card struct {
	Quote    string
	Author   string
	Title    string
	Subtitle string
	Image    string
	ImageAlt string
	// Stars is only populated when the card has an image; ratings are
	// shown alongside the image or not at all.
	Stars int
}

// ShowImageRow reports whether the image and rating row is rendered
func (c Card) ShowImageRow() bool {
	return c.Image != ""
}

// StarString returns the rating as repeated star glyphs
func (c Card) StarString() string {
	return strings.Repeat(StarGlyph, c.Stars)
}

// Grid is the render model for the public view of a block
type Grid struct {
	Heading string
	Style   models.Style
	Theme   Theme
	Cards   []Card
}

// Build derives the grid from attrs, translating labels through tr
func Build(attrs models.Attributes, tr i18n.Translator) Grid {
	if tr == nil {
		tr = i18n.Identity{}
	}
	g := Grid{
		Heading: HeadingOrDefault(attrs.HeadingBlock, tr),
		Style:   attrs.Style,
		Theme:   ThemeFor(attrs.Style),
		Cards:   make([]Card, 0, len(attrs.Testimonials)),
	}
	for _, t := range attrs.Testimonials {
		card := Card{
			Quote:    t.Quote,
			Author:   t.Author,
			Title:    t.Title,
			Subtitle: t.Subtitle,
		}
		if t.HasImage() {
			card.Image = t.Image
			card.ImageAlt = ImageAlt(t, tr)
			card.Stars = models.ClampRating(t.Rating)
		}
		g.Cards = append(g.Cards, card)
	}
	return g
}

// HeadingOrDefault returns heading, or the translated fallback label
func HeadingOrDefault(heading string, tr i18n.Translator) string {
	if heading != "" {
		return heading
	}
	return tr.T(DefaultHeading)
}

// ImageAlt is the alt text for a testimonial's image
func ImageAlt(t models.Testimonial, tr i18n.Translator) string {
	return strings.TrimSpace(tr.T("Testimonial Image") + " " + t.Author)
}

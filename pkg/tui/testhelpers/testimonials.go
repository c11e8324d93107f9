package testhelpers

import (
	"github.com/pluqqy/testimonials/pkg/models"
)

// TestimonialBuilder provides a fluent interface for building test records
type TestimonialBuilder struct {
	record models.Testimonial
}

// NewTestimonialBuilder starts from a complete record by author
func NewTestimonialBuilder(author string) *TestimonialBuilder {
	record := models.NewTestimonial()
	record.Author = author
	record.Quote = "Working with " + author + " was great."
	return &TestimonialBuilder{record: record}
}

func (b *TestimonialBuilder) WithTitle(title string) *TestimonialBuilder {
	b.record.Title = title
	return b
}

func (b *TestimonialBuilder) WithSubtitle(subtitle string) *TestimonialBuilder {
	b.record.Subtitle = subtitle
	return b
}

func (b *TestimonialBuilder) WithQuote(quote string) *TestimonialBuilder {
	b.record.Quote = quote
	return b
}

func (b *TestimonialBuilder) WithRating(rating int) *TestimonialBuilder {
	b.record.Rating = rating
	return b
}

func (b *TestimonialBuilder) WithImage(url string) *TestimonialBuilder {
	b.record.Image = url
	return b
}

func (b *TestimonialBuilder) Build() models.Testimonial {
	return b.record
}

// MakeTestimonials creates one complete record per author
func MakeTestimonials(authors ...string) models.Collection {
	c := make(models.Collection, 0, len(authors))
	for _, a := range authors {
		c = append(c, NewTestimonialBuilder(a).Build())
	}
	return c
}

// MakeAttributes wraps records in an attribute bag with the default style
func MakeAttributes(heading string, records ...models.Testimonial) models.Attributes {
	return models.Attributes{
		HeadingBlock: heading,
		Testimonials: models.Collection(records),
		Style:        models.StyleDefault,
	}
}

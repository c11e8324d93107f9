package models

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Rating bounds for a testimonial
const (
	MinRating     = 1
	MaxRating     = 5
	DefaultRating = 5
)

var (
	ErrUnknownField  = errors.New("unknown testimonial field")
	ErrInvalidRating = errors.New("invalid rating")
	ErrInvalidStyle  = errors.New("invalid style")
)

// Testimonial is one record of a testimonials block. It has no identity
// field; its position in the Collection identifies it.
type Testimonial struct {
	Author   string `yaml:"author" json:"author"`
	Title    string `yaml:"title" json:"title"`
	Subtitle string `yaml:"subtitle" json:"subtitle"`
	Quote    string `yaml:"quote" json:"quote"`
	Rating   int    `yaml:"rating" json:"rating"`
	Image    string `yaml:"image" json:"image"`
}

// NewTestimonial returns the blank record appended by the Add action
func NewTestimonial() Testimonial {
	return Testimonial{Rating: DefaultRating}
}

// Complete reports whether the record may be kept when its editor closes.
// Author and quote are the only required fields.
func (t Testimonial) Complete() bool {
	return t.Author != "" && t.Quote != ""
}

// HasImage reports whether the record carries an image URL
func (t Testimonial) HasImage() bool {
	return t.Image != ""
}

// Get returns the text form of a field value
func (t Testimonial) Get(field Field) string {
	switch field {
	case FieldAuthor:
		return t.Author
	case FieldTitle:
		return t.Title
	case FieldSubtitle:
		return t.Subtitle
	case FieldQuote:
		return t.Quote
	case FieldRating:
		return strconv.Itoa(t.Rating)
	case FieldImage:
		return t.Image
	}
	return ""
}

// With returns a copy of t with one field replaced. Ratings are parsed
// and clamped to the 1-5 range.
func (t Testimonial) With(field Field, value string) (Testimonial, error) {
	switch field {
	case FieldAuthor:
		t.Author = value
	case FieldTitle:
		t.Title = value
	case FieldSubtitle:
		t.Subtitle = value
	case FieldQuote:
		t.Quote = value
	case FieldImage:
		t.Image = value
	case FieldRating:
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return t, fmt.Errorf("%w: %q", ErrInvalidRating, value)
		}
		t.Rating = ClampRating(n)
	default:
		return t, fmt.Errorf("%w: %q", ErrUnknownField, string(field))
	}
	return t, nil
}

// ClampRating forces n into the inclusive 1-5 range
func ClampRating(n int) int {
	return max(MinRating, min(MaxRating, n))
}

// Field names one of the six record attributes
type Field string

const (
	FieldAuthor   Field = "author"
	FieldTitle    Field = "title"
	FieldSubtitle Field = "subtitle"
	FieldQuote    Field = "quote"
	FieldRating   Field = "rating"
	FieldImage    Field = "image"
)

// Fields lists the record attributes in editor order
var Fields = []Field{FieldAuthor, FieldTitle, FieldSubtitle, FieldQuote, FieldRating, FieldImage}

// ParseField converts user input to a Field
func ParseField(s string) (Field, error) {
	f := Field(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(Fields, f) {
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, s)
}

// Collection is the ordered sequence of testimonials. Insertion order is
// display order. Every mutating helper returns a fresh slice and leaves
// the receiver untouched, so earlier snapshots stay valid.
type Collection []Testimonial

// Valid reports whether i addresses an element
func (c Collection) Valid(i int) bool {
	return i >= 0 && i < len(c)
}

// Append returns a new collection with t added at the end
func (c Collection) Append(t Testimonial) Collection {
	out := make(Collection, len(c), len(c)+1)
	copy(out, c)
	return append(out, t)
}

// Replace returns a new collection with the element at i swapped for t.
// Out of range indices return the receiver unchanged.
func (c Collection) Replace(i int, t Testimonial) Collection {
	if !c.Valid(i) {
		return c
	}
	out := slices.Clone(c)
	out[i] = t
	return out
}

// Remove returns a new collection without the element at i
func (c Collection) Remove(i int) Collection {
	if !c.Valid(i) {
		return c
	}
	out := make(Collection, 0, len(c)-1)
	out = append(out, c[:i]...)
	return append(out, c[i+1:]...)
}

// Clone returns an independent copy
func (c Collection) Clone() Collection {
	if c == nil {
		return Collection{}
	}
	return slices.Clone(c)
}

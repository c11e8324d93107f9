package models

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Style is the block display variant. Only two themes exist.
type Style uint8

const (
	StyleDefault Style = iota
	StylePlain
)

// Styles lists the variants in selector order
var Styles = []Style{StyleDefault, StylePlain}

func (s Style) String() string {
	if s == StylePlain {
		return "plain"
	}
	return "default"
}

// Label is the untranslated selector label
func (s Style) Label() string {
	if s == StylePlain {
		return "Plain"
	}
	return "Default"
}

// Next cycles to the other variant
func (s Style) Next() Style {
	if s == StylePlain {
		return StyleDefault
	}
	return StylePlain
}

// ParseStyle accepts "default" or "plain". An empty string is the default.
func ParseStyle(s string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "default":
		return StyleDefault, nil
	case "plain":
		return StylePlain, nil
	}
	return StyleDefault, fmt.Errorf("%w: %q (must be default or plain)", ErrInvalidStyle, s)
}

func (s Style) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

func (s *Style) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := ParseStyle(value.Value)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func (s Style) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Style) UnmarshalText(text []byte) error {
	parsed, err := ParseStyle(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Attributes is the attribute bag of one testimonials block
type Attributes struct {
	HeadingBlock string     `yaml:"headingBlock,omitempty" json:"headingBlock,omitempty"`
	Testimonials Collection `yaml:"testimonials" json:"testimonials"`
	Style        Style      `yaml:"style" json:"style"`
}

// AttributesUpdate is a partial update. Each non-nil field replaces the
// whole attribute; there are no incremental patches.
type AttributesUpdate struct {
	HeadingBlock *string
	Testimonials *Collection
	Style        *Style
}

// Apply returns a copy of a with the update applied
func (u AttributesUpdate) Apply(a Attributes) Attributes {
	if u.HeadingBlock != nil {
		a.HeadingBlock = *u.HeadingBlock
	}
	if u.Testimonials != nil {
		a.Testimonials = *u.Testimonials
	}
	if u.Style != nil {
		a.Style = *u.Style
	}
	return a
}

// Empty reports whether the update carries no field
func (u AttributesUpdate) Empty() bool {
	return u.HeadingBlock == nil && u.Testimonials == nil && u.Style == nil
}

// Block is a named testimonials block as stored on disk
type Block struct {
	Name       string     `yaml:"name" json:"name"`
	Path       string     `yaml:"-" json:"path,omitempty"`
	Attributes Attributes `yaml:"attributes" json:"attributes"`
}

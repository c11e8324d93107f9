package models

import (
	"errors"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestCollection_CopyOnWrite(t *testing.T) {
	base := make(Collection, 2, 8) // spare capacity must not be shared
	base[0] = Testimonial{Author: "A"}
	base[1] = Testimonial{Author: "B"}

	appended := base.Append(Testimonial{Author: "C"})
	replaced := base.Replace(0, Testimonial{Author: "Z"})
	removed := base.Remove(0)

	if base[0].Author != "A" || base[1].Author != "B" {
		t.Fatalf("receiver mutated: %+v", base)
	}
	if len(appended) != 3 || appended[2].Author != "C" {
		t.Errorf("Append() = %+v", appended)
	}
	if replaced[0].Author != "Z" || replaced[1].Author != "B" {
		t.Errorf("Replace() = %+v", replaced)
	}
	if len(removed) != 1 || removed[0].Author != "B" {
		t.Errorf("Remove() = %+v", removed)
	}

	// Writing through a result must not leak into another result.
	removed[0].Author = "mutated"
	if base[1].Author != "B" {
		t.Error("Remove() shares storage with the receiver")
	}
}

func TestCollection_OutOfRangeIsNoop(t *testing.T) {
	c := Collection{{Author: "A"}}

	if got := c.Replace(3, Testimonial{}); len(got) != 1 || got[0].Author != "A" {
		t.Errorf("Replace(3) = %+v", got)
	}
	if got := c.Remove(-1); len(got) != 1 {
		t.Errorf("Remove(-1) = %+v", got)
	}
}

func TestTestimonial_Complete(t *testing.T) {
	tests := []struct {
		name string
		in   Testimonial
		want bool
	}{
		{"blank", NewTestimonial(), false},
		{"author only", Testimonial{Author: "A"}, false},
		{"quote only", Testimonial{Quote: "Q"}, false},
		{"author and quote", Testimonial{Author: "A", Quote: "Q"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Complete(); got != tt.want {
				t.Errorf("Complete() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseField(t *testing.T) {
	for _, f := range Fields {
		got, err := ParseField(strings.ToUpper(string(f)))
		if err != nil || got != f {
			t.Errorf("ParseField(%q) = %q, %v", f, got, err)
		}
	}
	if _, err := ParseField("email"); !errors.Is(err, ErrUnknownField) {
		t.Errorf("ParseField(email) error = %v", err)
	}
}

func TestParseStyle(t *testing.T) {
	tests := []struct {
		in      string
		want    Style
		wantErr bool
	}{
		{"", StyleDefault, false},
		{"default", StyleDefault, false},
		{"Plain", StylePlain, false},
		{"fancy", StyleDefault, true},
	}
	for _, tt := range tests {
		got, err := ParseStyle(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseStyle(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseStyle(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestAttributes_YAML(t *testing.T) {
	doc := `headingBlock: Reviews
style: plain
testimonials:
  - author: Jane
    quote: Great!
    rating: 4
`
	var attrs Attributes
	if err := yaml.Unmarshal([]byte(doc), &attrs); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if attrs.Style != StylePlain || attrs.HeadingBlock != "Reviews" {
		t.Errorf("attrs = %+v", attrs)
	}
	if len(attrs.Testimonials) != 1 || attrs.Testimonials[0].Rating != 4 {
		t.Errorf("testimonials = %+v", attrs.Testimonials)
	}

	out, err := yaml.Marshal(attrs)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !strings.Contains(string(out), "style: plain") {
		t.Errorf("marshaled style missing:\n%s", out)
	}

	var bad Attributes
	if err := yaml.Unmarshal([]byte("style: neon\n"), &bad); !errors.Is(err, ErrInvalidStyle) {
		t.Errorf("Unmarshal(neon) error = %v, want ErrInvalidStyle", err)
	}
}

func TestAttributesUpdate_Apply(t *testing.T) {
	attrs := Attributes{HeadingBlock: "old", Style: StylePlain}
	heading := "new"

	got := AttributesUpdate{HeadingBlock: &heading}.Apply(attrs)

	if got.HeadingBlock != "new" || got.Style != StylePlain {
		t.Errorf("Apply() = %+v", got)
	}
	if attrs.HeadingBlock != "old" {
		t.Error("Apply() mutated its input")
	}
}

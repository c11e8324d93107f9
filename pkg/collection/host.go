package collection

import "github.com/pluqqy/testimonials/pkg/models"

// Host owns the attribute bag of a block. The store reads the current
// attributes from it and requests whole-field replacements through
// SetAttributes; it never persists anything itself.
type Host interface {
	Attributes() models.Attributes
	SetAttributes(update models.AttributesUpdate)
}

// MemoryHost keeps the attribute bag in memory. It is used by tests and by
// the CLI commands that apply a single edit before saving.
type MemoryHost struct {
	attrs   models.Attributes
	updates int
}

// NewMemoryHost creates a host seeded with attrs
func NewMemoryHost(attrs models.Attributes) *MemoryHost {
	return &MemoryHost{attrs: attrs}
}

func (h *MemoryHost) Attributes() models.Attributes {
	return h.attrs
}

func (h *MemoryHost) SetAttributes(update models.AttributesUpdate) {
	if update.Empty() {
		return
	}
	h.attrs = update.Apply(h.attrs)
	h.updates++
}

// Updates returns how many setter calls changed the bag
func (h *MemoryHost) Updates() int {
	return h.updates
}

package testhelpers

import (
	"github.com/pluqqy/testimonials/pkg/collection"
	"github.com/pluqqy/testimonials/pkg/models"
)

// FakeBlockHost is an in-memory block host that records saves
type FakeBlockHost struct {
	*collection.MemoryHost
	BlockName string
	SaveErr   error
	Saves     int
	dirty     bool
}

// NewFakeBlockHost creates a clean host named name holding attrs
func NewFakeBlockHost(name string, attrs models.Attributes) *FakeBlockHost {
	return &FakeBlockHost{
		MemoryHost: collection.NewMemoryHost(attrs),
		BlockName:  name,
	}
}

func (h *FakeBlockHost) SetAttributes(update models.AttributesUpdate) {
	if update.Empty() {
		return
	}
	h.MemoryHost.SetAttributes(update)
	h.dirty = true
}

func (h *FakeBlockHost) Save() error {
	if h.SaveErr != nil {
		return h.SaveErr
	}
	h.Saves++
	h.dirty = false
	return nil
}

func (h *FakeBlockHost) Dirty() bool {
	return h.dirty
}

func (h *FakeBlockHost) Name() string {
	return h.BlockName
}

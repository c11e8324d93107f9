package files

import (
	"go.uber.org/zap"

	"github.com/pluqqy/testimonials/pkg/models"
)

// BlockHost is the on-disk host of a block's attribute bag. Updates are
// applied in memory and written out by Save, or immediately when autosave
// is on.
type BlockHost struct {
	block    models.Block
	dirty    bool
	autosave bool
	saveErr  error
	logger   *zap.Logger
}

// OpenBlockHost loads name from the project
func OpenBlockHost(name string, autosave bool, logger *zap.Logger) (*BlockHost, error) {
	block, err := ReadBlock(name)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BlockHost{block: *block, autosave: autosave, logger: logger}, nil
}

func (h *BlockHost) Attributes() models.Attributes {
	return h.block.Attributes
}

func (h *BlockHost) SetAttributes(update models.AttributesUpdate) {
	if update.Empty() {
		return
	}
	h.block.Attributes = update.Apply(h.block.Attributes)
	h.dirty = true

	if h.autosave {
		h.saveErr = h.Save()
	}
}

// Save writes the block if it has unsaved changes
func (h *BlockHost) Save() error {
	if !h.dirty {
		return nil
	}
	block := h.block
	if err := WriteBlock(&block); err != nil {
		h.logger.Error("failed to save block", zap.String("block", h.block.Name), zap.Error(err))
		return err
	}
	h.block.Path = block.Path
	h.dirty = false
	h.logger.Debug("saved block",
		zap.String("block", h.block.Name),
		zap.Int("testimonials", len(h.block.Attributes.Testimonials)))
	return nil
}

// Dirty reports whether there are unsaved changes
func (h *BlockHost) Dirty() bool {
	return h.dirty
}

// LastSaveError returns the error of the most recent autosave
func (h *BlockHost) LastSaveError() error {
	return h.saveErr
}

// Name returns the block name
func (h *BlockHost) Name() string {
	return h.block.Name
}

// Path returns the block file path
func (h *BlockHost) Path() string {
	return h.block.Path
}

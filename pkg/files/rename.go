package files

import (
	"fmt"
	"os"
	"strings"

	"github.com/pluqqy/testimonials/pkg/models"
)

// ValidateRename checks that a block can be renamed to newName
func ValidateRename(oldName, newName string) error {
	if strings.TrimSpace(newName) == "" {
		return fmt.Errorf("new block name cannot be empty")
	}

	oldPath, newPath := BlockPath(oldName), BlockPath(newName)
	if _, err := os.Stat(oldPath); os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", ErrBlockNotFound, oldName)
	}
	if oldPath == newPath {
		return nil
	}
	if _, err := os.Stat(newPath); err == nil {
		return fmt.Errorf("block %q already exists", Slugify(newName))
	}
	return nil
}

// RenameBlock moves a block to the file for newName and updates its stored
// name. The old file is restored if the move cannot complete.
func RenameBlock(oldName, newName string) (*models.Block, error) {
	if err := ValidateRename(oldName, newName); err != nil {
		return nil, err
	}

	block, err := ReadBlock(oldName)
	if err != nil {
		return nil, fmt.Errorf("failed to read block: %w", err)
	}
	oldPath := block.Path

	backup, err := os.ReadFile(oldPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create backup: %w", err)
	}

	block.Name = Slugify(newName)
	block.Path = BlockPath(newName)
	if err := WriteBlock(block); err != nil {
		return nil, fmt.Errorf("failed to write renamed block: %w", err)
	}

	if oldPath != block.Path {
		if err := os.Remove(oldPath); err != nil {
			os.Remove(block.Path)
			os.WriteFile(oldPath, backup, 0644)
			return nil, fmt.Errorf("failed to remove old file: %w", err)
		}
	}

	return block, nil
}

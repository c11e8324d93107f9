package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pluqqy/testimonials/internal/cli"
	"github.com/pluqqy/testimonials/pkg/files"
)

// NewRenameCommand creates the rename command
func NewRenameCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <block> <new-name>",
		Short: "Rename a block",
		Long: `Rename a block file. The new name is slugified, so
"Landing Page" becomes landing-page.

Examples:
  testimonials rename home landing
  testimonials mv home "Landing Page"`,
		Args:    cobra.ExactArgs(2),
		Aliases: []string{"mv"},
		PreRunE: validateProject,
		RunE:    runRename,
	}
}

func runRename(cmd *cobra.Command, args []string) error {
	block, err := files.RenameBlock(args[0], args[1])
	if err != nil {
		return fmt.Errorf("failed to rename block: %w", err)
	}
	cli.PrintSuccess("Renamed %s to %s", args[0], block.Name)
	return nil
}

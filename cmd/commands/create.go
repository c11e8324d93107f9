package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pluqqy/testimonials/internal/cli"
	"github.com/pluqqy/testimonials/pkg/collection"
	"github.com/pluqqy/testimonials/pkg/files"
	"github.com/pluqqy/testimonials/pkg/models"
)

var (
	createHeading string
	createStyle   string
)

// NewCreateCommand creates the create command
func NewCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <block>",
		Short: "Create a new testimonials block",
		Long: `Create a new, empty testimonials block in the current project.

The block name is turned into a file name, so "Home Page" is stored
as .testimonials/blocks/home-page.yaml.

Examples:
  # Create a block
  testimonials create home

  # Create a block with a heading and the plain design
  testimonials create pricing --heading "Loved by teams" --style plain`,
		Args:    cobra.ExactArgs(1),
		PreRunE: validateProject,
		RunE:    runCreate,
	}

	cmd.Flags().StringVar(&createHeading, "heading", "", "Block heading (empty uses the default)")
	cmd.Flags().StringVar(&createStyle, "style", "default", "Design variant (default, plain)")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	name := args[0]
	if err := cli.ValidateBlockName(name); err != nil {
		return err
	}
	style, err := models.ParseStyle(createStyle)
	if err != nil {
		return err
	}

	block, err := files.CreateBlock(name)
	if err != nil {
		return fmt.Errorf("failed to create block: %w", err)
	}

	ctx, err := cli.NewCommandContext()
	if err != nil {
		return err
	}
	defer ctx.Close()

	host, err := ctx.OpenBlock(name, false)
	if err != nil {
		return err
	}
	store := collection.NewStore(host, collection.WithLogger(ctx.Logger()))
	store.SetHeading(createHeading)
	store.SetStyle(style)
	if err := host.Save(); err != nil {
		return fmt.Errorf("failed to save block: %w", err)
	}

	cli.PrintSuccess("Created block '%s' at %s", block.Name, host.Path())
	return nil
}

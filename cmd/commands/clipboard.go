package commands

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/pluqqy/testimonials/internal/cli"
	"github.com/pluqqy/testimonials/pkg/files"
	"github.com/pluqqy/testimonials/pkg/render"
)

var (
	clipboardFormat string
)

// NewClipboardCommand creates the clipboard command
func NewClipboardCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clipboard [block]",
		Short: "Copy a block's rendered grid to the clipboard",
		Long: `Render a block and copy the result to the system clipboard,
ready to paste into a page.

Examples:
  # Copy the HTML grid
  testimonials clipboard home

  # Copy markdown instead
  testimonials clipboard home --format markdown`,
		Args:    cobra.MaximumNArgs(1),
		Aliases: []string{"clip", "copy"},
		PreRunE: validateProject,
		RunE:    runClipboard,
	}

	cmd.Flags().StringVar(&clipboardFormat, "format", "html", "Render format (html, markdown)")

	return cmd
}

func runClipboard(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewCommandContext()
	if err != nil {
		return err
	}
	defer ctx.Close()

	name := ctx.BlockName(args)
	block, err := files.ReadBlock(name)
	if err != nil {
		return fmt.Errorf("failed to load block: %w", err)
	}

	format, err := render.ParseFormat(clipboardFormat)
	if err != nil {
		return err
	}
	out, err := renderBlock(block.Attributes, ctx.Translator(), format, false)
	if err != nil {
		return err
	}

	if err := clipboard.WriteAll(out); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}

	cli.PrintSuccess("Copied %s (%s, %d testimonial(s)) to clipboard", name, format, len(block.Attributes.Testimonials))
	return nil
}

package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pluqqy/testimonials/internal/cli"
	"github.com/pluqqy/testimonials/pkg/files"
)

var (
	showFormat string
	showRaw    bool
)

// NewShowCommand creates the show command
func NewShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [block]",
		Short: "Render a block's testimonials grid",
		Long: `Render a block as it will appear on the page.

Formats:
  html      - The grid markup
  markdown  - A Markdown rendition (styled for the terminal unless --raw)
  terminal  - A styled terminal preview

Without a format the configured default is used. With -o json or
-o yaml the block's stored attributes are printed instead.

Examples:
  # Preview in the terminal
  testimonials show home --format terminal

  # Print the raw markdown
  testimonials show home --format markdown --raw

  # Dump the stored attributes
  testimonials show home -o yaml`,
		Args:    cobra.MaximumNArgs(1),
		PreRunE: validateProject,
		RunE:    runShow,
	}

	cmd.Flags().StringVarP(&showFormat, "format", "f", "", "Render format (html, markdown, terminal)")
	cmd.Flags().BoolVar(&showRaw, "raw", false, "Print markdown without terminal styling")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
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

	if format := outputFormat(cmd); cli.IsStructured(format) {
		return cli.OutputResults(cmd.OutOrStdout(), format, block)
	}

	format, err := resolveFormat(showFormat, ctx.LoadSettingsWithDefault())
	if err != nil {
		return err
	}
	out, err := renderBlock(block.Attributes, ctx.Translator(), format, !showRaw)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), out)
	if !strings.HasSuffix(out, "\n") {
		fmt.Fprintln(cmd.OutOrStdout())
	}
	return nil
}

package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pluqqy/testimonials/internal/cli"
	"github.com/pluqqy/testimonials/pkg/files"
	"github.com/pluqqy/testimonials/pkg/render"
)

var (
	exportToFile string
	exportFormat string
	exportStdout bool
)

// NewExportCommand creates the export command
func NewExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [block]",
		Short: "Write a block's rendered grid to a file",
		Long: `Render a block and write the result to a file.

By default the output goes to the configured export path and file
name (./testimonials.html). Markdown exports switch the default file
extension to .md.

Examples:
  # Export using the configured defaults
  testimonials export home

  # Export markdown to a specific file
  testimonials export home --format markdown --file docs/testimonials.md

  # Write to stdout instead
  testimonials export home --stdout`,
		Args:    cobra.MaximumNArgs(1),
		PreRunE: validateProject,
		RunE:    runExport,
	}

	cmd.Flags().StringVarP(&exportToFile, "file", "f", "", "Output file (default from settings)")
	cmd.Flags().StringVar(&exportFormat, "format", "", "Render format (html, markdown)")
	cmd.Flags().BoolVar(&exportStdout, "stdout", false, "Write to stdout instead of a file")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewCommandContext()
	if err != nil {
		return err
	}
	defer ctx.Close()
	settings := ctx.LoadSettingsWithDefault()

	name := ctx.BlockName(args)
	block, err := files.ReadBlock(name)
	if err != nil {
		return fmt.Errorf("failed to load block: %w", err)
	}

	format, err := resolveFormat(exportFormat, settings)
	if err != nil {
		return err
	}
	if format == render.FormatTerminal {
		return fmt.Errorf("terminal format cannot be exported; use 'testimonials show'")
	}

	out, err := renderBlock(block.Attributes, ctx.Translator(), format, false)
	if err != nil {
		return err
	}

	if exportStdout {
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	}

	path := exportToFile
	if path == "" {
		path = exportPath(settings.Output.ExportPath, settings.Output.DefaultFilename, format)
	}
	if err := files.WriteFile(path, out); err != nil {
		return err
	}

	ctx.Logger().Info("exported block",
		zap.String("block", name),
		zap.String("format", string(format)),
		zap.String("path", path))
	cli.PrintSuccess("Exported %s to %s", name, path)
	return nil
}

// exportPath joins the configured directory and file name, swapping the
// extension for markdown output
func exportPath(dir, filename string, format render.Format) string {
	if format == render.FormatMarkdown {
		filename = strings.TrimSuffix(filename, filepath.Ext(filename)) + ".md"
	}
	return filepath.Join(dir, filename)
}

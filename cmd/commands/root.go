package commands

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/pluqqy/testimonials/internal/cli"
	"github.com/pluqqy/testimonials/pkg/i18n"
	"github.com/pluqqy/testimonials/pkg/models"
	"github.com/pluqqy/testimonials/pkg/render"
)

// AddGlobalFlags registers the persistent flags shared by every command
func AddGlobalFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.BoolP("quiet", "q", false, "Suppress informational output")
	flags.Bool("no-color", false, "Disable colored output")
	flags.BoolP("yes", "y", false, "Skip confirmation prompts")
	flags.StringP("output", "o", "text", "Output format (text, json, yaml)")
	flags.String("log-level", "", "Override the logging level (debug, info, warn, error, off)")
}

// ApplyGlobalFlags pushes the persistent flags into the cli package. It is
// the root command's PersistentPreRunE.
func ApplyGlobalFlags(cmd *cobra.Command, args []string) error {
	quiet, _ := cmd.Flags().GetBool("quiet")
	noColor, _ := cmd.Flags().GetBool("no-color")
	yes, _ := cmd.Flags().GetBool("yes")
	output, _ := cmd.Flags().GetString("output")
	logLevel, _ := cmd.Flags().GetString("log-level")

	if err := cli.ValidateOutputFormat(output); err != nil {
		return err
	}

	cli.SetGlobalFlags(quiet, noColor, yes)
	cli.SetLogLevel(logLevel)
	cli.SetIO(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
	return nil
}

// Register adds the block commands to root
func Register(root *cobra.Command) {
	root.AddCommand(
		NewInitCommand(),
		NewCreateCommand(),
		NewListCommand(),
		NewShowCommand(),
		NewExportCommand(),
		NewClipboardCommand(),
		NewAddCommand(),
		NewEditCommand(),
		NewDeleteCommand(),
		NewSetCommand(),
		NewRenameCommand(),
	)
}

// validateProject is the PreRunE shared by the block commands
func validateProject(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewCommandContext()
	if err != nil {
		return err
	}
	return ctx.ValidateProject()
}

func outputFormat(cmd *cobra.Command) string {
	format, _ := cmd.Flags().GetString("output")
	return format
}

// resolveFormat picks the render format from a flag, falling back to the
// configured default
func resolveFormat(flag string, settings *models.Settings) (render.Format, error) {
	if flag == "" {
		flag = settings.Output.DefaultFormat
	}
	return render.ParseFormat(flag)
}

// renderBlock renders attrs in format. Pretty markdown goes through glamour
// for terminal display.
func renderBlock(attrs models.Attributes, tr i18n.Translator, format render.Format, pretty bool) (string, error) {
	grid := render.Build(attrs, tr)

	switch format {
	case render.FormatHTML:
		return render.HTML(grid)

	case render.FormatMarkdown:
		md := render.Markdown(grid)
		if !pretty {
			return md, nil
		}
		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(80),
		)
		if err != nil {
			return "", fmt.Errorf("failed to create markdown renderer: %w", err)
		}
		out, err := renderer.Render(md)
		if err != nil {
			return "", fmt.Errorf("failed to render markdown: %w", err)
		}
		return out, nil

	case render.FormatTerminal:
		return render.Terminal(grid, render.TerminalOptions{Width: 80, NoColor: cli.NoColor()}), nil
	}
	return "", fmt.Errorf("unsupported format: %s", format)
}

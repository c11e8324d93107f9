package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pluqqy/testimonials/cmd/commands"
	"github.com/pluqqy/testimonials/internal/cli"
	"github.com/pluqqy/testimonials/pkg/files"
	"github.com/pluqqy/testimonials/pkg/tui"
)

// Version is set during build with -ldflags
var version = "dev"

var imageDir string

var rootCmd = &cobra.Command{
	Use:   "testimonials [block]",
	Short: "Terminal editor for testimonials blocks",
	Long: `Testimonials is a terminal editor for testimonials blocks: a heading,
a list of quotes with author, title, rating and image, and a design
variant. Blocks are stored as YAML and render to HTML or Markdown.

Run without a block name to edit the configured default block.`,
	Args:              cobra.MaximumNArgs(1),
	PersistentPreRunE: commands.ApplyGlobalFlags,
	SilenceUsage:      true,
	SilenceErrors:     true,
	RunE:              runTUI,
}

func runTUI(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewCommandContext()
	if err != nil {
		return err
	}
	defer ctx.Close()

	if err := ctx.ValidateProject(); err != nil {
		return err
	}
	if err := cli.ValidateDirectoryPath(imageDir); err != nil {
		return fmt.Errorf("invalid --image-dir: %w", err)
	}

	settings := ctx.LoadSettingsWithDefault()
	name := ctx.BlockName(args)
	if err := cli.ValidateBlockName(name); err != nil {
		return err
	}
	if _, err := os.Stat(files.BlockPath(name)); os.IsNotExist(err) {
		if _, err := files.CreateBlock(name); err != nil {
			return err
		}
		cli.PrintInfo("Created block '%s'", name)
	}

	host, err := ctx.OpenBlock(name, settings.Editor.Autosave)
	if err != nil {
		return err
	}

	app := tui.NewApp(host, tui.AppOptions{
		Translator: ctx.Translator(),
		Settings:   settings,
		Logger:     ctx.Logger(),
		ImageDir:   imageDir,
		Version:    version,
	})
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to start the terminal user interface (try a different terminal): %w", err)
	}

	if err := host.LastSaveError(); err != nil {
		cli.PrintWarning("Last autosave failed: %v", err)
	}
	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of testimonials",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "testimonials version %s\n", version)
	},
}

func init() {
	commands.AddGlobalFlags(rootCmd)
	rootCmd.Flags().StringVar(&imageDir, "image-dir", ".", "Directory the image picker starts in")

	rootCmd.AddCommand(versionCmd)
	commands.Register(rootCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		cli.PrintError("%v", err)
		os.Exit(1)
	}
}

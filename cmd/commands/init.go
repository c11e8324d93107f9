package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pluqqy/testimonials/internal/cli"
	"github.com/pluqqy/testimonials/pkg/files"
	"github.com/pluqqy/testimonials/pkg/models"
)

// NewInitCommand creates the init command
func NewInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize a new testimonials project",
		Long: `Creates the .testimonials folder structure in the current directory,
writes default settings and an empty default block.`,
		Args: cobra.NoArgs,
		RunE: runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to determine current directory: %w", err)
	}

	cli.PrintInfo("Initializing testimonials project in %s...", cwd)

	if err := files.InitProjectStructure(); err != nil {
		return fmt.Errorf("failed to initialize project structure (check write permissions): %w", err)
	}
	cli.PrintSuccess("Created %s folder structure", files.ProjectDir)

	if _, err := os.Stat(files.SettingsPath()); os.IsNotExist(err) {
		if err := files.WriteSettings(models.DefaultSettings()); err != nil {
			return err
		}
		cli.PrintSuccess("Wrote default settings to %s", files.SettingsPath())
	}

	settings, err := files.ReadSettings()
	if err != nil {
		return err
	}
	name := settings.UI.DefaultBlock
	if _, err := os.Stat(files.BlockPath(name)); os.IsNotExist(err) {
		if _, err := files.CreateBlock(name); err != nil {
			return err
		}
		cli.PrintSuccess("Created block '%s'", name)
	}

	cli.PrintInfo("Run 'testimonials' to start editing.")
	return nil
}

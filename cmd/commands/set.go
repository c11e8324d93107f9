package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pluqqy/testimonials/internal/cli"
	"github.com/pluqqy/testimonials/pkg/collection"
	"github.com/pluqqy/testimonials/pkg/models"
)

// NewSetCommand creates the set command
func NewSetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <block> <style|heading> [value]",
		Short: "Set a block's design or heading",
		Long: `Change a block-level setting.

Settings:
  style    - Design variant: default or plain
  heading  - Heading text; omit the value to use the default heading

Examples:
  # Switch to the plain design
  testimonials set home style plain

  # Set the heading
  testimonials set home heading "What our customers say"

  # Reset the heading to the default
  testimonials set home heading`,
		Args:      cobra.RangeArgs(2, 3),
		ValidArgs: []string{"style", "heading"},
		PreRunE:   validateProject,
		RunE:      runSet,
	}

	return cmd
}

func runSet(cmd *cobra.Command, args []string) error {
	name, setting := args[0], strings.ToLower(args[1])
	value := ""
	if len(args) == 3 {
		value = args[2]
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

	var done string
	switch setting {
	case "style", "design":
		style, err := models.ParseStyle(value)
		if err != nil {
			return err
		}
		store.SetStyle(style)
		done = fmt.Sprintf("Set %s style to %s", name, style)

	case "heading", "title":
		store.SetHeading(value)
		if value == "" {
			done = fmt.Sprintf("Reset %s heading to the default", name)
		} else {
			done = fmt.Sprintf("Set %s heading to %q", name, value)
		}

	default:
		return fmt.Errorf("unknown setting: %s (must be: style or heading)", args[1])
	}

	if err := host.Save(); err != nil {
		return fmt.Errorf("failed to save block: %w", err)
	}
	cli.PrintSuccess("%s", done)
	return nil
}

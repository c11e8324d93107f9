package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pluqqy/testimonials/internal/cli"
	"github.com/pluqqy/testimonials/pkg/collection"
)

var (
	deleteForce bool
)

// NewDeleteCommand creates the delete command
func NewDeleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <block> <number>",
		Short: "Remove a testimonial from a block",
		Long: `Permanently remove a testimonial. Numbers start at 1; the
testimonials after it move up by one.

Examples:
  # Delete the second testimonial (with confirmation)
  testimonials delete home 2

  # Without confirmation
  testimonials delete home 2 --force`,
		Args:    cobra.ExactArgs(2),
		Aliases: []string{"rm"},
		PreRunE: validateProject,
		RunE:    runDelete,
	}

	cmd.Flags().BoolVarP(&deleteForce, "force", "f", false, "Force deletion without confirmation")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewCommandContext()
	if err != nil {
		return err
	}
	defer ctx.Close()

	host, err := ctx.OpenBlock(args[0], false)
	if err != nil {
		return err
	}
	store := collection.NewStore(host, collection.WithLogger(ctx.Logger()))

	index, err := cli.ParseRecordNumber(args[1], store.Len())
	if err != nil {
		return err
	}
	record := store.Snapshot().Attributes.Testimonials[index]

	if !deleteForce {
		prompt := fmt.Sprintf("Delete testimonial %d by %s?", index+1, record.Author)
		ok, err := cli.Confirm(prompt, false)
		if err != nil {
			return err
		}
		if !ok {
			cli.PrintInfo("Deletion cancelled")
			return nil
		}
	}

	if err := store.RemoveTestimonial(index); err != nil {
		return err
	}
	if err := host.Save(); err != nil {
		return fmt.Errorf("failed to save block: %w", err)
	}

	cli.PrintSuccess("Deleted testimonial %d by %s", index+1, record.Author)
	return nil
}

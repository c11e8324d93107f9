package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pluqqy/testimonials/internal/cli"
	"github.com/pluqqy/testimonials/pkg/collection"
	"github.com/pluqqy/testimonials/pkg/models"
)

// NewEditCommand creates the edit command
func NewEditCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <block> <number>",
		Short: "Change fields of an existing testimonial",
		Long: `Update one or more fields of a testimonial. Numbers start at 1,
as shown by 'testimonials show'. Only the flags you pass are changed.

If the edit leaves the testimonial without an author or a quote it
is removed, just as when closing the editor in the interface.

Examples:
  # Fix a typo in the quote
  testimonials edit home 2 --quote "Exceptional service"

  # Change rating and image
  testimonials edit home 1 --rating 4 --image img/new.png

  # Clear the image (stars are hidden without one)
  testimonials edit home 1 --image ""`,
		Args:    cobra.ExactArgs(2),
		PreRunE: validateProject,
		RunE:    runEdit,
	}

	cmd.Flags().String("author", "", "Author name")
	cmd.Flags().String("title", "", "Author title")
	cmd.Flags().String("subtitle", "", "Author subtitle")
	cmd.Flags().String("quote", "", "Testimonial text")
	cmd.Flags().Int("rating", models.DefaultRating, "Star rating (1-5)")
	cmd.Flags().String("image", "", "Image URL or path")

	return cmd
}

func runEdit(cmd *cobra.Command, args []string) error {
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

	changed := 0
	for _, field := range models.Fields {
		flag := cmd.Flags().Lookup(string(field))
		if flag == nil || !flag.Changed {
			continue
		}
		value := flag.Value.String()
		if field == models.FieldRating {
			n, _ := strconv.Atoi(value)
			if n < models.MinRating || n > models.MaxRating {
				return fmt.Errorf("%w: %d (must be %d-%d)", models.ErrInvalidRating, n, models.MinRating, models.MaxRating)
			}
		}
		changed++
	}
	if changed == 0 {
		return fmt.Errorf("nothing to change: pass at least one of --author, --title, --subtitle, --quote, --rating, --image")
	}

	if err := store.OpenEditingSession(index); err != nil {
		return err
	}
	for _, field := range models.Fields {
		flag := cmd.Flags().Lookup(string(field))
		if flag == nil || !flag.Changed {
			continue
		}
		if field == models.FieldImage {
			err = store.ImageCallback(index)(collection.Media{URL: flag.Value.String()})
		} else {
			err = store.UpdateField(index, field, flag.Value.String())
		}
		if err != nil {
			return err
		}
	}

	discarded := store.CloseEditingSession()
	if err := host.Save(); err != nil {
		return fmt.Errorf("failed to save block: %w", err)
	}

	if discarded {
		cli.PrintWarning("Testimonial %d no longer has an author and a quote and was removed", index+1)
		return nil
	}
	cli.PrintSuccess("Updated testimonial %d in %s", index+1, args[0])
	return nil
}

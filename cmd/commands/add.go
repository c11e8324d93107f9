package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pluqqy/testimonials/internal/cli"
	"github.com/pluqqy/testimonials/pkg/collection"
	"github.com/pluqqy/testimonials/pkg/models"
)

// ErrIncomplete is returned when an added testimonial lacks an author or
// a quote and was discarded
var ErrIncomplete = errors.New("testimonial needs both an author and a quote")

var (
	addAuthor   string
	addTitle    string
	addSubtitle string
	addQuote    string
	addRating   int
	addImage    string
)

// NewAddCommand creates the add command
func NewAddCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [block]",
		Short: "Add a testimonial to a block",
		Long: `Append a testimonial to a block.

The testimonial goes through the same editing session as in the
interface: it is appended, filled in, and kept only if it has both
an author and a quote.

Examples:
  # Add a testimonial
  testimonials add home --author "Ada Lovelace" --quote "Remarkable engine"

  # With title, rating and image
  testimonials add home --author Ada --title CTO --subtitle "Analytical Co" \
    --quote "Superb" --rating 4 --image img/ada.png`,
		Args:    cobra.MaximumNArgs(1),
		PreRunE: validateProject,
		RunE:    runAdd,
	}

	cmd.Flags().StringVar(&addAuthor, "author", "", "Author name (required)")
	cmd.Flags().StringVar(&addTitle, "title", "", "Author title")
	cmd.Flags().StringVar(&addSubtitle, "subtitle", "", "Author subtitle, e.g. company")
	cmd.Flags().StringVar(&addQuote, "quote", "", "Testimonial text (required)")
	cmd.Flags().IntVar(&addRating, "rating", models.DefaultRating, "Star rating (1-5)")
	cmd.Flags().StringVar(&addImage, "image", "", "Image URL or path")

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	if addRating < models.MinRating || addRating > models.MaxRating {
		return fmt.Errorf("%w: %d (must be %d-%d)", models.ErrInvalidRating, addRating, models.MinRating, models.MaxRating)
	}

	ctx, err := cli.NewCommandContext()
	if err != nil {
		return err
	}
	defer ctx.Close()

	name := ctx.BlockName(args)
	host, err := ctx.OpenBlock(name, false)
	if err != nil {
		return err
	}
	store := collection.NewStore(host, collection.WithLogger(ctx.Logger()))

	index := store.AddTestimonial()
	fields := []struct {
		field models.Field
		value string
	}{
		{models.FieldAuthor, addAuthor},
		{models.FieldTitle, addTitle},
		{models.FieldSubtitle, addSubtitle},
		{models.FieldQuote, addQuote},
	}
	for _, f := range fields {
		if err := store.UpdateField(index, f.field, f.value); err != nil {
			return err
		}
	}
	if err := store.SetRating(index, addRating); err != nil {
		return err
	}
	if addImage != "" {
		pickCtx := cmd.Context()
		if pickCtx == nil {
			pickCtx = context.Background()
		}
		if err := store.PickImage(pickCtx, collection.StaticPicker(addImage)); err != nil {
			return err
		}
	}

	if store.CloseEditingSession() {
		return ErrIncomplete
	}

	if err := host.Save(); err != nil {
		return fmt.Errorf("failed to save block: %w", err)
	}
	cli.PrintSuccess("Added testimonial %d by %s to %s", index+1, addAuthor, name)
	return nil
}

package commands

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	"github.com/pluqqy/testimonials/internal/cli"
	"github.com/pluqqy/testimonials/pkg/files"
	"github.com/pluqqy/testimonials/pkg/render"
)

// ListResult represents the output structure for list command
type ListResult struct {
	Blocks []ListItem `json:"blocks" yaml:"blocks"`
	Count  int        `json:"count" yaml:"count"`
}

// ListItem represents a single block in the list
type ListItem struct {
	Name         string `json:"name" yaml:"name"`
	Heading      string `json:"heading" yaml:"heading"`
	Style        string `json:"style" yaml:"style"`
	Testimonials int    `json:"testimonials" yaml:"testimonials"`
	Path         string `json:"path,omitempty" yaml:"path,omitempty"`
}

var (
	listMatch     string
	listShowPaths bool
)

// NewListCommand creates the list command
func NewListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List testimonials blocks",
		Long: `List the testimonials blocks in the current project.

Examples:
  # List all blocks
  testimonials list

  # Fuzzy-filter block names
  testimonials list --match hm

  # JSON output with file paths
  testimonials list --paths -o json`,
		Args:    cobra.NoArgs,
		Aliases: []string{"ls"},
		PreRunE: validateProject,
		RunE:    runList,
	}

	cmd.Flags().StringVarP(&listMatch, "match", "m", "", "Fuzzy filter on block names")
	cmd.Flags().BoolVar(&listShowPaths, "paths", false, "Show file paths")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewCommandContext()
	if err != nil {
		return err
	}
	defer ctx.Close()

	names, err := files.ListBlocks()
	if err != nil {
		return err
	}
	names = filterBlockNames(names, listMatch)

	result := ListResult{Blocks: []ListItem{}}
	for _, name := range names {
		block, err := files.ReadBlock(name)
		if err != nil {
			cli.PrintWarning("Skipping %s: %v", name, err)
			continue
		}
		item := ListItem{
			Name:         name,
			Heading:      render.HeadingOrDefault(block.Attributes.HeadingBlock, ctx.Translator()),
			Style:        block.Attributes.Style.String(),
			Testimonials: len(block.Attributes.Testimonials),
		}
		if listShowPaths {
			item.Path = block.Path
		}
		result.Blocks = append(result.Blocks, item)
	}
	result.Count = len(result.Blocks)

	format := outputFormat(cmd)
	if cli.IsStructured(format) {
		return cli.OutputResults(cmd.OutOrStdout(), format, result)
	}

	if result.Count == 0 {
		if listMatch != "" {
			cli.PrintInfo("No blocks match '%s'", listMatch)
		} else {
			cli.PrintInfo("No blocks yet. Run 'testimonials create <name>' to add one")
		}
		return nil
	}

	table := cli.NewTableFormatter(cmd.OutOrStdout())
	columns := []string{"NAME", "HEADING", "STYLE", "COUNT"}
	if listShowPaths {
		columns = append(columns, "PATH")
	}
	table.Header(columns...)
	for _, item := range result.Blocks {
		row := []string{
			item.Name,
			cli.TruncateString(item.Heading, 30),
			item.Style,
			strconv.Itoa(item.Testimonials),
		}
		if listShowPaths {
			row = append(row, item.Path)
		}
		table.Row(row...)
	}
	if err := table.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\n%d block(s)\n", result.Count)
	return nil
}

// filterBlockNames keeps names fuzzy-matching pattern, best match first.
// An empty pattern keeps every name in sorted order.
func filterBlockNames(names []string, pattern string) []string {
	if pattern == "" {
		sorted := append([]string(nil), names...)
		sort.Strings(sorted)
		return sorted
	}

	matches := fuzzy.Find(pattern, names)
	filtered := make([]string, 0, len(matches))
	for _, m := range matches {
		filtered = append(filtered, m.Str)
	}
	return filtered
}

package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/pluqqy/testimonials/internal/cli"
	"github.com/pluqqy/testimonials/pkg/files"
	"github.com/pluqqy/testimonials/pkg/models"
	"github.com/pluqqy/testimonials/pkg/render"
)

// runCommand executes args against a fresh root and returns stdout and
// stderr combined
func runCommand(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()

	root := &cobra.Command{
		Use:               "testimonials",
		PersistentPreRunE: ApplyGlobalFlags,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}
	AddGlobalFlags(root)
	Register(root)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(input))
	root.SetArgs(args)
	t.Cleanup(func() {
		cli.SetGlobalFlags(false, false, false)
		cli.SetIO(os.Stdin, os.Stdout, os.Stderr)
	})

	err := root.Execute()
	return out.String(), err
}

func setupProject(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	_, err := runCommand(t, "", "init")
	require.NoError(t, err)
}

func readTestimonials(t *testing.T, name string) models.Collection {
	t.Helper()
	block, err := files.ReadBlock(name)
	require.NoError(t, err)
	return block.Attributes.Testimonials
}

func addOne(t *testing.T, author string, extra ...string) {
	t.Helper()
	args := append([]string{"add", "testimonials", "--author", author, "--quote", "Working with " + author + " was great."}, extra...)
	_, err := runCommand(t, "", args...)
	require.NoError(t, err)
}

func TestInit(t *testing.T) {
	t.Chdir(t.TempDir())

	out, err := runCommand(t, "", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Created .testimonials folder structure")
	assert.FileExists(t, files.SettingsPath())
	assert.FileExists(t, files.BlockPath("testimonials"))

	// running it again keeps the existing block
	addOne(t, "Ada")
	_, err = runCommand(t, "", "init")
	require.NoError(t, err)
	assert.Len(t, readTestimonials(t, "testimonials"), 1)
}

func TestCommandsRequireProject(t *testing.T) {
	t.Chdir(t.TempDir())

	for _, args := range [][]string{
		{"list"},
		{"show"},
		{"add", "--author", "Ada", "--quote", "Great"},
		{"set", "testimonials", "style", "plain"},
	} {
		t.Run(args[0], func(t *testing.T) {
			_, err := runCommand(t, "", args...)
			require.Error(t, err)
			assert.ErrorIs(t, err, cli.ErrNoProject)
		})
	}
}

func TestGlobalOutputFlagValidated(t *testing.T) {
	setupProject(t)

	_, err := runCommand(t, "", "list", "-o", "xml")
	require.Error(t, err)
}

func TestCreate(t *testing.T) {
	setupProject(t)

	out, err := runCommand(t, "", "create", "home", "--heading", "Kind Words", "--style", "plain")
	require.NoError(t, err)
	assert.Contains(t, out, "home")

	block, err := files.ReadBlock("home")
	require.NoError(t, err)
	assert.Equal(t, "Kind Words", block.Attributes.HeadingBlock)
	assert.Equal(t, models.StylePlain, block.Attributes.Style)
	assert.Empty(t, block.Attributes.Testimonials)

	_, err = runCommand(t, "", "create", "home")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestCreateRejectsBadStyle(t *testing.T) {
	setupProject(t)

	_, err := runCommand(t, "", "create", "home", "--style", "fancy")
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrInvalidStyle)
}

func TestAdd(t *testing.T) {
	setupProject(t)

	out, err := runCommand(t, "", "add",
		"--author", "Ada Lovelace",
		"--title", "Analyst",
		"--subtitle", "Engines Ltd",
		"--quote", "A pleasure to work with.",
		"--rating", "4",
		"--image", "img/ada.png",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "Added testimonial 1 by Ada Lovelace")

	records := readTestimonials(t, "testimonials")
	require.Len(t, records, 1)
	got := records[0]
	assert.Equal(t, "Ada Lovelace", got.Author)
	assert.Equal(t, "Analyst", got.Title)
	assert.Equal(t, "Engines Ltd", got.Subtitle)
	assert.Equal(t, "A pleasure to work with.", got.Quote)
	assert.Equal(t, 4, got.Rating)
	assert.Equal(t, "img/ada.png", got.Image)
}

func TestAddIncompleteIsDiscarded(t *testing.T) {
	setupProject(t)

	tests := []struct {
		name string
		args []string
	}{
		{name: "missing quote", args: []string{"add", "--author", "Ada"}},
		{name: "missing author", args: []string{"add", "--quote", "Great"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCommand(t, "", tt.args...)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrIncomplete)
			assert.Empty(t, readTestimonials(t, "testimonials"))
		})
	}
}

func TestAddRejectsRating(t *testing.T) {
	setupProject(t)

	for _, rating := range []string{"0", "6"} {
		_, err := runCommand(t, "", "add", "--author", "Ada", "--quote", "Great", "--rating", rating)
		require.Error(t, err)
		assert.ErrorIs(t, err, models.ErrInvalidRating)
	}
	assert.Empty(t, readTestimonials(t, "testimonials"))
}

func TestEdit(t *testing.T) {
	setupProject(t)
	addOne(t, "Ada")
	addOne(t, "Grace")

	out, err := runCommand(t, "", "edit", "testimonials", "2", "--title", "Admiral", "--rating", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Updated testimonial 2")

	records := readTestimonials(t, "testimonials")
	require.Len(t, records, 2)
	assert.Equal(t, "Admiral", records[1].Title)
	assert.Equal(t, 3, records[1].Rating)
	assert.Equal(t, "Grace", records[1].Author)
	assert.Empty(t, records[0].Title)
}

func TestEditImage(t *testing.T) {
	setupProject(t)
	addOne(t, "Ada")

	_, err := runCommand(t, "", "edit", "testimonials", "1", "--image", "img/ada.png")
	require.NoError(t, err)
	assert.Equal(t, "img/ada.png", readTestimonials(t, "testimonials")[0].Image)
}

func TestEditClearingQuoteRemovesRecord(t *testing.T) {
	setupProject(t)
	addOne(t, "Ada")
	addOne(t, "Grace")

	out, err := runCommand(t, "", "edit", "testimonials", "1", "--quote", "")
	require.NoError(t, err)
	assert.Contains(t, out, "was removed")

	records := readTestimonials(t, "testimonials")
	require.Len(t, records, 1)
	assert.Equal(t, "Grace", records[0].Author)
}

func TestEditErrors(t *testing.T) {
	setupProject(t)
	addOne(t, "Ada")

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "no flags", args: []string{"edit", "testimonials", "1"}, wantErr: "nothing to change"},
		{name: "number out of range", args: []string{"edit", "testimonials", "3", "--title", "x"}, wantErr: "does not exist"},
		{name: "number not numeric", args: []string{"edit", "testimonials", "first", "--title", "x"}, wantErr: "invalid testimonial number"},
		{name: "bad rating", args: []string{"edit", "testimonials", "1", "--rating", "9"}, wantErr: "invalid rating"},
		{name: "missing block", args: []string{"edit", "nope", "1", "--title", "x"}, wantErr: "list"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCommand(t, "", tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	records := readTestimonials(t, "testimonials")
	require.Len(t, records, 1)
	assert.Empty(t, records[0].Title)
}

func TestDelete(t *testing.T) {
	setupProject(t)
	addOne(t, "Ada")
	addOne(t, "Grace")
	addOne(t, "Linus")

	out, err := runCommand(t, "n\n", "delete", "testimonials", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Deletion cancelled")
	assert.Len(t, readTestimonials(t, "testimonials"), 3)

	out, err = runCommand(t, "y\n", "delete", "testimonials", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted testimonial 2 by Grace")

	records := readTestimonials(t, "testimonials")
	require.Len(t, records, 2)
	assert.Equal(t, "Ada", records[0].Author)
	assert.Equal(t, "Linus", records[1].Author)

	_, err = runCommand(t, "", "rm", "testimonials", "1", "--force")
	require.NoError(t, err)
	records = readTestimonials(t, "testimonials")
	require.Len(t, records, 1)
	assert.Equal(t, "Linus", records[0].Author)

	_, err = runCommand(t, "", "delete", "testimonials", "5", "--force")
	require.Error(t, err)
	assert.Len(t, readTestimonials(t, "testimonials"), 1)
}

func TestDeleteWithGlobalYes(t *testing.T) {
	setupProject(t)
	addOne(t, "Ada")

	_, err := runCommand(t, "", "delete", "testimonials", "1", "--yes")
	require.NoError(t, err)
	assert.Empty(t, readTestimonials(t, "testimonials"))
}

func TestSet(t *testing.T) {
	setupProject(t)

	_, err := runCommand(t, "", "set", "testimonials", "style", "plain")
	require.NoError(t, err)
	_, err = runCommand(t, "", "set", "testimonials", "heading", "Kind Words")
	require.NoError(t, err)

	block, err := files.ReadBlock("testimonials")
	require.NoError(t, err)
	assert.Equal(t, models.StylePlain, block.Attributes.Style)
	assert.Equal(t, "Kind Words", block.Attributes.HeadingBlock)

	out, err := runCommand(t, "", "set", "testimonials", "heading")
	require.NoError(t, err)
	assert.Contains(t, out, "Reset testimonials heading to the default")

	block, err = files.ReadBlock("testimonials")
	require.NoError(t, err)
	assert.Empty(t, block.Attributes.HeadingBlock)
}

func TestSetErrors(t *testing.T) {
	setupProject(t)

	_, err := runCommand(t, "", "set", "testimonials", "color", "red")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown setting")

	_, err = runCommand(t, "", "set", "testimonials", "style", "fancy")
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrInvalidStyle)

	block, err := files.ReadBlock("testimonials")
	require.NoError(t, err)
	assert.Equal(t, models.StyleDefault, block.Attributes.Style)
}

func TestList(t *testing.T) {
	setupProject(t)
	_, err := runCommand(t, "", "create", "home", "--heading", "Kind Words")
	require.NoError(t, err)
	_, err = runCommand(t, "", "create", "pricing")
	require.NoError(t, err)
	addOne(t, "Ada")

	out, err := runCommand(t, "", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "Kind Words")
	assert.Contains(t, out, "What They Say")
	assert.Contains(t, out, "3 block(s)")
	assert.Less(t, strings.Index(out, "home"), strings.Index(out, "pricing"))

	out, err = runCommand(t, "", "ls", "--match", "prc")
	require.NoError(t, err)
	assert.Contains(t, out, "pricing")
	assert.NotContains(t, out, "home")
	assert.Contains(t, out, "1 block(s)")
}

func TestListJSON(t *testing.T) {
	setupProject(t)
	addOne(t, "Ada")
	addOne(t, "Grace")

	out, err := runCommand(t, "", "list", "-o", "json")
	require.NoError(t, err)

	var result ListResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.Equal(t, 1, result.Count)
	assert.Equal(t, "testimonials", result.Blocks[0].Name)
	assert.Equal(t, 2, result.Blocks[0].Testimonials)
	assert.Equal(t, "default", result.Blocks[0].Style)
}

func TestShowHTML(t *testing.T) {
	setupProject(t)
	addOne(t, "Ada", "--rating", "4")

	out, err := runCommand(t, "", "show", "--format", "html")
	require.NoError(t, err)
	assert.Contains(t, out, "What They Say")
	assert.Contains(t, out, "Ada")
	assert.NotContains(t, out, "★")

	_, err = runCommand(t, "", "edit", "testimonials", "1", "--image", "img/ada.png")
	require.NoError(t, err)

	out, err = runCommand(t, "", "show", "-f", "html")
	require.NoError(t, err)
	assert.Contains(t, out, "img/ada.png")
	assert.Contains(t, out, "★★★★")
	assert.Contains(t, out, `aria-label="4/5"`)
}

func TestShowMarkdownRaw(t *testing.T) {
	setupProject(t)
	_, err := runCommand(t, "", "set", "testimonials", "heading", "Kind Words")
	require.NoError(t, err)
	addOne(t, "Ada")

	out, err := runCommand(t, "", "show", "--format", "markdown", "--raw")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "## Kind Words"), out)
	assert.Contains(t, out, "Ada")
}

func TestShowYAML(t *testing.T) {
	setupProject(t)
	addOne(t, "Ada")

	out, err := runCommand(t, "", "show", "-o", "yaml")
	require.NoError(t, err)

	var block models.Block
	require.NoError(t, yaml.Unmarshal([]byte(out), &block))
	assert.Equal(t, "testimonials", block.Name)
	require.Len(t, block.Attributes.Testimonials, 1)
	assert.Equal(t, "Ada", block.Attributes.Testimonials[0].Author)
}

func TestShowMissingBlock(t *testing.T) {
	setupProject(t)

	_, err := runCommand(t, "", "show", "nope")
	require.Error(t, err)
	assert.ErrorIs(t, err, files.ErrBlockNotFound)
}

func TestExport(t *testing.T) {
	setupProject(t)
	addOne(t, "Ada")

	_, err := runCommand(t, "", "export")
	require.NoError(t, err)
	data, err := os.ReadFile("testimonials.html")
	require.NoError(t, err)
	assert.Contains(t, string(data), "Ada")

	_, err = runCommand(t, "", "export", "--format", "markdown")
	require.NoError(t, err)
	data, err = os.ReadFile("testimonials.md")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "## What They Say"))

	target := filepath.Join("site", "partials", "quotes.html")
	_, err = runCommand(t, "", "export", "--file", target)
	require.NoError(t, err)
	assert.FileExists(t, target)

	out, err := runCommand(t, "", "export", "--stdout")
	require.NoError(t, err)
	assert.Contains(t, out, "Ada")
}

func TestExportRejectsTerminal(t *testing.T) {
	setupProject(t)

	_, err := runCommand(t, "", "export", "--format", "terminal")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be exported")
}

func TestClipboardRejectsFormat(t *testing.T) {
	setupProject(t)

	_, err := runCommand(t, "", "clipboard", "--format", "pdf")
	require.Error(t, err)
}

func TestFilterBlockNames(t *testing.T) {
	names := []string{"pricing", "home", "about"}

	assert.Equal(t, []string{"about", "home", "pricing"}, filterBlockNames(names, ""))
	assert.Equal(t, []string{"pricing"}, filterBlockNames(names, "prc"))
	assert.Empty(t, filterBlockNames(names, "zzz"))
	assert.Equal(t, []string{"pricing", "home", "about"}, names)
}

func TestExportPath(t *testing.T) {
	tests := []struct {
		name     string
		dir      string
		filename string
		format   render.Format
		want     string
	}{
		{name: "html keeps name", dir: "./", filename: "testimonials.html", format: render.FormatHTML, want: "testimonials.html"},
		{name: "markdown swaps extension", dir: "out", filename: "testimonials.html", format: render.FormatMarkdown, want: filepath.Join("out", "testimonials.md")},
		{name: "markdown without extension", dir: "out", filename: "quotes", format: render.FormatMarkdown, want: filepath.Join("out", "quotes.md")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exportPath(tt.dir, tt.filename, tt.format))
		})
	}
}

func TestRename(t *testing.T) {
	setupProject(t)
	addOne(t, "Ada")

	out, err := runCommand(t, "", "mv", "testimonials", "Landing Page")
	require.NoError(t, err)
	assert.Contains(t, out, "Renamed testimonials to landing-page")
	assert.Len(t, readTestimonials(t, "landing-page"), 1)

	_, err = runCommand(t, "", "rename", "testimonials", "home")
	require.Error(t, err)
	assert.ErrorIs(t, err, files.ErrBlockNotFound)
}

package files

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/natefinch/atomic"
	"gopkg.in/yaml.v3"

	"github.com/pluqqy/testimonials/pkg/models"
)

const (
	ProjectDir   = ".testimonials"
	BlocksDir    = "blocks"
	LocalesDir   = "locales"
	LogsDir      = "logs"
	SettingsFile = "settings.yaml"
	BlockExt     = ".yaml"
)

var ErrBlockNotFound = errors.New("block not found")

func InitProjectStructure() error {
	dirs := []string{
		ProjectDir,
		filepath.Join(ProjectDir, BlocksDir),
		filepath.Join(ProjectDir, LocalesDir),
		filepath.Join(ProjectDir, LogsDir),
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

// ProjectExists reports whether the project directory is present
func ProjectExists() bool {
	info, err := os.Stat(ProjectDir)
	return err == nil && info.IsDir()
}

var (
	nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)
	repeatedDash = regexp.MustCompile(`-+`)
)

// Slugify converts a display name to a valid filename
// Examples:
//
//	"Home Page" → "home-page"
//	"Client's Reviews!" → "client-s-reviews"
func Slugify(displayName string) string {
	slug := strings.ToLower(displayName)
	slug = nonSlugChars.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	slug = repeatedDash.ReplaceAllString(slug, "-")
	if slug == "" {
		slug = "unnamed"
	}
	return slug
}

// BlockPath returns the project-relative path of a block file
func BlockPath(name string) string {
	name = strings.TrimSuffix(name, BlockExt)
	return filepath.Join(ProjectDir, BlocksDir, Slugify(name)+BlockExt)
}

func ReadBlock(name string) (*models.Block, error) {
	path := BlockPath(name)

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrBlockNotFound, name)
		}
		return nil, fmt.Errorf("failed to read block %s: %w", name, err)
	}

	var block models.Block
	if err := yaml.Unmarshal(content, &block); err != nil {
		return nil, fmt.Errorf("failed to parse block YAML %s: %w", name, err)
	}
	if block.Attributes.Testimonials == nil {
		block.Attributes.Testimonials = models.Collection{}
	}
	for i := range block.Attributes.Testimonials {
		block.Attributes.Testimonials[i].Rating = models.ClampRating(block.Attributes.Testimonials[i].Rating)
	}
	if block.Name == "" {
		block.Name = strings.TrimSuffix(filepath.Base(path), BlockExt)
	}
	block.Path = path

	return &block, nil
}

func WriteBlock(block *models.Block) error {
	if block.Path == "" {
		block.Path = BlockPath(block.Name)
	}

	if err := os.MkdirAll(filepath.Dir(block.Path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for block: %w", err)
	}

	content, err := yaml.Marshal(block)
	if err != nil {
		return fmt.Errorf("failed to marshal block to YAML: %w", err)
	}

	if err := atomic.WriteFile(block.Path, bytes.NewReader(content)); err != nil {
		return fmt.Errorf("failed to write block %s: %w", block.Name, err)
	}

	return nil
}

// CreateBlock writes a new empty block. It refuses to overwrite.
func CreateBlock(name string) (*models.Block, error) {
	path := BlockPath(name)
	if _, err := os.Stat(path); err == nil {
		return nil, fmt.Errorf("block %q already exists", name)
	}

	block := &models.Block{
		Name: name,
		Path: path,
		Attributes: models.Attributes{
			Testimonials: models.Collection{},
			Style:        models.StyleDefault,
		},
	}
	if err := WriteBlock(block); err != nil {
		return nil, err
	}
	return block, nil
}

// ListBlocks returns the block file names without extension
func ListBlocks() ([]string, error) {
	blocksPath := filepath.Join(ProjectDir, BlocksDir)

	entries, err := os.ReadDir(blocksPath)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list blocks: %w", err)
	}

	blocks := []string{}
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), BlockExt) {
			blocks = append(blocks, strings.TrimSuffix(entry.Name(), BlockExt))
		}
	}

	return blocks, nil
}

// WriteFile writes rendered output, creating parent directories
func WriteFile(path string, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := atomic.WriteFile(path, strings.NewReader(content)); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}

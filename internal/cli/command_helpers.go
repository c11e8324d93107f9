package cli

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/pluqqy/testimonials/internal/logging"
	"github.com/pluqqy/testimonials/pkg/files"
	"github.com/pluqqy/testimonials/pkg/i18n"
	"github.com/pluqqy/testimonials/pkg/models"
)

// ErrNoProject is returned when the working directory has no project
var ErrNoProject = errors.New("no .testimonials directory found. Run 'testimonials init' first")

// CommandContext manages project validation and common command context
type CommandContext struct {
	ProjectPath string
	Settings    *models.Settings
	validated   bool
	logger      *zap.Logger
	translator  i18n.Translator
}

// NewCommandContext creates a new command context
func NewCommandContext() (*CommandContext, error) {
	return &CommandContext{
		ProjectPath: files.ProjectDir,
	}, nil
}

// ValidateProject ensures the project is initialized
func (c *CommandContext) ValidateProject() error {
	if c.validated {
		return nil
	}

	if _, err := os.Stat(c.ProjectPath); os.IsNotExist(err) {
		return ErrNoProject
	}

	c.validated = true
	return nil
}

// LoadSettingsWithDefault loads settings or returns default if error
func (c *CommandContext) LoadSettingsWithDefault() *models.Settings {
	if c.Settings != nil {
		return c.Settings
	}

	settings, err := files.ReadSettings()
	if err != nil {
		PrintWarning("Failed to read settings, using defaults: %v", err)
		settings = models.DefaultSettings()
	}

	c.Settings = settings
	return settings
}

// Logger returns the project logger. A logging setup that fails falls
// back to a no-op logger after a warning.
func (c *CommandContext) Logger() *zap.Logger {
	if c.logger != nil {
		return c.logger
	}

	settings := c.LoadSettingsWithDefault()
	level := settings.Logging.Level
	if logLevel != "" {
		level = logLevel
	}

	logger, err := logging.New(level, files.ResolveProjectPath(settings.Logging.File))
	if err != nil {
		PrintWarning("Logging disabled: %v", err)
		logger = zap.NewNop()
	}
	c.logger = logger
	return logger
}

// Translator returns the catalog for the configured language
func (c *CommandContext) Translator() i18n.Translator {
	if c.translator != nil {
		return c.translator
	}

	settings := c.LoadSettingsWithDefault()
	tr, err := i18n.Load(files.ResolveProjectPath(settings.Locale.Dir), settings.Locale.Language)
	if err != nil {
		PrintWarning("Failed to load translations: %v", err)
		tr = i18n.Identity{}
	}
	c.translator = tr
	return tr
}

// OpenBlock loads a block for editing
func (c *CommandContext) OpenBlock(name string, autosave bool) (*files.BlockHost, error) {
	if err := ValidateBlockName(name); err != nil {
		return nil, err
	}
	host, err := files.OpenBlockHost(name, autosave, c.Logger())
	if err != nil {
		if errors.Is(err, files.ErrBlockNotFound) {
			return nil, fmt.Errorf("block '%s' not found. Run 'testimonials list' to see available blocks", name)
		}
		return nil, fmt.Errorf("failed to load block: %w", err)
	}
	return host, nil
}

// BlockName returns args[0], or the configured default block
func (c *CommandContext) BlockName(args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	return c.LoadSettingsWithDefault().UI.DefaultBlock
}

// Close flushes the logger
func (c *CommandContext) Close() {
	if c.logger != nil {
		_ = c.logger.Sync()
	}
}

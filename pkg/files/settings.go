package files

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
	"gopkg.in/yaml.v3"

	"github.com/pluqqy/testimonials/pkg/models"
)

// SettingsPath returns the location of the settings file
func SettingsPath() string {
	return filepath.Join(ProjectDir, SettingsFile)
}

// ReadSettings loads settings, filling unset values from the defaults.
// A missing file yields the defaults.
func ReadSettings() (*models.Settings, error) {
	settings := models.DefaultSettings()

	content, err := os.ReadFile(SettingsPath())
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	if err := yaml.Unmarshal(content, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings YAML: %w", err)
	}

	return settings, nil
}

func WriteSettings(settings *models.Settings) error {
	if err := os.MkdirAll(ProjectDir, 0755); err != nil {
		return fmt.Errorf("failed to create project directory: %w", err)
	}

	content, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings to YAML: %w", err)
	}

	if err := atomic.WriteFile(SettingsPath(), bytes.NewReader(content)); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}

	return nil
}

// ResolveProjectPath anchors a settings path inside the project directory
// unless it is already absolute
func ResolveProjectPath(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(ProjectDir, path)
}

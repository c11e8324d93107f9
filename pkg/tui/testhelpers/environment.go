package testhelpers

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/pluqqy/testimonials/pkg/files"
	"github.com/pluqqy/testimonials/pkg/models"
)

// TestEnvironment provides a project directory for TUI tests
type TestEnvironment struct {
	t       *testing.T
	TempDir string
}

// NewTestEnvironment creates a temp directory and makes it the working
// directory for the rest of the test
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	tmpDir := t.TempDir()
	t.Chdir(tmpDir)
	return &TestEnvironment{t: t, TempDir: tmpDir}
}

// InitProjectStructure creates the project directories
func (e *TestEnvironment) InitProjectStructure() {
	e.t.Helper()

	if err := files.InitProjectStructure(); err != nil {
		e.t.Fatalf("Failed to initialize project structure: %v", err)
	}
}

// CreateBlockFile writes a block with attrs and returns its path
func (e *TestEnvironment) CreateBlockFile(name string, attrs models.Attributes) string {
	e.t.Helper()

	block := &models.Block{Name: name, Attributes: attrs}
	if err := files.WriteBlock(block); err != nil {
		e.t.Fatalf("Failed to write block %s: %v", name, err)
	}
	return filepath.Join(e.TempDir, files.BlockPath(name))
}

// CreateSettings writes a settings file with custom configuration
func (e *TestEnvironment) CreateSettings(settings *models.Settings) {
	e.t.Helper()

	data, err := yaml.Marshal(settings)
	if err != nil {
		e.t.Fatalf("Failed to marshal settings: %v", err)
	}

	path := filepath.Join(e.TempDir, files.SettingsPath())
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		e.t.Fatalf("Failed to create settings directory: %v", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		e.t.Fatalf("Failed to write settings file: %v", err)
	}
}

// CreateImage writes a placeholder image file relative to the temp dir
func (e *TestEnvironment) CreateImage(rel string) string {
	e.t.Helper()

	path := filepath.Join(e.TempDir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		e.t.Fatalf("Failed to create image directory: %v", err)
	}
	if err := os.WriteFile(path, []byte("\x89PNG\r\n"), 0644); err != nil {
		e.t.Fatalf("Failed to write image: %v", err)
	}
	return path
}

// GetProjectDir returns the project directory path
func (e *TestEnvironment) GetProjectDir() string {
	return filepath.Join(e.TempDir, files.ProjectDir)
}

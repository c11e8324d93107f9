// Package i18n translates user-facing labels. Lookups are keyed by the
// literal English source string; anything missing from the catalog is
// returned unchanged.
package i18n

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// TextDomain is the catalog namespace for block labels
const TextDomain = "rm-blocks"

// Translator maps a source label to its translation
type Translator interface {
	T(source string) string
}

// Identity returns every label untranslated
type Identity struct{}

func (Identity) T(source string) string { return source }

// Catalog is one language's translation table
type Catalog struct {
	Language language.Tag
	entries  map[string]string
}

// catalogFile is the on-disk shape of a locale file
type catalogFile struct {
	Language string            `yaml:"language"`
	Domain   string            `yaml:"domain"`
	Messages map[string]string `yaml:"messages"`
}

// NewCatalog builds a catalog from a source->translation map
func NewCatalog(tag language.Tag, entries map[string]string) *Catalog {
	if entries == nil {
		entries = map[string]string{}
	}
	return &Catalog{Language: tag, entries: entries}
}

// T returns the translation of source, or source if there is none
func (c *Catalog) T(source string) string {
	if c == nil {
		return source
	}
	if translated, ok := c.entries[source]; ok && translated != "" {
		return translated
	}
	return source
}

// Tf translates format and applies args
func Tf(tr Translator, format string, args ...interface{}) string {
	return fmt.Sprintf(tr.T(format), args...)
}

// ParseCatalog decodes a YAML locale file. Files for another text domain
// are rejected.
func ParseCatalog(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse locale YAML: %w", err)
	}
	if file.Domain != "" && file.Domain != TextDomain {
		return nil, fmt.Errorf("locale file is for domain %q, want %q", file.Domain, TextDomain)
	}
	tag, err := language.Parse(file.Language)
	if err != nil {
		return nil, fmt.Errorf("invalid locale language %q: %w", file.Language, err)
	}
	return NewCatalog(tag, file.Messages), nil
}

// Load picks the catalog in dir that best matches want. Missing
// directories and unmatched languages fall back to Identity.
func Load(dir, want string) (Translator, error) {
	if want == "" {
		return Identity{}, nil
	}
	wantTag, err := language.Parse(want)
	if err != nil {
		return nil, fmt.Errorf("invalid language %q: %w", want, err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return Identity{}, nil
		}
		return nil, fmt.Errorf("failed to read locale directory: %w", err)
	}

	var catalogs []*Catalog
	for _, entry := range entries {
		if entry.IsDir() || !isYAML(entry.Name()) {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read locale %s: %w", entry.Name(), err)
		}
		catalog, err := ParseCatalog(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", entry.Name(), err)
		}
		catalogs = append(catalogs, catalog)
	}
	if len(catalogs) == 0 {
		return Identity{}, nil
	}

	// English source strings are the implicit first candidate so that
	// unsupported languages match nothing rather than an arbitrary file.
	tags := []language.Tag{language.English}
	for _, c := range catalogs {
		tags = append(tags, c.Language)
	}
	_, index, confidence := language.NewMatcher(tags).Match(wantTag)
	if index == 0 || confidence == language.No {
		return Identity{}, nil
	}
	return catalogs[index-1], nil
}

func isYAML(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}

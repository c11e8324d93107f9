package models

// Settings represents the application configuration
type Settings struct {
	Output  OutputSettings  `yaml:"output"`
	UI      UISettings      `yaml:"ui"`
	Editor  EditorSettings  `yaml:"editor"`
	Locale  LocaleSettings  `yaml:"locale"`
	Logging LoggingSettings `yaml:"logging"`
}

// OutputSettings controls rendered grid output
type OutputSettings struct {
	DefaultFilename string `yaml:"default_filename"`
	ExportPath      string `yaml:"export_path"`
	DefaultFormat   string `yaml:"default_format"` // "html", "markdown" or "terminal"
}

// UISettings controls UI preferences
type UISettings struct {
	ShowPreview  bool   `yaml:"show_preview"`
	DefaultBlock string `yaml:"default_block"`
}

// EditorSettings controls editor preferences
type EditorSettings struct {
	Autosave bool `yaml:"autosave"`
}

// LocaleSettings selects the translation catalog
type LocaleSettings struct {
	Language string `yaml:"language"`
	Dir      string `yaml:"dir"`
}

// LoggingSettings controls the debug log
type LoggingSettings struct {
	Level string `yaml:"level"` // "off", "debug", "info", "warn", "error"
	File  string `yaml:"file"`
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		Output: OutputSettings{
			DefaultFilename: "testimonials.html",
			ExportPath:      "./",
			DefaultFormat:   "html",
		},
		UI: UISettings{
			ShowPreview:  true,
			DefaultBlock: "testimonials",
		},
		Editor: EditorSettings{
			Autosave: false,
		},
		Locale: LocaleSettings{
			Language: "en",
			Dir:      "locales",
		},
		Logging: LoggingSettings{
			Level: "off",
			File:  "logs/testimonials.log",
		},
	}
}

package config

import (
	"errors"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/elpatron68/gtasks-vault/internal/convert"
	"github.com/elpatron68/gtasks-vault/internal/markdown"
)

type LoggingConfig struct {
	Level string `yaml:"level"` // debug|info|warn|error
}

type RenderConfig struct {
	IncludeCompleted bool `yaml:"includeCompleted"`
	IncludeUpdated   bool `yaml:"includeUpdated"`
	EscapeMarkdown   bool `yaml:"escapeMarkdown"`
	Separators       bool `yaml:"separators"`
	Heading          bool `yaml:"heading"`
}

type LayoutConfig struct {
	Nested           bool `yaml:"nested"`
	UnderscoreSpaces bool `yaml:"underscoreSpaces"`
}

type Config struct {
	Input   string        `yaml:"input"`
	Output  string        `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
	Render  RenderConfig  `yaml:"render"`
	Layout  LayoutConfig  `yaml:"layout"`
}

func Default() *Config {
	return &Config{
		Input:   "Tasks.json",
		Output:  "vault",
		Logging: LoggingConfig{Level: "info"},
		Render: RenderConfig{
			IncludeCompleted: true,
			Heading:          true,
		},
		Layout: LayoutConfig{Nested: true},
	}
}

// Load lädt eine optionale YAML-Datei. Wenn der Pfad leer ist oder die Datei
// fehlt, werden Defaults geliefert. Nicht gesetzte Schlüssel behalten ihren Default.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.Input) == "" {
		return errors.New("config: input path is empty")
	}
	if strings.TrimSpace(c.Output) == "" {
		return errors.New("config: output path is empty")
	}
	return nil
}

// ConvertOptions übersetzt die Datei-Konfiguration in Optionen für den Konverter.
func (c *Config) ConvertOptions() convert.Options {
	return convert.Options{
		Render: markdown.Options{
			ExcludeCompleted: !c.Render.IncludeCompleted,
			IncludeUpdated:   c.Render.IncludeUpdated,
			Escape:           c.Render.EscapeMarkdown,
			Separators:       c.Render.Separators,
			Heading:          c.Render.Heading,
		},
		Nested:           c.Layout.Nested,
		UnderscoreSpaces: c.Layout.UnderscoreSpaces,
	}
}
